package repository

// ListTasksOptions narrows a task listing. All fields are optional.
type ListTasksOptions struct {
	Completed *bool // filter by completion state
	Limit     int   // 0 means the store's default page size
}
