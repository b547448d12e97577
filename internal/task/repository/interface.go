package repository

import (
	"context"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
)

// TaskRepository is the external record store collaborator. It is read-only
// from this core's point of view: aggregation treats the returned slice as an
// immutable snapshot for the duration of one request.
type TaskRepository interface {
	// ListTasks returns all tasks belonging to the scoped owner.
	ListTasks(ctx context.Context, sc model.Scope, opt ListTasksOptions) ([]model.Task, error)

	// GetTask returns a single task by id, scoped to the owner.
	GetTask(ctx context.Context, sc model.Scope, id string) (model.Task, error)
}
