package taskstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/suncom1029-bot/ai-todo-manager/internal/model"
	"github.com/suncom1029-bot/ai-todo-manager/internal/task/repository"
	pkgLog "github.com/suncom1029-bot/ai-todo-manager/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a new task store repository.
func New(client *Client, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) ListTasks(ctx context.Context, sc model.Scope, opt repository.ListTasksOptions) ([]model.Task, error) {
	dtos, err := r.client.ListTasks(ctx, sc.UserID, opt.Completed, opt.Limit)
	if err != nil {
		return nil, r.mapStoreError(ctx, err)
	}

	tasks := make([]model.Task, 0, len(dtos))
	for _, dto := range dtos {
		task, convErr := r.toModel(dto)
		if convErr != nil {
			// A single malformed record must not sink the whole snapshot.
			r.l.Warnf(ctx, "skipping malformed task record %s: %v", dto.ID, convErr)
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	dto, err := r.client.GetTask(ctx, sc.UserID, id)
	if err != nil {
		return model.Task{}, r.mapStoreError(ctx, err)
	}
	return r.toModel(dto)
}

// mapStoreError translates transport failures into the repository taxonomy.
func (r *implRepository) mapStoreError(ctx context.Context, err error) error {
	var apiErr *StoreAPIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", repository.ErrSessionExpired, err)
		case http.StatusNotFound:
			return repository.ErrTaskNotFound
		default:
			return fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
		}
	}
	return fmt.Errorf("%w: %v", repository.ErrStoreUnavailable, err)
}

func (r *implRepository) toModel(dto taskDTO) (model.Task, error) {
	createdAt, err := time.Parse(time.RFC3339, dto.CreatedAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("invalid created_at %q: %w", dto.CreatedAt, err)
	}

	priority, ok := model.ParsePriority(dto.Priority)
	if !ok {
		priority = model.PriorityMedium
	}
	category, ok := model.ParseCategory(dto.Category)
	if !ok {
		category = model.CategoryOther
	}

	task := model.Task{
		ID:          dto.ID,
		OwnerID:     dto.OwnerID,
		Title:       dto.Title,
		Description: dto.Description,
		Priority:    priority,
		Category:    category,
		Completed:   dto.Completed,
		CreatedAt:   createdAt,
	}

	if dto.DueAt != nil {
		dueAt, dueErr := time.Parse(time.RFC3339, *dto.DueAt)
		if dueErr != nil {
			return model.Task{}, fmt.Errorf("invalid due_at %q: %w", *dto.DueAt, dueErr)
		}
		task.DueAt = &dueAt
	}
	if dto.UpdatedAt != nil {
		updatedAt, upErr := time.Parse(time.RFC3339, *dto.UpdatedAt)
		if upErr == nil {
			task.UpdatedAt = &updatedAt
		}
	}

	return task, nil
}
