package firebase

import (
	"context"
	"fmt"

	"routine-planner/internal/model"
	"routine-planner/internal/planner"
	"routine-planner/internal/planner/repository"
	pkgFirebase "routine-planner/pkg/firebase"
	pkgLog "routine-planner/pkg/log"
)

type taskRepository struct {
	client *pkgFirebase.Client
	l      pkgLog.Logger
}

// NewTaskRepository creates a task repository backed by the database client.
func NewTaskRepository(client *pkgFirebase.Client, l pkgLog.Logger) repository.TaskRepository {
	return &taskRepository{client: client, l: l}
}

func (r *taskRepository) Create(ctx context.Context, userID string, task model.Task) (string, error) {
	id, err := r.client.Push(ctx, tasksPath(userID), task)
	if err != nil {
		r.l.Errorf(ctx, "task repository: failed to create task for %s: %v", userID, err)
		return "", fmt.Errorf("%w: %v", planner.ErrStoreUnavailable, err)
	}
	return id, nil
}

func (r *taskRepository) Get(ctx context.Context, userID, taskID string) (model.Task, bool, error) {
	var task model.Task
	found, err := r.client.Get(ctx, taskPath(userID, taskID), &task)
	if err != nil {
		r.l.Errorf(ctx, "task repository: failed to read task %s/%s: %v", userID, taskID, err)
		return model.Task{}, false, fmt.Errorf("%w: %v", planner.ErrStoreUnavailable, err)
	}
	if found {
		task.ID = taskID
	}
	return task, found, nil
}

func (r *taskRepository) List(ctx context.Context, userID string) (map[string]model.Task, error) {
	var tasks map[string]model.Task
	found, err := r.client.Get(ctx, tasksPath(userID), &tasks)
	if err != nil {
		r.l.Errorf(ctx, "task repository: failed to list tasks for %s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", planner.ErrStoreUnavailable, err)
	}
	if !found {
		return map[string]model.Task{}, nil
	}
	for id, task := range tasks {
		task.ID = id
		tasks[id] = task
	}
	return tasks, nil
}

func (r *taskRepository) UpdateBlocks(ctx context.Context, userID, taskID string, blocks []model.BlockRef) error {
	path := fmt.Sprintf("%s/assigned_blocks", taskPath(userID, taskID))
	if err := r.client.Put(ctx, path, blocks); err != nil {
		r.l.Errorf(ctx, "task repository: failed to write blocks for %s/%s: %v", userID, taskID, err)
		return fmt.Errorf("%w: %v", planner.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *taskRepository) UpdateCalendarEvents(ctx context.Context, userID, taskID string, eventIDs []string) error {
	path := fmt.Sprintf("%s/calendar_event_ids", taskPath(userID, taskID))
	if err := r.client.Put(ctx, path, eventIDs); err != nil {
		r.l.Errorf(ctx, "task repository: failed to write event ids for %s/%s: %v", userID, taskID, err)
		return fmt.Errorf("%w: %v", planner.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, userID, taskID string) error {
	if err := r.client.Delete(ctx, taskPath(userID, taskID)); err != nil {
		r.l.Errorf(ctx, "task repository: failed to delete task %s/%s: %v", userID, taskID, err)
		return fmt.Errorf("%w: %v", planner.ErrStoreUnavailable, err)
	}
	return nil
}

func tasksPath(userID string) string {
	return fmt.Sprintf("tasks/%s", userID)
}

func taskPath(userID, taskID string) string {
	return fmt.Sprintf("tasks/%s/%s", userID, taskID)
}
