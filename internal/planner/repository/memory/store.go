// Package memory holds in-process implementations of the planner
// repositories, used for tests and for running without a backing database.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"routine-planner/internal/model"
	"routine-planner/internal/planner/repository"
)

type slotStore struct {
	mu   sync.RWMutex
	days map[string]map[string]model.DaySchedule // userID -> date -> schedule
}

// NewSlotRepository creates an empty in-memory slot store.
func NewSlotRepository() repository.SlotRepository {
	return &slotStore{days: make(map[string]map[string]model.DaySchedule)}
}

func (s *slotStore) GetDay(ctx context.Context, userID, date string) (model.DaySchedule, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sched, ok := s.days[userID][date]
	if !ok {
		return nil, false, nil
	}
	return sched.Clone(), true, nil
}

func (s *slotStore) SetDay(ctx context.Context, userID, date string, sched model.DaySchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.days[userID] == nil {
		s.days[userID] = make(map[string]model.DaySchedule)
	}
	s.days[userID][date] = sched.Clone()
	return nil
}

func (s *slotStore) UpdateSlot(ctx context.Context, userID, date, timeOfDay string, fields repository.UpdateSlotFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sched, ok := s.days[userID][date]
	if !ok {
		sched = model.DaySchedule{}
		if s.days[userID] == nil {
			s.days[userID] = make(map[string]model.DaySchedule)
		}
		s.days[userID][date] = sched
	}

	slot := sched[timeOfDay]
	if fields.Kind != nil {
		slot.Kind = *fields.Kind
	}
	if fields.ClearTask {
		slot.Task = ""
	} else if fields.Task != nil {
		slot.Task = *fields.Task
	}
	sched[timeOfDay] = slot
	return nil
}

type taskStore struct {
	mu    sync.RWMutex
	tasks map[string]map[string]model.Task // userID -> taskID -> task
}

// NewTaskRepository creates an empty in-memory task store.
func NewTaskRepository() repository.TaskRepository {
	return &taskStore{tasks: make(map[string]map[string]model.Task)}
}

func (s *taskStore) Create(ctx context.Context, userID string, task model.Task) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	task.ID = id
	if s.tasks[userID] == nil {
		s.tasks[userID] = make(map[string]model.Task)
	}
	s.tasks[userID][id] = cloneTask(task)
	return id, nil
}

func (s *taskStore) Get(ctx context.Context, userID, taskID string) (model.Task, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[userID][taskID]
	if !ok {
		return model.Task{}, false, nil
	}
	return cloneTask(task), true, nil
}

func (s *taskStore) List(ctx context.Context, userID string) (map[string]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.Task, len(s.tasks[userID]))
	for id, task := range s.tasks[userID] {
		out[id] = cloneTask(task)
	}
	return out, nil
}

func (s *taskStore) UpdateBlocks(ctx context.Context, userID, taskID string, blocks []model.BlockRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[userID][taskID]
	if !ok {
		return nil
	}
	task.AssignedBlocks = append([]model.BlockRef(nil), blocks...)
	s.tasks[userID][taskID] = task
	return nil
}

func (s *taskStore) UpdateCalendarEvents(ctx context.Context, userID, taskID string, eventIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[userID][taskID]
	if !ok {
		return nil
	}
	task.CalendarEventIDs = append([]string(nil), eventIDs...)
	s.tasks[userID][taskID] = task
	return nil
}

func (s *taskStore) Delete(ctx context.Context, userID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tasks[userID], taskID)
	return nil
}

func cloneTask(t model.Task) model.Task {
	t.AssignedBlocks = append([]model.BlockRef(nil), t.AssignedBlocks...)
	t.CalendarEventIDs = append([]string(nil), t.CalendarEventIDs...)
	return t
}
