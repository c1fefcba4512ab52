package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"routine-planner/internal/middleware"
	"routine-planner/internal/model"
	"routine-planner/internal/planner"
	plannerHTTP "routine-planner/internal/planner/delivery/http"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

// mockUseCase records the scope it was called with and returns canned
// values per operation.
type mockUseCase struct {
	lastScope model.Scope

	createTaskFn  func(planner.CreateTaskInput) (model.Task, error)
	allocateFn    func(taskID string) (planner.AllocationResult, error)
	deleteFn      func(taskID string) error
	submitBlockFn func(planner.SubmitBlockInput) (planner.ManualResult, error)
	listFn        func() (planner.TaskListOutput, error)
}

func (m *mockUseCase) GenerateCalendar(ctx context.Context, sc model.Scope, input planner.GenerateCalendarInput) (planner.GenerateCalendarOutput, error) {
	m.lastScope = sc
	return planner.GenerateCalendarOutput{DaysCreated: input.HorizonDays}, nil
}

func (m *mockUseCase) CreateTask(ctx context.Context, sc model.Scope, input planner.CreateTaskInput) (model.Task, error) {
	m.lastScope = sc
	if m.createTaskFn != nil {
		return m.createTaskFn(input)
	}
	return model.Task{}, nil
}

func (m *mockUseCase) AllocateAuto(ctx context.Context, sc model.Scope, taskID string) (planner.AllocationResult, error) {
	m.lastScope = sc
	if m.allocateFn != nil {
		return m.allocateFn(taskID)
	}
	return planner.AllocationResult{TaskID: taskID}, nil
}

func (m *mockUseCase) ConfirmAllocation(ctx context.Context, sc model.Scope, taskID string) (planner.AllocationResult, error) {
	m.lastScope = sc
	return planner.AllocationResult{TaskID: taskID}, nil
}

func (m *mockUseCase) StartManual(ctx context.Context, sc model.Scope, taskID string) (planner.ManualResult, error) {
	m.lastScope = sc
	return planner.ManualResult{TaskID: taskID, Remaining: 2}, nil
}

func (m *mockUseCase) SubmitBlock(ctx context.Context, sc model.Scope, input planner.SubmitBlockInput) (planner.ManualResult, error) {
	m.lastScope = sc
	if m.submitBlockFn != nil {
		return m.submitBlockFn(input)
	}
	return planner.ManualResult{}, nil
}

func (m *mockUseCase) CancelManual(ctx context.Context, sc model.Scope) error {
	m.lastScope = sc
	return nil
}

func (m *mockUseCase) DeleteTask(ctx context.Context, sc model.Scope, taskID string) error {
	m.lastScope = sc
	if m.deleteFn != nil {
		return m.deleteFn(taskID)
	}
	return nil
}

func (m *mockUseCase) GetDaySchedule(ctx context.Context, sc model.Scope, date string) (model.DaySchedule, error) {
	m.lastScope = sc
	return model.DaySchedule{"08:00": {Kind: model.SlotFree}}, nil
}

func (m *mockUseCase) GetDailyPlan(ctx context.Context, sc model.Scope, date string) (planner.DayPlanOutput, error) {
	m.lastScope = sc
	return planner.DayPlanOutput{Date: date}, nil
}

func (m *mockUseCase) ListTasks(ctx context.Context, sc model.Scope) (planner.TaskListOutput, error) {
	m.lastScope = sc
	if m.listFn != nil {
		return m.listFn()
	}
	return planner.TaskListOutput{}, nil
}

func newRouter(uc planner.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(nopLogger{}, middleware.Config{})
	h := plannerHTTP.New(nopLogger{}, uc)
	plannerHTTP.RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func doRequest(r *gin.Engine, method, path, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingUserIDRejected(t *testing.T) {
	r := newRouter(&mockUseCase{})

	w := doRequest(r, http.MethodGet, "/api/v1/tasks", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", w.Code)
	}
}

func TestScopePropagated(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := doRequest(r, http.MethodGet, "/api/v1/tasks", "user-42", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body %s", w.Code, w.Body.String())
	}
	if uc.lastScope.UserID != "user-42" {
		t.Errorf("scope = %+v, want user-42", uc.lastScope)
	}
}

func TestCreateTaskRoute(t *testing.T) {
	uc := &mockUseCase{
		createTaskFn: func(input planner.CreateTaskInput) (model.Task, error) {
			if input.Name != "essay" || input.Priority != model.PriorityHigh || input.TimeRequiredHours != 1.5 {
				t.Errorf("input not mapped: %+v", input)
			}
			return model.Task{ID: "t1", Name: input.Name, Priority: input.Priority}, nil
		},
	}
	r := newRouter(uc)

	w := doRequest(r, http.MethodPost, "/api/v1/tasks", "u1", map[string]any{
		"name":          "essay",
		"priority":      "high",
		"time_required": 1.5,
		"deadline":      "2025-03-10",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		ErrorCode int `json:"error_code"`
		Data      struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ErrorCode != 0 || resp.Data.ID != "t1" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestCreateTaskMissingFields(t *testing.T) {
	r := newRouter(&mockUseCase{})

	w := doRequest(r, http.MethodPost, "/api/v1/tasks", "u1", map[string]any{"name": "x"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("code = %d, want 400", w.Code)
	}
}

func TestCreateTaskValidationError(t *testing.T) {
	uc := &mockUseCase{
		createTaskFn: func(planner.CreateTaskInput) (model.Task, error) {
			return model.Task{}, planner.ErrPastDeadline
		},
	}
	r := newRouter(uc)

	w := doRequest(r, http.MethodPost, "/api/v1/tasks", "u1", map[string]any{
		"name": "x", "priority": "low", "time_required": 1.0, "deadline": "2020-01-01",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", w.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Message != planner.ErrPastDeadline.Error() {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestDeleteTaskNotFoundMapsTo404(t *testing.T) {
	uc := &mockUseCase{
		deleteFn: func(string) error { return planner.ErrTaskNotFound },
	}
	r := newRouter(uc)

	w := doRequest(r, http.MethodDelete, "/api/v1/tasks/missing", "u1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", w.Code)
	}
}

func TestAllocateUnknownErrorHidden(t *testing.T) {
	uc := &mockUseCase{
		allocateFn: func(string) (planner.AllocationResult, error) {
			return planner.AllocationResult{}, context.DeadlineExceeded
		},
	}
	r := newRouter(uc)

	w := doRequest(r, http.MethodPost, "/api/v1/tasks/t1/allocate", "u1", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("deadline exceeded")) {
		t.Error("internal error detail leaked to the client")
	}
}

func TestSubmitBlockRoute(t *testing.T) {
	uc := &mockUseCase{
		submitBlockFn: func(input planner.SubmitBlockInput) (planner.ManualResult, error) {
			if input.Date != "2025-03-04" || input.Time != "10:00" {
				t.Errorf("input = %+v", input)
			}
			return planner.ManualResult{TaskID: "t1", Remaining: 1}, nil
		},
	}
	r := newRouter(uc)

	w := doRequest(r, http.MethodPost, "/api/v1/manual/blocks", "u1", map[string]string{
		"date": "2025-03-04",
		"time": "10:00",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body %s", w.Code, w.Body.String())
	}
}
