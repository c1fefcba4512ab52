package firebase_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"routine-planner/pkg/firebase"
)

func TestGetFoundAndAbsent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		switch r.URL.Path {
		case "/schedule/u1/2025-03-01.json":
			w.Write([]byte(`{"08:00":{"kind":"free"}}`))
		case "/schedule/u1/2025-03-02.json":
			w.Write([]byte(`null`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	client := firebase.NewClient(ts.URL, "")

	var day map[string]map[string]any
	found, err := client.Get(context.Background(), "schedule/u1/2025-03-01", &day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected node to be found")
	}
	if day["08:00"]["kind"] != "free" {
		t.Errorf("unexpected decoded value: %v", day)
	}

	found, err = client.Get(context.Background(), "schedule/u1/2025-03-02", &day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("null body should report absent")
	}
}

func TestAuthTokenAppended(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`null`))
	}))
	defer ts.Close()

	client := firebase.NewClient(ts.URL, "secret-token")
	var out any
	if _, err := client.Get(context.Background(), "tasks/u1", &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "auth=secret-token" {
		t.Errorf("expected auth query param, got %q", gotQuery)
	}
}

func TestPutAndPatch(t *testing.T) {
	type call struct {
		method string
		path   string
		body   string
	}
	var calls []call

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		calls = append(calls, call{r.Method, r.URL.Path, string(raw)})
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	client := firebase.NewClient(ts.URL, "")
	ctx := context.Background()

	if err := client.Put(ctx, "schedule/u1/2025-03-01/08:00", map[string]any{"kind": "free"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := client.Patch(ctx, "schedule/u1/2025-03-01/08:00", map[string]any{"task": nil}); err != nil {
		t.Fatalf("patch: %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(calls))
	}
	if calls[0].method != http.MethodPut || !strings.Contains(calls[0].body, `"kind":"free"`) {
		t.Errorf("unexpected put call: %+v", calls[0])
	}
	if calls[1].method != http.MethodPatch || !strings.Contains(calls[1].body, `"task":null`) {
		t.Errorf("unexpected patch call: %+v", calls[1])
	}
}

func TestPushReturnsKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(map[string]string{"name": "-OAbCdEf123"})
	}))
	defer ts.Close()

	client := firebase.NewClient(ts.URL, "")
	key, err := client.Push(context.Background(), "tasks/u1", map[string]string{"name": "write report"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "-OAbCdEf123" {
		t.Errorf("unexpected key %q", key)
	}
}

func TestErrorStatusSurfaced(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Permission denied"}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := firebase.NewClient(ts.URL, "")
	var out any
	_, err := client.Get(context.Background(), "tasks/u1", &out)
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error should carry status code: %v", err)
	}
}
