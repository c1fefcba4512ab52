package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"routine-planner/pkg/gcalendar"
)

func TestNewClientRejectsBrokenCredentials(t *testing.T) {
	_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
	if err == nil {
		t.Fatal("expected error for non service-account JSON")
	}
}

func TestCreateAndDeleteEvent(t *testing.T) {
	var inserted map[string]any
	var deletedPath string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			json.NewDecoder(r.Body).Decode(&inserted)
			json.NewEncoder(w).Encode(map[string]string{
				"id":       "ev-1",
				"summary":  "write report",
				"htmlLink": "http://cal.local/ev-1",
			})
		case http.MethodDelete:
			deletedPath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer ts.Close()

	client, err := gcalendar.NewClientFromHTTP(context.Background(), ts.Client(), ts.URL+"/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	ev, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "write report",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Timezone:  "UTC",
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if ev.ID != "ev-1" {
		t.Errorf("unexpected event id %q", ev.ID)
	}
	if inserted["summary"] != "write report" {
		t.Errorf("unexpected insert body: %v", inserted)
	}

	if err := client.DeleteEvent(context.Background(), "", "ev-1"); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	if !strings.Contains(deletedPath, "primary") || !strings.Contains(deletedPath, "ev-1") {
		t.Errorf("delete should target primary/ev-1, got %s", deletedPath)
	}
}
