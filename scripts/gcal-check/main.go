// scripts/gcal-check/main.go
//
// Verifies the Google Calendar service-account credentials used for the
// optional calendar mirror. It creates a short test event and immediately
// deletes it again.
//
// Usage:
//   go run scripts/gcal-check/main.go [credentials.json] [calendar-id]

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"routine-planner/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	calendarID := ""
	if len(os.Args) > 2 {
		calendarID = os.Args[2]
	}

	ctx := context.Background()

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, credsPath)
	if err != nil {
		log.Fatalf("Failed to build calendar client from %q: %v", credsPath, err)
	}

	start := time.Now().Add(time.Hour).Truncate(time.Minute)
	event, err := client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  calendarID,
		Summary:     "routine-planner credentials check",
		Description: "Safe to delete: created by scripts/gcal-check.",
		StartTime:   start,
		EndTime:     start.Add(30 * time.Minute),
	})
	if err != nil {
		log.Fatalf("Credentials rejected by Calendar API: %v", err)
	}

	if err := client.DeleteEvent(ctx, calendarID, event.ID); err != nil {
		log.Printf("Warning: test event %s could not be deleted: %v", event.ID, err)
	}

	fmt.Println("Google Calendar credentials OK")
}
