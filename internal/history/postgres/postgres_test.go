package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mediakiosk/vlcd/internal/history"
)

func TestPostgresSink_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Errorf("Failed to terminate PostgreSQL container: %v", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	sink, err := New(connStr)
	if err != nil {
		t.Fatalf("Failed to create PostgreSQL sink: %v", err)
	}
	defer func() {
		if err := sink.Close(); err != nil {
			t.Errorf("Failed to close sink: %v", err)
		}
	}()

	startEvent := history.Event{
		Type:       history.EventStart,
		OccurredAt: time.Now().UTC(),
		VideoPath:  "/media/loop.mp4",
		PID:        12345,
	}
	if err := sink.Send(ctx, startEvent); err != nil {
		t.Fatalf("Failed to send start event: %v", err)
	}

	exitEvent := history.Event{
		Type:       history.EventExit,
		OccurredAt: time.Now().UTC(),
		VideoPath:  "/media/loop.mp4",
		PID:        12345,
		ExitCode:   1,
		Error:      "player process exited with code 1: decode failure",
	}
	if err := sink.Send(ctx, exitEvent); err != nil {
		t.Fatalf("Failed to send exit event: %v", err)
	}

	var count int
	row := sink.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM playback_history WHERE video_path = $1", "/media/loop.mp4")
	if err := row.Scan(&count); err != nil {
		t.Fatalf("Failed to count playback_history rows: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 events in history, got %d", count)
	}

	var errText *string
	row = sink.db.QueryRowContext(ctx, "SELECT error FROM playback_history WHERE event = 'exit'")
	if err := row.Scan(&errText); err != nil {
		t.Fatalf("Failed to read exit event: %v", err)
	}
	if errText == nil || *errText != exitEvent.Error {
		t.Errorf("exit error not stored: %v", errText)
	}

	var startErr *string
	row = sink.db.QueryRowContext(ctx, "SELECT error FROM playback_history WHERE event = 'start'")
	if err := row.Scan(&startErr); err != nil {
		t.Fatalf("Failed to read start event: %v", err)
	}
	if startErr != nil {
		t.Errorf("empty error should be stored as NULL, got %q", *startErr)
	}
}
