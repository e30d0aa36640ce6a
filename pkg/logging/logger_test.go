package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	logger.Info().Str("feed", "celestrak").Msg("fetch complete")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["feed"] != "celestrak" {
		t.Errorf("feed = %v, want celestrak", entry["feed"])
	}
	if entry["message"] != "fetch complete" {
		t.Errorf("message = %v, want fetch complete", entry["message"])
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	got := FromContext(ctx)
	if got != &logger {
		t.Error("expected the logger stored in context")
	}
}

func TestCtxFallsBackToDefault(t *testing.T) {
	if Ctx(context.Background()) == nil {
		t.Error("expected a usable logger from a bare context")
	}
}

func TestWithFeed(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)

	ctx := WithLogger(context.Background(), &logger)
	ctx = WithFeed(ctx, "spacex")

	Ctx(ctx).Info().Msg("request")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["feed"] != "spacex" {
		t.Errorf("feed = %v, want spacex", entry["feed"])
	}
}

func TestSetDefault(t *testing.T) {
	original := *Default()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(zerolog.New(&buf))

	Info().Msg("hello")
	if buf.Len() == 0 {
		t.Error("expected output through the replaced default logger")
	}
}
