package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := Component("test-component")
	logger.Info().Msg("test message")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log: %v", err)
	}

	cmp, ok := logEntry["cmp"]
	if !ok {
		t.Fatal("expected 'cmp' key in log output")
	}

	if cmp != "test-component" {
		t.Errorf("Component() cmp = %q, want %q", cmp, "test-component")
	}

	msg, ok := logEntry["message"]
	if !ok {
		t.Fatal("expected 'message' key in log output")
	}

	if msg != "test message" {
		t.Errorf("Component() message = %q, want %q", msg, "test message")
	}
}

func TestComponentCtx(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	ctx := WithBoardID(context.Background(), "b-9")
	logger := ComponentCtx(ctx, "tui")
	logger.Info().Msg("toggled")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log: %v", err)
	}

	if logEntry["cmp"] != "tui" {
		t.Errorf("cmp = %v, want %q", logEntry["cmp"], "tui")
	}
	if logEntry["board_id"] != "b-9" {
		t.Errorf("board_id = %v, want %q", logEntry["board_id"], "b-9")
	}
}
