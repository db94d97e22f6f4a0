package conf

import (
	"context"
	"errors"
	"testing"
)

func TestRunShell(t *testing.T) {
	out, err := runShell(context.Background(), "echo hello")
	if err != nil {
		t.Fatalf("runShell failed: %v", err)
	}

	// Trailing newlines are trimmed, matching shell command substitution.
	if out != "hello" {
		t.Errorf("output = %q, want %q", out, "hello")
	}
}

func TestRunShell_PreservesInteriorNewlines(t *testing.T) {
	out, err := runShell(context.Background(), `printf 'a\nb\n'`)
	if err != nil {
		t.Fatalf("runShell failed: %v", err)
	}

	if out != "a\nb" {
		t.Errorf("output = %q, want %q", out, "a\nb")
	}
}

func TestRunShell_NonZeroExit(t *testing.T) {
	_, err := runShell(context.Background(), "exit 3")
	if !errors.Is(err, ErrShellCommand) {
		t.Errorf("expected ErrShellCommand, got %v", err)
	}
}

func TestRunShell_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runShell(ctx, "echo never")
	if !errors.Is(err, ErrShellCommand) {
		t.Errorf("expected ErrShellCommand, got %v", err)
	}
}
