package conf

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
)

func TestError_SentinelMatching(t *testing.T) {
	// Sentinels stay matchable after deriving enriched instances.
	derived := ErrKeyNotFound.
		With(slog.String("key", "x")).
		Wrap(fmt.Errorf("lookup"))

	if !errors.Is(derived, ErrKeyNotFound) {
		t.Error("derived error lost its sentinel kind")
	}

	if errors.Is(derived, ErrAmbiguousKey) {
		t.Error("derived error matched a foreign sentinel")
	}
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"message only", NewError("boom"), "boom"},
		{"message and cause", NewError("boom").Wrap(errors.New("why")), "boom: why"},
		{"cause only", WrapError(errors.New("why")), "why"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapError_PassesThrough(t *testing.T) {
	inner := ErrInvalidDocument.Wrap(errors.New("bad byte"))

	if got := WrapError(inner); got != inner {
		t.Errorf("WrapError re-wrapped an existing *Error: %v", got)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root")
	err := ErrShellCommand.Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
}

func TestCycleError_Render(t *testing.T) {
	tests := []struct {
		name  string
		cycle *CycleError
		want  string
	}{
		{
			name:  "two keys",
			cycle: &CycleError{Chain: []string{"a", "b"}, Back: "a"},
			want:  "a -> b -> a",
		},
		{
			name:  "self reference",
			cycle: &CycleError{Chain: []string{"x"}, Back: "x"},
			want:  "x -> x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cycle.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
