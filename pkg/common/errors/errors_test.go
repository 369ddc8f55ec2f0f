package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrPoolConstruction,
		ErrTaskSubmission,
		ErrPoolClosed,
		ErrNilTask,
		ErrInvalidConfiguration,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v unexpectedly matches %v", a, b)
			}
		}
	}
}

func TestSentinelWrapping(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrTaskSubmission, ErrPoolClosed)

	if !errors.Is(err, ErrTaskSubmission) {
		t.Error("wrapped error should match ErrTaskSubmission")
	}
	if !errors.Is(err, ErrPoolClosed) {
		t.Error("wrapped error should match ErrPoolClosed")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("threadpool", "WorkerCount", 0, "must be positive").
		WithHint("value must be greater than 0")

	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Error("ValidationError should unwrap to ErrInvalidConfiguration")
	}

	msg := err.Error()
	for _, want := range []string{"threadpool", "WorkerCount", "must be positive", "got 0", "greater than 0"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}
