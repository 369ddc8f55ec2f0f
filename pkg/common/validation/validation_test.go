package validation

import (
	"errors"
	"testing"

	tperrors "github.com/vparikh/threadpool/pkg/common/errors"
)

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		wantError bool
	}{
		{"positive value", 10, false},
		{"one", 1, false},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("test", "count", tt.value)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidatePositive(%d) error = %v, wantError %v", tt.value, err, tt.wantError)
			}
			if err != nil && !errors.Is(err, tperrors.ErrInvalidConfiguration) {
				t.Errorf("error should unwrap to ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestValidateNotNil(t *testing.T) {
	if err := ValidateNotNil("test", "task", nil); err == nil {
		t.Error("expected error for nil value")
	}
	if err := ValidateNotNil("test", "task", struct{}{}); err != nil {
		t.Errorf("unexpected error for non-nil value: %v", err)
	}
}

func TestValidateNotEmpty(t *testing.T) {
	if err := ValidateNotEmpty("test", "id", ""); err == nil {
		t.Error("expected error for empty string")
	}
	if err := ValidateNotEmpty("test", "id", "job-1"); err != nil {
		t.Errorf("unexpected error for non-empty string: %v", err)
	}
}
