package core

import "testing"

func TestAppStatus_String(t *testing.T) {
	tests := []struct {
		status   AppStatus
		expected string
	}{
		{AppStopped, "stopped"},
		{AppBackground, "background"},
		{AppForeground, "foreground"},
		{AppStatus(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("AppStatus(%d).String() = %q, want %q", tt.status, got, tt.expected)
		}
	}
}

func TestAppStatus_IsRunning(t *testing.T) {
	if AppStopped.IsRunning() {
		t.Error("AppStopped.IsRunning() = true, want false")
	}
	for _, s := range []AppStatus{AppBackground, AppForeground} {
		if !s.IsRunning() {
			t.Errorf("%s.IsRunning() = false, want true", s)
		}
	}
}

func TestErrorCategory_String(t *testing.T) {
	tests := []struct {
		category ErrorCategory
		expected string
	}{
		{ErrCategoryNone, "none"},
		{ErrCategoryTransport, "transport"},
		{ErrCategoryCapture, "capture"},
		{ErrCategoryParse, "parse"},
		{ErrCategoryRemote, "remote"},
		{ErrCategoryInput, "input"},
		{ErrCategoryValidation, "validation"},
		{ErrCategoryAssertion, "assertion"},
		{ErrorCategory(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.expected {
			t.Errorf("ErrorCategory(%d).String() = %q, want %q", tt.category, got, tt.expected)
		}
	}
}
