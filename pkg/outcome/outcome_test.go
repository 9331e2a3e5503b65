package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    Kind
		fault   string
		message string
	}{
		{"remote fault", "java.lang.RuntimeException: boom", RemoteFault, "RuntimeException", "boom"},
		{"generic error", "some ERROR occurred", GenericError, "", ""},
		{"success", "OK", Success, "", ""},
		{"empty output", "", Success, "", ""},
		{"fault precedence over keyword", "java.lang.Foo: contains the word error", RemoteFault, "Foo", "contains the word error"},
		{"surrounding whitespace", "\n  java.lang.SecurityException: Injecting to another application requires INJECT_EVENTS permission\n",
			RemoteFault, "SecurityException", "Injecting to another application requires INJECT_EVENTS permission"},
		{"fault without message", "java.lang.NullPointerException", RemoteFault, "NullPointerException", ""},
		{"nested package", "java.lang.reflect.InvocationTargetException: wrapped", RemoteFault, "InvocationTargetException", "wrapped"},
		{"multi-line trace", "java.lang.IllegalArgumentException: bad key\n\tat com.android.commands.input.Input.main", RemoteFault,
			"IllegalArgumentException", "bad key\n\tat com.android.commands.input.Input.main"},
		{"marker not at start", "Exception: java.lang.RuntimeException", Success, "", ""},
		{"keyword inside marker-less trace", "Error: Unknown command: tapp", GenericError, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.fault, got.FaultType)
			if tt.kind == RemoteFault {
				assert.Equal(t, tt.message, got.Message)
			}
		})
	}
}

func TestClassify_GenericErrorKeepsText(t *testing.T) {
	got := Classify("  some ERROR occurred \n")
	assert.Equal(t, GenericError, got.Kind)
	assert.Equal(t, "some ERROR occurred", got.Description)
	assert.Nil(t, got.Fault())
	assert.False(t, got.OK())
}

func TestOutcome_Fault(t *testing.T) {
	got := Classify("java.lang.RuntimeException: boom")
	f := got.Fault()
	if assert.NotNil(t, f) {
		assert.Equal(t, "RuntimeException", f.Kind)
		assert.Contains(t, f.Message, "boom")
	}
	assert.True(t, Classify("OK").OK())
}

func TestClassifier_CustomMarkers(t *testing.T) {
	c := Classifier{Marker: "FATAL ", Keyword: "fail"}
	assert.Equal(t, RemoteFault, c.Classify("FATAL Panic: gone").Kind)
	assert.Equal(t, GenericError, c.Classify("it FAILED").Kind)
	assert.Equal(t, Success, c.Classify("some error").Kind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "remote_fault", RemoteFault.String())
	assert.Equal(t, "generic_error", GenericError.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
