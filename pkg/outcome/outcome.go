// Package outcome classifies the free-text console response of a remote
// command into success, a structured remote fault, or a generic error.
package outcome

import (
	"strings"

	"github.com/devicelab-dev/uiprobe/pkg/core"
)

const (
	// RemoteFaultMarker prefixes uncaught faults printed by the Android runtime.
	RemoteFaultMarker = "java.lang."
	// ErrorKeyword marks a generic failure anywhere in the output (case-insensitive).
	ErrorKeyword = "error"
)

// Kind is the tag of an Outcome.
type Kind int

const (
	Success Kind = iota
	RemoteFault
	GenericError
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case RemoteFault:
		return "remote_fault"
	case GenericError:
		return "generic_error"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of one command execution.
// FaultType and Message are set for RemoteFault, Description for GenericError.
type Outcome struct {
	Kind        Kind
	FaultType   string
	Message     string
	Description string
}

// OK returns true for Success.
func (o Outcome) OK() bool {
	return o.Kind == Success
}

// Fault returns the RemoteFault carried by o, or nil.
func (o Outcome) Fault() *core.RemoteFault {
	if o.Kind != RemoteFault {
		return nil
	}
	return &core.RemoteFault{Kind: o.FaultType, Message: o.Message}
}

// Classifier holds the markers used to classify console text.
type Classifier struct {
	Marker  string
	Keyword string
}

// Default returns the Android classifier.
func Default() Classifier {
	return Classifier{Marker: RemoteFaultMarker, Keyword: ErrorKeyword}
}

// Classify classifies raw console text with the Android markers.
func Classify(raw string) Outcome {
	return Default().Classify(raw)
}

// Classify classifies raw console text. A structured fault is checked before
// the generic keyword, so a fault whose message contains the keyword is still
// a RemoteFault.
func (c Classifier) Classify(raw string) Outcome {
	text := strings.TrimSpace(raw)

	if c.Marker != "" && strings.HasPrefix(text, c.Marker) {
		kind, msg := parseFault(strings.TrimPrefix(text, c.Marker))
		return Outcome{Kind: RemoteFault, FaultType: kind, Message: msg}
	}

	if c.Keyword != "" && strings.Contains(strings.ToLower(text), strings.ToLower(c.Keyword)) {
		return Outcome{Kind: GenericError, Description: text}
	}

	return Outcome{Kind: Success}
}

// parseFault splits "RuntimeException: boom" into its simple type name and message.
// Nested packages ("reflect.InvocationTargetException") keep only the last segment.
func parseFault(body string) (string, string) {
	end := strings.IndexAny(body, ": \t\r\n")
	if end < 0 {
		end = len(body)
	}
	name := body[:end]
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}

	rest := strings.TrimLeft(body[end:], " \t")
	rest = strings.TrimPrefix(rest, ":")
	return name, strings.TrimSpace(rest)
}
