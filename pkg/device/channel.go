// Package device provides the command channel to Android devices via ADB.
package device

import (
	"bytes"
	"sync"
)

// CommandChannel executes a shell command on a device and streams the console
// text to sink. Errors are transport faults; the remote command's own failure
// is reported only through the text written to sink.
type CommandChannel interface {
	Execute(serial, command string, sink OutputReceiver) error
}

// OutputReceiver accumulates console text written by a CommandChannel.
type OutputReceiver interface {
	Write(p []byte) (int, error)
	Output() string
}

// Receiver is the default OutputReceiver. It is safe for concurrent writes
// from the stdout and stderr streams of one command.
type Receiver struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewReceiver creates an empty Receiver.
func NewReceiver() *Receiver {
	return &Receiver{}
}

// Write appends p to the accumulated output.
func (r *Receiver) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

// Output returns everything written so far.
func (r *Receiver) Output() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}

// Run executes command through ch and returns the collected output.
func Run(ch CommandChannel, serial, command string) (string, error) {
	sink := NewReceiver()
	if err := ch.Execute(serial, command, sink); err != nil {
		return sink.Output(), err
	}
	return sink.Output(), nil
}
