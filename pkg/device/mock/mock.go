// Package mock provides a scripted command channel for testing without a real device.
package mock

import (
	"strings"
	"sync"

	"github.com/devicelab-dev/uiprobe/pkg/device"
)

// Response is the console text and transport error returned for one command.
type Response struct {
	Output string
	Err    error
}

// Channel is a scripted implementation of device.CommandChannel.
//
// Responses are looked up by exact command first, then by the longest
// registered prefix. A command with a queued sequence consumes it in order and
// repeats the last entry once the queue is drained.
type Channel struct {
	mu        sync.Mutex
	exact     map[string][]Response
	prefixes  map[string][]Response
	calls     []Call
	defaultOK string
}

// Call records one Execute invocation.
type Call struct {
	Serial  string
	Command string
}

// New creates an empty Channel. Unscripted commands produce empty output.
func New() *Channel {
	return &Channel{
		exact:    make(map[string][]Response),
		prefixes: make(map[string][]Response),
	}
}

// On scripts the responses for an exact command.
func (c *Channel) On(command string, responses ...Response) *Channel {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.exact[command] = append(c.exact[command], responses...)
	return c
}

// OnPrefix scripts the responses for every command starting with prefix.
func (c *Channel) OnPrefix(prefix string, responses ...Response) *Channel {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prefixes[prefix] = append(c.prefixes[prefix], responses...)
	return c
}

// Reply scripts a single successful output for an exact command.
func (c *Channel) Reply(command, output string) *Channel {
	return c.On(command, Response{Output: output})
}

// Default sets the output for unscripted commands.
func (c *Channel) Default(output string) *Channel {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultOK = output
	return c
}

// Execute implements device.CommandChannel.
func (c *Channel) Execute(serial, command string, sink device.OutputReceiver) error {
	c.mu.Lock()
	c.calls = append(c.calls, Call{Serial: serial, Command: command})
	resp := c.next(command)
	c.mu.Unlock()

	if resp.Output != "" {
		if _, err := sink.Write([]byte(resp.Output)); err != nil {
			return err
		}
	}
	return resp.Err
}

func (c *Channel) next(command string) Response {
	if queue, ok := c.exact[command]; ok && len(queue) > 0 {
		return pop(c.exact, command, queue)
	}

	best := ""
	for p := range c.prefixes {
		if strings.HasPrefix(command, p) && len(p) > len(best) && len(c.prefixes[p]) > 0 {
			best = p
		}
	}
	if best != "" {
		return pop(c.prefixes, best, c.prefixes[best])
	}
	return Response{Output: c.defaultOK}
}

func pop(m map[string][]Response, key string, queue []Response) Response {
	resp := queue[0]
	if len(queue) > 1 {
		m[key] = queue[1:]
	}
	return resp
}

// Calls returns every recorded invocation.
func (c *Channel) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Call, len(c.calls))
	copy(out, c.calls)
	return out
}

// Commands returns the recorded command strings.
func (c *Channel) Commands() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.calls))
	for _, call := range c.calls {
		out = append(out, call.Command)
	}
	return out
}

// Count returns how many times command was executed.
func (c *Channel) Count(command string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, call := range c.calls {
		if call.Command == command {
			n++
		}
	}
	return n
}
