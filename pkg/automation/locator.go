package automation

import (
	"errors"
	"time"

	"github.com/cenkalti/backoff"

	"github.com/devicelab-dev/uiprobe/pkg/core"
	"github.com/devicelab-dev/uiprobe/pkg/hierarchy"
)

// FindOne returns the first element selected by query.
//
// A zero timeout performs exactly one capture, parse and query. A positive
// timeout repeats the cycle until a match or until the timeout has elapsed.
// Malformed or empty dumps count as a miss; transport faults are returned.
// No match yields core.ErrElementNotFound.
func (c *Client) FindOne(query string, timeout time.Duration) (*Element, error) {
	q, err := hierarchy.Compile(query)
	if err != nil {
		return nil, err
	}

	nodes, err := c.locate(q, timeout)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, core.ErrElementNotFound.WithDetails(map[string]interface{}{
			"query":   q.String(),
			"timeout": timeout.String(),
		})
	}

	e := newElement(nodes[0])
	return &e, nil
}

// FindAll returns every element selected by query from the first snapshot
// that yields a match, in document order. Polling stops at that snapshot.
// No match within the timeout yields an empty slice.
func (c *Client) FindAll(query string, timeout time.Duration) ([]Element, error) {
	q, err := hierarchy.Compile(query)
	if err != nil {
		return nil, err
	}

	nodes, err := c.locate(q, timeout)
	if err != nil {
		return nil, err
	}

	elements := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		elements = append(elements, newElement(n))
	}
	return elements, nil
}

// Exists reports whether query matches within timeout.
func (c *Client) Exists(query string, timeout time.Duration) (bool, error) {
	_, err := c.FindOne(query, timeout)
	if errors.Is(err, core.ErrElementNotFound) {
		return false, nil
	}
	return err == nil, err
}

// locate runs the capture, parse and query loop.
func (c *Client) locate(q *hierarchy.Query, timeout time.Duration) ([]hierarchy.Node, error) {
	start := time.Now()
	wait := c.newBackOff()
	wait.Reset()

	for {
		nodes, err := c.attempt(q)
		if err != nil {
			return nil, err
		}
		if len(nodes) > 0 {
			return nodes, nil
		}

		if timeout <= 0 {
			return nil, nil
		}
		elapsed := time.Since(start)
		if elapsed >= timeout {
			return nil, nil
		}

		d := wait.NextBackOff()
		if d == backoff.Stop || d < 0 {
			d = 0
		}
		if remaining := timeout - elapsed; d > remaining {
			d = remaining
		}
		if d > 0 {
			time.Sleep(d)
		}
	}
}

// attempt performs one cycle. Only transport faults are returned.
func (c *Client) attempt(q *hierarchy.Query) ([]hierarchy.Node, error) {
	snap, err := c.capturer.Capture()
	if err != nil {
		if errors.Is(err, core.ErrCaptureFailed) {
			return nil, nil
		}
		return nil, err
	}
	if snap == "" {
		return nil, nil
	}

	tree, err := hierarchy.Parse(snap)
	if err != nil {
		// The dump may have been read mid-write.
		return nil, nil
	}
	return tree.Query(q), nil
}
