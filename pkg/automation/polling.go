package automation

import (
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff"

	"github.com/devicelab-dev/uiprobe/pkg/core"
)

// Polling strategies accepted by Polling.
const (
	PollNone        = "none"
	PollConstant    = "constant"
	PollExponential = "exponential"
)

// maxExponentialInterval caps the exponential strategy.
const maxExponentialInterval = time.Second

// ConstantPolling waits d between attempts. d <= 0 busy-polls.
func ConstantPolling(d time.Duration) func() backoff.BackOff {
	return func() backoff.BackOff {
		if d <= 0 {
			return &backoff.ZeroBackOff{}
		}
		return backoff.NewConstantBackOff(d)
	}
}

// ExponentialPolling starts at initial and grows towards one second.
func ExponentialPolling(initial time.Duration) func() backoff.BackOff {
	return func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		if initial > 0 {
			b.InitialInterval = initial
		}
		b.MaxInterval = maxExponentialInterval
		b.MaxElapsedTime = 0 // the locator's own timeout bounds the loop
		b.Reset()
		return b
	}
}

// Polling resolves a configured strategy name.
func Polling(strategy string, interval time.Duration) (func() backoff.BackOff, error) {
	switch strings.ToLower(strategy) {
	case PollNone:
		return ConstantPolling(0), nil
	case "", PollConstant:
		if interval == 0 {
			interval = DefaultPollInterval
		}
		return ConstantPolling(interval), nil
	case PollExponential:
		return ExponentialPolling(interval), nil
	default:
		return nil, core.ErrInvalidConfig.WithMessage(fmt.Sprintf("unknown poll strategy %q (use none, constant or exponential)", strategy))
	}
}
