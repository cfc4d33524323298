// Package circuitbreaker sheds load from failing upstream vendors
// (PayPal, HubSpot). State lives in redis so every instance sees the
// same circuit.
package circuitbreaker

import (
	"context"
	"errors"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

const (
	defaultFailureThreshold = 5
	defaultFailWindow       = 10
	defaultOpenCooldown     = 30
	defaultFailOpen         = true
	defaultPrefix           = "cb:"
)

type Breaker interface {
	Allow(ctx context.Context) error
	OnSuccess(ctx context.Context)
	OnFailure(ctx context.Context)
}

type Options struct {
	// Number of failures before entering open state.
	FailureThreshold int
	// Time between failures to count as an outage.
	FailWindow time.Duration
	// How long to stay in open state before allowing traffic again.
	OpenCoolDown time.Duration
	// Behavior of Allow while redis is unreachable and the circuit
	// state is unknown.
	// TRUE: requests proceed without the breaker participating
	// FALSE: requests are blocked
	FailOpen bool
	// Key prefix to prevent name clashing.
	Prefix string
}

func DefaultOptions() Options {
	return Options{
		FailureThreshold: defaultFailureThreshold,
		FailWindow:       defaultFailWindow * time.Second,
		OpenCoolDown:     defaultOpenCooldown * time.Second,
		FailOpen:         defaultFailOpen,
		Prefix:           defaultPrefix,
	}
}
