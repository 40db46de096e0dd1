package deepseek

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/core/domain"
	"github.com/NPC-NICEPEOPLEC/AiRename-WebApp/internal/infrastructure/resilience"
)

type failureClass int

const (
	failureOther failureClass = iota
	failureCallerAborted
	failureAuth
	failureRateLimited
	failureConnection
	failureTimeout
	failureStatus
	failureCircuitOpen
)

func (f failureClass) String() string {
	switch f {
	case failureCallerAborted:
		return "aborted"
	case failureAuth:
		return "auth"
	case failureRateLimited:
		return "rate_limited"
	case failureConnection:
		return "connection"
	case failureTimeout:
		return "timeout"
	case failureStatus:
		return "status"
	case failureCircuitOpen:
		return "circuit_open"
	default:
		return "other"
	}
}

// errCallerAborted marks failures caused by the caller's own context.
var errCallerAborted = errors.New("caller aborted")

// RetryPolicy is the pause before the next attempt, per failure class.
// Auth and rate-limit failures are never retried.
type RetryPolicy struct {
	ConnectionDelay time.Duration
	TimeoutDelay    time.Duration
	StatusDelay     time.Duration
	OtherDelay      time.Duration
}

// DefaultRetryPolicy pauses two units after a connection failure and one
// unit after anything else.
func DefaultRetryPolicy(unit time.Duration) RetryPolicy {
	if unit <= 0 {
		unit = time.Second
	}
	return RetryPolicy{
		ConnectionDelay: 2 * unit,
		TimeoutDelay:    unit,
		StatusDelay:     unit,
		OtherDelay:      unit,
	}
}

func classifyFailure(err error) failureClass {
	if errors.Is(err, errCallerAborted) {
		return failureCallerAborted
	}
	if resilience.IsCircuitOpen(err) {
		return failureCircuitOpen
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return failureAuth
		case http.StatusTooManyRequests:
			return failureRateLimited
		default:
			return failureStatus
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return failureTimeout
		}
		return failureConnection
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return failureTimeout
	}
	return failureOther
}

func (p RetryPolicy) classify(err error) resilience.ErrorClassification {
	switch classifyFailure(err) {
	case failureCallerAborted:
		return resilience.ErrorClassification{}
	case failureAuth, failureRateLimited:
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	case failureConnection:
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true, Backoff: p.ConnectionDelay}
	case failureTimeout:
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true, Backoff: p.TimeoutDelay}
	case failureStatus:
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true, Backoff: p.StatusDelay}
	case failureCircuitOpen:
		return resilience.ErrorClassification{Retryable: false, RecordFailure: true}
	default:
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true, Backoff: p.OtherDelay}
	}
}

// toDomainError maps the last outstanding failure onto the boundary taxonomy.
func toDomainError(err error) error {
	const op = "deepseek complete"
	switch classifyFailure(err) {
	case failureAuth:
		return domain.WrapError(domain.ErrUpstreamAuth, op, err)
	case failureRateLimited:
		return domain.WrapError(domain.ErrRateLimited, op, err)
	case failureConnection, failureCircuitOpen:
		return domain.WrapError(domain.ErrUnreachable, op, err)
	case failureTimeout:
		return domain.WrapError(domain.ErrTimeout, op, err)
	case failureCallerAborted:
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.WrapError(domain.ErrTimeout, op, err)
		}
		return err
	default:
		return domain.WrapError(domain.ErrUpstream, op, err)
	}
}
