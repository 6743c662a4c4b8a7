package auth

import (
	"time"

	"hotelbooking/internal/domain"
)

type LoginOutcome int

const (
	OutcomeGranted LoginOutcome = iota
	OutcomeInvalidCredentials
	OutcomeLocked
)

func (o LoginOutcome) String() string {
	switch o {
	case OutcomeGranted:
		return "granted"
	case OutcomeInvalidCredentials:
		return "invalid_credentials"
	case OutcomeLocked:
		return "locked"
	}
	return "unknown"
}

// LockoutPolicy decides login attempts against a user's lockout state.
type LockoutPolicy struct {
	MaxAttempts int
	Duration    time.Duration
}

func DefaultLockoutPolicy() LockoutPolicy {
	return LockoutPolicy{MaxAttempts: 5, Duration: 30 * time.Minute}
}

// Evaluate is a pure transition. A correct credential always wins, even
// while a lock is in force. A wrong credential during an active lock is
// rejected without counting. Outside a lock, wrong credentials count towards
// MaxAttempts; expired locks are never cleared eagerly, so a wrong attempt
// after expiry counts on top of the old counter and locks again.
func (p LockoutPolicy) Evaluate(s domain.LockoutState, now time.Time, verify func() bool) (domain.LockoutState, LoginOutcome) {
	if verify() {
		return domain.LockoutState{}, OutcomeGranted
	}

	if s.LockedAt(now) {
		return s, OutcomeLocked
	}

	next := domain.LockoutState{FailedAttempts: s.FailedAttempts + 1}
	if next.FailedAttempts >= p.MaxAttempts {
		until := now.Add(p.Duration)
		next.Locked = true
		next.LockUntil = &until
		return next, OutcomeLocked
	}
	return next, OutcomeInvalidCredentials
}
