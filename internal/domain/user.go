package domain

import "time"

type User struct {
	ID                  string     `json:"userId"`
	Email               string     `json:"email" validate:"required,email"`
	PasswordHash        string     `json:"-"`
	FirstName           string     `json:"firstName"`
	LastName            string     `json:"lastName"`
	FailedLoginAttempts int        `json:"-"`
	AccountLocked       bool       `json:"-"`
	LockUntil           *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// LockoutState is the part of a user record that the login gate reads and
// rewrites. It is passed by value so transitions never touch the user.
type LockoutState struct {
	FailedAttempts int
	Locked         bool
	LockUntil      *time.Time
}

func (u *User) LockoutState() LockoutState {
	return LockoutState{
		FailedAttempts: u.FailedLoginAttempts,
		Locked:         u.AccountLocked,
		LockUntil:      u.LockUntil,
	}
}

func (u *User) ApplyLockout(s LockoutState) {
	u.FailedLoginAttempts = s.FailedAttempts
	u.AccountLocked = s.Locked
	u.LockUntil = s.LockUntil
}

// LockedAt reports whether the lock is still in force at now.
func (s LockoutState) LockedAt(now time.Time) bool {
	return s.Locked && s.LockUntil != nil && s.LockUntil.After(now)
}

func (s LockoutState) Equal(o LockoutState) bool {
	if s.FailedAttempts != o.FailedAttempts || s.Locked != o.Locked {
		return false
	}
	if s.LockUntil == nil || o.LockUntil == nil {
		return s.LockUntil == nil && o.LockUntil == nil
	}
	return s.LockUntil.Equal(*o.LockUntil)
}
