package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/logger"
	"hotelbooking/internal/pkg/validator"
	"hotelbooking/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service contains all business logic for authentication
type Service struct {
	users   UserRepositoryInterface
	tokens  tokenIssuer
	lockout LockoutPolicy
	log     *logger.Logger
	now     func() time.Time
}

func NewService(users UserRepositoryInterface, tokens tokenIssuer, lockout LockoutPolicy, log *logger.Logger) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		lockout: lockout,
		log:     log.With("component", "auth"),
		now:     time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if fields := validator.Validate(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// maxLockoutRetries bounds how often Login re-reads a user whose lockout
// state was moved by a parallel login.
const maxLockoutRetries = 3

// Login runs the lockout gate and issues a token on success. The lockout
// state is written back whenever the transition changed it, conditional on
// the state it was derived from.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	passwordOK := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) == nil
	verify := func() bool { return passwordOK }

	now := s.now()
	var outcome LoginOutcome
	for attempt := 0; ; attempt++ {
		prev := user.LockoutState()
		var next domain.LockoutState
		next, outcome = s.lockout.Evaluate(prev, now, verify)
		if next.Equal(prev) {
			break
		}

		err := s.users.SaveLockout(ctx, user.ID, prev, next)
		if err == nil {
			if outcome == OutcomeLocked && !prev.LockedAt(now) {
				s.log.Warn("account locked", "user_id", user.ID, "failed_attempts", next.FailedAttempts, "lock_until", next.LockUntil)
			}
			break
		}
		if !errors.Is(err, repository.ErrRevisionConflict) || attempt >= maxLockoutRetries {
			return nil, fmt.Errorf("save lockout state: %w", err)
		}

		if user, err = s.users.GetByEmail(ctx, req.Email); err != nil {
			return nil, fmt.Errorf("reload user after lockout conflict: %w", err)
		}
	}

	switch outcome {
	case OutcomeLocked:
		return nil, ErrAccountLocked
	case OutcomeInvalidCredentials:
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Email: user.Email}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
