package repository

import (
	"context"
	"strings"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID                  string     `gorm:"column:id;primaryKey;size:36"`
	Email               string     `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash        string     `gorm:"column:password_hash;not null"`
	FirstName           string     `gorm:"column:first_name"`
	LastName            string     `gorm:"column:last_name"`
	FailedLoginAttempts int        `gorm:"column:failed_login_attempts;not null;default:0"`
	AccountLocked       bool       `gorm:"column:account_locked;not null;default:false"`
	LockUntil           *time.Time `gorm:"column:lock_until"`
	CreatedAt           time.Time  `gorm:"column:created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:                  m.ID,
		Email:               m.Email,
		PasswordHash:        m.PasswordHash,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		FailedLoginAttempts: m.FailedLoginAttempts,
		AccountLocked:       m.AccountLocked,
		LockUntil:           m.LockUntil,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:                  u.ID,
		Email:               normalizeEmail(u.Email),
		PasswordHash:        u.PasswordHash,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		FailedLoginAttempts: u.FailedLoginAttempts,
		AccountLocked:       u.AccountLocked,
		LockUntil:           u.LockUntil,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userModel{}).
		Where("email = ?", normalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

// SaveLockout writes only the lockout columns, and only while the row still
// holds prev. A concurrent login that moved the counter first yields
// ErrRevisionConflict.
func (r *UserRepository) SaveLockout(ctx context.Context, userID string, prev, next domain.LockoutState) error {
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ? AND failed_login_attempts = ? AND account_locked = ?", userID, prev.FailedAttempts, prev.Locked).
		Updates(map[string]any{
			"failed_login_attempts": next.FailedAttempts,
			"account_locked":        next.Locked,
			"lock_until":            next.LockUntil,
			"updated_at":            time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return ErrRevisionConflict
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
