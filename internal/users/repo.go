package users

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/phantomplay/backend/internal/logger"
)

var ErrNotFound = errors.New("users: not found")

// NormalizeEmail trims whitespace and lower-cases an address. Emails are
// stored and compared in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Repo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRepo(db *gorm.DB, log *logger.Logger) *Repo {
	return &Repo{db: db, log: log.With("repo", "users")}
}

// Create hashes the password and inserts a new account. It returns
// (false, nil) when the email or session id is already taken.
func (r *Repo) Create(ctx context.Context, sessionID, username, email, password string) (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	u := &User{
		SessionID:    sessionID,
		Username:     username,
		Email:        NormalizeEmail(email),
		PasswordHash: string(hash),
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicate(err) {
			r.log.Warn("duplicate account rejected", "email", u.Email)
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Repo) EmailExists(ctx context.Context, email string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&User{}).
		Where("email = ?", NormalizeEmail(email)).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// VerifyPassword compares the supplied password against the stored bcrypt
// hash. Unknown emails and mismatches both return (false, nil).
func (r *Repo) VerifyPassword(ctx context.Context, email, password string) (bool, error) {
	var u User
	err := r.db.WithContext(ctx).
		Where("email = ?", NormalizeEmail(email)).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SessionIDByEmail resolves the durable session identifier for an account.
func (r *Repo) SessionIDByEmail(ctx context.Context, email string) (string, error) {
	var u User
	err := r.db.WithContext(ctx).
		Select("session_id").
		Where("email = ?", NormalizeEmail(email)).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return u.SessionID, nil
}

func (r *Repo) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("email = ?", NormalizeEmail(email)).
		Delete(&User{}).Error
}

func (r *Repo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&User{}).Error
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
