package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateUsername reports an insert that collided with an existing
// username.
var ErrDuplicateUsername = errors.New("username already taken")

// ErrNoSession reports a session id with no live record behind it.
var ErrNoSession = errors.New("session not found")

// UserStore is the thin adapter over the users collection.
type UserStore interface {
	Insert(user *User) error
	FindByUsername(username string) ([]User, error)
	FindByEmail(email string) ([]User, error)
}

// SessionStore owns session records. FindByID never returns an expired
// session: expiry is enforced here, not by callers.
type SessionStore interface {
	Create(session *Session) error
	FindByID(id string) (*Session, error)
	Delete(id string) error
}

const uniqueViolation = "23505"

type GormUserStore struct {
	DB *gorm.DB
}

func (s *GormUserStore) Insert(user *User) error {
	if err := s.DB.Create(user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (s *GormUserStore) FindByUsername(username string) ([]User, error) {
	var users []User
	if err := s.DB.Where("username = ?", username).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormUserStore) FindByEmail(email string) ([]User, error) {
	var users []User
	if err := s.DB.Where("email = ?", email).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

type GormSessionStore struct {
	DB *gorm.DB
}

func (s *GormSessionStore) Create(session *Session) error {
	return s.DB.Create(session).Error
}

func (s *GormSessionStore) FindByID(id string) (*Session, error) {
	var session Session
	err := s.DB.First(&session, "session_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	if session.ExpiresAt.Before(time.Now()) {
		// Expired rows are reaped on read; to every caller the session
		// simply no longer exists, even if the reap itself failed.
		return nil, reapResult(s.DB.Delete(&session).Error)
	}
	return &session, nil
}

// reapResult folds a reap failure into the not-found error so it isn't lost,
// while keeping ErrNoSession identity for callers checking the session state.
func reapResult(delErr error) error {
	if delErr != nil {
		return fmt.Errorf("%w (failed to reap expired record: %v)", ErrNoSession, delErr)
	}
	return ErrNoSession
}

func (s *GormSessionStore) Delete(id string) error {
	return s.DB.Where("session_id = ?", id).Delete(&Session{}).Error
}
