package auth

import "time"

// User is the persisted account record. The hash is opaque and irreversible;
// the plaintext never touches storage. Records are created on sign-up and
// never mutated or deleted.
type User struct {
	UserID         string `gorm:"primaryKey" json:"user_id"`
	Username       string `gorm:"uniqueIndex;size:20;not null" json:"username"`
	Email          string `gorm:"index;size:254;not null" json:"email"`
	HashedPassword string `json:"-"`
}

// Session is one authenticated login. The record existing and being unexpired
// IS the Authenticated state; everything else is Anonymous. SessionID is the
// opaque value held in the client's cookie.
type Session struct {
	SessionID string    `gorm:"primaryKey" json:"-"`
	Username  string    `gorm:"not null" json:"-"`
	Email     string    `json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"-"`
}

func (User) TableName() string    { return "app_auth.users" }
func (Session) TableName() string { return "app_auth.sessions" }
