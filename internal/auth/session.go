package auth

import (
	"net/http"
	"time"

	"github.com/SimratKaur2/comp2535-assignment1/internal/middleware"
	"github.com/google/uuid"
)

const sessionCookieName = "session_id"

// Manager moves a client between the two session states: Anonymous (no live
// record behind the cookie) and Authenticated (an unexpired record). The
// cookie value is an unguessable random id; the payload never leaves the
// server.
type Manager struct {
	Store  SessionStore
	TTL    time.Duration
	Secure bool
}

func NewManager(store SessionStore, ttl time.Duration, secure bool) *Manager {
	return &Manager{Store: store, TTL: ttl, Secure: secure}
}

// Issue transitions the client to Authenticated: a fresh record with a fixed
// expiry, referenced by an opaque cookie whose max-age matches the TTL.
// Other sessions for the same user are left alone.
func (m *Manager) Issue(w http.ResponseWriter, username, email string) (*Session, error) {
	session := &Session{
		SessionID: uuid.New().String(),
		Username:  username,
		Email:     email,
		ExpiresAt: time.Now().Add(m.TTL),
	}
	if err := m.Store.Create(session); err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.SessionID,
		Path:     "/",
		MaxAge:   int(m.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.Secure,
	})
	return session, nil
}

// Current resolves the request's cookie to a live session. A missing cookie,
// unknown id, or expired record all come back as ErrNoSession.
func (m *Manager) Current(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, ErrNoSession
	}
	return m.Store.FindByID(cookie.Value)
}

// Destroy deletes the session record, if any, and expires the cookie. It is a
// hard destroy, safe to call from any state.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := m.Store.Delete(cookie.Value); err != nil {
			return err
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	return nil
}

// FindSessionByID satisfies middleware.SessionFetcher so the Manager can back
// the protected-route guard.
func (m *Manager) FindSessionByID(id string) (middleware.SessionData, error) {
	session, err := m.Store.FindByID(id)
	if err != nil {
		return middleware.SessionData{}, err
	}
	return middleware.SessionData{
		Username:  session.Username,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
