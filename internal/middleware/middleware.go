package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// SessionData is the payload carried by a live session.
type SessionData struct {
	Username  string
	Email     string
	ExpiresAt time.Time
}

// SessionFetcher resolves an opaque session id to its payload. An expired or
// unknown id is an error; the fetcher owns expiry, not this package.
type SessionFetcher interface {
	FindSessionByID(id string) (SessionData, error)
}

type contextKey string

const contextSessionKey contextKey = "session"

// RequireSession gates a route behind a live session. Anonymous requests
// (no cookie, unknown id, expired record) are redirected to the landing page
// rather than rejected; this is a browser app, not an API.
func RequireSession(fetcher SessionFetcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("session_id")
			if err != nil {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			session, err := fetcher.FindSessionByID(cookie.Value)
			if err != nil {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), contextSessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session placed in the context by
// RequireSession.
func SessionFromContext(ctx context.Context) (SessionData, bool) {
	session, ok := ctx.Value(contextSessionKey).(SessionData)
	return session, ok
}

// Throttle caps how fast a single client IP may hit the routes it wraps.
// Entries are never evicted; at this traffic level the map stays small.
type Throttle struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func NewThrottle(r rate.Limit, burst int) *Throttle {
	return &Throttle{
		visitors: make(map[string]*rate.Limiter),
		rate:     r,
		burst:    burst,
	}
}

func (t *Throttle) limiter(ip string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	lim, ok := t.visitors[ip]
	if !ok {
		lim = rate.NewLimiter(t.rate, t.burst)
		t.visitors[ip] = lim
	}
	return lim
}

func (t *Throttle) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !t.limiter(ip).Allow() {
			http.Error(w, "Too many attempts, slow down", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
