package auth

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/SimratKaur2/comp2535-assignment1/internal/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler carries the collaborators the auth routes need. Handlers hold no
// state of their own; everything request-scoped lives in the session store.
type Handler struct {
	Users    UserStore
	Sessions *Manager
	Hasher   Hasher
	Log      *zap.Logger
}

func NewHandler(users UserStore, sessions *Manager, hasher Hasher, log *zap.Logger) *Handler {
	return &Handler{Users: users, Sessions: sessions, Hasher: hasher, Log: log}
}

// LandingHandler renders the anonymous landing page, or a greeting with the
// members-area link when a live session is present.
func (h *Handler) LandingHandler(w http.ResponseWriter, r *http.Request) {
	session, err := h.Sessions.Current(r)
	if errors.Is(err, ErrNoSession) {
		render(w, landingAnonPage, nil)
		return
	}
	if err != nil {
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}
	render(w, landingUserPage, session)
}

func (h *Handler) SignUpFormHandler(w http.ResponseWriter, r *http.Request) {
	render(w, signUpPage, nil)
}

// ErrorHandler names the required fields the last submission was missing,
// driven by query flags set on the redirect.
func (h *Handler) ErrorHandler(w http.ResponseWriter, r *http.Request) {
	var messages []string
	if r.URL.Query().Get("missingName") != "" {
		messages = append(messages, "Name is required.")
	}
	if r.URL.Query().Get("missingEmail") != "" {
		messages = append(messages, "Email is required.")
	}
	if r.URL.Query().Get("missingPassword") != "" {
		messages = append(messages, "Password is required.")
	}
	render(w, errorPage, struct{ Messages []string }{messages})
}

func (h *Handler) LoginFormHandler(w http.ResponseWriter, r *http.Request) {
	render(w, loginPage, struct{ EmptyFields bool }{
		EmptyFields: r.URL.Query().Get("emptyFields") != "",
	})
}

func (h *Handler) LoginFailedHandler(w http.ResponseWriter, r *http.Request) {
	render(w, loginFailedPage, nil)
}

// SubmitUserHandler handles sign-up: presence check, schema validation, hash,
// insert, then straight into an authenticated session.
func (h *Handler) SubmitUserHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	username, uErr := validate.ScalarField(r.PostForm, "username")
	email, eErr := validate.ScalarField(r.PostForm, "email")
	password, pErr := validate.ScalarField(r.PostForm, "password")
	if uErr != nil || eErr != nil || pErr != nil {
		// Structured or repeated fields never reach the store.
		http.Redirect(w, r, "/signUp", http.StatusFound)
		return
	}

	// Flag every missing field at once so the error page can name them.
	if username == "" || email == "" || password == "" {
		q := url.Values{}
		if username == "" {
			q.Set("missingName", "1")
		}
		if email == "" {
			q.Set("missingEmail", "1")
		}
		if password == "" {
			q.Set("missingPassword", "1")
		}
		http.Redirect(w, r, "/error?"+q.Encode(), http.StatusFound)
		return
	}

	var err error
	if username, err = validate.Username.Validate(username); err == nil {
		if email, err = validate.Email.Validate(email); err == nil {
			password, err = validate.Password.Validate(password)
		}
	}
	if err != nil {
		// Schema violations go silently back to the form; no detail leaks.
		http.Redirect(w, r, "/signUp", http.StatusFound)
		return
	}

	hashed, err := h.Hasher.Hash(password)
	if err != nil {
		http.Error(w, "Server error hashing password", http.StatusInternalServerError)
		return
	}

	user := &User{
		UserID:         uuid.New().String(),
		Username:       username,
		Email:          email,
		HashedPassword: hashed,
	}
	if err := h.Users.Insert(user); err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			// Same silent redirect as a schema violation, so the response
			// doesn't reveal whether an account exists.
			h.Log.Info("sign-up rejected: duplicate username", zap.String("username", username))
			http.Redirect(w, r, "/signUp", http.StatusFound)
			return
		}
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}
	h.Log.Info("inserted user", zap.String("username", username))

	if _, err := h.Sessions.Issue(w, username, email); err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/members", http.StatusFound)
}

// LoggingInHandler handles login. Zero email matches, an ambiguous email, and
// a wrong password all take the same exit so the client cannot tell which
// happened.
func (h *Handler) LoggingInHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid Request Format", http.StatusBadRequest)
		return
	}

	email, eErr := validate.ScalarField(r.PostForm, "email")
	password, pErr := validate.ScalarField(r.PostForm, "password")
	if eErr != nil || pErr != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if email == "" || password == "" {
		http.Redirect(w, r, "/login?emptyFields=1", http.StatusFound)
		return
	}

	if _, err := validate.Email.Validate(email); err != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	matches, err := h.Users.FindByEmail(email)
	if err != nil {
		http.Error(w, "Failed to look up user", http.StatusInternalServerError)
		return
	}
	if len(matches) != 1 {
		h.Log.Info("login failed", zap.String("email", email))
		http.Redirect(w, r, "/loginSubmit", http.StatusFound)
		return
	}

	user := matches[0]
	if !h.Hasher.Check(password, user.HashedPassword) {
		h.Log.Info("login failed", zap.String("email", email))
		http.Redirect(w, r, "/loginSubmit", http.StatusFound)
		return
	}

	if _, err := h.Sessions.Issue(w, user.Username, email); err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}
	h.Log.Info("login succeeded", zap.String("username", user.Username))
	http.Redirect(w, r, "/members", http.StatusFound)
}

// LogoutHandler destroys the session unconditionally and sends the client
// back to the landing page.
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Destroy(w, r); err != nil {
		http.Error(w, "Failed to destroy session", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
