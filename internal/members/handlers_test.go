package members_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SimratKaur2/comp2535-assignment1/internal/members"
	"github.com/SimratKaur2/comp2535-assignment1/internal/middleware"
	"go.uber.org/zap"
)

type fakeGallery struct {
	images []string
	err    error
}

func (f fakeGallery) Images(name string) ([]string, error) {
	return f.images, f.err
}

type stubFetcher struct {
	session middleware.SessionData
	err     error
}

func (s stubFetcher) FindSessionByID(id string) (middleware.SessionData, error) {
	return s.session, s.err
}

func getMembers(t *testing.T, h *members.Handler, fetcher middleware.SessionFetcher, withCookie bool) *httptest.ResponseRecorder {
	t.Helper()

	router := h.Routes(middleware.RequireSession(fetcher))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: "session_id", Value: "some-id"})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func aliceFetcher() stubFetcher {
	return stubFetcher{session: middleware.SessionData{
		Username:  "alice",
		Email:     "a@b.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}}
}

// TestMembersGreetsUserWithImage verifies the page carries the username and
// one of the gallery images.
func TestMembersGreetsUserWithImage(t *testing.T) {
	h := &members.Handler{
		Gallery: fakeGallery{images: []string{"gif1.gif"}},
		Log:     zap.NewNop(),
	}

	rec := getMembers(t, h, aliceFetcher(), true)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Hello alice") {
		t.Errorf("body = %q, want greeting for alice", body)
	}
	if !strings.Contains(body, "gif1.gif") {
		t.Errorf("body = %q, want the gallery image", body)
	}
}

// TestMembersImagePickedFromGallery verifies the random pick always lands on
// a configured image.
func TestMembersImagePickedFromGallery(t *testing.T) {
	images := []string{"gif1.gif", "gif2.gif", "gif3.gif"}
	h := &members.Handler{
		Gallery: fakeGallery{images: images},
		Log:     zap.NewNop(),
	}

	for i := 0; i < 20; i++ {
		rec := getMembers(t, h, aliceFetcher(), true)
		body := rec.Body.String()
		found := false
		for _, img := range images {
			if strings.Contains(body, img) {
				found = true
			}
		}
		if !found {
			t.Fatalf("body = %q, contains none of the gallery images", body)
		}
	}
}

// TestMembersRendersWithoutGallery verifies a gallery failure degrades to a
// page without the decorative image instead of an error.
func TestMembersRendersWithoutGallery(t *testing.T) {
	h := &members.Handler{
		Gallery: fakeGallery{err: errors.New("gallery unavailable")},
		Log:     zap.NewNop(),
	}

	rec := getMembers(t, h, aliceFetcher(), true)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Hello alice") {
		t.Errorf("body = %q, want greeting", body)
	}
	if strings.Contains(body, "<img") {
		t.Errorf("body = %q, want no image tag", body)
	}
}

// TestMembersAnonymousRedirects verifies the guard sends cookie-less
// requests back to the landing page.
func TestMembersAnonymousRedirects(t *testing.T) {
	h := &members.Handler{
		Gallery: fakeGallery{images: []string{"gif1.gif"}},
		Log:     zap.NewNop(),
	}

	rec := getMembers(t, h, stubFetcher{err: errors.New("session not found")}, false)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}
