package members

import (
	"bytes"
	"html/template"
	"math/rand"
	"net/http"

	"github.com/SimratKaur2/comp2535-assignment1/internal/middleware"
	"go.uber.org/zap"
)

// Handler serves the protected members view.
type Handler struct {
	Gallery GalleryStore
	Log     *zap.Logger
}

var membersPage = template.Must(template.New("members").Parse(`
<h1>Hello {{.Username}},</h1>
{{if .Image}}<img src='/{{.Image}}' style='width:250px;'><br>{{end}}
<form action='/logout' method='post'><br>
  <button>Sign Out</button>
</form>
`))

type membersData struct {
	Username string
	Image    string
}

// MembersHandler greets the signed-in user with a randomly chosen gallery
// image. The image is decorative; if the gallery can't be read the page still
// renders.
func (h *Handler) MembersHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	data := membersData{Username: session.Username}
	images, err := h.Gallery.Images(DefaultGallery)
	if err != nil {
		h.Log.Warn("failed to load gallery", zap.Error(err))
	} else if len(images) > 0 {
		data.Image = images[rand.Intn(len(images))]
	}

	buf := &bytes.Buffer{}
	if err := membersPage.Execute(buf, data); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
