package auth

import (
	"bytes"
	"html/template"
	"net/http"
)

// Page bodies are small enough to live inline. Rendering goes through a
// buffer so a template failure becomes a clean 500 instead of a half-written
// page.

var landingAnonPage = template.Must(template.New("landingAnon").Parse(`
<ul>
  <li><a href="/signUp">Sign Up</a></li>
  <li><a href="/login">Login</a></li>
</ul>
`))

var landingUserPage = template.Must(template.New("landingUser").Parse(`
<h1>Hello, {{.Username}}!</h1>
<p>Welcome back to our website!</p>
<ul>
  <li>
    <form action="/members">
      <button type="submit">Go to Members Area</button>
    </form>
  </li>
  <li>
    <form action="/logout" method="post">
      <button type="submit">Log Out</button>
    </form>
  </li>
</ul>
`))

var signUpPage = template.Must(template.New("signUp").Parse(`
create user
<form action='/submitUser' method='post'>
  <input name='username' type='text' placeholder='name'><br>
  <input name='email' type='email' placeholder='email'><br>
  <input name='password' type='password' placeholder='password'><br>
  <button>Submit</button>
</form>
`))

var loginPage = template.Must(template.New("login").Parse(`
log in
<form action='/loggingin' method='post'>
  <input name='email' type='email' placeholder='email'><br>
  <input name='password' type='password' placeholder='password'><br>
  <button>Submit</button>
</form>
{{if .EmptyFields}}<span style='color:red;'>Email and password is required.</span><br>{{end}}
`))

var errorPage = template.Must(template.New("error").Parse(`
<h1>Error</h1>
<p>{{range .Messages}}{{.}}<br>{{end}}</p>
<a href="/signUp">Try Again</a>
`))

var loginFailedPage = template.Must(template.New("loginFailed").Parse(`
Invalid email/password combination.<br>
<a href="/login">Try Again</a>
`))

func render(w http.ResponseWriter, t *template.Template, data any) {
	buf := &bytes.Buffer{}
	if err := t.Execute(buf, data); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
