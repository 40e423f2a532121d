package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/dmelim/userlist/internal/domain"
)

// RegisterForm carries the submitted values and field errors back into the
// registration page so the user can correct a rejected submission.
type RegisterForm struct {
	Name   string
	Email  string
	Errors map[string]string
}

// RegisterPage renders the user registration form.
func RegisterPage(form RegisterForm) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Register user</h1><form method="post" action="/register">`); err != nil {
			return err
		}
		if err := formField(w, "name", "Name", "text", form.Name, form.Errors["name"]); err != nil {
			return err
		}
		if err := formField(w, "email", "Email", "email", form.Email, form.Errors["email"]); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<button type="submit">Register</button></form><p><a href="/users">View users</a></p>`)
		return err
	})
	return page("Register user", body)
}

func formField(w io.Writer, name, label, inputType, value, errMsg string) error {
	_, err := fmt.Fprintf(w,
		`<p><label for="%[1]s">%[2]s</label> <input type="%[3]s" id="%[1]s" name="%[1]s" value="%[4]s">`,
		name, templ.EscapeString(label), inputType, templ.EscapeString(value),
	)
	if err != nil {
		return err
	}
	if errMsg != "" {
		if _, err := fmt.Fprintf(w, `<span class="field-error">%s</span>`, templ.EscapeString(errMsg)); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "</p>")
	return err
}

// UsersPage renders the registered users as "{name} - {email}" entries, or a
// placeholder when none exist yet.
func UsersPage(users []domain.User) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<h1>Users</h1>"); err != nil {
			return err
		}
		if len(users) == 0 {
			_, err := io.WriteString(w, `<p>No users registered yet.</p><p><a href="/register">Register a user</a></p>`)
			return err
		}
		if _, err := io.WriteString(w, "<ul>"); err != nil {
			return err
		}
		for _, u := range users {
			if _, err := fmt.Fprintf(w, "<li>%s - %s</li>",
				templ.EscapeString(u.Name), templ.EscapeString(u.Email)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul><p><a href="/register">Register a user</a></p>`)
		return err
	})
	return page("Users", body)
}
