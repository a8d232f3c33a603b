package profile

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/actext/console/internal/services/console/routepath"
	"github.com/actext/console/internal/services/console/templates"
)

// profileCard renders the read-only profile screen.
func profileCard(view View, memberSince string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprint(w, `<section class="profile">`); err != nil {
			return err
		}
		if view.Degraded {
			if err := templates.Banner("error", "Showing the cached copy of your profile.").Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<div class="avatar">%s</div><h1>%s</h1>`,
			templ.EscapeString(view.Initial()), templ.EscapeString(view.Name)); err != nil {
			return err
		}
		role := "Member"
		if view.IsAdmin {
			role = "Administrator"
		}
		if _, err := fmt.Fprintf(w,
			`<dl class="profile-fields"><dt>Email</dt><dd>%s</dd><dt>Role</dt><dd>%s</dd><dt>Member since</dt><dd>%s</dd></dl>`,
			templ.EscapeString(view.Email), role, templ.EscapeString(memberSince)); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, `<a class="button button-primary" href="%s">Edit Profile</a></section>`,
			templ.EscapeString(routepath.ProfileEdit))
		return err
	})
}

// profileForm renders the edit form. The email field is shown but not
// editable; saves never change the address.
func profileForm(view View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="profile"><h1>Edit Profile</h1><form method="post" action="%s">`,
			templ.EscapeString(routepath.Profile)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<label for="name">Name</label><input id="name" name="name" type="text" value="%s" required>`,
			templ.EscapeString(view.Name)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<label for="email">Email</label><input id="email" name="email" type="email" value="%s" readonly>`,
			templ.EscapeString(view.Email)); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<button type="submit">Save</button> <a class="button" href="%s">Cancel</a></form></section>`,
			templ.EscapeString(routepath.Profile))
		return err
	})
}
