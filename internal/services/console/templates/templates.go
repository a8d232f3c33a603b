// Package templates holds shared console layout and view components.
//
// Components are assembled in plain Go against the templ runtime; the
// console has no generated template sources.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/actext/console/internal/platform/branding"
)

// AppName is the product name rendered in the console chrome.
const AppName = branding.AppName

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang     string
	Loc      Localizer
	UserName string
}

// Toast is a transient notice rendered once at the top of a page.
type Toast struct {
	Kind    string
	Message string
}

// Empty is a component that renders nothing.
func Empty() templ.Component {
	return templ.ComponentFunc(func(context.Context, io.Writer) error { return nil })
}

// Layout renders the console document shell around a body fragment.
func Layout(title string, page PageContext, toast *Toast, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(page.Lang)
		if lang == "" {
			lang = "en"
		}
		fullTitle := strings.TrimSpace(title)
		if fullTitle == "" {
			fullTitle = AppName
		} else {
			fullTitle += " - " + AppName
		}
		if _, err := fmt.Fprintf(w,
			`<!doctype html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title></head><body>`,
			templ.EscapeString(lang), templ.EscapeString(fullTitle)); err != nil {
			return err
		}
		if err := header(page).Render(ctx, w); err != nil {
			return err
		}
		if toast != nil {
			if err := toastComponent(*toast).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<main class="console-main">`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func header(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<header class="console-header"><span class="brand">%s</span>`, templ.EscapeString(AppName)); err != nil {
			return err
		}
		if name := strings.TrimSpace(page.UserName); name != "" {
			if _, err := fmt.Fprintf(w, `<span class="viewer">%s</span>`, templ.EscapeString(name)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</header>`)
		return err
	})
}

func toastComponent(toast Toast) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		kind := strings.TrimSpace(toast.Kind)
		if kind == "" {
			kind = "info"
		}
		_, err := fmt.Fprintf(w, `<div class="toast toast-%s" role="status">%s</div>`,
			templ.EscapeString(kind), templ.EscapeString(toast.Message))
		return err
	})
}

// Banner renders a persistent page-level message.
func Banner(kind string, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="banner banner-%s">%s</div>`,
			templ.EscapeString(kind), templ.EscapeString(message))
		return err
	})
}

// ErrorState renders a textual error body for pages with nothing better
// to show.
func ErrorState(statusCode int, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="error-state"><h1>%d</h1><p>%s</p></section>`,
			statusCode, templ.EscapeString(message))
		return err
	})
}

// Landing renders the root page body. Sign-in happens on the main
// storefront; the console only routes an existing session onward.
func Landing(signedIn bool, isAdmin bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="landing"><h1>%s Console</h1>`,
			templ.EscapeString(AppName)); err != nil {
			return err
		}
		if !signedIn {
			_, err := fmt.Fprint(w, `<p>Sign in on the storefront to manage your account.</p></section>`)
			return err
		}
		if _, err := fmt.Fprint(w, `<nav class="landing-links"><a href="/profile">My Profile</a>`); err != nil {
			return err
		}
		if isAdmin {
			if _, err := fmt.Fprint(w, `<a href="/admin">Admin Dashboard</a>`); err != nil {
				return err
			}
		}
		_, err := fmt.Fprint(w, `</nav></section>`)
		return err
	})
}

// Join renders components in order.
func Join(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, component := range components {
			if component == nil {
				continue
			}
			if err := component.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
