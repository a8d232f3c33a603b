// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"

	flashnotice "github.com/actext/console/internal/services/console/platform/flash"
	"github.com/actext/console/internal/services/console/platform/httpx"
	"github.com/actext/console/internal/services/console/templates"
)

// Page describes one console page response.
type Page struct {
	Title      string
	StatusCode int
	Context    templates.PageContext
	Fragment   templ.Component
}

// Write renders a full console page, consuming any pending flash notice.
//
// The fragment renders into a buffer first so a render failure never
// leaves a half-written response behind.
func Write(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templates.Empty()
	}

	toast := resolveToast(w, r)
	var buf bytes.Buffer
	layout := templates.Layout(page.Title, page.Context, toast, fragment)
	if err := layout.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteError renders a textual error page with the given status code.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, message string, page templates.PageContext) {
	if w == nil {
		return
	}
	_ = Write(w, r, Page{
		Title:      http.StatusText(statusCode),
		StatusCode: statusCode,
		Context:    page,
		Fragment:   templates.ErrorState(statusCode, message),
	})
}

func resolveToast(w http.ResponseWriter, r *http.Request) *templates.Toast {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	return &templates.Toast{Kind: string(notice.Kind), Message: notice.Message}
}
