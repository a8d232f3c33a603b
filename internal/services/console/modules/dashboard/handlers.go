package dashboard

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/actext/console/internal/marketapi"
	module "github.com/actext/console/internal/services/console/module"
	"github.com/actext/console/internal/services/console/platform/httpx"
	"github.com/actext/console/internal/services/console/platform/identity"
	"github.com/actext/console/internal/services/console/platform/pagerender"
	"github.com/actext/console/internal/services/console/routepath"
	"github.com/actext/console/internal/services/console/templates"
)

type handlers struct {
	service         *service
	resolveIdentity module.ResolveIdentity
}

func newHandlers(s *service, resolveIdentity module.ResolveIdentity) handlers {
	return handlers{service: s, resolveIdentity: resolveIdentity}
}

// viewer gates a request on an admin identity. A missing or non-admin
// record redirects to the landing page before any fetch is issued.
func (h handlers) viewer(w http.ResponseWriter, r *http.Request) (identity.Identity, bool) {
	if h.resolveIdentity == nil {
		httpx.WriteRedirect(w, r, routepath.Root)
		return identity.Identity{}, false
	}
	viewer, ok := h.resolveIdentity(r)
	if !ok || !viewer.IsAdmin {
		httpx.WriteRedirect(w, r, routepath.Root)
		return identity.Identity{}, false
	}
	return viewer, true
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.viewer(w, r)
	if !ok {
		return
	}
	snap := h.service.loadSnapshot(httpx.RequestContext(r))
	active := parseTab(r.URL.Query().Get("tab"))
	if err := pagerender.Write(w, r, pagerender.Page{
		Title:    "Admin Dashboard",
		Context:  pageContext(viewer),
		Fragment: dashboardPage(snap, active),
	}); err != nil {
		log.Printf("dashboard render failed: %v", err)
		httpx.WriteError(w, err)
	}
}

func (h handlers) handleStatusUpdate(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.viewer(w, r); !ok {
		return
	}
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		h.handleNotFound(w, r)
		return
	}
	status := marketapi.ServiceRequestStatus(strings.TrimSpace(r.FormValue("status")))
	if err := h.service.setStatus(httpx.RequestContext(r), id, status); err != nil {
		// The mutation failure surfaces only in logs; the follow-up
		// page renders the server's unchanged rows.
		log.Printf("dashboard status update failed: id=%d status=%s err=%v", id, status, err)
	}
	httpx.WriteRedirect(w, r, routepath.Admin+"?tab="+string(TabServiceRequests))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	pagerender.WriteError(w, r, http.StatusNotFound, "This page does not exist.", templates.PageContext{
		Lang: "en",
		Loc:  templates.DefaultLocalizer(),
	})
}

func pageContext(viewer identity.Identity) templates.PageContext {
	return templates.PageContext{
		Lang:     "en",
		Loc:      templates.DefaultLocalizer(),
		UserName: viewer.Name,
	}
}
