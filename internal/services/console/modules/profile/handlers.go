package profile

import (
	"log"
	"net/http"
	"time"

	module "github.com/actext/console/internal/services/console/module"
	flashnotice "github.com/actext/console/internal/services/console/platform/flash"
	"github.com/actext/console/internal/services/console/platform/httpx"
	"github.com/actext/console/internal/services/console/platform/identity"
	"github.com/actext/console/internal/services/console/platform/pagerender"
	"github.com/actext/console/internal/services/console/platform/requestmeta"
	"github.com/actext/console/internal/services/console/routepath"
	"github.com/actext/console/internal/services/console/templates"
)

// IdentityWriter rewrites the session's cached identity record.
type IdentityWriter func(http.ResponseWriter, *http.Request, identity.Identity)

type handlers struct {
	service         *service
	resolveIdentity module.ResolveIdentity
	writeIdentity   IdentityWriter
	flashMeta       requestmeta.SchemePolicy
	now             func() time.Time
}

func newHandlers(s *service, resolveIdentity module.ResolveIdentity, writeIdentity IdentityWriter, policy requestmeta.SchemePolicy) handlers {
	return handlers{
		service:         s,
		resolveIdentity: resolveIdentity,
		writeIdentity:   writeIdentity,
		flashMeta:       policy,
		now:             time.Now,
	}
}

func (h handlers) viewer(w http.ResponseWriter, r *http.Request) (identity.Identity, bool) {
	if h.resolveIdentity == nil {
		httpx.WriteRedirect(w, r, routepath.Root)
		return identity.Identity{}, false
	}
	viewer, ok := h.resolveIdentity(r)
	if !ok {
		httpx.WriteRedirect(w, r, routepath.Root)
		return identity.Identity{}, false
	}
	return viewer, true
}

// resolveView loads the server profile, falling back to the cached
// identity record on any load failure. A missing user row and an
// unreachable backend degrade the same way: the cached fields render
// with a banner, never an error-only screen. Only a record with no
// usable local data leaves the screen, via redirect.
func (h handlers) resolveView(w http.ResponseWriter, r *http.Request, viewer identity.Identity) (View, bool) {
	view, err := h.service.loadProfile(httpx.RequestContext(r), viewer)
	if err == nil {
		return view, true
	}
	if !viewer.Present() {
		httpx.WriteRedirect(w, r, routepath.Root)
		return View{}, false
	}
	log.Printf("profile load degraded: %v", err)
	return View{Name: viewer.Name, Email: viewer.Email, IsAdmin: viewer.IsAdmin, Degraded: true}, true
}

func (h handlers) handleDisplay(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.viewer(w, r)
	if !ok {
		return
	}
	view, ok := h.resolveView(w, r, viewer)
	if !ok {
		return
	}
	memberSince := h.now().Format("January 2006")
	if err := pagerender.Write(w, r, pagerender.Page{
		Title:    "My Profile",
		Context:  pageContext(viewer),
		Fragment: profileCard(view, memberSince),
	}); err != nil {
		log.Printf("profile render failed: %v", err)
		httpx.WriteError(w, err)
	}
}

func (h handlers) handleEdit(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.viewer(w, r)
	if !ok {
		return
	}
	view, ok := h.resolveView(w, r, viewer)
	if !ok {
		return
	}
	if err := pagerender.Write(w, r, pagerender.Page{
		Title:    "Edit Profile",
		Context:  pageContext(viewer),
		Fragment: profileForm(view),
	}); err != nil {
		log.Printf("profile render failed: %v", err)
		httpx.WriteError(w, err)
	}
}

// handleSave persists the posted name. Any posted email value is
// ignored; the session email is the only join key and never changes.
func (h handlers) handleSave(w http.ResponseWriter, r *http.Request) {
	viewer, ok := h.viewer(w, r)
	if !ok {
		return
	}
	updated, err := h.service.saveProfile(httpx.RequestContext(r), viewer, r.FormValue("name"))
	if err != nil {
		log.Printf("profile save failed: email=%s err=%v", viewer.Email, err)
		h.writeFlashNotice(w, r, flashnotice.NoticeError(err.Error()))
		httpx.WriteRedirect(w, r, routepath.ProfileEdit)
		return
	}
	if h.writeIdentity != nil {
		h.writeIdentity(w, r, updated)
	}
	h.writeFlashNotice(w, r, flashnotice.NoticeSuccess("Profile updated."))
	httpx.WriteRedirect(w, r, routepath.Profile)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	pagerender.WriteError(w, r, http.StatusNotFound, "This page does not exist.", templates.PageContext{
		Lang: "en",
		Loc:  templates.DefaultLocalizer(),
	})
}

func (h handlers) writeFlashNotice(w http.ResponseWriter, r *http.Request, notice flashnotice.Notice) {
	flashnotice.WriteWithPolicy(w, r, notice, h.flashMeta)
}

func pageContext(viewer identity.Identity) templates.PageContext {
	return templates.PageContext{
		Lang:     "en",
		Loc:      templates.DefaultLocalizer(),
		UserName: viewer.Name,
	}
}
