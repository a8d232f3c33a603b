package profile

import (
	"net/http"

	"github.com/actext/console/internal/services/console/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Profile, h.handleDisplay)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProfilePrefix+"{$}", h.handleDisplay)
	mux.HandleFunc(http.MethodPost+" "+routepath.Profile, h.handleSave)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProfileEdit, h.handleEdit)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProfilePrefix+"{rest...}", h.handleNotFound)
}
