package dashboard

import (
	"net/http"

	"github.com/actext/console/internal/services/console/platform/httpx"
	"github.com/actext/console/internal/services/console/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Admin, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminServiceRequestStatus, h.handleStatusUpdate)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminServiceRequestStatus, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminPrefix+"{rest...}", h.handleNotFound)
}
