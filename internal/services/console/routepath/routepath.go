// Package routepath stores canonical HTTP paths for console modules.
package routepath

import "fmt"

const (
	Root   = "/"
	Health = "/healthz"

	Admin                      = "/admin"
	AdminPrefix                = "/admin/"
	AdminServiceRequestsPrefix = "/admin/service-requests/"
	AdminServiceRequestStatus  = AdminServiceRequestsPrefix + "{id}/status"

	Profile       = "/profile"
	ProfilePrefix = "/profile/"
	ProfileEdit   = "/profile/edit"

	// NewListing is owned by the listing-creation app; the dashboard only
	// hands browsers off to it.
	NewListing = "/old-ac"
)

// ServiceRequestStatusPath builds the status mutation path for one request.
func ServiceRequestStatusPath(id int64) string {
	return fmt.Sprintf("%s%d/status", AdminServiceRequestsPrefix, id)
}
