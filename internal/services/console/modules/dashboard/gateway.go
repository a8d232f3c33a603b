package dashboard

import (
	"context"

	"github.com/actext/console/internal/marketapi"
	apperrors "github.com/actext/console/internal/services/console/platform/errors"
)

// Gateway loads the dashboard collections and applies status mutations.
type Gateway interface {
	ListServiceRequests(ctx context.Context) ([]marketapi.ServiceRequest, error)
	ListBuyerInquiries(ctx context.Context) ([]marketapi.BuyerInquiry, error)
	ListUsers(ctx context.Context) ([]marketapi.User, error)
	ListListings(ctx context.Context) ([]marketapi.Listing, error)
	UpdateServiceRequestStatus(ctx context.Context, id int64, status marketapi.ServiceRequestStatus) (marketapi.ServiceRequest, error)
}

// NewClientGateway adapts the marketplace API client to the dashboard
// gateway. A nil client yields the unavailable fallback so the module
// still mounts and renders an empty, degraded dashboard.
func NewClientGateway(client *marketapi.Client) Gateway {
	if client == nil {
		return unavailableGateway{}
	}
	return clientGateway{client: client}
}

type clientGateway struct {
	client *marketapi.Client
}

func (g clientGateway) ListServiceRequests(ctx context.Context) ([]marketapi.ServiceRequest, error) {
	return g.client.ListServiceRequests(ctx)
}

func (g clientGateway) ListBuyerInquiries(ctx context.Context) ([]marketapi.BuyerInquiry, error) {
	return g.client.ListBuyerInquiries(ctx)
}

func (g clientGateway) ListUsers(ctx context.Context) ([]marketapi.User, error) {
	return g.client.ListUsers(ctx)
}

func (g clientGateway) ListListings(ctx context.Context) ([]marketapi.Listing, error) {
	return g.client.ListListings(ctx)
}

func (g clientGateway) UpdateServiceRequestStatus(ctx context.Context, id int64, status marketapi.ServiceRequestStatus) (marketapi.ServiceRequest, error) {
	return g.client.UpdateServiceRequestStatus(ctx, id, status)
}

type unavailableGateway struct{}

func (unavailableGateway) ListServiceRequests(context.Context) ([]marketapi.ServiceRequest, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "service requests are unavailable")
}

func (unavailableGateway) ListBuyerInquiries(context.Context) ([]marketapi.BuyerInquiry, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "buyer inquiries are unavailable")
}

func (unavailableGateway) ListUsers(context.Context) ([]marketapi.User, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "users are unavailable")
}

func (unavailableGateway) ListListings(context.Context) ([]marketapi.Listing, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "listings are unavailable")
}

func (unavailableGateway) UpdateServiceRequestStatus(context.Context, int64, marketapi.ServiceRequestStatus) (marketapi.ServiceRequest, error) {
	return marketapi.ServiceRequest{}, apperrors.E(apperrors.KindUnavailable, "service requests are unavailable")
}
