package profile

import (
	"context"

	"github.com/actext/console/internal/marketapi"
	apperrors "github.com/actext/console/internal/services/console/platform/errors"
)

// Gateway exposes the user collection reads and writes the profile
// editor needs.
type Gateway interface {
	ListUsers(ctx context.Context) ([]marketapi.User, error)
	ReplaceUser(ctx context.Context, id int64, user marketapi.User) (marketapi.User, error)
}

// NewClientGateway adapts the marketplace API client to the profile
// gateway. A nil client yields the unavailable fallback so the module
// still mounts and renders the cached identity record.
func NewClientGateway(client *marketapi.Client) Gateway {
	if client == nil {
		return unavailableGateway{}
	}
	return clientGateway{client: client}
}

type clientGateway struct {
	client *marketapi.Client
}

func (g clientGateway) ListUsers(ctx context.Context) ([]marketapi.User, error) {
	return g.client.ListUsers(ctx)
}

func (g clientGateway) ReplaceUser(ctx context.Context, id int64, user marketapi.User) (marketapi.User, error) {
	return g.client.ReplaceUser(ctx, id, user)
}

type unavailableGateway struct{}

func (unavailableGateway) ListUsers(context.Context) ([]marketapi.User, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "users are unavailable")
}

func (unavailableGateway) ReplaceUser(context.Context, int64, marketapi.User) (marketapi.User, error) {
	return marketapi.User{}, apperrors.E(apperrors.KindUnavailable, "users are unavailable")
}
