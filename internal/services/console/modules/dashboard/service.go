package dashboard

import (
	"context"
	"sync"

	"github.com/actext/console/internal/marketapi"
	"github.com/actext/console/internal/services/console/fetch"
	apperrors "github.com/actext/console/internal/services/console/platform/errors"
)

// Tab names one dashboard panel.
type Tab string

const (
	TabInquiries       Tab = "inquiries"
	TabServiceRequests Tab = "service-requests"
	TabUsers           Tab = "users"
	TabListings        Tab = "listings"
)

// parseTab maps a query value to a known tab, defaulting to inquiries.
func parseTab(raw string) Tab {
	switch Tab(raw) {
	case TabInquiries, TabServiceRequests, TabUsers, TabListings:
		return Tab(raw)
	default:
		return TabInquiries
	}
}

// Snapshot holds the dashboard's view of all four collections.
//
// Partial is set when at least one collection failed to load; the rows
// for a failed collection stay empty while the others render normally.
type Snapshot struct {
	ServiceRequests []marketapi.ServiceRequest
	Inquiries       []marketapi.BuyerInquiry
	Users           []marketapi.User
	Listings        []marketapi.Listing
	Partial         bool
}

// ReconciliationStrategy reconciles the service request rows after a
// status mutation succeeds on the server.
type ReconciliationStrategy interface {
	Reconcile(ctx context.Context, gateway Gateway, prior []marketapi.ServiceRequest, updated marketapi.ServiceRequest) ([]marketapi.ServiceRequest, error)
}

// RefetchStrategy discards local rows and reloads the authoritative
// collection from the server. This is the default strategy.
type RefetchStrategy struct{}

// Reconcile reloads the full service request collection.
func (RefetchStrategy) Reconcile(ctx context.Context, gateway Gateway, _ []marketapi.ServiceRequest, _ marketapi.ServiceRequest) ([]marketapi.ServiceRequest, error) {
	return gateway.ListServiceRequests(ctx)
}

// OptimisticStrategy patches the mutated row into the prior rows
// without another round trip.
type OptimisticStrategy struct{}

// Reconcile replaces the matching row with the server's updated record.
func (OptimisticStrategy) Reconcile(_ context.Context, _ Gateway, prior []marketapi.ServiceRequest, updated marketapi.ServiceRequest) ([]marketapi.ServiceRequest, error) {
	rows := make([]marketapi.ServiceRequest, len(prior))
	copy(rows, prior)
	for i := range rows {
		if rows[i].ID == updated.ID {
			rows[i] = updated
		}
	}
	return rows, nil
}

type service struct {
	gateway   Gateway
	reconcile ReconciliationStrategy
	loader    *fetch.Loader

	mu      sync.Mutex
	current Snapshot
}

func newService(gateway Gateway, reconcile ReconciliationStrategy) *service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if reconcile == nil {
		reconcile = RefetchStrategy{}
	}
	return &service{
		gateway:   gateway,
		reconcile: reconcile,
		loader:    fetch.NewLoader(nil),
	}
}

// loadSnapshot fans out the four collection fetches, waits for all of
// them, and commits the result against the load generation it started.
// When a newer load or mutation supersedes it, the stale result is
// dropped and the fresher committed snapshot is returned instead.
func (s *service) loadSnapshot(ctx context.Context) Snapshot {
	gen := s.loader.Begin()

	var snap Snapshot
	err := s.loader.LoadAll(ctx, map[string]fetch.Task{
		string(marketapi.ResourceServiceRequests): func(ctx context.Context) error {
			rows, err := s.gateway.ListServiceRequests(ctx)
			if err != nil {
				return err
			}
			snap.ServiceRequests = rows
			return nil
		},
		string(marketapi.ResourceBuyerInquiries): func(ctx context.Context) error {
			rows, err := s.gateway.ListBuyerInquiries(ctx)
			if err != nil {
				return err
			}
			snap.Inquiries = rows
			return nil
		},
		string(marketapi.ResourceUsers): func(ctx context.Context) error {
			rows, err := s.gateway.ListUsers(ctx)
			if err != nil {
				return err
			}
			snap.Users = rows
			return nil
		},
		string(marketapi.ResourceListings): func(ctx context.Context) error {
			rows, err := s.gateway.ListListings(ctx)
			if err != nil {
				return err
			}
			snap.Listings = rows
			return nil
		},
	})
	if err != nil {
		snap.Partial = true
	}

	committed := s.loader.Commit(gen, func() {
		s.mu.Lock()
		s.current = snap
		s.mu.Unlock()
	})
	if !committed {
		return s.currentSnapshot()
	}
	return snap
}

func (s *service) currentSnapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// setStatus applies one status mutation and reconciles the service
// request rows through the configured strategy. The mutation round trip
// happens before reconciliation so the server stays authoritative.
func (s *service) setStatus(ctx context.Context, id int64, status marketapi.ServiceRequestStatus) error {
	if id <= 0 {
		return apperrors.E(apperrors.KindInvalidInput, "service request id must be positive")
	}
	if !status.Valid() {
		return apperrors.E(apperrors.KindInvalidInput, "unknown service request status")
	}
	updated, err := s.gateway.UpdateServiceRequestStatus(ctx, id, status)
	if err != nil {
		return apperrors.FromRemote(err)
	}

	// A mutation supersedes any in-flight load so a slow fetch started
	// before the write cannot overwrite the reconciled rows.
	gen := s.loader.Begin()
	rows, err := s.reconcile.Reconcile(ctx, s.gateway, s.currentSnapshot().ServiceRequests, updated)
	if err != nil {
		return apperrors.FromRemote(err)
	}
	s.loader.Commit(gen, func() {
		s.mu.Lock()
		s.current.ServiceRequests = rows
		s.mu.Unlock()
	})
	return nil
}
