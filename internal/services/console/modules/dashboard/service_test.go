package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/actext/console/internal/marketapi"
	apperrors "github.com/actext/console/internal/services/console/platform/errors"
)

func TestLoadSnapshotFillsAllCollections(t *testing.T) {
	t.Parallel()

	gateway := seededGateway()
	svc := newService(gateway, nil)

	snap := svc.loadSnapshot(context.Background())

	if snap.Partial {
		t.Fatalf("Partial = true, want false")
	}
	if got := len(snap.ServiceRequests); got != 2 {
		t.Fatalf("len(ServiceRequests) = %d, want 2", got)
	}
	if got := len(snap.Inquiries); got != 1 {
		t.Fatalf("len(Inquiries) = %d, want 1", got)
	}
	if got := len(snap.Users); got != 2 {
		t.Fatalf("len(Users) = %d, want 2", got)
	}
	if got := len(snap.Listings); got != 1 {
		t.Fatalf("len(Listings) = %d, want 1", got)
	}
	if gateway.totalListCalls() != 4 {
		t.Fatalf("totalListCalls = %d, want 4", gateway.totalListCalls())
	}
}

func TestLoadSnapshotIsolatesSingleCollectionFailure(t *testing.T) {
	t.Parallel()

	gateway := seededGateway()
	gateway.serviceRequestsErr = errors.New("backend down")
	svc := newService(gateway, nil)

	snap := svc.loadSnapshot(context.Background())

	if !snap.Partial {
		t.Fatalf("Partial = false, want true")
	}
	if len(snap.ServiceRequests) != 0 {
		t.Fatalf("len(ServiceRequests) = %d, want 0", len(snap.ServiceRequests))
	}
	if len(snap.Inquiries) != 1 || len(snap.Users) != 2 || len(snap.Listings) != 1 {
		t.Fatalf("surviving collections incomplete: %+v", snap)
	}
}

func TestSetStatusRefetchesServiceRequests(t *testing.T) {
	t.Parallel()

	gateway := seededGateway()
	svc := newService(gateway, nil)
	svc.loadSnapshot(context.Background())
	listCallsBefore := gateway.listServiceRequestCalls

	if err := svc.setStatus(context.Background(), 1, marketapi.StatusCompleted); err != nil {
		t.Fatalf("setStatus() error = %v", err)
	}

	if got := len(gateway.updateCalls); got != 1 {
		t.Fatalf("updateCalls = %d, want 1", got)
	}
	if call := gateway.updateCalls[0]; call.id != 1 || call.status != marketapi.StatusCompleted {
		t.Fatalf("updateCalls[0] = %+v", call)
	}
	if gateway.listServiceRequestCalls != listCallsBefore+1 {
		t.Fatalf("listServiceRequestCalls = %d, want %d", gateway.listServiceRequestCalls, listCallsBefore+1)
	}
	rows := svc.currentSnapshot().ServiceRequests
	if rows[0].Status != marketapi.StatusCompleted {
		t.Fatalf("rows[0].Status = %s, want %s", rows[0].Status, marketapi.StatusCompleted)
	}
}

func TestSetStatusOptimisticStrategySkipsRefetch(t *testing.T) {
	t.Parallel()

	gateway := seededGateway()
	svc := newService(gateway, OptimisticStrategy{})
	svc.loadSnapshot(context.Background())
	listCallsBefore := gateway.listServiceRequestCalls

	if err := svc.setStatus(context.Background(), 2, marketapi.StatusCancelled); err != nil {
		t.Fatalf("setStatus() error = %v", err)
	}

	if gateway.listServiceRequestCalls != listCallsBefore {
		t.Fatalf("listServiceRequestCalls = %d, want %d", gateway.listServiceRequestCalls, listCallsBefore)
	}
	rows := svc.currentSnapshot().ServiceRequests
	if rows[1].Status != marketapi.StatusCancelled {
		t.Fatalf("rows[1].Status = %s, want %s", rows[1].Status, marketapi.StatusCancelled)
	}
	if rows[0].Status != marketapi.StatusPending {
		t.Fatalf("rows[0].Status = %s, want untouched %s", rows[0].Status, marketapi.StatusPending)
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	gateway := seededGateway()
	svc := newService(gateway, nil)

	err := svc.setStatus(context.Background(), 1, "done")

	if apperrors.KindOf(err) != apperrors.KindInvalidInput {
		t.Fatalf("KindOf(err) = %s, want %s", apperrors.KindOf(err), apperrors.KindInvalidInput)
	}
	if len(gateway.updateCalls) != 0 {
		t.Fatalf("updateCalls = %d, want 0", len(gateway.updateCalls))
	}
}

func TestSetStatusRejectsNonPositiveID(t *testing.T) {
	t.Parallel()

	svc := newService(seededGateway(), nil)

	if err := svc.setStatus(context.Background(), 0, marketapi.StatusPending); apperrors.KindOf(err) != apperrors.KindInvalidInput {
		t.Fatalf("KindOf(err) = %s, want %s", apperrors.KindOf(err), apperrors.KindInvalidInput)
	}
}

func TestSetStatusMutationFailureLeavesRowsUnchanged(t *testing.T) {
	t.Parallel()

	gateway := seededGateway()
	gateway.updateErr = errors.New("backend down")
	svc := newService(gateway, nil)
	svc.loadSnapshot(context.Background())
	listCallsBefore := gateway.listServiceRequestCalls

	err := svc.setStatus(context.Background(), 1, marketapi.StatusCompleted)

	if err == nil {
		t.Fatalf("setStatus() error = nil, want failure")
	}
	if gateway.listServiceRequestCalls != listCallsBefore {
		t.Fatalf("listServiceRequestCalls = %d, want %d", gateway.listServiceRequestCalls, listCallsBefore)
	}
	rows := svc.currentSnapshot().ServiceRequests
	if rows[0].Status != marketapi.StatusPending {
		t.Fatalf("rows[0].Status = %s, want %s", rows[0].Status, marketapi.StatusPending)
	}
}

func TestNewServiceDefaultsToUnavailableGateway(t *testing.T) {
	t.Parallel()

	svc := newService(nil, nil)

	snap := svc.loadSnapshot(context.Background())
	if !snap.Partial {
		t.Fatalf("Partial = false, want true for unavailable gateway")
	}
}

func TestParseTabDefaultsToInquiries(t *testing.T) {
	t.Parallel()

	if got := parseTab(""); got != TabInquiries {
		t.Fatalf("parseTab(\"\") = %s, want %s", got, TabInquiries)
	}
	if got := parseTab("nonsense"); got != TabInquiries {
		t.Fatalf("parseTab(nonsense) = %s, want %s", got, TabInquiries)
	}
	if got := parseTab("users"); got != TabUsers {
		t.Fatalf("parseTab(users) = %s, want %s", got, TabUsers)
	}
}
