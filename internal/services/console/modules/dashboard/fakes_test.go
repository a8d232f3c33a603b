package dashboard

import (
	"context"
	"net/http"
	"sync"

	"github.com/actext/console/internal/marketapi"
	module "github.com/actext/console/internal/services/console/module"
	"github.com/actext/console/internal/services/console/platform/identity"
)

// fakeGateway implements Gateway for tests with per-collection rows,
// injectable failures, and call tracking.
type fakeGateway struct {
	mu sync.Mutex

	serviceRequests []marketapi.ServiceRequest
	inquiries       []marketapi.BuyerInquiry
	users           []marketapi.User
	listings        []marketapi.Listing

	serviceRequestsErr error
	inquiriesErr       error
	usersErr           error
	listingsErr        error
	updateErr          error

	listServiceRequestCalls int
	listInquiryCalls        int
	listUserCalls           int
	listListingCalls        int
	updateCalls             []statusCall
}

type statusCall struct {
	id     int64
	status marketapi.ServiceRequestStatus
}

func (f *fakeGateway) ListServiceRequests(context.Context) ([]marketapi.ServiceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listServiceRequestCalls++
	if f.serviceRequestsErr != nil {
		return nil, f.serviceRequestsErr
	}
	return f.serviceRequests, nil
}

func (f *fakeGateway) ListBuyerInquiries(context.Context) ([]marketapi.BuyerInquiry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listInquiryCalls++
	if f.inquiriesErr != nil {
		return nil, f.inquiriesErr
	}
	return f.inquiries, nil
}

func (f *fakeGateway) ListUsers(context.Context) ([]marketapi.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listUserCalls++
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return f.users, nil
}

func (f *fakeGateway) ListListings(context.Context) ([]marketapi.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listListingCalls++
	if f.listingsErr != nil {
		return nil, f.listingsErr
	}
	return f.listings, nil
}

func (f *fakeGateway) UpdateServiceRequestStatus(_ context.Context, id int64, status marketapi.ServiceRequestStatus) (marketapi.ServiceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls = append(f.updateCalls, statusCall{id: id, status: status})
	if f.updateErr != nil {
		return marketapi.ServiceRequest{}, f.updateErr
	}
	for i := range f.serviceRequests {
		if f.serviceRequests[i].ID == id {
			f.serviceRequests[i].Status = status
			return f.serviceRequests[i], nil
		}
	}
	return marketapi.ServiceRequest{ID: id, Status: status}, nil
}

func (f *fakeGateway) totalListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listServiceRequestCalls + f.listInquiryCalls + f.listUserCalls + f.listListingCalls
}

// resolveAs builds an identity resolver that always yields the record.
func resolveAs(id identity.Identity) module.ResolveIdentity {
	return func(*http.Request) (identity.Identity, bool) {
		return id, true
	}
}

// resolveAnonymous builds an identity resolver that yields no record.
func resolveAnonymous() module.ResolveIdentity {
	return func(*http.Request) (identity.Identity, bool) {
		return identity.Identity{}, false
	}
}

func seededGateway() *fakeGateway {
	return &fakeGateway{
		serviceRequests: []marketapi.ServiceRequest{
			{ID: 1, FullName: "Asha Rao", Email: "asha@example.com", Phone: "555-0101", ServiceType: "installation", Address: "12 Lake Rd", Status: marketapi.StatusPending},
			{ID: 2, FullName: "Vik Mehta", Email: "vik@example.com", Phone: "555-0102", ServiceType: "repair", Address: "9 Hill St", Status: marketapi.StatusInProgress},
		},
		inquiries: []marketapi.BuyerInquiry{
			{ID: 7, FullName: "Mina Joshi", Email: "mina@example.com", Phone: "555-0103", Message: "Is the 1.5 ton unit available?", Status: "new"},
		},
		users: []marketapi.User{
			{ID: 3, Name: "Ravi Kumar", Email: "ravi@example.com"},
			{ID: 4, Name: "Admin One", Email: "admin@example.com", IsAdmin: true},
		},
		listings: []marketapi.Listing{
			{ID: 11, Title: "Window AC 1 Ton", Brand: "CoolMax", ACType: "window", Price: 14500, Status: "available"},
		},
	}
}
