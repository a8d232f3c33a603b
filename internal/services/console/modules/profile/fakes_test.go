package profile

import (
	"context"
	"net/http"
	"sync"

	"github.com/actext/console/internal/marketapi"
	module "github.com/actext/console/internal/services/console/module"
	"github.com/actext/console/internal/services/console/platform/identity"
)

// fakeGateway implements Gateway for tests with call tracking and an
// optional gate that holds ReplaceUser open for overlap tests.
type fakeGateway struct {
	mu sync.Mutex

	users      []marketapi.User
	listErr    error
	replaceErr error

	listCalls    int
	replaceCalls []replaceCall

	replaceStarted chan struct{}
	replaceRelease chan struct{}
}

type replaceCall struct {
	id   int64
	user marketapi.User
}

func (f *fakeGateway) ListUsers(context.Context) ([]marketapi.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	rows := make([]marketapi.User, len(f.users))
	copy(rows, f.users)
	return rows, nil
}

func (f *fakeGateway) ReplaceUser(_ context.Context, id int64, user marketapi.User) (marketapi.User, error) {
	f.mu.Lock()
	f.replaceCalls = append(f.replaceCalls, replaceCall{id: id, user: user})
	err := f.replaceErr
	started := f.replaceStarted
	release := f.replaceRelease
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		<-release
	}
	if err != nil {
		return marketapi.User{}, err
	}
	return user, nil
}

func (f *fakeGateway) lastReplace() replaceCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.replaceCalls) == 0 {
		return replaceCall{}
	}
	return f.replaceCalls[len(f.replaceCalls)-1]
}

func seededGateway() *fakeGateway {
	return &fakeGateway{
		users: []marketapi.User{
			{ID: 3, Name: "Ravi Kumar", Email: "ravi@example.com"},
			{ID: 42, Name: "Mina Joshi", Email: "mina@example.com", IsAdmin: true},
		},
	}
}

func resolveAs(id identity.Identity) module.ResolveIdentity {
	return func(*http.Request) (identity.Identity, bool) {
		return id, true
	}
}

func resolveAnonymous() module.ResolveIdentity {
	return func(*http.Request) (identity.Identity, bool) {
		return identity.Identity{}, false
	}
}

// recordingWriter captures identity cookie rewrites.
type recordingWriter struct {
	mu      sync.Mutex
	records []identity.Identity
}

func (rw *recordingWriter) write(_ http.ResponseWriter, _ *http.Request, id identity.Identity) {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	rw.records = append(rw.records, id)
}
