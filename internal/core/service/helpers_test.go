package service

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/propelrent/rentwise/internal/core/domain"
	"github.com/propelrent/rentwise/internal/core/ports"
	"github.com/propelrent/rentwise/internal/infrastructure/db/memory"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (n *recordingNotifier) Notify(msg domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
}

func (n *recordingNotifier) all() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.Notification(nil), n.sent...)
}

// stubProcessor settles according to chargeFn; by default it succeeds at once.
type stubProcessor struct {
	mu       sync.Mutex
	calls    int
	chargeFn func(ctx context.Context, req ports.ChargeRequest) error
}

func (p *stubProcessor) Charge(ctx context.Context, req ports.ChargeRequest) error {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.chargeFn != nil {
		return p.chargeFn(ctx, req)
	}
	return nil
}

func (p *stubProcessor) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// blockUntilDone waits for the charge context to end.
func blockUntilDone(ctx context.Context, _ ports.ChargeRequest) error {
	<-ctx.Done()
	return ctx.Err()
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

type fixture struct {
	properties *memory.PropertyRepository
	tenants    *memory.TenantRepository
	payments   *memory.PaymentRepository
	propSvc    *PropertyService
	tenantSvc  *TenantService
}

func newFixture(t *testing.T, seed bool) *fixture {
	t.Helper()
	f := &fixture{
		properties: memory.NewPropertyRepository(),
		tenants:    memory.NewTenantRepository(),
		payments:   memory.NewPaymentRepository(),
	}
	f.propSvc, f.tenantSvc = NewListingServices(f.properties, f.tenants, zerolog.Nop())
	if seed {
		if err := Seed(context.Background(), f.propSvc, f.tenantSvc, f.payments); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return f
}

func (f *fixture) propertyNames(t *testing.T) []string {
	t.Helper()
	list, err := f.properties.List(context.Background())
	if err != nil {
		t.Fatalf("list properties: %v", err)
	}
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Name)
	}
	return out
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
