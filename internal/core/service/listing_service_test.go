package service

import (
	"context"
	"errors"
	"testing"

	"github.com/propelrent/rentwise/internal/core/domain"
)

func TestPropertyService_Create_AppendsAtEnd(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	v, err := f.propSvc.Create(ctx, domain.PropertyDraft{Name: "Test House", Address: "1 Test Rd", Rent: 1000, Status: domain.PropertyVacant})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, _ := f.propSvc.List(ctx)
	last := list[len(list)-1]
	if last.Property.ID != v.Property.ID || last.Property.Name != "Test House" {
		t.Fatalf("expected Test House last, got %+v", last.Property)
	}
	if last.Property.Rent != 1000 || last.Property.Status != domain.PropertyVacant {
		t.Fatalf("unexpected fields: %+v", last.Property)
	}
	if last.TenantName != nil || last.Property.TenantID != nil {
		t.Fatalf("new property must have no tenant")
	}
	for _, other := range list[:len(list)-1] {
		if other.Property.ID == v.Property.ID {
			t.Fatalf("id %d reused", v.Property.ID)
		}
	}
}

func TestPropertyService_Update_KeepsPositionAndLength(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	before := f.propertyNames(t)

	list, _ := f.propSvc.List(ctx)
	target := list[1].Property
	draft := target.DraftFrom()
	draft.Name = "Oak View Condos 3B (renovated)"
	draft.Rent = 110000

	v, err := f.propSvc.Update(ctx, target.ID, draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Property.TenantID == nil || v.TenantName == nil || *v.TenantName != "Geetha" {
		t.Fatalf("edit must keep the tenant link, got %+v", v)
	}

	after := f.propertyNames(t)
	if len(after) != len(before) {
		t.Fatalf("length changed: %v -> %v", before, after)
	}
	want := append([]string{}, before...)
	want[1] = "Oak View Condos 3B (renovated)"
	if !sameStrings(after, want) {
		t.Fatalf("expected %v, got %v", want, after)
	}
}

func TestPropertyService_Update_UnknownIDLeavesListUnchanged(t *testing.T) {
	f := newFixture(t, true)
	before := f.propertyNames(t)

	_, err := f.propSvc.Update(context.Background(), 999, domain.PropertyDraft{Name: "X", Address: "Y", Status: domain.PropertyVacant})
	if !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
	if !sameStrings(f.propertyNames(t), before) {
		t.Fatalf("list changed on failed update")
	}
}

func TestPropertyService_Create_RejectsInvalidDraft(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.propSvc.Create(ctx, domain.PropertyDraft{Name: "A", Address: "B", Status: "sold"})
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	_, err = f.propSvc.Create(ctx, domain.PropertyDraft{Name: " ", Address: "B", Status: domain.PropertyVacant})
	if !errors.Is(err, domain.ErrInvalidListing) {
		t.Fatalf("expected ErrInvalidListing, got %v", err)
	}
	if len(f.propertyNames(t)) != 0 {
		t.Fatalf("invalid drafts must not be stored")
	}
}

func TestPropertyService_Delete_RestrictedWhileTenanted(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	list, _ := f.propSvc.List(ctx)

	err := f.propSvc.Delete(ctx, list[0].Property.ID)
	if !errors.Is(err, domain.ErrPropertyInUse) {
		t.Fatalf("expected ErrPropertyInUse, got %v", err)
	}
	if len(f.propertyNames(t)) != 3 {
		t.Fatalf("property must be kept")
	}

	draft := domain.NewPropertyDraft()
	draft.Name, draft.Address = "Spare", "1 Spare Ln"
	free, err := f.propSvc.Create(ctx, draft)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := f.propSvc.Delete(ctx, free.Property.ID); err != nil {
		t.Fatalf("delete free property: %v", err)
	}
	if err := f.propSvc.Delete(ctx, free.Property.ID); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound on second delete, got %v", err)
	}
}

func TestTenantService_Create_OccupiesProperty(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	p, _ := f.propSvc.Create(ctx, domain.PropertyDraft{Name: "Sunset Apartments 2A", Address: "123 Main St", Rent: 85000, Status: domain.PropertyVacant})
	v, err := f.tenantSvc.Create(ctx, domain.TenantDraft{
		Name: "Raju", Email: "raju@gmail.com", PropertyID: p.Property.ID, Rent: 85000, Status: domain.TenantActive,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.PropertyName != "Sunset Apartments 2A" {
		t.Fatalf("expected property name resolved, got %q", v.PropertyName)
	}

	got, _ := f.propSvc.Get(ctx, p.Property.ID)
	if got.Property.Status != domain.PropertyOccupied {
		t.Fatalf("expected occupied, got %s", got.Property.Status)
	}
	if got.TenantName == nil || *got.TenantName != "Raju" {
		t.Fatalf("expected tenant Raju, got %v", got.TenantName)
	}
}

func TestTenantService_Create_PendingLeavesVacant(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	p, _ := f.propSvc.Create(ctx, domain.PropertyDraft{Name: "Pine", Address: "789 Pine Rd", Rent: 65000, Status: domain.PropertyVacant})
	_, err := f.tenantSvc.Create(ctx, domain.TenantDraft{Name: "Sita", Email: "sita@gmail.com", PropertyID: p.Property.ID, Status: domain.TenantPending})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := f.propSvc.Get(ctx, p.Property.ID)
	if got.Property.Status != domain.PropertyVacant {
		t.Fatalf("pending tenant must not occupy, got %s", got.Property.Status)
	}
	if got.TenantName == nil || *got.TenantName != "Sita" {
		t.Fatalf("expected tenant link to Sita")
	}
}

func TestTenantService_Create_PendingKeepsActiveOccupant(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tenants, _ := f.tenantSvc.List(ctx)
	raju := tenants[0].Tenant
	_, err := f.tenantSvc.Create(ctx, domain.TenantDraft{Name: "Kiran", Email: "kiran@gmail.com", PropertyID: raju.PropertyID, Status: domain.TenantPending})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := f.propSvc.Get(ctx, raju.PropertyID)
	if got.Property.Status != domain.PropertyOccupied {
		t.Fatalf("active occupant must keep property occupied, got %s", got.Property.Status)
	}
	if got.Property.TenantID == nil || *got.Property.TenantID != raju.ID {
		t.Fatalf("tenant link moved off %d: %v", raju.ID, got.Property.TenantID)
	}
}

func TestTenantService_Create_UnknownProperty(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.tenantSvc.Create(context.Background(), domain.TenantDraft{Name: "Ghost", Email: "g@x.io", PropertyID: 99, Status: domain.TenantActive})
	if !errors.Is(err, domain.ErrUnknownProperty) {
		t.Fatalf("expected ErrUnknownProperty, got %v", err)
	}
	list, _ := f.tenantSvc.List(context.Background())
	if len(list) != 3 {
		t.Fatalf("tenant list changed: %d", len(list))
	}
}

func TestTenantService_Update_MovesProperty(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	a, _ := f.propSvc.Create(ctx, domain.PropertyDraft{Name: "A", Address: "a", Status: domain.PropertyVacant})
	b, _ := f.propSvc.Create(ctx, domain.PropertyDraft{Name: "B", Address: "b", Status: domain.PropertyVacant})
	tv, _ := f.tenantSvc.Create(ctx, domain.TenantDraft{Name: "Raju", Email: "r@x.io", PropertyID: a.Property.ID, Status: domain.TenantActive})

	draft := tv.Tenant.DraftFrom()
	draft.PropertyID = b.Property.ID
	if _, err := f.tenantSvc.Update(ctx, tv.Tenant.ID, draft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	oldP, _ := f.propSvc.Get(ctx, a.Property.ID)
	newP, _ := f.propSvc.Get(ctx, b.Property.ID)
	if oldP.Property.TenantID != nil || oldP.Property.Status != domain.PropertyVacant {
		t.Fatalf("old property not vacated: %+v", oldP.Property)
	}
	if newP.Property.TenantID == nil || newP.Property.Status != domain.PropertyOccupied {
		t.Fatalf("new property not occupied: %+v", newP.Property)
	}
}

func TestTenantService_Update_PendingOntoOccupiedProperty(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	a, _ := f.propSvc.Create(ctx, domain.PropertyDraft{Name: "A", Address: "a", Status: domain.PropertyVacant})
	b, _ := f.propSvc.Create(ctx, domain.PropertyDraft{Name: "B", Address: "b", Status: domain.PropertyVacant})
	raju, _ := f.tenantSvc.Create(ctx, domain.TenantDraft{Name: "Raju", Email: "r@x.io", PropertyID: a.Property.ID, Status: domain.TenantActive})
	sita, _ := f.tenantSvc.Create(ctx, domain.TenantDraft{Name: "Sita", Email: "s@x.io", PropertyID: b.Property.ID, Status: domain.TenantPending})

	draft := sita.Tenant.DraftFrom()
	draft.PropertyID = a.Property.ID
	if _, err := f.tenantSvc.Update(ctx, sita.Tenant.ID, draft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	occupied, _ := f.propSvc.Get(ctx, a.Property.ID)
	if occupied.Property.Status != domain.PropertyOccupied {
		t.Fatalf("expected A occupied, got %s", occupied.Property.Status)
	}
	if occupied.Property.TenantID == nil || *occupied.Property.TenantID != raju.Tenant.ID {
		t.Fatalf("expected A linked to Raju, got %v", occupied.Property.TenantID)
	}
	left, _ := f.propSvc.Get(ctx, b.Property.ID)
	if left.Property.TenantID != nil || left.Property.Status != domain.PropertyVacant {
		t.Fatalf("B not released: %+v", left.Property)
	}
}

func TestTenantService_Update_ActiveToPendingHandsOverLink(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	a, _ := f.propSvc.Create(ctx, domain.PropertyDraft{Name: "A", Address: "a", Status: domain.PropertyVacant})
	raju, _ := f.tenantSvc.Create(ctx, domain.TenantDraft{Name: "Raju", Email: "r@x.io", PropertyID: a.Property.ID, Status: domain.TenantActive})
	geetha, _ := f.tenantSvc.Create(ctx, domain.TenantDraft{Name: "Geetha", Email: "g@x.io", PropertyID: a.Property.ID, Status: domain.TenantActive})

	draft := geetha.Tenant.DraftFrom()
	draft.Status = domain.TenantPending
	if _, err := f.tenantSvc.Update(ctx, geetha.Tenant.ID, draft); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := f.propSvc.Get(ctx, a.Property.ID)
	if got.Property.Status != domain.PropertyOccupied {
		t.Fatalf("expected occupied, got %s", got.Property.Status)
	}
	if got.Property.TenantID == nil || *got.Property.TenantID != raju.Tenant.ID {
		t.Fatalf("expected link handed to Raju, got %v", got.Property.TenantID)
	}
}

func TestTenantService_Update_UnknownID(t *testing.T) {
	f := newFixture(t, true)
	_, err := f.tenantSvc.Update(context.Background(), 42, domain.TenantDraft{Name: "X", Email: "x@x.io", PropertyID: 1, Status: domain.TenantActive})
	if !errors.Is(err, domain.ErrTenantNotFound) {
		t.Fatalf("expected ErrTenantNotFound, got %v", err)
	}
}

func TestTenantService_Delete_VacatesProperty(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	tenants, _ := f.tenantSvc.List(ctx)
	raju := tenants[0].Tenant
	if err := f.tenantSvc.Delete(ctx, raju.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, _ := f.propSvc.Get(ctx, raju.PropertyID)
	if p.Property.TenantID != nil || p.Property.Status != domain.PropertyVacant {
		t.Fatalf("property not vacated: %+v", p.Property)
	}
	// the now-free property can be deleted
	if err := f.propSvc.Delete(ctx, raju.PropertyID); err != nil {
		t.Fatalf("delete vacated property: %v", err)
	}
	if err := f.tenantSvc.Delete(ctx, raju.ID); !errors.Is(err, domain.ErrTenantNotFound) {
		t.Fatalf("expected ErrTenantNotFound, got %v", err)
	}
}

func TestTenantService_Delete_RelinksRemainingTenant(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	a, _ := f.propSvc.Create(ctx, domain.PropertyDraft{Name: "A", Address: "a", Status: domain.PropertyVacant})
	raju, _ := f.tenantSvc.Create(ctx, domain.TenantDraft{Name: "Raju", Email: "r@x.io", PropertyID: a.Property.ID, Status: domain.TenantActive})
	sita, _ := f.tenantSvc.Create(ctx, domain.TenantDraft{Name: "Sita", Email: "s@x.io", PropertyID: a.Property.ID, Status: domain.TenantPending})

	if err := f.tenantSvc.Delete(ctx, raju.Tenant.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := f.propSvc.Get(ctx, a.Property.ID)
	if got.Property.Status != domain.PropertyVacant {
		t.Fatalf("expected vacant, got %s", got.Property.Status)
	}
	if got.Property.TenantID == nil || *got.Property.TenantID != sita.Tenant.ID {
		t.Fatalf("expected link to pending Sita, got %v", got.Property.TenantID)
	}
	// Sita still references the property
	if err := f.propSvc.Delete(ctx, a.Property.ID); !errors.Is(err, domain.ErrPropertyInUse) {
		t.Fatalf("expected ErrPropertyInUse, got %v", err)
	}
}

func TestSeed_RunsOnceIntoEmptyStores(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	if err := Seed(ctx, f.propSvc, f.tenantSvc, f.payments); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	want := []string{"Sunset Apartments 2A", "Oak View Condos 3B", "Pine Heights Studio 1C"}
	if !sameStrings(f.propertyNames(t), want) {
		t.Fatalf("unexpected properties %v", f.propertyNames(t))
	}
	payments, _ := f.payments.List(ctx)
	if len(payments) != 3 {
		t.Fatalf("expected 3 seed payments, got %d", len(payments))
	}
	if payments[0].TenantID == nil || payments[2].TenantID != nil {
		t.Fatalf("seed payments should link known tenants only")
	}
}
