package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/propelrent/rentwise/internal/core/domain"
	"github.com/propelrent/rentwise/internal/core/ports"
)

// listings serialises writes that touch both properties and tenants so the
// tenant -> property link and the property's occupancy stay consistent.
type listings struct {
	mu         sync.Mutex
	properties ports.PropertyRepository
	tenants    ports.TenantRepository
	log        zerolog.Logger
}

// PropertyService manages the property list.
type PropertyService struct{ *listings }

// TenantService manages the tenant list.
type TenantService struct{ *listings }

// NewListingServices returns the property and tenant services over a shared lock.
func NewListingServices(properties ports.PropertyRepository, tenants ports.TenantRepository, log zerolog.Logger) (*PropertyService, *TenantService) {
	l := &listings{properties: properties, tenants: tenants, log: log}
	return &PropertyService{l}, &TenantService{l}
}

// ---------------------------------------------------------------------------
// Properties
// ---------------------------------------------------------------------------

func (s *PropertyService) List(ctx context.Context) ([]ports.PropertyView, error) {
	props, err := s.properties.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	out := make([]ports.PropertyView, 0, len(props))
	for _, p := range props {
		out = append(out, s.propertyView(ctx, p))
	}
	return out, nil
}

func (s *PropertyService) Get(ctx context.Context, id int64) (*ports.PropertyView, error) {
	p, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := s.propertyView(ctx, p)
	return &v, nil
}

// Create appends a new property. New properties never have a tenant.
func (s *PropertyService) Create(ctx context.Context, draft domain.PropertyDraft) (*ports.PropertyView, error) {
	if err := validatePropertyDraft(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := &domain.Property{}
	p.Apply(draft)
	created, err := s.properties.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}

	s.log.Info().Int64("property_id", created.ID).Str("name", created.Name).Msg("property created")
	return &ports.PropertyView{Property: *created}, nil
}

// Update replaces the editable fields of a property, keeping its tenant link.
func (s *PropertyService) Update(ctx context.Context, id int64, draft domain.PropertyDraft) (*ports.PropertyView, error) {
	if err := validatePropertyDraft(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(draft)
	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}

	v := s.propertyView(ctx, p)
	return &v, nil
}

// Delete removes a property. Properties still referenced by a tenant are
// kept and domain.ErrPropertyInUse is returned.
func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.properties.FindByID(ctx, id); err != nil {
		return err
	}
	refs, err := s.tenants.ListByProperty(ctx, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if len(refs) > 0 {
		return fmt.Errorf("%w: %d tenant(s)", domain.ErrPropertyInUse, len(refs))
	}
	if err := s.properties.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("property_id", id).Msg("property deleted")
	return nil
}

func (s *PropertyService) propertyView(ctx context.Context, p *domain.Property) ports.PropertyView {
	v := ports.PropertyView{Property: *p}
	if p.TenantID == nil {
		return v
	}
	t, err := s.tenants.FindByID(ctx, *p.TenantID)
	if err != nil {
		if !errors.Is(err, domain.ErrTenantNotFound) {
			s.log.Warn().Err(err).Int64("property_id", p.ID).Msg("resolve tenant name")
		}
		return v
	}
	name := t.Name
	v.TenantName = &name
	return v
}

func validatePropertyDraft(d domain.PropertyDraft) error {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Address) == "" {
		return fmt.Errorf("%w: name and address are required", domain.ErrInvalidListing)
	}
	if d.Rent < 0 {
		return fmt.Errorf("%w: rent must not be negative", domain.ErrInvalidListing)
	}
	if !d.Status.Valid() {
		return fmt.Errorf("%w: property %q", domain.ErrInvalidStatus, d.Status)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Tenants
// ---------------------------------------------------------------------------

func (s *TenantService) List(ctx context.Context) ([]ports.TenantView, error) {
	tenants, err := s.tenants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	out := make([]ports.TenantView, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, s.tenantView(ctx, t))
	}
	return out, nil
}

func (s *TenantService) Get(ctx context.Context, id int64) (*ports.TenantView, error) {
	t, err := s.tenants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := s.tenantView(ctx, t)
	return &v, nil
}

// Create appends a tenant and links it to its property.
func (s *TenantService) Create(ctx context.Context, draft domain.TenantDraft) (*ports.TenantView, error) {
	if err := validateTenantDraft(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prop, err := s.leasedProperty(ctx, draft.PropertyID)
	if err != nil {
		return nil, err
	}

	t := &domain.Tenant{}
	t.Apply(draft)
	created, err := s.tenants.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create tenant: %w", err)
	}
	if err := s.attach(ctx, prop, created); err != nil {
		return nil, err
	}

	s.log.Info().Int64("tenant_id", created.ID).Int64("property_id", prop.ID).Msg("tenant created")
	return &ports.TenantView{Tenant: *created, PropertyName: prop.Name}, nil
}

// Update replaces a tenant's fields and moves the property link when the
// tenant changes property.
func (s *TenantService) Update(ctx context.Context, id int64, draft domain.TenantDraft) (*ports.TenantView, error) {
	if err := validateTenantDraft(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.tenants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	prop, err := s.leasedProperty(ctx, draft.PropertyID)
	if err != nil {
		return nil, err
	}

	previous := t.PropertyID
	t.Apply(draft)
	if err := s.tenants.Update(ctx, t); err != nil {
		return nil, err
	}
	if previous != t.PropertyID {
		if err := s.detach(ctx, previous, t.ID); err != nil {
			return nil, err
		}
	}
	if err := s.attach(ctx, prop, t); err != nil {
		return nil, err
	}

	return &ports.TenantView{Tenant: *t, PropertyName: prop.Name}, nil
}

// Delete removes a tenant and vacates the property it occupied.
func (s *TenantService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.tenants.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tenants.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.detach(ctx, t.PropertyID, t.ID); err != nil {
		return err
	}

	s.log.Info().Int64("tenant_id", id).Msg("tenant deleted")
	return nil
}

func (s *TenantService) tenantView(ctx context.Context, t *domain.Tenant) ports.TenantView {
	v := ports.TenantView{Tenant: *t}
	if p, err := s.properties.FindByID(ctx, t.PropertyID); err == nil {
		v.PropertyName = p.Name
	}
	return v
}

// leasedProperty resolves the property a tenant draft points at.
func (s *TenantService) leasedProperty(ctx context.Context, id int64) (*domain.Property, error) {
	p, err := s.properties.FindByID(ctx, id)
	if errors.Is(err, domain.ErrPropertyNotFound) {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownProperty, id)
	}
	return p, err
}

// attach records t as the occupant of p. Active tenants mark it occupied.
// A pending tenant only takes the link when no other active tenant lives
// there, and leaves the property vacant until the lease starts.
func (s *TenantService) attach(ctx context.Context, p *domain.Property, t *domain.Tenant) error {
	if t.Status == domain.TenantActive {
		id := t.ID
		p.TenantID = &id
		p.Status = domain.PropertyOccupied
	} else {
		occupant, _, err := s.occupants(ctx, p.ID, t.ID)
		if err != nil {
			return fmt.Errorf("link tenant %d to property %d: %w", t.ID, p.ID, err)
		}
		if occupant != nil {
			if p.TenantID == nil || *p.TenantID == t.ID {
				id := occupant.ID
				p.TenantID = &id
			}
			p.Status = domain.PropertyOccupied
		} else {
			id := t.ID
			p.TenantID = &id
			if p.Status == domain.PropertyOccupied {
				p.Status = domain.PropertyVacant
			}
		}
	}
	if err := s.properties.Update(ctx, p); err != nil {
		return fmt.Errorf("link tenant %d to property %d: %w", t.ID, p.ID, err)
	}
	return nil
}

// detach clears the tenant link on propertyID if it still points at tenantID.
// The link passes to another tenant of the property when one remains.
func (s *TenantService) detach(ctx context.Context, propertyID, tenantID int64) error {
	p, err := s.properties.FindByID(ctx, propertyID)
	if errors.Is(err, domain.ErrPropertyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("unlink tenant %d: %w", tenantID, err)
	}
	if p.TenantID == nil || *p.TenantID != tenantID {
		return nil
	}

	occupant, waiting, err := s.occupants(ctx, propertyID, tenantID)
	if err != nil {
		return fmt.Errorf("unlink tenant %d: %w", tenantID, err)
	}
	switch {
	case occupant != nil:
		id := occupant.ID
		p.TenantID = &id
		p.Status = domain.PropertyOccupied
	case waiting != nil:
		id := waiting.ID
		p.TenantID = &id
		if p.Status == domain.PropertyOccupied {
			p.Status = domain.PropertyVacant
		}
	default:
		p.TenantID = nil
		if p.Status == domain.PropertyOccupied {
			p.Status = domain.PropertyVacant
		}
	}
	if err := s.properties.Update(ctx, p); err != nil {
		return fmt.Errorf("unlink tenant %d: %w", tenantID, err)
	}
	return nil
}

// occupants returns the first active and the first pending tenant of
// propertyID, skipping the tenant with ID skip.
func (s *TenantService) occupants(ctx context.Context, propertyID, skip int64) (active, pending *domain.Tenant, err error) {
	tenants, err := s.tenants.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, nil, err
	}
	for _, t := range tenants {
		if t.ID == skip {
			continue
		}
		switch t.Status {
		case domain.TenantActive:
			if active == nil {
				active = t
			}
		case domain.TenantPending:
			if pending == nil {
				pending = t
			}
		}
	}
	return active, pending, nil
}

func validateTenantDraft(d domain.TenantDraft) error {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Email) == "" {
		return fmt.Errorf("%w: name and email are required", domain.ErrInvalidListing)
	}
	if d.Rent < 0 {
		return fmt.Errorf("%w: rent must not be negative", domain.ErrInvalidListing)
	}
	if !d.Status.Valid() {
		return fmt.Errorf("%w: tenant %q", domain.ErrInvalidStatus, d.Status)
	}
	return nil
}
