package domain

// TenantStatus is the lease state of a tenant.
type TenantStatus string

const (
	TenantActive  TenantStatus = "active"
	TenantPending TenantStatus = "pending"
)

// Valid reports whether s is a known tenant status.
func (s TenantStatus) Valid() bool {
	return s == TenantActive || s == TenantPending
}

// Tenant is a person holding (or about to hold) a lease on a property.
type Tenant struct {
	ID         int64        `json:"id" bson:"_id"`
	Name       string       `json:"name" bson:"name"`
	Email      string       `json:"email" bson:"email"`
	Phone      string       `json:"phone" bson:"phone"`
	PropertyID int64        `json:"property_id" bson:"property_id"`
	LeaseStart string       `json:"lease_start" bson:"lease_start"`
	LeaseEnd   string       `json:"lease_end" bson:"lease_end"`
	Rent       int64        `json:"rent" bson:"rent"`
	Status     TenantStatus `json:"status" bson:"status"`
}

// TenantDraft holds the editable fields of a tenant form.
type TenantDraft struct {
	Name       string
	Email      string
	Phone      string
	PropertyID int64
	LeaseStart string
	LeaseEnd   string
	Rent       int64
	Status     TenantStatus
}

// NewTenantDraft returns the blank form used when adding a tenant.
func NewTenantDraft() TenantDraft {
	return TenantDraft{Status: TenantActive}
}

func (t *Tenant) DraftFrom() TenantDraft {
	return TenantDraft{
		Name:       t.Name,
		Email:      t.Email,
		Phone:      t.Phone,
		PropertyID: t.PropertyID,
		LeaseStart: t.LeaseStart,
		LeaseEnd:   t.LeaseEnd,
		Rent:       t.Rent,
		Status:     t.Status,
	}
}

// Apply overwrites the editable fields with the draft.
func (t *Tenant) Apply(d TenantDraft) {
	t.Name = d.Name
	t.Email = d.Email
	t.Phone = d.Phone
	t.PropertyID = d.PropertyID
	t.LeaseStart = d.LeaseStart
	t.LeaseEnd = d.LeaseEnd
	t.Rent = d.Rent
	t.Status = d.Status
}
