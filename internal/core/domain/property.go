package domain

// PropertyStatus is the occupancy state of a property.
type PropertyStatus string

const (
	PropertyVacant      PropertyStatus = "vacant"
	PropertyOccupied    PropertyStatus = "occupied"
	PropertyMaintenance PropertyStatus = "maintenance"
)

// Valid reports whether s is a known property status.
func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyVacant, PropertyOccupied, PropertyMaintenance:
		return true
	}
	return false
}

// Property is a rentable unit managed by the admin.
// TenantID links to the occupying tenant; the name is resolved at read time.
type Property struct {
	ID       int64          `json:"id" bson:"_id"`
	Name     string         `json:"name" bson:"name"`
	Address  string         `json:"address" bson:"address"`
	Rent     int64          `json:"rent" bson:"rent"`
	Status   PropertyStatus `json:"status" bson:"status"`
	TenantID *int64         `json:"tenant_id,omitempty" bson:"tenant_id,omitempty"`
}

// PropertyDraft holds the editable fields of a property form.
type PropertyDraft struct {
	Name    string
	Address string
	Rent    int64
	Status  PropertyStatus
}

// NewPropertyDraft returns the blank form used when adding a property.
func NewPropertyDraft() PropertyDraft {
	return PropertyDraft{Status: PropertyVacant}
}

// DraftFrom pre-fills a form from an existing property.
func (p *Property) DraftFrom() PropertyDraft {
	return PropertyDraft{
		Name:    p.Name,
		Address: p.Address,
		Rent:    p.Rent,
		Status:  p.Status,
	}
}

// Apply overwrites the editable fields with the draft. ID and TenantID are kept.
func (p *Property) Apply(d PropertyDraft) {
	p.Name = d.Name
	p.Address = d.Address
	p.Rent = d.Rent
	p.Status = d.Status
}

// Label is the human-readable property reference used in payment records.
func (p *Property) Label() string {
	return p.Name
}
