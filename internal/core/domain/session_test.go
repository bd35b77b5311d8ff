package domain

import "testing"

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"john.doe@example.com":  "John Doe",
		"mary_jane@example.com": "Mary Jane",
		"raju@gmail.com":        "Raju",
		"a.b_c@x.io":            "A B C",
		"no-at-sign":            "No-At-Sign",
	}
	for in, want := range cases {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSession_View(t *testing.T) {
	s := &Session{Type: UserAdmin, Stage: StageWelcome}
	if s.View() != "welcome" {
		t.Errorf("expected welcome, got %s", s.View())
	}
	s.Stage = StageDashboard
	if s.View() != "admin_dashboard" {
		t.Errorf("expected admin_dashboard, got %s", s.View())
	}
	s.Type = UserTenant
	if s.View() != "tenant_dashboard" {
		t.Errorf("expected tenant_dashboard, got %s", s.View())
	}
	if s.DashboardTitle() != "Tenant Portal" {
		t.Errorf("unexpected title %q", s.DashboardTitle())
	}
}

func TestProperty_DraftRoundTrip(t *testing.T) {
	tenantID := int64(7)
	p := &Property{ID: 3, Name: "Oak View Condos 3B", Address: "456 Oak Ave, Midtown", Rent: 105000, Status: PropertyOccupied, TenantID: &tenantID}

	d := p.DraftFrom()
	d.Rent = 110000
	p.Apply(d)

	if p.ID != 3 || p.TenantID == nil || *p.TenantID != 7 {
		t.Fatalf("Apply must keep id and tenant link: %+v", p)
	}
	if p.Rent != 110000 {
		t.Fatalf("expected rent updated, got %d", p.Rent)
	}
	if NewPropertyDraft().Status != PropertyVacant {
		t.Fatalf("blank property form should default to vacant")
	}
	if NewTenantDraft().Status != TenantActive {
		t.Fatalf("blank tenant form should default to active")
	}
}
