package domain

import "testing"

func TestFormatRupees(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{85000, "₹85,000"},
		{105000, "₹105,000"},
		{1234567, "₹1,234,567"},
		{-65000, "-₹65,000"},
	}
	for _, tc := range cases {
		if got := FormatRupees(tc.in); got != tc.want {
			t.Errorf("FormatRupees(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatLakhs(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "₹0.00L"},
		{85000, "₹0.85L"},
		{65000, "₹0.65L"},
		{95000, "₹0.95L"},
		{255000, "₹2.55L"},
		{100000, "₹1.00L"},
		{1499, "₹0.01L"},
		{1500, "₹0.02L"},
	}
	for _, tc := range cases {
		if got := FormatLakhs(tc.in); got != tc.want {
			t.Errorf("FormatLakhs(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
