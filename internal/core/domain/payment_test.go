package domain

import (
	"errors"
	"strings"
	"testing"
)

func seedRecords() []*PaymentRecord {
	date := "2024-01-15"
	method := "Bank Transfer"
	return []*PaymentRecord{
		{ID: 1, Tenant: "Raju", Property: "Sunset Apartments 2A", Amount: 85000, Date: &date, DueDate: "2024-01-01", Status: PaymentPaid, Method: &method},
		{ID: 2, Tenant: "Sita", Property: "Pine Heights Studio 1C", Amount: 65000, DueDate: "2024-01-01", Status: PaymentPending, Late: true},
		{ID: 3, Tenant: "Ram", Property: "Garden Villa 5B", Amount: 95000, DueDate: "2024-01-01", Status: PaymentOverdue, Late: true},
	}
}

func ids(records []*PaymentRecord) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterPayments(t *testing.T) {
	records := seedRecords()

	cases := []struct {
		name   string
		term   string
		status string
		want   []int64
	}{
		{"no filter", "", StatusFilterAll, []int64{1, 2, 3}},
		{"tenant substring any case", "RAJ", StatusFilterAll, []int64{1}},
		{"property substring", "villa", "", []int64{3}},
		{"status only", "", "pending", []int64{2}},
		{"term and status both apply", "a", "overdue", []int64{3}},
		{"no match", "zzz", StatusFilterAll, []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(FilterPayments(records, tc.term, tc.status))
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestFilterPayments_MatchesPredicate(t *testing.T) {
	records := seedRecords()
	for _, term := range []string{"", "r", "Sun", "x"} {
		for _, status := range []string{StatusFilterAll, "paid", "pending", "overdue"} {
			got := FilterPayments(records, term, status)
			n := 0
			for _, r := range records {
				if MatchesPayment(r, term, status) {
					if got[n] != r {
						t.Fatalf("order not preserved for term=%q status=%q", term, status)
					}
					n++
				}
			}
			if n != len(got) {
				t.Fatalf("term=%q status=%q: expected %d rows, got %d", term, status, n, len(got))
			}
		}
	}
}

func TestSummarizePayments_SeedScenario(t *testing.T) {
	s := SummarizePayments(seedRecords())

	if FormatLakhs(s.Collected) != "₹0.85L" {
		t.Errorf("collected = %s", FormatLakhs(s.Collected))
	}
	if FormatLakhs(s.Pending) != "₹0.65L" {
		t.Errorf("pending = %s", FormatLakhs(s.Pending))
	}
	if FormatLakhs(s.Overdue) != "₹0.95L" {
		t.Errorf("overdue = %s", FormatLakhs(s.Overdue))
	}
}

func TestParseStatusFilter(t *testing.T) {
	for in, want := range map[string]string{"": "all", "all": "all", "Paid": "paid", " overdue ": "overdue"} {
		got, err := ParseStatusFilter(in)
		if err != nil || got != want {
			t.Errorf("ParseStatusFilter(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseStatusFilter("late"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestPaymentForm_Validate(t *testing.T) {
	card := PaymentForm{Amount: 85000, Method: MethodCreditCard, CardNumber: "4111", ExpiryDate: "12/26", CVV: "123", CardName: "Raju"}
	if err := card.Validate(); err != nil {
		t.Fatalf("valid card form rejected: %v", err)
	}

	bank := PaymentForm{Amount: 85000, Method: MethodBankTransfer, BankAccount: "0012", RoutingNumber: "021000021"}
	if err := bank.Validate(); err != nil {
		t.Fatalf("valid bank form rejected: %v", err)
	}

	missing := PaymentForm{Amount: 85000, Method: MethodCreditCard, CardNumber: "4111"}
	err := missing.Validate()
	if !errors.Is(err, ErrInvalidPayment) {
		t.Fatalf("expected ErrInvalidPayment, got %v", err)
	}
	if !strings.Contains(err.Error(), "card_name, cvv, expiry_date") {
		t.Errorf("expected sorted missing fields, got %q", err.Error())
	}

	// bank fields do not satisfy a card payment
	mixed := PaymentForm{Amount: 1, Method: MethodCreditCard, BankAccount: "1", RoutingNumber: "2"}
	if err := mixed.Validate(); !errors.Is(err, ErrInvalidPayment) {
		t.Errorf("expected ErrInvalidPayment, got %v", err)
	}

	if err := (PaymentForm{Amount: 0, Method: MethodBankTransfer, BankAccount: "1", RoutingNumber: "2"}).Validate(); !errors.Is(err, ErrInvalidPayment) {
		t.Errorf("expected zero amount rejected, got %v", err)
	}
	if err := (PaymentForm{Amount: 1, Method: "cash"}).Validate(); !errors.Is(err, ErrInvalidPayment) {
		t.Errorf("expected unsupported method rejected, got %v", err)
	}
}
