package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// PaymentStatus is the settlement state of a rent payment.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

// StatusFilterAll disables status filtering in payment history queries.
const StatusFilterAll = "all"

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentPending, PaymentOverdue:
		return true
	}
	return false
}

// PaymentMethod identifies how a payment was made.
type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	return m == MethodCreditCard || m == MethodBankTransfer
}

// Label is the display name shown in payment history.
func (m PaymentMethod) Label() string {
	switch m {
	case MethodCreditCard:
		return "Credit Card"
	case MethodBankTransfer:
		return "Bank Transfer"
	}
	return string(m)
}

// DateLayout is the calendar date format used for due and payment dates.
const DateLayout = "2006-01-02"

// PaymentRecord is one row of the payment history.
type PaymentRecord struct {
	ID       int64         `json:"id" bson:"_id"`
	TenantID *int64        `json:"tenant_id,omitempty" bson:"tenant_id,omitempty"`
	Tenant   string        `json:"tenant" bson:"tenant"`
	Property string        `json:"property" bson:"property"`
	Amount   int64         `json:"amount" bson:"amount"`
	Date     *string       `json:"date" bson:"date,omitempty"`
	DueDate  string        `json:"due_date" bson:"due_date"`
	Status   PaymentStatus `json:"status" bson:"status"`
	Method   *string       `json:"method" bson:"method,omitempty"`
	Late     bool          `json:"late" bson:"late"`
}

// PaymentSummary holds history totals by status.
type PaymentSummary struct {
	Collected int64 `json:"collected"`
	Pending   int64 `json:"pending"`
	Overdue   int64 `json:"overdue"`
}

// ParseStatusFilter normalises a status filter. Empty means "all".
func ParseStatusFilter(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == StatusFilterAll {
		return StatusFilterAll, nil
	}
	if !PaymentStatus(s).Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return s, nil
}

// MatchesPayment reports whether r passes the search term and status filter.
// The term matches tenant name or property label, case-insensitively.
func MatchesPayment(r *PaymentRecord, searchTerm, statusFilter string) bool {
	term := strings.ToLower(searchTerm)
	matchesSearch := strings.Contains(strings.ToLower(r.Tenant), term) ||
		strings.Contains(strings.ToLower(r.Property), term)
	matchesStatus := statusFilter == "" || statusFilter == StatusFilterAll || string(r.Status) == statusFilter
	return matchesSearch && matchesStatus
}

// FilterPayments returns the records matching searchTerm and statusFilter,
// preserving input order.
func FilterPayments(records []*PaymentRecord, searchTerm, statusFilter string) []*PaymentRecord {
	out := make([]*PaymentRecord, 0, len(records))
	for _, r := range records {
		if MatchesPayment(r, searchTerm, statusFilter) {
			out = append(out, r)
		}
	}
	return out
}

// SummarizePayments totals amounts by status over every record given.
// Callers pass the unfiltered set so summary cards ignore active filters.
func SummarizePayments(records []*PaymentRecord) PaymentSummary {
	var s PaymentSummary
	for _, r := range records {
		switch r.Status {
		case PaymentPaid:
			s.Collected += r.Amount
		case PaymentPending:
			s.Pending += r.Amount
		case PaymentOverdue:
			s.Overdue += r.Amount
		}
	}
	return s
}

// PaymentForm carries the fields a tenant submits to pay rent.
// Card fields are required for credit_card, bank fields for bank_transfer.
type PaymentForm struct {
	Amount        int64
	Method        PaymentMethod
	CardNumber    string
	ExpiryDate    string
	CVV           string
	CardName      string
	BankAccount   string
	RoutingNumber string
}

// Validate checks that the fields required by the chosen method are present.
func (f PaymentForm) Validate() error {
	if f.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidPayment)
	}
	var missing []string
	switch f.Method {
	case MethodCreditCard:
		for name, v := range map[string]string{
			"card_number": f.CardNumber,
			"expiry_date": f.ExpiryDate,
			"cvv":         f.CVV,
			"card_name":   f.CardName,
		} {
			if strings.TrimSpace(v) == "" {
				missing = append(missing, name)
			}
		}
	case MethodBankTransfer:
		if strings.TrimSpace(f.BankAccount) == "" {
			missing = append(missing, "bank_account")
		}
		if strings.TrimSpace(f.RoutingNumber) == "" {
			missing = append(missing, "routing_number")
		}
	default:
		return fmt.Errorf("%w: unsupported method %q", ErrInvalidPayment, f.Method)
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: missing %s", ErrInvalidPayment, strings.Join(missing, ", "))
	}
	return nil
}

// PaymentReceipt confirms a processed payment.
type PaymentReceipt struct {
	ID          string        `json:"id"`
	PaymentID   int64         `json:"payment_id"`
	Amount      int64         `json:"amount"`
	Method      PaymentMethod `json:"method"`
	ProcessedAt time.Time     `json:"processed_at"`
	Message     string        `json:"message"`
}
