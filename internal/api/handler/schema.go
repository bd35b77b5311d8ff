package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Session ---

type loginRequest struct {
	UserType string `json:"user_type" validate:"required,oneof=admin tenant"`
	Email    string `json:"email"     validate:"required"`
	Password string `json:"password"`
}

type sessionResponse struct {
	ID          string    `json:"id"`
	UserType    string    `json:"user_type"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Stage       string    `json:"stage"`
	View        string    `json:"view"`
	CreatedAt   time.Time `json:"created_at"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session sessionResponse `json:"session"`
}

// --- Dashboards ---

type statResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type featureResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type welcomeResponse struct {
	DisplayName string            `json:"display_name"`
	UserType    string            `json:"user_type"`
	ContinueTo  string            `json:"continue_to"`
	Features    []featureResponse `json:"features"`
	Stats       []statResponse    `json:"stats"`
}

type adminStatsResponse struct {
	TotalProperties       int    `json:"total_properties"`
	TotalTenants          int    `json:"total_tenants"`
	MonthlyRevenue        int64  `json:"monthly_revenue"`
	MonthlyRevenueDisplay string `json:"monthly_revenue_display"`
	OccupancyRate         int    `json:"occupancy_rate"`
}

type adminDashboardResponse struct {
	DisplayName    string             `json:"display_name"`
	Stats          adminStatsResponse `json:"stats"`
	RecentPayments []paymentResponse  `json:"recent_payments"`
}

type leaseResponse struct {
	Property    string `json:"property"`
	Address     string `json:"address"`
	Rent        int64  `json:"rent"`
	RentDisplay string `json:"rent_display"`
	LeaseStart  string `json:"lease_start"`
	LeaseEnd    string `json:"lease_end"`
}

type tenantDashboardResponse struct {
	DisplayName    string            `json:"display_name"`
	Demo           bool              `json:"demo"`
	Lease          leaseResponse     `json:"lease"`
	NextPaymentDue string            `json:"next_payment_due"`
	Balance        int64             `json:"balance"`
	BalanceDisplay string            `json:"balance_display"`
	Payments       []paymentResponse `json:"payments"`
}

// --- Listings ---

type propertyRequest struct {
	Name    string `json:"name"    validate:"required"`
	Address string `json:"address" validate:"required"`
	Rent    int64  `json:"rent"    validate:"min=0"`
	Status  string `json:"status"  validate:"omitempty,oneof=vacant occupied maintenance"`
}

type propertyResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Rent        int64   `json:"rent"`
	RentDisplay string  `json:"rent_display"`
	Status      string  `json:"status"`
	TenantID    *int64  `json:"tenant_id"`
	Tenant      *string `json:"tenant"`
}

type propertyFormResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Rent    int64  `json:"rent"`
	Status  string `json:"status"`
}

type tenantRequest struct {
	Name       string `json:"name"        validate:"required"`
	Email      string `json:"email"       validate:"required,email"`
	Phone      string `json:"phone"`
	PropertyID int64  `json:"property_id" validate:"required,gt=0"`
	LeaseStart string `json:"lease_start" validate:"omitempty,datetime=2006-01-02"`
	LeaseEnd   string `json:"lease_end"   validate:"omitempty,datetime=2006-01-02"`
	Rent       int64  `json:"rent"        validate:"min=0"`
	Status     string `json:"status"      validate:"omitempty,oneof=active pending"`
}

type tenantResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	PropertyID  int64  `json:"property_id"`
	Property    string `json:"property"`
	LeaseStart  string `json:"lease_start"`
	LeaseEnd    string `json:"lease_end"`
	Rent        int64  `json:"rent"`
	RentDisplay string `json:"rent_display"`
	Status      string `json:"status"`
}

type tenantFormResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PropertyID int64  `json:"property_id"`
	LeaseStart string `json:"lease_start"`
	LeaseEnd   string `json:"lease_end"`
	Rent       int64  `json:"rent"`
	Status     string `json:"status"`
}

type listResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// --- Payments ---

type paymentResponse struct {
	ID            int64   `json:"id"`
	Tenant        string  `json:"tenant"`
	Property      string  `json:"property"`
	Amount        int64   `json:"amount"`
	AmountDisplay string  `json:"amount_display"`
	Date          *string `json:"date"`
	DueDate       string  `json:"due_date"`
	Status        string  `json:"status"`
	Method        *string `json:"method"`
	Late          bool    `json:"late"`
}

type paymentSummaryResponse struct {
	Collected        int64  `json:"collected"`
	CollectedDisplay string `json:"collected_display"`
	Pending          int64  `json:"pending"`
	PendingDisplay   string `json:"pending_display"`
	Overdue          int64  `json:"overdue"`
	OverdueDisplay   string `json:"overdue_display"`
}

type paymentHistoryResponse struct {
	Data    []paymentResponse      `json:"data"`
	Summary paymentSummaryResponse `json:"summary"`
	Shown   int                    `json:"shown"`
	Total   int                    `json:"total"`
}

type submitPaymentRequest struct {
	Amount        int64  `json:"amount"         validate:"required,gt=0"`
	Method        string `json:"method"         validate:"required,oneof=credit_card bank_transfer"`
	CardNumber    string `json:"card_number"    validate:"required_if=Method credit_card"`
	ExpiryDate    string `json:"expiry_date"    validate:"required_if=Method credit_card"`
	CVV           string `json:"cvv"            validate:"required_if=Method credit_card"`
	CardName      string `json:"card_name"      validate:"required_if=Method credit_card"`
	BankAccount   string `json:"bank_account"   validate:"required_if=Method bank_transfer"`
	RoutingNumber string `json:"routing_number" validate:"required_if=Method bank_transfer"`
}

type receiptResponse struct {
	ID            string    `json:"id"`
	PaymentID     int64     `json:"payment_id"`
	Amount        int64     `json:"amount"`
	AmountDisplay string    `json:"amount_display"`
	Method        string    `json:"method"`
	ProcessedAt   time.Time `json:"processed_at"`
	Message       string    `json:"message"`
	Replayed      bool      `json:"replayed"`
}

// --- Notifications / owners ---

type notificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ownerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
