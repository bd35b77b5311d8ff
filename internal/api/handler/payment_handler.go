package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/propelrent/rentwise/internal/api/metrics"
	"github.com/propelrent/rentwise/internal/core/domain"
	"github.com/propelrent/rentwise/internal/core/ports"
)

// PaymentHandler serves the payment history table and rent payment submissions.
type PaymentHandler struct {
	history  ports.PaymentHistoryService
	payments ports.PaymentService
	tenants  ports.DashboardService
}

func NewPaymentHandler(history ports.PaymentHistoryService, payments ports.PaymentService, tenants ports.DashboardService) *PaymentHandler {
	return &PaymentHandler{history: history, payments: payments, tenants: tenants}
}

// History handles GET /v1/admin/payments.
//
// Rows are filtered by search term and status; the summary always covers the
// whole history.
//
// @Summary      Payment history
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Tenant or property substring (case-insensitive)"
// @Param        status  query     string  false  "all, paid, pending or overdue"
// @Success      200     {object}  paymentHistoryResponse
// @Failure      401     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Router       /v1/admin/payments [get]
func (h *PaymentHandler) History(c echo.Context) error {
	res, err := h.history.History(c.Request().Context(), ports.HistoryQuery{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, paymentHistoryResponse{
		Data:    toPaymentResponses(res.Records),
		Summary: toSummaryResponse(res.Summary),
		Shown:   len(res.Records),
		Total:   res.Total,
	})
}

// TenantHistory handles GET /v1/tenant/payments: the caller's own payments.
//
// @Summary      My payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse[paymentResponse]
// @Failure      401  {object}  errorResponse
// @Router       /v1/tenant/payments [get]
func (h *PaymentHandler) TenantHistory(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	d, err := h.tenants.Tenant(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	data := toPaymentResponses(d.Payments)
	return c.JSON(http.StatusOK, listResponse[paymentResponse]{Data: data, Total: len(data)})
}

// Submit handles POST /v1/tenant/payments.
//
// The request blocks until the processor settles. Repeating a request with the
// same Idempotency-Key returns the original receipt with 200.
//
// @Summary      Pay rent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Idempotency key to prevent duplicate charges"
// @Param        body             body      submitPaymentRequest  true   "Payment form"
// @Success      201              {object}  receiptResponse
// @Success      200              {object}  receiptResponse
// @Failure      400              {object}  errorResponse
// @Failure      402              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      504              {object}  errorResponse
// @Router       /v1/tenant/payments [post]
func (h *PaymentHandler) Submit(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req submitPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.PaymentsErrorsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	start := time.Now()
	key := c.Request().Header.Get("Idempotency-Key")
	res, err := h.payments.Submit(c.Request().Context(), ports.SubmitPaymentInput{
		Email:          sess.Email,
		IdempotencyKey: key,
		Form:           toPaymentForm(req),
	})
	if err != nil {
		reason := paymentErrorReason(err)
		metrics.PaymentsErrorsTotal.WithLabelValues(reason).Inc()
		metrics.PaymentProcessingDuration.WithLabelValues(reason).Observe(time.Since(start).Seconds())
		return err
	}
	metrics.PaymentProcessingDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())

	if key != "" {
		result := "miss"
		if res.Replayed {
			result = "hit"
		}
		metrics.PaymentsReplayTotal.WithLabelValues(result).Inc()
	}

	if res.Replayed {
		return c.JSON(http.StatusOK, toReceiptResponse(res.Receipt, true))
	}
	metrics.PaymentsProcessedTotal.WithLabelValues(req.Method).Inc()
	return c.JSON(http.StatusCreated, toReceiptResponse(res.Receipt, false))
}

func paymentErrorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidPayment):
		return "invalid"
	case errors.Is(err, domain.ErrPaymentDeclined):
		return "declined"
	case errors.Is(err, domain.ErrPaymentTimeout):
		return "timeout"
	case errors.Is(err, domain.ErrPaymentCancelled):
		return "cancelled"
	}
	return "internal"
}
