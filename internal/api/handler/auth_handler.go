package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propelrent/rentwise/internal/api/metrics"
	"github.com/propelrent/rentwise/internal/core/ports"
)

// AuthHandler drives the session lifecycle: login, welcome, dashboard, logout.
type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login accepts any non-empty credentials and opens a session at the welcome screen.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login form"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.sessions.Login(c.Request().Context(), ports.LoginInput{
		UserType: req.UserType,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues(string(res.Session.Type)).Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token:   res.Token,
		Session: toSessionResponse(res.Session),
	})
}

// Session returns the current session and the view it is routed to.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(sess))
}

// Continue moves the session from the welcome screen to its dashboard.
//
// @Summary      Continue to dashboard
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/continue [post]
func (h *AuthHandler) Continue(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	updated, err := h.sessions.Continue(c.Request().Context(), sess.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(updated))
}

// Logout destroys the session; the token stops working immediately.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.sessions.Logout(c.Request().Context(), sess.ID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
