package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/EventRegistration/internal/confirmation"
	"github.com/stpnv0/EventRegistration/internal/domain"
	"github.com/stpnv0/EventRegistration/internal/export"
	"github.com/stpnv0/EventRegistration/internal/handler/dto"
	"github.com/stpnv0/EventRegistration/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, session domain.AdminSession, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, session domain.AdminSession, id string, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, session domain.AdminSession, id string) error
	Get(ctx context.Context, session domain.AdminSession, id string) (*domain.Event, error)
	List(ctx context.Context, session domain.AdminSession) ([]*domain.Event, error)
	ListAvailable(ctx context.Context, program *domain.Program) ([]*domain.EventAvailability, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.Registration, error)
	RegisterBulk(ctx context.Context, input domain.BulkRegisterInput) (*domain.BulkResult, error)
	GetDetails(ctx context.Context, id string) (*domain.RegistrationDetails, error)
	List(ctx context.Context, session domain.AdminSession) ([]*domain.RegistrationDetails, error)
	Delete(ctx context.Context, session domain.AdminSession, id string) error
}

type AuthSvc interface {
	Login(ctx context.Context, email, password string) (*domain.AdminSession, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, session domain.AdminSession, current, next string) error
}

type Options struct {
	CookieName   string
	CookieSecure bool
	PublicURL    string
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	authService         AuthSvc
	opts                Options
}

func NewHandler(eventService EventSvc, registrationService RegistrationSvc, authService AuthSvc, opts Options) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		authService:         authService,
		opts:                opts,
	}
}

// Public

func (h *Handler) ListEvents(c *ginext.Context) {
	var program *domain.Program
	if p := c.Query("program"); p != "" {
		v := domain.Program(p)
		program = &v
	}

	events, err := h.eventService.ListAvailable(c.Request.Context(), program)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AvailableEventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToAvailableEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "All fields are required"})
		return
	}

	reg, err := h.registrationService.Register(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegisterResponse(reg))
}

func (h *Handler) RegisterBulk(c *ginext.Context) {
	var req dto.BulkRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "All fields are required and at least one event must be selected",
		})
		return
	}

	res, err := h.registrationService.RegisterBulk(c.Request.Context(), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !res.Succeeded() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Registration failed",
			Errors:  res.Errors,
		})
		return
	}

	c.JSON(http.StatusOK, dto.ToBulkRegisterResponse(res))
}

func (h *Handler) GetRegistration(c *ginext.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}

	details, err := h.registrationService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationDetailsResponse(details))
}

// RegistrationQR serves a PNG pointing at the registration's confirmation page.
func (h *Handler) RegistrationQR(c *ginext.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}

	if _, err := h.registrationService.GetDetails(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(confirmation.DefaultSize)))
	png, err := confirmation.PNG(confirmation.URL(h.opts.PublicURL, dto.SuccessURL(id)), size)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// Admin auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Email and password are required"})
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opts.CookieName, session.Token, maxAge, "/", "", h.opts.CookieSecure, true)

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) Logout(c *ginext.Context) {
	if token, err := c.Cookie(h.opts.CookieName); err == nil {
		if err = h.authService.Logout(c.Request.Context(), token); err != nil {
			h.handleError(c, err)
			return
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opts.CookieName, "", -1, "/", "", h.opts.CookieSecure, true)

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *Handler) ChangePassword(c *ginext.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Current password and new password are required"})
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), middleware.AdminSession(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Password updated successfully"})
}

// Admin events

func (h *Handler) AdminListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context(), middleware.AdminSession(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AdminCreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "All fields are required"})
		return
	}

	input, err := req.ToDomain()
	if err != nil {
		h.handleError(c, err)
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), middleware.AdminSession(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) AdminGetEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), middleware.AdminSession(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) AdminUpdateEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	input, err := req.ToDomain()
	if err != nil {
		h.handleError(c, err)
		return
	}
	if input.IsEmpty() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "no fields to update"})
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), middleware.AdminSession(c), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) AdminDeleteEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), middleware.AdminSession(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Event deleted successfully"})
}

// Admin registrations

func (h *Handler) AdminListRegistrations(c *ginext.Context) {
	regs, err := h.registrationService.List(c.Request.Context(), middleware.AdminSession(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegistrationDetailsResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationDetailsResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AdminExportRegistrations(c *ginext.Context) {
	regs, err := h.registrationService.List(c.Request.Context(), middleware.AdminSession(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err = export.WriteRegistrations(&buf, regs); err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.FileName(time.Now())+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *Handler) AdminDeleteRegistration(c *ginext.Context) {
	id, ok := registrationID(c)
	if !ok {
		return
	}

	if err := h.registrationService.Delete(c.Request.Context(), middleware.AdminSession(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Registration deleted successfully"})
}

func eventID(c *ginext.Context) (string, bool) {
	id, ok := domain.CanonicalID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid event ID"})
	}
	return id, ok
}

func registrationID(c *ginext.Context) (string, bool) {
	id, ok := domain.CanonicalID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid registration ID"})
	}
	return id, ok
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var quotaErr *domain.QuotaError
	var domainErr *domain.EmailDomainError
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Event not found"})

	case errors.Is(err, domain.ErrRegistrationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Registration not found"})

	case errors.As(err, &quotaErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: quotaErr.Message})

	case errors.Is(err, domain.ErrAlreadyRegistered):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: domain.ErrAlreadyRegistered.Error()})

	case errors.Is(err, domain.ErrInvalidTicketQuantity):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid ticket quantity"})

	case errors.As(err, &domainErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: domainErr.Error()})

	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: validationErr.Message})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request"})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid email or password"})

	case errors.Is(err, domain.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Current password is incorrect"})

	case errors.Is(err, domain.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Admin not found"})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
	}
}
