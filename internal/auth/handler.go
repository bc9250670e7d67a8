package auth

import (
	"errors"
	"net"
	"net/http"

	"github.com/redmonkez12/glp1-companion/internal/httputil"
	"github.com/redmonkez12/glp1-companion/internal/logging"
	"github.com/redmonkez12/glp1-companion/internal/metrics"
	"github.com/redmonkez12/glp1-companion/internal/ratelimit"
	"github.com/redmonkez12/glp1-companion/internal/user"
	"github.com/redmonkez12/glp1-companion/internal/validation"
)

// Handler contains HTTP handlers for authentication endpoints
type Handler struct {
	service     *Service
	rateLimiter *ratelimit.Limiter
}

// NewHandler creates the auth handler. A nil or disabled limiter turns
// rate limiting off.
func NewHandler(service *Service, rateLimiter *ratelimit.Limiter) *Handler {
	return &Handler{
		service:     service,
		rateLimiter: rateLimiter,
	}
}

// UserResponse wraps a user in API responses
type UserResponse struct {
	User *user.User `json:"user"`
}

// Register handles user registration
// @Summary      Register a new user
// @Description  Create a new account and receive a session token valid for seven days.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterInput true "Registration details"
// @Success      201 {object} AuthResult
// @Failure      400 {object} httputil.ErrorResponse "Invalid request, validation error or email already registered"
// @Failure      429 {object} httputil.ErrorResponse "Too many requests"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ip := getClientIP(r)
	if h.rateLimited(w, r, ip, "register") {
		return
	}

	var req RegisterInput
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Warn("invalid registration request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	// Record IP request for rate limiting
	if err := h.rateLimiter.RecordIPRequestWithPurpose(r.Context(), ip, "register"); err != nil {
		logger.Error("failed to record IP request", "error", err.Error())
	}

	result, err := h.service.Register(r.Context(), req)
	if err != nil {
		var ve *validation.Error
		switch {
		case errors.As(err, &ve):
			logger.Warn("registration failed: validation error", "error", err.Error())
			metrics.RecordAuthAttempt("register", "invalid")
			httputil.RespondValidationError(w, ve)
		case errors.Is(err, user.ErrDuplicateEmail):
			logger.Warn("registration failed: email already exists")
			metrics.RecordAuthAttempt("register", "duplicate")
			httputil.RespondErrorWithCode(w, "email already exists", httputil.CodeEmailAlreadyExists, http.StatusBadRequest)
		default:
			logger.Error("registration failed: internal error", "error", err.Error())
			metrics.RecordAuthAttempt("register", "error")
			httputil.RespondErrorWithCode(w, "failed to register user", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("user registered successfully", "user_id", result.User.ID)
	metrics.RecordAuthAttempt("register", "success")

	httputil.RespondJSON(w, result, http.StatusCreated)
}

// Login handles user login
// @Summary      User login
// @Description  Authenticate with email and password and receive a fresh session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginInput true "Login credentials"
// @Success      200 {object} AuthResult
// @Failure      400 {object} httputil.ErrorResponse "Invalid request body"
// @Failure      401 {object} httputil.ErrorResponse "Invalid credentials"
// @Failure      429 {object} httputil.ErrorResponse "Too many requests"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ip := getClientIP(r)
	if h.rateLimited(w, r, ip, "login") {
		return
	}

	var req LoginInput
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		logger.Warn("invalid login request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	if err := h.rateLimiter.RecordIPRequestWithPurpose(r.Context(), ip, "login"); err != nil {
		logger.Error("failed to record IP request", "error", err.Error())
	}

	result, err := h.service.Login(r.Context(), req)
	if err != nil {
		var ve *validation.Error
		switch {
		case errors.As(err, &ve):
			metrics.RecordAuthAttempt("login", "invalid")
			httputil.RespondValidationError(w, ve)
		case errors.Is(err, ErrInvalidCredentials):
			logger.Warn("login failed: invalid credentials")
			metrics.RecordAuthAttempt("login", "invalid_credentials")
			httputil.RespondErrorWithCode(w, "invalid email or password", httputil.CodeInvalidCredentials, http.StatusUnauthorized)
		default:
			logger.Error("login failed: internal error", "error", err.Error())
			metrics.RecordAuthAttempt("login", "error")
			httputil.RespondErrorWithCode(w, "failed to log in", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("user logged in", "user_id", result.User.ID)
	metrics.RecordAuthAttempt("login", "success")

	httputil.RespondJSON(w, result, http.StatusOK)
}

// Verify returns the user the bearer token belongs to
// @Summary      Verify session token
// @Description  Check the bearer token and return the current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} UserResponse
// @Failure      401 {object} httputil.ErrorResponse "Missing, invalid or expired token"
// @Failure      404 {object} httputil.ErrorResponse "User no longer exists"
// @Router       /api/auth/verify [get]
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	u, ok := GetUserFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	httputil.RespondJSON(w, UserResponse{User: u}, http.StatusOK)
}

// UpdatePreferences replaces the current user's preferences
// @Summary      Update preferences
// @Description  Replace food allergies, exercise level and energy levels for the current user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body user.Preferences true "New preferences"
// @Success      200 {object} UserResponse
// @Failure      400 {object} httputil.ErrorResponse "Invalid request or validation error"
// @Failure      401 {object} httputil.ErrorResponse "Unauthenticated"
// @Failure      404 {object} httputil.ErrorResponse "User no longer exists"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/users/me/preferences [patch]
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	var req user.Preferences
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	u, err := h.service.UpdatePreferences(r.Context(), userID, req)
	if err != nil {
		var ve *validation.Error
		switch {
		case errors.As(err, &ve):
			httputil.RespondValidationError(w, ve)
		case errors.Is(err, user.ErrNotFound):
			httputil.RespondErrorWithCode(w, "user not found", httputil.CodeUserNotFound, http.StatusNotFound)
		default:
			logger.Error("failed to update preferences", "user_id", userID, "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to update preferences", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	httputil.RespondJSON(w, UserResponse{User: u}, http.StatusOK)
}

// rateLimited answers 429 and returns true when ip is over its allowance.
// Limiter errors are logged and the request is let through.
func (h *Handler) rateLimited(w http.ResponseWriter, r *http.Request, ip, purpose string) bool {
	logger := logging.GetLoggerFromContext(r.Context())

	exceeded, err := h.rateLimiter.CheckIPRateLimitWithPurpose(r.Context(), ip, purpose)
	if err != nil {
		logger.Error("failed to check IP rate limit", "error", err.Error())
		return false
	}
	if !exceeded {
		return false
	}

	logger.Warn("IP rate limit exceeded", "ip", ip, "purpose", purpose)
	metrics.RecordRateLimited(purpose)
	httputil.RespondErrorWithCode(w, "too many requests, please try again later", httputil.CodeTooManyRequests, http.StatusTooManyRequests)
	return true
}

// getClientIP returns the peer address the limiter counts against. Only
// RemoteAddr is trusted; forwarding headers are honoured solely when the
// router rewrites RemoteAddr behind a trusted proxy.
func getClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RealIP stores a bare address without a port
		return r.RemoteAddr
	}
	return host
}
