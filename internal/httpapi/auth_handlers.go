package httpapi

import (
	"errors"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"lsaportal.org/internal/auth"
	"lsaportal.org/internal/obs"
	"lsaportal.org/internal/spa"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type loginResponse struct {
	User      *auth.AdminUser `json:"user"`
	Policy    *spa.Policy     `json:"policy,omitempty"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		a.handleLoginError(w, r, err)
		return
	}

	obs.CountLogin("ok")
	writeJSON(w, http.StatusOK, loginResponse{
		User:      result.User,
		Policy:    result.Policy,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

func (a *API) handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var restricted *auth.RestrictedError
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		obs.CountLogin("invalid_credentials")
		writeError(w, r, http.StatusUnauthorized, "invalid username or password")
	case errors.As(err, &restricted):
		obs.CountLogin("restricted")
		payload := map[string]any{
			"error":         restricted.Policy.StatusMessage,
			"statusMessage": restricted.Policy.StatusMessage,
			"spa_status":    restricted.Policy.Status,
			"allowedTabs":   restricted.Policy.AllowedTabs,
			"access_denied": true,
		}
		if rid := RequestIDFromContext(r.Context()); rid != "" {
			payload["request_id"] = rid
		}
		writeJSON(w, http.StatusForbidden, payload)
	default:
		obs.CountLogin("error")
		obs.Error("login failed", err, map[string]any{
			"request_id": RequestIDFromContext(r.Context()),
		})
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	// Tokens are self-contained; there is no server-side session to tear
	// down. The client discards the token.
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (a *API) handleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	token, ok := auth.TokenFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "missing bearer token")
		return
	}

	// Fresh re-fetch: a deactivated account is rejected here even though
	// its token still carries a valid signature.
	user, _, err := a.auth.IdentityFromToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			writeError(w, r, http.StatusUnauthorized, "token expired")
		case errors.Is(err, auth.ErrTokenInvalid):
			writeError(w, r, http.StatusUnauthorized, "invalid token")
		default:
			obs.Error("verify failed", err, map[string]any{
				"request_id": RequestIDFromContext(r.Context()),
			})
			writeError(w, r, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
