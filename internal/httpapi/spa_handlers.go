package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"lsaportal.org/internal/auth"
	"lsaportal.org/internal/obs"
)

func (a *API) handleNavigation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	spaID, ok := a.spaScopedRequest(w, r, "/v1/auth/navigation/")
	if !ok {
		return
	}

	nav, err := a.spas.FilteredNavigation(r.Context(), spaID)
	if err != nil {
		// Not-found, unknown status, and lookup failure all fail closed.
		obs.Error("navigation resolve failed", err, map[string]any{
			"spa_id":     spaID,
			"request_id": RequestIDFromContext(r.Context()),
		})
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, nav)
}

func (a *API) handleSpaStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	spaID, ok := a.spaScopedRequest(w, r, "/v1/auth/spa-status/")
	if !ok {
		return
	}

	policy, err := a.spas.Resolve(r.Context(), spaID)
	if err != nil {
		obs.Error("status resolve failed", err, map[string]any{
			"spa_id":     spaID,
			"request_id": RequestIDFromContext(r.Context()),
		})
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, policy)
}

// spaScopedRequest parses the spa id from the path and enforces the tenant
// boundary: a spa-scoped identity may only touch its own spa. Global roles
// may read any spa. A mismatch is a 403, not a 404.
func (a *API) spaScopedRequest(w http.ResponseWriter, r *http.Request, prefix string) (int64, bool) {
	raw := strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
	if raw == "" || strings.Contains(raw, "/") {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return 0, false
	}
	spaID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || spaID <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid spa id")
		return 0, false
	}

	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "missing bearer token")
		return 0, false
	}
	if claims.Role.SpaScoped() && claims.SpaID != spaID {
		writeError(w, r, http.StatusForbidden, "access denied to this spa")
		return 0, false
	}
	return spaID, true
}
