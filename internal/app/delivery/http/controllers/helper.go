package controllers

import (
	"net/http"
	"strconv"

	"clinicore-service/internal/app/models"
	"clinicore-service/internal/pkg/constvars"
)

func sessionFromContext(r *http.Request) *models.Session {
	session, _ := r.Context().Value(constvars.ContextSessionKey).(*models.Session)
	return session
}

// limitFromQuery returns 0 when the parameter is absent or malformed, which
// lets each usecase apply its own default.
func limitFromQuery(r *http.Request) int {
	raw := r.URL.Query().Get(constvars.QueryParamLimit)
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
