package api

import (
	"net/http"
	"strconv"
	"time"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/handler/httperr"
	"rental-admin/internal/handler/middleware"
	"rental-admin/internal/handler/validation"
	"rental-admin/internal/pkg/errs"
	"rental-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errs.New("request has no authenticated principal")

// principal aborts with 401 when RequireAuth did not run for the route.
func principal(c *gin.Context) (auth.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
	}
	return p, ok
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadParam(c, "id", err)
		return uuid.Nil, false
	}
	return id, true
}

// page reads the keyset parameters shared by every list endpoint.
func page(c *gin.Context) (*queries.Cursor, int, bool) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httperr.BadParam(c, "limit", err)
			return nil, 0, false
		}
		limit = queries.ValidateLimit(n)
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit, true
}

func queryUUID(c *gin.Context, key string) (*uuid.UUID, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	id, err := uuid.Parse(v)
	if err != nil {
		httperr.BadParam(c, key, err)
		return nil, false
	}
	return &id, true
}

func queryBool(c *gin.Context, key string) (*bool, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		httperr.BadParam(c, key, err)
		return nil, false
	}
	return &b, true
}

func queryDate(c *gin.Context, key string) (*time.Time, bool) {
	t, err := validation.ParseOptionalDate(c.Query(key))
	if err != nil {
		httperr.BadParam(c, key, err)
		return nil, false
	}
	return t, true
}
