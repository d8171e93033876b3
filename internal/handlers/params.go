package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/SscSPs/invoicing_app/internal/validation"
	"github.com/gin-gonic/gin"
)

// Query dates are accepted as plain days or full RFC 3339 timestamps.
var dateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

func parseDay(field, raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return domain.StartOfDayUTC(t), nil
		}
	}
	return time.Time{}, validation.Field(field, "must be a date (YYYY-MM-DD)")
}

// parseDateRange turns from/to query values into an inclusive day range.
func parseDateRange(params dto.DateRangeParams) (domain.DateRange, error) {
	from, err := parseDay("from", params.From)
	if err != nil {
		return domain.DateRange{}, err
	}
	to, err := parseDay("to", params.To)
	if err != nil {
		return domain.DateRange{}, err
	}
	if to.Before(from) {
		return domain.DateRange{}, validation.Field("to", "must not be before from")
	}
	return domain.DateRange{From: from, To: to}, nil
}

// bindDateRange reads and validates the from/to query parameters, writing
// the error response itself when they are missing or malformed.
func bindDateRange(c *gin.Context) (domain.DateRange, bool) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query parameters from and to are required"})
		return domain.DateRange{}, false
	}
	rng, err := parseDateRange(params)
	if err != nil {
		respondError(c, err, "Invalid date range")
		return domain.DateRange{}, false
	}
	return rng, true
}

// requireIdentity returns the caller identity set by AuthMiddleware.
func requireIdentity(c *gin.Context) (domain.Identity, bool) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return domain.Identity{}, false
	}
	return identity, true
}

// optionalQuery returns nil for an absent or empty query parameter.
func optionalQuery(c *gin.Context, key string) *string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	return &v
}
