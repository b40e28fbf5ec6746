// Package handler provides HTTP handlers for capacity endpoints.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/palantir/internal/apierror"
	capacityModel "github.com/festy23/palantir/internal/capacity/model"
	"github.com/festy23/palantir/internal/capacity/service"
)

// Handler handles HTTP requests for capacity endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
	now     func() time.Time
}

// New creates a new capacity handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger, now: time.Now}
}

// GetCapacity handles GET /capacity request.
// @Summary Team capacity against projected hours for a month
// @Tags Capacity
// @Produce json
// @Param year query int false "Year, defaults to the current year"
// @Param month query int false "Month 1-12, defaults to the current month"
// @Success 200 {object} capacityModel.MonthCapacity
// @Failure 400 {object} apierror.ErrorResponse "Invalid period"
// @Router /capacity [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetCapacity(c *gin.Context) {
	year, month, ok := h.period(c)
	if !ok {
		return
	}

	teams, err := h.service.ComputeCapacity(c.Request.Context(), year, month)
	if err != nil {
		h.writeError(c, err, "error computing capacity", "year", year, "month", month)
		return
	}
	c.JSON(http.StatusOK, capacityModel.MonthCapacity{Year: year, Month: month, Teams: teams})
}

// GetSummary handles GET /capacity/summary request.
// @Summary Team capacity for consecutive months
// @Tags Capacity
// @Produce json
// @Param year query int false "First year"
// @Param month query int false "First month"
// @Param months query int false "Number of months, default 6, max 24"
// @Success 200 {array} capacityModel.MonthCapacity
// @Router /capacity/summary [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) GetSummary(c *gin.Context) {
	year, month, ok := h.period(c)
	if !ok {
		return
	}
	months, ok := apierror.QueryInt(c, "months", capacityModel.DefaultSummaryMonths)
	if !ok {
		return
	}

	summary, err := h.service.ComputeSummary(c.Request.Context(), year, month, months)
	if err != nil {
		h.writeError(c, err, "error computing capacity summary", "year", year, "month", month)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) period(c *gin.Context) (year, month int, ok bool) {
	now := h.now().UTC()
	if year, ok = apierror.QueryInt(c, "year", now.Year()); !ok {
		return 0, 0, false
	}
	if month, ok = apierror.QueryInt(c, "month", int(now.Month())); !ok {
		return 0, 0, false
	}
	return year, month, true
}

func (h *Handler) writeError(c *gin.Context, err error, msg string, keysAndValues ...interface{}) {
	if errors.Is(err, capacityModel.ErrInvalidPeriod) {
		apierror.BadRequest(c, err.Error())
		return
	}
	apierror.Internal(c, h.logger, msg, err, keysAndValues...)
}
