package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	statsuc "sacco-backend/internal/usecase/stats"
)

type StatsHandler struct{ uc *statsuc.Usecase }

func NewStatsHandler(uc *statsuc.Usecase) *StatsHandler { return &StatsHandler{uc: uc} }

// GetStatistics returns the fund snapshot in the legacy dashboard shape.
func (h *StatsHandler) GetStatistics(c echo.Context) error {
	snap, err := h.uc.Snapshot(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, snap.ToStatisticsDTO())
}

// GetFundSnapshot exposes the full derived figures.
func (h *StatsHandler) GetFundSnapshot(c echo.Context) error {
	snap, err := h.uc.Snapshot(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, snap)
}
