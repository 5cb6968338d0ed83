package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/unitflow-api/internal/application/dto"
	"github.com/jhoicas/unitflow-api/internal/application/stats"
)

// StatsHandler maneja los tableros de estadísticas (protegido).
type StatsHandler struct {
	uc *stats.UseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *stats.UseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Summary godoc
// @Summary      Totales del registro y del directorio
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryStats
// @Router       /api/stats [get]
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Comprehensive godoc
// @Summary      Tableros por sección de los cuatro departamentos
// @Tags         stats
// @Security     Bearer
// @Produce     json
// @Success      200  {object}  dto.ComprehensiveStats
// @Router       /api/stats/comprehensive [get]
func (h *StatsHandler) Comprehensive(c *fiber.Ctx) error {
	out, err := h.uc.Comprehensive(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
