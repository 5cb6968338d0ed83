package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/unitflow-api/internal/application/dto"
	"github.com/jhoicas/unitflow-api/internal/application/movements"
	"github.com/jhoicas/unitflow-api/internal/application/reports"
	"github.com/jhoicas/unitflow-api/internal/domain"
	"github.com/jhoicas/unitflow-api/internal/domain/entity"
)

// MovementHandler maneja el traslado de unidades y la consulta del libro (protegido).
type MovementHandler struct {
	uc *movements.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movements.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Move godoc
// @Summary      Trasladar una unidad a (departamento, sección) destino
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la unidad"
// @Param        body  body  dto.MoveUnitRequest  true  "targetDepartment, targetSection, employeeId, movementType, notes?"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/units/{id}/move [put]
func (h *MovementHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, err := h.uc.Move(c.Context(), movements.MoveInput{
		UnitID:           c.Params("id"),
		TargetDepartment: in.TargetDepartment,
		TargetSection:    in.TargetSection,
		EmployeeID:       in.EmployeeID,
		MovementType:     in.MovementType,
		Notes:            in.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "faltan campos requeridos o la sección no pertenece al departamento"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toMovementResponse(movement))
}

// List godoc
// @Summary      Consultar el libro de movimientos
// @Description  Filtros conjuntivos; dateTo incluye el día completo (hasta 23:59:59).
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        unitId      query  string  false  "Filtrar por unidad"
// @Param        employeeId  query  int     false  "Filtrar por empleado"
// @Param        dateFrom    query  string  false  "YYYY-MM-DD"
// @Param        dateTo      query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.MovementFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.uc.List(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de fecha inválido (YYYY-MM-DD)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el libro de movimientos a .xlsx
// @Tags         movements
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        unitId      query  string  false  "Filtrar por unidad"
// @Param        employeeId  query  int     false  "Filtrar por empleado"
// @Param        dateFrom    query  string  false  "YYYY-MM-DD"
// @Param        dateTo      query  string  false  "YYYY-MM-DD"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/export [get]
func (h *MovementHandler) Export(c *fiber.Ctx) error {
	var in dto.MovementFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.uc.List(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de fecha inválido (YYYY-MM-DD)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	buf, err := reports.BuildMovementsWorkbook(list)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("movements-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		TransactionID:  m.TransactionID,
		UnitID:         m.UnitID,
		EmployeeID:     m.EmployeeID,
		EmployeeName:   m.EmployeeName,
		MovementType:   m.MovementType,
		FromDepartment: m.FromDepartment,
		ToDepartment:   m.ToDepartment,
		FromSection:    m.FromSection,
		ToSection:      m.ToSection,
		Notes:          m.Notes,
		Timestamp:      m.Timestamp,
	}
}
