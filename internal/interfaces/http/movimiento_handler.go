package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cesge/control-equipos/internal/application/dto"
	"github.com/cesge/control-equipos/internal/application/movimientos"
	"github.com/cesge/control-equipos/internal/domain"
)

// MovimientoHandler maneja el registro y consulta de movimientos de equipos.
type MovimientoHandler struct {
	uc     *movimientos.UseCase
	scanUC *movimientos.ScanUseCase
}

// NewMovimientoHandler construye el handler de movimientos.
func NewMovimientoHandler(uc *movimientos.UseCase, scanUC *movimientos.ScanUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc, scanUC: scanUC}
}

// scanStatus mapea el resultado de un escaneo al código HTTP de la respuesta.
// El body siempre es el ScanResult: la pantalla del vigilante muestra el
// mensaje sea cual sea el código.
func scanStatus(outcome string) int {
	switch outcome {
	case "CREATE_ENTRY":
		return fiber.StatusCreated
	case "CLOSE_EXIT":
		return fiber.StatusOK
	case "INVALID_PAYLOAD":
		return fiber.StatusUnprocessableEntity
	default: // ALREADY_PENDING, ALREADY_COMPLETED, NO_PENDING_MATCH
		return fiber.StatusConflict
	}
}

// Scan godoc
// @Summary      Registrar ingreso o salida escaneando el carnet QR
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "modo (ingreso|salida) y texto del QR"
// @Success      200   {object}  dto.ScanResult  "salida registrada"
// @Success      201   {object}  dto.ScanResult  "ingreso registrado"
// @Failure      409   {object}  dto.ScanResult  "duplicado o sin ingreso pendiente"
// @Failure      422   {object}  dto.ScanResult  "QR ilegible"
// @Security     BearerAuth
// @Router       /api/movimientos/scan [post]
func (h *MovimientoHandler) Scan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Modo == "" || in.QR == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "modo y qr son requeridos"})
	}
	res, err := h.scanUC.Scan(movimientos.ScanInput{
		Modo:               in.Modo,
		QR:                 in.QR,
		CentroFormacion:    in.CentroFormacion,
		DocumentoVigilante: GetDocumento(c),
		Observaciones:      in.Observaciones,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "modo debe ser ingreso o salida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(scanStatus(res.Outcome)).JSON(res)
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movimientos
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.MovimientoResponse
// @Security     BearerAuth
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	items, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Resumen godoc
// @Summary      Contadores del día para el tablero de portería
// @Tags         movimientos
// @Produce      json
// @Success      200  {object}  dto.ResumenResponse
// @Security     BearerAuth
// @Router       /api/movimientos/resumen [get]
func (h *MovimientoHandler) Resumen(c *fiber.Ctx) error {
	res, err := h.uc.Resumen()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// GetByID godoc
// @Summary      Consultar un movimiento
// @Tags         movimientos
// @Produce      json
// @Param        id  path  string  true  "id del movimiento"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/movimientos/{id} [get]
func (h *MovimientoHandler) GetByID(c *fiber.Ctx) error {
	res, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// CrearIngreso godoc
// @Summary      Registrar un ingreso manual (sin QR)
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearIngresoRequest  true  "documento y serial"
// @Success      201  {object}  dto.MovimientoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) CrearIngreso(c *fiber.Ctx) error {
	var in dto.CrearIngresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.CrearIngreso(in, GetDocumento(c))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "documento_persona y serial_equipo son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// RegistrarSalida godoc
// @Summary      Cerrar un movimiento registrando su salida
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id del movimiento"
// @Param        body  body  dto.RegistrarSalidaRequest  false  "tipo de salida"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/movimientos/{id}/salida [put]
func (h *MovimientoHandler) RegistrarSalida(c *fiber.Ctx) error {
	var in dto.RegistrarSalidaRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.RegistrarSalida(c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		case domain.ErrMovimientoCerrado:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MOVIMIENTO_CERRADO", Message: "el movimiento ya tiene salida registrada"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo_salida debe ser ocasional o permanente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// Anular godoc
// @Summary      Anular un movimiento registrado por error (solo admin)
// @Tags         movimientos
// @Param        id  path  string  true  "id del movimiento"
// @Success      204  "anulado"
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/movimientos/{id} [delete]
func (h *MovimientoHandler) Anular(c *fiber.Ctx) error {
	if err := h.uc.Anular(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
