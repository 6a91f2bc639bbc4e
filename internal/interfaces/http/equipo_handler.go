package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cesge/control-equipos/internal/application/dto"
	"github.com/cesge/control-equipos/internal/application/usecase"
	"github.com/cesge/control-equipos/internal/domain"
)

// EquipoHandler maneja el catálogo de equipos.
type EquipoHandler struct {
	uc *usecase.EquipoUseCase
}

// NewEquipoHandler construye el handler de equipos.
func NewEquipoHandler(uc *usecase.EquipoUseCase) *EquipoHandler {
	return &EquipoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar equipo
// @Tags         equipos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearEquipoRequest  true  "serial y documento del dueño"
// @Success      201  {object}  dto.EquipoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/equipos [post]
func (h *EquipoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearEquipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Crear(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "serial y documento_persona son requeridos"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el serial ya está registrado"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PERSONA_NOT_FOUND", Message: "el dueño no está en el catálogo de personas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// List godoc
// @Summary      Listar equipos
// @Tags         equipos
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.EquipoResponse
// @Security     BearerAuth
// @Router       /api/equipos [get]
func (h *EquipoHandler) List(c *fiber.Ctx) error {
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

// GetBySerial godoc
// @Summary      Consultar equipo por serial
// @Tags         equipos
// @Produce      json
// @Param        serial  path  string  true  "serial del equipo"
// @Success      200  {object}  dto.EquipoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/equipos/{serial} [get]
func (h *EquipoHandler) GetBySerial(c *fiber.Ctx) error {
	res, err := h.uc.GetBySerial(c.Params("serial"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// Update godoc
// @Summary      Actualizar equipo
// @Tags         equipos
// @Accept       json
// @Produce      json
// @Param        serial  path  string  true  "serial del equipo"
// @Param        body  body  dto.ActualizarEquipoRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.EquipoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/equipos/{serial} [put]
func (h *EquipoHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarEquipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Actualizar(c.Params("serial"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo o dueño no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// Delete godoc
// @Summary      Eliminar equipo (solo admin)
// @Tags         equipos
// @Param        serial  path  string  true  "serial del equipo"
// @Success      204  "eliminado"
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/equipos/{serial} [delete]
func (h *EquipoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("serial")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
