package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cesge/control-equipos/internal/application/dto"
	"github.com/cesge/control-equipos/internal/application/usecase"
	"github.com/cesge/control-equipos/internal/domain"
)

// PersonaHandler maneja el catálogo de personas.
type PersonaHandler struct {
	uc *usecase.PersonaUseCase
}

// NewPersonaHandler construye el handler de personas.
func NewPersonaHandler(uc *usecase.PersonaUseCase) *PersonaHandler {
	return &PersonaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar persona
// @Tags         personas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPersonaRequest  true  "documento y nombre"
// @Success      201  {object}  dto.PersonaResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/personas [post]
func (h *PersonaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearPersonaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Crear(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "documento y nombre son requeridos"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el documento ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// List godoc
// @Summary      Listar personas
// @Tags         personas
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.PersonaResponse
// @Security     BearerAuth
// @Router       /api/personas [get]
func (h *PersonaHandler) List(c *fiber.Ctx) error {
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

// GetByDocumento godoc
// @Summary      Consultar persona por documento
// @Tags         personas
// @Produce      json
// @Param        documento  path  string  true  "documento de identidad"
// @Success      200  {object}  dto.PersonaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/personas/{documento} [get]
func (h *PersonaHandler) GetByDocumento(c *fiber.Ctx) error {
	res, err := h.uc.GetByDocumento(c.Params("documento"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "persona no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// Update godoc
// @Summary      Actualizar persona
// @Tags         personas
// @Accept       json
// @Produce      json
// @Param        documento  path  string  true  "documento de identidad"
// @Param        body  body  dto.ActualizarPersonaRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.PersonaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/personas/{documento} [put]
func (h *PersonaHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarPersonaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.uc.Actualizar(c.Params("documento"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "persona no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(res)
}

// Delete godoc
// @Summary      Eliminar persona (solo admin)
// @Tags         personas
// @Param        documento  path  string  true  "documento de identidad"
// @Success      204  "eliminada"
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/personas/{documento} [delete]
func (h *PersonaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("documento")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "persona no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
