package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/olivosverdes/fruteria-api/internal/application/checkout"
	"github.com/olivosverdes/fruteria-api/internal/application/dto"
	"github.com/olivosverdes/fruteria-api/internal/domain"
)

// CheckoutHandler maneja la confirmación de compra y la consulta de órdenes
// (rutas protegidas: exigen sesión iniciada).
type CheckoutHandler struct {
	uc *checkout.UseCase
}

// NewCheckoutHandler construye el handler de checkout.
func NewCheckoutHandler(uc *checkout.UseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Review godoc
// @Summary      Ver resumen de checkout
// @Tags         checkout
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CheckoutView
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/checkout [get]
func (h *CheckoutHandler) Review(c *fiber.Ctx) error {
	out, err := h.uc.Review(c.Context(), GetSessionID(c), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Confirm godoc
// @Summary      Confirmar compra
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmOrderRequest  true  "Número de tarjeta"
// @Success      201   {object}  dto.ConfirmOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Confirm(c.Context(), GetSessionID(c), GetUserID(c), in)
	if err != nil {
		code, status, msg, backTo := confirmError(err)
		if code != "" {
			if isAJAX(c) {
				return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
			}
			setFlash(c, msg)
			return c.Redirect(backTo, fiber.StatusSeeOther)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if isAJAX(c) {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	setFlash(c, out.Message)
	return c.Redirect("/api/orders/"+out.OrderID, fiber.StatusSeeOther)
}

// confirmError mapea las precondiciones del checkout a respuestas HTTP.
// backTo es la página que puede corregir el problema en el flujo sin AJAX:
// carrito vacío regresa al catálogo y dirección faltante al perfil.
// Devuelve code vacío si el error no es una precondición conocida.
func confirmError(err error) (code string, status int, msg, backTo string) {
	switch {
	case errors.Is(err, domain.ErrMissingPayment):
		return "MISSING_PAYMENT", fiber.StatusBadRequest, "Por favor ingresa el número de tu tarjeta.", "/api/checkout"
	case errors.Is(err, domain.ErrEmptyCart):
		return "EMPTY_CART", fiber.StatusConflict, "Tu carrito está vacío.", "/api/products"
	case errors.Is(err, domain.ErrMissingAddress):
		return "MISSING_ADDRESS", fiber.StatusConflict, "Agrega una dirección de envío a tu perfil antes de continuar.", "/api/profile"
	case errors.Is(err, domain.ErrNoBranch):
		return "NO_BRANCH", fiber.StatusConflict, "No hay sucursales disponibles por el momento.", "/api/checkout"
	case errors.Is(err, domain.ErrNotFound):
		return "PRODUCT_GONE", fiber.StatusConflict, "Un producto de tu carrito ya no está disponible.", "/api/checkout"
	}
	return "", 0, "", ""
}

// GetOrder godoc
// @Summary      Ver una orden propia
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *CheckoutHandler) GetOrder(c *fiber.Ctx) error {
	out, err := h.uc.GetOrder(c.Params("id"), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListOrders godoc
// @Summary      Listar órdenes propias
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *CheckoutHandler) ListOrders(c *fiber.Ctx) error {
	out, err := h.uc.ListOrders(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
