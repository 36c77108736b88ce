package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	cartuc "github.com/olivosverdes/fruteria-api/internal/application/cart"
	"github.com/olivosverdes/fruteria-api/internal/application/dto"
	"github.com/olivosverdes/fruteria-api/internal/domain"
)

// CartHandler maneja el carrito de sesión. Las mutaciones tienen doble salida:
// las peticiones marcadas X-Requested-With: XMLHttpRequest reciben JSON; las
// demás, redirección al carrito con el mensaje en cookie flash.
type CartHandler struct {
	uc *cartuc.UseCase
}

// NewCartHandler construye el handler del carrito.
func NewCartHandler(uc *cartuc.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// View godoc
// @Summary      Ver carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartView
// @Router       /api/cart [get]
func (h *CartHandler) View(c *fiber.Ctx) error {
	out, err := h.uc.View(c.Context(), GetSessionID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar producto al carrito
// @Tags         cart
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.AddToCartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/add/{productId} [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	out, err := h.uc.Add(c.Context(), GetSessionID(c), c.Params("productId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			if isAJAX(c) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
			}
			setFlash(c, "Ese producto ya no está disponible.")
			return c.Redirect(backURL(c), fiber.StatusSeeOther)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if isAJAX(c) {
		return c.JSON(out)
	}
	setFlash(c, out.Message)
	return c.Redirect(backURL(c), fiber.StatusSeeOther)
}

// backURL regresa al comprador a la página desde la que agregó el producto,
// con el carrito como destino cuando no hay Referer.
func backURL(c *fiber.Ctx) string {
	if ref := c.Get(fiber.HeaderReferer); ref != "" {
		return ref
	}
	return "/api/cart"
}

// Increase godoc
// @Summary      Aumentar cantidad de una línea
// @Tags         cart
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.AdjustCartResponse
// @Router       /api/cart/increase/{productId} [post]
func (h *CartHandler) Increase(c *fiber.Ctx) error {
	out, err := h.uc.Increase(c.Context(), GetSessionID(c), c.Params("productId"))
	return h.respondAdjust(c, out, err)
}

// Decrease godoc
// @Summary      Disminuir cantidad de una línea
// @Tags         cart
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.AdjustCartResponse
// @Router       /api/cart/decrease/{productId} [post]
func (h *CartHandler) Decrease(c *fiber.Ctx) error {
	out, err := h.uc.Decrease(c.Context(), GetSessionID(c), c.Params("productId"))
	return h.respondAdjust(c, out, err)
}

func (h *CartHandler) respondAdjust(c *fiber.Ctx, out *dto.AdjustCartResponse, err error) error {
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if isAJAX(c) {
		return c.JSON(out)
	}
	setFlash(c, out.Message)
	return c.Redirect("/api/cart", fiber.StatusSeeOther)
}

// Remove godoc
// @Summary      Eliminar una línea del carrito
// @Tags         cart
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.RemoveFromCartResponse
// @Router       /api/cart/remove/{productId} [post]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	out, err := h.uc.Remove(c.Context(), GetSessionID(c), c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if isAJAX(c) {
		return c.JSON(out)
	}
	setFlash(c, out.Message)
	return c.Redirect("/api/cart", fiber.StatusSeeOther)
}
