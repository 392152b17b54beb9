package wallet

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// HealthMessage is the plain text body of the liveness probe.
const HealthMessage = "BTC Wallet Service is running!"

// Handler exposes wallet HTTP endpoints.
type Handler struct {
	store Store
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// First returns the first wallet in store order, or a JSON null when the
// store is empty.
func (h *Handler) First(c *fiber.Ctx) error {
	w, ok := h.store.First(c.UserContext())
	if !ok {
		return c.Status(http.StatusOK).JSON(nil)
	}
	return c.Status(http.StatusOK).JSON(w)
}

// ByAddress returns the wallet matching the address path parameter. A miss is
// answered with 200 and a JSON null body, not 404.
func (h *Handler) ByAddress(c *fiber.Ctx) error {
	w, ok := h.store.FindByAddress(c.UserContext(), c.Params("address"))
	if !ok {
		return c.Status(http.StatusOK).JSON(nil)
	}
	return c.Status(http.StatusOK).JSON(w)
}

// All returns every wallet in store order.
func (h *Handler) All(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.store.ListAll(c.UserContext()))
}

// Health is the liveness probe.
func (h *Handler) Health(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(http.StatusOK).SendString(HealthMessage)
}
