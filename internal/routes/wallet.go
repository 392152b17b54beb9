package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/btcwallet/btcwallet-service/internal/wallet"
)

// RegisterWalletRoutes wires wallet-related endpoints.
func RegisterWalletRoutes(r fiber.Router, h *wallet.Handler) {
	r.Get("/first", h.First)
	r.Get("/address/:address", h.ByAddress)
	r.Get("/all", h.All)
	r.Get("/health", h.Health)
}
