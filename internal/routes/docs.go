package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/btcwallet/btcwallet-service/internal/openapi"
)

// RegisterDocsRoutes serves the OpenAPI description as JSON and YAML.
func RegisterDocsRoutes(app *fiber.App, d Deps) error {
	doc := openapi.Build(openapi.Options{
		BasePath:  BasePath,
		ServerURL: "http://localhost" + d.Cfg.Address(),
	})
	asJSON, err := doc.JSON()
	if err != nil {
		return err
	}
	asYAML, err := doc.YAML()
	if err != nil {
		return err
	}

	app.Get("/v3/api-docs", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(asJSON)
	})
	app.Get("/v3/api-docs.yaml", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "application/yaml")
		return c.Send(asYAML)
	})
	return nil
}
