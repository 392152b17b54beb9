package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/btcwallet/btcwallet-service/internal/logging"
)

func TestAuditLogsRequest(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(RequestID())
	app.Use(Audit(logging.NewWithWriter(&buf, "info")))
	app.Get("/api/btcwallet/all", func(c *fiber.Ctx) error { return c.SendString("[]") })

	req := httptest.NewRequest(fiber.MethodGet, "/api/btcwallet/all", nil)
	req.Header.Set(requestIDHeader, "req-1")
	if _, err := app.Test(req); err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry["path"] != "/api/btcwallet/all" || entry["request_id"] != "req-1" {
		t.Fatalf("unexpected log entry: %v", entry)
	}
	if entry["status"] != float64(fiber.StatusOK) {
		t.Fatalf("expected status 200, got %v", entry["status"])
	}
}

func TestAuditLogsErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(Audit(logging.NewWithWriter(&buf, "info")))
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusServiceUnavailable, "down") })

	if _, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil)); err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["level"] != "ERROR" || entry["status"] != float64(fiber.StatusServiceUnavailable) {
		t.Fatalf("unexpected log entry: %v", entry)
	}
}
