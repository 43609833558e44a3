package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"missing-person-tracker/internal/middleware"
	"missing-person-tracker/internal/service/auth"
)

// newTestApp mounts routes behind a stub that injects claims the way
// AuthRequired would. A nil claims value leaves the request anonymous.
func newTestApp(claims *auth.Claims, mount func(app *fiber.App)) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Use(func(c *fiber.Ctx) error {
		if claims != nil {
			c.Locals(middleware.ClaimsContextKey, claims)
		}
		return c.Next()
	})
	mount(app)
	return app
}

func userClaims() *auth.Claims {
	return &auth.Claims{UserID: uuid.New(), Email: "user@example.com"}
}

func adminClaims() *auth.Claims {
	return &auth.Claims{UserID: uuid.New(), Email: "admin@example.com", IsAdmin: true}
}

func jsonRequest(method, target string, body any) *http.Request {
	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(v)
	default:
		raw, _ := json.Marshal(v)
		reader = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return req
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	body := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	}
	return resp.StatusCode, body
}
