package handler_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"missing-person-tracker/internal/domain"
	"missing-person-tracker/internal/handler"
	"missing-person-tracker/internal/mocks"
)

func mountAuth(svc *mocks.AuthService) func(app *fiber.App) {
	h := handler.NewAuthHandler(svc)
	return func(app *fiber.App) {
		app.Post("/api/auth/register", h.Register)
		app.Post("/api/auth/login", h.Login)
		app.Get("/api/auth/me", h.Me)
	}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(mocks.AuthService)
		user := &domain.User{ID: uuid.New(), FullName: "Jane", Email: "jane@example.com"}
		svc.On("Register", mock.Anything, mock.MatchedBy(func(in domain.CreateUserInput) bool {
			return in.Email == "jane@example.com"
		})).Return(&domain.AuthResult{User: user, Token: "tok"}, nil).Once()

		app := newTestApp(nil, mountAuth(svc))
		code, body := do(t, app, jsonRequest("POST", "/api/auth/register", map[string]string{
			"full_name": "Jane", "email": "jane@example.com", "password": "secret123",
		}))

		assert.Equal(t, fiber.StatusCreated, code)
		assert.Equal(t, "tok", body["token"])
		assert.NotContains(t, body["user"], "password_hash")
		svc.AssertExpectations(t)
	})

	t.Run("Missing fields", func(t *testing.T) {
		svc := new(mocks.AuthService)
		app := newTestApp(nil, mountAuth(svc))

		code, body := do(t, app, jsonRequest("POST", "/api/auth/register", map[string]string{"email": "x@example.com"}))
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Equal(t, "Full name, email and password are required", body["error"])
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		svc := new(mocks.AuthService)
		svc.On("Register", mock.Anything, mock.Anything).Return(nil, domain.ErrEmailExists).Once()
		app := newTestApp(nil, mountAuth(svc))

		code, _ := do(t, app, jsonRequest("POST", "/api/auth/register", map[string]string{
			"full_name": "Jane", "email": "jane@example.com", "password": "secret123",
		}))
		assert.Equal(t, fiber.StatusConflict, code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	svc := new(mocks.AuthService)
	svc.On("Login", mock.Anything, domain.LoginInput{Email: "jane@example.com", Password: "wrong"}).
		Return(nil, domain.ErrInvalidCredentials).Once()
	svc.On("Login", mock.Anything, domain.LoginInput{Email: "jane@example.com", Password: "secret123"}).
		Return(&domain.AuthResult{User: &domain.User{Email: "jane@example.com"}, Token: "tok"}, nil).Once()

	app := newTestApp(nil, mountAuth(svc))

	code, body := do(t, app, jsonRequest("POST", "/api/auth/login", map[string]string{"email": "jane@example.com", "password": "wrong"}))
	assert.Equal(t, fiber.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", body["error"])

	code, body = do(t, app, jsonRequest("POST", "/api/auth/login", map[string]string{"email": "jane@example.com", "password": "secret123"}))
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Login successful", body["message"])

	code, _ = do(t, app, jsonRequest("POST", "/api/auth/login", map[string]string{"email": "jane@example.com"}))
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestAuthHandler_Me(t *testing.T) {
	claims := userClaims()
	svc := new(mocks.AuthService)
	svc.On("GetUserByID", mock.Anything, claims.UserID).
		Return(&domain.User{ID: claims.UserID, FullName: "Jane"}, nil).Once()

	app := newTestApp(claims, mountAuth(svc))
	code, body := do(t, app, jsonRequest("GET", "/api/auth/me", nil))

	assert.Equal(t, fiber.StatusOK, code)
	user := body["user"].(map[string]any)
	assert.Equal(t, claims.UserID.String(), user["id"])
}
