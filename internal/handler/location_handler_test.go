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
	"missing-person-tracker/internal/repository"
	"missing-person-tracker/internal/service/location"
)

func mountLocation(repo *mocks.LocationRepository) func(app *fiber.App) {
	h := handler.NewLocationHandler(location.NewService(repo, nil))
	return func(app *fiber.App) {
		app.Post("/api/location/update", h.Update)
		app.Get("/api/location/history", h.History)
		app.Get("/api/location/users", h.ActiveUsers)
	}
}

func TestLocationHandler_Update(t *testing.T) {
	claims := userClaims()
	repo := new(mocks.LocationRepository)
	repo.On("Record", mock.Anything, mock.MatchedBy(func(loc *domain.CurrentLocation) bool {
		return loc.UserID == claims.UserID && loc.Latitude == -6.2
	})).Return(repository.RecordResult{CurrentUpdated: true, HistoryAppended: true}, nil).Once()

	app := newTestApp(claims, mountLocation(repo))

	code, body := do(t, app, jsonRequest("POST", "/api/location/update", map[string]any{"latitude": -6.2, "longitude": 106.8, "accuracy": 12}))
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, body["success"])

	code, _ = do(t, app, jsonRequest("POST", "/api/location/update", map[string]any{"latitude": 91, "longitude": 0}))
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = do(t, app, jsonRequest("POST", "/api/location/update", map[string]any{"latitude": 10}))
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = do(t, app, jsonRequest("POST", "/api/location/update", `{"latitude":"north"}`))
	assert.Equal(t, fiber.StatusBadRequest, code)

	repo.AssertNumberOfCalls(t, "Record", 1)
}

func TestLocationHandler_History(t *testing.T) {
	claims := userClaims()
	repo := new(mocks.LocationRepository)
	repo.On("History", mock.Anything, claims.UserID, 20).Return([]domain.LocationHistoryEntry{{Latitude: -6.2, Longitude: 106.8}}, nil).Once()

	app := newTestApp(claims, mountLocation(repo))

	code, body := do(t, app, jsonRequest("GET", "/api/location/history?limit=20", nil))
	assert.Equal(t, fiber.StatusOK, code)
	assert.Len(t, body["history"], 1)

	code, _ = do(t, app, jsonRequest("GET", "/api/location/history?userId="+uuid.NewString(), nil))
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = do(t, app, jsonRequest("GET", "/api/location/history?userId=abc", nil))
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestLocationHandler_ActiveUsers(t *testing.T) {
	repo := new(mocks.LocationRepository)
	repo.On("ActiveUsers", mock.Anything).Return(nil, nil).Once()

	code, _ := do(t, newTestApp(userClaims(), mountLocation(repo)), jsonRequest("GET", "/api/location/users", nil))
	assert.Equal(t, fiber.StatusForbidden, code)

	code, body := do(t, newTestApp(adminClaims(), mountLocation(repo)), jsonRequest("GET", "/api/location/users", nil))
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, []any{}, body["locations"])
	assert.Equal(t, float64(0), body["count"])
}
