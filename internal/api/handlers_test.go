package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"eventcrew/rollcall/internal/common"
	"eventcrew/rollcall/internal/config"
	"eventcrew/rollcall/internal/metrics"
	"eventcrew/rollcall/internal/models/entities"
	"eventcrew/rollcall/internal/services"
	"eventcrew/rollcall/internal/store/memstore"
)

// one registry per test binary; promauto panics on duplicate registration
var testMetrics = metrics.NewMetricsRegistry()

func newTestDeps() *Dependencies {
	st := memstore.New()
	return &Dependencies{
		Cfg: &config.Config{
			AppEnv:       "development",
			Port:         "8080",
			StoreBackend: "memory",
			AuthMode:     "none",
		},
		Store: st,
		Services: &Services{
			Events:        services.NewEventService(st),
			Sessions:      common.NewSessionService(common.NewCacheService(3600, 600), time.Hour),
			CheckInTokens: services.NewCheckInTokenService([]byte("test-secret"), time.Hour),
		},
		Metrics: testMetrics,
	}
}

// testRouter mounts the handlers the way the server does, minus the
// middleware stack, so path parameters resolve in tests.
func testRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Get("/events", h.ListEvents())
		apiRouter.Post("/events", h.CreateEvent())
		apiRouter.Get("/events/{id}", h.GetEvent())
		apiRouter.Patch("/events/{id}", h.UpdateEvent())
		apiRouter.Get("/events/{id}/stats", h.GetEventStats())
		apiRouter.Get("/events/{id}/volunteers", h.ListVolunteers())
		apiRouter.Post("/events/{id}/volunteers", h.CreateVolunteer())
		apiRouter.Get("/events/{id}/shifts", h.ListShifts())
		apiRouter.Post("/events/{id}/shifts", h.CreateShift())
		apiRouter.Get("/events/{id}/shifts/date/{date}", h.ListShiftsByDate())
		apiRouter.Get("/events/{id}/roles", h.ListRoles())
		apiRouter.Post("/events/{id}/roles", h.CreateRole())
		apiRouter.Post("/volunteers/{id}/check-in", h.CheckInVolunteer())
		apiRouter.Post("/volunteers/{id}/qr-token", h.GenerateQRToken())
		apiRouter.Post("/check-in/qr", h.QRCheckIn())
		apiRouter.Get("/shifts/{id}/roles", h.ListShiftRoles())
		apiRouter.Put("/shifts/{id}/roles", h.ReplaceShiftRoles())
		apiRouter.Delete("/shifts/{id}/roles/{roleId}", h.RemoveShiftRole())
		apiRouter.Post("/shift-roles", h.AssignShiftRole())
		apiRouter.Delete("/roles/{id}", h.DeleteRole())
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) string {
	t.Helper()

	var envelope struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response envelope: %v", err)
	}
	if data != nil && envelope.Data != nil {
		if err := json.Unmarshal(envelope.Data, data); err != nil {
			t.Fatalf("decode response data: %v", err)
		}
	}
	return envelope.Status
}

func createTestEvent(t *testing.T, deps *Dependencies) *entities.Event {
	t.Helper()
	event := entities.Event{
		Name:     "Harvest Festival",
		Date:     "October 10, 2026",
		RawDates: "2026-10-10",
		Location: "Fairgrounds",
	}
	if err := deps.Store.CreateEvent(context.Background(), &event); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	return &event
}
