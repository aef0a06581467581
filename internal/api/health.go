package api

import (
	"net/http"
	"time"

	"eventcrew/rollcall/internal/common"
	"eventcrew/rollcall/internal/models/entities"
)

var startTime = time.Now()

// HealthCheck reports overall service health plus per-dependency detail.
// A failing store check degrades the overall status but still returns 200
// so load balancers can read the body.
func (h *Handlers) HealthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		services := map[string]entities.ServiceStatus{}
		overall := "healthy"

		if err := h.deps.Store.Ping(r.Context()); err != nil {
			overall = "degraded"
			services["store"] = entities.ServiceStatus{
				Status:  "down",
				Details: err.Error(),
			}
		} else {
			services["store"] = entities.ServiceStatus{
				Status:  "up",
				Details: h.deps.Cfg.StoreBackend,
			}
		}

		resp := entities.HealthCheckResponse{
			Status:   overall,
			Services: services,
			UpSince:  startTime,
			Uptime:   time.Since(startTime).Round(time.Second).String(),
		}

		common.RespondSuccess(w, initTime, "Health check", resp)
	}
}
