package routes

import (
	"github.com/go-chi/chi/v5"

	"eventcrew/rollcall/internal/api"
	"eventcrew/rollcall/internal/constants"
	"eventcrew/rollcall/internal/middleware"
)

// RegisterAPIRoutes registers all API routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, deps *api.Dependencies) {
	sessionAuth := deps.Cfg.AuthMode == string(constants.AuthModeSession)

	r.Route("/api", func(apiRouter chi.Router) {
		// Auth endpoints only exist in session mode; without them there is
		// nothing to log into.
		if sessionAuth {
			apiRouter.Post("/register", handlers.Register())
			apiRouter.Post("/login", handlers.Login())
			apiRouter.Post("/logout", handlers.Logout())
		}

		apiRouter.Group(func(protected chi.Router) {
			if sessionAuth {
				protected.Use(middleware.SessionMiddleware(deps.Services.Sessions))
			}

			if sessionAuth {
				protected.Get("/auth/user", handlers.GetAuthUser())
				protected.Patch("/auth/user", handlers.UpdateProfile())
			}

			protected.Route("/events", func(events chi.Router) {
				events.Get("/", handlers.ListEvents())
				events.Post("/", handlers.CreateEvent())

				events.Route("/{id}", func(event chi.Router) {
					event.Get("/", handlers.GetEvent())
					event.Patch("/", handlers.UpdateEvent())
					event.Get("/stats", handlers.GetEventStats())

					event.Get("/volunteers", handlers.ListVolunteers())
					event.Post("/volunteers", handlers.CreateVolunteer())

					event.Get("/shifts", handlers.ListShifts())
					event.Post("/shifts", handlers.CreateShift())
					event.Get("/shifts/date/{date}", handlers.ListShiftsByDate())

					event.Get("/roles", handlers.ListRoles())
					event.Post("/roles", handlers.CreateRole())
				})
			})

			protected.Route("/volunteers/{id}", func(volunteer chi.Router) {
				volunteer.Get("/", handlers.GetVolunteer())
				volunteer.Patch("/", handlers.UpdateVolunteer())
				volunteer.Delete("/", handlers.DeleteVolunteer())
				volunteer.Post("/check-in", handlers.CheckInVolunteer())
				volunteer.Post("/qr-token", handlers.GenerateQRToken())
			})

			protected.Post("/check-in/qr", handlers.QRCheckIn())

			protected.Route("/shifts/{id}", func(shift chi.Router) {
				shift.Get("/", handlers.GetShift())
				shift.Put("/", handlers.UpdateShift())
				shift.Delete("/", handlers.DeleteShift())

				shift.Get("/roles", handlers.ListShiftRoles())
				shift.Put("/roles", handlers.ReplaceShiftRoles())
				shift.Delete("/roles/{roleId}", handlers.RemoveShiftRole())
			})

			protected.Post("/shift-roles", handlers.AssignShiftRole())

			protected.Route("/roles/{id}", func(role chi.Router) {
				role.Get("/", handlers.GetRole())
				role.Patch("/", handlers.UpdateRole())
				role.Delete("/", handlers.DeleteRole())
			})
		})
	})
}
