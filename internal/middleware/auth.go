package middleware

import (
	"context"
	"net/http"

	"eventcrew/rollcall/internal/common"
	"eventcrew/rollcall/internal/constants"
)

const sessionKey ctxKey = "session"

// SessionMiddleware resolves the session cookie and rejects requests
// without a valid session. Only mounted when the server runs with
// AUTH_MODE=session; the unauthenticated deployment never sees it.
func SessionMiddleware(sessions *common.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(constants.SessionCookieName)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			session, err := sessions.GetSession(cookie.Value)
			if err != nil {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}
			if session == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := SetSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SetSession stores session data on the context.
func SetSession(ctx context.Context, session *common.SessionData) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext returns the session set by SessionMiddleware, or nil
// on unauthenticated deployments.
func SessionFromContext(ctx context.Context) *common.SessionData {
	if s, ok := ctx.Value(sessionKey).(*common.SessionData); ok {
		return s
	}
	return nil
}
