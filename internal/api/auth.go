package api

import (
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"eventcrew/rollcall/internal/common"
	"eventcrew/rollcall/internal/constants"
	"eventcrew/rollcall/internal/middleware"
	"eventcrew/rollcall/internal/models/dtos"
	"eventcrew/rollcall/internal/models/entities"
	"eventcrew/rollcall/internal/store"
)

// Register handles POST /api/register
func (h *Handlers) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RegisterReq
		fields, err := decodeAndValidate(r, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(fields) > 0 {
			common.RespondValidationErrors(w, initTime, fields)
			return
		}

		existing, err := h.deps.Store.GetUserByUsername(r.Context(), req.Username)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to check username", http.StatusInternalServerError)
			return
		}
		if existing != nil {
			common.RespondValidationErrors(w, initTime, []dtos.FieldError{
				{Field: "username", Message: "is already taken"},
			})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to hash password", http.StatusInternalServerError)
			return
		}

		user := entities.User{
			Username:     req.Username,
			PasswordHash: string(hash),
			Email:        req.Email,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
		}

		if err := h.deps.Store.CreateUser(r.Context(), &user); err != nil {
			common.RespondError(w, initTime, err, "Failed to create user", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "User registered", user, http.StatusCreated)
	}
}

// Login handles POST /api/login. A successful login sets the session
// cookie.
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginReq
		fields, err := decodeAndValidate(r, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(fields) > 0 {
			common.RespondValidationErrors(w, initTime, fields)
			return
		}

		user, err := h.deps.Store.GetUserByUsername(r.Context(), req.Username)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch user", http.StatusInternalServerError)
			return
		}
		if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			common.RespondError(w, initTime, nil, "Invalid username or password", http.StatusUnauthorized)
			return
		}

		sessionID, err := h.deps.Services.Sessions.CreateSession(user.ID, user.Username, user.DisplayName())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to create session", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     constants.SessionCookieName,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		common.RespondSuccess(w, initTime, "Logged in", user)
	}
}

// Logout handles POST /api/logout
func (h *Handlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if cookie, err := r.Cookie(constants.SessionCookieName); err == nil {
			h.deps.Services.Sessions.DestroySession(cookie.Value)
		}

		http.SetCookie(w, &http.Cookie{
			Name:     constants.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		common.RespondSuccess(w, initTime, "Logged out", nil)
	}
}

// GetAuthUser handles GET /api/auth/user
func (h *Handlers) GetAuthUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		session := middleware.SessionFromContext(r.Context())
		if session == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		user, err := h.deps.Store.GetUser(r.Context(), session.UserID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch user", http.StatusInternalServerError)
			return
		}
		if user == nil {
			common.RespondError(w, initTime, nil, "User not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "User fetched", user)
	}
}

// UpdateProfile handles PATCH /api/auth/user
func (h *Handlers) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		session := middleware.SessionFromContext(r.Context())
		if session == nil {
			common.RespondError(w, initTime, nil, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var req dtos.UpdateProfileReq
		fields, err := decodeAndValidate(r, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(fields) > 0 {
			common.RespondValidationErrors(w, initTime, fields)
			return
		}

		user, err := h.deps.Store.UpdateUser(r.Context(), session.UserID, store.UserPatch{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			AvatarURL: req.AvatarURL,
		})
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update profile", http.StatusInternalServerError)
			return
		}
		if user == nil {
			common.RespondError(w, initTime, nil, "User not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Profile updated", user)
	}
}
