package handlers

import (
	"log"
	"net/http"

	"github.com/Rakhulsr/go-catalog/app/middlewares"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	responder
	authSvc      *services.AuthService
	sessionStore sessions.SessionStore
}

func NewAuthHandler(rd *render.Render, v *validator.Validate, debug bool, authSvc *services.AuthService, sessionStore sessions.SessionStore) *AuthHandler {
	return &AuthHandler{
		responder:    newResponder(rd, v, debug),
		authSvc:      authSvc,
		sessionStore: sessionStore,
	}
}

type googleLoginRequest struct {
	Credential string `json:"credential" validate:"required"`
}

func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req googleLoginRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	result, err := h.authSvc.SignInWithGoogle(r.Context(), req.Credential)
	if err != nil {
		h.fail(w, err)
		return
	}

	if err := h.sessionStore.SetUserID(w, r, result.User.ID); err != nil {
		log.Printf("GoogleLogin: failed to save session for user %s: %v", result.User.ID, err)
	}
	h.render.JSON(w, http.StatusOK, result)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middlewares.UserIDFromContext(r.Context())
	if userID == "" {
		h.fail(w, services.ErrUnauthorized)
		return
	}

	user, err := h.authSvc.CurrentUser(r.Context(), userID)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, services.AuthUser{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Picture: user.Picture,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("Logout: failed to clear session: %v", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.authSvc.ListUsers(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.render.JSON(w, http.StatusOK, users)
}
