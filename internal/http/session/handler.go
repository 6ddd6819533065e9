package session

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
	"github.com/MrJamesThe3rd/valueplus/internal/auth"
	"github.com/MrJamesThe3rd/valueplus/internal/http/bearer"
	"github.com/MrJamesThe3rd/valueplus/internal/http/respond"
	"github.com/MrJamesThe3rd/valueplus/internal/session"
	"github.com/MrJamesThe3rd/valueplus/internal/token"
)

// Handler exchanges credentials for API tokens. Each login goes through the
// auth provider and the role policy, exactly like an interactive session.
type Handler struct {
	client *auth.Client
	policy session.RolePolicy
	tokens *token.Issuer
}

func NewHandler(client *auth.Client, policy session.RolePolicy, tokens *token.Issuer) *Handler {
	return &Handler{
		client: client,
		policy: policy,
		tokens: tokens,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.With(bearer.RequireUser).Get("/", h.get)
	r.Delete("/", h.delete)
}

type loginRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Signup          bool   `json:"signup"`
}

type userResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
}

type sessionResponse struct {
	Token     string       `json:"token,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
	User      userResponse `json:"user"`
	Role      session.Role `json:"role"`
	Landing   session.View `json:"landing"`
}

func toUserResponse(u *auth.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, err)
		return
	}

	creds := auth.Credentials{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Signup:          req.Signup,
	}

	if err := session.ValidateCredentials(creds); err != nil {
		respond.Error(w, err)
		return
	}

	user, err := h.client.Login(creds).Wait(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	role := h.policy.Resolve(user, creds)

	raw, claims, err := h.tokens.Issue(user, role)
	if err != nil {
		respond.Error(w, err)
		return
	}

	slog.Info("session created", "user", user.Username, "role", role)

	respond.JSON(w, http.StatusCreated, sessionResponse{
		Token:     raw,
		ExpiresAt: &claims.ExpiresAt.Time,
		User:      toUserResponse(user),
		Role:      role,
		Landing:   role.Landing(),
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	claims, ok := bearer.Claims(r.Context())
	if !ok {
		respond.Error(w, apperr.Auth("not logged in", nil))
		return
	}

	respond.JSON(w, http.StatusOK, sessionResponse{
		User:    toUserResponse(claims.User()),
		Role:    claims.Role,
		Landing: claims.Role.Landing(),
	})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.client.Logout().Wait(r.Context()); err != nil {
		respond.Error(w, apperr.Auth("logout failed", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
