package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/josh-kwaku/teller-ledger/internal/domain"
	"github.com/josh-kwaku/teller-ledger/internal/logging"
	"github.com/josh-kwaku/teller-ledger/internal/service"
)

type userService interface {
	RegisterUser(ctx context.Context, req service.NewUser) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

type UserHandler struct {
	users userService
}

func NewUserHandler(users userService) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest, nil)
		return
	}

	u, err := h.users.RegisterUser(r.Context(), service.NewUser{
		ID:       req.UserID,
		Username: req.Username,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		logging.FromContext(r.Context()).Warn("user registration failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusCreated, toUserDTO(u))
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("failed to list users", "error", err)
		RespondDomainError(w, err)
		return
	}

	dtos := make([]userDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(u)
	}
	RespondSuccess(w, http.StatusOK, dtos)
}
