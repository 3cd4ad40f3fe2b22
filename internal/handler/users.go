package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-blog/internal/model"
	"github.com/deppfellow/go-blog/internal/server"
)

// UserService is the business layer behind the users routes;
// *service.UserService implements it.
type UserService interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	ListUsers(ctx context.Context, p model.Pagination) ([]model.User, error)
	CreateUser(ctx context.Context, p model.CreateUserParams) (*model.User, error)
	PatchUser(ctx context.Context, id int64, p model.PatchUserParams) (*model.User, error)
}

// SingleUserResponse answers GET /users/:id.
type SingleUserResponse struct {
	Type model.MatchType `json:"type"`
	ID   int64           `json:"id"`
	Data *model.User     `json:"data"`
}

// UserListResponse answers GET /users.
type UserListResponse struct {
	Type  model.MatchType `json:"type"`
	Limit int             `json:"limit"`
	Page  int             `json:"page"`
	Data  []model.User    `json:"data"`
}

// MutationResponse answers POST and PATCH.
type MutationResponse struct {
	OK   bool        `json:"ok"`
	Data *model.User `json:"data"`
}

type UserHandler struct {
	Handler
	users UserService
}

func NewUserHandler(s *server.Server, users UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// ListOrGet serves both GET /users and GET /users/:id.
func (h *UserHandler) ListOrGet(c echo.Context, req *GetUsersRequest) (any, error) {
	ctx := c.Request().Context()

	if req.query.Type == model.MatchSingle {
		user, err := h.users.GetUser(ctx, req.query.ID)
		if err != nil {
			return nil, err
		}
		return SingleUserResponse{Type: model.MatchSingle, ID: req.query.ID, Data: user}, nil
	}

	p := req.query.Pagination
	users, err := h.users.ListUsers(ctx, p)
	if err != nil {
		return nil, err
	}
	return UserListResponse{Type: model.MatchList, Limit: p.Limit, Page: p.Page, Data: users}, nil
}

func (h *UserHandler) Create(c echo.Context, req *CreateUserRequest) (MutationResponse, error) {
	user, err := h.users.CreateUser(c.Request().Context(), req.params())
	if err != nil {
		return MutationResponse{}, err
	}
	return MutationResponse{OK: true, Data: user}, nil
}

func (h *UserHandler) Patch(c echo.Context, req *PatchUserRequest) (MutationResponse, error) {
	user, err := h.users.PatchUser(c.Request().Context(), req.userID, req.params())
	if err != nil {
		return MutationResponse{}, err
	}
	return MutationResponse{OK: true, Data: user}, nil
}
