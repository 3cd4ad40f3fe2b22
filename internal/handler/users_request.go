package handler

import (
	"strconv"

	"github.com/deppfellow/go-blog/internal/errs"
	"github.com/deppfellow/go-blog/internal/model"
	"github.com/deppfellow/go-blog/internal/validation"
)

// GetUsersRequest binds GET /users and GET /users/:id from the path and query
// only. The raw strings are parsed in Validate so malformed values are
// rejected instead of defaulted.
type GetUsersRequest struct {
	ID    string `param:"id" json:"-"`
	Limit string `query:"limit" json:"-"`
	Page  string `query:"page" json:"-"`

	query model.UserQuery
}

func (r *GetUsersRequest) ParamsOnly() {}

func (r *GetUsersRequest) Validate() error {
	q, err := model.ParseUserQuery(r.ID, r.Limit, r.Page)
	if err != nil {
		return err
	}
	r.query = q
	return nil
}

type CreateUserRequest struct {
	FirstName string `json:"firstName" validate:"required,min=3,max=96"`
	LastName  string `json:"lastName" validate:"required,min=1,max=96"`
	Email     string `json:"email" validate:"required,email,max=96"`
	Password  string `json:"password" validate:"required,min=8,max=96,password"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateUserRequest) params() model.CreateUserParams {
	return model.CreateUserParams{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// PatchUserRequest binds PATCH /users/:id and PATCH /users. The target id
// comes from the path or, when the path has none, from the body "id" field.
type PatchUserRequest struct {
	PathID string `param:"id" json:"-"`

	ID        *int64  `json:"id"`
	FirstName *string `json:"firstName" validate:"omitempty,min=3,max=96"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=96"`
	Email     *string `json:"email" validate:"omitempty,email,max=96"`
	Password  *string `json:"password" validate:"omitempty,min=8,max=96,password"`

	userID int64
}

func (r *PatchUserRequest) Validate() error {
	id, err := r.resolveID()
	if err != nil {
		return err
	}
	r.userID = id

	return validation.Struct(r)
}

func (r *PatchUserRequest) resolveID() (int64, error) {
	if r.PathID != "" {
		id, err := model.ParseUserID(r.PathID)
		if err != nil {
			return 0, err
		}
		if r.ID != nil && *r.ID != id {
			return 0, errs.NewInvalidIdentifierError(strconv.FormatInt(*r.ID, 10)).
				WithMessage("body id does not match the path id")
		}
		return id, nil
	}

	if r.ID == nil {
		return 0, errs.NewInvalidIdentifierError("").WithMessage("user id is required")
	}
	if *r.ID < 1 {
		return 0, errs.NewInvalidIdentifierError(strconv.FormatInt(*r.ID, 10))
	}
	return *r.ID, nil
}

func (r *PatchUserRequest) params() model.PatchUserParams {
	return model.PatchUserParams{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
	}
}
