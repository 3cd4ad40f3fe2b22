package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-blog/internal/errs"
	"github.com/deppfellow/go-blog/internal/model"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNewRequest_FreshValue(t *testing.T) {
	a := newRequest[*GetUsersRequest]()
	a.Limit = "5"

	b := newRequest[*GetUsersRequest]()
	require.NotNil(t, b)
	assert.NotSame(t, a, b)
	assert.Empty(t, b.Limit)
}

func TestGetUsersRequest_Validate(t *testing.T) {
	req := &GetUsersRequest{Limit: "5", Page: "3"}
	require.NoError(t, req.Validate())
	assert.Equal(t, model.UserQuery{Type: model.MatchList, Pagination: model.Pagination{Limit: 5, Page: 3}}, req.query)

	req = &GetUsersRequest{ID: "12"}
	require.NoError(t, req.Validate())
	assert.Equal(t, model.MatchSingle, req.query.Type)
	assert.Equal(t, int64(12), req.query.ID)
}

func TestPatchUserRequest_ResolveID(t *testing.T) {
	cases := []struct {
		name   string
		req    PatchUserRequest
		wantID int64
		code   string
	}{
		{name: "path", req: PatchUserRequest{PathID: "4"}, wantID: 4},
		{name: "body", req: PatchUserRequest{ID: int64Ptr(9)}, wantID: 9},
		{name: "matching", req: PatchUserRequest{PathID: "4", ID: int64Ptr(4)}, wantID: 4},
		{name: "mismatch", req: PatchUserRequest{PathID: "4", ID: int64Ptr(5)}, code: errs.CodeInvalidIdentifier},
		{name: "missing", req: PatchUserRequest{}, code: errs.CodeInvalidIdentifier},
		{name: "bad path", req: PatchUserRequest{PathID: "x"}, code: errs.CodeInvalidIdentifier},
		{name: "negative body", req: PatchUserRequest{ID: int64Ptr(-1)}, code: errs.CodeInvalidIdentifier},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := tc.req.resolveID()
			if tc.code == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, id)
				return
			}

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tc.code, httpErr.Code)
		})
	}
}

func TestCreateUserRequest_Validate(t *testing.T) {
	valid := CreateUserRequest{FirstName: "John", LastName: "Doe", Email: "john@doe.com", Password: "Password123#"}
	assert.NoError(t, valid.Validate())

	short := valid
	short.Password = "Pa1#"
	assert.Error(t, short.Validate())

	shortSurname := valid
	shortSurname.LastName = "Li"
	assert.NoError(t, shortSurname.Validate())

	noSurname := valid
	noSurname.LastName = ""
	assert.Error(t, noSurname.Validate())
}
