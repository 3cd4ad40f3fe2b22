package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-blog/internal/errs"
)

func errCode(t *testing.T, err error) string {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	return httpErr.Code
}

func TestParseUserQuery_Defaults(t *testing.T) {
	q, err := ParseUserQuery("", "", "")
	require.NoError(t, err)

	assert.Equal(t, MatchList, q.Type)
	assert.Equal(t, Pagination{Limit: 10, Page: 1}, q.Pagination)
}

func TestParseUserQuery_List(t *testing.T) {
	cases := []struct {
		limit, page string
		want        Pagination
	}{
		{"5", "2", Pagination{Limit: 5, Page: 2}},
		{"100", "1", Pagination{Limit: 100, Page: 1}},
		{"", "7", Pagination{Limit: 10, Page: 7}},
		{"3", "", Pagination{Limit: 3, Page: 1}},
	}

	for _, tc := range cases {
		q, err := ParseUserQuery("", tc.limit, tc.page)
		require.NoError(t, err, "limit=%q page=%q", tc.limit, tc.page)
		assert.Equal(t, MatchList, q.Type)
		assert.Equal(t, tc.want, q.Pagination)
	}
}

func TestParseUserQuery_Single(t *testing.T) {
	q, err := ParseUserQuery("42", "", "")
	require.NoError(t, err)

	assert.Equal(t, MatchSingle, q.Type)
	assert.Equal(t, int64(42), q.ID)
}

func TestParseUserQuery_InvalidIdentifier(t *testing.T) {
	for _, id := range []string{"abc", "0", "-3", "1.5", "12abc"} {
		_, err := ParseUserQuery(id, "", "")
		require.Error(t, err, id)
		assert.Equal(t, errs.CodeInvalidIdentifier, errCode(t, err), id)
	}
}

func TestParseUserQuery_InvalidQueryParameter(t *testing.T) {
	cases := []struct{ limit, page string }{
		{"ten", ""},
		{"", "first"},
		{"0", ""},
		{"", "-1"},
		{"101", ""},
	}

	for _, tc := range cases {
		_, err := ParseUserQuery("", tc.limit, tc.page)
		require.Error(t, err, "limit=%q page=%q", tc.limit, tc.page)
		assert.Equal(t, errs.CodeInvalidQueryParameter, errCode(t, err))
	}
}

func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Limit: 10, Page: 1}.Offset())
	assert.Equal(t, 20, Pagination{Limit: 10, Page: 3}.Offset())
}
