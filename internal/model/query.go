package model

import (
	"strconv"

	"github.com/deppfellow/go-blog/internal/errs"
)

// MatchType classifies a users GET request.
type MatchType string

const (
	MatchSingle MatchType = "single"
	MatchList   MatchType = "list"
)

// UserQuery is the parsed form of GET /users and GET /users/:id.
//
// Exactly one of the two shapes applies: Type == MatchSingle carries ID,
// Type == MatchList carries Pagination.
type UserQuery struct {
	Type       MatchType
	ID         int64
	Pagination Pagination
}

// ParseUserQuery classifies a users GET request from its raw path and query values.
//
// An empty id means the collection was requested. Empty limit/page fall back to
// DefaultLimit/DefaultPage. Malformed values are rejected rather than defaulted:
// limit and page must be positive integers (limit at most MaxLimit) and id must
// be a positive integer.
func ParseUserQuery(id, limit, page string) (UserQuery, error) {
	pagination := DefaultPagination()

	var err error
	if pagination.Limit, err = parsePositive("limit", limit, DefaultLimit, MaxLimit); err != nil {
		return UserQuery{}, err
	}
	if pagination.Page, err = parsePositive("page", page, DefaultPage, 0); err != nil {
		return UserQuery{}, err
	}

	if id == "" {
		return UserQuery{Type: MatchList, Pagination: pagination}, nil
	}

	userID, err := ParseUserID(id)
	if err != nil {
		return UserQuery{}, err
	}

	return UserQuery{Type: MatchSingle, ID: userID}, nil
}

// ParseUserID parses a path or body identifier into a positive user id.
func ParseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, errs.NewInvalidIdentifierError(raw)
	}
	return id, nil
}

// parsePositive parses a query value; max <= 0 means unbounded.
func parsePositive(name, raw string, fallback, max int) (int, error) {
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewInvalidQueryParameterError(name, raw, "must be an integer")
	}
	if value < 1 {
		return 0, errs.NewInvalidQueryParameterError(name, raw, "must be a positive integer")
	}
	if max > 0 && value > max {
		return 0, errs.NewInvalidQueryParameterError(name, raw, "must not exceed "+strconv.Itoa(max))
	}

	return value, nil
}
