package ports

import (
	"context"

	"github.com/websap/websap-api/internal/core/domain"
)

// MenuFetchResult is the envelope returned by tiered menu reads.
type MenuFetchResult struct {
	Success bool
	Data    []domain.MenuItem
	Source  domain.Source
	Message string
}

// UserFetchResult is the envelope returned by tiered user reads.
type UserFetchResult struct {
	Success bool
	Data    []domain.User
	Source  domain.Source
	Message string
}

// RoleFetchResult is the envelope returned by tiered role reads.
type RoleFetchResult struct {
	Success bool
	Data    []domain.Role
	Source  domain.Source
	Message string
}

// FetchService returns the best-available records for each entity
// type, trying the authoritative store, then the local cache, then the
// static fallback dataset, strictly in that order. Results are always
// stamped with the tier that produced them. Fetch never returns an
// error: every failure is downgraded to the next tier.
type FetchService interface {
	MenuItems(ctx context.Context, filter MenuFilter) MenuFetchResult
	Users(ctx context.Context, filter UserFilter) UserFetchResult
	Roles(ctx context.Context) RoleFetchResult
}
