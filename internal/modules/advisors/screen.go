// Package advisors provides the screen listing one advisor's accounts.
package advisors

import (
	"context"
	"slices"

	"github.com/aristath/compound/internal/domain"
	"github.com/aristath/compound/internal/loadstate"
)

// AccountFetcher retrieves the accounts of an advisor
type AccountFetcher interface {
	FetchAccounts(ctx context.Context, advisorID string) ([]domain.Account, error)
}

// Screen shows the accounts of the selected advisor in fetch order
type Screen struct {
	*loadstate.Loader[domain.Account]

	advisor domain.Advisor
}

// NewScreen creates the screen for advisor. The advisor is copied.
func NewScreen(advisor domain.Advisor, repo AccountFetcher) *Screen {
	advisor.Custodians = slices.Clone(advisor.Custodians)

	return &Screen{
		Loader: loadstate.New[domain.Account](func(ctx context.Context) ([]domain.Account, error) {
			return repo.FetchAccounts(ctx, advisor.ID)
		}),
		advisor: advisor,
	}
}

// Advisor returns a copy of the advisor this screen was opened for
func (s *Screen) Advisor() domain.Advisor {
	a := s.advisor
	a.Custodians = slices.Clone(a.Custodians)
	return a
}
