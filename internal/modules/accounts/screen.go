// Package accounts provides the screen listing one account's holdings.
package accounts

import (
	"context"

	"github.com/aristath/compound/internal/domain"
	"github.com/aristath/compound/internal/loadstate"
)

// HoldingFetcher retrieves the holdings of an account
type HoldingFetcher interface {
	FetchHoldings(ctx context.Context, accountID string) ([]domain.Holding, error)
}

// Screen shows the holdings of the selected account in fetch order
type Screen struct {
	*loadstate.Loader[domain.Holding]

	account domain.Account
}

// NewScreen creates the screen for account. Holdings are requested with the
// account's local ID.
func NewScreen(account domain.Account, repo HoldingFetcher) *Screen {
	return &Screen{
		Loader: loadstate.New[domain.Holding](func(ctx context.Context) ([]domain.Holding, error) {
			return repo.FetchHoldings(ctx, account.ID.String())
		}),
		account: account,
	}
}

// Account returns the account this screen was opened for
func (s *Screen) Account() domain.Account {
	return s.account
}
