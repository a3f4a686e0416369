// Package repository provides the data access layer for the advisor browser.
// It maps each fetch operation onto one request descriptor sent through the
// network session, and decodes the reply into domain collections.
// The repository is stateless: no caching, no retries, no memory between calls.
package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aristath/compound/internal/domain"
	"github.com/aristath/compound/internal/network"
)

// Sender defines the interface for performing one API exchange.
// *network.Session satisfies it; tests substitute canned responses.
type Sender interface {
	Send(ctx context.Context, req network.Request) (*network.Response, error) // One attempt, no retry
}

// Repository fetches advisors, accounts and holdings from the API
type Repository struct {
	sender Sender         // Transport for every request
	log    zerolog.Logger // Structured logger
}

// New creates a new repository
func New(sender Sender, log zerolog.Logger) *Repository {
	return &Repository{
		sender: sender,
		log:    log.With().Str("repo", "advisors_api").Logger(),
	}
}

// FetchAdvisors retrieves every advisor.
//
// Returns:
//   - []domain.Advisor: advisors in server order
//   - error: a *network.Error describing the failure
func (r *Repository) FetchAdvisors(ctx context.Context) ([]domain.Advisor, error) {
	return fetch[[]domain.Advisor](ctx, r, network.GetAdvisors())
}

// FetchAccounts retrieves the accounts of one advisor.
//
// Parameters:
//   - advisorID: the advisor's wire ID
//
// Returns:
//   - []domain.Account: accounts in server order, each with a fresh local ID
//   - error: a *network.Error describing the failure
func (r *Repository) FetchAccounts(ctx context.Context, advisorID string) ([]domain.Account, error) {
	return fetch[[]domain.Account](ctx, r, network.GetAccounts(advisorID))
}

// FetchHoldings retrieves the holdings of one account.
//
// Parameters:
//   - accountID: the account's local ID in string form
//
// Returns:
//   - []domain.Holding: holdings in server order
//   - error: a *network.Error describing the failure
func (r *Repository) FetchHoldings(ctx context.Context, accountID string) ([]domain.Holding, error) {
	return fetch[[]domain.Holding](ctx, r, network.GetHoldings(accountID))
}

func fetch[T any](ctx context.Context, r *Repository, req network.Request) (T, error) {
	value, err := network.Decode[T](r.sender.Send(ctx, req))
	if err != nil {
		r.log.Warn().
			Err(err).
			Str("request", req.String()).
			Str("kind", network.KindOf(err).String()).
			Msg("Fetch failed")
		return value, err
	}

	return value, nil
}
