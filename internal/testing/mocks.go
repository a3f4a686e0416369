package testing

import (
	"context"
	"slices"
	"sync"

	"github.com/aristath/compound/internal/domain"
	"github.com/aristath/compound/internal/feedback"
)

// MockRepository is a mock implementation of the advisor, account and
// holding fetchers for testing. It records the IDs it was asked for.
type MockRepository struct {
	mu sync.RWMutex

	advisors []domain.Advisor
	accounts []domain.Account
	holdings []domain.Holding

	advisorsErr error
	accountsErr error
	holdingsErr error

	advisorIDs []string
	accountIDs []string
}

// NewMockRepository creates a mock repository returning the default fixtures
func NewMockRepository() *MockRepository {
	return &MockRepository{
		advisors: NewAdvisorFixtures(),
		accounts: NewAccountFixtures(),
		holdings: NewHoldingFixtures(),
	}
}

// SetAdvisors sets the advisors to return
func (m *MockRepository) SetAdvisors(advisors []domain.Advisor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advisors = advisors
}

// SetAccounts sets the accounts to return
func (m *MockRepository) SetAccounts(accounts []domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = accounts
}

// SetHoldings sets the holdings to return
func (m *MockRepository) SetHoldings(holdings []domain.Holding) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holdings = holdings
}

// SetAdvisorsError sets the error FetchAdvisors returns; nil clears it
func (m *MockRepository) SetAdvisorsError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advisorsErr = err
}

// SetAccountsError sets the error FetchAccounts returns; nil clears it
func (m *MockRepository) SetAccountsError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accountsErr = err
}

// SetHoldingsError sets the error FetchHoldings returns; nil clears it
func (m *MockRepository) SetHoldingsError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holdingsErr = err
}

// FetchAdvisors returns the configured advisors
func (m *MockRepository) FetchAdvisors(ctx context.Context) ([]domain.Advisor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.advisorsErr != nil {
		return nil, m.advisorsErr
	}
	return slices.Clone(m.advisors), nil
}

// FetchAccounts returns the configured accounts
func (m *MockRepository) FetchAccounts(ctx context.Context, advisorID string) ([]domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advisorIDs = append(m.advisorIDs, advisorID)
	if m.accountsErr != nil {
		return nil, m.accountsErr
	}
	return slices.Clone(m.accounts), nil
}

// FetchHoldings returns the configured holdings
func (m *MockRepository) FetchHoldings(ctx context.Context, accountID string) ([]domain.Holding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accountIDs = append(m.accountIDs, accountID)
	if m.holdingsErr != nil {
		return nil, m.holdingsErr
	}
	return slices.Clone(m.holdings), nil
}

// AdvisorIDs returns the advisor IDs FetchAccounts was called with
func (m *MockRepository) AdvisorIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.advisorIDs)
}

// AccountIDs returns the account IDs FetchHoldings was called with
func (m *MockRepository) AccountIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.accountIDs)
}

// MockFeedback records every feedback cue
type MockFeedback struct {
	mu        sync.Mutex
	prepared  []feedback.Kind
	generated []feedback.Kind
}

// Prepare records a prepared cue
func (m *MockFeedback) Prepare(kind feedback.Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prepared = append(m.prepared, kind)
}

// Generate records a generated cue
func (m *MockFeedback) Generate(kind feedback.Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generated = append(m.generated, kind)
}

// Prepared returns the prepared cues in order
func (m *MockFeedback) Prepared() []feedback.Kind {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.prepared)
}

// Generated returns the generated cues in order
func (m *MockFeedback) Generated() []feedback.Kind {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.generated)
}
