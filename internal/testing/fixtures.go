package testing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aristath/compound/internal/domain"
)

// NewAdvisorFixtures returns a set of test advisors, deliberately not in name order
func NewAdvisorFixtures() []domain.Advisor {
	return []domain.Advisor{
		{
			ID:          "2",
			Name:        "Maria Garcia",
			TotalAssets: decimal.RequireFromString("3250000.75"),
			Custodians: []domain.Custodian{
				{ID: uuid.New(), RepID: "PER-3001", Name: "Pershing"},
			},
		},
		{
			ID:          "1",
			Name:        "John Smith",
			TotalAssets: decimal.NewFromInt(1500000),
			Custodians: []domain.Custodian{
				{ID: uuid.New(), RepID: "SCH-1001", Name: "Schwab"},
				{ID: uuid.New(), RepID: "FID-2001", Name: "Fidelity"},
			},
		},
		{
			ID:          "3",
			Name:        "David Chen",
			TotalAssets: decimal.NewFromInt(875000),
			Custodians:  []domain.Custodian{},
		},
	}
}

// NewAccountFixtures returns a set of test accounts
func NewAccountFixtures() []domain.Account {
	return []domain.Account{
		{
			ID:            uuid.New(),
			Name:          "Smith Family Trust",
			Number:        "ACC-48213",
			RepID:         "SCH-1001",
			HoldingsCount: 2,
			Custodian:     "Schwab",
			TotalValue:    decimal.RequireFromString("742500.25"),
		},
		{
			ID:            uuid.New(),
			Name:          "Retirement IRA",
			Number:        "ACC-59124",
			RepID:         "FID-2001",
			HoldingsCount: 1,
			Custodian:     "Fidelity",
			TotalValue:    decimal.NewFromInt(315000),
		},
	}
}

// NewHoldingFixtures returns a set of test holdings
func NewHoldingFixtures() []domain.Holding {
	return []domain.Holding{
		{ID: uuid.New(), Ticker: "AAPL", Units: 10, UnitPrice: decimal.RequireFromString("189.5"), Name: "Apple Inc."},
		{ID: uuid.New(), Ticker: "VTI", Units: 1, UnitPrice: decimal.RequireFromString("245.10"), Name: "Vanguard Total Stock Market ETF"},
	}
}
