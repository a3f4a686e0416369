package domain

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/compound/internal/utils"
)

const advisorsJSON = `[
  {
    "id": "a1",
    "name": "Bob Lee",
    "total_assets": 500000,
    "custodians": [
      {"rep_id": "r-100", "name": "Schwab"},
      {"rep_id": "r-200", "name": "Fidelity"}
    ]
  },
  {
    "id": "a2",
    "name": "Ann Moss",
    "total_assets": "1250000.50",
    "custodians": []
  }
]`

func TestAdvisor_Decode(t *testing.T) {
	var advisors Advisors
	require.NoError(t, json.Unmarshal([]byte(advisorsJSON), &advisors))
	require.Len(t, advisors, 2)

	bob := advisors[0]
	assert.Equal(t, "a1", bob.ID)
	assert.Equal(t, "Bob Lee", bob.Name)
	assert.True(t, bob.TotalAssets.Equal(decimal.NewFromInt(500000)))
	require.Len(t, bob.Custodians, 2)
	assert.Equal(t, "r-100", bob.Custodians[0].RepID)
	assert.Equal(t, "Schwab", bob.Custodians[0].Name)
	assert.NotEqual(t, uuid.Nil, bob.Custodians[0].ID)
	assert.NotEqual(t, bob.Custodians[0].ID, bob.Custodians[1].ID)

	ann := advisors[1]
	assert.True(t, ann.TotalAssets.Equal(decimal.RequireFromString("1250000.50")))
	assert.NotNil(t, ann.Custodians)
	assert.Empty(t, ann.Custodians)
}

func TestAccount_DecodeAssignsLocalID(t *testing.T) {
	body := `[{"name":"Joint Brokerage","number":"ACC-1","rep_id":"r-100","holdings_count":3,"custodian":"Schwab","total_value":125000.75,"id":"ignored"}]`

	var accounts Accounts
	require.NoError(t, json.Unmarshal([]byte(body), &accounts))
	require.Len(t, accounts, 1)

	acc := accounts[0]
	assert.NotEqual(t, uuid.Nil, acc.ID)
	assert.Equal(t, "Joint Brokerage", acc.Name)
	assert.Equal(t, "ACC-1", acc.Number)
	assert.Equal(t, "r-100", acc.RepID)
	assert.Equal(t, 3, acc.HoldingsCount)
	assert.Equal(t, "Schwab", acc.Custodian)
	assert.True(t, acc.TotalValue.Equal(decimal.RequireFromString("125000.75")))
}

func TestHolding_Decode(t *testing.T) {
	body := `[{"ticker":"AAPL","units":10,"unit_price":189.5,"name":"Apple Inc."}]`

	var holdings Holdings
	require.NoError(t, json.Unmarshal([]byte(body), &holdings))
	require.Len(t, holdings, 1)

	h := holdings[0]
	assert.NotEqual(t, uuid.Nil, h.ID)
	assert.Equal(t, "AAPL", h.Ticker)
	assert.Equal(t, 10, h.Units)
	assert.True(t, h.UnitPrice.Equal(decimal.RequireFromString("189.5")))
	assert.True(t, h.MarketValue().Equal(decimal.NewFromInt(1895)))
}

func TestDecode_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		target any
		field  string
	}{
		{
			name:   "advisor without total assets",
			body:   `[{"id":"a1","name":"Bob Lee","custodians":[]}]`,
			target: &Advisors{},
			field:  "total_assets",
		},
		{
			name:   "advisor with null custodians",
			body:   `[{"id":"a1","name":"Bob Lee","total_assets":1,"custodians":null}]`,
			target: &Advisors{},
			field:  "custodians",
		},
		{
			name:   "custodian without rep id",
			body:   `[{"id":"a1","name":"Bob Lee","total_assets":1,"custodians":[{"name":"Schwab"}]}]`,
			target: &Advisors{},
			field:  "rep_id",
		},
		{
			name:   "account without holdings count",
			body:   `[{"name":"A","number":"1","rep_id":"r","custodian":"c","total_value":1}]`,
			target: &Accounts{},
			field:  "holdings_count",
		},
		{
			name:   "holding without ticker",
			body:   `[{"units":1,"unit_price":1,"name":"n"}]`,
			target: &Holdings{},
			field:  "ticker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.body), tt.target)
			require.Error(t, err)

			var missing *MissingFieldError
			require.True(t, errors.As(err, &missing), "expected MissingFieldError, got %v", err)
			assert.Equal(t, tt.field, missing.Field)
		})
	}
}

func TestDecode_ZeroValuesArePresent(t *testing.T) {
	body := `[{"name":"","number":"","rep_id":"","holdings_count":0,"custodian":"","total_value":0}]`

	var accounts Accounts
	require.NoError(t, json.Unmarshal([]byte(body), &accounts))
	require.Len(t, accounts, 1)
	assert.Equal(t, 0, accounts[0].HoldingsCount)
}

func TestDecode_WrongTypes(t *testing.T) {
	var holdings Holdings
	assert.Error(t, json.Unmarshal([]byte(`[{"ticker":"AAPL","units":1.5,"unit_price":1,"name":"n"}]`), &holdings))

	var advisors Advisors
	assert.Error(t, json.Unmarshal([]byte(`{"id":"a1"}`), &advisors))
}

func TestRoundTrip(t *testing.T) {
	advisors := Advisors{
		{
			ID:          "a1",
			Name:        "Bob Lee",
			TotalAssets: decimal.NewFromInt(500000),
			Custodians:  []Custodian{{ID: uuid.New(), RepID: "r-1", Name: "Schwab"}},
		},
		{ID: "a2", Name: "Ann Moss", TotalAssets: decimal.RequireFromString("12.34"), Custodians: []Custodian{}},
	}
	accounts := Accounts{
		{ID: uuid.New(), Name: "IRA", Number: "ACC-9", RepID: "r-1", HoldingsCount: 2, Custodian: "Schwab", TotalValue: decimal.RequireFromString("9876.5")},
	}
	holdings := Holdings{
		{ID: uuid.New(), Ticker: "VTI", Units: 7, UnitPrice: decimal.RequireFromString("245.10"), Name: "Vanguard Total Stock Market"},
	}

	t.Run("advisors", func(t *testing.T) {
		data, err := json.Marshal(advisors)
		require.NoError(t, err)
		var decoded Advisors
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, EqualSlices(advisors, decoded))
	})

	t.Run("accounts", func(t *testing.T) {
		data, err := json.Marshal(accounts)
		require.NoError(t, err)
		assert.NotContains(t, string(data), accounts[0].ID.String())
		var decoded Accounts
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, EqualSlices(accounts, decoded))
	})

	t.Run("holdings", func(t *testing.T) {
		data, err := json.Marshal(holdings)
		require.NoError(t, err)
		var decoded Holdings
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, EqualSlices(holdings, decoded))
	})
}

// Every wire key must be the snake_case form of its Go field name.
func TestWireKeysFollowSnakeCaseConvention(t *testing.T) {
	for _, v := range []any{
		Advisor{}, Custodian{}, Account{}, Holding{},
		advisorWire{}, custodianWire{}, accountWire{}, holdingWire{},
	} {
		typ := reflect.TypeOf(v)
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			tag := strings.Split(field.Tag.Get("json"), ",")[0]
			if tag == "-" {
				continue
			}
			assert.Equal(t, utils.SnakeCase(field.Name), tag, "%s.%s", typ.Name(), field.Name)
		}
	}
}

func TestAdvisorHelpers(t *testing.T) {
	a := Advisor{
		Name:       "Bob Lee",
		Custodians: []Custodian{{Name: "Schwab"}, {Name: "Fidelity"}},
	}

	assert.Equal(t, "Bob", a.FirstName())
	assert.Equal(t, []string{"Schwab", "Fidelity"}, a.CustodianNames())
	assert.Empty(t, Advisor{}.CustodianNames())
}

func TestEqual(t *testing.T) {
	base := Holding{ID: uuid.New(), Ticker: "AAPL", Units: 1, UnitPrice: decimal.RequireFromString("1.50"), Name: "Apple"}
	same := base
	same.ID = uuid.New()
	same.UnitPrice = decimal.RequireFromString("1.5")

	assert.True(t, base.Equal(same))

	other := base
	other.Units = 2
	assert.False(t, base.Equal(other))

	assert.False(t, EqualSlices([]Holding{base}, []Holding{}))
	assert.True(t, EqualSlices([]Holding{}, []Holding{}))
}
