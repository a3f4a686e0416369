// Package domain provides the advisor → account → holding models decoded from the API.
//
// Values are immutable once decoded. Accounts, holdings and custodians carry a locally
// generated ID used only for UI identity: it is never read from or written to the wire.
package domain

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aristath/compound/internal/utils"
)

// Collection aliases mirror the three list endpoints.
type (
	Advisors = []Advisor
	Accounts = []Account
	Holdings = []Holding
)

var validate = validator.New()

// Advisor is a financial advisor with the custodians they work through
type Advisor struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	TotalAssets decimal.Decimal `json:"total_assets"`
	Custodians  []Custodian     `json:"custodians"`
}

// Custodian is an institution holding assets on an advisor's behalf
type Custodian struct {
	ID    uuid.UUID `json:"-"`
	RepID string    `json:"rep_id"`
	Name  string    `json:"name"`
}

// Account is a client account managed by an advisor
type Account struct {
	ID            uuid.UUID       `json:"-"`
	Name          string          `json:"name"`
	Number        string          `json:"number"`
	RepID         string          `json:"rep_id"`
	HoldingsCount int             `json:"holdings_count"` // Server summary; not checked against fetched holdings
	Custodian     string          `json:"custodian"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// Holding is a position in a single instrument within an account
type Holding struct {
	ID        uuid.UUID       `json:"-"`
	Ticker    string          `json:"ticker"`
	Units     int             `json:"units"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Name      string          `json:"name"`
}

// Wire shapes use pointers so that a missing or null key is distinguishable
// from a zero value; every key is required.

type advisorWire struct {
	ID          *string          `json:"id" validate:"required"`
	Name        *string          `json:"name" validate:"required"`
	TotalAssets *decimal.Decimal `json:"total_assets" validate:"required"`
	Custodians  *[]Custodian     `json:"custodians" validate:"required"`
}

type custodianWire struct {
	RepID *string `json:"rep_id" validate:"required"`
	Name  *string `json:"name" validate:"required"`
}

type accountWire struct {
	Name          *string          `json:"name" validate:"required"`
	Number        *string          `json:"number" validate:"required"`
	RepID         *string          `json:"rep_id" validate:"required"`
	HoldingsCount *int             `json:"holdings_count" validate:"required"`
	Custodian     *string          `json:"custodian" validate:"required"`
	TotalValue    *decimal.Decimal `json:"total_value" validate:"required"`
}

type holdingWire struct {
	Ticker    *string          `json:"ticker" validate:"required"`
	Units     *int             `json:"units" validate:"required"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"required"`
	Name      *string          `json:"name" validate:"required"`
}

// MissingFieldError reports a required wire key that was absent or null
type MissingFieldError struct {
	Type  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Type, e.Field)
}

func decodeWire(typeName string, data []byte, wire any) error {
	if err := json.Unmarshal(data, wire); err != nil {
		return fmt.Errorf("%s: %w", typeName, err)
	}
	if err := validate.Struct(wire); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return &MissingFieldError{Type: typeName, Field: utils.SnakeCase(verrs[0].StructField())}
		}
		return fmt.Errorf("%s: %w", typeName, err)
	}
	return nil
}

// UnmarshalJSON decodes an advisor, rejecting payloads with missing keys
func (a *Advisor) UnmarshalJSON(data []byte) error {
	var w advisorWire
	if err := decodeWire("advisor", data, &w); err != nil {
		return err
	}
	*a = Advisor{
		ID:          *w.ID,
		Name:        *w.Name,
		TotalAssets: *w.TotalAssets,
		Custodians:  *w.Custodians,
	}
	return nil
}

// UnmarshalJSON decodes a custodian and assigns it a local ID
func (c *Custodian) UnmarshalJSON(data []byte) error {
	var w custodianWire
	if err := decodeWire("custodian", data, &w); err != nil {
		return err
	}
	*c = Custodian{
		ID:    uuid.New(),
		RepID: *w.RepID,
		Name:  *w.Name,
	}
	return nil
}

// UnmarshalJSON decodes an account and assigns it a local ID
func (a *Account) UnmarshalJSON(data []byte) error {
	var w accountWire
	if err := decodeWire("account", data, &w); err != nil {
		return err
	}
	*a = Account{
		ID:            uuid.New(),
		Name:          *w.Name,
		Number:        *w.Number,
		RepID:         *w.RepID,
		HoldingsCount: *w.HoldingsCount,
		Custodian:     *w.Custodian,
		TotalValue:    *w.TotalValue,
	}
	return nil
}

// UnmarshalJSON decodes a holding and assigns it a local ID
func (h *Holding) UnmarshalJSON(data []byte) error {
	var w holdingWire
	if err := decodeWire("holding", data, &w); err != nil {
		return err
	}
	*h = Holding{
		ID:        uuid.New(),
		Ticker:    *w.Ticker,
		Units:     *w.Units,
		UnitPrice: *w.UnitPrice,
		Name:      *w.Name,
	}
	return nil
}

// FirstName returns the advisor's first name, used for screen titles
func (a Advisor) FirstName() string {
	return utils.FirstWord(a.Name)
}

// CustodianNames returns custodian names in fetch order
func (a Advisor) CustodianNames() []string {
	names := make([]string, len(a.Custodians))
	for i, c := range a.Custodians {
		names[i] = c.Name
	}
	return names
}

// MarketValue is units × unit price
func (h Holding) MarketValue() decimal.Decimal {
	return h.UnitPrice.Mul(decimal.NewFromInt(int64(h.Units)))
}

// Equal compares advisors by value; custodian local IDs are ignored
func (a Advisor) Equal(o Advisor) bool {
	if a.ID != o.ID || a.Name != o.Name || !a.TotalAssets.Equal(o.TotalAssets) {
		return false
	}
	if len(a.Custodians) != len(o.Custodians) {
		return false
	}
	for i := range a.Custodians {
		if !a.Custodians[i].Equal(o.Custodians[i]) {
			return false
		}
	}
	return true
}

// Equal compares custodians ignoring the local ID
func (c Custodian) Equal(o Custodian) bool {
	return c.RepID == o.RepID && c.Name == o.Name
}

// Equal compares accounts ignoring the local ID
func (a Account) Equal(o Account) bool {
	return a.Name == o.Name &&
		a.Number == o.Number &&
		a.RepID == o.RepID &&
		a.HoldingsCount == o.HoldingsCount &&
		a.Custodian == o.Custodian &&
		a.TotalValue.Equal(o.TotalValue)
}

// Equal compares holdings ignoring the local ID
func (h Holding) Equal(o Holding) bool {
	return h.Ticker == o.Ticker &&
		h.Units == o.Units &&
		h.UnitPrice.Equal(o.UnitPrice) &&
		h.Name == o.Name
}

// EqualSlices reports whether two collections are element-wise Equal
func EqualSlices[T interface{ Equal(T) bool }](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
