package dashboard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aristath/compound/internal/domain"
)

// SortOption orders the advisor list
type SortOption int

const (
	SortByName SortOption = iota
	SortByTotalAssets
)

// SortOptions lists every option in menu order
func SortOptions() []SortOption {
	return []SortOption{SortByName, SortByTotalAssets}
}

// Label is the user-facing name of the option
func (o SortOption) Label() string {
	switch o {
	case SortByName:
		return "Name"
	case SortByTotalAssets:
		return "Total Assets"
	default:
		return fmt.Sprintf("SortOption(%d)", int(o))
	}
}

func (o SortOption) String() string {
	switch o {
	case SortByName:
		return "name"
	case SortByTotalAssets:
		return "total_assets"
	default:
		return fmt.Sprintf("sort_option(%d)", int(o))
	}
}

// Next cycles to the following option, wrapping around
func (o SortOption) Next() SortOption {
	options := SortOptions()
	i := slices.Index(options, o)
	return options[(i+1)%len(options)]
}

// ParseSortOption accepts an option's identifier or label, case-insensitively
func ParseSortOption(s string) (SortOption, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, opt := range SortOptions() {
		if normalized == opt.String() || normalized == strings.ToLower(opt.Label()) {
			return opt, nil
		}
	}
	switch normalized {
	case "total-assets", "assets":
		return SortByTotalAssets, nil
	}
	return SortByName, fmt.Errorf("unknown sort option %q", s)
}

// SortAdvisors returns a sorted copy of advisors. Names sort ascending,
// total assets descending; ties keep their input order.
func SortAdvisors(advisors []domain.Advisor, option SortOption) []domain.Advisor {
	sorted := slices.Clone(advisors)

	switch option {
	case SortByTotalAssets:
		slices.SortStableFunc(sorted, func(a, b domain.Advisor) int {
			return b.TotalAssets.Cmp(a.TotalAssets)
		})
	default:
		slices.SortStableFunc(sorted, func(a, b domain.Advisor) int {
			return strings.Compare(a.Name, b.Name)
		})
	}

	return sorted
}
