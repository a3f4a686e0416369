// Package dashboard provides the advisor list screen and its sort policy.
package dashboard

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/aristath/compound/internal/domain"
	"github.com/aristath/compound/internal/loadstate"
)

// AdvisorFetcher retrieves the advisor list
type AdvisorFetcher interface {
	FetchAdvisors(ctx context.Context) ([]domain.Advisor, error)
}

// Screen holds the advisor list state. Every successful load is sorted by
// the active option before it is stored.
type Screen struct {
	*loadstate.Loader[domain.Advisor]

	mu         sync.Mutex
	sortOption SortOption
	log        zerolog.Logger
}

// NewScreen creates the dashboard screen sorted by name
func NewScreen(repo AdvisorFetcher, log zerolog.Logger) *Screen {
	s := &Screen{
		sortOption: SortByName,
		log:        log.With().Str("screen", "dashboard").Logger(),
	}
	s.Loader = loadstate.New[domain.Advisor](repo.FetchAdvisors, loadstate.WithTransform(func(advisors []domain.Advisor) []domain.Advisor {
		return SortAdvisors(advisors, s.SortOption())
	}))
	return s
}

// SortOption returns the active sort option
func (s *Screen) SortOption() SortOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortOption
}

// SetSortOption switches the ordering and re-sorts a loaded list.
// With no list loaded only the option changes.
func (s *Screen) SetSortOption(option SortOption) {
	s.mu.Lock()
	s.sortOption = option
	s.mu.Unlock()

	s.Apply(func(advisors []domain.Advisor) []domain.Advisor {
		return SortAdvisors(advisors, option)
	})

	s.log.Debug().Str("sort", option.String()).Msg("Sort option changed")
}
