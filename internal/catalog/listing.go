// Package catalog holds the in-memory browsing state for the influencer
// catalog: a search term plus structured filter criteria over an
// already-loaded candidate list. Filtering is synchronous and has no
// failure mode.
package catalog

import "github.com/zorepad/influencer-hub/backend/internal/models"

// Listing narrows a candidate list through the filter predicate. A fresh
// Listing starts with an empty search term and wide-open criteria; every
// setter takes effect on the next Results/Count call. Candidate order is
// preserved; there is no pagination.
type Listing struct {
	candidates []models.Influencer
	term       string
	filters    models.Filters
}

func NewListing(candidates []models.Influencer) *Listing {
	return &Listing{
		candidates: candidates,
		filters:    models.DefaultFilters(),
	}
}

func (l *Listing) SetSearchTerm(term string) {
	l.term = term
}

// SetFilters replaces the whole criteria struct.
func (l *Listing) SetFilters(f models.Filters) {
	l.filters = f
}

func (l *Listing) SetPlatform(platform string) {
	l.filters.Platform = platform
}

func (l *Listing) SetFollowerRange(min, max int64) {
	l.filters.MinFollowers = min
	l.filters.MaxFollowers = max
}

func (l *Listing) SetEngagementRange(min, max float64) {
	l.filters.MinEngagement = min
	l.filters.MaxEngagement = max
}

func (l *Listing) SetNiche(niche string) {
	l.filters.Niche = niche
}

func (l *Listing) SetCountry(country string) {
	l.filters.Country = country
}

// Reset restores the initial state: empty term, wide-open criteria.
func (l *Listing) Reset() {
	l.term = ""
	l.filters = models.DefaultFilters()
}

func (l *Listing) Filters() models.Filters {
	return l.filters
}

// Results re-evaluates the predicate over the candidate list.
func (l *Listing) Results() []models.Influencer {
	matched := make([]models.Influencer, 0, len(l.candidates))
	for i := range l.candidates {
		if l.filters.Matches(&l.candidates[i], l.term) {
			matched = append(matched, l.candidates[i])
		}
	}
	return matched
}

func (l *Listing) Count() int {
	return len(l.Results())
}
