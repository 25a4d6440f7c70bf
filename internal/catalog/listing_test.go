package catalog

import (
	"testing"

	"github.com/zorepad/influencer-hub/backend/internal/models"
)

func testCandidates() []models.Influencer {
	return []models.Influencer{
		{ID: "inf-1", Name: "Emma Style", Username: "emmastyle", Platform: models.PlatformInstagram, Followers: 250_000, EngagementRate: 4.2, Niche: "Fashion", Country: "United States"},
		{ID: "inf-2", Name: "Dev Dan", Username: "devdan", Platform: models.PlatformYouTube, Followers: 1_200_000, EngagementRate: 2.1, Niche: "Tech", Country: "United Kingdom"},
		{ID: "inf-3", Name: "Clip Queen", Username: "clipqueen", Platform: models.PlatformTikTok, Followers: 5_000_000, EngagementRate: 8.7, Niche: "Lifestyle", Country: "Canada"},
		{ID: "inf-4", Name: "Fit Felix", Username: "fitfelix", Platform: models.PlatformTikTok, Followers: 900_000, EngagementRate: 6.3, Niche: "Fitness", Country: "Germany"},
	}
}

func TestDefaultListingMatchesEveryone(t *testing.T) {
	listing := NewListing(testCandidates())
	if got := listing.Count(); got != 4 {
		t.Fatalf("expected all 4 candidates with default criteria, got %d", got)
	}
}

func TestSearchTermMatchesNicheOnly(t *testing.T) {
	listing := NewListing(testCandidates())
	// "fashion" appears only in inf-1's niche, not in any name or username
	listing.SetSearchTerm("fashion")

	results := listing.Results()
	if len(results) != 1 {
		t.Fatalf("expected 1 match for term fashion, got %d", len(results))
	}
	if results[0].ID != "inf-1" {
		t.Fatalf("expected inf-1, got %s", results[0].ID)
	}
}

func TestSearchTermIsCaseInsensitive(t *testing.T) {
	listing := NewListing(testCandidates())
	listing.SetSearchTerm("FASHION")
	if got := listing.Count(); got != 1 {
		t.Fatalf("expected 1 match for uppercase term, got %d", got)
	}

	listing.SetSearchTerm("Tech")
	results := listing.Results()
	if len(results) != 1 || results[0].ID != "inf-2" {
		t.Fatalf("expected only inf-2 for term Tech, got %d results", len(results))
	}
}

func TestFollowerBoundsAreInclusive(t *testing.T) {
	listing := NewListing(testCandidates())

	// inf-4 sits exactly on both bounds of a zero-width range
	listing.SetFollowerRange(900_000, 900_000)
	results := listing.Results()
	if len(results) != 1 || results[0].ID != "inf-4" {
		t.Fatalf("expected inf-4 inside zero-width range, got %d results", len(results))
	}

	// one unit outside either bound excludes it
	listing.SetFollowerRange(900_001, 1_000_000)
	if got := listing.Count(); got != 0 {
		t.Fatalf("expected no matches one unit above the follower count, got %d", got)
	}
	listing.SetFollowerRange(800_000, 899_999)
	if got := listing.Count(); got != 0 {
		t.Fatalf("expected no matches one unit below the follower count, got %d", got)
	}
}

func TestEngagementBoundsAreInclusive(t *testing.T) {
	listing := NewListing(testCandidates())
	listing.SetEngagementRange(8.7, 8.7)

	results := listing.Results()
	if len(results) != 1 || results[0].ID != "inf-3" {
		t.Fatalf("expected inf-3 inside zero-width engagement range, got %d results", len(results))
	}
}

func TestPlatformAndFollowerScenario(t *testing.T) {
	listing := NewListing(testCandidates())
	listing.SetSearchTerm("queen") // term must not widen the platform/range criteria
	listing.SetPlatform(models.PlatformTikTok)
	listing.SetFollowerRange(1_000_000, 10_000_000)

	results := listing.Results()
	if len(results) != 1 {
		t.Fatalf("expected 1 TikTok influencer in 1M-10M, got %d", len(results))
	}
	if results[0].ID != "inf-3" {
		t.Fatalf("expected inf-3, got %s", results[0].ID)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	listing := NewListing(testCandidates())
	listing.SetSearchTerm("queen")
	listing.SetPlatform(models.PlatformTwitter)
	listing.SetFollowerRange(1, 2)
	listing.SetEngagementRange(19, 19.5)
	listing.SetNiche("Gaming")
	listing.SetCountry("France")

	listing.Reset()

	want := models.DefaultFilters()
	if listing.Filters() != want {
		t.Fatalf("expected default filters after reset, got %+v", listing.Filters())
	}
	if got := listing.Count(); got != 4 {
		t.Fatalf("expected all candidates after reset, got %d", got)
	}
}

func TestCandidateOrderIsPreserved(t *testing.T) {
	listing := NewListing(testCandidates())
	listing.SetPlatform(models.PlatformTikTok)

	results := listing.Results()
	if len(results) != 2 || results[0].ID != "inf-3" || results[1].ID != "inf-4" {
		t.Fatalf("expected natural order inf-3, inf-4, got %+v", results)
	}
}
