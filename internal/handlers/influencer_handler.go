package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zorepad/influencer-hub/backend/internal/catalog"
	"github.com/zorepad/influencer-hub/backend/internal/models"
	"github.com/zorepad/influencer-hub/backend/internal/repositories"
)

// InfluencerHandler handles catalog browsing HTTP requests
type InfluencerHandler struct {
	influencerRepository repositories.InfluencerRepository
}

// NewInfluencerHandler creates a new InfluencerHandler
func NewInfluencerHandler(influencerRepo repositories.InfluencerRepository) *InfluencerHandler {
	return &InfluencerHandler{influencerRepository: influencerRepo}
}

// RegisterInfluencerRoutes registers catalog routes
func (h *InfluencerHandler) RegisterInfluencerRoutes(g *echo.Group) {
	g.GET("/influencers", h.ListInfluencers)
	g.GET("/influencers/:id", h.GetInfluencer)
}

// ListInfluencers returns catalog entries narrowed by the search term and
// filter criteria in the query string. Absent parameters keep their
// wide-open defaults.
func (h *InfluencerHandler) ListInfluencers(c echo.Context) error {
	candidates, err := h.influencerRepository.GetAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load influencers")
	}

	listing := catalog.NewListing(candidates)
	listing.SetSearchTerm(c.QueryParam("q"))
	listing.SetFilters(filtersFromQuery(c))

	results := listing.Results()
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"influencers": results,
			"count":       len(results),
		},
	})
}

// GetInfluencer returns a single catalog entry by id
func (h *InfluencerHandler) GetInfluencer(c echo.Context) error {
	influencer, err := h.influencerRepository.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Influencer not found")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": influencer})
}

// filtersFromQuery builds filter criteria from query parameters, falling
// back to defaults for anything absent or malformed.
func filtersFromQuery(c echo.Context) models.Filters {
	filters := models.DefaultFilters()

	if v := c.QueryParam("platform"); v != "" {
		filters.Platform = v
	}
	if v := c.QueryParam("niche"); v != "" {
		filters.Niche = v
	}
	if v := c.QueryParam("country"); v != "" {
		filters.Country = v
	}
	if v, err := strconv.ParseInt(c.QueryParam("min_followers"), 10, 64); err == nil {
		filters.MinFollowers = v
	}
	if v, err := strconv.ParseInt(c.QueryParam("max_followers"), 10, 64); err == nil {
		filters.MaxFollowers = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("min_engagement"), 64); err == nil {
		filters.MinEngagement = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("max_engagement"), 64); err == nil {
		filters.MaxEngagement = v
	}

	return filters
}
