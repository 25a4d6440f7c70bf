package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/zorepad/influencer-hub/backend/internal/models"
	"github.com/zorepad/influencer-hub/backend/internal/repositories"
)

// SavedInfluencerHandler handles saved-list HTTP requests
type SavedInfluencerHandler struct {
	savedRepository      repositories.SavedInfluencerRepository
	influencerRepository repositories.InfluencerRepository
}

// NewSavedInfluencerHandler creates a new SavedInfluencerHandler
func NewSavedInfluencerHandler(savedRepo repositories.SavedInfluencerRepository, influencerRepo repositories.InfluencerRepository) *SavedInfluencerHandler {
	return &SavedInfluencerHandler{
		savedRepository:      savedRepo,
		influencerRepository: influencerRepo,
	}
}

// RegisterSavedInfluencerRoutes registers saved-list routes
func (h *SavedInfluencerHandler) RegisterSavedInfluencerRoutes(g *echo.Group) {
	g.GET("/saved", h.GetSavedInfluencers)
	g.POST("/influencers/:id/save", h.SaveInfluencer)
	g.GET("/influencers/:id/saved", h.CheckIfSaved)
	g.DELETE("/saved/:id", h.RemoveSavedInfluencer)
}

// SavedInfluencerEntry embeds the influencer's public catalog fields
type SavedInfluencerEntry struct {
	models.SavedInfluencer
	Influencer models.InfluencerCompact `json:"influencer"`
}

// GetSavedInfluencers lists the current user's saved influencers with
// their catalog details embedded
func (h *SavedInfluencerHandler) GetSavedInfluencers(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	saved, err := h.savedRepository.GetByUser(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load saved influencers")
	}

	entries := make([]SavedInfluencerEntry, len(saved))
	influencerCache := make(map[string]models.InfluencerCompact)
	for i, s := range saved {
		entries[i] = SavedInfluencerEntry{SavedInfluencer: s}
		if compact, ok := influencerCache[s.InfluencerID]; ok {
			entries[i].Influencer = compact
			continue
		}
		influencer, err := h.influencerRepository.GetByID(c.Request().Context(), s.InfluencerID)
		if err == nil {
			compact := influencer.ToCompact()
			influencerCache[s.InfluencerID] = compact
			entries[i].Influencer = compact
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"saved_influencers": entries, "count": len(entries)},
	})
}

// SaveInfluencer bookmarks a catalog entry. Saving an already-saved
// influencer is not an error: the handler reports "already saved" and
// leaves the single existing association untouched.
func (h *SavedInfluencerHandler) SaveInfluencer(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	influencerID := c.Param("id")

	// Verify the influencer exists in the catalog
	if _, err := h.influencerRepository.GetByID(c.Request().Context(), influencerID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Influencer not found")
	}

	isSaved, err := h.savedRepository.IsSaved(currentUserID, influencerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if isSaved {
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "This influencer is already in your saved list",
			"data":    echo.Map{"saved": true},
		})
	}

	saved := &models.SavedInfluencer{
		UserID:       currentUserID,
		InfluencerID: influencerID,
	}

	if err := h.savedRepository.Save(saved); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save influencer")
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"saved": true}})
}

// CheckIfSaved reports whether the current user has saved an influencer
func (h *SavedInfluencerHandler) CheckIfSaved(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	isSaved, err := h.savedRepository.IsSaved(currentUserID, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"saved": isSaved}})
}

// RemoveSavedInfluencer deletes one saved entry by its association id,
// scoped to the current user
func (h *SavedInfluencerHandler) RemoveSavedInfluencer(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	savedID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid saved influencer ID")
	}

	if err := h.savedRepository.Remove(currentUserID, uint(savedID)); err != nil {
		if err.Error() == "saved influencer not found" {
			return echo.NewHTTPError(http.StatusNotFound, "Saved influencer not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to remove influencer")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"saved": false}})
}
