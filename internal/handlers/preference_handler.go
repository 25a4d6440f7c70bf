package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/zorepad/influencer-hub/backend/internal/models"
	"github.com/zorepad/influencer-hub/backend/internal/repositories"
)

// PreferenceHandler handles notification preference HTTP requests
type PreferenceHandler struct {
	preferenceRepository repositories.UserPreferenceRepository
}

// NewPreferenceHandler creates a new PreferenceHandler
func NewPreferenceHandler(prefRepo repositories.UserPreferenceRepository) *PreferenceHandler {
	return &PreferenceHandler{preferenceRepository: prefRepo}
}

// RegisterPreferenceRoutes registers preference routes
func (h *PreferenceHandler) RegisterPreferenceRoutes(g *echo.Group) {
	g.GET("/preferences", h.GetPreferences)
	g.PUT("/preferences", h.UpdatePreferences)
}

// GetPreferences returns the current user's preference row, creating it
// with defaults on first access
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	pref, err := h.preferenceRepository.GetOrCreate(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load preferences")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": pref})
}

// UpdatePreferences applies only the toggles present in the body; absent
// fields keep their stored value
func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pref, err := h.preferenceRepository.GetOrCreate(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load preferences")
	}

	if req.EmailNotifications != nil {
		pref.EmailNotifications = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		pref.PushNotifications = *req.PushNotifications
	}
	if req.MarketingEmails != nil {
		pref.MarketingEmails = *req.MarketingEmails
	}

	if err := h.preferenceRepository.Update(pref); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update preferences")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": pref})
}
