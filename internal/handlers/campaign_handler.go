package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/zorepad/influencer-hub/backend/internal/models"
	"github.com/zorepad/influencer-hub/backend/internal/repositories"
	"gorm.io/gorm"
)

// CampaignHandler handles campaign HTTP requests
type CampaignHandler struct {
	campaignRepository repositories.CampaignRepository
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignRepo repositories.CampaignRepository) *CampaignHandler {
	return &CampaignHandler{campaignRepository: campaignRepo}
}

// RegisterCampaignRoutes registers campaign routes
func (h *CampaignHandler) RegisterCampaignRoutes(g *echo.Group) {
	g.POST("/campaigns", h.CreateCampaign)
	g.GET("/campaigns", h.GetCampaigns)
	g.GET("/campaigns/:id", h.GetCampaign)
	g.PUT("/campaigns/:id", h.UpdateCampaign)
	g.DELETE("/campaigns/:id", h.DeleteCampaign)
}

// CreateCampaign creates a campaign owned by the current user
func (h *CampaignHandler) CreateCampaign(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	campaign := &models.Campaign{
		UserID:      currentUserID,
		Name:        req.Name,
		Country:     req.Country,
		Niche:       req.Niche,
		Platforms:   req.Platforms,
		PostTypes:   req.PostTypes,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		BudgetRange: req.BudgetRange,
		AgeRange:    req.AgeRange,
		Gender:      req.Gender,
		StopWords:   req.StopWords,
		Brief:       req.Brief,
	}

	if err := h.campaignRepository.Create(campaign); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create campaign")
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": campaign})
}

// GetCampaigns lists the current user's campaigns
func (h *CampaignHandler) GetCampaigns(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	campaigns, err := h.campaignRepository.GetByUser(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load campaigns")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"campaigns": campaigns, "count": len(campaigns)},
	})
}

// GetCampaign returns one campaign, owner only
func (h *CampaignHandler) GetCampaign(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	campaignID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid campaign ID")
	}

	campaign, err := h.campaignRepository.GetByID(uint(campaignID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Campaign not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if campaign.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You do not own this campaign")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": campaign})
}

// UpdateCampaign updates a campaign's fields, owner only
func (h *CampaignHandler) UpdateCampaign(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	campaignID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid campaign ID")
	}

	var req models.UpdateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	campaign, err := h.campaignRepository.GetByID(uint(campaignID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Campaign not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if campaign.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You do not own this campaign")
	}

	if req.Name != "" {
		campaign.Name = req.Name
	}
	if req.Country != "" {
		campaign.Country = req.Country
	}
	if req.Niche != "" {
		campaign.Niche = req.Niche
	}
	if req.Platforms != nil {
		campaign.Platforms = req.Platforms
	}
	if req.PostTypes != nil {
		campaign.PostTypes = req.PostTypes
	}
	if req.StartDate != "" {
		campaign.StartDate = req.StartDate
	}
	if req.EndDate != "" {
		campaign.EndDate = req.EndDate
	}
	if req.BudgetRange != "" {
		campaign.BudgetRange = req.BudgetRange
	}
	if req.AgeRange != "" {
		campaign.AgeRange = req.AgeRange
	}
	if req.Gender != "" {
		campaign.Gender = req.Gender
	}
	if req.StopWords != "" {
		campaign.StopWords = req.StopWords
	}
	if req.Brief != "" {
		campaign.Brief = req.Brief
	}

	if err := h.campaignRepository.Update(campaign); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update campaign")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": campaign})
}

// DeleteCampaign deletes a campaign, owner only
func (h *CampaignHandler) DeleteCampaign(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	campaignID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid campaign ID")
	}

	if err := h.campaignRepository.Delete(currentUserID, uint(campaignID)); err != nil {
		if err.Error() == "campaign not found" {
			return echo.NewHTTPError(http.StatusNotFound, "Campaign not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete campaign")
	}

	return c.NoContent(http.StatusNoContent)
}
