package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/zorepad/influencer-hub/backend/internal/models"
	"github.com/zorepad/influencer-hub/backend/internal/repositories"
	"gorm.io/gorm"
)

// CampaignInviteHandler handles campaign invite HTTP requests
type CampaignInviteHandler struct {
	inviteRepository       repositories.CampaignInviteRepository
	campaignRepository     repositories.CampaignRepository
	influencerRepository   repositories.InfluencerRepository
	notificationRepository repositories.NotificationRepository
}

// NewCampaignInviteHandler creates a new CampaignInviteHandler
func NewCampaignInviteHandler(inviteRepo repositories.CampaignInviteRepository, campaignRepo repositories.CampaignRepository, influencerRepo repositories.InfluencerRepository, notifRepo repositories.NotificationRepository) *CampaignInviteHandler {
	return &CampaignInviteHandler{
		inviteRepository:       inviteRepo,
		campaignRepository:     campaignRepo,
		influencerRepository:   influencerRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterCampaignInviteRoutes registers invite routes
func (h *CampaignInviteHandler) RegisterCampaignInviteRoutes(g *echo.Group) {
	g.GET("/invites", h.GetInvites)
	g.POST("/invites", h.CreateInvite)
	g.POST("/invites/bulk", h.BulkInvite)
	g.PUT("/invites/:id/status", h.UpdateInviteStatus)
}

// InviteEntry embeds the invited influencer's public catalog fields
type InviteEntry struct {
	models.CampaignInvite
	Influencer models.InfluencerCompact `json:"influencer"`
}

// ownedCampaign loads a campaign and verifies the caller owns it
func (h *CampaignInviteHandler) ownedCampaign(campaignID, userID uint) (*models.Campaign, error) {
	campaign, err := h.campaignRepository.GetByID(campaignID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Campaign not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if campaign.UserID != userID {
		return nil, echo.NewHTTPError(http.StatusForbidden, "You do not own this campaign")
	}
	return campaign, nil
}

// GetInvites lists invites across the user's campaigns, optionally
// narrowed to one campaign via ?campaign_id=
func (h *CampaignInviteHandler) GetInvites(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var invites []models.CampaignInvite
	if raw := c.QueryParam("campaign_id"); raw != "" {
		campaignID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid campaign ID")
		}
		if _, err := h.ownedCampaign(uint(campaignID), currentUserID); err != nil {
			return err
		}
		invites, err = h.inviteRepository.GetByCampaign(uint(campaignID))
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load campaign invites")
		}
	} else {
		campaigns, err := h.campaignRepository.GetByUser(currentUserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load campaigns")
		}
		campaignIDs := make([]uint, len(campaigns))
		for i, campaign := range campaigns {
			campaignIDs[i] = campaign.ID
		}
		invites, err = h.inviteRepository.GetByCampaigns(campaignIDs)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load campaign invites")
		}
	}

	entries := make([]InviteEntry, len(invites))
	influencerCache := make(map[string]models.InfluencerCompact)
	for i, invite := range invites {
		entries[i] = InviteEntry{CampaignInvite: invite}
		if compact, ok := influencerCache[invite.InfluencerID]; ok {
			entries[i].Influencer = compact
			continue
		}
		influencer, err := h.influencerRepository.GetByID(c.Request().Context(), invite.InfluencerID)
		if err == nil {
			compact := influencer.ToCompact()
			influencerCache[invite.InfluencerID] = compact
			entries[i].Influencer = compact
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"invites": entries, "count": len(entries)},
	})
}

// CreateInvite invites one influencer to a campaign the caller owns
func (h *CampaignInviteHandler) CreateInvite(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateCampaignInviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.ownedCampaign(req.CampaignID, currentUserID); err != nil {
		return err
	}

	if _, err := h.influencerRepository.GetByID(c.Request().Context(), req.InfluencerID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Influencer not found")
	}

	invite := &models.CampaignInvite{
		CampaignID:   req.CampaignID,
		InfluencerID: req.InfluencerID,
		Status:       "pending",
		Notes:        req.Notes,
	}

	if err := h.inviteRepository.Create(invite); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to invite influencer")
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": invite})
}

// BulkInvite creates one invite per influencer id for a campaign the
// caller owns, then dispatches a summary notification to the owner.
func (h *CampaignInviteHandler) BulkInvite(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.BulkInviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	campaign, err := h.ownedCampaign(req.CampaignID, currentUserID)
	if err != nil {
		return err
	}

	invites := make([]models.CampaignInvite, len(req.InfluencerIDs))
	for i, influencerID := range req.InfluencerIDs {
		invites[i] = models.CampaignInvite{
			CampaignID:   req.CampaignID,
			InfluencerID: influencerID,
			Status:       "pending",
			Notes:        req.Notes,
		}
	}

	if err := h.inviteRepository.CreateBatch(invites); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create bulk invites")
	}

	notification := &models.Notification{
		UserID:  campaign.UserID,
		Title:   "Bulk Invites Sent",
		Message: fmt.Sprintf("Successfully sent %d campaign invites", len(req.InfluencerIDs)),
		Type:    "success",
	}
	if err := h.notificationRepository.Create(notification); err != nil {
		// Invites are already committed; the missing notification is not fatal
		c.Logger().Errorf("failed to dispatch bulk invite notification: %v", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"invites": invites}})
}

// UpdateInviteStatus records a response to an invite and stamps
// responded_at, owner of the campaign only
func (h *CampaignInviteHandler) UpdateInviteStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	inviteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid invite ID")
	}

	var req models.UpdateInviteStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	invite, err := h.inviteRepository.GetByID(uint(inviteID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Invite not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if _, err := h.ownedCampaign(invite.CampaignID, currentUserID); err != nil {
		return err
	}

	if err := h.inviteRepository.UpdateStatus(uint(inviteID), req.Status); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update invite")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
