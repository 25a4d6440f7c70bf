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

// CollaborationRequestHandler handles collaboration proposal HTTP requests
type CollaborationRequestHandler struct {
	requestRepository    repositories.CollaborationRequestRepository
	influencerRepository repositories.InfluencerRepository
	campaignRepository   repositories.CampaignRepository
}

// NewCollaborationRequestHandler creates a new CollaborationRequestHandler
func NewCollaborationRequestHandler(requestRepo repositories.CollaborationRequestRepository, influencerRepo repositories.InfluencerRepository, campaignRepo repositories.CampaignRepository) *CollaborationRequestHandler {
	return &CollaborationRequestHandler{
		requestRepository:    requestRepo,
		influencerRepository: influencerRepo,
		campaignRepository:   campaignRepo,
	}
}

// RegisterCollaborationRequestRoutes registers collaboration routes
func (h *CollaborationRequestHandler) RegisterCollaborationRequestRoutes(g *echo.Group) {
	g.GET("/collaborations", h.GetRequests)
	g.POST("/collaborations", h.CreateRequest)
	g.PUT("/collaborations/:id/status", h.UpdateRequestStatus)
}

// CollaborationEntry embeds the influencer's public fields and, when the
// request is tied to a campaign, that campaign's name
type CollaborationEntry struct {
	models.CollaborationRequest
	Influencer models.InfluencerCompact `json:"influencer"`
	Campaign   *models.CampaignCompact  `json:"campaign,omitempty"`
}

// GetRequests lists the current user's collaboration requests
func (h *CollaborationRequestHandler) GetRequests(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	requests, err := h.requestRepository.GetByUser(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load collaboration requests")
	}

	entries := make([]CollaborationEntry, len(requests))
	influencerCache := make(map[string]models.InfluencerCompact)
	for i, request := range requests {
		entries[i] = CollaborationEntry{CollaborationRequest: request}

		if compact, ok := influencerCache[request.InfluencerID]; ok {
			entries[i].Influencer = compact
		} else if influencer, err := h.influencerRepository.GetByID(c.Request().Context(), request.InfluencerID); err == nil {
			compact := influencer.ToCompact()
			influencerCache[request.InfluencerID] = compact
			entries[i].Influencer = compact
		}

		if request.CampaignID != nil {
			if campaign, err := h.campaignRepository.GetByID(*request.CampaignID); err == nil {
				compact := campaign.ToCompact()
				entries[i].Campaign = &compact
			}
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"requests": entries, "count": len(entries)},
	})
}

// CreateRequest sends a collaboration proposal. The message is required
// and validated before any write; an optional campaign link must point at
// a campaign the caller owns.
func (h *CollaborationRequestHandler) CreateRequest(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateCollaborationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.influencerRepository.GetByID(c.Request().Context(), req.InfluencerID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Influencer not found")
	}

	if req.CampaignID != nil {
		campaign, err := h.campaignRepository.GetByID(*req.CampaignID)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Campaign not found")
		}
		if campaign.UserID != currentUserID {
			return echo.NewHTTPError(http.StatusForbidden, "You do not own this campaign")
		}
	}

	request := &models.CollaborationRequest{
		UserID:       currentUserID,
		InfluencerID: req.InfluencerID,
		CampaignID:   req.CampaignID,
		Message:      req.Message,
		Status:       "pending",
	}

	if err := h.requestRepository.Create(request); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send collaboration request")
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": request})
}

// UpdateRequestStatus changes a request's status, owner only; updated_at
// is stamped on the same write
func (h *CollaborationRequestHandler) UpdateRequestStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request ID")
	}

	var req models.UpdateCollaborationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.requestRepository.UpdateStatus(currentUserID, uint(requestID), req.Status); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Collaboration request not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update request")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
