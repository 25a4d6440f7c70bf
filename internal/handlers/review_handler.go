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

// ReviewHandler handles influencer review HTTP requests
type ReviewHandler struct {
	reviewRepository     repositories.ReviewRepository
	influencerRepository repositories.InfluencerRepository
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewRepo repositories.ReviewRepository, influencerRepo repositories.InfluencerRepository) *ReviewHandler {
	return &ReviewHandler{
		reviewRepository:     reviewRepo,
		influencerRepository: influencerRepo,
	}
}

// RegisterReviewRoutes registers review routes
func (h *ReviewHandler) RegisterReviewRoutes(g *echo.Group) {
	g.GET("/reviews", h.GetMyReviews)
	g.GET("/influencers/:id/reviews", h.GetInfluencerReviews)
	g.POST("/reviews", h.CreateReview)
	g.PUT("/reviews/:id", h.UpdateReview)
}

// GetMyReviews lists the current user's reviews
func (h *ReviewHandler) GetMyReviews(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	reviews, err := h.reviewRepository.GetByUser(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load reviews")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"reviews": reviews, "count": len(reviews)},
	})
}

// GetInfluencerReviews lists every review for one influencer
func (h *ReviewHandler) GetInfluencerReviews(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	reviews, err := h.reviewRepository.GetByInfluencer(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load reviews")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"reviews": reviews, "count": len(reviews)},
	})
}

// CreateReview submits a review. The 1-5 rating requirement is enforced
// here, before any repository call; review text may be empty.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateReviewRequest
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

	review := &models.InfluencerReview{
		UserID:       currentUserID,
		InfluencerID: req.InfluencerID,
		CampaignID:   req.CampaignID,
		Rating:       req.Rating,
		Review:       req.Review,
	}

	if err := h.reviewRepository.Create(review); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to submit review")
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": review})
}

// UpdateReview revises rating and text in place, owner only
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid review ID")
	}

	var req models.UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.reviewRepository.Update(currentUserID, uint(reviewID), req.Rating, req.Review); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Review not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update review")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
