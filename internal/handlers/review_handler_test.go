package handlers

import (
	"net/http"
	"testing"

	"github.com/zorepad/influencer-hub/backend/internal/models"
	"gorm.io/gorm"
)

type fakeReviewRepo struct {
	reviews []models.InfluencerReview
	nextID  uint
}

func (r *fakeReviewRepo) Create(review *models.InfluencerReview) error {
	r.nextID++
	review.ID = r.nextID
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) GetByID(id uint) (*models.InfluencerReview, error) {
	for _, rev := range r.reviews {
		if rev.ID == id {
			return &rev, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeReviewRepo) GetByUser(userID uint) ([]models.InfluencerReview, error) {
	var out []models.InfluencerReview
	for _, rev := range r.reviews {
		if rev.UserID == userID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) GetByInfluencer(influencerID string) ([]models.InfluencerReview, error) {
	var out []models.InfluencerReview
	for _, rev := range r.reviews {
		if rev.InfluencerID == influencerID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Update(userID, reviewID uint, rating int, text string) error {
	for i, rev := range r.reviews {
		if rev.UserID == userID && rev.ID == reviewID {
			r.reviews[i].Rating = rating
			r.reviews[i].Review = text
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestCreateReviewRejectsZeroRating(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	h := NewReviewHandler(reviewRepo, newFakeInfluencerRepo("inf-1"))

	c, _ := newTestContext(t, http.MethodPost, "/reviews", `{"influencer_id":"inf-1","rating":0,"review":"nope"}`)
	asUser(c, 7)
	err := h.CreateReview(c)
	if err == nil {
		t.Fatal("expected validation error for zero rating")
	}
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", code, http.StatusBadRequest)
	}
	if len(reviewRepo.reviews) != 0 {
		t.Fatalf("no review should be stored, got %d", len(reviewRepo.reviews))
	}
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	h := NewReviewHandler(reviewRepo, newFakeInfluencerRepo("inf-1"))

	c, _ := newTestContext(t, http.MethodPost, "/reviews", `{"influencer_id":"inf-1","rating":6}`)
	asUser(c, 7)
	err := h.CreateReview(c)
	if err == nil {
		t.Fatal("expected validation error for rating above 5")
	}
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", code, http.StatusBadRequest)
	}
	if len(reviewRepo.reviews) != 0 {
		t.Fatalf("no review should be stored, got %d", len(reviewRepo.reviews))
	}
}

func TestCreateReviewAllowsEmptyText(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	h := NewReviewHandler(reviewRepo, newFakeInfluencerRepo("inf-1"))

	c, rec := newTestContext(t, http.MethodPost, "/reviews", `{"influencer_id":"inf-1","rating":5}`)
	asUser(c, 7)
	if err := h.CreateReview(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if len(reviewRepo.reviews) != 1 {
		t.Fatalf("expected one stored review, got %d", len(reviewRepo.reviews))
	}
	if got := reviewRepo.reviews[0]; got.Rating != 5 || got.Review != "" || got.UserID != 7 {
		t.Fatalf("stored review = %+v", got)
	}
}

func TestUpdateReviewScopedToOwner(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	reviewRepo.Create(&models.InfluencerReview{UserID: 7, InfluencerID: "inf-1", Rating: 3, Review: "ok"})
	h := NewReviewHandler(reviewRepo, newFakeInfluencerRepo("inf-1"))

	c, _ := newTestContext(t, http.MethodPut, "/reviews/1", `{"rating":5,"review":"great"}`)
	asUser(c, 8)
	c.SetParamNames("id")
	c.SetParamValues("1")
	err := h.UpdateReview(c)
	if err == nil {
		t.Fatal("expected error updating another user's review")
	}
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", code, http.StatusNotFound)
	}

	c, rec := newTestContext(t, http.MethodPut, "/reviews/1", `{"rating":5,"review":"great"}`)
	asUser(c, 7)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.UpdateReview(c); err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := reviewRepo.reviews[0]; got.Rating != 5 || got.Review != "great" {
		t.Fatalf("review not updated: %+v", got)
	}
}
