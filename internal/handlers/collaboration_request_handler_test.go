package handlers

import (
	"net/http"
	"testing"

	"github.com/zorepad/influencer-hub/backend/internal/models"
	"gorm.io/gorm"
)

type fakeCollabRepo struct {
	requests []models.CollaborationRequest
	nextID   uint
}

func (r *fakeCollabRepo) Create(request *models.CollaborationRequest) error {
	r.nextID++
	request.ID = r.nextID
	r.requests = append(r.requests, *request)
	return nil
}

func (r *fakeCollabRepo) GetByID(id uint) (*models.CollaborationRequest, error) {
	for _, req := range r.requests {
		if req.ID == id {
			return &req, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCollabRepo) GetByUser(userID uint) ([]models.CollaborationRequest, error) {
	var out []models.CollaborationRequest
	for _, req := range r.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeCollabRepo) UpdateStatus(userID, requestID uint, status string) error {
	for i, req := range r.requests {
		if req.UserID == userID && req.ID == requestID {
			r.requests[i].Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestCreateCollaborationRequiresMessage(t *testing.T) {
	collabRepo := &fakeCollabRepo{}
	h := NewCollaborationRequestHandler(collabRepo, newFakeInfluencerRepo("inf-1"), newFakeCampaignRepo())

	c, _ := newTestContext(t, http.MethodPost, "/collaborations", `{"influencer_id":"inf-1","message":""}`)
	asUser(c, 7)
	err := h.CreateRequest(c)
	if err == nil {
		t.Fatal("expected validation error for empty message")
	}
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", code, http.StatusBadRequest)
	}
	if len(collabRepo.requests) != 0 {
		t.Fatalf("no request should be stored, got %d", len(collabRepo.requests))
	}
}

func TestCreateCollaborationStartsPending(t *testing.T) {
	collabRepo := &fakeCollabRepo{}
	h := NewCollaborationRequestHandler(collabRepo, newFakeInfluencerRepo("inf-1"), newFakeCampaignRepo())

	c, rec := newTestContext(t, http.MethodPost, "/collaborations", `{"influencer_id":"inf-1","message":"Let's work together"}`)
	asUser(c, 7)
	if err := h.CreateRequest(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if len(collabRepo.requests) != 1 {
		t.Fatalf("expected one stored request, got %d", len(collabRepo.requests))
	}
	if got := collabRepo.requests[0]; got.Status != "pending" || got.UserID != 7 {
		t.Fatalf("stored request = %+v", got)
	}
}

func TestCreateCollaborationChecksCampaignOwnership(t *testing.T) {
	collabRepo := &fakeCollabRepo{}
	campaignRepo := newFakeCampaignRepo(&models.Campaign{ID: 1, UserID: 9, Name: "Someone else's"})
	h := NewCollaborationRequestHandler(collabRepo, newFakeInfluencerRepo("inf-1"), campaignRepo)

	c, _ := newTestContext(t, http.MethodPost, "/collaborations", `{"influencer_id":"inf-1","message":"hi","campaign_id":1}`)
	asUser(c, 7)
	err := h.CreateRequest(c)
	if err == nil {
		t.Fatal("expected error linking to another user's campaign")
	}
	if code := httpStatus(t, err); code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", code, http.StatusForbidden)
	}
	if len(collabRepo.requests) != 0 {
		t.Fatalf("no request should be stored, got %d", len(collabRepo.requests))
	}
}

func TestUpdateCollaborationStatusScopedToOwner(t *testing.T) {
	collabRepo := &fakeCollabRepo{}
	collabRepo.Create(&models.CollaborationRequest{UserID: 7, InfluencerID: "inf-1", Message: "hi", Status: "pending"})
	h := NewCollaborationRequestHandler(collabRepo, newFakeInfluencerRepo("inf-1"), newFakeCampaignRepo())

	c, _ := newTestContext(t, http.MethodPut, "/collaborations/1/status", `{"status":"accepted"}`)
	asUser(c, 8)
	c.SetParamNames("id")
	c.SetParamValues("1")
	err := h.UpdateRequestStatus(c)
	if err == nil {
		t.Fatal("expected error updating another user's request")
	}
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", code, http.StatusNotFound)
	}

	c, rec := newTestContext(t, http.MethodPut, "/collaborations/1/status", `{"status":"accepted"}`)
	asUser(c, 7)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.UpdateRequestStatus(c); err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if collabRepo.requests[0].Status != "accepted" {
		t.Fatalf("status = %q, want accepted", collabRepo.requests[0].Status)
	}
}
