package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/zorepad/influencer-hub/backend/internal/models"
	"gorm.io/gorm"
)

type fakeCampaignRepo struct {
	campaigns map[uint]*models.Campaign
}

func newFakeCampaignRepo(campaigns ...*models.Campaign) *fakeCampaignRepo {
	m := make(map[uint]*models.Campaign, len(campaigns))
	for _, campaign := range campaigns {
		m[campaign.ID] = campaign
	}
	return &fakeCampaignRepo{campaigns: m}
}

func (r *fakeCampaignRepo) Create(campaign *models.Campaign) error {
	r.campaigns[campaign.ID] = campaign
	return nil
}

func (r *fakeCampaignRepo) GetByID(id uint) (*models.Campaign, error) {
	campaign, ok := r.campaigns[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return campaign, nil
}

func (r *fakeCampaignRepo) GetByUser(userID uint) ([]models.Campaign, error) {
	var out []models.Campaign
	for _, campaign := range r.campaigns {
		if campaign.UserID == userID {
			out = append(out, *campaign)
		}
	}
	return out, nil
}

func (r *fakeCampaignRepo) Update(campaign *models.Campaign) error {
	r.campaigns[campaign.ID] = campaign
	return nil
}

func (r *fakeCampaignRepo) Delete(userID, campaignID uint) error {
	campaign, ok := r.campaigns[campaignID]
	if !ok || campaign.UserID != userID {
		return fmt.Errorf("campaign not found")
	}
	delete(r.campaigns, campaignID)
	return nil
}

type fakeInviteRepo struct {
	invites []models.CampaignInvite
	nextID  uint
}

func (r *fakeInviteRepo) Create(invite *models.CampaignInvite) error {
	r.nextID++
	invite.ID = r.nextID
	r.invites = append(r.invites, *invite)
	return nil
}

func (r *fakeInviteRepo) CreateBatch(invites []models.CampaignInvite) error {
	for i := range invites {
		r.nextID++
		invites[i].ID = r.nextID
		r.invites = append(r.invites, invites[i])
	}
	return nil
}

func (r *fakeInviteRepo) GetByID(id uint) (*models.CampaignInvite, error) {
	for _, invite := range r.invites {
		if invite.ID == id {
			return &invite, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeInviteRepo) GetByCampaign(campaignID uint) ([]models.CampaignInvite, error) {
	var out []models.CampaignInvite
	for _, invite := range r.invites {
		if invite.CampaignID == campaignID {
			out = append(out, invite)
		}
	}
	return out, nil
}

func (r *fakeInviteRepo) GetByCampaigns(campaignIDs []uint) ([]models.CampaignInvite, error) {
	var out []models.CampaignInvite
	for _, invite := range r.invites {
		for _, id := range campaignIDs {
			if invite.CampaignID == id {
				out = append(out, invite)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeInviteRepo) UpdateStatus(inviteID uint, status string) error {
	for i, invite := range r.invites {
		if invite.ID == inviteID {
			now := time.Now()
			r.invites[i].Status = status
			r.invites[i].RespondedAt = &now
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeNotificationRepo struct {
	notifications []models.Notification
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *fakeNotificationRepo) GetByUser(userID uint, page, limit int) ([]models.Notification, int64, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) GetUnreadCount(userID uint) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAsRead(userID, notificationID uint) error {
	for i, n := range r.notifications {
		if n.UserID == userID && n.ID == notificationID {
			r.notifications[i].Read = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) MarkAllAsRead(userID uint) error {
	for i, n := range r.notifications {
		if n.UserID == userID {
			r.notifications[i].Read = true
		}
	}
	return nil
}

func newInviteHandler(campaignOwner uint) (*CampaignInviteHandler, *fakeInviteRepo, *fakeNotificationRepo) {
	inviteRepo := &fakeInviteRepo{}
	notifRepo := &fakeNotificationRepo{}
	campaignRepo := newFakeCampaignRepo(&models.Campaign{ID: 1, UserID: campaignOwner, Name: "Summer Launch"})
	h := NewCampaignInviteHandler(inviteRepo, campaignRepo, newFakeInfluencerRepo("inf-1", "inf-2", "inf-3"), notifRepo)
	return h, inviteRepo, notifRepo
}

func TestBulkInviteCreatesInvitesAndNotification(t *testing.T) {
	h, inviteRepo, notifRepo := newInviteHandler(7)

	body := `{"campaign_id":1,"influencer_ids":["inf-1","inf-2","inf-3"],"notes":"launch push"}`
	c, rec := newTestContext(t, http.MethodPost, "/invites/bulk", body)
	asUser(c, 7)
	if err := h.BulkInvite(c); err != nil {
		t.Fatalf("bulk invite failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	if len(inviteRepo.invites) != 3 {
		t.Fatalf("expected 3 invites, got %d", len(inviteRepo.invites))
	}
	for _, invite := range inviteRepo.invites {
		if invite.Status != "pending" {
			t.Fatalf("invite status = %q, want pending", invite.Status)
		}
		if invite.Notes != "launch push" {
			t.Fatalf("invite notes = %q", invite.Notes)
		}
	}

	if len(notifRepo.notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifRepo.notifications))
	}
	n := notifRepo.notifications[0]
	if n.Title != "Bulk Invites Sent" {
		t.Fatalf("notification title = %q", n.Title)
	}
	if n.Message != "Successfully sent 3 campaign invites" {
		t.Fatalf("notification message = %q", n.Message)
	}
	if n.Type != "success" {
		t.Fatalf("notification type = %q", n.Type)
	}
	if n.UserID != 7 {
		t.Fatalf("notification user = %d, want 7", n.UserID)
	}
}

func TestBulkInviteRequiresCampaignOwnership(t *testing.T) {
	h, inviteRepo, notifRepo := newInviteHandler(7)

	body := `{"campaign_id":1,"influencer_ids":["inf-1"]}`
	c, _ := newTestContext(t, http.MethodPost, "/invites/bulk", body)
	asUser(c, 8)
	err := h.BulkInvite(c)
	if err == nil {
		t.Fatal("expected error for non-owner")
	}
	if code := httpStatus(t, err); code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", code, http.StatusForbidden)
	}
	if len(inviteRepo.invites) != 0 {
		t.Fatalf("no invites should be created, got %d", len(inviteRepo.invites))
	}
	if len(notifRepo.notifications) != 0 {
		t.Fatalf("no notification should be dispatched, got %d", len(notifRepo.notifications))
	}
}

func TestBulkInviteRejectsEmptyList(t *testing.T) {
	h, inviteRepo, _ := newInviteHandler(7)

	body := `{"campaign_id":1,"influencer_ids":[]}`
	c, _ := newTestContext(t, http.MethodPost, "/invites/bulk", body)
	asUser(c, 7)
	err := h.BulkInvite(c)
	if err == nil {
		t.Fatal("expected validation error for empty influencer list")
	}
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", code, http.StatusBadRequest)
	}
	if len(inviteRepo.invites) != 0 {
		t.Fatalf("no invites should be created, got %d", len(inviteRepo.invites))
	}
}

func TestUpdateInviteStatusStampsRespondedAt(t *testing.T) {
	h, inviteRepo, _ := newInviteHandler(7)
	inviteRepo.Create(&models.CampaignInvite{CampaignID: 1, InfluencerID: "inf-1", Status: "pending"})

	c, rec := newTestContext(t, http.MethodPut, "/invites/1/status", `{"status":"accepted"}`)
	asUser(c, 7)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.UpdateInviteStatus(c); err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	invite := inviteRepo.invites[0]
	if invite.Status != "accepted" {
		t.Fatalf("invite status = %q, want accepted", invite.Status)
	}
	if invite.RespondedAt == nil {
		t.Fatal("responded_at should be stamped")
	}
}
