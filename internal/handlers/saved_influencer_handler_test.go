package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/zorepad/influencer-hub/backend/internal/models"
)

type fakeSavedRepo struct {
	entries []models.SavedInfluencer
	nextID  uint
}

func (r *fakeSavedRepo) Save(saved *models.SavedInfluencer) error {
	r.nextID++
	saved.ID = r.nextID
	r.entries = append(r.entries, *saved)
	return nil
}

func (r *fakeSavedRepo) Remove(userID, savedID uint) error {
	for i, e := range r.entries {
		if e.UserID == userID && e.ID == savedID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("saved influencer not found")
}

func (r *fakeSavedRepo) IsSaved(userID uint, influencerID string) (bool, error) {
	for _, e := range r.entries {
		if e.UserID == userID && e.InfluencerID == influencerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSavedRepo) GetByUser(userID uint) ([]models.SavedInfluencer, error) {
	var out []models.SavedInfluencer
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestSaveInfluencerDuplicateGuard(t *testing.T) {
	savedRepo := &fakeSavedRepo{}
	h := NewSavedInfluencerHandler(savedRepo, newFakeInfluencerRepo("inf-1"))

	c, rec := newTestContext(t, http.MethodPost, "/influencers/inf-1/save", "")
	asUser(c, 7)
	c.SetParamNames("id")
	c.SetParamValues("inf-1")
	if err := h.SaveInfluencer(c); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("first save status = %d, want %d", rec.Code, http.StatusCreated)
	}

	c, rec = newTestContext(t, http.MethodPost, "/influencers/inf-1/save", "")
	asUser(c, 7)
	c.SetParamNames("id")
	c.SetParamValues("inf-1")
	if err := h.SaveInfluencer(c); err != nil {
		t.Fatalf("second save should not error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("second save status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Message != "This influencer is already in your saved list" {
		t.Fatalf("message = %q", resp.Message)
	}

	if len(savedRepo.entries) != 1 {
		t.Fatalf("expected exactly one saved entry, got %d", len(savedRepo.entries))
	}
}

func TestSaveInfluencerUnknownCatalogEntry(t *testing.T) {
	h := NewSavedInfluencerHandler(&fakeSavedRepo{}, newFakeInfluencerRepo("inf-1"))

	c, _ := newTestContext(t, http.MethodPost, "/influencers/ghost/save", "")
	asUser(c, 7)
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	err := h.SaveInfluencer(c)
	if err == nil {
		t.Fatal("expected error for unknown influencer")
	}
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", code, http.StatusNotFound)
	}
}

func TestRemoveSavedInfluencerScopedToOwner(t *testing.T) {
	savedRepo := &fakeSavedRepo{}
	savedRepo.Save(&models.SavedInfluencer{UserID: 7, InfluencerID: "inf-1"})
	h := NewSavedInfluencerHandler(savedRepo, newFakeInfluencerRepo("inf-1"))

	// Another user cannot remove user 7's bookmark
	c, _ := newTestContext(t, http.MethodDelete, "/saved/1", "")
	asUser(c, 8)
	c.SetParamNames("id")
	c.SetParamValues("1")
	err := h.RemoveSavedInfluencer(c)
	if err == nil {
		t.Fatal("expected error removing another user's entry")
	}
	if code := httpStatus(t, err); code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", code, http.StatusNotFound)
	}
	if len(savedRepo.entries) != 1 {
		t.Fatalf("entry should remain, got %d entries", len(savedRepo.entries))
	}

	// The owner can
	c, rec := newTestContext(t, http.MethodDelete, "/saved/1", "")
	asUser(c, 7)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.RemoveSavedInfluencer(c); err != nil {
		t.Fatalf("owner remove failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if len(savedRepo.entries) != 0 {
		t.Fatalf("entry should be gone, got %d entries", len(savedRepo.entries))
	}
}
