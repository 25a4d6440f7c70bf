package handlers

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/zorepad/influencer-hub/backend/internal/models"
)

// newTestContext builds an echo context for a handler invocation. The body,
// when non-empty, is sent as JSON.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asUser attaches JWT claims the way the auth middleware does
func asUser(c echo.Context, userID uint) {
	c.Set("user", &models.JwtCustomClaims{UserID: userID})
}

// httpStatus unwraps the status code a handler error carries
func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}

// fakeInfluencerRepo serves catalog entries from an in-memory map
type fakeInfluencerRepo struct {
	influencers map[string]*models.Influencer
}

func newFakeInfluencerRepo(ids ...string) *fakeInfluencerRepo {
	m := make(map[string]*models.Influencer, len(ids))
	for _, id := range ids {
		m[id] = &models.Influencer{ID: id, Name: "inf-" + id, Platform: models.PlatformInstagram}
	}
	return &fakeInfluencerRepo{influencers: m}
}

func (r *fakeInfluencerRepo) GetAll(ctx context.Context) ([]models.Influencer, error) {
	out := make([]models.Influencer, 0, len(r.influencers))
	for _, inf := range r.influencers {
		out = append(out, *inf)
	}
	return out, nil
}

func (r *fakeInfluencerRepo) GetByID(ctx context.Context, id string) (*models.Influencer, error) {
	inf, ok := r.influencers[id]
	if !ok {
		return nil, fmt.Errorf("influencer not found")
	}
	return inf, nil
}
