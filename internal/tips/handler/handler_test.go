package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tipline/internal/tips/handler/mocks"
	"tipline/internal/tips/models"
	"tipline/internal/tips/service"
	id "tipline/pkg/domain"
	dErrors "tipline/pkg/domain-errors"
	authmw "tipline/pkg/platform/middleware/auth"
)

// stubValidator maps fixed tokens to claims, standing in for the JWT service.
type stubValidator struct {
	claims map[string]*authmw.Claims
}

func (v *stubValidator) ValidateAccessToken(token string) (*authmw.Claims, error) {
	if claims, ok := v.claims[token]; ok {
		return claims, nil
	}
	return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
}

type handlerFixture struct {
	service *mocks.MockService
	router  *chi.Mux
	userID  id.UserID
}

func newTestHandler(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockService(ctrl)

	userID := id.NewUserID()
	validator := &stubValidator{claims: map[string]*authmw.Claims{
		"user-token":  {UserID: userID},
		"admin-token": {UserID: id.NewUserID(), Admin: true},
	}}

	h := New(mockService, slog.New(slog.NewTextHandler(io.Discard, nil)), validator)
	router := chi.NewRouter()
	h.Register(router)

	return &handlerFixture{service: mockService, router: router, userID: userID}
}

func (f *handlerFixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func sampleSnapshot(t *testing.T, createdBy id.UserID) models.TipSnapshot {
	t.Helper()
	now, err := id.ParseUTCInstant("2023-06-01T10:00:00Z")
	require.NoError(t, err)
	tip, err := models.NewLocalTip(id.NewTipID(), "Road closed", "Detour via 5th", "loc-1", createdBy, now)
	require.NoError(t, err)
	return tip.Snapshot()
}

func TestCreateWeatherTip_HTTP(t *testing.T) {
	t.Run("creates with identity from the token", func(t *testing.T) {
		f := newTestHandler(t)
		snap := sampleSnapshot(t, f.userID)
		f.service.EXPECT().
			CreateWeatherTip(gomock.Any(), service.CreateTipInput{Title: "Storm", Content: "Rain"}, f.userID).
			Return(snap, nil)

		w := f.do(t, http.MethodPost, "/tips/weather", "user-token",
			CreateTipRequest{Title: "Storm", Content: "Rain"})

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp TipResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, snap.ID.String(), resp.ID)
	})

	t.Run("rejects missing token", func(t *testing.T) {
		f := newTestHandler(t)
		w := f.do(t, http.MethodPost, "/tips/weather", "",
			CreateTipRequest{Title: "Storm", Content: "Rain"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects invalid token", func(t *testing.T) {
		f := newTestHandler(t)
		w := f.do(t, http.MethodPost, "/tips/weather", "bogus",
			CreateTipRequest{Title: "Storm", Content: "Rain"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("maps validation failures to 400", func(t *testing.T) {
		f := newTestHandler(t)
		f.service.EXPECT().
			CreateWeatherTip(gomock.Any(), gomock.Any(), f.userID).
			Return(models.TipSnapshot{}, dErrors.New(dErrors.CodeValidation, "title must not be empty"))

		w := f.do(t, http.MethodPost, "/tips/weather", "user-token",
			CreateTipRequest{Title: " ", Content: "Rain"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateLocalTip_HTTP(t *testing.T) {
	f := newTestHandler(t)
	f.service.EXPECT().
		CreateLocalTip(gomock.Any(), gomock.Any(), f.userID).
		Return(models.TipSnapshot{}, models.ErrLocationRequired)

	w := f.do(t, http.MethodPost, "/tips/local", "user-token",
		CreateTipRequest{Title: "Road closed", Content: "Detour"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp["error"])
}

func TestEditTip_HTTP(t *testing.T) {
	title := "updated"

	t.Run("passes the caller as creator", func(t *testing.T) {
		f := newTestHandler(t)
		snap := sampleSnapshot(t, f.userID)
		f.service.EXPECT().
			EditTip(gomock.Any(), snap.ID, models.TipUpdate{Title: &title}, f.userID).
			Return(snap, nil)

		w := f.do(t, http.MethodPatch, "/tips/"+snap.ID.String(), "user-token",
			UpdateTipRequest{Title: &title})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin token edits without an owner", func(t *testing.T) {
		f := newTestHandler(t)
		snap := sampleSnapshot(t, f.userID)
		f.service.EXPECT().
			EditTip(gomock.Any(), snap.ID, gomock.Any(), id.UserID{}).
			Return(snap, nil)

		w := f.do(t, http.MethodPatch, "/tips/"+snap.ID.String(), "admin-token",
			UpdateTipRequest{Title: &title})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("foreign tip reads as 404", func(t *testing.T) {
		f := newTestHandler(t)
		tipID := id.NewTipID()
		f.service.EXPECT().
			EditTip(gomock.Any(), tipID, gomock.Any(), f.userID).
			Return(models.TipSnapshot{}, dErrors.New(dErrors.CodeNotFound, "tip not found"))

		w := f.do(t, http.MethodPatch, "/tips/"+tipID.String(), "user-token",
			UpdateTipRequest{Title: &title})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("terminal tip reads as 409", func(t *testing.T) {
		f := newTestHandler(t)
		tipID := id.NewTipID()
		f.service.EXPECT().
			EditTip(gomock.Any(), tipID, gomock.Any(), f.userID).
			Return(models.TipSnapshot{}, models.ErrCannotBeEdited)

		w := f.do(t, http.MethodPatch, "/tips/"+tipID.String(), "user-token",
			UpdateTipRequest{Title: &title})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		f := newTestHandler(t)
		w := f.do(t, http.MethodPatch, "/tips/"+id.NewTipID().String(), "user-token",
			UpdateTipRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		f := newTestHandler(t)
		w := f.do(t, http.MethodPatch, "/tips/not-a-uuid", "user-token",
			UpdateTipRequest{Title: &title})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteTip_HTTP(t *testing.T) {
	f := newTestHandler(t)
	tipID := id.NewTipID()
	f.service.EXPECT().DeleteTip(gomock.Any(), tipID, f.userID).Return(nil)

	w := f.do(t, http.MethodDelete, "/tips/"+tipID.String(), "user-token", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListTips_HTTP(t *testing.T) {
	t.Run("public, with filters from the query string", func(t *testing.T) {
		f := newTestHandler(t)
		f.service.EXPECT().
			FindAllTips(gomock.Any(), models.TipFilter{
				Type:   models.TipTypeWeather,
				Status: models.TipStatusActive,
				Limit:  10,
			}).
			Return([]models.TipProjection{}, 0, nil)

		w := f.do(t, http.MethodGet, "/tips?type=weather&status=active&limit=10", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp ListTipsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Total)
		assert.NotNil(t, resp.Items)
	})

	t.Run("rejects a non-numeric limit", func(t *testing.T) {
		f := newTestHandler(t)
		w := f.do(t, http.MethodGet, "/tips?limit=lots", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetTip_HTTP(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newTestHandler(t)
		snap := sampleSnapshot(t, f.userID)
		projection := models.TipProjection{
			ID: snap.ID, Type: snap.Type, Status: snap.Status,
			Title: snap.Title, Content: snap.Content, LocationID: snap.LocationID,
			CreatedBy: snap.CreatedBy, CreatedAt: snap.CreatedAt, UpdatedAt: snap.UpdatedAt,
		}
		f.service.EXPECT().GetTip(gomock.Any(), snap.ID).Return(&projection, nil)

		w := f.do(t, http.MethodGet, "/tips/"+snap.ID.String(), "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing", func(t *testing.T) {
		f := newTestHandler(t)
		tipID := id.NewTipID()
		f.service.EXPECT().GetTip(gomock.Any(), tipID).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "tip not found"))

		w := f.do(t, http.MethodGet, "/tips/"+tipID.String(), "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
