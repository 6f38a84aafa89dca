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

	"tipline/internal/faq/handler/mocks"
	"tipline/internal/faq/models"
	"tipline/internal/faq/service"
	id "tipline/pkg/domain"
	dErrors "tipline/pkg/domain-errors"
)

const testAdminToken = "test-admin-token"

type faqHandlerFixture struct {
	service *mocks.MockService
	router  *chi.Mux
}

func newTestHandler(t *testing.T) *faqHandlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockService(ctrl)

	h := New(mockService, slog.New(slog.NewTextHandler(io.Discard, nil)), testAdminToken)
	router := chi.NewRouter()
	h.Register(router)

	return &faqHandlerFixture{service: mockService, router: router}
}

func (f *faqHandlerFixture) do(t *testing.T, method, path, adminToken string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if adminToken != "" {
		req.Header.Set("X-Admin-Token", adminToken)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func sampleFAQ(t *testing.T) models.FAQ {
	t.Helper()
	now, err := id.ParseUTCInstant("2023-06-01T10:00:00Z")
	require.NoError(t, err)
	faq, err := models.NewFAQ(id.NewFAQID(), "How do tips expire?", "Weather tips last a day.", "tips", now)
	require.NoError(t, err)
	return *faq
}

func TestCreateFAQ_HTTP(t *testing.T) {
	t.Run("creates with the admin token", func(t *testing.T) {
		f := newTestHandler(t)
		faq := sampleFAQ(t)
		f.service.EXPECT().
			CreateFAQ(gomock.Any(), service.CreateFAQInput{
				Question: faq.Question,
				Answer:   faq.Answer,
				Category: faq.Category,
			}).
			Return(&faq, nil)

		w := f.do(t, http.MethodPost, "/admin/faqs", testAdminToken, CreateFAQRequest{
			Question: faq.Question,
			Answer:   faq.Answer,
			Category: faq.Category,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp models.FAQ
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, faq.ID, resp.ID)
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		f := newTestHandler(t)
		w := f.do(t, http.MethodPost, "/admin/faqs", "", CreateFAQRequest{
			Question: "q", Answer: "a",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a wrong token", func(t *testing.T) {
		f := newTestHandler(t)
		w := f.do(t, http.MethodPost, "/admin/faqs", "wrong", CreateFAQRequest{
			Question: "q", Answer: "a",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("maps entity validation to 400", func(t *testing.T) {
		f := newTestHandler(t)
		f.service.EXPECT().
			CreateFAQ(gomock.Any(), gomock.Any()).
			Return(nil, models.ErrAnswerRequired)

		w := f.do(t, http.MethodPost, "/admin/faqs", testAdminToken, CreateFAQRequest{
			Question: "How do tips expire?",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateFAQ_HTTP(t *testing.T) {
	answer := "They are swept once a minute."

	t.Run("partial update", func(t *testing.T) {
		f := newTestHandler(t)
		faq := sampleFAQ(t)
		f.service.EXPECT().
			UpdateFAQ(gomock.Any(), faq.ID, models.FAQUpdate{Answer: &answer}).
			Return(&faq, nil)

		w := f.do(t, http.MethodPatch, "/admin/faqs/"+faq.ID.String(), testAdminToken,
			UpdateFAQRequest{Answer: &answer})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing entry reads as 404", func(t *testing.T) {
		f := newTestHandler(t)
		faqID := id.NewFAQID()
		f.service.EXPECT().
			UpdateFAQ(gomock.Any(), faqID, gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "faq not found"))

		w := f.do(t, http.MethodPatch, "/admin/faqs/"+faqID.String(), testAdminToken,
			UpdateFAQRequest{Answer: &answer})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		f := newTestHandler(t)
		w := f.do(t, http.MethodPatch, "/admin/faqs/"+id.NewFAQID().String(), testAdminToken,
			UpdateFAQRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		f := newTestHandler(t)
		w := f.do(t, http.MethodPatch, "/admin/faqs/not-a-uuid", testAdminToken,
			UpdateFAQRequest{Answer: &answer})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteFAQ_HTTP(t *testing.T) {
	f := newTestHandler(t)
	faqID := id.NewFAQID()
	f.service.EXPECT().DeleteFAQ(gomock.Any(), faqID).Return(nil)

	w := f.do(t, http.MethodDelete, "/admin/faqs/"+faqID.String(), testAdminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListFAQs_HTTP(t *testing.T) {
	t.Run("public, filtered by category", func(t *testing.T) {
		f := newTestHandler(t)
		faq := sampleFAQ(t)
		f.service.EXPECT().ListFAQs(gomock.Any(), "tips").Return([]models.FAQ{faq}, nil)

		w := f.do(t, http.MethodGet, "/faqs?category=tips", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp ListFAQsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, faq.Question, resp.Items[0].Question)
	})
}

func TestGetFAQ_HTTP(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newTestHandler(t)
		faq := sampleFAQ(t)
		f.service.EXPECT().GetFAQ(gomock.Any(), faq.ID).Return(&faq, nil)

		w := f.do(t, http.MethodGet, "/faqs/"+faq.ID.String(), "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing", func(t *testing.T) {
		f := newTestHandler(t)
		faqID := id.NewFAQID()
		f.service.EXPECT().GetFAQ(gomock.Any(), faqID).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "faq not found"))

		w := f.do(t, http.MethodGet, "/faqs/"+faqID.String(), "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
