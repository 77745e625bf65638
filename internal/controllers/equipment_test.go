package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gear-tracker/internal/dto"
	"gear-tracker/pkg/contextkeys"
	apperrors "gear-tracker/pkg/errors"
	"gear-tracker/pkg/utils"
)

type stubEquipmentService struct {
	items   []dto.EquipmentListItemDTO
	total   uint64
	found   *dto.EquipmentDTO
	findErr error
}

func (s *stubEquipmentService) List(context.Context, string, utils.ListParams) ([]dto.EquipmentListItemDTO, uint64, error) {
	return s.items, s.total, nil
}

func (s *stubEquipmentService) Find(context.Context, string, string) (*dto.EquipmentDTO, error) {
	return s.found, s.findErr
}

func (s *stubEquipmentService) Create(context.Context, string, dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	return s.found, nil
}

func (s *stubEquipmentService) Update(context.Context, string, string, dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	return s.found, nil
}

func (s *stubEquipmentService) Delete(context.Context, string, string) error {
	return s.findErr
}

func (s *stubEquipmentService) GenerateQrReference(context.Context, string, string) (*dto.QrReferenceDTO, error) {
	return nil, s.findErr
}

func (s *stubEquipmentService) Export(context.Context, string, utils.ListParams) (*excelize.File, error) {
	return excelize.NewFile(), nil
}

func newTestContext(t *testing.T, method, target string, orgID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	if orgID != "" {
		ctx := context.WithValue(req.Context(), contextkeys.OrganizationIDKey, orgID)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListEnvelopeCarriesPagination(t *testing.T) {
	svc := &stubEquipmentService{
		items: []dto.EquipmentListItemDTO{{ID: "eq-1", Name: "SM58"}},
		total: 25,
	}
	ctl := NewEquipmentController(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodGet, "/api/equipment?page=3&limit=10", "org-1")
	require.NoError(t, ctl.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status     string          `json:"status"`
		Results    int             `json:"results"`
		Data       json.RawMessage `json:"data"`
		Pagination struct {
			Total      uint64 `json:"total"`
			Page       uint64 `json:"page"`
			Limit      uint64 `json:"limit"`
			TotalPages uint64 `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "success", body.Status)
	assert.Equal(t, 1, body.Results)
	assert.Equal(t, uint64(25), body.Pagination.Total)
	assert.Equal(t, uint64(3), body.Pagination.Page)
	assert.Equal(t, uint64(10), body.Pagination.Limit)
	assert.Equal(t, uint64(3), body.Pagination.TotalPages)
}

func TestListWithoutIdentityIsUnauthorized(t *testing.T) {
	ctl := NewEquipmentController(&stubEquipmentService{}, zap.NewNop())

	c, rec := newTestContext(t, http.MethodGet, "/api/equipment", "")
	require.NoError(t, ctl.List(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFindRejectsMalformedID(t *testing.T) {
	ctl := NewEquipmentController(&stubEquipmentService{}, zap.NewNop())

	c, rec := newTestContext(t, http.MethodGet, "/api/equipment/not-a-uuid", "org-1")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, ctl.Find(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindMapsNotFound(t *testing.T) {
	svc := &stubEquipmentService{findErr: apperrors.ErrNotFound}
	ctl := NewEquipmentController(svc, zap.NewNop())

	c, rec := newTestContext(t, http.MethodGet, "/api/equipment/3a9b33a1-5cf0-41f2-a67e-2f1d1a0f16fb", "org-1")
	c.SetParamNames("id")
	c.SetParamValues("3a9b33a1-5cf0-41f2-a67e-2f1d1a0f16fb")

	require.NoError(t, ctl.Find(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.NotEmpty(t, body.Message)
}
