package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gazinassis/opshub-backend/internal/models"
	"github.com/gazinassis/opshub-backend/internal/repositories"
	"github.com/gazinassis/opshub-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// stubCampaignRepo lets handler tests inject repository outcomes
type stubCampaignRepo struct {
	latest     *models.Campaign
	latestErr  error
	membersErr error
}

func (s *stubCampaignRepo) Create(_ context.Context, c *models.Campaign) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	return nil
}

func (s *stubCampaignRepo) Update(_ context.Context, _ *models.Campaign) error { return nil }

func (s *stubCampaignRepo) UpdateMembers(_ context.Context, _ primitive.ObjectID, teamA, teamB []models.Member) error {
	if s.membersErr != nil {
		return s.membersErr
	}
	s.latest.TeamAMembers = teamA
	s.latest.TeamBMembers = teamB
	return nil
}

func (s *stubCampaignRepo) FindByID(_ context.Context, _ primitive.ObjectID) (*models.Campaign, error) {
	return s.FindLatest(context.Background())
}

func (s *stubCampaignRepo) FindLatest(_ context.Context) (*models.Campaign, error) {
	if s.latestErr != nil {
		return nil, s.latestErr
	}
	return s.latest, nil
}

func (s *stubCampaignRepo) FindAll(_ context.Context, _, _ int) ([]*models.Campaign, error) {
	return []*models.Campaign{s.latest}, nil
}

func (s *stubCampaignRepo) Delete(_ context.Context, _ primitive.ObjectID) error { return nil }

func campaignRouter(repo repositories.CampaignRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewCampaignHandler(services.NewCampaignService(repo))
	router.GET("/campaigns/current", h.GetCurrentCampaign)
	router.GET("/campaigns/current/leaderboard", h.GetLeaderboard)
	router.POST("/campaigns/current/import", h.ImportSales)
	return router
}

func duelCampaign() *models.Campaign {
	return &models.Campaign{
		ID:           primitive.NewObjectID(),
		CampaignName: "Duelo",
		GoalValue:    10000,
		TeamAName:    "Sparta",
		TeamBName:    "Águias",
		TeamAMembers: []models.Member{{Name: "Maria Oliveira", Value: 100}},
		TeamBMembers: []models.Member{{Name: "Pedro Santos", Value: 200}},
	}
}

// salesWorkbook builds a one-row workbook inside the import window
func salesWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	nameCell, err := excelize.JoinCellName("D", 2)
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(sheet, nameCell, "4821 - MARIA OLIVEIRA - VENDEDOR"))
	valueCell, err := excelize.JoinCellName("AX", 2)
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(sheet, valueCell, "2345,10"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// uploadRequest wraps content as multipart form field "file"
func uploadRequest(t *testing.T, target string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "vendas.xlsx")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestImportSalesEndpoint(t *testing.T) {
	repo := &stubCampaignRepo{latest: duelCampaign()}
	router := campaignRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/campaigns/current/import", salesWorkbook(t)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2345.10, repo.latest.TeamAMembers[0].Value)
}

func TestImportSalesEndpointMalformedUpload(t *testing.T) {
	repo := &stubCampaignRepo{latest: duelCampaign()}
	router := campaignRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/campaigns/current/import", []byte("not a spreadsheet")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportSalesEndpointPersistFailure(t *testing.T) {
	// A valid upload that fails at the write stage is a backend fault,
	// never the client's
	repo := &stubCampaignRepo{
		latest:     duelCampaign(),
		membersErr: errors.New("connection reset by peer"),
	}
	router := campaignRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/campaigns/current/import", salesWorkbook(t)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestImportSalesEndpointNoCampaign(t *testing.T) {
	repo := &stubCampaignRepo{latestErr: mongo.ErrNoDocuments}
	router := campaignRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "/campaigns/current/import", salesWorkbook(t)))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCurrentCampaignNotFound(t *testing.T) {
	router := campaignRouter(&stubCampaignRepo{latestErr: mongo.ErrNoDocuments})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/campaigns/current", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCurrentCampaignRepositoryFailure(t *testing.T) {
	router := campaignRouter(&stubCampaignRepo{latestErr: errors.New("server selection timeout")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/campaigns/current", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetLeaderboardNotFound(t *testing.T) {
	router := campaignRouter(&stubCampaignRepo{latestErr: mongo.ErrNoDocuments})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/campaigns/current/leaderboard", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLeaderboardRepositoryFailure(t *testing.T) {
	router := campaignRouter(&stubCampaignRepo{latestErr: errors.New("server selection timeout")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/campaigns/current/leaderboard", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
