package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gazinassis/opshub-backend/internal/duel"
	"github.com/gazinassis/opshub-backend/internal/models"
	"github.com/gazinassis/opshub-backend/internal/repositories"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidGoal is returned when a campaign is saved with a non-positive goal
var ErrInvalidGoal = errors.New("goal value must be greater than zero")

// ErrMalformedImport marks an unreadable or wrongly-shaped spreadsheet.
// Callers use it to tell client mistakes apart from backend failures.
var ErrMalformedImport = errors.New("malformed spreadsheet")

// ImportResult summarises one spreadsheet import
type ImportResult struct {
	RowsParsed   int `json:"rows_parsed"`
	TeamAMatched int `json:"team_a_matched"`
	TeamBMatched int `json:"team_b_matched"`
}

// CampaignService handles sales-duel campaign business logic
type CampaignService struct {
	campaignRepo repositories.CampaignRepository
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(campaignRepo repositories.CampaignRepository) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
	}
}

// GetCurrentCampaign retrieves the active (most recently created) campaign
func (s *CampaignService) GetCurrentCampaign(ctx context.Context) (*models.Campaign, error) {
	return s.campaignRepo.FindLatest(ctx)
}

// GetCampaignByID retrieves a campaign by ID
func (s *CampaignService) GetCampaignByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	return s.campaignRepo.FindByID(ctx, id)
}

// GetAllCampaigns retrieves all campaigns with pagination
func (s *CampaignService) GetAllCampaigns(ctx context.Context, page, limit int) ([]*models.Campaign, error) {
	return s.campaignRepo.FindAll(ctx, page, limit)
}

// CreateCampaign creates a new campaign after validating the goal
func (s *CampaignService) CreateCampaign(ctx context.Context, req *models.CampaignRequest) (*models.Campaign, error) {
	if req.GoalValue <= 0 {
		return nil, ErrInvalidGoal
	}
	campaign := &models.Campaign{
		CampaignName: req.CampaignName,
		GoalValue:    req.GoalValue,
		TeamAName:    req.TeamAName,
		TeamBName:    req.TeamBName,
		TeamALogo:    req.TeamALogo,
		TeamBLogo:    req.TeamBLogo,
		TeamAMembers: req.TeamAMembers,
		TeamBMembers: req.TeamBMembers,
	}
	if campaign.TeamAMembers == nil {
		campaign.TeamAMembers = []models.Member{}
	}
	if campaign.TeamBMembers == nil {
		campaign.TeamBMembers = []models.Member{}
	}
	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// UpdateCampaign replaces the editable fields of a campaign, rosters included
func (s *CampaignService) UpdateCampaign(ctx context.Context, id primitive.ObjectID, req *models.CampaignRequest) (*models.Campaign, error) {
	if req.GoalValue <= 0 {
		return nil, ErrInvalidGoal
	}
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	campaign.CampaignName = req.CampaignName
	campaign.GoalValue = req.GoalValue
	campaign.TeamAName = req.TeamAName
	campaign.TeamBName = req.TeamBName
	campaign.TeamALogo = req.TeamALogo
	campaign.TeamBLogo = req.TeamBLogo
	campaign.TeamAMembers = req.TeamAMembers
	campaign.TeamBMembers = req.TeamBMembers
	if campaign.TeamAMembers == nil {
		campaign.TeamAMembers = []models.Member{}
	}
	if campaign.TeamBMembers == nil {
		campaign.TeamBMembers = []models.Member{}
	}
	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// DeleteCampaign deletes a campaign
func (s *CampaignService) DeleteCampaign(ctx context.Context, id primitive.ObjectID) error {
	return s.campaignRepo.Delete(ctx, id)
}

// GetLeaderboard derives the leaderboard view from the active campaign
func (s *CampaignService) GetLeaderboard(ctx context.Context) (*duel.Leaderboard, error) {
	campaign, err := s.campaignRepo.FindLatest(ctx)
	if err != nil {
		return nil, err
	}
	return duel.Compute(campaign, time.Now()), nil
}

// ImportSales reconciles the active campaign's rosters against an uploaded
// spreadsheet. The workbook is parsed fully before anything is persisted, so
// a malformed file never leaves partial writes behind.
func (s *CampaignService) ImportSales(ctx context.Context, file io.Reader) (*ImportResult, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheets", ErrMalformedImport)
	}
	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %v", ErrMalformedImport, sheets[0], err)
	}

	table := duel.ParseRows(rows)

	campaign, err := s.campaignRepo.FindLatest(ctx)
	if err != nil {
		return nil, err
	}

	teamA, matchedA := duel.Reconcile(campaign.TeamAMembers, table)
	teamB, matchedB := duel.Reconcile(campaign.TeamBMembers, table)

	if err := s.campaignRepo.UpdateMembers(ctx, campaign.ID, teamA, teamB); err != nil {
		return nil, err
	}

	return &ImportResult{
		RowsParsed:   table.Len(),
		TeamAMatched: matchedA,
		TeamBMatched: matchedB,
	}, nil
}
