package duel

import (
	"math"
	"sort"
	"time"

	"github.com/gazinassis/opshub-backend/internal/models"
)

// maxBusinessDays caps the pacing window: the remaining goal is spread over
// at most 16 business days (Monday to Saturday), a fixed business rule.
const maxBusinessDays = 16

// RankedMember is a roster member with its computed leaderboard position.
// Rank 0 means unranked: members without sales never receive a position.
type RankedMember struct {
	Name  string  `json:"name"`
	Team  string  `json:"team,omitempty"`
	Value float64 `json:"value"`
	Rank  int     `json:"rank"`
}

// Leaderboard is the view model derived from a campaign snapshot. It is
// recomputed on every read and never persisted.
type Leaderboard struct {
	CampaignName    string         `json:"campaign_name"`
	TeamAName       string         `json:"team_a_name"`
	TeamBName       string         `json:"team_b_name"`
	TeamATotal      float64        `json:"team_a_total"`
	TeamBTotal      float64        `json:"team_b_total"`
	TotalSales      float64        `json:"total_sales"`
	GoalValue       float64        `json:"goal_value"`
	ProgressPercent float64        `json:"progress_percent"`
	CampaignActive  bool           `json:"campaign_active"`
	LeadingTeam     string         `json:"leading_team"`
	TeamDifference  float64        `json:"team_difference"`
	TeamARanking    []RankedMember `json:"team_a_ranking"`
	TeamBRanking    []RankedMember `json:"team_b_ranking"`
	OverallRanking  []RankedMember `json:"overall_ranking"`
	RemainingValue  float64        `json:"remaining_value"`
	BusinessDays    int            `json:"business_days"`
	DailyTarget     float64        `json:"daily_target"`
}

// TeamTotal sums the accumulated sale values of a roster
func TeamTotal(roster []models.Member) float64 {
	var total float64
	for _, m := range roster {
		total += m.Value
	}
	return total
}

// ProgressPercent returns progress towards the goal clamped to [0, 100].
// A non-positive goal yields 0 rather than dividing by zero.
func ProgressPercent(totalSales, goalValue float64) float64 {
	if goalValue <= 0 {
		return 0
	}
	return math.Min(totalSales/goalValue*100, 100)
}

// BusinessDays counts business days (Monday to Saturday) from the given date
// forward, capped at maxBusinessDays.
func BusinessDays(from time.Time) int {
	days := 0
	for i := 0; i < 30; i++ {
		d := from.AddDate(0, 0, i)
		if d.Weekday() >= time.Monday && d.Weekday() <= time.Saturday {
			days++
			if days >= maxBusinessDays {
				break
			}
		}
	}
	return days
}

// Compute derives the full leaderboard view from a campaign snapshot. The
// reference date feeds the pacing window and is normally time.Now().
func Compute(c *models.Campaign, now time.Time) *Leaderboard {
	teamATotal := TeamTotal(c.TeamAMembers)
	teamBTotal := TeamTotal(c.TeamBMembers)
	totalSales := teamATotal + teamBTotal

	// Strict inequality both ways: equal totals crown nobody.
	leadingTeam := ""
	if teamATotal > teamBTotal {
		leadingTeam = c.TeamAName
	} else if teamBTotal > teamATotal {
		leadingTeam = c.TeamBName
	}

	merged := make([]RankedMember, 0, len(c.TeamAMembers)+len(c.TeamBMembers))
	merged = append(merged, tagTeam(c.TeamAMembers, c.TeamAName)...)
	merged = append(merged, tagTeam(c.TeamBMembers, c.TeamBName)...)

	remaining := math.Max(0, c.GoalValue-totalSales)
	businessDays := BusinessDays(now)
	dailyTarget := 0.0
	if businessDays > 0 {
		dailyTarget = remaining / float64(businessDays)
	}

	return &Leaderboard{
		CampaignName:    c.CampaignName,
		TeamAName:       c.TeamAName,
		TeamBName:       c.TeamBName,
		TeamATotal:      teamATotal,
		TeamBTotal:      teamBTotal,
		TotalSales:      totalSales,
		GoalValue:       c.GoalValue,
		ProgressPercent: ProgressPercent(totalSales, c.GoalValue),
		CampaignActive:  totalSales >= c.GoalValue,
		LeadingTeam:     leadingTeam,
		TeamDifference:  math.Abs(teamATotal - teamBTotal),
		TeamARanking:    Rank(tagTeam(c.TeamAMembers, c.TeamAName)),
		TeamBRanking:    Rank(tagTeam(c.TeamBMembers, c.TeamBName)),
		OverallRanking:  Rank(merged),
		RemainingValue:  remaining,
		BusinessDays:    businessDays,
		DailyTarget:     dailyTarget,
	}
}

// Rank sorts members by value descending and assigns positions 1..N to those
// with sales. The position of a member is that of the first entry sharing its
// exact name and value, so duplicates report the same rank. Zero-value
// members keep rank 0 and sort after everyone else.
func Rank(members []RankedMember) []RankedMember {
	sorted := make([]RankedMember, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	withSales := make([]RankedMember, 0, len(sorted))
	for _, m := range sorted {
		if m.Value > 0 {
			withSales = append(withSales, m)
		}
	}

	for i := range sorted {
		sorted[i].Rank = 0
		if sorted[i].Value <= 0 {
			continue
		}
		for pos, m := range withSales {
			if m.Name == sorted[i].Name && m.Value == sorted[i].Value {
				sorted[i].Rank = pos + 1
				break
			}
		}
	}
	return sorted
}

func tagTeam(members []models.Member, team string) []RankedMember {
	tagged := make([]RankedMember, len(members))
	for i, m := range members {
		tagged[i] = RankedMember{Name: m.Name, Team: team, Value: m.Value}
	}
	return tagged
}
