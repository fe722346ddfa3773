package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member represents one salesperson inside a duel roster
type Member struct {
	Name  string  `bson:"name" json:"name"`
	Value float64 `bson:"value" json:"value"`
}

// Campaign represents one sales-duel configuration: a goal and two named
// team rosters. The most recently created campaign is the active one.
type Campaign struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CampaignName string             `bson:"campaignName" json:"campaign_name"`
	GoalValue    float64            `bson:"goalValue" json:"goal_value"`
	TeamAName    string             `bson:"teamAName" json:"team_a_name"`
	TeamBName    string             `bson:"teamBName" json:"team_b_name"`
	TeamALogo    string             `bson:"teamALogo,omitempty" json:"team_a_logo,omitempty"`
	TeamBLogo    string             `bson:"teamBLogo,omitempty" json:"team_b_logo,omitempty"`
	TeamAMembers []Member           `bson:"teamAMembers" json:"team_a_members"`
	TeamBMembers []Member           `bson:"teamBMembers" json:"team_b_members"`
	CreatedAt    time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updated_at"`
}

// CampaignRequest defines the structure for campaign create/update requests
type CampaignRequest struct {
	CampaignName string   `json:"campaign_name" binding:"required"`
	GoalValue    float64  `json:"goal_value" binding:"required"`
	TeamAName    string   `json:"team_a_name" binding:"required"`
	TeamBName    string   `json:"team_b_name" binding:"required"`
	TeamALogo    string   `json:"team_a_logo"`
	TeamBLogo    string   `json:"team_b_logo"`
	TeamAMembers []Member `json:"team_a_members"`
	TeamBMembers []Member `json:"team_b_members"`
}
