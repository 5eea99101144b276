package models

import "time"

// StrategicObjective is a top-level corporate objective for one assessment
// year. Reference data; rows are soft-deleted via is_active.
type StrategicObjective struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Leader    string    `json:"leader"`
	Year      int       `json:"year"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubStrategicObjective is a child objective under a StrategicObjective.
type SubStrategicObjective struct {
	ID                   int       `json:"id"`
	StrategicObjectiveID int       `json:"strategicObjectiveId"`
	Name                 string    `json:"name"`
	Year                 int       `json:"year"`
	IsActive             bool      `json:"isActive"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// RiskCategory is one of the taxonomy categories risks are filed under
// (策略/營運/財務/新興風險).
type RiskCategory struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Year        int       `json:"year"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StrategicRiskMapping links an objective and sub-objective to a risk
// category for one year.
type StrategicRiskMapping struct {
	ID                      int       `json:"id"`
	StrategicObjectiveID    int       `json:"strategicObjectiveId"`
	SubStrategicObjectiveID int       `json:"subStrategicObjectiveId"`
	RiskCategoryID          int       `json:"riskCategoryId"`
	Year                    int       `json:"year"`
	IsActive                bool      `json:"isActive"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`

	// Joined display names, populated on list reads.
	StrategicObjectiveName    string `json:"strategicObjectiveName,omitempty"`
	SubStrategicObjectiveName string `json:"subStrategicObjectiveName,omitempty"`
	RiskCategoryName          string `json:"riskCategoryName,omitempty"`
}
