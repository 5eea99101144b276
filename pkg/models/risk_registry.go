package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Response strategy values carried over from the prior assessment cycle
// (降低/移轉/接受/拒絕).
const (
	ResponseReduce   = "降低"
	ResponseTransfer = "移轉"
	ResponseAccept   = "接受"
	ResponseReject   = "拒絕"
)

// RiskRegistry is one risk item in the registry: strategic context, the
// scenario text, existing controls, and the prior-year scores at two
// organizational levels (unit vs. responsible unit). Rows are created by
// the import script and edited through the API. Stored in risk_registry.
type RiskRegistry struct {
	ID int `json:"id"`

	// Strategic information
	StrategicObjective    string `json:"strategicObjective" validate:"required"`
	SubObjective          string `json:"subObjective" validate:"required"`
	ResponsibleDepartment string `json:"responsibleDepartment" validate:"required"`
	RiskOwner             string `json:"riskOwner" validate:"required"`
	OperationalTarget     string `json:"operationalTarget" validate:"required"`
	SeedMember            string `json:"seedMember" validate:"required"`

	// Risk classification
	RiskCategory    string `json:"riskCategory" validate:"required"`
	Level1Index     string `json:"level1Index" validate:"required"`
	RiskEventSource string `json:"riskEventSource" validate:"required"`
	Level2Index     string `json:"level2Index" validate:"required"`
	RiskScenario    string `json:"riskScenario" validate:"required"`

	// Current risk management
	ExistingMeasures string  `json:"existingMeasures" validate:"required"`
	WarningIndicator *string `json:"warningIndicator,omitempty"`
	ActionIndicator  *string `json:"actionIndicator,omitempty"`
	Stakeholders     *string `json:"stakeholders,omitempty"`

	// Prior-year assessment, unit level
	UnitPossibility *int `json:"unitPossibility,omitempty" validate:"omitempty,min=1,max=5"`
	UnitImpact      *int `json:"unitImpact,omitempty" validate:"omitempty,min=1,max=5"`
	UnitRiskLevel   *int `json:"unitRiskLevel,omitempty" validate:"omitempty,min=1,max=25"`

	// Prior-year assessment, responsible-unit level
	ResponsiblePossibility *int `json:"responsiblePossibility,omitempty" validate:"omitempty,min=1,max=5"`
	ResponsibleImpact      *int `json:"responsibleImpact,omitempty" validate:"omitempty,min=1,max=5"`
	ResponsibleRiskLevel   *int `json:"responsibleRiskLevel,omitempty" validate:"omitempty,min=1,max=25"`

	// Risk response
	ResponseStrategy    *string `json:"responseStrategy,omitempty"`
	NewRiskMeasures     *string `json:"newRiskMeasures,omitempty"`
	ResponsibleUnit     *string `json:"responsibleUnit,omitempty"`
	NewWarningIndicator *string `json:"newWarningIndicator,omitempty"`
	NewActionIndicator  *string `json:"newActionIndicator,omitempty"`

	// Optimization
	OptimizationSuggestion *string          `json:"optimizationSuggestion,omitempty"`
	Notes                  *string          `json:"notes,omitempty"`
	WeightedRiskLevel      *decimal.Decimal `json:"weightedRiskLevel,omitempty"`
	AssessmentOptimization *string          `json:"assessmentOptimization,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RiskRegistryPatch is a partial update: nil fields are left unchanged.
// Applying any patch, even an empty one, refreshes the row's updated_at.
type RiskRegistryPatch struct {
	StrategicObjective    *string `json:"strategicObjective"`
	SubObjective          *string `json:"subObjective"`
	ResponsibleDepartment *string `json:"responsibleDepartment"`
	RiskOwner             *string `json:"riskOwner"`
	OperationalTarget     *string `json:"operationalTarget"`
	SeedMember            *string `json:"seedMember"`

	RiskCategory    *string `json:"riskCategory"`
	Level1Index     *string `json:"level1Index"`
	RiskEventSource *string `json:"riskEventSource"`
	Level2Index     *string `json:"level2Index"`
	RiskScenario    *string `json:"riskScenario"`

	ExistingMeasures *string `json:"existingMeasures"`
	WarningIndicator *string `json:"warningIndicator"`
	ActionIndicator  *string `json:"actionIndicator"`
	Stakeholders     *string `json:"stakeholders"`

	UnitPossibility *int `json:"unitPossibility" validate:"omitempty,min=1,max=5"`
	UnitImpact      *int `json:"unitImpact" validate:"omitempty,min=1,max=5"`
	UnitRiskLevel   *int `json:"unitRiskLevel" validate:"omitempty,min=1,max=25"`

	ResponsiblePossibility *int `json:"responsiblePossibility" validate:"omitempty,min=1,max=5"`
	ResponsibleImpact      *int `json:"responsibleImpact" validate:"omitempty,min=1,max=5"`
	ResponsibleRiskLevel   *int `json:"responsibleRiskLevel" validate:"omitempty,min=1,max=25"`

	ResponseStrategy    *string `json:"responseStrategy"`
	NewRiskMeasures     *string `json:"newRiskMeasures"`
	ResponsibleUnit     *string `json:"responsibleUnit"`
	NewWarningIndicator *string `json:"newWarningIndicator"`
	NewActionIndicator  *string `json:"newActionIndicator"`

	OptimizationSuggestion *string          `json:"optimizationSuggestion"`
	Notes                  *string          `json:"notes"`
	WeightedRiskLevel      *decimal.Decimal `json:"weightedRiskLevel"`
	AssessmentOptimization *string          `json:"assessmentOptimization"`
}
