package models

import "time"

// RiskAssessment is the legacy company-wide questionnaire: one row per
// respondent with an optional impact/likelihood pair per risk category.
// All pairs are optional; a respondent scores only the categories they
// have visibility into. Stored in risk_assessments.
type RiskAssessment struct {
	ID              int    `json:"id"`
	Email           string `json:"email" validate:"required,email"`
	Name            string `json:"name" validate:"required"`
	Department      string `json:"department" validate:"required"`
	Acknowledgement bool   `json:"acknowledgement" validate:"eq=true"`

	// Strategic risks
	CompetitionImpact      *int `json:"competitionImpact,omitempty" validate:"omitempty,min=1,max=5"`
	CompetitionLikelihood  *int `json:"competitionLikelihood,omitempty" validate:"omitempty,min=1,max=5"`
	MarketDemandImpact     *int `json:"marketDemandImpact,omitempty" validate:"omitempty,min=1,max=5"`
	MarketDemandLikelihood *int `json:"marketDemandLikelihood,omitempty" validate:"omitempty,min=1,max=5"`

	// Operational risks
	RawMaterialImpact                 *int `json:"rawMaterialImpact,omitempty" validate:"omitempty,min=1,max=5"`
	RawMaterialLikelihood             *int `json:"rawMaterialLikelihood,omitempty" validate:"omitempty,min=1,max=5"`
	MaterialShortageImpact            *int `json:"materialShortageImpact,omitempty" validate:"omitempty,min=1,max=5"`
	MaterialShortageLikelihood        *int `json:"materialShortageLikelihood,omitempty" validate:"omitempty,min=1,max=5"`
	NewProductDevelopmentImpact       *int `json:"newProductDevelopmentImpact,omitempty" validate:"omitempty,min=1,max=5"`
	NewProductDevelopmentLikelihood   *int `json:"newProductDevelopmentLikelihood,omitempty" validate:"omitempty,min=1,max=5"`

	// Financial risks
	CreditImpact          *int `json:"creditImpact,omitempty" validate:"omitempty,min=1,max=5"`
	CreditLikelihood      *int `json:"creditLikelihood,omitempty" validate:"omitempty,min=1,max=5"`
	CurrencyImpact        *int `json:"currencyImpact,omitempty" validate:"omitempty,min=1,max=5"`
	CurrencyLikelihood    *int `json:"currencyLikelihood,omitempty" validate:"omitempty,min=1,max=5"`
	FundingCostImpact     *int `json:"fundingCostImpact,omitempty" validate:"omitempty,min=1,max=5"`
	FundingCostLikelihood *int `json:"fundingCostLikelihood,omitempty" validate:"omitempty,min=1,max=5"`

	// Emerging risks
	GeopoliticalConflictImpact     *int `json:"geopoliticalConflictImpact,omitempty" validate:"omitempty,min=1,max=5"`
	GeopoliticalConflictLikelihood *int `json:"geopoliticalConflictLikelihood,omitempty" validate:"omitempty,min=1,max=5"`
	TechnologyColdWarImpact        *int `json:"technologyColdWarImpact,omitempty" validate:"omitempty,min=1,max=5"`
	TechnologyColdWarLikelihood    *int `json:"technologyColdWarLikelihood,omitempty" validate:"omitempty,min=1,max=5"`
	AiTransformationImpact         *int `json:"aiTransformationImpact,omitempty" validate:"omitempty,min=1,max=5"`
	AiTransformationLikelihood     *int `json:"aiTransformationLikelihood,omitempty" validate:"omitempty,min=1,max=5"`
	CarbonPricingImpact            *int `json:"carbonPricingImpact,omitempty" validate:"omitempty,min=1,max=5"`
	CarbonPricingLikelihood        *int `json:"carbonPricingLikelihood,omitempty" validate:"omitempty,min=1,max=5"`

	SubmittedAt time.Time `json:"submittedAt"`
}
