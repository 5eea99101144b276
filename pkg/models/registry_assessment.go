package models

import "time"

// RegistryAssessment is a self-assessment of one registry risk item for the
// current cycle. It references the registry row by id only; there is no
// foreign key, so an assessment can outlive (or predate) its risk item.
//
// The assessor fields hold whatever the form submitted. The realAssessor
// fields capture the participant identity recorded separately by the client
// and are optional. Stored in registry_assessments.
type RegistryAssessment struct {
	ID             int `json:"id"`
	RiskRegistryID int `json:"riskRegistryId"`

	AssessorEmail      string `json:"assessorEmail"`
	AssessorName       string `json:"assessorName"`
	AssessorDepartment string `json:"assessorDepartment"`

	// Current-cycle scores. RiskLevel is always the product of the two.
	CurrentImpact     int `json:"currentImpact"`
	CurrentLikelihood int `json:"currentLikelihood"`
	RiskLevel         int `json:"riskLevel"`

	// Target scores after planned mitigation, optional.
	TargetImpact     *int `json:"targetImpact,omitempty"`
	TargetLikelihood *int `json:"targetLikelihood,omitempty"`
	TargetRiskLevel  *int `json:"targetRiskLevel,omitempty"`

	AssessmentNotes   *string `json:"assessmentNotes,omitempty"`
	MitigationActions *string `json:"mitigationActions,omitempty"`

	RealAssessorName       *string `json:"realAssessorName,omitempty"`
	RealAssessorDepartment *string `json:"realAssessorDepartment,omitempty"`
	RealAssessorEmail      *string `json:"realAssessorEmail,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
