package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/riskworks/erm-engine/pkg/models"
	"github.com/riskworks/erm-engine/pkg/services"
	"github.com/riskworks/erm-engine/pkg/validation"
)

// CreateRegistryAssessmentRequest for POST /api/registry-assessments.
// riskLevel and targetRiskLevel are intentionally absent; the server
// computes both from the submitted scores.
type CreateRegistryAssessmentRequest struct {
	RiskRegistryID int `json:"riskRegistryId" validate:"required,min=1"`

	AssessorEmail      string `json:"assessorEmail" validate:"required,email"`
	AssessorName       string `json:"assessorName" validate:"required"`
	AssessorDepartment string `json:"assessorDepartment" validate:"required"`

	CurrentImpact     int `json:"currentImpact" validate:"required,min=1,max=5"`
	CurrentLikelihood int `json:"currentLikelihood" validate:"required,min=1,max=5"`

	TargetImpact     *int `json:"targetImpact,omitempty" validate:"omitempty,min=1,max=5"`
	TargetLikelihood *int `json:"targetLikelihood,omitempty" validate:"omitempty,min=1,max=5"`

	AssessmentNotes   *string `json:"assessmentNotes,omitempty"`
	MitigationActions *string `json:"mitigationActions,omitempty"`

	RealAssessorName       *string `json:"realAssessorName,omitempty"`
	RealAssessorDepartment *string `json:"realAssessorDepartment,omitempty"`
	RealAssessorEmail      *string `json:"realAssessorEmail,omitempty" validate:"omitempty,email"`
}

// RegistryAssessmentHandler handles registry self-assessment HTTP requests.
type RegistryAssessmentHandler struct {
	assessmentService services.AssessmentService
	logger            *zap.Logger
}

// NewRegistryAssessmentHandler creates a new registry assessment handler.
func NewRegistryAssessmentHandler(
	assessmentService services.AssessmentService,
	logger *zap.Logger,
) *RegistryAssessmentHandler {
	return &RegistryAssessmentHandler{
		assessmentService: assessmentService,
		logger:            logger,
	}
}

// RegisterRoutes registers the registry assessment handler's routes on the
// given mux.
func (h *RegistryAssessmentHandler) RegisterRoutes(mux *http.ServeMux) {
	base := "/api/registry-assessments"

	mux.HandleFunc("POST "+base, h.Create)
	mux.HandleFunc("GET "+base, h.List)
	mux.HandleFunc("GET "+base+"/{id}", h.Get)
	mux.HandleFunc("GET "+base+"/risk/{riskId}", h.ListByRisk)
}

// Create handles POST /api/registry-assessments
func (h *RegistryAssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRegistryAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := validation.Check(&req); err != nil {
		if verr, ok := validation.AsError(err); ok {
			if err := ValidationErrorResponse(w, verr); err != nil {
				h.logger.Error("Failed to write validation response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Validation failed unexpectedly", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	assessment := &models.RegistryAssessment{
		RiskRegistryID:         req.RiskRegistryID,
		AssessorEmail:          req.AssessorEmail,
		AssessorName:           req.AssessorName,
		AssessorDepartment:     req.AssessorDepartment,
		CurrentImpact:          req.CurrentImpact,
		CurrentLikelihood:      req.CurrentLikelihood,
		TargetImpact:           req.TargetImpact,
		TargetLikelihood:       req.TargetLikelihood,
		AssessmentNotes:        req.AssessmentNotes,
		MitigationActions:      req.MitigationActions,
		RealAssessorName:       req.RealAssessorName,
		RealAssessorDepartment: req.RealAssessorDepartment,
		RealAssessorEmail:      req.RealAssessorEmail,
	}

	if err := h.assessmentService.CreateRegistryAssessment(r.Context(), assessment); err != nil {
		h.logger.Error("Failed to create registry assessment",
			zap.Int("risk_registry_id", req.RiskRegistryID),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, assessment); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// List handles GET /api/registry-assessments
func (h *RegistryAssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	assessments, err := h.assessmentService.GetRegistryAssessments(r.Context())
	if err != nil {
		h.logger.Error("Failed to list registry assessments", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, assessments); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/registry-assessments/{id}
func (h *RegistryAssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseID(w, r, h.logger)
	if !ok {
		return
	}

	assessment, err := h.assessmentService.GetRegistryAssessment(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get registry assessment",
			zap.Int("id", id),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if assessment == nil {
		if err := ErrorResponse(w, http.StatusNotFound, "Assessment not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, assessment); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListByRisk handles GET /api/registry-assessments/risk/{riskId}
func (h *RegistryAssessmentHandler) ListByRisk(w http.ResponseWriter, r *http.Request) {
	riskID, ok := parseIntParam(w, r, "riskId", h.logger)
	if !ok {
		return
	}

	assessments, err := h.assessmentService.GetRegistryAssessmentsByRisk(r.Context(), riskID)
	if err != nil {
		h.logger.Error("Failed to list assessments for risk",
			zap.Int("risk_registry_id", riskID),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, assessments); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
