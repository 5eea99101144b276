package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/riskworks/erm-engine/pkg/models"
	"github.com/riskworks/erm-engine/pkg/services"
	"github.com/riskworks/erm-engine/pkg/validation"
)

// RiskAssessmentHandler handles the legacy company-wide questionnaire
// HTTP requests.
type RiskAssessmentHandler struct {
	assessmentService services.AssessmentService
	logger            *zap.Logger
}

// NewRiskAssessmentHandler creates a new risk assessment handler.
func NewRiskAssessmentHandler(
	assessmentService services.AssessmentService,
	logger *zap.Logger,
) *RiskAssessmentHandler {
	return &RiskAssessmentHandler{
		assessmentService: assessmentService,
		logger:            logger,
	}
}

// RegisterRoutes registers the risk assessment handler's routes on the
// given mux.
func (h *RiskAssessmentHandler) RegisterRoutes(mux *http.ServeMux) {
	base := "/api/risk-assessments"

	mux.HandleFunc("POST "+base, h.Create)
	mux.HandleFunc("GET "+base, h.List)
	mux.HandleFunc("GET "+base+"/{id}", h.Get)
}

// Create handles POST /api/risk-assessments
func (h *RiskAssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var assessment models.RiskAssessment
	if err := json.NewDecoder(r.Body).Decode(&assessment); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := validation.Check(&assessment); err != nil {
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

	if err := h.assessmentService.CreateQuestionnaire(r.Context(), &assessment); err != nil {
		h.logger.Error("Failed to create risk assessment",
			zap.String("email", assessment.Email),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, &assessment); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// List handles GET /api/risk-assessments
func (h *RiskAssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	assessments, err := h.assessmentService.GetQuestionnaires(r.Context())
	if err != nil {
		h.logger.Error("Failed to list risk assessments", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, assessments); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/risk-assessments/{id}
func (h *RiskAssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseID(w, r, h.logger)
	if !ok {
		return
	}

	assessment, err := h.assessmentService.GetQuestionnaire(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get risk assessment",
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
