package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/riskworks/erm-engine/pkg/models"
	"github.com/riskworks/erm-engine/pkg/services"
	"github.com/riskworks/erm-engine/pkg/validation"
)

// ============================================================================
// Request Types
// ============================================================================

// CreateStrategicObjectiveRequest for POST /api/strategic-objectives
type CreateStrategicObjectiveRequest struct {
	Name   string `json:"name" validate:"required"`
	Leader string `json:"leader" validate:"required"`
	Year   int    `json:"year" validate:"omitempty,min=2000,max=2100"`
}

// CreateSubObjectiveRequest for POST /api/sub-strategic-objectives
type CreateSubObjectiveRequest struct {
	StrategicObjectiveID int    `json:"strategicObjectiveId" validate:"required,min=1"`
	Name                 string `json:"name" validate:"required"`
	Year                 int    `json:"year" validate:"omitempty,min=2000,max=2100"`
}

// CreateRiskCategoryRequest for POST /api/risk-categories
type CreateRiskCategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	Year        int     `json:"year" validate:"omitempty,min=2000,max=2100"`
}

// CreateMappingRequest for POST /api/strategic-mappings
type CreateMappingRequest struct {
	StrategicObjectiveID    int `json:"strategicObjectiveId" validate:"required,min=1"`
	SubStrategicObjectiveID int `json:"subStrategicObjectiveId" validate:"required,min=1"`
	RiskCategoryID          int `json:"riskCategoryId" validate:"required,min=1"`
	Year                    int `json:"year" validate:"omitempty,min=2000,max=2100"`
}

// ============================================================================
// Handler
// ============================================================================

// StrategicHandler handles strategic objective reference data HTTP requests.
type StrategicHandler struct {
	strategicService services.StrategicService
	logger           *zap.Logger
}

// NewStrategicHandler creates a new strategic reference data handler.
func NewStrategicHandler(
	strategicService services.StrategicService,
	logger *zap.Logger,
) *StrategicHandler {
	return &StrategicHandler{
		strategicService: strategicService,
		logger:           logger,
	}
}

// RegisterRoutes registers the strategic handler's routes on the given mux.
func (h *StrategicHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/strategic-objectives", h.ListObjectives)
	mux.HandleFunc("POST /api/strategic-objectives", h.CreateObjective)
	mux.HandleFunc("GET /api/sub-strategic-objectives/{id}", h.ListSubObjectives)
	mux.HandleFunc("POST /api/sub-strategic-objectives", h.CreateSubObjective)
	mux.HandleFunc("GET /api/risk-categories", h.ListCategories)
	mux.HandleFunc("POST /api/risk-categories", h.CreateCategory)
	mux.HandleFunc("GET /api/strategic-mappings", h.ListMappings)
	mux.HandleFunc("POST /api/strategic-mappings", h.CreateMapping)
	mux.HandleFunc("GET /api/strategic-mappings/{objectiveId}/{subObjectiveId}", h.ListMappingsByPair)
}

// ListObjectives handles GET /api/strategic-objectives?year=
func (h *StrategicHandler) ListObjectives(w http.ResponseWriter, r *http.Request) {
	year, ok := ParseYear(w, r, h.logger)
	if !ok {
		return
	}

	objectives, err := h.strategicService.GetObjectives(r.Context(), year)
	if err != nil {
		h.logger.Error("Failed to list strategic objectives",
			zap.Int("year", year),
			zap.Error(err))
		h.writeInternalError(w)
		return
	}

	if err := WriteJSON(w, http.StatusOK, objectives); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// CreateObjective handles POST /api/strategic-objectives
func (h *StrategicHandler) CreateObjective(w http.ResponseWriter, r *http.Request) {
	var req CreateStrategicObjectiveRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	objective := &models.StrategicObjective{
		Name:   req.Name,
		Leader: req.Leader,
		Year:   yearOrCurrent(req.Year),
	}

	if err := h.strategicService.CreateObjective(r.Context(), objective); err != nil {
		h.logger.Error("Failed to create strategic objective",
			zap.String("name", req.Name),
			zap.Error(err))
		h.writeInternalError(w)
		return
	}

	if err := WriteJSON(w, http.StatusCreated, objective); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListSubObjectives handles GET /api/sub-strategic-objectives/{id}?year=
// where {id} is the parent strategic objective.
func (h *StrategicHandler) ListSubObjectives(w http.ResponseWriter, r *http.Request) {
	parentID, ok := ParseID(w, r, h.logger)
	if !ok {
		return
	}
	year, ok := ParseYear(w, r, h.logger)
	if !ok {
		return
	}

	subs, err := h.strategicService.GetSubObjectives(r.Context(), parentID, year)
	if err != nil {
		h.logger.Error("Failed to list sub-strategic objectives",
			zap.Int("strategic_objective_id", parentID),
			zap.Int("year", year),
			zap.Error(err))
		h.writeInternalError(w)
		return
	}

	if err := WriteJSON(w, http.StatusOK, subs); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// CreateSubObjective handles POST /api/sub-strategic-objectives
func (h *StrategicHandler) CreateSubObjective(w http.ResponseWriter, r *http.Request) {
	var req CreateSubObjectiveRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	sub := &models.SubStrategicObjective{
		StrategicObjectiveID: req.StrategicObjectiveID,
		Name:                 req.Name,
		Year:                 yearOrCurrent(req.Year),
	}

	if err := h.strategicService.CreateSubObjective(r.Context(), sub); err != nil {
		h.logger.Error("Failed to create sub-strategic objective",
			zap.Int("strategic_objective_id", req.StrategicObjectiveID),
			zap.String("name", req.Name),
			zap.Error(err))
		h.writeInternalError(w)
		return
	}

	if err := WriteJSON(w, http.StatusCreated, sub); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListCategories handles GET /api/risk-categories?year=
func (h *StrategicHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	year, ok := ParseYear(w, r, h.logger)
	if !ok {
		return
	}

	categories, err := h.strategicService.GetCategories(r.Context(), year)
	if err != nil {
		h.logger.Error("Failed to list risk categories",
			zap.Int("year", year),
			zap.Error(err))
		h.writeInternalError(w)
		return
	}

	if err := WriteJSON(w, http.StatusOK, categories); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// CreateCategory handles POST /api/risk-categories
func (h *StrategicHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateRiskCategoryRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	category := &models.RiskCategory{
		Name:        req.Name,
		Description: req.Description,
		Year:        yearOrCurrent(req.Year),
	}

	if err := h.strategicService.CreateCategory(r.Context(), category); err != nil {
		h.logger.Error("Failed to create risk category",
			zap.String("name", req.Name),
			zap.Error(err))
		h.writeInternalError(w)
		return
	}

	if err := WriteJSON(w, http.StatusCreated, category); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListMappings handles GET /api/strategic-mappings?year=
func (h *StrategicHandler) ListMappings(w http.ResponseWriter, r *http.Request) {
	year, ok := ParseYear(w, r, h.logger)
	if !ok {
		return
	}

	mappings, err := h.strategicService.GetMappings(r.Context(), year)
	if err != nil {
		h.logger.Error("Failed to list strategic mappings",
			zap.Int("year", year),
			zap.Error(err))
		h.writeInternalError(w)
		return
	}

	if err := WriteJSON(w, http.StatusOK, mappings); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// CreateMapping handles POST /api/strategic-mappings
func (h *StrategicHandler) CreateMapping(w http.ResponseWriter, r *http.Request) {
	var req CreateMappingRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	mapping := &models.StrategicRiskMapping{
		StrategicObjectiveID:    req.StrategicObjectiveID,
		SubStrategicObjectiveID: req.SubStrategicObjectiveID,
		RiskCategoryID:          req.RiskCategoryID,
		Year:                    yearOrCurrent(req.Year),
	}

	if err := h.strategicService.CreateMapping(r.Context(), mapping); err != nil {
		h.logger.Error("Failed to create strategic mapping",
			zap.Int("strategic_objective_id", req.StrategicObjectiveID),
			zap.Int("sub_strategic_objective_id", req.SubStrategicObjectiveID),
			zap.Int("risk_category_id", req.RiskCategoryID),
			zap.Error(err))
		h.writeInternalError(w)
		return
	}

	if err := WriteJSON(w, http.StatusCreated, mapping); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// ListMappingsByPair handles
// GET /api/strategic-mappings/{objectiveId}/{subObjectiveId}?year=
func (h *StrategicHandler) ListMappingsByPair(w http.ResponseWriter, r *http.Request) {
	objectiveID, ok := parseIntParam(w, r, "objectiveId", h.logger)
	if !ok {
		return
	}
	subObjectiveID, ok := parseIntParam(w, r, "subObjectiveId", h.logger)
	if !ok {
		return
	}
	year, ok := ParseYear(w, r, h.logger)
	if !ok {
		return
	}

	mappings, err := h.strategicService.GetMappingsByPair(r.Context(), objectiveID, subObjectiveID, year)
	if err != nil {
		h.logger.Error("Failed to list strategic mappings for pair",
			zap.Int("strategic_objective_id", objectiveID),
			zap.Int("sub_strategic_objective_id", subObjectiveID),
			zap.Int("year", year),
			zap.Error(err))
		h.writeInternalError(w)
		return
	}

	if err := WriteJSON(w, http.StatusOK, mappings); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *StrategicHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return false
	}
	if err := validation.Check(req); err != nil {
		if verr, ok := validation.AsError(err); ok {
			if err := ValidationErrorResponse(w, verr); err != nil {
				h.logger.Error("Failed to write validation response", zap.Error(err))
			}
			return false
		}
		h.logger.Error("Validation failed unexpectedly", zap.Error(err))
		h.writeInternalError(w)
		return false
	}
	return true
}

func (h *StrategicHandler) writeInternalError(w http.ResponseWriter) {
	if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}

// yearOrCurrent substitutes the current calendar year when the request
// omitted one.
func yearOrCurrent(year int) int {
	if year == 0 {
		return time.Now().Year()
	}
	return year
}
