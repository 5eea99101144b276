package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/riskworks/erm-engine/pkg/apperrors"
	"github.com/riskworks/erm-engine/pkg/models"
	"github.com/riskworks/erm-engine/pkg/services"
	"github.com/riskworks/erm-engine/pkg/validation"
)

// RiskRegistryHandler handles risk registry HTTP requests.
type RiskRegistryHandler struct {
	registryService services.RegistryService
	logger          *zap.Logger
}

// NewRiskRegistryHandler creates a new risk registry handler.
func NewRiskRegistryHandler(
	registryService services.RegistryService,
	logger *zap.Logger,
) *RiskRegistryHandler {
	return &RiskRegistryHandler{
		registryService: registryService,
		logger:          logger,
	}
}

// RegisterRoutes registers the risk registry handler's routes on the given mux.
func (h *RiskRegistryHandler) RegisterRoutes(mux *http.ServeMux) {
	base := "/api/risk-registry"

	mux.HandleFunc("POST "+base, h.Create)
	mux.HandleFunc("GET "+base, h.List)
	mux.HandleFunc("GET "+base+"/{id}", h.Get)
	mux.HandleFunc("PUT "+base+"/{id}", h.Update)
	mux.HandleFunc("DELETE "+base+"/{id}", h.Delete)
	mux.HandleFunc("GET "+base+"/{id}/analysis", h.Analyze)
}

// Create handles POST /api/risk-registry
func (h *RiskRegistryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var entry models.RiskRegistry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := validation.Check(&entry); err != nil {
		h.writeValidationOrInternal(w, err)
		return
	}

	if err := h.registryService.CreateEntry(r.Context(), &entry); err != nil {
		h.logger.Error("Failed to create risk registry entry", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, &entry); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// List handles GET /api/risk-registry
func (h *RiskRegistryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.registryService.GetEntries(r.Context())
	if err != nil {
		h.logger.Error("Failed to list risk registry entries", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, entries); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/risk-registry/{id}
func (h *RiskRegistryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseID(w, r, h.logger)
	if !ok {
		return
	}

	entry, err := h.registryService.GetEntry(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to get risk registry entry",
			zap.Int("id", id),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if entry == nil {
		if err := ErrorResponse(w, http.StatusNotFound, "Risk registry entry not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, entry); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Update handles PUT /api/risk-registry/{id}
func (h *RiskRegistryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseID(w, r, h.logger)
	if !ok {
		return
	}

	var patch models.RiskRegistryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid request body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := validation.Check(&patch); err != nil {
		h.writeValidationOrInternal(w, err)
		return
	}

	entry, err := h.registryService.UpdateEntry(r.Context(), id, &patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if err := ErrorResponse(w, http.StatusNotFound, "Risk registry entry not found"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Failed to update risk registry entry",
			zap.Int("id", id),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, entry); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Delete handles DELETE /api/risk-registry/{id}
func (h *RiskRegistryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseID(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.registryService.DeleteEntry(r.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if err := ErrorResponse(w, http.StatusNotFound, "Risk registry entry not found"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Failed to delete risk registry entry",
			zap.Int("id", id),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Risk registry entry deleted successfully",
	}); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Analyze handles GET /api/risk-registry/{id}/analysis
func (h *RiskRegistryHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseID(w, r, h.logger)
	if !ok {
		return
	}

	analysis, err := h.registryService.AnalyzeEntry(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to analyze risk registry entry",
			zap.Int("id", id),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	if analysis == nil {
		if err := ErrorResponse(w, http.StatusNotFound, "Risk registry entry not found"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, analysis); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *RiskRegistryHandler) writeValidationOrInternal(w http.ResponseWriter, err error) {
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
}
