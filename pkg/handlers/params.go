package handlers

import (
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ParseID extracts and validates the integer {id} path parameter.
// Returns the parsed value and true on success, or 0 and false after
// writing an error response.
func ParseID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (int, bool) {
	return parseIntParam(w, r, "id", logger)
}

func parseIntParam(w http.ResponseWriter, r *http.Request, name string, logger *zap.Logger) (int, bool) {
	raw := r.PathValue(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		logger.Warn("Invalid path parameter",
			zap.String("param", name),
			zap.String("value", raw))
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid "+name+" parameter"); err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
		return 0, false
	}
	return id, true
}

// ParseYear reads the optional ?year= query parameter, defaulting to the
// current calendar year. Returns 0 and false after writing an error response
// when the value is present but not a number.
func ParseYear(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("Invalid year query parameter", zap.String("value", raw))
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid year parameter"); err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
		return 0, false
	}
	return year, true
}
