package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "github.com/1cbyc/mt5-risk-calculator/internal/errors"
	"github.com/1cbyc/mt5-risk-calculator/internal/simulation"
)

// errorResponse is the JSON error body. The field name matches the original
// web API so existing clients keep working.
type errorResponse struct {
	Detail string `json:"detail"`
}

// SimulateHandler handles POST /api/simulate.
func (s *Server) SimulateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		// Missing fields keep the configured defaults.
		params := s.defaults
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&params); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
			return
		}

		result, err := simulation.Run(params)
		if err != nil {
			var validationErr *apperrors.ValidationError
			if apperrors.As(err, &validationErr) {
				writeError(w, http.StatusUnprocessableEntity, validationErr.Message)
				return
			}
			if apperrors.Is(err, apperrors.ErrDiverged) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			s.logger.Error().Err(err).Msg("Simulation failed")
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// HealthHandler handles GET /health.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
