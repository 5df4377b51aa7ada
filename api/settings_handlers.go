package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"citytick/game/settings"
)

type settingsResponse struct {
	Values      map[string]float64        `json:"values"`
	ValidRanges map[string]settings.Range `json:"valid_ranges"`
	UpdatedAt   time.Time                 `json:"updated_at"`
	UpdatedBy   string                    `json:"updated_by"`
}

type settingsUpdateResponse struct {
	Accepted []string           `json:"accepted"`
	Values   map[string]float64 `json:"values"`
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		current := s.Settings.Get()
		writeJSON(w, http.StatusOK, settingsResponse{
			Values:      settings.Values(current),
			ValidRanges: settings.Ranges(),
			UpdatedAt:   current.UpdatedAt,
			UpdatedBy:   current.UpdatedBy,
		})

	case http.MethodPut:
		var req UpdateSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "error.request.body")
			return
		}
		if err := req.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		updated, err := s.Settings.Update(req.Actor, req.Fields)
		if err != nil {
			writeSettingsError(w, err)
			return
		}

		accepted := make([]string, 0, len(req.Fields))
		for name := range req.Fields {
			accepted = append(accepted, name)
		}
		writeJSON(w, http.StatusOK, settingsUpdateResponse{
			Accepted: accepted,
			Values:   settings.Values(updated),
		})

	default:
		writeError(w, http.StatusMethodNotAllowed, "error.method")
	}
}

func (s *Server) handleSettingsReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "error.method")
		return
	}
	var req ResetSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "error.request.body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reset, err := s.Settings.Reset(req.Actor)
	if err != nil {
		writeSettingsError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settingsResponse{
		Values:      settings.Values(reset),
		ValidRanges: settings.Ranges(),
		UpdatedAt:   reset.UpdatedAt,
		UpdatedBy:   reset.UpdatedBy,
	})
}

func (s *Server) handleSettingsChanges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "error.method")
		return
	}
	changes, err := s.Settings.Changes(parseIntQuery(r, "limit", 20))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error.storage")
		return
	}
	writeJSON(w, http.StatusOK, changes)
}

// writeSettingsError maps provider errors to responses: range and unknown
// field violations surface the offending field and its valid range.
func writeSettingsError(w http.ResponseWriter, err error) {
	var rangeErr *settings.ValidationError
	if errors.As(err, &rangeErr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: rangeErr.Error(),
			Field: &fieldError{
				Name:  rangeErr.Field,
				Value: rangeErr.Value,
				Min:   rangeErr.Min,
				Max:   rangeErr.Max,
			},
		})
		return
	}
	var unknownErr *settings.UnknownFieldError
	if errors.As(err, &unknownErr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: unknownErr.Error(),
			Field: &fieldError{Name: unknownErr.Field},
		})
		return
	}
	writeError(w, http.StatusInternalServerError, "error.storage")
}
