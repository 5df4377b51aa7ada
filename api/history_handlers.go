package api

import (
	"net/http"
	"strconv"
	"time"

	"citytick/models"
)

func parseIntQuery(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

type tickHistoryResponse struct {
	Ticks []models.TickRecord `json:"ticks"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
	Total int64               `json:"total"`
}

func (s *Server) handleTickHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "error.method")
		return
	}

	page := parseIntQuery(r, "page", 1)
	limit := parseIntQuery(r, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	var total int64
	if err := s.DB.Model(&models.TickRecord{}).Count(&total).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "error.storage")
		return
	}

	var ticks []models.TickRecord
	err := s.DB.Order("started_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&ticks).Error
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error.storage")
		return
	}

	writeJSON(w, http.StatusOK, tickHistoryResponse{
		Ticks: ticks,
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

type tickDetailResponse struct {
	Tick      models.TickRecord          `json:"tick"`
	Companies []models.CompanyStatistics `json:"companies"`
}

func (s *Server) handleTickDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "error.method")
		return
	}
	raw, ok := tickIDFromPath(r.URL.Path)
	if !ok {
		writeError(w, http.StatusNotFound, "error.notfound")
		return
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "error.validation.tick.id")
		return
	}

	var tick models.TickRecord
	if err := s.DB.First(&tick, id).Error; err != nil {
		writeError(w, http.StatusNotFound, "error.notfound")
		return
	}
	var companies []models.CompanyStatistics
	if err := s.DB.Where("tick_record_id = ?", tick.ID).Find(&companies).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "error.storage")
		return
	}

	writeJSON(w, http.StatusOK, tickDetailResponse{Tick: tick, Companies: companies})
}

type tickStatsResponse struct {
	Period             string  `json:"period"`
	Ticks              int     `json:"ticks"`
	FiresStarted       int     `json:"fires_started"`
	FiresExtinguished  int     `json:"fires_extinguished"`
	BuildingsCollapsed int     `json:"buildings_collapsed"`
	TotalNetProfit     int64   `json:"total_net_profit"`
	TotalTax           int64   `json:"total_tax"`
	AvgDurationMs      float64 `json:"avg_duration_ms"`
	TicksWithErrors    int     `json:"ticks_with_errors"`
}

func (s *Server) handleTickStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "error.method")
		return
	}

	period := 24 * time.Hour
	if raw := r.URL.Query().Get("period"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "error.validation.period")
			return
		}
		period = parsed
	}

	var ticks []models.TickRecord
	since := time.Now().UTC().Add(-period)
	if err := s.DB.Where("started_at >= ?", since).Find(&ticks).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "error.storage")
		return
	}

	resp := tickStatsResponse{Period: period.String(), Ticks: len(ticks)}
	var totalDuration int64
	for _, t := range ticks {
		resp.FiresStarted += t.FiresStarted
		resp.FiresExtinguished += t.FiresExtinguished
		resp.BuildingsCollapsed += t.BuildingsCollapsed
		resp.TotalNetProfit += t.TotalNetProfit
		resp.TotalTax += t.TotalTax
		totalDuration += t.DurationMs
		if len(t.Errors) > 0 {
			resp.TicksWithErrors++
		}
	}
	if len(ticks) > 0 {
		resp.AvgDurationMs = float64(totalDuration) / float64(len(ticks))
	}

	writeJSON(w, http.StatusOK, resp)
}
