// ABOUTME: Handlers for per-day records (summaries, weight) and the stats and today views.
// ABOUTME: Summary and weight writes are upserts keyed by calendar date.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harperreed/lifedash/internal/dashboard"
	"github.com/harperreed/lifedash/internal/models"
)

type summaryRequest struct {
	Date          string  `json:"summary_date" validate:"required"`
	Highlight     *string `json:"highlight"`
	Challenge     *string `json:"challenge"`
	EnergyLevel   *int    `json:"energy_level"`
	SleepQuality  *int    `json:"sleep_quality"`
	Gratitude     *string `json:"gratitude"`
	TomorrowFocus *string `json:"tomorrow_focus"`
}

func (s *Server) upsertSummary(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	summary, err := s.repo.UpsertSummary(r.Context(), &models.DailySummary{
		Date:          date,
		Highlight:     req.Highlight,
		Challenge:     req.Challenge,
		EnergyLevel:   req.EnergyLevel,
		SleepQuality:  req.SleepQuality,
		Gratitude:     req.Gratitude,
		TomorrowFocus: req.TomorrowFocus,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) listSummaries(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	summaries, err := s.repo.ListSummaries(r.Context(), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) getSummary(w http.ResponseWriter, r *http.Request) {
	date, err := models.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	summary, err := s.repo.GetSummary(r.Context(), date)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

type weightRequest struct {
	WeightKg *float64 `json:"weight_kg" validate:"required,gt=0"`
	Date     *string  `json:"logged_at"`
	Notes    *string  `json:"notes"`
}

func (s *Server) upsertWeight(w http.ResponseWriter, r *http.Request) {
	var req weightRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	date := s.today()
	if req.Date != nil && *req.Date != "" {
		parsed, err := models.ParseDate(*req.Date)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		date = parsed
	}

	entry := models.NewWeightLog(*req.WeightKg, date)
	entry.Notes = req.Notes
	stored, err := s.repo.UpsertWeight(r.Context(), entry)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (s *Server) listWeight(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 30)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	since := s.today().AddDays(-days)
	entries, err := s.repo.ListWeights(r.Context(), &since)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) latestWeight(w http.ResponseWriter, r *http.Request) {
	entry, err := s.repo.LatestWeight(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) deleteWeight(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.repo.DeleteWeight)
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := dashboard.BuildStats(r.Context(), s.repo, s.localNow())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) getToday(w http.ResponseWriter, r *http.Request) {
	today, err := dashboard.BuildToday(r.Context(), s.repo, s.localNow())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, today)
}
