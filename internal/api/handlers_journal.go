// ABOUTME: Handlers for reminders and the food, training and mental-health logs.
// ABOUTME: Optional timestamps accept RFC3339 or local date-times in the server's zone.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/storage"
)

type reminderRequest struct {
	Text   string                 `json:"text" validate:"required"`
	DueAt  *string                `json:"due_at"`
	Status *models.ReminderStatus `json:"status"`
}

type reminderPatch struct {
	Text   *string                `json:"text" validate:"omitempty,min=1"`
	DueAt  *string                `json:"due_at"`
	Status *models.ReminderStatus `json:"status"`
}

// optionalTime parses an optional timestamp in the server's zone.
func (s *Server) optionalTime(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := models.ParseTime(*raw, s.loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// loggedAt parses an optional logged_at, leaving the zero time for "now".
func (s *Server) loggedAt(raw *string) (time.Time, error) {
	t, err := s.optionalTime(raw)
	if err != nil || t == nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// dayFilter turns ?date=YYYY-MM-DD into a local-day range; no date means everything.
func (s *Server) dayFilter(r *http.Request) (storage.TimeRange, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return storage.TimeRange{}, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return storage.TimeRange{}, err
	}
	return storage.DayRange(d, s.loc), nil
}

func (s *Server) createReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	due, err := s.optionalTime(req.DueAt)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	rem := &models.Reminder{Text: req.Text, DueAt: due, Status: models.ReminderPending}
	if req.Status != nil {
		rem.Status = *req.Status
		if rem.Status == models.ReminderDone {
			done := s.now().UTC()
			rem.CompletedAt = &done
		}
	}
	if err := s.repo.CreateReminder(r.Context(), rem); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rem)
}

func (s *Server) listReminders(w http.ResponseWriter, r *http.Request) {
	var status *models.ReminderStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		st, err := models.ParseReminderStatus(raw)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		status = &st
	}
	reminders, err := s.repo.ListReminders(r.Context(), status)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reminders)
}

func (s *Server) updateReminder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var req reminderPatch
	present, err := s.decodePatch(w, r, &req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	due, err := s.optionalTime(req.DueAt)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	_, hasDue := present["due_at"]

	update := models.ReminderUpdate{
		Text:       req.Text,
		DueAt:      due,
		ClearDueAt: hasDue && due == nil,
		Status:     req.Status,
	}
	rem, err := s.repo.UpdateReminder(r.Context(), id, update)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rem)
}

func (s *Server) deleteReminder(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.repo.DeleteReminder)
}

type foodRequest struct {
	Description string  `json:"description" validate:"required"`
	MealType    *string `json:"meal_type"`
	Notes       *string `json:"notes"`
	LoggedAt    *string `json:"logged_at"`
}

func (s *Server) createFood(w http.ResponseWriter, r *http.Request) {
	var req foodRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	at, err := s.loggedAt(req.LoggedAt)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	entry := &models.FoodLog{Description: req.Description, MealType: req.MealType, Notes: req.Notes, LoggedAt: at}
	if err := s.repo.CreateFoodLog(r.Context(), entry); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) listFood(w http.ResponseWriter, r *http.Request) {
	rng, err := s.dayFilter(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	entries, err := s.repo.ListFoodLogs(r.Context(), rng)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) deleteFood(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.repo.DeleteFoodLog)
}

type trainingRequest struct {
	Activity        string  `json:"activity" validate:"required"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gte=0"`
	Intensity       *string `json:"intensity"`
	Notes           *string `json:"notes"`
	LoggedAt        *string `json:"logged_at"`
}

func (s *Server) createTraining(w http.ResponseWriter, r *http.Request) {
	var req trainingRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	at, err := s.loggedAt(req.LoggedAt)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	entry := &models.TrainingLog{
		Activity:        req.Activity,
		DurationMinutes: req.DurationMinutes,
		Intensity:       req.Intensity,
		Notes:           req.Notes,
		LoggedAt:        at,
	}
	if err := s.repo.CreateTrainingLog(r.Context(), entry); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) listTraining(w http.ResponseWriter, r *http.Request) {
	rng, err := s.dayFilter(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	entries, err := s.repo.ListTrainingLogs(r.Context(), rng)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) deleteTraining(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.repo.DeleteTrainingLog)
}

type mentalRequest struct {
	Content  string  `json:"content" validate:"required"`
	Mood     *string `json:"mood"`
	Tags     *string `json:"tags"`
	LoggedAt *string `json:"logged_at"`
}

func (s *Server) createMental(w http.ResponseWriter, r *http.Request) {
	var req mentalRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	at, err := s.loggedAt(req.LoggedAt)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	entry := &models.MentalLog{Content: req.Content, Mood: req.Mood, Tags: req.Tags, LoggedAt: at}
	if err := s.repo.CreateMentalLog(r.Context(), entry); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) listMental(w http.ResponseWriter, r *http.Request) {
	rng, err := s.dayFilter(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	entries, err := s.repo.ListMentalLogs(r.Context(), rng)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) deleteMental(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.repo.DeleteMentalLog)
}

// deleteByID handles the DELETE /{id} routes that answer {"ok": true}.
func (s *Server) deleteByID(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, id int64) error) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := del(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ok())
}
