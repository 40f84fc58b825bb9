// ABOUTME: Handlers for the Google Calendar proxy: OAuth connect flow and event CRUD.
// ABOUTME: Failures map to 401 when unauthenticated and 500 for upstream errors.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harperreed/lifedash/internal/calendar"
)

const connectedRedirect = "/settings?calendar=connected"

type deletedEvent struct {
	OK      bool   `json:"ok"`
	Deleted string `json:"deleted"`
}

func (s *Server) calendarStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.calendar.Status(r.Context()))
}

func (s *Server) calendarAuth(w http.ResponseWriter, r *http.Request) {
	url, err := s.calendar.AuthURL()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

func (s *Server) calendarCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if denied := q.Get("error"); denied != "" {
		s.fail(w, r, badRequest("authorization failed: %s", denied))
		return
	}
	code := q.Get("code")
	if code == "" {
		s.fail(w, r, badRequest("missing authorization code"))
		return
	}
	if err := s.calendar.Exchange(r.Context(), code, q.Get("state")); err != nil {
		s.fail(w, r, err)
		return
	}
	http.Redirect(w, r, connectedRedirect, http.StatusFound)
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", calendar.DefaultDays)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	events, err := s.calendar.ListEvents(r.Context(), days)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	var in calendar.EventInput
	if err := s.decode(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	created, err := s.calendar.CreateEvent(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.calendar.DeleteEvent(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deletedEvent{OK: true, Deleted: id})
}
