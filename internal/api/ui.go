// ABOUTME: Server-rendered HTML: page shells plus htmx fragments for today, subscriptions, stats and calendar.
// ABOUTME: Templates are embedded; the calendar fragment renders its own error instead of failing.
package api

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"time"

	"github.com/harperreed/lifedash/internal/calendar"
	"github.com/harperreed/lifedash/internal/dashboard"
	"github.com/harperreed/lifedash/internal/logging"
	"github.com/harperreed/lifedash/internal/storage"
)

//go:embed templates/*.html
var viewFS embed.FS

type pageSpec struct {
	Title     string
	Fragments []string
}

var pages = map[string]pageSpec{
	"today":     {Title: "Today", Fragments: []string{"/ui/today", "/ui/calendar"}},
	"history":   {Title: "History", Fragments: []string{"/ui/stats"}},
	"reminders": {Title: "Reminders", Fragments: []string{"/ui/today"}},
	"settings":  {Title: "Settings", Fragments: []string{"/ui/subscriptions"}},
}

type pageData struct {
	Name      string
	Title     string
	Fragments []string
	Flash     string
	Calendar  calendar.Status
}

type calendarData struct {
	Events  []calendar.Event
	Error   string
	Connect bool
}

func parseViews(loc *time.Location) *template.Template {
	funcs := template.FuncMap{
		"clock": func(t time.Time) string {
			return t.In(loc).Format("15:04")
		},
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"str": func(p *string) string {
			if p == nil {
				return ""
			}
			return *p
		},
		"num": func(p *int) string {
			if p == nil {
				return ""
			}
			return fmt.Sprint(*p)
		},
		"weeks": func(m map[int]int) []int {
			keys := make([]int, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Ints(keys)
			return keys
		},
	}
	return template.Must(template.New("views").Funcs(funcs).ParseFS(viewFS, "templates/*.html"))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := s.views.ExecuteTemplate(&buf, name, data); err != nil {
		s.fail(w, r, fmt.Errorf("render %s: %w", name, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) page(name string) http.HandlerFunc {
	def := pages[name]
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData{Name: name, Title: def.Title, Fragments: def.Fragments}
		if name == "settings" {
			data.Calendar = s.calendar.Status(r.Context())
			if r.URL.Query().Get("calendar") == "connected" {
				data.Flash = "Google Calendar connected."
			}
		}
		s.render(w, r, "page", data)
	}
}

func (s *Server) uiToday(w http.ResponseWriter, r *http.Request) {
	today, err := dashboard.BuildToday(r.Context(), s.repo, s.localNow())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, "today", today)
}

func (s *Server) uiSubscriptions(w http.ResponseWriter, r *http.Request) {
	list, err := dashboard.ListSubscriptions(r.Context(), s.repo, storage.SubscriptionFilter{ActiveOnly: true})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, "subscriptions", list)
}

func (s *Server) uiStats(w http.ResponseWriter, r *http.Request) {
	stats, err := dashboard.BuildStats(r.Context(), s.repo, s.localNow())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, "stats", stats)
}

func (s *Server) uiCalendar(w http.ResponseWriter, r *http.Request) {
	var data calendarData
	events, err := s.calendar.ListEvents(r.Context(), calendar.DefaultDays)
	switch {
	case err == nil:
		data.Events = events.Events
	case errors.Is(err, calendar.ErrUnauthenticated), errors.Is(err, calendar.ErrNotConfigured):
		data.Error = err.Error()
		data.Connect = true
	default:
		logging.Ctx(r.Context()).Warn().Err(err).Msg("calendar fragment degraded")
		data.Error = err.Error()
	}
	s.render(w, r, "calendar", data)
}
