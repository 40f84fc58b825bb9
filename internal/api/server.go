// ABOUTME: HTTP server wiring for the lifedash JSON API, HTML fragments and metrics.
// ABOUTME: Builds the chi router with logging, metrics, CORS, rate limiting and API key checks.
package api

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/harperreed/lifedash/internal/calendar"
	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/storage"
)

// CalendarService is the calendar proxy consumed by the HTTP layer.
type CalendarService interface {
	Status(ctx context.Context) calendar.Status
	AuthURL() (string, error)
	Exchange(ctx context.Context, code, state string) error
	ListEvents(ctx context.Context, days int) (*calendar.EventList, error)
	CreateEvent(ctx context.Context, in calendar.EventInput) (*calendar.CreatedEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}

// Options configures the HTTP server.
type Options struct {
	// APIKey is required in X-API-Key on every write.
	APIKey string
	// CORSOrigins lists allowed browser origins; empty allows any.
	CORSOrigins []string
	// RateLimit is write requests per minute per client IP; 0 disables.
	RateLimit int
	// Location decides what "today" means. Defaults to time.Local.
	Location *time.Location
}

// Server serves the lifedash API and UI.
type Server struct {
	repo     storage.Repository
	calendar CalendarService
	opts     Options
	loc      *time.Location
	now      func() time.Time
	validate *validator.Validate
	views    *template.Template
	limiter  func(http.Handler) http.Handler
}

// New creates a server over repo and cal.
func New(repo storage.Repository, cal CalendarService, opts Options) *Server {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	return &Server{
		repo:     repo,
		calendar: cal,
		opts:     opts,
		loc:      loc,
		now:      time.Now,
		validate: newValidator(),
		views:    parseViews(loc),
		limiter:  newWriteLimiter(opts.RateLimit),
	}
}

// SetClock overrides the time source used for "today" and stats windows.
func (s *Server) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Server) localNow() time.Time {
	return s.now().In(s.loc)
}

func (s *Server) today() models.Date {
	return models.DateOf(s.localNow())
}

// Handler builds the HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(corsHandler(s.opts.CORSOrigins))
	r.Use(instrument)

	write := chi.Chain(s.limiter, s.requireAPIKey)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/reminders", func(r chi.Router) {
			r.Get("/", s.listReminders)
			r.With(write...).Post("/", s.createReminder)
			r.With(write...).Patch("/{id}", s.updateReminder)
			r.With(write...).Delete("/{id}", s.deleteReminder)
		})

		r.Route("/food", func(r chi.Router) {
			r.Get("/", s.listFood)
			r.With(write...).Post("/", s.createFood)
			r.With(write...).Delete("/{id}", s.deleteFood)
		})
		r.Route("/training", func(r chi.Router) {
			r.Get("/", s.listTraining)
			r.With(write...).Post("/", s.createTraining)
			r.With(write...).Delete("/{id}", s.deleteTraining)
		})
		r.Route("/mental", func(r chi.Router) {
			r.Get("/", s.listMental)
			r.With(write...).Post("/", s.createMental)
			r.With(write...).Delete("/{id}", s.deleteMental)
		})

		r.Route("/summary", func(r chi.Router) {
			r.Get("/", s.listSummaries)
			r.Get("/{date}", s.getSummary)
			r.With(write...).Post("/", s.upsertSummary)
		})
		r.Route("/weight", func(r chi.Router) {
			r.Get("/", s.listWeight)
			r.Get("/latest", s.latestWeight)
			r.With(write...).Post("/", s.upsertWeight)
			r.With(write...).Delete("/{id}", s.deleteWeight)
		})

		r.Get("/stats", s.getStats)
		r.Get("/dashboard/today", s.getToday)

		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/", s.listSubscriptions)
			r.Get("/stats/summary", s.subscriptionStats)
			r.Get("/{id}", s.getSubscription)
			r.With(write...).Post("/", s.createSubscription)
			r.With(write...).Put("/{id}", s.updateSubscription)
			r.With(write...).Delete("/{id}", s.deleteSubscription)
		})

		r.Route("/suggestions", func(r chi.Router) {
			r.Get("/", s.listSuggestions)
			r.With(write...).Post("/", s.createSuggestion)
			r.With(write...).Post("/bulk", s.createSuggestionsBulk)
			r.With(write...).Put("/{id}", s.updateSuggestion)
			r.With(write...).Post("/{id}/dismiss", s.dismissSuggestion)
			r.With(write...).Delete("/clear/{category}", s.clearSuggestions)
			r.With(write...).Delete("/{id}", s.deleteSuggestion)
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/status", s.calendarStatus)
			r.Get("/auth", s.calendarAuth)
			r.Get("/oauth/callback", s.calendarCallback)
			r.Get("/events", s.listEvents)
			r.With(write...).Post("/events", s.createEvent)
			r.With(write...).Delete("/events/{id}", s.deleteEvent)
		})
	})

	r.Route("/ui", func(r chi.Router) {
		r.Get("/today", s.uiToday)
		r.Get("/subscriptions", s.uiSubscriptions)
		r.Get("/stats", s.uiStats)
		r.Get("/calendar", s.uiCalendar)
	})

	r.Get("/", s.page("today"))
	r.Get("/history", s.page("history"))
	r.Get("/reminders", s.page("reminders"))
	r.Get("/settings", s.page("settings"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "")
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
