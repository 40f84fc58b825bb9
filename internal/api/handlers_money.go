// ABOUTME: Handlers for subscriptions (with recurring-cost totals) and suggestions.
// ABOUTME: Subscription delete is soft; suggestion clear removes a whole category.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harperreed/lifedash/internal/dashboard"
	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/storage"
)

type subscriptionRequest struct {
	Name         string                       `json:"name" validate:"required"`
	FullPrice    *float64                     `json:"full_price" validate:"required,gte=0"`
	MyPrice      *float64                     `json:"my_price" validate:"omitempty,gte=0"`
	BillingCycle *models.BillingCycle         `json:"billing_cycle"`
	Category     *models.SubscriptionCategory `json:"category"`
	IsShared     bool                         `json:"is_shared"`
	SharedWith   *string                      `json:"shared_with"`
	NextBilling  *models.Date                 `json:"next_billing"`
	Notes        *string                      `json:"notes"`
	Active       *bool                        `json:"active"`
}

func (req subscriptionRequest) subscription() *models.Subscription {
	sub := models.NewSubscription(req.Name, *req.FullPrice)
	if req.BillingCycle != nil {
		sub.BillingCycle = *req.BillingCycle
	}
	if req.Category != nil {
		sub.Category = *req.Category
	}
	if req.Active != nil {
		sub.Active = *req.Active
	}
	sub.MyPrice = req.MyPrice
	sub.IsShared = req.IsShared
	sub.SharedWith = req.SharedWith
	sub.NextBilling = req.NextBilling
	sub.Notes = req.Notes
	return sub
}

type createdSubscription struct {
	OK   bool   `json:"ok"`
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (s *Server) listSubscriptions(w http.ResponseWriter, r *http.Request) {
	activeOnly, err := queryBool(r, "active_only", true)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	filter := storage.SubscriptionFilter{ActiveOnly: activeOnly}
	if raw := r.URL.Query().Get("category"); raw != "" {
		cat, err := models.ParseSubscriptionCategory(raw)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		filter.Category = &cat
	}

	list, err := dashboard.ListSubscriptions(r.Context(), s.repo, filter)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createSubscription(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	sub := req.subscription()
	sub.CreatedAt = s.now().UTC()
	if err := s.repo.CreateSubscription(r.Context(), sub); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createdSubscription{OK: true, ID: sub.ID, Name: sub.Name})
}

func (s *Server) getSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	sub, err := s.repo.GetSubscription(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard.NewSubscriptionView(sub))
}

func (s *Server) updateSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var req models.SubscriptionUpdate
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if _, err := s.repo.UpdateSubscription(r.Context(), id, req); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okID(id))
}

func (s *Server) deleteSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.repo.DeactivateSubscription(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okID(id))
}

func (s *Server) subscriptionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := dashboard.SubscriptionStats(r.Context(), s.repo)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type suggestionRequest struct {
	Category string `json:"category" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Priority int    `json:"priority"`
}

func (req suggestionRequest) suggestion() *models.Suggestion {
	return &models.Suggestion{Category: req.Category, Content: req.Content, Priority: req.Priority}
}

type suggestionList struct {
	Suggestions []*models.Suggestion `json:"suggestions"`
	Count       int                  `json:"count"`
}

type bulkResult struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

type clearResult struct {
	OK      bool `json:"ok"`
	Cleared int  `json:"cleared"`
}

func (s *Server) listSuggestions(w http.ResponseWriter, r *http.Request) {
	includeDismissed, err := queryBool(r, "include_dismissed", false)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	suggestions, err := s.repo.ListSuggestions(r.Context(), storage.SuggestionFilter{
		Category:         r.URL.Query().Get("category"),
		IncludeDismissed: includeDismissed,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestionList{Suggestions: suggestions, Count: len(suggestions)})
}

func (s *Server) createSuggestion(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	sg := req.suggestion()
	if err := s.repo.CreateSuggestions(r.Context(), sg); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, okID(sg.ID))
}

func (s *Server) createSuggestionsBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []suggestionRequest
	if err := decodeBody(w, r, &reqs); err != nil {
		s.fail(w, r, err)
		return
	}
	batch := make([]*models.Suggestion, 0, len(reqs))
	for i := range reqs {
		if err := s.check(&reqs[i]); err != nil {
			s.fail(w, r, badRequest("item %d: %v", i, err))
			return
		}
		batch = append(batch, reqs[i].suggestion())
	}
	if err := s.repo.CreateSuggestions(r.Context(), batch...); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, bulkResult{OK: true, Count: len(batch)})
}

func (s *Server) updateSuggestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var req models.SuggestionUpdate
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if _, err := s.repo.UpdateSuggestion(r.Context(), id, req); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okID(id))
}

func (s *Server) dismissSuggestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if _, err := s.repo.DismissSuggestion(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okID(id))
}

func (s *Server) deleteSuggestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.repo.DeleteSuggestion(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, okID(id))
}

func (s *Server) clearSuggestions(w http.ResponseWriter, r *http.Request) {
	cleared, err := s.repo.ClearSuggestions(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clearResult{OK: true, Cleared: cleared})
}
