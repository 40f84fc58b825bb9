// ABOUTME: JSON response, request decoding and error mapping helpers for handlers.
// ABOUTME: Maps domain sentinel errors to HTTP statuses with a {error, code, message} body.
package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"github.com/harperreed/lifedash/internal/calendar"
	"github.com/harperreed/lifedash/internal/logging"
	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/storage"
)

const maxBodyBytes = 1 << 20

// errBadRequest marks malformed input that is not covered by a domain sentinel.
var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// okResponse acknowledges a write that returns no entity.
type okResponse struct {
	OK bool   `json:"ok"`
	ID *int64 `json:"id,omitempty"`
}

func ok() okResponse {
	return okResponse{OK: true}
}

func okID(id int64) okResponse {
	return okResponse{OK: true, ID: &id}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Warn().Err(err).Msg("write JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Code:    status,
		Message: message,
	})
}

// fail maps err onto an HTTP status. Unrecognized errors are logged and reported as 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var upstream *calendar.UpstreamError
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, models.ErrInvalidTime),
		errors.Is(err, models.ErrInvalidEnum),
		errors.Is(err, calendar.ErrInvalidEvent),
		errors.Is(err, calendar.ErrInvalidState):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, calendar.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, calendar.ErrNotConfigured):
		writeError(w, http.StatusInternalServerError, err.Error())
	case errors.As(err, &upstream):
		logging.Ctx(r.Context()).Error().Err(err).Msg("calendar upstream failure")
		writeError(w, http.StatusInternalServerError, upstream.Error())
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode reads a JSON body into v and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	if err := decodeBody(w, r, v); err != nil {
		return err
	}
	return s.check(v)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return badRequest("invalid JSON body: %v", err)
	}
	return nil
}

// decodePatch decodes a partial update into v and also returns the top-level keys
// that were sent, so an explicit null can be told apart from an absent field.
func (s *Server) decodePatch(w http.ResponseWriter, r *http.Request, v any) (map[string]any, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, badRequest("read body: %v", err)
	}
	present := map[string]any{}
	if err := json.Unmarshal(body, &present); err != nil {
		return nil, badRequest("invalid JSON body: %v", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return nil, badRequest("invalid JSON body: %v", err)
	}
	return present, s.check(v)
}

// check runs struct validation and flattens the failures into one message.
func (s *Server) check(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return badRequest("%v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return badRequest("%s", strings.Join(msgs, "; "))
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest("invalid id %q", raw)
	}
	return id, nil
}

func queryBool(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, badRequest("%s must be true or false", name)
	}
	return v, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, badRequest("%s must be a non-negative integer", name)
	}
	return v, nil
}
