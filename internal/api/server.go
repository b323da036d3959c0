// Package api exposes the dashboard's data over a JSON HTTP API. It is a
// pure projection layer: every handler reads one snapshot from the record
// provider and renders it, with no write path into the core.
package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/entremotivator/linkup/internal/chat"
	"github.com/entremotivator/linkup/internal/data"
	"github.com/entremotivator/linkup/internal/logging"
)

// Server wraps the HTTP handlers for the dashboard API.
type Server struct {
	provider data.RecordProvider
	resolver *chat.Resolver
	log      zerolog.Logger
}

// New creates a new Server instance.
func New(provider data.RecordProvider, resolver *chat.Resolver) *Server {
	return &Server{
		provider: provider,
		resolver: resolver,
		log:      logging.Component("api"),
	}
}

// Router builds the chi router with all API routes wired.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", s.handleStats)
		r.Get("/contacts", s.handleContacts)
		r.Get("/contacts/{key}", s.handleContact)
		r.Get("/messages", s.handleMessages)
		r.Post("/refresh", s.handleRefresh)
	})
	return r
}

type contactSummary struct {
	Name          string `json:"name"`
	URL           string `json:"url"`
	MessageCount  int    `json:"message_count"`
	SentCount     int    `json:"sent_count"`
	ReceivedCount int    `json:"received_count"`
	LastContact   string `json:"last_contact"`
}

func summarize(conv *chat.Conversation) contactSummary {
	return contactSummary{
		Name:          conv.Name,
		URL:           conv.URL,
		MessageCount:  len(conv.Messages),
		SentCount:     conv.SentCount,
		ReceivedCount: conv.ReceivedCount,
		LastContact:   conv.LastContact(),
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"snapshot_id": snapshot.ID,
		"fetched_at":  snapshot.FetchedAt.Format(time.RFC3339),
		"totals":      snapshot.Totals,
	})
}

func (s *Server) handleContacts(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.snapshot(w, r)
	if !ok {
		return
	}

	order := chat.ContactOrder(r.URL.Query().Get("sort"))
	switch order {
	case chat.ContactsByCount, chat.ContactsByRecent:
	default:
		order = chat.ContactsByName
	}

	contacts := chat.Contacts(snapshot.Conversations, order)
	summaries := make([]contactSummary, len(contacts))
	for i, conv := range contacts {
		summaries[i] = summarize(conv)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"snapshot_id": snapshot.ID,
		"count":       len(summaries),
		"contacts":    summaries,
	})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.snapshot(w, r)
	if !ok {
		return
	}

	key := chi.URLParam(r, "key")
	if unescaped, err := url.PathUnescape(key); err == nil {
		key = unescaped
	}
	conv, ok := snapshot.Conversations[key]
	if !ok {
		writeErrorString(w, http.StatusNotFound, "unknown contact")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"snapshot_id": snapshot.ID,
		"contact":     summarize(conv),
		"messages":    chat.SortChronological(conv.Messages, true),
	})
}

func (s *Server) handleMessages(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.snapshot(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := chat.Filter{
		Query:        query.Get("q"),
		SearchSender: true,
		Direction:    chat.ParseDirection(query.Get("direction")),
		SharedOnly:   query.Get("shared") == "true",
	}

	messages := chat.ApplyFilter(snapshot.Records, filter, s.resolver)
	ascending := strings.EqualFold(query.Get("order"), "asc")
	messages = chat.SortChronological(messages, ascending)

	writeJSON(w, http.StatusOK, map[string]any{
		"snapshot_id": snapshot.ID,
		"count":       len(messages),
		"messages":    messages,
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.provider.Refresh(r.Context())
	if err != nil {
		s.log.Warn().Err(err).Msg("refresh failed")
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"snapshot_id": snapshot.ID,
		"fetched_at":  snapshot.FetchedAt.Format(time.RFC3339),
		"totals":      snapshot.Totals,
	})
}

// snapshot fetches the current snapshot, writing the degraded error
// response when the source is unavailable.
func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) (*data.Snapshot, bool) {
	snapshot, err := s.provider.Snapshot(r.Context())
	if err != nil {
		s.log.Warn().Err(err).Msg("record source unavailable")
		writeError(w, http.StatusBadGateway, err)
		return nil, false
	}
	return snapshot, true
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(wrapped, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapped.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	_ = enc.Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeErrorString(w, status, err.Error())
}

func writeErrorString(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
