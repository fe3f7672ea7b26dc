package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/TeongTat/travelagentic/internal/domain/models"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Planner produces a brief for one trip request. Partial failures are part of
// the returned Brief, never an error.
type Planner interface {
	Plan(ctx context.Context, req models.TripRequest) models.Brief
}

type Handler struct {
	log     *zap.Logger
	planner Planner
	pages   *renderer
	now     func() time.Time
}

func NewHandler(log *zap.Logger, planner Planner) (*Handler, error) {
	if log == nil {
		log = zap.NewNop()
	}

	pages, err := newRenderer()
	if err != nil {
		return nil, err
	}

	return &Handler{
		log:     log,
		planner: planner,
		pages:   pages,
		now:     time.Now,
	}, nil
}

// NewRouter wires the brief routes behind request-id, tracing and logging middleware.
func NewRouter(log *zap.Logger, h *Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, tracingMiddleware, loggingMiddleware(log))
	h.RegisterRoutes(r)
	return r
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.Form).Methods(http.MethodGet)
	r.HandleFunc("/brief", h.SubmitForm).Methods(http.MethodPost)
	r.HandleFunc("/v1/briefs", h.CreateBrief).Methods(http.MethodPost)
	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet)
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
}

func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index.html", formPage{Form: formDefaults(h.now())})
}

func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	req, err := decodeForm(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	brief := h.planner.Plan(r.Context(), req)

	panes, err := h.pages.panes(brief)
	if err != nil {
		h.log.Error("failed to render panes", zap.String("run_id", brief.RunID), zap.Error(err))
		http.Error(w, "failed to render brief", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "brief.html", resultPage{
		Form:    fromTrip(brief.Request),
		RunID:   brief.RunID,
		Panes:   panes,
		Weather: brief.Weather,
	})
}

func (h *Handler) CreateBrief(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, badRequestMessage(err))
		return
	}

	brief := h.planner.Plan(r.Context(), req)
	writeJSON(w, http.StatusOK, toBriefResponse(brief))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.execute(w, name, data); err != nil {
		h.log.Error("failed to render page",
			zap.String("template", name),
			zap.String("request_id", RequestID(r.Context())),
			zap.Error(err),
		)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func tracingMiddleware(next http.Handler) http.Handler {
	tracer := otel.Tracer("travelagentic/http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func badRequestMessage(err error) string {
	if errors.Is(err, errBadRequest) {
		return err.Error()
	}
	return "bad request"
}
