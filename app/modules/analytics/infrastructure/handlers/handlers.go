package analyticshandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	analyticsservice "github.com/Black-And-White-Club/anleague/app/modules/analytics/application"
	analyticsdomain "github.com/Black-And-White-Club/anleague/app/modules/analytics/domain"
	"github.com/Black-And-White-Club/anleague/internal/httpx"
	"github.com/Black-And-White-Club/anleague/internal/observability/attr"
	"go.opentelemetry.io/otel/trace"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFilename  = "anleague-analytics.xlsx"
)

// AnalyticsHandlers implements the Handlers interface.
type AnalyticsHandlers struct {
	service analyticsservice.Service
	since   SinceParser
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewAnalyticsHandlers creates a new AnalyticsHandlers instance.
func NewAnalyticsHandlers(service analyticsservice.Service, since SinceParser, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &AnalyticsHandlers{
		service: service,
		since:   since,
		logger:  logger,
		tracer:  tracer,
	}
}

func (h *AnalyticsHandlers) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AnalyticsHandlers.Analytics")
	defer span.End()

	since, err := h.since.Parse(r.URL.Query().Get("since"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	report, err := h.service.Report(ctx, since)
	if err != nil {
		h.internalError(w, r, "analytics", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, report)
}

func (h *AnalyticsHandlers) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AnalyticsHandlers.Leaderboard")
	defer span.End()

	limit := analyticsdomain.DefaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httpx.WriteError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	rows, err := h.service.Leaderboard(ctx, limit)
	if err != nil {
		h.internalError(w, r, "leaderboard", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rows)
}

func (h *AnalyticsHandlers) HandleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AnalyticsHandlers.Chart")
	defer span.End()

	data, err := h.service.GoalsChart(ctx)
	if err != nil {
		h.internalError(w, r, "chart", err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *AnalyticsHandlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AnalyticsHandlers.Export")
	defer span.End()

	data, err := h.service.ExportWorkbook(ctx)
	if err != nil {
		h.internalError(w, r, "export", err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *AnalyticsHandlers) internalError(w http.ResponseWriter, r *http.Request, action string, err error) {
	h.logger.ErrorContext(r.Context(), "Analytics request failed",
		attr.ExtractCorrelationID(r.Context()),
		attr.String("action", action),
		attr.Error(err),
	)
	httpx.WriteError(w, http.StatusInternalServerError, action+" failed")
}
