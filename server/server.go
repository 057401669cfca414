// Package server exposes the dashboard over HTTP: an index page with the
// selector controls, a chart endpoint applying user events to a session, and
// a Prometheus metrics endpoint.
package server

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	stockviewer "github.com/shamsherkhan80/Real-time-stock-price-viewer"
	"github.com/shamsherkhan80/Real-time-stock-price-viewer/marketdata"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Server struct {
	logger   *zap.Logger
	viewer   *stockviewer.Viewer
	symbols  []string
	sessions *sessionStore
	metrics  *serverMetrics
}

func New(logger *zap.Logger, viewer *stockviewer.Viewer, symbols []string) *Server {
	if len(symbols) == 0 {
		symbols = marketdata.DefaultSymbols
	}
	return &Server{
		logger:   logger,
		viewer:   viewer,
		symbols:  symbols,
		sessions: newSessionStore(viewer),
		metrics:  newServerMetrics(),
	}
}

// Handler builds the chi router for the dashboard.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", s.handleIndex)
	r.Get("/chart", s.handleChart)
	r.Get("/chart/figure", s.handleFigure)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return r
}

type indexData struct {
	Background    string
	Symbols       []string
	Periods       []marketdata.Period
	Kinds         []stockviewer.ChartKind
	DefaultSymbol string
	DefaultPeriod marketdata.Period
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.metrics.requests.WithLabelValues("/").Inc()

	data := indexData{
		Background:    s.viewer.BackgroundColor(),
		Symbols:       s.symbols,
		Periods:       marketdata.Periods(),
		Kinds:         stockviewer.ChartKinds(),
		DefaultSymbol: stockviewer.DefaultSymbol,
		DefaultPeriod: stockviewer.DefaultPeriod,
	}
	if err := pageTemplates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("render index", zap.Error(err))
	}
}

type chartData struct {
	Background  string
	CompanyLine string
	PriceLine   string
	FigureSrc   template.URL
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	s.metrics.requests.WithLabelValues("/chart").Inc()

	sess := s.sessions.session(w, r)
	ev := eventFromRequest(r)
	out := sess.Update(r.Context(), ev)
	if out.NoData {
		s.metrics.noData.Inc()
	}

	s.logger.Info("chart",
		zap.String("symbol", ev.Symbol),
		zap.String("period", string(ev.Period)),
		zap.Bool("no_data", out.NoData),
		zap.Bool("refreshed", sess.Refreshed()),
	)

	data := chartData{
		Background:  s.viewer.BackgroundColor(),
		CompanyLine: out.CompanyLine,
		PriceLine:   out.PriceLine,
		FigureSrc:   template.URL("/chart/figure?" + figureQuery(r).Encode()),
	}
	if err := pageTemplates.ExecuteTemplate(w, "chart.html", data); err != nil {
		s.logger.Error("render chart", zap.Error(err))
	}
}

func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	s.metrics.requests.WithLabelValues("/chart/figure").Inc()

	sess := s.sessions.session(w, r)
	out := sess.Update(r.Context(), eventFromRequest(r))
	if err := out.Chart.Render(w); err != nil {
		s.logger.Error("render figure", zap.Error(err))
	}
}

// figureQuery strips the refresh action from the embedded figure request so
// the figure render does not count as a second refresh.
func figureQuery(r *http.Request) url.Values {
	q := r.URL.Query()
	q.Del("refresh")
	return q
}

// eventFromRequest translates query parameters into a session event. Symbols
// are passed through unvalidated; the provider rejects unknown ones.
func eventFromRequest(r *http.Request) stockviewer.Event {
	q := r.URL.Query()

	ev := stockviewer.Event{
		Kind:   stockviewer.EventSelectorChange,
		Symbol: q.Get("symbol"),
	}
	if period, err := marketdata.ParsePeriod(q.Get("period")); err == nil {
		ev.Period = period
	}
	if q.Get("kind") == string(stockviewer.ChartBar) {
		ev.Chart = stockviewer.ChartBar
	}
	if q.Get("refresh") == "1" {
		ev.Kind = stockviewer.EventRefresh
	}

	if date := q.Get("hover_date"); date != "" {
		if price, err := strconv.ParseFloat(q.Get("hover_price"), 64); err == nil {
			if ev.Kind != stockviewer.EventRefresh {
				ev.Kind = stockviewer.EventHover
			}
			ev.Hover = &stockviewer.HoverPoint{Date: date, Price: price}
		}
	}
	return ev
}
