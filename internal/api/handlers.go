package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/transitgraph/bfs"
	"github.com/katalvlaran/transitgraph/internal/export"
	"github.com/katalvlaran/transitgraph/lineaware"
	"github.com/katalvlaran/transitgraph/transit"
)

var (
	errBadQuery    = errors.New("bad query")
	errNotAdjacent = errors.New("stops are not directly connected")
)

// Handler exposes a Service over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts every endpoint on router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", h.Health).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/stops", h.Stops).Methods("GET")
	api.HandleFunc("/stops/{stop}/lines", h.StopLines).Methods("GET")
	api.HandleFunc("/lines", h.Lines).Methods("GET")
	api.HandleFunc("/lines/{line}", h.Line).Methods("GET")
	api.HandleFunc("/between", h.Between).Methods("GET")
	api.HandleFunc("/time", h.Time).Methods("GET")
	api.HandleFunc("/distance", h.Distance).Methods("GET")
	api.HandleFunc("/route", h.Route).Methods("GET")
	api.HandleFunc("/network.geojson", h.NetworkGeoJSON).Methods("GET")
	api.HandleFunc("/route.geojson", h.RouteGeoJSON).Methods("GET")
}

// Router returns a mux router with every endpoint and request logging.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	r.Use(h.logRequests)
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.svc.log.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadQuery),
		errors.Is(err, lineaware.ErrUnknownMetric),
		errors.Is(err, lineaware.ErrNegativePenalty):
		return http.StatusBadRequest
	case errors.Is(err, transit.ErrUnknownStop),
		errors.Is(err, transit.ErrUnknownLine),
		errors.Is(err, lineaware.ErrNoLines),
		errors.Is(err, lineaware.ErrNoRoute),
		errors.Is(err, errNotAdjacent):
		return http.StatusNotFound
	case errors.Is(err, transit.ErrSameStop),
		errors.Is(err, transit.ErrNotOnLine):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		// client went away; nobody reads the body
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	switch status {
	case http.StatusInternalServerError:
		h.svc.log.Error("Request failed", "error", err)
	case http.StatusServiceUnavailable:
		h.svc.log.Debug("Request cancelled", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// pair reads the required from and to query parameters.
func pair(r *http.Request) (string, string, error) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		return "", "", fmt.Errorf("%w: from and to are required", errBadQuery)
	}
	return from, to, nil
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.snapshot()
	connected, err := bfs.Connected[string](snap.net.Graph())
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"generation": snap.gen,
		"loaded_at":  snap.loaded.UTC().Format(time.RFC3339),
		"stops":      len(snap.net.AllStops()),
		"lines":      len(snap.net.AllLines()),
		"components": len(snap.net.Components()),
		"connected":  connected,
	})
}

func (h *Handler) Stops(w http.ResponseWriter, r *http.Request) {
	net := h.svc.Network()
	stops := make([]transit.Stop, 0, len(net.AllStops()))
	for _, name := range net.AllStops() {
		st, _ := net.Stop(name)
		stops = append(stops, st)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"stops": stops, "count": len(stops)})
}

func (h *Handler) StopLines(w http.ResponseWriter, r *http.Request) {
	stop := mux.Vars(r)["stop"]
	lines, err := h.svc.Network().StopLines(stop)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"stop": stop, "lines": lines})
}

func (h *Handler) Lines(w http.ResponseWriter, r *http.Request) {
	net := h.svc.Network()
	lines := make([]transit.Line, 0, len(net.AllLines()))
	for _, id := range net.AllLines() {
		l, _ := net.Line(id)
		lines = append(lines, l)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"lines": lines, "count": len(lines)})
}

func (h *Handler) Line(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["line"]
	l, ok := h.svc.Network().Line(id)
	if !ok {
		h.fail(w, fmt.Errorf("%w: %s", transit.ErrUnknownLine, id))
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (h *Handler) Between(w http.ResponseWriter, r *http.Request) {
	from, to, err := pair(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	lines, err := h.svc.Network().LinesBetweenStops(from, to)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"from": from, "to": to, "lines": lines})
}

// Time answers the direct transition time, or the time along a line when
// the line parameter is present.
func (h *Handler) Time(w http.ResponseWriter, r *http.Request) {
	from, to, err := pair(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	net := h.svc.Network()
	resp := map[string]interface{}{"from": from, "to": to}

	if line := r.URL.Query().Get("line"); line != "" {
		minutes, err := net.TimeAlongLine(line, from, to)
		if err != nil {
			h.fail(w, err)
			return
		}
		resp["line"] = line
		resp["minutes"] = minutes
		writeJSON(w, http.StatusOK, resp)
		return
	}

	// validate stops so unknown and identical stops are told apart from
	// stops that are merely not adjacent
	if _, err := net.LinesBetweenStops(from, to); err != nil {
		h.fail(w, err)
		return
	}
	minutes, ok := net.TransitionTime(from, to)
	if !ok {
		h.fail(w, errNotAdjacent)
		return
	}
	resp["minutes"] = minutes
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Distance(w http.ResponseWriter, r *http.Request) {
	from, to, err := pair(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	km, err := h.svc.Network().GeoDistance(from, to)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"from": from, "to": to, "km": km})
}

type routeResponse struct {
	*lineaware.Route
	Text string `json:"text"`
}

// route parses the route query and runs it.
func (h *Handler) route(r *http.Request) (*lineaware.Route, *transit.Network, error) {
	from, to, err := pair(r)
	if err != nil {
		return nil, nil, err
	}
	q := r.URL.Query()

	metric := lineaware.Time
	if m := q.Get("metric"); m != "" {
		if metric, err = lineaware.ParseMetric(m); err != nil {
			return nil, nil, err
		}
	}
	penalty := h.svc.DefaultPenalty(metric)
	if p := q.Get("penalty"); p != "" {
		if penalty, err = strconv.ParseFloat(p, 64); err != nil {
			return nil, nil, fmt.Errorf("%w: penalty: %v", errBadQuery, err)
		}
	}

	return h.svc.Route(r.Context(), from, to, metric, penalty)
}

func (h *Handler) Route(w http.ResponseWriter, r *http.Request) {
	route, _, err := h.route(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, routeResponse{Route: route, Text: route.String()})
}

func (h *Handler) NetworkGeoJSON(w http.ResponseWriter, r *http.Request) {
	fc, err := export.Network(h.svc.Network())
	if err != nil {
		h.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	if err := export.Write(w, fc); err != nil {
		h.svc.log.Error("GeoJSON write failed", "error", err)
	}
}

func (h *Handler) RouteGeoJSON(w http.ResponseWriter, r *http.Request) {
	route, net, err := h.route(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	fc, err := export.Route(net, route)
	if err != nil {
		h.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	if err := export.Write(w, fc); err != nil {
		h.svc.log.Error("GeoJSON write failed", "error", err)
	}
}
