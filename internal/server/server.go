// Package server exposes the pmsp solver over a small REST API.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/schedkit/pmsp/internal/config"
	"github.com/schedkit/pmsp/internal/errors"
	"github.com/schedkit/pmsp/internal/genetic"
	"github.com/schedkit/pmsp/internal/pmsp"
)

// Server handles solve, decode and bound requests. Solves run
// synchronously on the request goroutine; run time is bounded by the
// generations parameter.
type Server struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics
}

// New creates a server. The registerer receives the solver metrics;
// prometheus.DefaultRegisterer is a reasonable choice.
func New(cfg *config.Config, logger *zap.Logger, reg prometheus.Registerer) *Server {
	return &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: newMetrics(reg),
	}
}

// RegisterRoutes mounts the API on the router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Post("/decode", s.handleDecode)
		r.Post("/bound", s.handleBound)
	})
	r.Get("/healthz", s.handleHealth)
}

// solveOptions are per-request overrides of the configured solver
// parameters. Nil fields keep the service defaults.
type solveOptions struct {
	PopulationSize *int     `json:"population_size,omitempty"`
	Generations    *int     `json:"generations,omitempty"`
	CrossoverRate  *float64 `json:"crossover_rate,omitempty"`
	MutationRate   *float64 `json:"mutation_rate,omitempty"`
	TournamentK    *int     `json:"tournament_k,omitempty"`
	Seed           *int64   `json:"seed,omitempty"`
}

type solveRequest struct {
	Instance json.RawMessage `json:"instance"`
	Options  *solveOptions   `json:"options,omitempty"`
}

type solveResponse struct {
	Best        genetic.Individual `json:"best"`
	History     []float64          `json:"history"`
	Schedule    *pmsp.Schedule     `json:"schedule"`
	LowerBound  float64            `json:"lower_bound"`
	Ratio       float64            `json:"ratio"`
	Evaluations int                `json:"evaluations"`
	DurationMS  float64            `json:"duration_ms"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inst, err := pmsp.Parse(req.Instance)
	if err != nil {
		s.metrics.solves.WithLabelValues("invalid").Inc()
		s.respondSolverError(w, err)
		return
	}

	solver, err := genetic.New(s.solverConfig(req.Options), s.logger)
	if err != nil {
		s.metrics.solves.WithLabelValues("invalid").Inc()
		s.respondSolverError(w, err)
		return
	}

	res, err := solver.Solve(r.Context(), inst)
	if err != nil {
		s.metrics.solves.WithLabelValues("error").Inc()
		s.respondSolverError(w, err)
		return
	}
	s.metrics.solves.WithLabelValues("ok").Inc()
	s.metrics.solveDuration.Observe(res.Duration.Seconds())
	s.metrics.bestMakespan.Set(res.Best.Cost)

	sched, err := pmsp.Decode(inst, res.Best.Order)
	if err != nil {
		s.respondSolverError(w, err)
		return
	}

	bound := pmsp.LowerBound(inst)
	ratio := 0.0
	if bound > 0 {
		ratio = res.Best.Cost / bound
	}

	s.logger.Info("solve completed",
		zap.Int("jobs", inst.Jobs),
		zap.Int("machines", inst.Machines),
		zap.Float64("makespan", res.Best.Cost),
		zap.Float64("lower_bound", bound),
		zap.Duration("duration", res.Duration),
	)

	s.respondJSON(w, http.StatusOK, solveResponse{
		Best:        res.Best,
		History:     res.History,
		Schedule:    sched,
		LowerBound:  bound,
		Ratio:       ratio,
		Evaluations: res.Evaluations,
		DurationMS:  float64(res.Duration.Microseconds()) / 1000.0,
	})
}

type decodeRequest struct {
	Instance json.RawMessage `json:"instance"`
	Order    []int           `json:"order"`
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req decodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inst, err := pmsp.Parse(req.Instance)
	if err != nil {
		s.respondSolverError(w, err)
		return
	}
	sched, err := pmsp.Decode(inst, req.Order)
	if err != nil {
		s.respondSolverError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, sched)
}

type boundRequest struct {
	Instance json.RawMessage `json:"instance"`
}

type boundResponse struct {
	LowerBound float64 `json:"lower_bound"`
}

func (s *Server) handleBound(w http.ResponseWriter, r *http.Request) {
	var req boundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inst, err := pmsp.Parse(req.Instance)
	if err != nil {
		s.respondSolverError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, boundResponse{LowerBound: pmsp.LowerBound(inst)})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// solverConfig merges request overrides onto the configured defaults.
func (s *Server) solverConfig(opts *solveOptions) genetic.Config {
	cfg := genetic.Config{
		PopulationSize: s.cfg.Solver.PopulationSize,
		Generations:    s.cfg.Solver.Generations,
		CrossoverRate:  s.cfg.Solver.CrossoverRate,
		MutationRate:   s.cfg.Solver.MutationRate,
		TournamentK:    s.cfg.Solver.TournamentK,
		Seed:           s.cfg.Solver.Seed,
	}
	if opts == nil {
		return cfg
	}
	if opts.PopulationSize != nil {
		cfg.PopulationSize = *opts.PopulationSize
	}
	if opts.Generations != nil {
		cfg.Generations = *opts.Generations
	}
	if opts.CrossoverRate != nil {
		cfg.CrossoverRate = *opts.CrossoverRate
	}
	if opts.MutationRate != nil {
		cfg.MutationRate = *opts.MutationRate
	}
	if opts.TournamentK != nil {
		cfg.TournamentK = *opts.TournamentK
	}
	if opts.Seed != nil {
		cfg.Seed = *opts.Seed
	}
	return cfg
}

// respondSolverError maps typed solver errors to HTTP status codes.
func (s *Server) respondSolverError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.KindOf(err) {
	case errors.KindInvalidInstance, errors.KindConfiguration:
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.respondError(w, status, err.Error())
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}
