// Package server exposes maze solving over HTTP: a JSON solve endpoint,
// badger-backed run history, and prometheus metrics.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mazebench/bench"
	"mazebench/maze"
	"mazebench/search"
)

// Server routes solve requests to the search strategies and records the
// outcomes. History writes are best-effort: a failing store logs a
// warning and never fails the solve.
type Server struct {
	engine *gin.Engine
	store  *Store
	log    *slog.Logger
}

// New wires the routes. The store must not be nil; OpenStore("") gives an
// ephemeral in-memory history.
func New(store *Store, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{engine: gin.New(), store: store, log: log}
	s.engine.Use(gin.Recovery(), corsMiddleware())

	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	api := s.engine.Group("/api")
	api.POST("/solve", s.handleSolve)
	api.GET("/algorithms", s.handleAlgorithms)
	api.GET("/runs", s.handleRuns)
	api.GET("/runs/:id", s.handleRunByID)

	return s
}

// ServeHTTP lets the server mount anywhere an http.Handler fits.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Run serves on addr until the listener fails or ctx is canceled, then
// drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.engine}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.log.Info("listening", "addr", addr)
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// SolveRequest is the POST /api/solve body.
type SolveRequest struct {
	Maze      string `json:"maze"`
	Algorithm string `json:"algorithm"`
	Heuristic string `json:"heuristic"`
	Oracle    bool   `json:"oracle"`
}

func (s *Server) handleSolve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Maze) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "maze text is required"})
		return
	}
	spec := bench.RunSpec{Algorithm: req.Algorithm, Heuristic: req.Heuristic}
	if err := spec.Validate(); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := maze.Parse(strings.NewReader(req.Maze))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := bench.Execute(m, spec, req.Oracle)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solveTotal.WithLabelValues(res.Algorithm, strconv.FormatBool(res.Metrics.Found)).Inc()
	solveDuration.WithLabelValues(res.Algorithm).Observe(res.Metrics.Elapsed.Seconds())

	rec := recordFromResult(res)
	if err := s.store.Put(rec); err != nil {
		s.log.Warn("history write failed", "id", rec.ID, "error", err)
	}
	s.log.Info("solve",
		"algorithm", rec.Algorithm,
		"heuristic", rec.Heuristic,
		"found", rec.Found,
		"cost", rec.Cost,
	)
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleAlgorithms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"algorithms": []string{
			search.AlgorithmBFS,
			search.AlgorithmDFS,
			search.AlgorithmAStar,
			search.AlgorithmGreedy,
		},
		"heuristics": []string{"manhattan", "euclidean", "zero"},
	})
}

func (s *Server) handleRuns(c *gin.Context) {
	records, err := s.store.List()
	if err != nil {
		s.log.Error("history list failed", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "history unavailable"})
		return
	}
	if records == nil {
		records = []Record{}
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) handleRunByID(c *gin.Context) {
	id := c.Param("id")
	rec, ok, err := s.store.Get(id)
	if err != nil {
		s.log.Error("history read failed", "id", id, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "history unavailable"})
		return
	}
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func recordFromResult(res bench.Result) Record {
	m := res.Metrics
	return Record{
		ID:            res.ID,
		Algorithm:     res.Algorithm,
		Heuristic:     res.Heuristic,
		Found:         m.Found,
		Cost:          m.PathCost,
		Length:        m.PathLength,
		Path:          res.Path,
		Rendered:      res.Rendered,
		ElapsedMs:     float64(m.Elapsed.Nanoseconds()) / 1e6,
		Expanded:      m.Expanded,
		Generated:     m.Generated,
		MaxFrontier:   m.MaxFrontier,
		MaxExplored:   m.MaxExplored,
		MaxStructures: m.MaxStructures,
		Complete:      m.Completeness.String(),
		Optimal:       m.Optimality.String(),
		SolvedAt:      time.Now().UTC(),
	}
}
