// Package httpadapter exposes the solver service as a JSON API on gin.
package httpadapter

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"svw.info/exactcover/internal/domain"
	"svw.info/exactcover/internal/metrics"
	"svw.info/exactcover/internal/usecase"
)

type Handlers struct {
	uc *usecase.Service
	m  *metrics.Metrics
}

func New(uc *usecase.Service, m *metrics.Metrics) *Handlers {
	return &Handlers{uc: uc, m: m}
}

// RegisterRoutes attaches the API to a router group, typically /api.
func (h *Handlers) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/solve", h.handleSolve)
	rg.POST("/validate", h.handleValidate)
	rg.POST("/generate", h.handleGenerate)
	rg.POST("/hint", h.handleHint)
	rg.POST("/save", h.handleSave)
	rg.POST("/load", h.handleLoad)
	rg.GET("/list", h.handleList)
}

// ---- Solve ----

type solveRequest struct {
	Board [9][9]uint8 `json:"board"`
}

type solveResponse struct {
	Board      [9][9]uint8 `json:"board"`
	DurationMs int64       `json:"durationMs"`
	Nodes      int         `json:"nodes"`
}

func (h *Handlers) handleSolve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	in := &domain.Board{Values: req.Board}
	out, st, err := h.uc.Solve(c.Request.Context(), in)
	if err != nil {
		h.m.ObserveSolve(solveOutcome(err), st.Nodes, st.Duration)
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrNoSolution) || errors.Is(err, domain.ErrInvalidBoard) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error(), "nodes": st.Nodes})
		return
	}
	h.m.ObserveSolve(metrics.OutcomeSolved, st.Nodes, st.Duration)
	c.JSON(http.StatusOK, solveResponse{Board: out.Values, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

func solveOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoSolution):
		return metrics.OutcomeNoSolution
	case errors.Is(err, domain.ErrInvalidBoard):
		return metrics.OutcomeInvalidBoard
	default:
		return metrics.OutcomeError
	}
}

// ---- Validate ----

type validateRequest struct {
	Board [9][9]uint8 `json:"board"`
}

type validateResponse struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handlers) handleValidate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.uc.Validate(c.Request.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResponse{OK: ok, Conflicts: conflicts})
}

// ---- Generate ----

type generateRequest struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResponse struct {
	Board      domain.Board `json:"board"`
	Seed       int64        `json:"seed"`
	Difficulty string       `json:"difficulty"`
	DurationMs int64        `json:"durationMs"`
	Nodes      int          `json:"nodes"`
}

func (h *Handlers) handleGenerate(c *gin.Context) {
	var req generateRequest
	// an absent body is fine: defaults apply
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.uc.Generate(c.Request.Context(), seed, diff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.m.ObserveGenerate()
	c.JSON(http.StatusOK, generateResponse{
		Board:      p.Board,
		Seed:       seed,
		Difficulty: diff.String(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Hint ----

type hintRequest struct {
	Board   [9][9]uint8 `json:"board"`
	MaxTier string      `json:"maxTier,omitempty"`
}

type hintResponse struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handlers) handleHint(c *gin.Context) {
	var req hintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	hh, found, err := h.uc.Hint(c.Request.Context(), b, domain.ParseStrategyTier(req.MaxTier))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hintResponse{Found: found, Hint: hh})
}

// ---- Save / Load / List ----

func (h *Handlers) handleSave(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.uc.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

type loadRequest struct {
	ID string `json:"id" binding:"required"`
}

func (h *Handlers) handleLoad(c *gin.Context) {
	var req loadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON or missing id"})
		return
	}
	p, err := h.uc.Load(c.Request.Context(), req.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzle": p})
}

func (h *Handlers) handleList(c *gin.Context) {
	ps, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if ps == nil {
		ps = []domain.PuzzleMeta{}
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": ps})
}
