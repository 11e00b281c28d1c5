package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/exactcover/internal/infrastructure/storage"
	"svw.info/exactcover/internal/ports"
	"svw.info/exactcover/internal/solver"
)

var (
	logLevel   string
	solverKind string

	logger *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "sudoku",
		Short: "Exact-cover Sudoku solver",
		Long: `sudoku solves, generates, and serves 9x9 Sudoku puzzles using an
exact-cover constraint engine (Algorithm X).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(logLevel)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&solverKind, "solver", "exactcover", "solver engine: exactcover|backtrack")
	rootCmd.AddCommand(solveCmd, generateCmd, serveCmd)
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func newSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	default:
		return solver.NewExactCoverSolver()
	}
}

func newStorage(kind, dataDir, dbPath string) (ports.Storage, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "sqlite":
		return storage.NewSQLite(dbPath)
	case "fs", "":
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, err
		}
		return storage.NewFS(dataDir), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
