package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpadapter "svw.info/exactcover/internal/adapters/http"
	"svw.info/exactcover/internal/generator"
	"svw.info/exactcover/internal/hint"
	"svw.info/exactcover/internal/metrics"
	"svw.info/exactcover/internal/usecase"
	"svw.info/exactcover/internal/validator"
)

var (
	serveAddr    string
	serveStorage string
	serveDataDir string
	serveDBPath  string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveStorage, "storage", "fs", "storage backend: fs|sqlite")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "./data", "fs storage directory")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "./puzzles.db", "sqlite database path")
}

func runServe(cmd *cobra.Command, args []string) error {
	store, err := newStorage(serveStorage, serveDataDir, serveDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	s := newSolver(solverKind)
	uc := usecase.NewService(s, generator.New(s), validator.New(), hint.New(), store)
	m := metrics.New()

	gin.SetMode(gin.ReleaseMode)
	router := httpadapter.NewRouter(logger, httpadapter.New(uc, m), m)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", serveAddr, "solver", solverKind, "storage", serveStorage)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
