package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jobforge/status-board/internal/config"
	"github.com/jobforge/status-board/internal/store"
	"github.com/jobforge/status-board/pkg/log"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run the database migrations and seed the default job type",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		logger := log.InitLog(zap.NewAtomicLevelAt(zap.InfoLevel))
		defer func() { _ = logger.Sync() }()
		undo := zap.ReplaceGlobals(logger)
		defer undo()

		db, err := store.InitDB(cfg)
		if err != nil {
			return err
		}

		s := store.NewStore(db)
		defer s.Close()

		if err := s.InitialMigration(); err != nil {
			return err
		}

		if err := s.Seed(); err != nil {
			return err
		}

		zap.S().Info("migration completed")
		return nil
	},
}
