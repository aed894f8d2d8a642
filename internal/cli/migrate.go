package cli

import (
	"github.com/fundledger/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := load()
		if err != nil {
			return err
		}

		err = connect(cfg)
		if err != nil {
			return err
		}

		sqlDB, err := models.DB.DB()
		if err != nil {
			return err
		}

		log.Info().Str("path", cfg.DBPath).Msg("Database migrated")
		return sqlDB.Close()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
