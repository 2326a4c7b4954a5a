package cmd

import (
	"github.com/gavvrail/MackDihh-sub000/configs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := configs.SetupDatabase(db); err != nil {
			return err
		}
		log.Info("schema migrated", zap.String("driver", db.Dialector.Name()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
