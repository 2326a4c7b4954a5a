package cmd

import (
	"github.com/gavvrail/MackDihh-sub000/configs"
	"github.com/spf13/cobra"
)

var seedCatalog bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the admin account and, with --catalog, a sample menu",
	Long: `Seed creates the admin from ADMIN_EMAIL/ADMIN_PASSWORD when missing.

Examples:
  mackdihh seed              # admin only
  mackdihh seed --catalog    # admin, sample menu, rewards and a WELCOME10 deal`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		if err := configs.SetupDatabase(db); err != nil {
			return err
		}
		if err := configs.SeedAdmin(db, cfg, log); err != nil {
			return err
		}
		if seedCatalog {
			if err := configs.SeedCatalog(db); err != nil {
				return err
			}
			log.Info("sample catalogue seeded")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().BoolVar(&seedCatalog, "catalog", false, "Also seed the sample menu, rewards and deal")
}
