package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"krishi/database"
	"krishi/pkg/market"
	marketRepoImp "krishi/pkg/market/repositoryImp"
)

func newMigrateCmd(e *env) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := database.Open(e.cfg, e.log)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			e.log.Info("schema up to date")
			if !seed {
				return nil
			}

			table, err := market.LoadTable(e.cfg.MarketFallbackFile)
			if err != nil {
				return err
			}
			n, err := marketRepoImp.New(db).Seed(cmd.Context(), table.Entities())
			if err != nil {
				return err
			}
			e.log.Info("market prices seeded", zap.Int("rows", n))
			return nil
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "fill market_prices from the fallback table where a state/crop has no rows")
	return cmd
}
