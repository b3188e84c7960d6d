package cmd

import (
	"evdealer/database"
	"evdealer/fixtures"
	"evdealer/repository"
	"evdealer/services"
	"evdealer/utils"

	"github.com/spf13/cobra"
)

var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in vehicle catalog, dealers and the default admin",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap()
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}

		ctx := cmd.Context()
		if _, _, err := fixtures.Seed(ctx, repository.NewVehicleRepository(db), repository.NewDealerRepository(db)); err != nil {
			return err
		}

		auth := services.NewAuthService(repository.NewStaffRepository(db), utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL))
		return auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword)
	},
}
