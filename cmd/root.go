package cmd

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	RootCmdName  = "evdealer"
	RootCmdShort = "EV dealership console backend"
	RootCmdLong  = "evdealer serves the catalog, compare, booking and sales administration API of an electric-vehicle dealership."
)

var RootCmd = &cobra.Command{
	Use:   RootCmdName,
	Short: RootCmdShort,
	Long:  RootCmdLong,
}

func Execute() {
	if err := RootCmd.ExecuteContext(context.Background()); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(ServeCmd, MigrateCmd, SeedCmd)
}
