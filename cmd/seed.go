/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/Aryan1212a/TripSync/config"
	"github.com/Aryan1212a/TripSync/internal/db"
	"github.com/Aryan1212a/TripSync/internal/seed"
	"github.com/Aryan1212a/TripSync/internal/store"
	"github.com/spf13/cobra"
)

// seedCmd represents the seed command.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the package catalog with the built-in seed data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		client, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("connect to mongo: %w", err)
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		repo := store.NewPackageRepository(db.Database(client, cfg))
		count, err := seed.Packages(cmd.Context(), repo)
		if err != nil {
			return fmt.Errorf("seed packages: %w", err)
		}

		fmt.Printf("seeded %d packages\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
