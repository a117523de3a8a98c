/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/friendsincode/sintesi/internal/catalog"
	"github.com/friendsincode/sintesi/internal/db"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect recorded build runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded build runs, newest first",
	RunE:  runRunsList,
}

var runsListLimit int

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd)

	runsListCmd.Flags().IntVar(&runsListLimit, "limit", 20, "Maximum number of runs to show")
}

func runRunsList(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	if !cfg.CatalogEnabled() {
		return fmt.Errorf("run catalog is not configured (set catalog.dsn or SINTESI_CATALOG_DSN)")
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect catalog database: %w", err)
	}
	defer db.Close(conn)

	svc, err := catalog.NewService(conn, logger)
	if err != nil {
		return fmt.Errorf("initialize catalog: %w", err)
	}

	runs, err := svc.List(context.Background(), runsListLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %s  seed=%d  total=%d  reference=%s  %s\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.Strategy,
			run.Seed,
			run.TotalObjects,
			run.ReferenceDate.Format("2006-01-02"),
			run.ID,
		)
		for _, a := range run.Artifacts {
			fmt.Printf("    %-11s %6d rows  sha256=%.12s  %s\n", a.Split, a.Rows, a.SHA256, a.Path)
		}
	}
	return nil
}
