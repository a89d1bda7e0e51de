package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"room-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies db/schema.sql declaratively with the atlas CLI. Atlas diffs the
// live database against the file, so running it twice is a no-op.
func main() {
	var (
		schemaFile = flag.String("schema", "file://db/schema.sql", "desired schema (atlas URL)")
		devURL     = flag.String("dev-url", "docker://postgres/17/dev?search_path=public", "atlas dev database")
		dryRun     = flag.Bool("dry-run", false, "print the planned statements without applying them")
		timeout    = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadDBConfig()
	if err != nil {
		logger.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		logger.Error("atlas CLI is not available", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.BuildDSN(),
		To:          *schemaFile,
		DevURL:      *devURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		logger.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	for _, stmt := range res.Changes.Pending {
		logger.Info("planned", "stmt", stmt)
	}
	logger.Info("schema applied", "statements", len(res.Changes.Applied), "dry_run", *dryRun)
}
