// Command migrate applies migrations/schema.sql declaratively with the Atlas
// CLI and optionally loads migrations/seed.sql.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"booking-engine/internal/infra/db"
	"booking-engine/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

func main() {
	var (
		schemaFile = flag.String("schema", "migrations/schema.sql", "desired schema")
		seedFile   = flag.String("seed", "migrations/seed.sql", "seed data, loaded after the schema")
		devURL     = flag.String("dev-url", "docker://postgres/17/dev", "Atlas dev database used to compute the diff")
		seed       = flag.Bool("with-seed", false, "load seed data")
		dryRun     = flag.Bool("dry-run", false, "print the plan without applying it")
	)
	flag.Parse()

	_ = godotenv.Load()

	if err := run(*schemaFile, *seedFile, *devURL, *seed, *dryRun); err != nil {
		slog.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}
	slog.Info("マイグレーションが完了しました")
}

func run(schemaFile, seedFile, devURL string, seed, dryRun bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return errors.Wrap(err, "failed to initialize atlas client")
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          "file://" + schemaFile,
		DevURL:      devURL,
		DryRun:      dryRun,
		AutoApprove: true,
	})
	if err != nil {
		return errors.Wrap(err, "failed to apply schema")
	}
	slog.Info("スキーマを適用しました", "statements", len(res.Changes.Applied), "dry_run", dryRun)

	if !seed || dryRun {
		return nil
	}

	content, err := os.ReadFile(seedFile)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", seedFile)
	}

	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, string(content)); err != nil {
		return errors.Wrap(err, "failed to load seed data")
	}
	slog.Info("シードデータを投入しました", "file", seedFile)
	return nil
}
