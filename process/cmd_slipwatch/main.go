package main

import (
	"flag"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/config"
	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/ocr"
	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/teams"
	"github.com/CxxxxDxxxF/gotlockz-bot/process/slipwatch"
)

func main() {
	dir := flag.String("dir", "public/slips", "directory to scan for slip images")
	processed := flag.String("processed", "", "processed directory (default sibling 'processed')")
	workers := flag.Int("workers", 0, "worker pool size (default 4)")
	watch := flag.Bool("watch", false, "keep watching the directory for new files")
	dryRun := flag.Bool("dry-run", false, "analyze and log only, no DB writes or moves")
	verbose := flag.Bool("verbose", false, "per-file logging")
	configPath := flag.String("config", "slip.yaml", "pipeline config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	registry := teams.NewRegistry()
	for league, aliases := range cfg.ExtraAliases {
		for alias, canonical := range aliases {
			registry.AddAlias(teams.League(league), alias, canonical)
		}
	}
	selector := ocr.NewSelector(ocr.BuildEngines(cfg.Engines), cfg.AcceptFloor)
	analyzer := ocr.NewAnalyzer(selector, registry, cfg.SanityFloor, cfg.DebugDir)

	var db *gorm.DB
	if !*dryRun {
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			log.Fatal("DB_DSN must be set (or use --dry-run)")
		}
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
	}

	opts := slipwatch.Options{
		Dir:          *dir,
		ProcessedDir: *processed,
		Workers:      *workers,
		Watch:        *watch,
		DryRun:       *dryRun,
		Verbose:      *verbose,
	}
	if err := slipwatch.Run(db, analyzer, opts); err != nil {
		log.Fatalf("slipwatch: %v", err)
	}
}
