package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/cache"
	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/config"
	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/fetch"
	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/metrics"
	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/ocr"
	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/teams"
)

var jwtSecret []byte // loaded from env JWT_SECRET (fallback to dev default)

func main() {
	// Auto-load ./.env if present (no external dependency) before reading vars
	loadDotEnv()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}
	jwtSecret = []byte(secret)

	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	registry := buildRegistry(cfg)
	engines := ocr.BuildEngines(cfg.Engines)
	selector := ocr.NewSelector(engines, cfg.AcceptFloor)
	analyzer = ocr.NewAnalyzer(selector, registry, cfg.SanityFloor, cfg.DebugDir)
	debugMode = cfg.Debug
	fetcher = fetch.New(time.Duration(cfg.FetchTimeoutSeconds)*time.Second, cfg.MaxImageBytes)

	// Result cache is optional: without REDIS_ADDR every request runs OCR.
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		c, err := cache.Connect(addr, 24*time.Hour)
		if err != nil {
			log.Printf("redis %s unavailable, running without result cache: %v", addr, err)
		} else {
			resultCache = c
		}
	}

	// Support a lightweight migrate command: `./gotlockz_app migrate`
	// It runs AutoMigrate and seeding then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		fmt.Println("migration and seeding completed")
		return
	}

	initDB()

	metrics.Start(envDefault("METRICS_PORT", "9091"), func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})

	r := gin.Default()

	setupRoutes(r)

	r.Run(":" + envDefault("HTTP_PORT", "8081"))
}

// buildRegistry layers config-provided aliases over the built-in league tables.
func buildRegistry(cfg config.Config) *teams.Registry {
	reg := teams.NewRegistry()
	for league, aliases := range cfg.ExtraAliases {
		for alias, canonical := range aliases {
			reg.AddAlias(teams.League(league), alias, canonical)
		}
	}
	return reg
}

func configPath() string {
	if v := os.Getenv("SLIP_CONFIG"); v != "" {
		return v
	}
	return "slip.yaml"
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// loadDotEnv loads key=value pairs from a local .env file into the environment
// without overwriting variables that are already set. Lines starting with # are ignored.
func loadDotEnv() {
	path := ".env"
	if _, err := os.Stat(path); err != nil {
		return // no .env file
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// split on first '='
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			val := strings.TrimSpace(line[eq+1:])
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}
