package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/config"
	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/ocr"
	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/teams"
)

// Quick manual harness: run the full pipeline on one slip image and dump
// the result as JSON. Handy for tuning engine order and alias tables.
func main() {
	img := flag.String("img", "tmp/slip.png", "image file to analyze")
	configPath := flag.String("config", "slip.yaml", "pipeline config file")
	debug := flag.Bool("debug", false, "write the preprocessed artifact next to the config's debug dir")
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

	p, _ := filepath.Abs(*img)
	data, err := os.ReadFile(p)
	if err != nil {
		log.Fatalf("read %s: %v", p, err)
	}
	fmt.Printf("Analyzing %s\n", p)
	res := analyzer.AnalyzeImage(data, *debug)

	out, _ := json.MarshalIndent(res, "", "  ")
	fmt.Println(string(out))
	fmt.Printf("engine=%s conf=%.3f elapsed=%dms success=%t\n", res.EngineUsed, res.Confidence, res.ElapsedMs, res.Success)
}
