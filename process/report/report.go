package report

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/CxxxxDxxxF/gotlockz-bot/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mustDBFromEnv() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set in env")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	return gdb
}

type outcomeRow struct {
	Outcome string
	Cnt     int64
	AvgConf float64
}

type engineRow struct {
	EngineUsed string
	Cnt        int64
	AvgConf    float64
}

// RunReport prints a month-bounded recognition quality report (month in
// YYYY-MM): slips per outcome, per engine, and optionally the raw rows.
// Useful for spotting alias-table gaps (partial spikes) and engine drift.
func RunReport(month string, list bool) {
	gdb := mustDBFromEnv()

	t, err := time.Parse("2006-01", month)
	if err != nil {
		log.Fatalf("invalid month format, expected YYYY-MM: %v", err)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var total int64
	if err := gdb.Model(&models.SlipRecord{}).Where("created_at >= ? AND created_at < ?", start, end).Count(&total).Error; err != nil {
		log.Fatalf("count failed: %v", err)
	}
	fmt.Printf("Slip report for %s (UTC): %d slips\n", month, total)

	var byOutcome []outcomeRow
	if err := gdb.Raw(`SELECT outcome, COUNT(*) AS cnt, COALESCE(AVG(confidence),0) AS avg_conf
		FROM slip_records WHERE created_at >= ? AND created_at < ?
		GROUP BY outcome ORDER BY cnt DESC`, start, end).Scan(&byOutcome).Error; err != nil {
		log.Fatalf("outcome query failed: %v", err)
	}
	fmt.Println("By outcome:")
	for _, r := range byOutcome {
		fmt.Printf("  %-10s %6d avg_conf=%.2f\n", r.Outcome, r.Cnt, r.AvgConf)
	}

	var byEngine []engineRow
	if err := gdb.Raw(`SELECT engine_used, COUNT(*) AS cnt, COALESCE(AVG(confidence),0) AS avg_conf
		FROM slip_records WHERE created_at >= ? AND created_at < ? AND success
		GROUP BY engine_used ORDER BY cnt DESC`, start, end).Scan(&byEngine).Error; err != nil {
		log.Fatalf("engine query failed: %v", err)
	}
	fmt.Println("By engine (successful only):")
	for _, r := range byEngine {
		fmt.Printf("  %-18s %6d avg_conf=%.2f\n", r.EngineUsed, r.Cnt, r.AvgConf)
	}

	if list {
		var rows []models.SlipRecord
		if err := gdb.Where("created_at >= ? AND created_at < ?", start, end).Order("id").Find(&rows).Error; err != nil {
			log.Fatalf("fetch rows failed: %v", err)
		}
		for _, r := range rows {
			fmt.Printf("%d|%s|%s|%s|%s|%.2f|%s\n", r.ID, r.FileName, r.Outcome, r.Matchup, r.Odds, r.Confidence, r.CreatedAt.Format(time.RFC3339))
		}
	}
}
