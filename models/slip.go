package models

import "time"

// SlipRecord is one stored bet slip analysis. Leg fields are flattened for
// the single-leg template family; RawText keeps the filtered OCR lines so
// degraded parses can be reviewed by a human.
type SlipRecord struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	RequestID string `gorm:"size:64;uniqueIndex;not null"`
	UserID    *uint  `gorm:"index"` // nil for slips ingested by the watcher
	FileName  string `gorm:"size:255"`

	Success    bool    `gorm:"index"`
	EngineUsed string  `gorm:"size:64"`
	Confidence float64 `gorm:""`
	Outcome    string  `gorm:"size:16;index"` // parsed / partial / unparsed
	ElapsedMs  int64

	PickLine string `gorm:"size:255"`
	BetType  string `gorm:"size:128"`
	Matchup  string `gorm:"size:255"`
	AwayTeam string `gorm:"size:128"`
	HomeTeam string `gorm:"size:128"`
	Odds     string `gorm:"size:16"`
	RawText  string `gorm:"type:text"`
	Error    string `gorm:"size:255"`
}
