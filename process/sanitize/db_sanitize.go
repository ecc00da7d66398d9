// Package sanitize holds the db_sanitize CLI behavior: truncate the app
// tables for a clean slate, optionally reseed roles and the admin user, and
// re-run team canonicalization over stored slips after alias table updates.
package sanitize

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/CxxxxDxxxF/gotlockz-bot/models"
	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/teams"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run executes the db_sanitize CLI behavior. Exported so a small cmd/main can call it.
func Run() {
	var (
		dryRun  = flag.Bool("dry-run", true, "Don't perform destructive actions; show what would be done")
		yes     = flag.Bool("yes", false, "Confirm destructive action (required to actually truncate)")
		reseed  = flag.Bool("reseed", false, "After truncation, reseed master roles and admin user")
		recanon = flag.Bool("recanon", false, "Instead of truncating, re-canonicalize team names on stored slips")
		tables  = flag.String("tables", "roles,users,refresh_tokens,slip_records", "Comma-separated list of tables to truncate (default app tables)")
	)
	flag.Parse()

	if os.Getenv("DB_DSN") == "" {
		log.Fatal("DB_DSN must be set to run db_sanitize")
	}
	gdb := mustInitDBFromEnv()

	if *recanon {
		recanonSlips(gdb, *dryRun)
		return
	}

	// validate table names so the TRUNCATE statement cannot be steered
	nameRe := regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	parts := strings.Split(*tables, ",")
	wanted := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !nameRe.MatchString(p) {
			log.Printf("warning: skipping invalid table name '%s'", p)
			continue
		}
		wanted = append(wanted, p)
	}

	existing := []string{}
	for _, t := range wanted {
		var cnt int64
		if err := gdb.Raw("SELECT count(*) FROM pg_tables WHERE schemaname = 'public' AND tablename = ?", t).Scan(&cnt).Error; err != nil {
			log.Fatalf("failed to query pg_tables for %s: %v", t, err)
		}
		if cnt > 0 {
			existing = append(existing, t)
		} else {
			log.Printf("info: table %s not found, skipping", t)
		}
	}
	if len(existing) == 0 {
		log.Println("no requested tables present in the database; nothing to do")
		return
	}

	fmt.Println("Tables considered for truncation:")
	for _, t := range existing {
		fmt.Printf(" - %s\n", t)
	}

	if *dryRun {
		fmt.Println("dry-run enabled; no changes will be made. Use --dry-run=false --yes to execute.")
		return
	}
	if !*yes {
		fmt.Println("Destructive operation. Pass --yes to confirm execution. Aborting.")
		return
	}

	quoted := make([]string, 0, len(existing))
	for _, t := range existing {
		quoted = append(quoted, fmt.Sprintf("\"%s\"", t))
	}
	stmt := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(quoted, ", "))
	log.Printf("Executing: %s", stmt)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := gdb.WithContext(ctx).Exec(stmt).Error; err != nil {
		log.Fatalf("truncate failed: %v", err)
	}
	log.Println("Truncate completed.")

	if *reseed {
		if err := reseedRolesAndAdmin(gdb); err != nil {
			log.Fatalf("reseed failed: %v", err)
		}
	}
}

// recanonSlips re-applies the current alias tables to stored away/home
// names. Run after extending ExtraAliases so historic partial parses pick
// up the new canonical forms.
func recanonSlips(gdb *gorm.DB, dry bool) {
	reg := teams.NewRegistry()
	var slips []models.SlipRecord
	if err := gdb.Where("away_team <> '' OR home_team <> ''").Find(&slips).Error; err != nil {
		log.Fatalf("fetch slips: %v", err)
	}
	updated := 0
	for i := range slips {
		s := &slips[i]
		away := reg.Canonicalize(s.AwayTeam)
		home := reg.Canonicalize(s.HomeTeam)
		if away == s.AwayTeam && home == s.HomeTeam {
			continue
		}
		updated++
		if dry {
			fmt.Printf("DRY: slip id=%d %q/%q -> %q/%q\n", s.ID, s.AwayTeam, s.HomeTeam, away, home)
			continue
		}
		s.AwayTeam = away
		s.HomeTeam = home
		s.Matchup = away + " @ " + home
		if err := gdb.Save(s).Error; err != nil {
			log.Printf("save slip %d: %v", s.ID, err)
		}
	}
	log.Printf("recanon: %d of %d slips %s", updated, len(slips), map[bool]string{true: "would change", false: "updated"}[dry])
}

func reseedRolesAndAdmin(gdb *gorm.DB) error {
	roles := []models.Role{{Name: "administrator", Description: "full access"}, {Name: "user", Description: "regular user"}}
	for _, r := range roles {
		if err := gdb.Where("name = ?", r.Name).FirstOrCreate(&r).Error; err != nil {
			return fmt.Errorf("failed to ensure role %s: %w", r.Name, err)
		}
	}
	var role models.Role
	if err := gdb.Where("name = ?", "administrator").First(&role).Error; err != nil {
		return fmt.Errorf("failed to find administrator role: %w", err)
	}
	rid := role.ID
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := models.User{Username: "admin", HashedPassword: hashed, RoleID: &rid}
	if err := gdb.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

// mustInitDBFromEnv is a light DB initializer used by this CLI.
func mustInitDBFromEnv() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatalf("DB_DSN must be set in environment to run this tool")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return gdb
}
