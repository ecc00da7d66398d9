// Package slipwatch scans a drop directory for bet slip screenshots, runs
// each through the recognition pipeline, stores the result and moves the
// file into a processed directory so it is only handled once. With Watch
// enabled it keeps running on fsnotify events.
package slipwatch

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CxxxxDxxxF/gotlockz-bot/models"
	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/ocr"
)

type Options struct {
	Dir          string // directory to scan for slip images
	ProcessedDir string // where handled files are moved
	Workers      int
	Watch        bool
	DryRun       bool // analyze and log, no DB writes and no moves
	Verbose      bool
}

type runner struct {
	db       *gorm.DB
	analyzer *ocr.Analyzer
	opts     Options

	mu   sync.Mutex
	seen map[string]bool // file names already stored this run
}

// Run scans opts.Dir once with a worker pool, then optionally keeps
// watching for new files. Blocks until the watch is stopped (never, in
// practice) or the initial scan completes.
func Run(db *gorm.DB, analyzer *ocr.Analyzer, opts Options) error {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.ProcessedDir == "" {
		opts.ProcessedDir = filepath.Join(filepath.Dir(opts.Dir), "processed")
	}
	r := &runner{db: db, analyzer: analyzer, opts: opts, seen: map[string]bool{}}
	r.preloadSeen()

	files := listImageFiles(opts.Dir)
	log.Printf("slipwatch: scanning %d files in %s (workers=%d)", len(files), opts.Dir, opts.Workers)
	r.runPool(files, nil)

	if !opts.Watch {
		return nil
	}
	return r.watch()
}

// preloadSeen loads file names already recorded so a rescan does not
// re-analyze slips that were stored but not moved (dry runs, crashes).
func (r *runner) preloadSeen() {
	if r.db == nil {
		return
	}
	var names []string
	if err := r.db.Model(&models.SlipRecord{}).Where("file_name <> ''").Pluck("file_name", &names).Error; err != nil {
		log.Printf("slipwatch: preload failed: %v", err)
		return
	}
	for _, n := range names {
		r.seen[n] = true
	}
	log.Printf("slipwatch: preloaded %d processed names", len(names))
}

func (r *runner) runPool(initial []string, extra <-chan string) {
	fileCh := make(chan string, 256)
	var wg sync.WaitGroup
	for i := 0; i < r.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range fileCh {
				r.processOne(name)
			}
		}()
	}
	go func() {
		for _, f := range initial {
			fileCh <- f
		}
		if extra != nil {
			for n := range extra {
				fileCh <- n
			}
		}
		close(fileCh)
	}()
	wg.Wait()
}

func (r *runner) watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(r.opts.Dir); err != nil {
		return err
	}
	log.Printf("slipwatch: watching %s (debounced)", r.opts.Dir)

	fileCh := make(chan string, 256)
	go func() {
		defer close(fileCh)
		// debounce so half-written files settle before we read them
		pending := map[string]time.Time{}
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write) != 0 {
					name := filepath.Base(ev.Name)
					if isSupportedExt(name) {
						pending[name] = time.Now()
					}
				}
			case <-ticker.C:
				now := time.Now()
				for name, t := range pending {
					if now.Sub(t) > 300*time.Millisecond {
						fileCh <- name
						delete(pending, name)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("slipwatch: watch error: %v", err)
			}
		}
	}()

	r.runPool(nil, fileCh)
	return nil
}

func (r *runner) markSeen(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seen[name] {
		return false
	}
	r.seen[name] = true
	return true
}

func (r *runner) processOne(name string) {
	if !r.markSeen(name) {
		r.logV("SKIP already handled %s", name)
		return
	}
	full := filepath.Join(r.opts.Dir, name)
	data, err := os.ReadFile(full)
	if err != nil {
		log.Printf("slipwatch: read %s: %v", name, err)
		return
	}
	res := r.analyzer.AnalyzeImage(data, false)
	if r.opts.DryRun {
		log.Printf("DRY %s success=%t engine=%s conf=%.2f", name, res.Success, res.EngineUsed, res.Confidence)
		return
	}

	rec := models.SlipRecord{
		RequestID:  uuid.NewString(),
		FileName:   name,
		Success:    res.Success,
		EngineUsed: res.EngineUsed,
		Confidence: res.Confidence,
		ElapsedMs:  res.ElapsedMs,
		Error:      res.Err,
	}
	if res.Slip != nil && len(res.Slip.Legs) > 0 {
		leg := res.Slip.Legs[0]
		rec.Outcome = string(res.Slip.Outcome)
		rec.PickLine = leg.PickLine
		rec.BetType = leg.BetType
		rec.Matchup = leg.Matchup
		rec.AwayTeam = leg.AwayTeam
		rec.HomeTeam = leg.HomeTeam
		rec.Odds = leg.Odds
		rec.RawText = leg.RawText
	}
	if err := r.db.Create(&rec).Error; err != nil {
		log.Printf("slipwatch: store %s: %v", name, err)
		return
	}
	log.Printf("STORED %s outcome=%s engine=%s conf=%.2f", name, rec.Outcome, rec.EngineUsed, rec.Confidence)

	if err := r.moveToProcessed(full, name); err != nil {
		log.Printf("slipwatch: WARN move %s: %v", name, err)
	}
}

func (r *runner) logV(format string, args ...any) {
	if r.opts.Verbose {
		log.Printf(format, args...)
	}
}

func listImageFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !isSupportedExt(e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

func isSupportedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}

// moveToProcessed renames the handled file into the processed directory,
// falling back to copy+remove across filesystems.
func (r *runner) moveToProcessed(srcFullPath, name string) error {
	if err := os.MkdirAll(r.opts.ProcessedDir, 0o755); err != nil {
		return err
	}
	dst := filepath.Join(r.opts.ProcessedDir, name)
	if err := os.Rename(srcFullPath, dst); err == nil {
		return nil
	}
	return copyRemove(srcFullPath, dst)
}

func copyRemove(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	_ = out.Close()
	return os.Remove(src)
}
