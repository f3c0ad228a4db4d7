package storage

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultSweepInterval = time.Hour
	DefaultMaxFileAge    = time.Hour
)

// StartSweeper launches a background loop that removes staged files older
// than maxAge. Handlers delete their own files on every exit path; the
// sweeper only reclaims leftovers from crashed processes.
func (s *Store) StartSweeper(ctx context.Context, interval, maxAge time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxFileAge
	}
	go s.sweepLoop(ctx, interval, maxAge)
}

func (s *Store) sweepLoop(ctx context.Context, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(maxAge); err != nil {
				log.Printf("sweep uploads error: %v", err)
			}
		}
	}
}

// Sweep removes every staged file whose modification time is older than maxAge.
func (s *Store) Sweep(maxAge time.Duration) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			s.Remove(filepath.Join(s.dir, entry.Name()))
		}
	}
	return nil
}
