package client

import (
	"context"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// favoritesPusher is the slice of the server API the sync service needs.
type favoritesPusher interface {
	UpdateFavorites(ctx context.Context, codes []string) ([]string, error)
}

// SyncService pushes the local favorite set to the server in the
// background. Edits commit locally first; the push is best-effort and a
// failing server never surfaces an error to the caller. Rapid edits are
// coalesced: each Schedule re-arms a quiet-period timer and only the
// latest snapshot is sent.
type SyncService struct {
	pusher   favoritesPusher
	log      *slog.Logger
	quiet    time.Duration
	timeout  time.Duration
	onSynced func(codes []string)

	mu      sync.Mutex
	pending []string
	dirty   bool
	timer   *time.Timer
}

func NewSyncService(pusher favoritesPusher, log *slog.Logger, quiet, timeout time.Duration) *SyncService {
	return &SyncService{
		pusher:  pusher,
		log:     log,
		quiet:   quiet,
		timeout: timeout,
	}
}

// OnSynced registers a callback invoked with the server's copy of the
// favorites after a successful push.
func (s *SyncService) OnSynced(fn func(codes []string)) {
	s.onSynced = fn
}

// Schedule records the latest favorite set and arms the push timer. The
// snapshot replaces any pending one.
func (s *SyncService) Schedule(codes []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append([]string(nil), codes...)
	s.dirty = true

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.quiet, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.push(ctx)
	})
}

// Flush pushes any pending snapshot immediately. Short-lived commands
// call it before exiting so edits are not lost to the quiet period.
// Push failures are swallowed, same as for timed pushes.
func (s *SyncService) Flush(ctx context.Context) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	s.push(ctx)
}

func (s *SyncService) push(ctx context.Context) {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return
	}
	codes := append([]string(nil), s.pending...)
	s.dirty = false
	s.mu.Unlock()

	stored, err := s.pusher.UpdateFavorites(ctx, codes)
	if err != nil {
		// Local state is authoritative for the device; a failed push
		// just means the server catches up on the next one.
		s.log.Debug("favorites push failed", "error", err)
		return
	}

	s.log.Debug("favorites pushed", "count", len(stored))

	if s.onSynced != nil {
		s.onSynced(stored)
	}
}
