package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskpulse/internal/model"
	"taskpulse/internal/taskstore"
	"taskpulse/pkg/daterange"
	"taskpulse/pkg/log"
)

const (
	defaultSnapshotSize = 128
	defaultSnapshotTTL  = 30 * time.Second
)

// Config tunes the insight use case.
type Config struct {
	// SnapshotSize and SnapshotTTL bound the per-scope task snapshot
	// cache. A cached snapshot keeps one resolve+filter+tally sequence
	// consistent and absorbs rapid filter changes from the UI.
	SnapshotSize int
	SnapshotTTL  time.Duration

	// Now is the clock used to anchor relative ranges and classification.
	// Defaults to time.Now; injected in tests.
	Now func() time.Time
}

// implUseCase is the private implementation of insight.UseCase.
type implUseCase struct {
	l         log.Logger
	repo      taskstore.Repository
	resolver  *daterange.Resolver
	snapshots *expirable.LRU[string, []model.Task]
	now       func() time.Time
}

// New creates a new insight UseCase implementation.
func New(l log.Logger, repo taskstore.Repository, resolver *daterange.Resolver, cfg Config) *implUseCase {
	size := cfg.SnapshotSize
	if size <= 0 {
		size = defaultSnapshotSize
	}
	ttl := cfg.SnapshotTTL
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &implUseCase{
		l:         l,
		repo:      repo,
		resolver:  resolver,
		snapshots: expirable.NewLRU[string, []model.Task](size, nil, ttl),
		now:       now,
	}
}
