// Package api serves transit queries over HTTP.
//
// The network is held as an immutable snapshot behind an atomic pointer.
// Reload builds a new network and swaps the pointer; in-flight requests
// finish on the snapshot they started with. Route answers are memoized in
// an LRU keyed by snapshot generation, so a reload never serves stale routes.
package api

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bluele/gcache"
	"github.com/pkg/errors"

	"github.com/katalvlaran/transitgraph/internal/logger"
	"github.com/katalvlaran/transitgraph/lineaware"
	"github.com/katalvlaran/transitgraph/transit"
)

// LoadFunc builds a fresh network, typically from the configured file.
type LoadFunc func() (*transit.Network, error)

// Options configures a Service.
type Options struct {
	QueryTimeout   time.Duration
	ChangeTime     float64
	ChangeDistance float64
	CacheSize      int // 0 disables route caching
	Logger         logger.Logger
}

type snapshot struct {
	gen    uint64
	net    *transit.Network
	loaded time.Time
}

// Service owns the current network snapshot and the route cache.
type Service struct {
	load    LoadFunc
	opts    Options
	log     logger.Logger
	current atomic.Pointer[snapshot]
	gen     atomic.Uint64
	cache   gcache.Cache
}

// NewService loads the first snapshot. It fails if that load fails.
func NewService(load LoadFunc, opts Options) (*Service, error) {
	if load == nil {
		return nil, errors.New("api: nil load function")
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 5 * time.Second
	}
	s := &Service{load: load, opts: opts, log: opts.Logger}
	if opts.CacheSize > 0 {
		s.cache = gcache.New(opts.CacheSize).LRU().Build()
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the snapshot. On failure the previous snapshot stays.
func (s *Service) Reload() error {
	net, err := s.load()
	if err != nil {
		s.log.Error("Network reload failed, keeping previous snapshot", "error", err)
		return errors.Wrap(err, "reload network")
	}
	snap := &snapshot{gen: s.gen.Add(1), net: net, loaded: time.Now()}
	s.current.Store(snap)
	s.log.Info("Network loaded",
		"generation", snap.gen,
		"stops", len(net.AllStops()),
		"lines", len(net.AllLines()),
	)
	return nil
}

func (s *Service) snapshot() *snapshot {
	return s.current.Load()
}

// Network returns the current network.
func (s *Service) Network() *transit.Network {
	return s.snapshot().net
}

// Generation counts successful loads.
func (s *Service) Generation() uint64 {
	return s.snapshot().gen
}

// DefaultPenalty is the configured change penalty for m.
func (s *Service) DefaultPenalty(m lineaware.Metric) float64 {
	if m == lineaware.Distance {
		return s.opts.ChangeDistance
	}
	return s.opts.ChangeTime
}

// Route answers an optimal-route query on the current snapshot within the
// configured query timeout.
func (s *Service) Route(ctx context.Context, from, to string, metric lineaware.Metric, penalty float64) (*lineaware.Route, *transit.Network, error) {
	snap := s.snapshot()
	key := fmt.Sprintf("%d|%s|%s|%s|%g", snap.gen, from, to, metric, penalty)
	if s.cache != nil {
		if cached, err := s.cache.Get(key); err == nil {
			return cached.(*lineaware.Route), snap.net, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	start := time.Now()
	r, err := lineaware.OptimalRoute(ctx, snap.net, from, to, metric, penalty)
	if err != nil {
		return nil, nil, err
	}
	s.log.Debug("Route computed",
		"from", from, "to", to, "metric", metric.String(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if s.cache != nil {
		if err := s.cache.Set(key, r); err != nil {
			s.log.Warn("Route cache set failed", "error", err)
		}
	}
	return r, snap.net, nil
}
