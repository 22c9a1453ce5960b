package memory

import (
	"context"
	"sync/atomic"
	"time"

	"dog-profiles/internal/platform/logger"
	"dog-profiles/internal/ports/rows"

	"golang.org/x/sync/singleflight"
)

const refillKey = "rows"

type rowsEntry struct {
	rows      []rows.Row
	fetchedAt time.Time
}

// RowCache es un cache de una sola entrada con TTL delante de un rows.Source.
// La lectura es lock-free (atomic.Pointer); el refill pasa por singleflight,
// así que una estampida con el cache vencido produce un único fetch.
// Un fetch fallido no toca la entrada existente.
type RowCache struct {
	source rows.Source
	ttl    time.Duration
	now    func() time.Time
	log    logger.Logger

	entry atomic.Pointer[rowsEntry]
	group singleflight.Group
}

type Option func(*RowCache)

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(c *RowCache) {
		if now != nil {
			c.now = now
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(c *RowCache) {
		if l != nil {
			c.log = l
		}
	}
}

func NewRowCache(source rows.Source, ttl time.Duration, opts ...Option) *RowCache {
	if ttl < 0 {
		ttl = 0
	}
	c := &RowCache{
		source: source,
		ttl:    ttl,
		now:    time.Now,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RowCache) Rows(ctx context.Context) ([]rows.Row, error) {
	if e := c.fresh(); e != nil {
		return e.rows, nil
	}

	ch := c.group.DoChan(refillKey, func() (any, error) {
		// Otro refill pudo haber terminado mientras esperábamos turno.
		if e := c.fresh(); e != nil {
			return e.rows, nil
		}

		start := c.now()
		// El fetch es compartido: no lo cancela el primer caller que se va.
		fetched, err := c.source.Rows(context.WithoutCancel(ctx))
		if err != nil {
			c.log.Warn("rows refill failed", map[string]any{
				"kind":  rows.KindOf(err).String(),
				"error": err,
			})
			return nil, err
		}

		now := c.now()
		c.entry.Store(&rowsEntry{rows: fetched, fetchedAt: now})
		c.log.Debug("rows refilled", map[string]any{
			"count":       len(fetched),
			"duration_ms": now.Sub(start).Milliseconds(),
		})
		return fetched, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]rows.Row), nil
	}
}

// Invalidate descarta la entrada; el próximo Rows va al upstream.
func (c *RowCache) Invalidate() {
	c.entry.Store(nil)
}

// FetchedAt devuelve el momento del último fetch exitoso que sigue en el cache.
func (c *RowCache) FetchedAt() (time.Time, bool) {
	e := c.entry.Load()
	if e == nil {
		return time.Time{}, false
	}
	return e.fetchedAt, true
}

func (c *RowCache) fresh() *rowsEntry {
	e := c.entry.Load()
	if e == nil {
		return nil
	}
	if !c.now().Before(e.fetchedAt.Add(c.ttl)) {
		return nil
	}
	return e
}
