// Package enrich fills in nutrition for recognized items, first from the
// reference database and otherwise from an external food-facts search.
package enrich

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"mcp-food-vision/internal/fooddb"
	"mcp-food-vision/internal/logger"
	"mcp-food-vision/internal/models"
)

const (
	// SourceID identifies external lookups in analysis metadata.
	SourceID = "openfoodfacts"

	DefaultTimeout     = 3 * time.Second
	DefaultConcurrency = 4
)

// Source looks up per-100g nutrition by English food name.
type Source interface {
	Search(ctx context.Context, query string) (*models.Nutrients, error)
}

type Options struct {
	Database *fooddb.Database
	// Source may be nil, in which case only reference matching is done.
	Source      Source
	Timeout     time.Duration
	Concurrency int
	Logger      *logger.Logger
}

// Enricher decorates recognized items with a reference key or an external
// nutrition snapshot. Lookup failures never propagate.
type Enricher struct {
	db          *fooddb.Database
	source      Source
	timeout     time.Duration
	concurrency int
	log         *logger.Logger
}

func New(opts Options) *Enricher {
	db := opts.Database
	if db == nil {
		db = fooddb.Default()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Enricher{
		db:          db,
		source:      opts.Source,
		timeout:     timeout,
		concurrency: concurrency,
		log:         log.With("component", "enrich.Enricher"),
	}
}

// Enrich returns a new slice in the same order as items. External lookups run
// concurrently, each bounded by the enricher's timeout.
func (e *Enricher) Enrich(ctx context.Context, items []models.RecognizedItem) []models.RecognizedItem {
	out := make([]models.RecognizedItem, len(items))

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, item := range items {
		if key, ok := e.reference(item); ok {
			item.ReferenceKey = key
			item.Provenance = models.ProvenanceReferenceDB
			out[i] = item
			continue
		}
		out[i] = item
		if e.source == nil {
			continue
		}
		i, item := i, item
		g.Go(func() error {
			if n := e.lookup(ctx, item); n != nil {
				item.External = n
				item.Provenance = models.ProvenanceExternalLookup
				out[i] = item
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (e *Enricher) reference(item models.RecognizedItem) (string, bool) {
	if key, ok := e.db.Find(item.Name); ok {
		return key, true
	}
	return e.db.Find(item.NameEN)
}

func (e *Enricher) lookup(ctx context.Context, item models.RecognizedItem) *models.Nutrients {
	query := strings.TrimSpace(strings.ReplaceAll(item.NameEN, "_", " "))
	if query == "" {
		return nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	n, err := e.source.Search(lookupCtx, query)
	switch {
	case errors.Is(err, ErrNotFound):
		e.log.Debug("no external match", "query", query)
		return nil
	case err != nil:
		e.log.Warn("external lookup failed", "query", query, "error", err)
		return nil
	case n == nil || !n.PlausiblePer100g():
		e.log.Warn("discarding implausible external nutrition", "query", query)
		return nil
	}
	return n
}
