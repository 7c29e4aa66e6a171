// Package recognize turns a food photo into candidate items. Several
// interchangeable strategies are tried in a fixed priority order; each one may
// fail or be disabled without aborting the analysis.
package recognize

import (
	"context"
	"errors"
	"math"

	"mcp-food-vision/internal/logger"
	"mcp-food-vision/internal/models"
)

var (
	// ErrDisabled is returned by a recognizer whose credential is not configured.
	ErrDisabled = errors.New("recognizer disabled")
	// ErrNoFood is returned when the provider answered but found nothing usable.
	ErrNoFood = errors.New("no food recognized")
)

// Recognizer turns an image into candidate food items.
type Recognizer interface {
	// Name is the model identifier reported in analysis metadata.
	Name() string
	Recognize(ctx context.Context, img *Image) ([]models.RecognizedItem, error)
}

// Outcome is the result of running a Chain.
type Outcome struct {
	Items []models.RecognizedItem
	// Model is the identifier of the recognizer that supplied Items, or ""
	// when none did.
	Model string
}

// Chain runs recognizers in priority order and stops at the first one that
// returns at least one item.
type Chain struct {
	recognizers []Recognizer
	log         *logger.Logger
}

// NewChain builds a chain. Nil recognizers are skipped.
func NewChain(log *logger.Logger, recognizers ...Recognizer) *Chain {
	if log == nil {
		log = logger.Nop()
	}
	c := &Chain{log: log.With("component", "recognize.Chain")}
	for _, r := range recognizers {
		if r != nil {
			c.recognizers = append(c.recognizers, r)
		}
	}
	return c
}

// Names lists the configured recognizers in priority order.
func (c *Chain) Names() []string {
	names := make([]string, 0, len(c.recognizers))
	for _, r := range c.recognizers {
		names = append(names, r.Name())
	}
	return names
}

// Recognize never fails: recognizer errors are logged and the next strategy is
// tried. An empty Outcome means nothing was recognized.
func (c *Chain) Recognize(ctx context.Context, img *Image) Outcome {
	for _, r := range c.recognizers {
		if ctx.Err() != nil {
			c.log.Warn("recognition cancelled", "error", ctx.Err())
			return Outcome{}
		}
		items, err := r.Recognize(ctx, img)
		switch {
		case errors.Is(err, ErrDisabled):
			c.log.Debug("recognizer disabled", "model", r.Name())
			continue
		case errors.Is(err, ErrNoFood):
			c.log.Debug("recognizer found no food", "model", r.Name())
			continue
		case err != nil:
			c.log.Warn("recognizer failed", "model", r.Name(), "error", err)
			continue
		case len(items) == 0:
			c.log.Debug("recognizer returned no items", "model", r.Name())
			continue
		}
		c.log.Debug("recognized items", "model", r.Name(), "count", len(items))
		return Outcome{Items: items, Model: r.Name()}
	}
	return Outcome{}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
