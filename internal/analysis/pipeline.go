// Package analysis turns a food photo into an itemized nutrition estimate:
// recognition, enrichment, aggregation and dietary recommendations.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"mcp-food-vision/internal/enrich"
	"mcp-food-vision/internal/fooddb"
	"mcp-food-vision/internal/logger"
	"mcp-food-vision/internal/models"
	"mcp-food-vision/internal/recognize"
)

// PortionAccuracy is the fixed confidence reported for portion estimates.
const PortionAccuracy = 0.75

// ItemRecognizer is satisfied by *recognize.Chain.
type ItemRecognizer interface {
	Recognize(ctx context.Context, img *recognize.Image) recognize.Outcome
}

// ItemEnricher is satisfied by *enrich.Enricher.
type ItemEnricher interface {
	Enrich(ctx context.Context, items []models.RecognizedItem) []models.RecognizedItem
}

type Options struct {
	Recognizer ItemRecognizer
	// Enricher may be nil to skip enrichment.
	Enricher ItemEnricher
	Database *fooddb.Database
	Logger   *logger.Logger
}

// Pipeline runs one analysis per call. It holds no per-request state and is
// safe for concurrent use.
type Pipeline struct {
	recognizer ItemRecognizer
	enricher   ItemEnricher
	aggregator *Aggregator
	log        *logger.Logger
}

func NewPipeline(opts Options) *Pipeline {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	recognizer := opts.Recognizer
	if recognizer == nil {
		recognizer = recognize.NewChain(log)
	}
	return &Pipeline{
		recognizer: recognizer,
		enricher:   opts.Enricher,
		aggregator: NewAggregator(opts.Database),
		log:        log.With("component", "analysis.Pipeline"),
	}
}

// AnalyzeBase64 decodes a base64 or data-URI image and analyzes it.
func (p *Pipeline) AnalyzeBase64(ctx context.Context, payload string) (*models.AnalysisResult, error) {
	img, err := recognize.DecodeImage(payload)
	if err != nil {
		return nil, p.fail(err)
	}
	return p.Analyze(ctx, img)
}

// Analyze returns a complete result or a single *AnalysisError. Recognizer
// and lookup failures degrade the result instead of failing it.
func (p *Pipeline) Analyze(ctx context.Context, img *recognize.Image) (result *models.AnalysisResult, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, p.fail(fmt.Errorf("panic: %v", r))
		}
	}()

	if img == nil || len(img.Data) == 0 {
		return nil, p.fail(errors.New("empty image"))
	}
	if err := ctx.Err(); err != nil {
		return nil, p.fail(err)
	}

	modelsUsed := []string{}
	outcome := p.recognizer.Recognize(ctx, img)
	if outcome.Model != "" {
		modelsUsed = append(modelsUsed, outcome.Model)
	}

	items := outcome.Items
	if p.enricher != nil && len(items) > 0 {
		items = p.enricher.Enrich(ctx, items)
	}

	agg := p.aggregator.Aggregate(items)
	if err := checkFinite(agg); err != nil {
		return nil, p.fail(err)
	}

	var external, reference bool
	for _, c := range agg.Components {
		switch c.Provenance {
		case models.ProvenanceExternalLookup:
			external = true
		case models.ProvenanceReferenceDB:
			reference = true
		}
	}
	if external {
		modelsUsed = append(modelsUsed, enrich.SourceID)
	}
	if reference {
		modelsUsed = append(modelsUsed, fooddb.SourceID)
	}

	recommendations, warnings := Recommend(agg.Totals)
	result = &models.AnalysisResult{
		ID:               uuid.NewString(),
		Success:          true,
		Components:       agg.Components,
		Totals:           agg.Totals,
		ProcessingTimeMS: time.Since(start).Milliseconds(),
		Recommendations:  recommendations,
		Warnings:         warnings,
		Confidence:       agg.Confidence,
		ImageAnalysis: models.ImageAnalysis{
			ItemsDetected:       len(outcome.Items),
			RecognitionAccuracy: agg.Confidence,
			PortionAccuracy:     PortionAccuracy,
			ModelsUsed:          modelsUsed,
		},
	}
	p.log.Info("food analysis complete",
		"id", result.ID,
		"items_detected", len(outcome.Items),
		"components", len(agg.Components),
		"fallback", agg.Fallback,
		"calories", agg.Totals.Calories,
		"elapsed_ms", result.ProcessingTimeMS,
	)
	return result, nil
}

func (p *Pipeline) fail(cause error) error {
	p.log.Error("food analysis failed", "error", cause)
	return &AnalysisError{Cause: cause}
}

func checkFinite(agg Aggregate) error {
	values := func(n models.Nutrients) []float64 {
		return []float64{n.Calories, n.Protein, n.Carbs, n.Fat, n.Fiber, n.Sodium}
	}
	all := values(agg.Totals)
	for _, c := range agg.Components {
		all = append(all, values(c.Nutrients)...)
		all = append(all, c.Grams)
	}
	for _, v := range all {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("nutrition values are not finite")
		}
	}
	return nil
}
