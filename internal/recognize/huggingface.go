package recognize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"mcp-food-vision/internal/logger"
	"mcp-food-vision/internal/models"
)

const (
	classifierTopK     = 5
	classifierMinScore = 0.1
)

// HuggingFaceOptions configures the image-classification recognizer.
type HuggingFaceOptions struct {
	Token      string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// HuggingFace sends raw image bytes to a hosted image classifier and maps the
// top labels to dishes.
type HuggingFace struct {
	httpClient *http.Client
	token      string
	model      string
	baseURL    string
	log        *logger.Logger
}

func NewHuggingFace(opts HuggingFaceOptions) *HuggingFace {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &HuggingFace{
		httpClient: client,
		token:      strings.TrimSpace(opts.Token),
		model:      opts.Model,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		log:        log.With("component", "recognize.HuggingFace"),
	}
}

func (h *HuggingFace) Name() string {
	return h.model
}

type classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (h *HuggingFace) Recognize(ctx context.Context, img *Image) ([]models.RecognizedItem, error) {
	if h.token == "" {
		return nil, ErrDisabled
	}

	url := fmt.Sprintf("%s/%s", h.baseURL, h.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(img.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", img.MIMEType)
	req.Header.Set("Authorization", "Bearer "+h.token)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, truncate(string(body), 300))
	}

	var labels []classification
	if err := json.Unmarshal(body, &labels); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	items := itemsFromClassifications(labels, models.ProvenanceSecondaryVision)
	if len(items) == 0 {
		return nil, ErrNoFood
	}
	return items, nil
}

// itemsFromClassifications keeps the top-k labels above the minimum score, in
// descending score order.
func itemsFromClassifications(labels []classification, provenance models.Provenance) []models.RecognizedItem {
	sorted := make([]classification, 0, len(labels))
	for _, l := range labels {
		if strings.TrimSpace(l.Label) != "" && l.Score >= classifierMinScore {
			sorted = append(sorted, l)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
	if len(sorted) > classifierTopK {
		sorted = sorted[:classifierTopK]
	}

	items := make([]models.RecognizedItem, 0, len(sorted))
	for _, l := range sorted {
		items = append(items, itemFromLabel(l.Label, l.Score, provenance))
	}
	return items
}
