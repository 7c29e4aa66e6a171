package recognize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"mcp-food-vision/internal/logger"
	"mcp-food-vision/internal/models"
)

const (
	maxPromptHints = 50
	defaultPortion = "1 จาน"
)

var jsonArrayRe = regexp.MustCompile(`(?s)\[.*\]`)

// GeminiOptions configures the multimodal recognizer.
type GeminiOptions struct {
	APIKey  string
	Model   string
	BaseURL string
	// Hints are reference dish names offered to the model; at most 50 are used.
	Hints      []string
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// Gemini asks a multimodal generation model to list the dishes in a photo.
type Gemini struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
	prompt     string
	log        *logger.Logger
}

func NewGemini(opts GeminiOptions) *Gemini {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Gemini{
		httpClient: client,
		apiKey:     strings.TrimSpace(opts.APIKey),
		model:      opts.Model,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		prompt:     buildGeminiPrompt(opts.Hints),
		log:        log.With("component", "recognize.Gemini"),
	}
}

func (g *Gemini) Name() string {
	return g.model
}

func buildGeminiPrompt(hints []string) string {
	if len(hints) > maxPromptHints {
		hints = hints[:maxPromptHints]
	}
	var b strings.Builder
	b.WriteString(`You are a Thai food and nutrition expert. Identify every dish and drink visible in this photo.

Respond ONLY with a JSON array in this exact format:
[
  {
    "name": "dish name in Thai",
    "name_en": "dish name in English",
    "portion": "portion in Thai units, e.g. 1 จาน, 1 ชาม, 2 ไม้, 1 ฟอง, 1 แก้ว",
    "confidence": 0.0-1.0,
    "category": "grains|protein|vegetable|fruit|dairy|snack|beverage|dessert|soup|curry|main_dish",
    "cooking_method": "fried|grilled|steamed|boiled|stir-fried|raw|other"
  }
]

If no food is visible return [].`)
	if len(hints) > 0 {
		b.WriteString("\n\nPrefer these known dish names when they fit: ")
		b.WriteString(strings.Join(hints, ", "))
	}
	return b.String()
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiFood struct {
	Name          string   `json:"name"`
	NameEN        string   `json:"name_en"`
	Portion       string   `json:"portion"`
	Confidence    *float64 `json:"confidence"`
	Category      string   `json:"category"`
	CookingMethod string   `json:"cooking_method"`
}

func (g *Gemini) Recognize(ctx context.Context, img *Image) ([]models.RecognizedItem, error) {
	if g.apiKey == "" {
		return nil, ErrDisabled
	}

	text, err := g.generate(ctx, img)
	if err != nil {
		return nil, err
	}
	items, err := parseGeminiItems(text)
	if err != nil {
		g.log.Debug("unparseable model output", "error", err, "output", truncate(text, 300))
		return nil, err
	}
	return items, nil
}

func (g *Gemini) generate(ctx context.Context, img *Image) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: g.prompt},
				{InlineData: &geminiInlineData{MimeType: img.MIMEType, Data: img.Base64()}},
			},
		}},
		GenerationConfig: geminiGenerationConfig{Temperature: 0.1, MaxOutputTokens: 2048},
	}
	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	var b strings.Builder
	for _, c := range out.Candidates {
		for _, p := range c.Content.Parts {
			b.WriteString(p.Text)
		}
		if b.Len() > 0 {
			break
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("unexpected response format")
	}
	return b.String(), nil
}

// parseGeminiItems extracts the bracketed JSON array from free model text.
func parseGeminiItems(text string) ([]models.RecognizedItem, error) {
	raw := jsonArrayRe.FindString(text)
	if raw == "" {
		return nil, fmt.Errorf("no JSON array in model output")
	}
	var foods []geminiFood
	if err := json.Unmarshal([]byte(raw), &foods); err != nil {
		return nil, fmt.Errorf("failed to parse model output: %w", err)
	}

	items := make([]models.RecognizedItem, 0, len(foods))
	for _, f := range foods {
		name := strings.TrimSpace(f.Name)
		nameEN := strings.TrimSpace(f.NameEN)
		if name == "" {
			name = nameEN
		}
		if name == "" {
			continue
		}
		var confidence *float64
		if f.Confidence != nil {
			confidence = models.Score(clamp01(*f.Confidence))
		}
		portion := strings.TrimSpace(f.Portion)
		if portion == "" {
			portion = defaultPortion
		}
		items = append(items, models.RecognizedItem{
			Name:          name,
			NameEN:        nameEN,
			Portion:       portion,
			Confidence:    confidence,
			Category:      models.ParseCategory(strings.TrimSpace(f.Category)),
			CookingMethod: strings.TrimSpace(f.CookingMethod),
			Provenance:    models.ProvenancePrimaryVision,
		})
	}
	if len(items) == 0 {
		return nil, ErrNoFood
	}
	return items, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
