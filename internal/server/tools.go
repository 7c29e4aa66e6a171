// internal/server/tools.go
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"

	"mcp-food-vision/internal/models"
	"mcp-food-vision/internal/portion"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

type AnalyzeFoodImageParams struct {
	Image string `json:"image" description:"Base64 encoded photo, optionally as a data URI"`
	Save  bool   `json:"save,omitempty" description:"Store the result in the analysis history"`
}

type GetAnalysesParams struct {
	StartDate string `json:"start_date,omitempty" description:"Start date for the query (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" description:"End date for the query (YYYY-MM-DD)"`
	Limit     int    `json:"limit,omitempty" description:"Maximum number of analyses to return"`
}

type LookupFoodParams struct {
	Name string `json:"name" description:"Dish name in Thai or English, or a classifier label"`
}

type EstimatePortionParams struct {
	Name    string `json:"name,omitempty" description:"Dish name used to find portion sizes"`
	Portion string `json:"portion" description:"Portion description, e.g. 1 จาน or 2 skewers"`
}

type LookupFoodResult struct {
	Query string                     `json:"query"`
	Found bool                       `json:"found"`
	Entry *models.ReferenceFoodEntry `json:"entry,omitempty"`
}

type EstimatePortionResult struct {
	Name         string  `json:"name,omitempty"`
	Portion      string  `json:"portion"`
	Grams        float64 `json:"grams"`
	ReferenceKey string  `json:"reference_key,omitempty"`
}

// extractParams decodes the request arguments into target.
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal arguments: %v", errBadRequest, err)
	}

	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("%w: failed to unmarshal parameters: %v", errBadRequest, err)
	}

	return nil
}

func (s *FoodVisionServer) handleAnalyzeFoodImage(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params AnalyzeFoodImageParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Image) == "" {
		return nil, fmt.Errorf("%w: image is required", errBadRequest)
	}

	result, err := s.analyzer.AnalyzeBase64(ctx, params.Image)
	if err != nil {
		return nil, err
	}

	if params.Save {
		if err := s.storage.SaveAnalysis(ctx, result, time.Now()); err != nil {
			return nil, fmt.Errorf("failed to save analysis: %w", err)
		}
	}

	return s.createJSONResponse(result)
}

func (s *FoodVisionServer) handleGetAnalyses(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params GetAnalysesParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	for _, d := range []string{params.StartDate, params.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, d); err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", errBadRequest, d)
		}
	}
	if params.Limit <= 0 {
		params.Limit = defaultHistoryLimit
	}
	if params.Limit > maxHistoryLimit {
		params.Limit = maxHistoryLimit
	}

	records, err := s.storage.GetAnalyses(ctx, params.StartDate, params.EndDate, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve analyses: %w", err)
	}

	return s.createJSONResponse(records)
}

func (s *FoodVisionServer) handleLookupFood(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params LookupFoodParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", errBadRequest)
	}

	out := LookupFoodResult{Query: params.Name}
	if entry, ok := s.foods.Lookup(params.Name); ok {
		out.Found = true
		out.Entry = &entry
	}
	return s.createJSONResponse(out)
}

func (s *FoodVisionServer) handleEstimatePortion(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params EstimatePortionParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Portion) == "" {
		return nil, fmt.Errorf("%w: portion is required", errBadRequest)
	}

	out := EstimatePortionResult{Name: params.Name, Portion: params.Portion}
	if entry, ok := s.foods.Lookup(params.Name); ok {
		out.ReferenceKey = entry.Name
		out.Grams = portion.EstimateGrams(params.Portion, &entry)
	} else {
		out.Grams = portion.EstimateGenericGrams(params.Portion)
	}
	return s.createJSONResponse(out)
}

func (s *FoodVisionServer) registerTools() {
	s.tools = map[string]toolHandler{
		"analyze_food_image": s.handleAnalyzeFoodImage,
		"get_analyses":       s.handleGetAnalyses,
		"lookup_food":        s.handleLookupFood,
		"estimate_portion":   s.handleEstimatePortion,
	}
	for name := range s.tools {
		s.log.Debug("registered tool", "tool", name)
	}
}
