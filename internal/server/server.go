// internal/server/server.go
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"

	"mcp-food-vision/internal/analysis"
	"mcp-food-vision/internal/fooddb"
	"mcp-food-vision/internal/logger"
	"mcp-food-vision/internal/models"
	"mcp-food-vision/internal/storage"
)

const (
	serverName    = "food-vision"
	serverVersion = "1.0.0"
)

type Config struct {
	Transport string
	Host      string
	Port      int
	DBPath    string
}

// Analyzer runs a food analysis on a base64 image.
type Analyzer interface {
	AnalyzeBase64(ctx context.Context, payload string) (*models.AnalysisResult, error)
}

type toolHandler func(ctx context.Context, req *protocol.CallToolRequest) (*protocol.CallToolResult, error)

// errBadRequest marks tool errors caused by the caller's arguments.
var errBadRequest = errors.New("bad request")

type FoodVisionServer struct {
	info       protocol.Implementation
	httpServer *http.Server
	storage    *storage.SQLiteStorage
	analyzer   Analyzer
	foods      *fooddb.Database
	tools      map[string]toolHandler
	config     *Config
	log        *logger.Logger
}

func NewFoodVisionServer(cfg *Config, analyzer Analyzer, log *logger.Logger) (*FoodVisionServer, error) {
	if cfg.Transport != "" && cfg.Transport != "http" {
		return nil, fmt.Errorf("unsupported transport %q", cfg.Transport)
	}
	if log == nil {
		log = logger.Nop()
	}

	stor, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	s := &FoodVisionServer{
		info:     protocol.Implementation{Name: serverName, Version: serverVersion},
		storage:  stor,
		analyzer: analyzer,
		foods:    fooddb.Default(),
		config:   cfg,
		log:      log.With("component", "server"),
	}
	s.registerTools()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/", s.handleHTTP)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Handler exposes the HTTP routes.
func (s *FoodVisionServer) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *FoodVisionServer) handleHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request protocol.CallToolRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}

	handler, ok := s.tools[request.Name]
	if !ok {
		http.Error(w, fmt.Sprintf("Unknown tool: %s", request.Name), http.StatusNotFound)
		return
	}

	result, err := handler(r.Context(), &request)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, errBadRequest):
			status = http.StatusBadRequest
		case errors.Is(err, analysis.ErrAnalysisFailed):
			status = http.StatusUnprocessableEntity
		}
		s.log.Warn("tool call failed", "tool", request.Name, "status", status, "error", err)
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		s.log.Error("failed to encode response", "tool", request.Name, "error", err)
	}
}

func (s *FoodVisionServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	status, code := "ok", http.StatusOK
	if err := s.storage.Ping(r.Context()); err != nil {
		status, code = "storage unavailable", http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":          status,
		"server":          s.info,
		"reference_foods": s.foods.Len(),
	})
}

func (s *FoodVisionServer) Start(ctx context.Context) error {
	s.log.Info("starting food vision server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *FoodVisionServer) Stop(ctx context.Context) error {
	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}
	if s.storage != nil {
		if cerr := s.storage.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (s *FoodVisionServer) createJSONResponse(data interface{}) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}
