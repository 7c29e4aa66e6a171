package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"mcp-food-vision/internal/analysis"
	"mcp-food-vision/internal/models"
)

var jpeg = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &Config{Transport: "http", Host: "127.0.0.1", Port: 0, DBPath: filepath.Join(t.TempDir(), "test.db")}
	srv, err := NewFoodVisionServer(cfg, analysis.NewPipeline(analysis.Options{}), nil)
	if err != nil {
		t.Fatalf("NewFoodVisionServer: %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		_ = srv.storage.Close()
	})
	return ts
}

func callTool(t *testing.T, ts *httptest.Server, name string, args map[string]interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{"name": name, "arguments": args})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(ts.URL+"/", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	return resp
}

// decodeTool unwraps the JSON text content of a tool result into target.
func decodeTool(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", resp.StatusCode)
	}
	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(result.Content) != 1 || result.Content[0].Type != "text" {
		t.Fatalf("content: got=%+v", result.Content)
	}
	if err := json.Unmarshal([]byte(result.Content[0].Text), target); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
}

func TestAnalyzeAndHistory(t *testing.T) {
	ts := newTestServer(t)
	image := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpeg)

	var res models.AnalysisResult
	decodeTool(t, callTool(t, ts, "analyze_food_image", map[string]interface{}{"image": image, "save": true}), &res)
	if !res.Success || len(res.Components) != 2 || res.ID == "" {
		t.Fatalf("analysis: got=%+v", res)
	}

	decodeTool(t, callTool(t, ts, "analyze_food_image", map[string]interface{}{"image": image}), &res)

	var history []models.AnalysisRecord
	decodeTool(t, callTool(t, ts, "get_analyses", map[string]interface{}{"limit": 5}), &history)
	if len(history) != 1 {
		t.Fatalf("history: want=1 got=%d", len(history))
	}
	if len(history[0].Components) != 2 || history[0].CreatedAt.IsZero() {
		t.Fatalf("stored record: got=%+v", history[0])
	}
}

func TestLookupFood(t *testing.T) {
	ts := newTestServer(t)

	var out LookupFoodResult
	decodeTool(t, callTool(t, ts, "lookup_food", map[string]interface{}{"name": "pad_thai"}), &out)
	if !out.Found || out.Entry == nil || out.Entry.Name != "ผัดไทย" {
		t.Fatalf("lookup: got=%+v", out)
	}

	decodeTool(t, callTool(t, ts, "lookup_food", map[string]interface{}{"name": "zzqx"}), &out)
	if out.Found {
		t.Fatalf("unknown dish should not be found: %+v", out)
	}
}

func TestEstimatePortion(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		args  map[string]interface{}
		grams float64
		key   string
	}{
		{map[string]interface{}{"name": "ผัดกะเพรา", "portion": "1 จาน"}, 200, "ผัดกะเพรา"},
		{map[string]interface{}{"portion": "1 จาน"}, 250, ""},
		{map[string]interface{}{"name": "zzqx", "portion": "3 ไม้"}, 200, ""},
		{map[string]interface{}{"name": "หมูสะเต๊ะ", "portion": "3 ไม้"}, 90, "หมูสะเต๊ะ"},
	}
	for _, tt := range tests {
		var out EstimatePortionResult
		decodeTool(t, callTool(t, ts, "estimate_portion", tt.args), &out)
		if out.Grams != tt.grams || out.ReferenceKey != tt.key {
			t.Fatalf("%v: want=(%v,%q) got=(%v,%q)", tt.args, tt.grams, tt.key, out.Grams, out.ReferenceKey)
		}
	}
}

func TestToolErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		tool   string
		args   map[string]interface{}
		status int
	}{
		{"unknown tool", "log_meal", nil, http.StatusNotFound},
		{"missing image", "analyze_food_image", map[string]interface{}{}, http.StatusBadRequest},
		{"undecodable image", "analyze_food_image", map[string]interface{}{"image": "%%%"}, http.StatusUnprocessableEntity},
		{"bad date", "get_analyses", map[string]interface{}{"start_date": "yesterday"}, http.StatusBadRequest},
		{"missing portion", "estimate_portion", map[string]interface{}{"name": "ข้าวสวย"}, http.StatusBadRequest},
		{"wrong argument type", "lookup_food", map[string]interface{}{"name": 42}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := callTool(t, ts, tt.tool, tt.args)
			resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Fatalf("status: want=%d got=%d", tt.status, resp.StatusCode)
			}
		})
	}
}

func TestMethodsAndHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("GET /: want=405 got=%d", resp.StatusCode)
	}

	resp, err = http.Post(ts.URL+"/", "application/json", bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid JSON: want=400 got=%d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	var health struct {
		Status         string `json:"status"`
		ReferenceFoods int    `json:"reference_foods"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.StatusCode != http.StatusOK || health.Status != "ok" || health.ReferenceFoods < 100 {
		t.Fatalf("health: status=%d body=%+v", resp.StatusCode, health)
	}
}

func TestUnsupportedTransport(t *testing.T) {
	cfg := &Config{Transport: "stdio", DBPath: filepath.Join(t.TempDir(), "x.db")}
	if _, err := NewFoodVisionServer(cfg, analysis.NewPipeline(analysis.Options{}), nil); err == nil {
		t.Fatalf("want error for stdio transport")
	}
}
