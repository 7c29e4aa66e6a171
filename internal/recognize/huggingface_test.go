package recognize

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mcp-food-vision/internal/models"
)

func TestHuggingFaceRecognize(t *testing.T) {
	img := testImage(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/nateraw/food" {
			t.Errorf("path: got=%s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer hf_token" {
			t.Errorf("authorization: got=%q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Content-Type") != img.MIMEType {
			t.Errorf("content type: got=%q", r.Header.Get("Content-Type"))
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != string(img.Data) {
			t.Errorf("body should be raw image bytes")
		}
		_, _ = w.Write([]byte(`[
			{"label":"fried_rice","score":0.15},
			{"label":"pad_thai","score":0.81},
			{"label":"waffles","score":0.02}
		]`))
	}))
	defer srv.Close()

	h := NewHuggingFace(HuggingFaceOptions{Token: "hf_token", Model: "nateraw/food", BaseURL: srv.URL})
	items, err := h.Recognize(context.Background(), img)
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items: want=2 got=%d (%+v)", len(items), items)
	}
	if items[0].Name != "ผัดไทย" || items[0].NameEN != "pad thai" || *items[0].Confidence != 0.81 {
		t.Fatalf("first item: got=%+v", items[0])
	}
	if items[1].Name != "ข้าวผัด" {
		t.Fatalf("second item: got=%+v", items[1])
	}
	for _, it := range items {
		if it.Provenance != models.ProvenanceSecondaryVision {
			t.Fatalf("provenance: got=%s", it.Provenance)
		}
	}
}

func TestHuggingFaceNothingAboveThreshold(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"label":"pizza","score":0.05}]`))
	}))
	defer srv.Close()

	h := NewHuggingFace(HuggingFaceOptions{Token: "t", Model: "m", BaseURL: srv.URL})
	if _, err := h.Recognize(context.Background(), testImage(t)); !errors.Is(err, ErrNoFood) {
		t.Fatalf("want ErrNoFood, got=%v", err)
	}
}

func TestHuggingFaceDisabled(t *testing.T) {
	h := NewHuggingFace(HuggingFaceOptions{Model: "m", BaseURL: "http://127.0.0.1:1"})
	if _, err := h.Recognize(context.Background(), testImage(t)); !errors.Is(err, ErrDisabled) {
		t.Fatalf("want ErrDisabled, got=%v", err)
	}
}

func TestItemsFromClassificationsTopK(t *testing.T) {
	labels := []classification{
		{"sushi", 0.2}, {"ramen", 0.3}, {"pizza", 0.9}, {"steak", 0.5},
		{"ice_cream", 0.4}, {"tacos", 0.6}, {"", 0.99},
	}
	items := itemsFromClassifications(labels, models.ProvenanceSecondaryVision)
	if len(items) != classifierTopK {
		t.Fatalf("items: want=%d got=%d", classifierTopK, len(items))
	}
	for i := 1; i < len(items); i++ {
		if *items[i].Confidence > *items[i-1].Confidence {
			t.Fatalf("items not sorted by confidence: %+v", items)
		}
	}
	if items[0].Name != "พิซซ่า" {
		t.Fatalf("top item: got=%s", items[0].Name)
	}
}
