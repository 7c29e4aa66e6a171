package recognize

import (
	"context"
	"errors"
	"testing"

	"mcp-food-vision/internal/models"
)

type stubRecognizer struct {
	name  string
	items []models.RecognizedItem
	err   error
	calls int
}

func (s *stubRecognizer) Name() string { return s.name }

func (s *stubRecognizer) Recognize(ctx context.Context, img *Image) ([]models.RecognizedItem, error) {
	s.calls++
	return s.items, s.err
}

func testImage(t *testing.T) *Image {
	t.Helper()
	img, err := NewImage([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'})
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	return img
}

func TestChainFirstNonEmptyWins(t *testing.T) {
	first := &stubRecognizer{name: "first", err: ErrDisabled}
	second := &stubRecognizer{name: "second", err: errors.New("boom")}
	third := &stubRecognizer{name: "third", items: []models.RecognizedItem{{Name: "ผัดไทย", Confidence: models.Score(0.8)}}}
	fourth := &stubRecognizer{name: "fourth", items: []models.RecognizedItem{{Name: "ข้าวผัด"}}}

	out := NewChain(nil, first, second, nil, third, fourth).Recognize(context.Background(), testImage(t))
	if out.Model != "third" {
		t.Fatalf("model: want=third got=%q", out.Model)
	}
	if len(out.Items) != 1 || out.Items[0].Name != "ผัดไทย" {
		t.Fatalf("items: got=%+v", out.Items)
	}
	if fourth.calls != 0 {
		t.Fatalf("lower priority recognizer should not run, calls=%d", fourth.calls)
	}
}

func TestChainEmptyResultFallsThrough(t *testing.T) {
	empty := &stubRecognizer{name: "empty"}
	noFood := &stubRecognizer{name: "nofood", err: ErrNoFood}
	out := NewChain(nil, empty, noFood).Recognize(context.Background(), testImage(t))
	if out.Model != "" || len(out.Items) != 0 {
		t.Fatalf("want empty outcome, got=%+v", out)
	}
	if empty.calls != 1 || noFood.calls != 1 {
		t.Fatalf("every recognizer should be tried once: %d %d", empty.calls, noFood.calls)
	}
}

func TestChainCancelledContext(t *testing.T) {
	r := &stubRecognizer{name: "r", items: []models.RecognizedItem{{Name: "x"}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := NewChain(nil, r).Recognize(ctx, testImage(t))
	if len(out.Items) != 0 || r.calls != 0 {
		t.Fatalf("cancelled chain should not call recognizers: out=%+v calls=%d", out, r.calls)
	}
}

func TestChainNames(t *testing.T) {
	c := NewChain(nil, &stubRecognizer{name: "a"}, nil, &stubRecognizer{name: "b"})
	names := c.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names: got=%v", names)
	}
}
