package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// stallProvider blocks until its context is done, standing in for a
// provider call that never returns on its own.
type stallProvider struct{}

func (stallProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stallProvider) ModelID() string { return "stall" }

func TestTimeout_BoundsStalledCall(t *testing.T) {
	p := WithTimeout(stallProvider{}, 10*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestTimeout_PassesThroughFastCall(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithTimeout(mock, 1*time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestTimeout_ZeroDisablesWrapper(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("zero timeout should return the provider unwrapped")
	}
}

func TestTimeout_ModelIDDelegates(t *testing.T) {
	p := WithTimeout(stallProvider{}, time.Second)
	if p.ModelID() != "stall" {
		t.Fatalf("expected 'stall', got %q", p.ModelID())
	}
}
