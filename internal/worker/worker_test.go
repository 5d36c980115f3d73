package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/mosoi-variant/vareng/internal/eval"
	"github.com/mosoi-variant/vareng/internal/moveset"
)

func TestHandshakeReturnsReadyOk(t *testing.T) {
	in := strings.NewReader(`{"id":"a"}` + "\n")
	var out bytes.Buffer
	srv := NewServer(in, &out, moveset.StandardRegistry(), eval.StandardValues(), zap.NewNop())
	if err := srv.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var resp Ready
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != "readyok" {
		t.Errorf("expected readyok, got %q", resp.Status)
	}
}

func TestMalformedLineReturnsParseError(t *testing.T) {
	in := strings.NewReader("{not json\n")
	var out bytes.Buffer
	srv := NewServer(in, &out, moveset.StandardRegistry(), eval.StandardValues(), zap.NewNop())
	if err := srv.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected a non-empty parse error message")
	}
}

func TestPositionRequestReturnsMove(t *testing.T) {
	lf := "7w 5,1 | 5b 5,8 | 5w 4,1"
	req := `{"id":"x","lf":"` + lf + `","maxDepth":2,"moveTimeMs":200}` + "\n"
	in := strings.NewReader(req)
	var out bytes.Buffer
	srv := NewServer(in, &out, moveset.StandardRegistry(), eval.StandardValues(), zap.NewNop())
	if err := srv.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var resp MoveDraft
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Move == "" {
		t.Error("expected a non-empty move in the response")
	}
}
