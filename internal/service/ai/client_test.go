package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"praxida/internal/config"
)

type fakeModel struct {
	resp  *schema.Message
	err   error
	input []*schema.Message
}

func (f *fakeModel) Generate(ctx context.Context, in []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.input = in
	return f.resp, f.err
}

func TestCompleteBuildsRoleMessages(t *testing.T) {
	fm := &fakeModel{resp: &schema.Message{Content: "Antwort"}}
	c := &Client{model: fm}

	got, err := c.Complete(context.Background(), "system text", "user text")
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if got != "Antwort" {
		t.Fatalf("Complete = %q", got)
	}
	if len(fm.input) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(fm.input))
	}
	if fm.input[0].Role != schema.System || fm.input[0].Content != "system text" {
		t.Fatalf("unexpected system message: %+v", fm.input[0])
	}
	if fm.input[1].Role != schema.User || fm.input[1].Content != "user text" {
		t.Fatalf("unexpected user message: %+v", fm.input[1])
	}
}

func TestCompleteWrapsUpstreamError(t *testing.T) {
	fm := &fakeModel{err: errors.New("connection refused")}
	c := &Client{model: fm}

	_, err := c.Complete(context.Background(), "s", "u")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("error %v does not match ErrUpstream", err)
	}
}

func TestCompleteNormalizesEmptyContent(t *testing.T) {
	for _, resp := range []*schema.Message{nil, {Content: ""}} {
		fm := &fakeModel{resp: resp}
		c := &Client{model: fm}
		got, err := c.Complete(context.Background(), "s", "u")
		if err != nil {
			t.Fatalf("Complete error: %v", err)
		}
		if got != NoReplyText {
			t.Fatalf("Complete = %q, want placeholder", got)
		}
	}
}

func TestNewRequiresCredential(t *testing.T) {
	if _, err := New(context.Background(), &config.Config{}); err == nil {
		t.Fatalf("expected error without api key")
	}
}
