package ideaanalysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// mockMessager implements AnthropicMessager for testing.
type mockMessager struct {
	response *anthropic.Message
	err      error
	calls    int
	params   anthropic.MessageNewParams
}

func (m *mockMessager) New(_ context.Context, params anthropic.MessageNewParams, _ ...option.RequestOption) (*anthropic.Message, error) {
	m.calls++
	m.params = params
	return m.response, m.err
}

func newMockMessage(blocks ...anthropic.ContentBlockUnion) *anthropic.Message {
	return &anthropic.Message{Content: blocks}
}

func withMockClient(t *testing.T, mock *mockMessager) *[]string {
	t.Helper()
	var keys []string
	old := newAnthropicClient
	newAnthropicClient = func(apiKey string) AnthropicMessager {
		keys = append(keys, apiKey)
		return mock
	}
	t.Cleanup(func() { newAnthropicClient = old })
	return &keys
}

func TestAnalyzeReturnsFirstTextVerbatim(t *testing.T) {
	report := "## 1. Market Trend Analysis\n\n- size: large  \n"
	mock := &mockMessager{response: newMockMessage(
		anthropic.ContentBlockUnion{Type: "text", Text: report},
		anthropic.ContentBlockUnion{Type: "text", Text: "second block"},
	)}
	keys := withMockClient(t, mock)

	got, err := Analyze(context.Background(), "test-key", "meal kits for campers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Markdown != report {
		t.Fatalf("markdown=%q want=%q", got.Markdown, report)
	}
	if got.ID == "" {
		t.Error("expected analysis id")
	}
	if got.Model != string(Model) {
		t.Errorf("model=%s want=%s", got.Model, Model)
	}
	if len(*keys) != 1 || (*keys)[0] != "test-key" {
		t.Fatalf("unexpected client keys: %v", *keys)
	}
}

func TestAnalyzeSendsFixedParameters(t *testing.T) {
	mock := &mockMessager{response: newMockMessage(anthropic.ContentBlockUnion{Type: "text", Text: "ok"})}
	withMockClient(t, mock)

	idea := `A "smart" 100% compostable coffee cup`
	if _, err := Analyze(context.Background(), "k", idea); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := mock.params
	if p.Model != Model {
		t.Errorf("model=%s want=%s", p.Model, Model)
	}
	if p.MaxTokens != MaxTokens {
		t.Errorf("max_tokens=%d want=%d", p.MaxTokens, MaxTokens)
	}
	if !p.Temperature.Valid() || p.Temperature.Value != Temperature {
		t.Errorf("temperature not set to %v", Temperature)
	}
	if len(p.Messages) != 1 || p.Messages[0].Role != anthropic.MessageParamRoleUser {
		t.Fatalf("expected one user message, got %+v", p.Messages)
	}
	text := p.Messages[0].Content[0].OfText.Text
	if text != BuildPrompt(idea) {
		t.Fatal("message does not carry the analysis prompt")
	}
	if !strings.Contains(text, `"`+idea+`"`) {
		t.Fatalf("expected idea embedded verbatim, got %q", text[:120])
	}
}

func TestAnalyzeMissingInputNeverCallsClient(t *testing.T) {
	mock := &mockMessager{response: newMockMessage(anthropic.ContentBlockUnion{Type: "text", Text: "ok"})}
	keys := withMockClient(t, mock)

	cases := []struct {
		name   string
		apiKey string
		idea   string
		want   error
	}{
		{name: "no key", apiKey: "", idea: "idea", want: ErrMissingCredential},
		{name: "blank key", apiKey: "   ", idea: "idea", want: ErrMissingCredential},
		{name: "no idea", apiKey: "k", idea: "", want: ErrMissingIdea},
		{name: "blank idea", apiKey: "k", idea: "\n\t ", want: ErrMissingIdea},
		{name: "neither", apiKey: "", idea: "", want: ErrMissingCredential},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Analyze(context.Background(), tc.apiKey, tc.idea)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v want %v", err, tc.want)
			}
		})
	}
	if mock.calls != 0 || len(*keys) != 0 {
		t.Fatalf("expected no client use, calls=%d keys=%v", mock.calls, *keys)
	}
}

func TestAnalyzeWrapsTransportError(t *testing.T) {
	upstream := errors.New("401 Unauthorized: invalid x-api-key")
	mock := &mockMessager{err: upstream}
	withMockClient(t, mock)

	_, err := Analyze(context.Background(), "bad-key", "idea")
	if !errors.Is(err, upstream) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
	if !strings.Contains(err.Error(), "invalid x-api-key") {
		t.Fatalf("expected upstream text in error, got %v", err)
	}
	if mock.calls != 1 {
		t.Fatalf("expected exactly one call, got %d", mock.calls)
	}
}

func TestAnalyzeEmptyCompletion(t *testing.T) {
	for name, resp := range map[string]*anthropic.Message{
		"nil":        nil,
		"no blocks":  newMockMessage(),
		"tool only":  newMockMessage(anthropic.ContentBlockUnion{Type: "tool_use"}),
		"blank text": newMockMessage(anthropic.ContentBlockUnion{Type: "text", Text: "  "}),
	} {
		t.Run(name, func(t *testing.T) {
			withMockClient(t, &mockMessager{response: resp})
			_, err := Analyze(context.Background(), "k", "idea")
			if !errors.Is(err, ErrEmptyCompletion) {
				t.Fatalf("expected ErrEmptyCompletion, got %v", err)
			}
		})
	}
}

func TestBuildPromptSections(t *testing.T) {
	p := BuildPrompt("pet insurance")
	for i, heading := range []string{
		"## 1. Market Trend Analysis",
		"## 2. Competitive Landscape",
		"## 3. Growth Outlook",
		"## 4. Success Case Analysis",
		"## 5. Failure Case Analysis",
		"## 6. Key Success Factors",
	} {
		if !strings.Contains(p, heading) {
			t.Fatalf("section %d missing: %s", i+1, heading)
		}
	}
}
