package llm

import (
	"context"
	"testing"
)

func TestValidateProvider(t *testing.T) {
	tests := []struct {
		input   string
		want    Provider
		wantErr bool
	}{
		{"openai", ProviderOpenAI, false},
		{"ollama", ProviderOllama, false},
		{"anthropic", ProviderAnthropic, false},
		{"gemini", ProviderGemini, false},
		{"", "", true},
		{"azure", "", true},
		{"OpenAI", "", true},
	}

	for _, tt := range tests {
		got, err := ValidateProvider(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateProvider(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ValidateProvider(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewChatModel_MissingAPIKey(t *testing.T) {
	ctx := context.Background()
	for _, provider := range []Provider{ProviderOpenAI, ProviderAnthropic, ProviderGemini} {
		if _, err := NewChatModel(ctx, Config{Provider: provider}); err == nil {
			t.Errorf("NewChatModel(%s) with no API key: expected error", provider)
		}
	}
}

func TestNewChatModel_UnsupportedProvider(t *testing.T) {
	if _, err := NewChatModel(context.Background(), Config{Provider: "bedrock"}); err == nil {
		t.Error("expected error for unsupported provider")
	}
}
