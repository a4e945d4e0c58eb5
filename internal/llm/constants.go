package llm

// Provider constants
const (
	// DefaultProvider is the default LLM provider
	DefaultProvider = ProviderOpenAI

	// ProviderOpenAI represents the OpenAI provider
	ProviderOpenAI = "openai"

	// ProviderOllama represents the Ollama provider
	ProviderOllama = "ollama"

	// ProviderAnthropic represents the Anthropic provider
	ProviderAnthropic = "anthropic"

	// ProviderGemini represents the Google Gemini provider
	ProviderGemini = "gemini"
)

// Default chat model constants
const (
	// DefaultOpenAIModel is the default chat model for OpenAI
	DefaultOpenAIModel = "gpt-4o-mini"

	// DefaultOllamaModel is the default chat model for Ollama
	DefaultOllamaModel = "llama3.2"

	// DefaultAnthropicModel is the default chat model for Anthropic
	DefaultAnthropicModel = "claude-sonnet-4-20250514"

	// DefaultGeminiModel is the default chat model for Gemini
	DefaultGeminiModel = "gemini-2.0-flash"
)

// DefaultOllamaURL is the default base URL for a local Ollama server
const DefaultOllamaURL = "http://localhost:11434"

// DefaultMaxTokens bounds a single extraction response
const DefaultMaxTokens = 4096
