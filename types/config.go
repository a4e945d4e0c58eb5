package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool          `mapstructure:"verbose"`
	Config  string        `mapstructure:"config"`
	Project ProjectConfig `mapstructure:"project" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm" validate:"omitempty"`
}

// ProjectConfig holds project-related settings
type ProjectConfig struct {
	RootDir      string `mapstructure:"rootDir" validate:"required"`
	TemplatesDir string `mapstructure:"templatesDir" validate:"required"`
	RosterFile   string `mapstructure:"rosterFile" validate:"omitempty"`
}

// LLMConfig holds configuration for LLM integration
type LLMConfig struct {
	Provider  string `mapstructure:"provider" validate:"omitempty,oneof=openai ollama anthropic gemini"`
	ModelName string `mapstructure:"modelName" validate:"omitempty,min=1"`
	APIKey    string `mapstructure:"apiKey" validate:"omitempty,min=1"`
	BaseURL   string `mapstructure:"baseUrl" validate:"omitempty,url"`
	// RequestTimeoutSeconds controls the HTTP client timeout for LLM calls
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=5,max=600"`
}
