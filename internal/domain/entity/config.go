package entity

// Provider identifiers for the extraction boundary
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// AppConfig is the user-saved application configuration. It is a singleton:
// Save overwrites the whole value, last write wins.
type AppConfig struct {
	Provider        string `json:"provider"`
	GeminiKey       string `json:"geminiKey"`
	OpenAIKey       string `json:"openaiKey"`
	MailFromName    string `json:"mailFromName"`
	MailFromAddress string `json:"mailFromAddress"`
	MailReplyTo     string `json:"mailReplyTo"`
}

// DefaultAppConfig is the documented default returned before any save
func DefaultAppConfig() AppConfig {
	return AppConfig{Provider: ProviderGemini}
}

// KeyFor returns the user-entered API key for the given provider
func (c AppConfig) KeyFor(provider string) string {
	switch provider {
	case ProviderGemini:
		return c.GeminiKey
	case ProviderOpenAI:
		return c.OpenAIKey
	default:
		return ""
	}
}
