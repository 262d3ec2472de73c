package extraction

import (
	"context"
	"fmt"
	"strings"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/pkg/logger"
)

// Extractor turns one uploaded document into structured flight data
type Extractor interface {
	Extract(ctx context.Context, doc Document) (*entity.ExtractedFlightData, error)
}

// Factory builds provider clients. A client is an explicit handle
// constructed per API key and owned by the caller; the factory keeps no
// state between calls.
type Factory struct {
	geminiModel string
	openaiModel string
	logger      logger.Logger
}

// NewFactory creates a client factory with the model names to use per provider
func NewFactory(geminiModel, openaiModel string, logger logger.Logger) *Factory {
	return &Factory{
		geminiModel: geminiModel,
		openaiModel: openaiModel,
		logger:      logger,
	}
}

// ClientFor returns an extraction client for the given provider and API key
func (f *Factory) ClientFor(ctx context.Context, provider, apiKey string) (Extractor, error) {
	switch strings.ToLower(provider) {
	case entity.ProviderGemini:
		return NewGeminiExtractor(ctx, apiKey, f.geminiModel, f.logger)
	case entity.ProviderOpenAI:
		return NewOpenAIExtractor(apiKey, f.openaiModel, f.logger), nil
	default:
		return nil, fmt.Errorf("unknown extraction provider %q", provider)
	}
}
