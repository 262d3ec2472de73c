package extraction

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/pkg/logger"
)

// GeminiExtractor extracts flight data through the Gemini API
type GeminiExtractor struct {
	client *genai.Client
	model  string
	logger logger.Logger
}

// NewGeminiExtractor creates a Gemini client handle for the given API key
func NewGeminiExtractor(ctx context.Context, apiKey, model string, logger logger.Logger) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &GeminiExtractor{client: client, model: model, logger: logger}, nil
}

// Extract sends the document and the instruction set to Gemini and decodes
// the JSON reply.
func (g *GeminiExtractor) Extract(ctx context.Context, doc Document) (*entity.ExtractedFlightData, error) {
	data, mimeType, err := doc.Decode()
	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, mimeType),
			genai.NewPartFromText(extractionInstructions + "\n\n" + responseSchemaText),
		}, genai.RoleUser),
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	g.logger.Info("Calling Gemini extraction", "model", g.model, "mimeType", mimeType, "bytes", len(data))
	res, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return nil, fmt.Errorf("gemini returned empty response")
	}

	return decodeResponse(text)
}
