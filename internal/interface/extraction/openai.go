package extraction

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/pkg/logger"
)

// OpenAIExtractor extracts flight data through the OpenAI vision API
type OpenAIExtractor struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// NewOpenAIExtractor creates an OpenAI client handle for the given API key
func NewOpenAIExtractor(apiKey, model string, logger logger.Logger) *OpenAIExtractor {
	return &OpenAIExtractor{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}
}

// Extract sends the document as a data URI image part and decodes the
// json_object reply.
func (o *OpenAIExtractor) Extract(ctx context.Context, doc Document) (*entity.ExtractedFlightData, error) {
	data, mimeType, err := doc.Decode()
	if err != nil {
		return nil, err
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, doc.Base64)

	o.logger.Info("Calling OpenAI extraction", "model", o.model, "mimeType", mimeType, "bytes", len(data))
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: extractionInstructions + "\n\n" + responseSchemaText,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: "Extract flight details from this document.",
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURI,
							Detail: openai.ImageURLDetailHigh,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	return decodeResponse(resp.Choices[0].Message.Content)
}
