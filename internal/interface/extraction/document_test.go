package extraction

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightcast-service/pkg/logger"
)

// Minimal valid file headers, enough for type sniffing.
var (
	pdfBytes = []byte("%PDF-1.4\n%%EOF\n")
	pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
)

func TestDocumentDecode(t *testing.T) {
	doc := Document{
		Base64:   base64.StdEncoding.EncodeToString(pdfBytes),
		MimeType: "application/pdf",
	}

	data, detected, err := doc.Decode()
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, data)
	assert.Equal(t, "application/pdf", detected)
}

func TestDocumentDecodeSniffedTypeWins(t *testing.T) {
	// A PNG uploaded with a PDF label still comes back as a PNG.
	doc := Document{
		Base64:   base64.StdEncoding.EncodeToString(pngBytes),
		MimeType: "application/pdf",
	}

	_, detected, err := doc.Decode()
	require.NoError(t, err)
	assert.Equal(t, "image/png", detected)
}

func TestDocumentDecodeRejectsUnsupportedType(t *testing.T) {
	doc := Document{
		Base64:   base64.StdEncoding.EncodeToString([]byte("just some plain text")),
		MimeType: "application/pdf",
	}

	_, _, err := doc.Decode()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported document type")
}

func TestDocumentDecodeRejectsBadPayload(t *testing.T) {
	_, _, err := Document{}.Decode()
	assert.Error(t, err)

	_, _, err = Document{Base64: "not base64!!", MimeType: "application/pdf"}.Decode()
	assert.Error(t, err)
}

func TestDecodeResponse(t *testing.T) {
	body := `{"passengerNames":"Maria Souza","greetingTitle":"Prezada","pronoun":"a","outbound":{"flightNumber":"G31234","date":"10/05/2025","time":"08:00","origin":"Salvador","destination":"São Paulo","airline":"Gol","pnr":"ABC123"}}`

	for name, raw := range map[string]string{
		"bare":        body,
		"fenced":      "```json\n" + body + "\n```",
		"plain fence": "```\n" + body + "\n```",
		"padded":      "\n  " + body + "  \n",
	} {
		data, err := decodeResponse(raw)
		require.NoError(t, err, name)
		assert.Equal(t, "Maria Souza", data.PassengerNames, name)
		assert.Equal(t, "G31234", data.Outbound.FlightNumber, name)
	}
}

func TestDecodeResponseUnusableJSON(t *testing.T) {
	_, err := decodeResponse("I could not read the document, sorry.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unusable JSON")
}

func TestFactoryClientFor(t *testing.T) {
	factory := NewFactory("gemini-3-pro-preview", "gpt-4o", logger.NewLogger())
	ctx := t.Context()

	client, err := factory.ClientFor(ctx, "openai", "sk-test")
	require.NoError(t, err)
	assert.IsType(t, &OpenAIExtractor{}, client)

	_, err = factory.ClientFor(ctx, "claude", "key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown extraction provider")
}
