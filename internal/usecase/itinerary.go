package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/domain/repository"
	"flightcast-service/internal/interface/extraction"
	"flightcast-service/pkg/apperrors"
	"flightcast-service/pkg/logger"
	"flightcast-service/pkg/metrics"
	"flightcast-service/templates"
)

// ExtractorFactory builds an extraction client per provider and API key
type ExtractorFactory interface {
	ClientFor(ctx context.Context, provider, apiKey string) (extraction.Extractor, error)
}

// EnvKeys are the environment-provided credentials: fallback extraction API
// keys, used when the saved config carries no key for the selected provider,
// and the mail relay key.
type EnvKeys struct {
	Gemini string
	OpenAI string
	Resend string
}

// ItineraryService orchestrates extraction, merging, rendering, history and
// mail relay for the upload-to-message flow.
type ItineraryService struct {
	factory         ExtractorFactory
	historyRepo     repository.HistoryRepository
	configRepo      repository.ConfigRepository
	agentRepo       repository.AgentRepository
	mailRepo        repository.MailRepository
	envKeys         EnvKeys
	defaultProvider string
	metrics         *metrics.Metrics
	logger          logger.Logger
}

// NewItineraryService creates a new itinerary service
func NewItineraryService(
	factory ExtractorFactory,
	historyRepo repository.HistoryRepository,
	configRepo repository.ConfigRepository,
	agentRepo repository.AgentRepository,
	mailRepo repository.MailRepository,
	envKeys EnvKeys,
	defaultProvider string,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *ItineraryService {
	return &ItineraryService{
		factory:         factory,
		historyRepo:     historyRepo,
		configRepo:      configRepo,
		agentRepo:       agentRepo,
		mailRepo:        mailRepo,
		envKeys:         envKeys,
		defaultProvider: defaultProvider,
		metrics:         metrics,
		logger:          logger,
	}
}

// resolveProvider picks the provider and API key for an extraction call.
// The user-saved key wins over the environment default. A missing key fails
// before any network call.
func (s *ItineraryService) resolveProvider(ctx context.Context) (string, string, error) {
	config, err := s.configRepo.Get(ctx)
	if err != nil {
		return "", "", apperrors.Wrap(err, apperrors.DatabaseError, "loading app config")
	}

	provider := config.Provider
	if provider == "" {
		provider = s.defaultProvider
	}

	key := config.KeyFor(provider)
	if key == "" {
		switch provider {
		case entity.ProviderGemini:
			key = s.envKeys.Gemini
		case entity.ProviderOpenAI:
			key = s.envKeys.OpenAI
		}
	}
	if key == "" {
		return "", "", apperrors.MissingAPIKey(provider)
	}
	return provider, key, nil
}

// extractOne runs one extraction call and normalizes the result
func (s *ItineraryService) extractOne(ctx context.Context, doc extraction.Document) (*entity.ExtractedFlightData, error) {
	provider, key, err := s.resolveProvider(ctx)
	if err != nil {
		return nil, err
	}

	client, err := s.factory.ClientFor(ctx, provider, key)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ConfigurationError, "building extraction client")
	}

	start := time.Now()
	data, err := client.Extract(ctx, doc)
	s.metrics.ExtractionTime.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.ExtractionsFailed.WithLabelValues(provider).Inc()
		s.logger.Error("Extraction failed", "provider", provider, "error", err)
		return nil, apperrors.ExtractionFailed(err)
	}
	s.metrics.ExtractionsTotal.WithLabelValues(provider).Inc()

	if err := Normalize(data); err != nil {
		s.metrics.ExtractionsFailed.WithLabelValues(provider).Inc()
		s.logger.Error("Extracted data failed validation", "provider", provider, "error", err)
		return nil, err
	}

	s.logger.Info("Document extracted", "provider", provider, "legs", data.LegCount())
	return data, nil
}

// ExtractSingle processes one uploaded document
func (s *ItineraryService) ExtractSingle(ctx context.Context, doc extraction.Document) (*entity.ExtractedFlightData, error) {
	if doc.Base64 == "" {
		return nil, apperrors.ValidationFailed("a document upload is required", "")
	}
	return s.extractOne(ctx, doc)
}

type extractResult struct {
	idx  int
	data *entity.ExtractedFlightData
	err  error
}

// ExtractRoundTrip processes the dual-document upload. The two extraction
// calls run concurrently and both must succeed; a sibling failure discards
// the successful half.
func (s *ItineraryService) ExtractRoundTrip(ctx context.Context, outboundDoc, inboundDoc extraction.Document) (*entity.ExtractedFlightData, error) {
	if outboundDoc.Base64 == "" || inboundDoc.Base64 == "" {
		return nil, apperrors.ValidationFailed("both outbound and inbound documents are required", "")
	}

	results := make(chan extractResult, 2)
	go func() {
		data, err := s.extractOne(ctx, outboundDoc)
		results <- extractResult{idx: 0, data: data, err: err}
	}()
	go func() {
		data, err := s.extractOne(ctx, inboundDoc)
		results <- extractResult{idx: 1, data: data, err: err}
	}()

	var docs [2]*entity.ExtractedFlightData
	var firstErr error
	for i := 0; i < 2; i++ {
		r := <-results
		if r.err != nil && firstErr == nil {
			firstErr = r.err
		}
		docs[r.idx] = r.data
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return MergeRoundTrip(docs[0], docs[1])
}

// ComposeMessage renders the reviewed data into HTML and WhatsApp text.
// When save is set, the render is confirmed and a history item is appended.
func (s *ItineraryService) ComposeMessage(ctx context.Context, data *entity.ExtractedFlightData, mode templates.Mode, style templates.Style, save bool) (string, string, error) {
	if data == nil {
		return "", "", apperrors.ValidationFailed("flight data is required", "")
	}
	if err := Normalize(data); err != nil {
		return "", "", apperrors.ValidationFailed("flight data failed validation", err.Error())
	}

	agent, err := s.agentRepo.GetActive(ctx)
	if err != nil {
		return "", "", apperrors.Wrap(err, apperrors.DatabaseError, "loading active agent profile")
	}

	html, err := templates.RenderHTML(data, mode, style, *agent)
	if err != nil {
		return "", "", apperrors.ValidationFailed("unsupported render selection", err.Error())
	}
	text, err := templates.RenderWhatsApp(data, mode, *agent)
	if err != nil {
		return "", "", apperrors.ValidationFailed("unsupported render selection", err.Error())
	}
	s.metrics.RendersTotal.WithLabelValues(string(mode), string(style)).Inc()

	if save {
		item := &entity.HistoryItem{
			ID:        uuid.NewString(),
			Timestamp: time.Now().UnixMilli(),
			Data:      *data,
			HTML:      html,
		}
		if err := s.historyRepo.Append(ctx, item); err != nil {
			return "", "", apperrors.Wrap(err, apperrors.DatabaseError, "saving history item")
		}
		s.logger.Info("History item saved", "id", item.ID)
	}

	return html, text, nil
}

// SendEmail relays a rendered message to the recipient. The saved config's
// from-identity rides along; the relay falls back to its env defaults for
// any field left empty.
func (s *ItineraryService) SendEmail(ctx context.Context, to, subject, html, text string) error {
	if strings.TrimSpace(to) == "" {
		return apperrors.ValidationFailed("recipient address is required", "")
	}
	if html == "" && text == "" {
		return apperrors.ValidationFailed("nothing to send", "render a message first")
	}
	if s.envKeys.Resend == "" {
		return apperrors.New(apperrors.ConfigurationError, "no mail relay credential configured",
			"set RESEND_API_KEY")
	}
	if subject == "" {
		subject = templates.DefaultSubject
	}

	config, err := s.configRepo.Get(ctx)
	if err != nil {
		return apperrors.Wrap(err, apperrors.DatabaseError, "loading app config")
	}

	err = s.mailRepo.Send(ctx, &repository.OutboundMail{
		To:          to,
		Subject:     subject,
		HTML:        html,
		Text:        text,
		FromName:    config.MailFromName,
		FromAddress: config.MailFromAddress,
		ReplyTo:     config.MailReplyTo,
	})
	if err != nil {
		return apperrors.SendFailed(err)
	}
	return nil
}

// History returns the stored generations, most recent first
func (s *ItineraryService) History(ctx context.Context) ([]*entity.HistoryItem, error) {
	return s.historyRepo.List(ctx)
}

// ClearHistory empties the history store
func (s *ItineraryService) ClearHistory(ctx context.Context) error {
	return s.historyRepo.Clear(ctx)
}

// GetConfig returns the saved app config
func (s *ItineraryService) GetConfig(ctx context.Context) (entity.AppConfig, error) {
	return s.configRepo.Get(ctx)
}

// SaveConfig overwrites the app config
func (s *ItineraryService) SaveConfig(ctx context.Context, config entity.AppConfig) error {
	switch config.Provider {
	case entity.ProviderGemini, entity.ProviderOpenAI:
	default:
		return apperrors.ValidationFailed("unknown provider", config.Provider)
	}
	return s.configRepo.Save(ctx, config)
}

// Agents returns all agent profiles
func (s *ItineraryService) Agents(ctx context.Context) ([]*entity.AgentProfile, error) {
	return s.agentRepo.List(ctx)
}

// CreateAgent stores a new agent profile
func (s *ItineraryService) CreateAgent(ctx context.Context, profile *entity.AgentProfile) error {
	if strings.TrimSpace(profile.Name) == "" {
		return apperrors.ValidationFailed("agent name is required", "")
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	return s.agentRepo.Create(ctx, profile)
}

// UpdateAgent overwrites an agent profile's identity fields
func (s *ItineraryService) UpdateAgent(ctx context.Context, profile *entity.AgentProfile) error {
	if profile.ID == "" {
		return apperrors.ValidationFailed("agent id is required", "")
	}
	return s.agentRepo.Update(ctx, profile)
}

// DeleteAgent removes an agent profile
func (s *ItineraryService) DeleteAgent(ctx context.Context, id string) error {
	return s.agentRepo.Delete(ctx, id)
}

// ActivateAgent makes the given profile the active sender identity
func (s *ItineraryService) ActivateAgent(ctx context.Context, id string) error {
	return s.agentRepo.SetActive(ctx, id)
}
