package templates

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightcast-service/internal/domain/entity"
)

var testAgent = entity.AgentProfile{
	ID:       "agent-1",
	Name:     "Joabh Souza",
	Role:     "Consultor de Viagens",
	Phone:    "(75) 99202-0012",
	Email:    "suporte@clubedovooviagens.com.br",
	IsActive: true,
}

func segment(flightNumber, origin, destination string) entity.FlightSegment {
	return entity.FlightSegment{
		FlightNumber: flightNumber,
		Date:         "10/05/2025",
		Time:         "08:00",
		Origin:       origin,
		Destination:  destination,
		Airline:      "Gol",
		PNR:          "ABC123",
	}
}

func singleLegData() *entity.ExtractedFlightData {
	return &entity.ExtractedFlightData{
		PassengerNames: "Maria Souza",
		GreetingTitle:  "Prezada",
		Pronoun:        "a",
		Outbound:       segment("G31234", "Salvador", "São Paulo"),
	}
}

func roundTripData() *entity.ExtractedFlightData {
	inbound := segment("G35678", "São Paulo", "Salvador")
	data := singleLegData()
	data.Inbound = &inbound
	return data
}

func multiLegData() *entity.ExtractedFlightData {
	data := roundTripData()
	data.AdditionalSegments = []entity.FlightSegment{
		segment("G32222", "São Paulo", "Curitiba"),
		segment("G33333", "Curitiba", "Porto Alegre"),
	}
	return data
}

func renderAll(t *testing.T, data *entity.ExtractedFlightData) (confirmHTML, reminderHTML, confirmText, reminderText string) {
	t.Helper()
	var err error
	confirmHTML, err = RenderHTML(data, ModeConfirmation, StyleClassic, testAgent)
	require.NoError(t, err)
	reminderHTML, err = RenderHTML(data, ModeReminder, "", testAgent)
	require.NoError(t, err)
	confirmText, err = RenderWhatsApp(data, ModeConfirmation, testAgent)
	require.NoError(t, err)
	reminderText, err = RenderWhatsApp(data, ModeReminder, testAgent)
	require.NoError(t, err)
	return
}

func TestSingleLegHasNoInboundSections(t *testing.T) {
	confirmHTML, reminderHTML, confirmText, reminderText := renderAll(t, singleLegData())

	assert.NotContains(t, confirmHTML, "Volta")
	assert.NotContains(t, confirmHTML, "Trecho 2")
	assert.Contains(t, reminderHTML, "Trecho 1:")
	assert.NotContains(t, reminderHTML, "Trecho 2")
	assert.NotContains(t, confirmText, "VOLTA")
	assert.NotContains(t, reminderText, "Trecho 2")
}

func TestTwoLegsRenderInOrder(t *testing.T) {
	confirmHTML, reminderHTML, confirmText, _ := renderAll(t, roundTripData())

	idaIdx := strings.Index(confirmHTML, "Detalhes do Seu Voo de Ida:")
	voltaIdx := strings.Index(confirmHTML, "Detalhes do Seu Voo de Volta:")
	require.GreaterOrEqual(t, idaIdx, 0)
	require.GreaterOrEqual(t, voltaIdx, 0)
	assert.Less(t, idaIdx, voltaIdx)
	assert.NotContains(t, confirmHTML, "Detalhes do Trecho")

	assert.Less(t, strings.Index(confirmHTML, "G31234"), strings.Index(confirmHTML, "G35678"))
	assert.Less(t, strings.Index(confirmText, "IDA"), strings.Index(confirmText, "VOLTA"))

	assert.Contains(t, reminderHTML, "Trecho 1:")
	assert.Contains(t, reminderHTML, "Trecho 2:")
	assert.NotContains(t, reminderHTML, "Trecho 3")
}

func TestMultiLegNumberingIsContiguous(t *testing.T) {
	data := multiLegData() // 4 legs
	confirmHTML, reminderHTML, confirmText, reminderText := renderAll(t, data)

	// Reminder numbering 1..N, each exactly once, in order.
	lastIdx := -1
	for n := 1; n <= 4; n++ {
		marker := fmt.Sprintf("Trecho %d:", n)
		assert.Equal(t, 1, strings.Count(reminderHTML, marker), marker)
		idx := strings.Index(reminderHTML, marker)
		assert.Greater(t, idx, lastIdx, marker)
		lastIdx = idx
	}
	assert.NotContains(t, reminderHTML, "Trecho 5")
	assert.Equal(t, 1, strings.Count(reminderText, "Trecho 4:"))

	// Confirmation order: outbound, middles in array order, inbound.
	order := []string{"G31234", "G32222", "G33333", "G35678"}
	last := -1
	for _, flight := range order {
		idx := strings.Index(confirmHTML, flight)
		require.GreaterOrEqual(t, idx, 0, flight)
		assert.Greater(t, idx, last, flight)
		last = idx
	}
	assert.Contains(t, confirmHTML, "Detalhes do Trecho 2:")
	assert.Contains(t, confirmHTML, "Detalhes do Trecho 3:")
	assert.Equal(t, 1, strings.Count(confirmText, "TRECHO 2"))
	assert.Equal(t, 1, strings.Count(confirmText, "TRECHO 3"))
}

func TestRenderingIsDeterministic(t *testing.T) {
	data := multiLegData()
	data.Outbound.Seat = "12A"
	data.Outbound.BoardingTime = "07:20"
	data.Outbound.Connection = &entity.Connection{Duration: "2h 30m", FlightNumber: "G39999"}

	a1, b1, c1, d1 := renderAll(t, data)
	a2, b2, c2, d2 := renderAll(t, data)

	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, d1, d2)
}

func TestAbsentOptionalFieldsUsePlaceholders(t *testing.T) {
	confirmHTML, reminderHTML, confirmText, reminderText := renderAll(t, roundTripData())

	for _, out := range []string{confirmHTML, reminderHTML, confirmText, reminderText} {
		assert.NotContains(t, out, "undefined")
		assert.NotContains(t, out, "null")
		assert.NotContains(t, out, "[object Object]")
	}

	// One placeholder per leg.
	assert.Equal(t, 2, strings.Count(reminderHTML, NoBoardingTime))
	assert.Equal(t, 2, strings.Count(reminderHTML, NoSeat))
	assert.Equal(t, 2, strings.Count(reminderText, NoBoardingTime))
	assert.Equal(t, 2, strings.Count(reminderText, NoSeat))

	// No connection sub-block for direct flights.
	assert.NotContains(t, confirmHTML, "Conexão")
	assert.NotContains(t, confirmText, "Conexão")
}

func TestPresentOptionalFieldsRender(t *testing.T) {
	data := singleLegData()
	data.Outbound.Seat = "12A"
	data.Outbound.BoardingTime = "07:20"
	data.Outbound.Connection = &entity.Connection{Duration: "1h 45m", FlightNumber: "G37777"}

	confirmHTML, reminderHTML, _, reminderText := renderAll(t, data)

	assert.Contains(t, confirmHTML, "Tempo estimado de conexão:</strong> 1h 45m")
	assert.Contains(t, confirmHTML, "G37777")
	assert.Contains(t, reminderHTML, "07:20")
	assert.Contains(t, reminderHTML, "12A")
	assert.Contains(t, reminderHTML, "10 de maio de 2025")
	assert.Contains(t, reminderText, "💺 Assento: 12A")
	assert.NotContains(t, reminderHTML, NoBoardingTime)
	assert.NotContains(t, reminderHTML, NoSeat)
}

func TestReminderAdvisoryLines(t *testing.T) {
	_, reminderHTML, _, reminderText := renderAll(t, singleLegData())

	assert.Contains(t, reminderHTML, "documento de identificação com foto")
	assert.Contains(t, reminderHTML, "2 horas de antecedência")
	assert.Contains(t, reminderText, "documento de identificação com foto")
	assert.Contains(t, reminderText, "2 horas de antecedência")
}

func TestStylesChangePresentationOnly(t *testing.T) {
	data := roundTripData()

	classic, err := RenderHTML(data, ModeConfirmation, StyleClassic, testAgent)
	require.NoError(t, err)
	minimal, err := RenderHTML(data, ModeConfirmation, StyleMinimal, testAgent)
	require.NoError(t, err)
	urgent, err := RenderHTML(data, ModeConfirmation, StyleUrgent, testAgent)
	require.NoError(t, err)

	// Same field content and ordering in every style.
	for _, html := range []string{classic, minimal, urgent} {
		assert.Contains(t, html, "Prezada Maria Souza,")
		assert.Contains(t, html, "Número do Voo:</strong> G31234")
		assert.Less(t, strings.Index(html, "G31234"), strings.Index(html, "G35678"))
	}

	// Distinct presentation constants.
	assert.Contains(t, classic, "#00569e")
	assert.Contains(t, urgent, "linear-gradient")
	assert.NotEqual(t, classic, minimal)
	assert.NotEqual(t, minimal, urgent)
}

func TestConfirmationFixture(t *testing.T) {
	html, err := RenderHTML(singleLegData(), ModeConfirmation, StyleClassic, testAgent)
	require.NoError(t, err)

	assert.Contains(t, html, "Prezada Maria Souza")
	assert.Equal(t, 1, strings.Count(html, "G31234"))
	assert.NotContains(t, html, "Trecho 2")
	assert.NotContains(t, html, "Detalhes do Seu Voo de Volta:")
}

func TestAgentIdentityInOutput(t *testing.T) {
	other := entity.AgentProfile{
		ID:    "agent-2",
		Name:  "Carla Lima",
		Role:  "Agente de Viagens",
		Phone: "(71) 98888-0000",
		Email: "carla@clubedovooviagens.com.br",
	}

	html, err := RenderHTML(singleLegData(), ModeConfirmation, StyleClassic, other)
	require.NoError(t, err)
	text, err := RenderWhatsApp(singleLegData(), ModeConfirmation, other)
	require.NoError(t, err)

	assert.Contains(t, html, "Carla Lima")
	assert.Contains(t, html, "carla@clubedovooviagens.com.br")
	assert.Contains(t, text, "Carla Lima")
	assert.NotContains(t, html, "Joabh Souza")
}

func TestUnknownModeAndStyle(t *testing.T) {
	_, err := RenderHTML(singleLegData(), Mode("sms"), StyleClassic, testAgent)
	assert.Error(t, err)

	_, err = RenderHTML(singleLegData(), ModeConfirmation, Style("neon"), testAgent)
	assert.Error(t, err)

	_, err = RenderWhatsApp(singleLegData(), Mode("sms"), testAgent)
	assert.Error(t, err)
}
