package templates

import (
	"fmt"
	"strings"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/pkg/utils"
)

func textSegmentLabel(l leg) string {
	switch l.Kind {
	case legOutbound:
		return "IDA"
	case legInbound:
		return "VOLTA"
	default:
		return fmt.Sprintf("TRECHO %d", l.Number)
	}
}

func confirmationTextSegment(l leg) string {
	segment := l.Segment

	var b strings.Builder
	fmt.Fprintf(&b, "*✈️ %s: %s ➔ %s*\n", textSegmentLabel(l), segment.Origin, segment.Destination)
	fmt.Fprintf(&b, "📅 Data: %s\n", segment.Date)
	fmt.Fprintf(&b, "⏰ Horário: %s\n", segment.Time)
	fmt.Fprintf(&b, "🔢 Voo: %s %s\n", segment.Airline, segment.FlightNumber)
	fmt.Fprintf(&b, "🎫 Localizador: *%s*", segment.PNR)
	if segment.Connection != nil {
		fmt.Fprintf(&b, "\n⏳ Conexão: %s (Voo %s)", segment.Connection.Duration, segment.Connection.FlightNumber)
	}
	return b.String()
}

func renderConfirmationText(data *entity.ExtractedFlightData, agent entity.AgentProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Olá, %s! Tudo bem?*\n\n", data.PassengerNames)
	b.WriteString("Seguem os detalhes da sua viagem:\n\n")

	for _, l := range legsOf(data) {
		b.WriteString(confirmationTextSegment(l))
		b.WriteString("\n\n")
	}

	b.WriteString("Qualquer dúvida, estou à disposição!\n")
	b.WriteString("*Boa viagem!* 🌍✈️\n\n")
	fmt.Fprintf(&b, "%s | %s\n%s", agent.Name, agent.Role, agent.Phone)
	return b.String()
}

func reminderTextSegment(l leg) string {
	segment := l.Segment

	var b strings.Builder
	fmt.Fprintf(&b, "*✈️ Trecho %d: %s ➔ %s*\n", l.Number, segment.Origin, segment.Destination)
	fmt.Fprintf(&b, "📅 Data: %s\n", utils.LongDatePT(segment.Date))
	fmt.Fprintf(&b, "⏰ Partida: %s\n", segment.Time)
	fmt.Fprintf(&b, "🛂 Embarque: %s\n", reminderBoardingTime(segment))
	fmt.Fprintf(&b, "💺 Assento: %s\n", reminderSeat(segment))
	fmt.Fprintf(&b, "🔢 Voo: %s %s\n", segment.Airline, segment.FlightNumber)
	fmt.Fprintf(&b, "🎫 Localizador: *%s*", segment.PNR)
	if segment.Connection != nil {
		fmt.Fprintf(&b, "\n⏳ Conexão: %s (Voo %s)", segment.Connection.Duration, segment.Connection.FlightNumber)
	}
	return b.String()
}

func renderReminderText(data *entity.ExtractedFlightData, agent entity.AgentProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Olá, %s! Tudo bem?*\n\n", data.PassengerNames)
	b.WriteString("Passando para lembrar do seu embarque! 🛫\n\n")

	for _, l := range legsOf(data) {
		b.WriteString(reminderTextSegment(l))
		b.WriteString("\n\n")
	}

	b.WriteString("📄 Tenha em mãos um documento de identificação com foto.\n")
	b.WriteString("⏰ Chegue ao aeroporto com pelo menos 2 horas de antecedência do embarque.\n\n")
	b.WriteString("Qualquer dúvida, estou à disposição!\n")
	b.WriteString("*Boa viagem!* 🌍✈️\n\n")
	fmt.Fprintf(&b, "%s | %s\n%s", agent.Name, agent.Role, agent.Phone)
	return b.String()
}
