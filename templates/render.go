// Package templates renders extracted flight data into outbound message
// bodies: a self-contained HTML email and a WhatsApp-ready plain text, in
// confirmation or reminder mode. Rendering is deterministic: the same data,
// mode, style and agent always produce byte-identical output.
package templates

import (
	"fmt"

	"flightcast-service/internal/domain/entity"
)

// Mode selects the document kind
type Mode string

const (
	ModeConfirmation Mode = "confirmation"
	ModeReminder     Mode = "reminder"
)

// Style selects the confirmation visual style. Styles change presentation
// constants and header copy only, never field content or ordering.
type Style string

const (
	StyleClassic Style = "classic"
	StyleMinimal Style = "minimal"
	StyleUrgent  Style = "urgent"
)

// Fallback strings for optional fields; the literal words "undefined" and
// "null" must never reach the output.
const (
	NoBoardingTime = "--:--"
	NoSeat         = "Não selecionado"
)

// DefaultSubject titles relayed emails when the caller provides none. It is
// also the classic confirmation header.
const DefaultSubject = "Confirmação de Reserva de Passagem - Clube do Voo Viagens"

type legKind int

const (
	legOutbound legKind = iota
	legMiddle
	legInbound
)

// leg is one renderable segment with its position in the itinerary.
// Numbering starts at 1 for the outbound leg; the inbound leg, when present,
// always carries the final number.
type leg struct {
	Number  int
	Kind    legKind
	Segment entity.FlightSegment
}

// legsOf lists the itinerary in canonical order: outbound, additional
// segments in array order, inbound.
func legsOf(data *entity.ExtractedFlightData) []leg {
	legs := make([]leg, 0, data.LegCount())
	legs = append(legs, leg{Number: 1, Kind: legOutbound, Segment: data.Outbound})
	for i, segment := range data.AdditionalSegments {
		legs = append(legs, leg{Number: i + 2, Kind: legMiddle, Segment: segment})
	}
	if data.Inbound != nil {
		legs = append(legs, leg{Number: data.LegCount(), Kind: legInbound, Segment: *data.Inbound})
	}
	return legs
}

// RenderHTML produces the complete HTML document for the given mode. The
// style selector applies to confirmation mode only.
func RenderHTML(data *entity.ExtractedFlightData, mode Mode, style Style, agent entity.AgentProfile) (string, error) {
	switch mode {
	case ModeConfirmation:
		spec, ok := styleTable[style]
		if !ok {
			return "", fmt.Errorf("unknown template style %q", style)
		}
		return renderConfirmationHTML(data, spec, agent), nil
	case ModeReminder:
		return renderReminderHTML(data, agent), nil
	default:
		return "", fmt.Errorf("unknown render mode %q", mode)
	}
}

// RenderWhatsApp produces the plain-text message for the given mode
func RenderWhatsApp(data *entity.ExtractedFlightData, mode Mode, agent entity.AgentProfile) (string, error) {
	switch mode {
	case ModeConfirmation:
		return renderConfirmationText(data, agent), nil
	case ModeReminder:
		return renderReminderText(data, agent), nil
	default:
		return "", fmt.Errorf("unknown render mode %q", mode)
	}
}
