package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/pkg/apperrors"
	"flightcast-service/pkg/utils"
)

// DefaultBoardingLeadMinutes approximates a missing boarding time as this
// many minutes before departure.
const DefaultBoardingLeadMinutes = 40

// Normalize validates extracted flight data in place and applies the
// post-extraction defaults. It enforces the leg-collapsing invariant, checks
// required fields and date/time shapes, resolves partial connection records
// and fills missing boarding times.
func Normalize(data *entity.ExtractedFlightData) error {
	if data == nil {
		return apperrors.New(apperrors.ExtractionError, "no flight data extracted", "")
	}

	var missing []string
	if strings.TrimSpace(data.PassengerNames) == "" {
		missing = append(missing, "passengerNames")
	}
	if strings.TrimSpace(data.GreetingTitle) == "" {
		missing = append(missing, "greetingTitle")
	}
	if strings.TrimSpace(data.Pronoun) == "" {
		missing = append(missing, "pronoun")
	}
	if len(missing) > 0 {
		return apperrors.New(apperrors.ExtractionError, "extracted data incomplete",
			"missing fields: "+strings.Join(missing, ", "))
	}

	// Leg collapsing: middle legs without a final leg mean the provider left
	// the last leg in additionalSegments. Promote it.
	if data.Inbound == nil && len(data.AdditionalSegments) > 0 {
		last := data.AdditionalSegments[len(data.AdditionalSegments)-1]
		data.Inbound = &last
		data.AdditionalSegments = data.AdditionalSegments[:len(data.AdditionalSegments)-1]
		if len(data.AdditionalSegments) == 0 {
			data.AdditionalSegments = nil
		}
	}

	if err := normalizeSegment(&data.Outbound, "outbound"); err != nil {
		return err
	}
	for i := range data.AdditionalSegments {
		if err := normalizeSegment(&data.AdditionalSegments[i], fmt.Sprintf("additionalSegments[%d]", i)); err != nil {
			return err
		}
	}
	if data.Inbound != nil {
		if err := normalizeSegment(data.Inbound, "inbound"); err != nil {
			return err
		}
	}

	return nil
}

func normalizeSegment(segment *entity.FlightSegment, name string) error {
	required := map[string]string{
		"flightNumber": segment.FlightNumber,
		"date":         segment.Date,
		"time":         segment.Time,
		"origin":       segment.Origin,
		"destination":  segment.Destination,
		"airline":      segment.Airline,
		"pnr":          segment.PNR,
	}
	var missing []string
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return apperrors.New(apperrors.ExtractionError, "extracted segment incomplete",
			fmt.Sprintf("%s missing fields: %s", name, strings.Join(sorted(missing), ", ")))
	}

	date, err := canonicalDate(segment.Date)
	if err != nil {
		return apperrors.New(apperrors.ExtractionError, "extracted segment has malformed date",
			fmt.Sprintf("%s: %q", name, segment.Date))
	}
	segment.Date = date

	departure, err := canonicalTime(segment.Time)
	if err != nil {
		return apperrors.New(apperrors.ExtractionError, "extracted segment has malformed time",
			fmt.Sprintf("%s: %q", name, segment.Time))
	}
	segment.Time = departure

	if segment.BoardingTime != "" {
		boarding, err := canonicalTime(segment.BoardingTime)
		if err != nil {
			return apperrors.New(apperrors.ExtractionError, "extracted segment has malformed boarding time",
				fmt.Sprintf("%s: %q", name, segment.BoardingTime))
		}
		segment.BoardingTime = boarding
	} else {
		segment.BoardingTime = utils.BoardingTimeBefore(segment.Time, DefaultBoardingLeadMinutes)
	}

	// A connection is fully populated or entirely absent.
	if segment.Connection != nil {
		duration := strings.TrimSpace(segment.Connection.Duration)
		flight := strings.TrimSpace(segment.Connection.FlightNumber)
		switch {
		case duration == "" && flight == "":
			segment.Connection = nil
		case duration == "" || flight == "":
			return apperrors.New(apperrors.ExtractionError, "extracted segment has partial connection",
				fmt.Sprintf("%s: duration=%q flightNumber=%q", name, duration, flight))
		default:
			segment.Connection.Duration = duration
			segment.Connection.FlightNumber = flight
		}
	}

	return nil
}

func canonicalDate(value string) (string, error) {
	t, err := time.Parse(utils.DATE_LAYOUT, strings.TrimSpace(value))
	if err != nil {
		return "", err
	}
	return t.Format(utils.DATE_LAYOUT), nil
}

func canonicalTime(value string) (string, error) {
	t, err := time.Parse(utils.TIME_LAYOUT, strings.TrimSpace(value))
	if err != nil {
		return "", err
	}
	return t.Format(utils.TIME_LAYOUT), nil
}

func sorted(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
