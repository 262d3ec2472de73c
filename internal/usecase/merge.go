package usecase

import (
	"flightcast-service/internal/domain/entity"
	"flightcast-service/pkg/apperrors"
)

// MergeRoundTrip combines two single-document extractions into one round
// trip. The first document wins all identity fields (passenger names,
// greeting, pronoun) and supplies the outbound leg unchanged; the second
// document's outbound leg becomes the inbound leg unchanged.
//
// Documents that already describe a multi-leg trip are rejected: accepting
// them would silently discard their extra legs.
func MergeRoundTrip(first, second *entity.ExtractedFlightData) (*entity.ExtractedFlightData, error) {
	if first == nil || second == nil {
		return nil, apperrors.ValidationFailed("both documents are required for a round-trip merge", "")
	}
	if first.LegCount() != 1 {
		return nil, apperrors.ValidationFailed("outbound document must describe a single leg",
			"upload each direction as its own one-way document")
	}
	if second.LegCount() != 1 {
		return nil, apperrors.ValidationFailed("inbound document must describe a single leg",
			"upload each direction as its own one-way document")
	}

	inbound := second.Outbound
	merged := &entity.ExtractedFlightData{
		PassengerNames: first.PassengerNames,
		GreetingTitle:  first.GreetingTitle,
		Pronoun:        first.Pronoun,
		Outbound:       first.Outbound,
		Inbound:        &inbound,
	}
	return merged, nil
}
