package extraction

import (
	"encoding/json"
	"fmt"
	"strings"

	"flightcast-service/internal/domain/entity"
)

// extractionInstructions is the shared instruction set sent alongside the
// document to every provider.
const extractionInstructions = `Analyze the attached flight document (ticket, itinerary, screenshot).
Extract the flight details for every leg of the trip.

Strictly follow these rules:
1. If it is a one-way ticket, set 'inbound' to null and 'additionalSegments' to an empty array.
2. If the trip has exactly two legs, put the first in 'outbound' and the second in 'inbound'.
3. If the trip has more than two legs, put the first in 'outbound', the last in 'inbound', and the middle legs in 'additionalSegments' in chronological order.
4. If a leg is a direct flight, set 'connection' to null. If there are stops, summarize the connection details (duration and flight number of the connecting flight).
5. PASSENGER NAMES: Extract the full names. If multiple passengers, join them naturally (e.g. "João Silva e Maria Souza"). Capitalize properly.
6. GREETING: Determine the correct greeting (Prezado/Prezada/Prezados/Prezadas) based on the gender and number of passengers.
7. PRONOUN: Choose 'o', 'a', 'os', or 'as' for the phrase "Esperamos que este email [pronoun] encontre bem".
8. DATES & TIMES: Format dates as dd/mm/aaaa and times as hh:mm. Pay attention to "Next Day" (+1) arrival times, but extract the time exactly as shown.
9. BOARDING TIME: If the document prints a boarding time, put it in 'boardingTime' as hh:mm; otherwise set it to null.
10. SEAT: If a seat assignment is printed, put it in 'seat'; otherwise set it to null.
11. ORIGIN/DESTINATION: Use the City Name (e.g. "São Paulo", "Nova York") rather than just the code if available.
12. AIRLINES: Use the full name of the operating airline.`

// responseSchemaText is appended for providers without a structured-output
// schema parameter.
const responseSchemaText = `Respond with valid JSON only, matching this schema exactly:
{
  "passengerNames": "string",
  "greetingTitle": "string",
  "pronoun": "string",
  "outbound": {
    "flightNumber": "string",
    "date": "string",
    "time": "string",
    "origin": "string",
    "destination": "string",
    "airline": "string",
    "pnr": "string",
    "seat": "string" | null,
    "boardingTime": "string" | null,
    "connection": { "duration": "string", "flightNumber": "string" } | null
  },
  "inbound": { ...same shape as outbound... } | null,
  "additionalSegments": [ ...same shape as outbound... ]
}`

// decodeResponse parses a provider reply into flight data. Fenced code
// blocks around the JSON are tolerated.
func decodeResponse(raw string) (*entity.ExtractedFlightData, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var data entity.ExtractedFlightData
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("provider returned unusable JSON: %w", err)
	}
	return &data, nil
}
