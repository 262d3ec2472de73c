package entity

// MaxHistoryItems is the capacity of the history store; appending beyond it
// evicts the oldest item.
const MaxHistoryItems = 5

// HistoryItem is an immutable record of one confirmed generation
type HistoryItem struct {
	ID        string              `json:"id" bson:"_id"`
	Timestamp int64               `json:"timestamp" bson:"timestamp"` // unix millis
	Data      ExtractedFlightData `json:"data" bson:"data"`
	HTML      string              `json:"html" bson:"html"`
}
