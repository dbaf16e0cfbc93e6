package models

// Destination holds the structure for a destination document in the
// catalog. The ID is the slug the UI and vote payloads refer to.
type Destination struct {
	ID             string   `json:"id" bson:"_id"`
	Name           string   `json:"name" bson:"name"`
	IATA           string   `json:"iata" bson:"iata"`
	Lat            float64  `json:"lat" bson:"lat"`
	Lng            float64  `json:"lng" bson:"lng"`
	Description    string   `json:"description,omitempty" bson:"description,omitempty"`
	BestSeason     string   `json:"bestSeason,omitempty" bson:"bestSeason,omitempty"`
	Activities     []string `json:"activities,omitempty" bson:"activities,omitempty"`
	Image          string   `json:"image" bson:"image"`
	IsOrigin       bool     `json:"isOrigin" bson:"isOrigin"`
	FlightEstimate int      `json:"flightEstimate" bson:"flightEstimate"`
}
