package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type SavedItinerary struct {
	BaseModel
	Destination        string         `gorm:"index;not null"`
	StartDate          string         `gorm:"size:10;not null"`
	EndDate            string         `gorm:"size:10;not null"`
	TravelerCount      int            `gorm:"not null"`
	Budget             float64        `gorm:"not null"`
	AccommodationType  string         `gorm:"size:32"`
	TransportationType string         `gorm:"size:32"`
	MealPreference     string         `gorm:"size:32"`
	Interests          pq.StringArray `gorm:"type:text[]"`
	DraftTotal         string
	TotalCost          string
	Optimized          bool
	Itinerary          datatypes.JSON `gorm:"type:jsonb"` // response_models.Itinerary
	Report             datatypes.JSON `gorm:"type:jsonb"` // response_models.OptimizationReport
}
