package entity

import (
	"time"
)

// MoodLog is a single timestamped self-report of emotional and
// physiological state, owned by exactly one user.
type MoodLog struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Mood            string    `json:"mood"`
	SpecificEmotion string    `json:"specificEmotion,omitempty"`
	Intensity       int       `json:"intensity"`
	EnergyLevel     int       `json:"energyLevel"`
	TagsPeople      []string  `json:"tagsPeople"`
	TagsPlaces      []string  `json:"tagsPlaces"`
	TagsEvents      []string  `json:"tagsEvents"`
	SleepHours      float64   `json:"sleepHours"`
	SleepQuality    int       `json:"sleepQuality"`
	Exercise        bool      `json:"exercise"`
	Notes           string    `json:"notes,omitempty"`
	Reflections     string    `json:"reflections,omitempty"`
	Date            time.Time `json:"date"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
