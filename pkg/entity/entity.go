package entity

import (
	"time"

	"github.com/google/uuid"
)

type Recurrence string

const (
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

// Reminder is one medication cue: a recurrence rule plus the learned
// offset and adherence history attached to it.
type Reminder struct {
	ID               uuid.UUID  `json:"id"`
	MedName          string     `json:"med_name"`
	Dosage           string     `json:"dosage,omitempty"`
	Time             string     `json:"time"` // "H:MM AM/PM"
	Recurrence       Recurrence `json:"recurrence"`
	Days             []string   `json:"days,omitempty"` // weekly only: "Mon".."Sun"
	ScheduleRefs     []string   `json:"schedule_refs,omitempty"`
	CurrentOffsetMin int        `json:"current_offset_min"`
	// offset ScheduleRefs were derived with; a mismatch with
	// CurrentOffsetMin means the live schedule is stale
	ScheduledOffsetMin int               `json:"scheduled_offset_min"`
	History            []AdherenceRecord `json:"history,omitempty"`
	Arms               []ArmStat         `json:"arms,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// AdherenceRecord is one "taken" acknowledgment. At most one exists per
// calendar date per reminder; absence means no acknowledgment, not a miss.
type AdherenceRecord struct {
	Date      string    `json:"date"` // "2006-01-02"
	TS        time.Time `json:"ts"`
	Scheduled string    `json:"scheduled"`
	Offset    int       `json:"offset"`
	Reward    *float64  `json:"reward"`
}

// ArmStat holds the running statistics of one candidate offset.
// Mean is an incremental average, so the accumulator stays bounded.
type ArmStat struct {
	OffsetMin int     `json:"offset_min"`
	Count     int     `json:"count"`
	Mean      float64 `json:"mean"`
}

// RecordForDate returns the index of the adherence record for the given
// day key, or -1.
func (r *Reminder) RecordForDate(date string) int {
	for i := range r.History {
		if r.History[i].Date == date {
			return i
		}
	}
	return -1
}

type Pharmacy struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone,omitempty"`
	OpeningHours string  `json:"opening_hours,omitempty"`
	DistanceKm   float64 `json:"distance_km"`
	MapsURL      string  `json:"maps_url"`
}
