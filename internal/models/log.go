package models

import "time"

// TimeSlot is the coarse bucket of day a meal was logged in.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "Morning"
	SlotAfternoon TimeSlot = "Afternoon"
	SlotEvening   TimeSlot = "Evening"
	SlotNight     TimeSlot = "Night"
)

// TimeSlots lists all slots in day order.
var TimeSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening, SlotNight}

// SlotForTime buckets a clock time into a TimeSlot:
// 05:00–11:59 Morning, 12:00–16:59 Afternoon, 17:00–20:59 Evening,
// everything else Night.
func SlotForTime(t time.Time) TimeSlot {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return SlotMorning
	case h >= 12 && h < 17:
		return SlotAfternoon
	case h >= 17 && h < 21:
		return SlotEvening
	default:
		return SlotNight
	}
}

// LogEntry is a snapshot of a food at the moment it was logged. Later edits
// to the catalog item do not change past entries.
type LogEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Kcal     int      `json:"kcal"`
	Protein  int      `json:"protein"`
	Carbs    int      `json:"carbs"`
	Fat      int      `json:"fat"`
	Time     string   `json:"time"` // HH:mm local time
	TimeSlot TimeSlot `json:"time_slot"`
}

// DailyLog aggregates all meals and running nutrient totals for one local
// calendar day. Each total equals the sum of the corresponding field across
// Entries at all times the log is readable.
type DailyLog struct {
	Date         string     `json:"date"` // YYYY-MM-DD local calendar day
	Entries      []LogEntry `json:"entries"`
	TotalKcal    int        `json:"total_kcal"`
	TotalProtein int        `json:"total_protein"`
	TotalCarbs   int        `json:"total_carbs"`
	TotalFat     int        `json:"total_fat"`
}
