package storage

import "github.com/KantaKan/terminal-calorie-tracker/internal/models"

// Provider is the document-store abstraction the rest of the application
// talks to. Three collections: foods (unique name), days (unique date),
// settings (singleton). The entry mutations are atomic units: appending,
// rewriting, or removing an entry and adjusting the owning day's totals
// always happens in one step, never as separate read-modify-write calls.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Foods
	AddFood(models.FoodItem) error
	GetFood(id string) (models.FoodItem, error)
	GetAllFoods() ([]models.FoodItem, error)
	UpdateFood(models.FoodItem) error
	DeleteFood(id string) error

	// Days
	AppendEntry(date string, entry models.LogEntry) error
	UpdateEntry(date string, entry models.LogEntry) error
	RemoveEntry(date string, entryID string) error
	GetDay(date string) (models.DailyLog, error)
	ListDays() ([]models.DailyLog, error)

	// Utils
	GetConfigPath() string
}
