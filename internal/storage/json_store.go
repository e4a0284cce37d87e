package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/KantaKan/terminal-calorie-tracker/internal/errors"
	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
)

type jsonData struct {
	Version  int                        `json:"version"`
	Settings models.Settings            `json:"settings"`
	Foods    []models.FoodItem          `json:"foods"`
	Days     map[string]models.DailyLog `json:"days"`
}

// JSONStore persists everything in a single JSON file. Each mutation rewrites
// the whole file, which makes every mutation a single atomic unit.
type JSONStore struct {
	path string
	data *jsonData
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.data = &jsonData{
		Version:  1,
		Settings: defaultSettings(),
		Days:     make(map[string]models.DailyLog),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	if s.data != nil {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'caltrack init' first")
		}
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	s.data = &jsonData{}
	if err := json.Unmarshal(raw, s.data); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.data.Days == nil {
		s.data.Days = make(map[string]models.DailyLog)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.data == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.data.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.data.Settings = settings
	return s.save()
}

func (s *JSONStore) AddFood(food models.FoodItem) error {
	if err := s.loaded(); err != nil {
		return err
	}

	// Case-sensitive unique name, same as the SQLite unique index
	for _, f := range s.data.Foods {
		if f.Name == food.Name {
			return apperrors.ErrDuplicateName
		}
	}

	s.data.Foods = append(s.data.Foods, food)
	return s.save()
}

func (s *JSONStore) GetFood(id string) (models.FoodItem, error) {
	if err := s.loaded(); err != nil {
		return models.FoodItem{}, err
	}

	for _, f := range s.data.Foods {
		if f.ID == id {
			return f, nil
		}
	}
	return models.FoodItem{}, fmt.Errorf("food not found: %s", id)
}

func (s *JSONStore) GetAllFoods() ([]models.FoodItem, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	foods := make([]models.FoodItem, len(s.data.Foods))
	copy(foods, s.data.Foods)
	return foods, nil
}

func (s *JSONStore) UpdateFood(food models.FoodItem) error {
	if err := s.loaded(); err != nil {
		return err
	}

	idx := -1
	for i, f := range s.data.Foods {
		if f.ID == food.ID {
			idx = i
		} else if f.Name == food.Name {
			return apperrors.ErrDuplicateName
		}
	}
	if idx < 0 {
		return fmt.Errorf("food not found: %s", food.ID)
	}

	s.data.Foods[idx] = food
	return s.save()
}

func (s *JSONStore) DeleteFood(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i, f := range s.data.Foods {
		if f.ID == id {
			s.data.Foods = append(s.data.Foods[:i], s.data.Foods[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("food not found: %s", id)
}

func (s *JSONStore) AppendEntry(date string, entry models.LogEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}

	day := s.data.Days[date]
	day.Date = date
	day.Entries = append(day.Entries, entry)
	day.TotalKcal += entry.Kcal
	day.TotalProtein += entry.Protein
	day.TotalCarbs += entry.Carbs
	day.TotalFat += entry.Fat
	s.data.Days[date] = day

	return s.save()
}

func (s *JSONStore) UpdateEntry(date string, entry models.LogEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}

	day, ok := s.data.Days[date]
	if !ok {
		return apperrors.ErrEntryNotFound
	}

	for i, old := range day.Entries {
		if old.ID != entry.ID {
			continue
		}

		// Preserve the original occasion; only the snapshot fields change.
		entry.Time = old.Time
		entry.TimeSlot = old.TimeSlot
		day.Entries[i] = entry
		day.TotalKcal += entry.Kcal - old.Kcal
		day.TotalProtein += entry.Protein - old.Protein
		day.TotalCarbs += entry.Carbs - old.Carbs
		day.TotalFat += entry.Fat - old.Fat
		s.data.Days[date] = day

		return s.save()
	}

	return apperrors.ErrEntryNotFound
}

func (s *JSONStore) RemoveEntry(date string, entryID string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	day, ok := s.data.Days[date]
	if !ok {
		return apperrors.ErrEntryNotFound
	}

	for i, old := range day.Entries {
		if old.ID != entryID {
			continue
		}

		day.Entries = append(day.Entries[:i], day.Entries[i+1:]...)
		day.TotalKcal -= old.Kcal
		day.TotalProtein -= old.Protein
		day.TotalCarbs -= old.Carbs
		day.TotalFat -= old.Fat
		s.data.Days[date] = day

		return s.save()
	}

	return apperrors.ErrEntryNotFound
}

func (s *JSONStore) GetDay(date string) (models.DailyLog, error) {
	if err := s.loaded(); err != nil {
		return models.DailyLog{}, err
	}

	day, ok := s.data.Days[date]
	if !ok {
		return models.DailyLog{}, apperrors.ErrDayNotFound
	}
	return day, nil
}

func (s *JSONStore) ListDays() ([]models.DailyLog, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	days := make([]models.DailyLog, 0, len(s.data.Days))
	for _, day := range s.data.Days {
		days = append(days, day)
	}

	// Most recent first; ISO dates sort lexicographically
	sortDaysDesc(days)

	return days, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
