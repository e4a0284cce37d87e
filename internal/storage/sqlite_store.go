package storage

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	apperrors "github.com/KantaKan/terminal-calorie-tracker/internal/errors"
	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
)

//go:embed schema.sql
var schemaSQL string

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	s.db = db

	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(defaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'caltrack init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// isUniqueViolation reports whether err is a SQLite unique-index violation.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case settingDailyGoalKcal:
			goal, err := strconv.Atoi(value)
			if err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", settingDailyGoalKcal, err)
			}
			settings.DailyGoalKcal = goal
		case settingTimezone:
			settings.Timezone = value
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(settingDailyGoalKcal, strconv.Itoa(settings.DailyGoalKcal)); err != nil {
		return err
	}
	if _, err := stmt.Exec(settingTimezone, settings.Timezone); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddFood(food models.FoodItem) error {
	_, err := s.db.Exec(`
		INSERT INTO foods (id, name, kcal, protein, carbs, fat, category)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		food.ID, food.Name, food.Kcal, food.Protein, food.Carbs, food.Fat, food.Category,
	)
	if isUniqueViolation(err) {
		return apperrors.ErrDuplicateName
	}
	return err
}

func (s *SQLiteStore) GetFood(id string) (models.FoodItem, error) {
	row := s.db.QueryRow(
		"SELECT id, name, kcal, protein, carbs, fat, category FROM foods WHERE id = ?", id)

	var f models.FoodItem
	err := row.Scan(&f.ID, &f.Name, &f.Kcal, &f.Protein, &f.Carbs, &f.Fat, &f.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FoodItem{}, fmt.Errorf("food not found: %s", id)
		}
		return models.FoodItem{}, err
	}

	return f, nil
}

func (s *SQLiteStore) GetAllFoods() ([]models.FoodItem, error) {
	// rowid order preserves the order foods were learned in
	rows, err := s.db.Query(
		"SELECT id, name, kcal, protein, carbs, fat, category FROM foods ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []models.FoodItem
	for rows.Next() {
		var f models.FoodItem
		if err := rows.Scan(&f.ID, &f.Name, &f.Kcal, &f.Protein, &f.Carbs, &f.Fat, &f.Category); err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}

	return foods, rows.Err()
}

func (s *SQLiteStore) UpdateFood(food models.FoodItem) error {
	res, err := s.db.Exec(`
		UPDATE foods SET name = ?, kcal = ?, protein = ?, carbs = ?, fat = ?, category = ?
		WHERE id = ?`,
		food.Name, food.Kcal, food.Protein, food.Carbs, food.Fat, food.Category, food.ID,
	)
	if isUniqueViolation(err) {
		return apperrors.ErrDuplicateName
	}
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("food not found: %s", food.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteFood(id string) error {
	res, err := s.db.Exec("DELETE FROM foods WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("food not found: %s", id)
	}
	return nil
}

// AppendEntry upserts the day record, appends the entry in insertion order,
// and increments all four totals in one transaction.
func (s *SQLiteStore) AppendEntry(date string, entry models.LogEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO days (date) VALUES (?) ON CONFLICT(date) DO NOTHING", date); err != nil {
		return err
	}

	var position int
	if err := tx.QueryRow(
		"SELECT COALESCE(MAX(position) + 1, 0) FROM entries WHERE day_date = ?", date,
	).Scan(&position); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO entries (id, day_date, position, name, kcal, protein, carbs, fat, time, slot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, date, position, entry.Name, entry.Kcal, entry.Protein, entry.Carbs, entry.Fat,
		entry.Time, entry.TimeSlot,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		UPDATE days SET
			total_kcal = total_kcal + ?,
			total_protein = total_protein + ?,
			total_carbs = total_carbs + ?,
			total_fat = total_fat + ?
		WHERE date = ?`,
		entry.Kcal, entry.Protein, entry.Carbs, entry.Fat, date,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateEntry rewrites an entry's name/kcal/macros and applies the deltas to
// the day's totals in one transaction. The entry's time and slot are
// preserved. Returns ErrEntryNotFound if the id is absent from that date.
func (s *SQLiteStore) UpdateEntry(date string, entry models.LogEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var old models.LogEntry
	err = tx.QueryRow(
		"SELECT kcal, protein, carbs, fat FROM entries WHERE id = ? AND day_date = ?",
		entry.ID, date,
	).Scan(&old.Kcal, &old.Protein, &old.Carbs, &old.Fat)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrEntryNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`
		UPDATE entries SET name = ?, kcal = ?, protein = ?, carbs = ?, fat = ?
		WHERE id = ? AND day_date = ?`,
		entry.Name, entry.Kcal, entry.Protein, entry.Carbs, entry.Fat, entry.ID, date,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		UPDATE days SET
			total_kcal = total_kcal + ?,
			total_protein = total_protein + ?,
			total_carbs = total_carbs + ?,
			total_fat = total_fat + ?
		WHERE date = ?`,
		entry.Kcal-old.Kcal, entry.Protein-old.Protein, entry.Carbs-old.Carbs, entry.Fat-old.Fat,
		date,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// RemoveEntry deletes an entry and decrements the day's totals by the
// entry's stored snapshot values in one transaction.
func (s *SQLiteStore) RemoveEntry(date string, entryID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var old models.LogEntry
	err = tx.QueryRow(
		"SELECT kcal, protein, carbs, fat FROM entries WHERE id = ? AND day_date = ?",
		entryID, date,
	).Scan(&old.Kcal, &old.Protein, &old.Carbs, &old.Fat)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrEntryNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(
		"DELETE FROM entries WHERE id = ? AND day_date = ?", entryID, date); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		UPDATE days SET
			total_kcal = total_kcal - ?,
			total_protein = total_protein - ?,
			total_carbs = total_carbs - ?,
			total_fat = total_fat - ?
		WHERE date = ?`,
		old.Kcal, old.Protein, old.Carbs, old.Fat, date,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetDay(date string) (models.DailyLog, error) {
	day := models.DailyLog{Date: date}
	err := s.db.QueryRow(
		"SELECT total_kcal, total_protein, total_carbs, total_fat FROM days WHERE date = ?", date,
	).Scan(&day.TotalKcal, &day.TotalProtein, &day.TotalCarbs, &day.TotalFat)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyLog{}, apperrors.ErrDayNotFound
	}
	if err != nil {
		return models.DailyLog{}, err
	}

	entries, err := s.getEntries(date)
	if err != nil {
		return models.DailyLog{}, err
	}
	day.Entries = entries

	return day, nil
}

func (s *SQLiteStore) getEntries(date string) ([]models.LogEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, name, kcal, protein, carbs, fat, time, slot
		FROM entries WHERE day_date = ? ORDER BY position`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.LogEntry
	for rows.Next() {
		var e models.LogEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Kcal, &e.Protein, &e.Carbs, &e.Fat, &e.Time, &e.TimeSlot); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *SQLiteStore) ListDays() ([]models.DailyLog, error) {
	rows, err := s.db.Query(`
		SELECT date, total_kcal, total_protein, total_carbs, total_fat
		FROM days ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}

	var days []models.DailyLog
	for rows.Next() {
		var d models.DailyLog
		if err := rows.Scan(&d.Date, &d.TotalKcal, &d.TotalProtein, &d.TotalCarbs, &d.TotalFat); err != nil {
			rows.Close()
			return nil, err
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range days {
		entries, err := s.getEntries(days[i].Date)
		if err != nil {
			return nil, err
		}
		days[i].Entries = entries
	}

	return days, nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

