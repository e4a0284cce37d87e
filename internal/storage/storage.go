// Package storage holds the persistence layer: a Provider interface with a
// SQLite implementation (default) and a JSON-file implementation selected by
// config-file extension.
//
// Concurrency note: stores are not safe for concurrent use by multiple
// goroutines without external synchronization, and running multiple caltrack
// processes against the same config path is not supported.
package storage

import (
	"sort"

	"github.com/KantaKan/terminal-calorie-tracker/internal/constants"
	"github.com/KantaKan/terminal-calorie-tracker/internal/models"
)

const (
	settingDailyGoalKcal = constants.SettingDailyGoalKcal
	settingTimezone      = constants.SettingTimezone
)

func defaultSettings() models.Settings {
	return models.Settings{
		DailyGoalKcal: constants.DefaultDailyGoalKcal,
		Timezone:      constants.DefaultTimezone,
	}
}

// sortDaysDesc orders day logs most recent first. ISO dates sort
// lexicographically, so plain string comparison is enough.
func sortDaysDesc(days []models.DailyLog) {
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})
}
