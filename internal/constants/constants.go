package constants

const (
	AppName           = "caltrack"
	DefaultConfigPath = "~/.config/caltrack/caltrack.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:mm)
	TimeFormat = "15:04"

	// Settings keys
	SettingDailyGoalKcal = "daily_goal_kcal"
	SettingTimezone      = "timezone"

	// Default settings values
	DefaultDailyGoalKcal = 2000
	DefaultTimezone      = "Local" // Use system local timezone by default

	// Calories per gram of each macronutrient
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9

	// StreakScanLimitDays bounds the backward scan when computing a
	// goal-adherence streak.
	StreakScanLimitDays = 365

	// SearchMinScore is the score floor below which fuzzy matches are
	// discarded from catalog search results.
	SearchMinScore = -40
)
