package models

// Settings is the process-wide configuration singleton.
type Settings struct {
	DailyGoalKcal int    `json:"daily_goal_kcal"`
	Timezone      string `json:"timezone"`
}
