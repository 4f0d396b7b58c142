package config

// Layout constants.
const (
	// ProgressWidth is the preferred width of the countdown bar.
	ProgressWidth = 40

	// MinProgressWidth is used on very narrow terminals.
	MinProgressWidth = 10

	// CompactModeThreshold hides the heatmap below this width.
	CompactModeThreshold = 60

	// HeatmapWeeks is the number of week columns in the heatmap.
	HeatmapWeeks = 12

	// ReportDays is the number of days listed in the PDF report.
	ReportDays = 30

	// ReportSessions caps the session log section of the report.
	ReportSessions = 20
)

// Heatmap intensity thresholds, in minutes.
const (
	HeatLow    = 15.0
	HeatMedium = 30.0
	HeatHigh   = 60.0
)

// Input constraints.
const (
	// MaxGoalLength is the maximum focus goal length.
	MaxGoalLength = 80

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)
