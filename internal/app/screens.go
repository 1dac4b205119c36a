package app

// Screen represents the current view in the application
type Screen int

const (
	ScreenMainMenu Screen = iota
	ScreenScanning
	ScreenPlanReview
	ScreenPlanPreview
	ScreenExcluded
	ScreenConfirmation
	ScreenCommitting
	ScreenSummary
	ScreenError
	ScreenUpdatePrompt
	ScreenUpdating
	ScreenSessionHistory
)

func (s Screen) String() string {
	names := []string{
		"MainMenu",
		"Scanning",
		"PlanReview",
		"PlanPreview",
		"Excluded",
		"Confirmation",
		"Committing",
		"Summary",
		"Error",
		"UpdatePrompt",
		"Updating",
		"SessionHistory",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}
