package constants

// Field bounds enforced by the validators.
const (
	MoodMin    = 0
	MoodMax    = 10
	TimeboxMin = 5
	TimeboxMax = 180

	PriorityCount = 3
)

// Quick-plan themes
const (
	ThemeStability = "Stability"
	ThemeMomentum  = "Momentum"
	ThemeExpansion = "Expansion"
)

// Quick-plan defaults
const (
	DraftPriorityStabilize = "Stabilize: one thing that lowers stress today"
	DraftPriorityBuild     = "Build: one thing that improves your life direction"
	DraftPriorityMaintain  = "Maintain: one small responsibility to keep clean"
	DraftStep              = "Open the task and do the first 2 minutes"
	DraftTimebox           = "25"
)

// User-facing messages
const (
	MsgMoodInvalid    = "Mood must be a number from 0 to 10."
	MsgNotesRequired  = "Add a short note so this check-in is useful later."
	MsgPlanIncomplete = "Fill in priorities 1–3 and the smallest next step."
	MsgTimeboxInvalid = "Time box must be 5–180 minutes."
	MsgSaved          = "Saved."
	MsgCleared        = "Cleared."
	MsgDrafted        = "Drafted a plan. Edit it to fit your reality, then save."
	MsgExported       = "Exported."
	MsgImported       = "Imported and merged."
	MsgImportBadShape = "Invalid file. Expected a Praxis export JSON."
	MsgImportBadJSON  = "Could not import. Make sure it’s valid JSON."
	MsgWipePrompt     = "Delete ALL saved Praxis v1 data on this device? This cannot be undone."
	MsgWiped          = "All entries deleted."
	MsgHistoryEmpty   = "No entries yet. Save a check-in or plan."
)
