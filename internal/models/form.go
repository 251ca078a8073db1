package models

// CheckInForm holds raw check-in field values as typed by the user.
type CheckInForm struct {
	Mood  string
	Notes string
}

// PlanForm holds raw plan field values as typed by the user. The quick-plan
// drafter fills one of these without saving it.
type PlanForm struct {
	Theme      string
	Priorities [3]string
	Step       string
	Timebox    string
}
