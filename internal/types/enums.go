package types

// Project status values
const (
	StatusDraft                  = "draft"
	StatusSubmittedForValidation = "submitted_for_validation"
	StatusValidated              = "validated"
	StatusInProduction           = "in_production"
	StatusRejected               = "rejected"
)

// Valid status values for validation
var ValidProjectStatuses = []string{
	StatusDraft, StatusSubmittedForValidation, StatusValidated,
	StatusInProduction, StatusRejected,
}

// Display colors per status. The front end renders these directly; #808080 is
// also its fallback when a row predates the color column.
var StatusColors = map[string]string{
	StatusDraft:                  "#808080",
	StatusSubmittedForValidation: "#f59e0b",
	StatusValidated:              "#10b981",
	StatusInProduction:           "#3b82f6",
	StatusRejected:               "#ef4444",
}

// DefaultDurationMinutes applies when a project has no duration set.
const DefaultDurationMinutes = 60

func IsValidStatus(status string) bool {
	for _, s := range ValidProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ColorForStatus returns the display color for a status, falling back to the
// draft gray for anything unknown.
func ColorForStatus(status string) string {
	if c, ok := StatusColors[status]; ok {
		return c
	}
	return StatusColors[StatusDraft]
}
