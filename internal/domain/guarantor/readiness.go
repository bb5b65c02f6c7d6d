package guarantor

import (
	"fmt"
	"strings"
)

// Readiness is the mandatory pre-disbursement gate: every attached guarantor
// must have accepted. Declines block the application indefinitely.
func Readiness(gs []Guarantor) (ready bool, reason string) {
	if len(gs) == 0 {
		return true, "No guarantors required"
	}

	var declined, pending []string
	for _, g := range gs {
		switch g.Status {
		case StatusDeclined:
			declined = append(declined, g.GuarantorName)
		case StatusPending:
			pending = append(pending, g.GuarantorName)
		}
	}

	if len(declined) > 0 {
		return false, fmt.Sprintf("guarantors declined: %s", strings.Join(declined, ", "))
	}
	if len(pending) > 0 {
		return false, fmt.Sprintf("guarantors pending response: %s", strings.Join(pending, ", "))
	}
	return true, "All guarantors accepted"
}
