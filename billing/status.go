package billing

// Invoice lifecycle statuses. DRAFT through APPROVED are set by users;
// PARTIAL and PAID only ever result from applying payments.
const (
	StatusDraft     = "DRAFT"
	StatusSent      = "SENT"
	StatusViewed    = "VIEWED"
	StatusApproved  = "APPROVED"
	StatusPartial   = "PARTIAL"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
)

// ValidStatus reports whether s is one of the known invoice statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSent, StatusViewed, StatusApproved,
		StatusPartial, StatusPaid, StatusCancelled:
		return true
	}
	return false
}
