package domain

import "time"

// DistractionRow is a row of the Baserow distractions table.
type DistractionRow struct {
	ID        int    `json:"id"`
	Entry     string `json:"entry"`
	Type      string `json:"type"`
	Archived  bool   `json:"archived"`
	CreatedOn string `json:"created_on"`
}

// CuratedRow is a row of the curated Coda table. Only rows with status
// "Live" ever leave the store client.
type CuratedRow struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Link   string `json:"link"`
	Image  string `json:"image"`
	Scale  string `json:"scale"`
	Status string `json:"status"`
}

// InboxRow is a row of the Coda inbox table awaiting triage.
type InboxRow struct {
	ID         string    `json:"id"`
	Entry      string    `json:"entry"`
	RecordType string    `json:"record_type"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"created_at"`
}

// Inbox routing action tags. Each tag names a destination table an
// inbox entry can be routed to before being deleted from the inbox.
const (
	ActionDistraction = "DI"
	ActionTask        = "TA"
	ActionIdeaArchive = "IA"
	ActionProject     = "PR"
	ActionMedia       = "MI"
	ActionToShare     = "TS"
	ActionToBuy       = "TB"
	ActionDevLink     = "DV"
	ActionDeepLook    = "DL"
)

// ValidActions lists every accepted routing tag, in display order.
var ValidActions = []string{
	ActionDistraction,
	ActionTask,
	ActionIdeaArchive,
	ActionProject,
	ActionMedia,
	ActionToShare,
	ActionToBuy,
	ActionDevLink,
	ActionDeepLook,
}

// IsValidAction reports whether tag is a known routing action.
func IsValidAction(tag string) bool {
	for _, a := range ValidActions {
		if a == tag {
			return true
		}
	}
	return false
}
