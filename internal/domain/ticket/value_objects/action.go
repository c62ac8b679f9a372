package value_objects

import "fmt"

// HistoryAction identifies what kind of event a history entry records.
type HistoryAction string

const (
	ActionCreated         HistoryAction = "created"
	ActionStatusChanged   HistoryAction = "status_changed"
	ActionResolutionAdded HistoryAction = "resolution_added"
	ActionAttachmentAdded HistoryAction = "attachment_added"
	ActionRated           HistoryAction = "rated"
	ActionClosed          HistoryAction = "closed"
)

var validActions = map[HistoryAction]bool{
	ActionCreated:         true,
	ActionStatusChanged:   true,
	ActionResolutionAdded: true,
	ActionAttachmentAdded: true,
	ActionRated:           true,
	ActionClosed:          true,
}

func NewHistoryAction(s string) (HistoryAction, error) {
	a := HistoryAction(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid history action: %s", s)
	}
	return a, nil
}

func (a HistoryAction) String() string {
	return string(a)
}

func (a HistoryAction) IsValid() bool {
	return validActions[a]
}
