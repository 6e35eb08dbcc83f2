package viewmodels

// WorkOrder is the API shape of a work order. Timestamps are RFC 3339 strings
// or empty when unset.
type WorkOrder struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	AssigneeID  string `json:"assignee_id,omitempty"`
	Title       string `json:"title"`
	Address     string `json:"address,omitempty"`
	Status      string `json:"status"`
	Report      string `json:"report,omitempty"`
	ScheduledAt string `json:"scheduled_at,omitempty"`
	StartedAt   string `json:"started_at,omitempty"`
	CompletedAt string `json:"completed_at,omitempty"`
	CancelledAt string `json:"cancelled_at,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// BoardColumn is one bucket of the kanban view, with the actions available
// from it.
type BoardColumn struct {
	Bucket         string       `json:"bucket"`
	Orders         []*WorkOrder `json:"orders"`
	AllowedTargets []string     `json:"allowed_targets"`
}

// CalendarDay is one dated group of the calendar view. Date is "2006-01-02"
// or the no-date label for unscheduled orders.
type CalendarDay struct {
	Date   string       `json:"date"`
	Orders []*WorkOrder `json:"orders"`
}

// TransitionResult reports a successful move and which audiences were
// notified.
type TransitionResult struct {
	Order    *WorkOrder `json:"order"`
	Notified []string   `json:"notified"`
}
