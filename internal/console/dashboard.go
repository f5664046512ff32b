package console

import (
	"sync"
	"time"
)

// View identifies which console surface is active.
type View string

const (
	ViewList    View = "list"
	ViewTrigger View = "trigger"
	ViewDetail  View = "detail"
)

// Feedback is one transient user-facing message.
type Feedback struct {
	Text    string
	IsError bool
}

// Dashboard wires the trigger form, the worklist and the editor into
// one navigable surface. It owns no business rules: only the active
// view, the selected record id and a single transient feedback message
// with timeout-based auto-dismissal.
type Dashboard struct {
	mu         sync.Mutex
	view       View
	selectedID string
	feedback   *Feedback
	timer      *time.Timer
	ttl        time.Duration
}

// NewDashboard creates a dashboard opening on the worklist. ttl is how
// long a feedback message stays up before auto-dismissal.
func NewDashboard(ttl time.Duration) *Dashboard {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &Dashboard{view: ViewList, ttl: ttl}
}

// View returns the active view.
func (d *Dashboard) View() View {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.view
}

// SelectedID returns the id of the record under review, empty when
// none is selected.
func (d *Dashboard) SelectedID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selectedID
}

// SwitchTo activates a view. Switching views always clears any
// feedback message.
func (d *Dashboard) SwitchTo(v View) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.view = v
	if v != ViewDetail {
		d.selectedID = ""
	}
	d.clearFeedbackLocked()
}

// SelectRecord routes a worklist selection to the detail view.
func (d *Dashboard) SelectRecord(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selectedID = id
	d.view = ViewDetail
	d.clearFeedbackLocked()
}

// ShowFeedback replaces the transient message and arms its
// auto-dismiss timer.
func (d *Dashboard) ShowFeedback(text string, isError bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.feedback = &Feedback{Text: text, IsError: isError}
	d.timer = time.AfterFunc(d.ttl, d.DismissFeedback)
}

// DismissFeedback clears the message immediately.
func (d *Dashboard) DismissFeedback() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearFeedbackLocked()
}

// Feedback returns the current message, nil when none is shown.
func (d *Dashboard) Feedback() *Feedback {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.feedback
}

func (d *Dashboard) clearFeedbackLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.feedback = nil
}
