package console

import (
	"context"
	"encoding/json"

	apperrors "github.com/Nosdarm/rpg-sub000/internal/errors"
	"github.com/Nosdarm/rpg-sub000/internal/gateway"
	"github.com/Nosdarm/rpg-sub000/internal/moderation"
	"github.com/Nosdarm/rpg-sub000/internal/models"
)

// Editor drives the review of one pending generation: it seeds a local
// copy of the parsed data on load, tracks the reviewer's draft, and
// derives the status every write must carry. "Edited" is decided
// against the serialized seed taken at load time, so a formatting-only
// change still counts as an edit.
type Editor struct {
	gw       gateway.Gateway
	guildID  string
	masterID string

	record     *models.PendingGeneration
	seedParsed string
	notes      string
	draft      string
	editMode   bool
	busy       bool
}

func NewEditor(gw gateway.Gateway, guildID, masterID string) *Editor {
	return &Editor{gw: gw, guildID: guildID, masterID: masterID}
}

// Load fetches the record and seeds the local state all later edit
// comparisons run against.
func (e *Editor) Load(ctx context.Context, id string) error {
	g, err := e.gw.GetByID(ctx, e.guildID, id)
	if err != nil {
		return err
	}
	e.seed(g)
	return nil
}

func (e *Editor) seed(g *models.PendingGeneration) {
	e.record = g
	e.seedParsed = serializeParsed(g.ParsedData)
	e.draft = e.seedParsed
	e.editMode = false
	if g.MasterNotes != nil {
		e.notes = *g.MasterNotes
	} else {
		e.notes = ""
	}
}

// serializeParsed renders stored parsed data the way the edit buffer
// shows it. Comparisons run over this serialized form.
func serializeParsed(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return string(data)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(data)
	}
	return string(out)
}

// Record returns the loaded record, nil before the first Load.
func (e *Editor) Record() *models.PendingGeneration { return e.record }

// Busy reports whether a mutation is in flight; all action buttons are
// disabled while it is.
func (e *Editor) Busy() bool { return e.busy }

// EditMode reports whether the parsed-data buffer is open for editing.
func (e *Editor) EditMode() bool { return e.editMode }

// Draft returns the current parsed-data text buffer.
func (e *Editor) Draft() string { return e.draft }

// Notes returns the current master-notes buffer.
func (e *Editor) Notes() string { return e.notes }

// EnterEditMode opens the parsed-data buffer. Entering edit mode does
// not by itself count as an edit.
func (e *Editor) EnterEditMode() { e.editMode = true }

// CancelEdit discards the draft and closes the buffer.
func (e *Editor) CancelEdit() {
	e.draft = e.seedParsed
	e.editMode = false
}

// SetDraft replaces the parsed-data text buffer.
func (e *Editor) SetDraft(text string) { e.draft = text }

// SetNotes replaces the master-notes buffer.
func (e *Editor) SetNotes(text string) { e.notes = text }

// Edited reports whether the draft differs from the seed taken at
// load. Only content changes made inside edit mode count.
func (e *Editor) Edited() bool {
	return e.editMode && e.draft != e.seedParsed
}

// CanApprove reports whether the loaded record may be approved.
func (e *Editor) CanApprove() bool {
	return e.record != nil && moderation.Approvable(e.record.Status) && !e.busy
}

// CanReject reports whether the loaded record may be rejected.
func (e *Editor) CanReject() bool {
	return e.record != nil && moderation.Rejectable(e.record.Status) && !e.busy
}

// Save issues the generic update call. The carried status is derived
// from the edit state and the optional explicitly requested status; a
// notes-only save leaves the status untouched. An unparsable draft
// aborts locally before any gateway call.
func (e *Editor) Save(ctx context.Context, explicit *models.GenerationStatus) (*models.PendingGeneration, error) {
	if e.record == nil {
		return nil, apperrors.ErrNotFound
	}
	if e.busy {
		return nil, apperrors.ErrBusy
	}
	if e.editMode && !json.Valid([]byte(e.draft)) {
		return nil, apperrors.Validation("parsed_data", "invalid format")
	}

	edited := e.Edited()
	decided := moderation.Decide(e.record.Status, edited, explicit)

	notes := e.notes
	req := &models.UpdateRequest{MasterNotes: &notes}
	if e.masterID != "" {
		master := e.masterID
		req.MasterID = &master
	}
	if edited {
		req.NewParsedData = json.RawMessage(e.draft)
	}
	if decided != e.record.Status || explicit != nil {
		status := decided
		req.NewStatus = &status
	}

	e.busy = true
	defer func() { e.busy = false }()

	g, err := e.gw.Update(ctx, e.guildID, e.record.ID, req)
	if err != nil {
		return nil, err
	}
	// Reseed against the server's value so a stale diff cannot
	// re-trigger an edit on the next unrelated save.
	e.seed(g)
	return g, nil
}

// Reject is a Save carrying an explicit rejection, which wins over any
// concurrent edit. A record that is already rejected cannot be
// re-rejected.
func (e *Editor) Reject(ctx context.Context) (*models.PendingGeneration, error) {
	if e.record == nil {
		return nil, apperrors.ErrNotFound
	}
	if !moderation.Rejectable(e.record.Status) {
		return nil, apperrors.Validation("status", "record is already rejected")
	}
	rejected := models.StatusRejected
	return e.Save(ctx, &rejected)
}

// Approve issues the dedicated approve call. Refused locally unless
// the record is in an approvable status; on success the record leaves
// the open worklist.
func (e *Editor) Approve(ctx context.Context) (*models.PendingGeneration, error) {
	if e.record == nil {
		return nil, apperrors.ErrNotFound
	}
	if e.busy {
		return nil, apperrors.ErrBusy
	}
	if !moderation.Approvable(e.record.Status) {
		return nil, apperrors.ErrNotApprovable
	}

	e.busy = true
	defer func() { e.busy = false }()

	g, err := e.gw.Approve(ctx, e.guildID, e.record.ID, e.masterID)
	if err != nil {
		return nil, err
	}
	e.seed(g)
	return g, nil
}
