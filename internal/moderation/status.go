// Package moderation holds the pure status-derivation rules of the
// review workflow. Every status mutation, client or server side, goes
// through Decide so the transition rules live in exactly one place.
package moderation

import "github.com/Nosdarm/rpg-sub000/internal/models"

// Decide maps the current status, whether the reviewer edited the
// parsed data since load, and an optional explicitly requested status
// to the status the write must carry. Priority order:
//
//  1. an explicit rejection always wins, even over a concurrent edit;
//  2. an edit forces EDITED_PENDING_APPROVAL;
//  3. any other explicit request is used verbatim;
//  4. otherwise the write is notes-only and the status is unchanged.
func Decide(current models.GenerationStatus, edited bool, explicit *models.GenerationStatus) models.GenerationStatus {
	if explicit != nil && *explicit == models.StatusRejected {
		return models.StatusRejected
	}
	if edited {
		return models.StatusEditedPendingApproval
	}
	if explicit != nil {
		return *explicit
	}
	return current
}

// Approvable reports whether a record in status s may be approved.
// Approval is only offered while the record is still open for review.
func Approvable(s models.GenerationStatus) bool {
	switch s {
	case models.StatusPendingModeration, models.StatusValidationFailed, models.StatusEditedPendingApproval:
		return true
	}
	return false
}

// Rejectable reports whether a record in status s may be rejected.
// The only guard is idempotence: an already rejected record cannot be
// re-rejected.
func Rejectable(s models.GenerationStatus) bool {
	return s != models.StatusRejected
}
