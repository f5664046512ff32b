package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nosdarm/rpg-sub000/internal/models"
)

var allStatuses = []models.GenerationStatus{
	models.StatusPendingModeration,
	models.StatusValidationFailed,
	models.StatusEditedPendingApproval,
	models.StatusApproved,
	models.StatusSaved,
	models.StatusErrorOnSave,
	models.StatusRejected,
}

func statusPtr(s models.GenerationStatus) *models.GenerationStatus { return &s }

func TestDecide_RejectionAlwaysWins(t *testing.T) {
	for _, cur := range allStatuses {
		for _, edited := range []bool{false, true} {
			got := Decide(cur, edited, statusPtr(models.StatusRejected))
			assert.Equal(t, models.StatusRejected, got,
				"current=%s edited=%v", cur, edited)
		}
	}
}

func TestDecide_EditForcesEditedPendingApproval(t *testing.T) {
	for _, cur := range allStatuses {
		got := Decide(cur, true, nil)
		assert.Equal(t, models.StatusEditedPendingApproval, got, "current=%s", cur)
	}
}

func TestDecide_EditOverridesNonRejectExplicit(t *testing.T) {
	got := Decide(models.StatusPendingModeration, true, statusPtr(models.StatusValidationFailed))
	assert.Equal(t, models.StatusEditedPendingApproval, got)
}

func TestDecide_ExplicitUsedVerbatimWithoutEdit(t *testing.T) {
	for _, want := range allStatuses {
		if want == models.StatusRejected {
			continue // covered by the rejection rule
		}
		got := Decide(models.StatusPendingModeration, false, statusPtr(want))
		assert.Equal(t, want, got)
	}
}

func TestDecide_NotesOnlySaveKeepsStatus(t *testing.T) {
	for _, cur := range allStatuses {
		got := Decide(cur, false, nil)
		assert.Equal(t, cur, got, "current=%s", cur)
	}
}

func TestApprovable(t *testing.T) {
	tests := []struct {
		status models.GenerationStatus
		want   bool
	}{
		{models.StatusPendingModeration, true},
		{models.StatusValidationFailed, true},
		{models.StatusEditedPendingApproval, true},
		{models.StatusApproved, false},
		{models.StatusSaved, false},
		{models.StatusErrorOnSave, false},
		{models.StatusRejected, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Approvable(tt.status), "status=%s", tt.status)
	}
}

func TestRejectable(t *testing.T) {
	for _, s := range allStatuses {
		assert.Equal(t, s != models.StatusRejected, Rejectable(s), "status=%s", s)
	}
}
