package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// GenerationStatus is the moderation lifecycle state of a pending generation.
type GenerationStatus string

const (
	StatusPendingModeration     GenerationStatus = "PENDING_MODERATION"
	StatusValidationFailed      GenerationStatus = "VALIDATION_FAILED"
	StatusEditedPendingApproval GenerationStatus = "EDITED_PENDING_APPROVAL"
	StatusApproved              GenerationStatus = "APPROVED"
	StatusSaved                 GenerationStatus = "SAVED"
	StatusErrorOnSave           GenerationStatus = "ERROR_ON_SAVE"
	StatusRejected              GenerationStatus = "REJECTED"
)

// Valid reports whether s is one of the known moderation states.
func (s GenerationStatus) Valid() bool {
	switch s {
	case StatusPendingModeration, StatusValidationFailed, StatusEditedPendingApproval,
		StatusApproved, StatusSaved, StatusErrorOnSave, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether a record in this state is read-only history.
func (s GenerationStatus) Terminal() bool {
	return s == StatusSaved || s == StatusErrorOnSave || s == StatusRejected
}

// Entity types the generator can be asked to produce.
const (
	EntityLocation   = "location"
	EntityNPC        = "npc"
	EntityItem       = "item"
	EntityQuest      = "quest"
	EntityFaction    = "faction"
	EntityWorldEvent = "world_event"
	EntityLoreEntry  = "lore_entry"
)

var generatableEntityTypes = map[string]bool{
	EntityLocation:   true,
	EntityNPC:        true,
	EntityItem:       true,
	EntityQuest:      true,
	EntityFaction:    true,
	EntityWorldEvent: true,
	EntityLoreEntry:  true,
}

// ValidEntityType reports whether t belongs to the closed set of
// generatable entity types.
func ValidEntityType(t string) bool {
	return generatableEntityTypes[t]
}

// PendingGeneration is one unit of AI-produced candidate game content
// moving through the moderation pipeline. Prompt, raw response and
// trigger context are immutable provenance; parsed data is the only
// content field a reviewer may edit.
type PendingGeneration struct {
	ID                string  `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	GuildID           string  `json:"guild_id" gorm:"column:guild_id;type:varchar(255);not null;index"`
	TriggeredByUserID *string `json:"triggered_by_user_id" gorm:"column:triggered_by_user_id;type:varchar(255)"`

	EntityType        string `json:"entity_type" gorm:"column:entity_type;type:varchar(50);not null"`
	TriggerContext    []byte `json:"generation_context_json" gorm:"column:generation_context_json;type:jsonb"`
	LocationIDContext *int64 `json:"location_id_context" gorm:"column:location_id_context;type:bigint"`
	PlayerIDContext   *int64 `json:"player_id_context" gorm:"column:player_id_context;type:bigint"`

	AIPromptText     string           `json:"ai_prompt_text" gorm:"column:ai_prompt_text;type:text"`
	RawResponseText  string           `json:"raw_response_text" gorm:"column:raw_response_text;type:text"`
	ParsedData       []byte           `json:"parsed_data_json" gorm:"column:parsed_data_json;type:jsonb"`
	ValidationIssues []byte           `json:"validation_issues_json" gorm:"column:validation_issues_json;type:jsonb"`
	Confidence       *decimal.Decimal `json:"confidence" gorm:"column:confidence;type:decimal(10,5)"`

	Status      GenerationStatus `json:"status" gorm:"column:status;type:varchar(30);not null;index"`
	MasterID    *string          `json:"master_id" gorm:"column:master_id;type:varchar(255)"`
	MasterNotes *string          `json:"master_notes" gorm:"column:master_notes;type:text"`

	// Outcome of the terminal save attempt.
	SaveError        *string        `json:"save_error" gorm:"column:save_error;type:text"`
	CreatedEntityIDs pq.StringArray `json:"created_entity_ids" gorm:"column:created_entity_ids;type:text[]"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;type:timestamptz;autoUpdateTime"`
}

func (PendingGeneration) TableName() string { return "pending_generations" }

// TriggerRequest is the payload of the gateway trigger operation.
type TriggerRequest struct {
	EntityType        string          `json:"entity_type"`
	Context           json.RawMessage `json:"generation_context_json,omitempty"`
	LocationID        *int64          `json:"location_id_context,omitempty"`
	PlayerID          *int64          `json:"player_id_context,omitempty"`
	TriggeredByUserID *string         `json:"triggered_by_user_id,omitempty"`
}

// UpdateRequest is the payload of the generic gateway update operation.
// Absent fields leave the record untouched; the final status is derived
// server-side from the current status, the presence of NewParsedData
// and the explicitly requested NewStatus.
type UpdateRequest struct {
	MasterNotes   *string           `json:"master_notes,omitempty"`
	NewParsedData json.RawMessage   `json:"new_parsed_data_json,omitempty"`
	NewStatus     *GenerationStatus `json:"new_status,omitempty"`
	MasterID      *string           `json:"master_id,omitempty"`
}

// ApproveRequest identifies the reviewer issuing an approval.
type ApproveRequest struct {
	MasterID string `json:"master_id"`
}

// PendingGenerationPage is one page of a filtered listing.
type PendingGenerationPage struct {
	Items       []*PendingGeneration `json:"items"`
	CurrentPage int                  `json:"current_page"`
	TotalPages  int                  `json:"total_pages"`
	TotalItems  int64                `json:"total_items"`
	PageSize    int                  `json:"page_size"`
}
