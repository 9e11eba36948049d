package dto

import "github.com/google/uuid"

// WasteEntryRecordedMessage is the in-process pipeline payload emitted after
// an entry create or recycled toggle.
type WasteEntryRecordedMessage struct {
	UserId  uuid.UUID `json:"user_id"`
	EntryId uuid.UUID `json:"entry_id"`
}
