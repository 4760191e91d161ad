package models

import "encoding/json"

// Default field values applied when a publish request omits a key
const (
	DefaultName        = "Untitled"
	DefaultComposer    = "Anonymous"
	DefaultDescription = "Nothing of note."
	DefaultHex         = "#8daabf"
)

// System - одна опубликованная система (запись с кодом и счётчиком кликов)
type System struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Composer    string          `json:"composer"`
	Description string          `json:"description"`
	Code        json.RawMessage `json:"code"`
	Hex         string          `json:"hex"`
	Clicks      int             `json:"clicks"`
	Date        string          `json:"date"`
}

// PublishInput is the /api/publish request body. Pointer fields so an
// absent key can be told apart from an empty string: defaults apply only
// when the key is absent.
type PublishInput struct {
	Name     *string         `json:"name"`
	Composer *string         `json:"composer"`
	Desc     *string         `json:"desc"`
	Code     json.RawMessage `json:"code"`
	Hex      *string         `json:"hex"`
}
