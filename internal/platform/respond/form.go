// Copyright (c) 2026 Book Alchemy. All rights reserved.

package respond

// Input types understood by form-rendering clients.
const (
	FieldTypeText   = "text"
	FieldTypeDate   = "date"
	FieldTypeNumber = "number"
	FieldTypeSelect = "select"
)

// FormField describes one input of a form returned by a GET form endpoint.
type FormField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}
