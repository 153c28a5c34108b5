// Copyright (c) 2026 Book Alchemy. All rights reserved.

/*
Package requestutil provides utilities for extracting data from HTTP requests.

Form values are parsed with explicit types and fail closed: a missing or
malformed field becomes a VALIDATION_ERROR instead of a silent zero value.
*/
package requestutil

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/validate"
	"github.com/nagrapoonam/Book-Alchemy/pkg/date"
)

// maxFormMemory bounds multipart form parsing.
const maxFormMemory = 1 << 20

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and parses it as an integer.
*/
func IntParam(request *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(request, name))
}

/*
Query returns the trimmed query parameter, or fallback when it is absent or blank.
*/
func Query(request *http.Request, name, fallback string) string {
	value := strings.TrimSpace(request.URL.Query().Get(name))
	if value == "" {
		return fallback
	}
	return value
}

// Form reads typed values from a submitted form, collecting every failure
// before reporting them together.
type Form struct {
	request   *http.Request
	validator *validate.Validator
}

/*
ParseForm parses an urlencoded or multipart body.

Returns:
  - *Form: reader over the parsed values
  - error: validate.ErrInvalidForm if the body cannot be parsed
*/
func ParseForm(request *http.Request) (*Form, error) {
	err := request.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, validate.ErrInvalidForm
	}
	return &Form{request: request, validator: &validate.Validator{}}, nil
}

// String returns the trimmed value of field. Absent fields yield "".
func (f *Form) String(field string) string {
	return strings.TrimSpace(f.request.PostFormValue(field))
}

// RequiredString returns the trimmed value and records a failure when it is blank.
func (f *Form) RequiredString(field string) string {
	value := f.String(field)
	f.validator.Required(field, value)
	return value
}

// RequiredInt parses field as a base-10 integer.
func (f *Form) RequiredInt(field string) int {
	raw := f.RequiredString(field)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	f.validator.Custom(field, err != nil, validate.MsgInteger)
	return n
}

// RequiredDate parses field as a YYYY-MM-DD date.
func (f *Form) RequiredDate(field string) date.Date {
	raw := f.RequiredString(field)
	if raw == "" {
		return date.Date{}
	}
	return f.parseDate(field, raw)
}

// OptionalDate parses field as a YYYY-MM-DD date. A blank field yields the zero date.
func (f *Form) OptionalDate(field string) date.Date {
	raw := f.String(field)
	if raw == "" {
		return date.Date{}
	}
	return f.parseDate(field, raw)
}

// Err returns the collected VALIDATION_ERROR, or nil.
func (f *Form) Err() error {
	return f.validator.Err()
}

func (f *Form) parseDate(field, raw string) date.Date {
	parsed, err := date.Parse(raw)
	f.validator.Custom(field, err != nil, validate.MsgDate)
	return parsed
}
