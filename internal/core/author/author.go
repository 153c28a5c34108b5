package author

import "github.com/nagrapoonam/Book-Alchemy/pkg/date"

// Author represents the writer who owns zero or more books.
type Author struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	BirthDate   date.Date `json:"birth_date"`
	DateOfDeath date.Date `json:"date_of_death"`
}

// Form field names, shared by validation errors and the add-author form.
const (
	FieldName        = "name"
	FieldBirthDate   = "birthdate"
	FieldDateOfDeath = "date_of_death"
)

// MaxNameLen matches the author.name column width.
const MaxNameLen = 100
