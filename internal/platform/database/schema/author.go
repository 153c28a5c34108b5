package schema

// AuthorTable represents the 'author' table
type AuthorTable struct {
	Table       string
	ID          string
	Name        string
	BirthDate   string
	DateOfDeath string
}

// Author is the schema definition for author
var Author = AuthorTable{
	Table:       "author",
	ID:          "id",
	Name:        "name",
	BirthDate:   "birth_date",
	DateOfDeath: "date_of_death",
}

func (t AuthorTable) Columns() []string {
	return []string{t.ID, t.Name, t.BirthDate, t.DateOfDeath}
}

// Col qualifies column with the table name, for joins.
func (t AuthorTable) Col(column string) string {
	return t.Table + "." + column
}
