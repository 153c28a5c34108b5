package schema

// BookTable represents the 'book' table
type BookTable struct {
	Table           string
	ID              string
	ISBN            string
	Title           string
	PublicationYear string
	AuthorID        string
}

// Book is the schema definition for book
var Book = BookTable{
	Table:           "book",
	ID:              "id",
	ISBN:            "isbn",
	Title:           "title",
	PublicationYear: "publication_year",
	AuthorID:        "author_id",
}

func (t BookTable) Columns() []string {
	return []string{t.ID, t.ISBN, t.Title, t.PublicationYear, t.AuthorID}
}

// Col qualifies column with the table name, for joins.
func (t BookTable) Col(column string) string {
	return t.Table + "." + column
}
