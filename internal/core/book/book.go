package book

import "github.com/nagrapoonam/Book-Alchemy/internal/core/author"

// Book is a catalog entry owned by exactly one author. ISBN is empty when the
// lookup found nothing.
type Book struct {
	ID              int    `json:"id"`
	ISBN            string `json:"isbn"`
	Title           string `json:"title"`
	PublicationYear *int   `json:"publication_year"`
	AuthorID        int    `json:"author_id"`
}

// Listing pairs a book with its owning author.
type Listing struct {
	Book   Book
	Author author.Author
}

// Entry is one row of the catalog view.
type Entry struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	CoverURL string `json:"cover_url"`
}

// NewBook is the validated input of the add-book operation.
type NewBook struct {
	Title           string
	PublicationYear int
	AuthorID        int
}

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortTitle  SortKey = "title"
	SortAuthor SortKey = "author"
)

// ParseSortKey falls back to [SortTitle] for anything unknown.
func ParseSortKey(s string) SortKey {
	if SortKey(s) == SortAuthor {
		return SortAuthor
	}
	return SortTitle
}

// Action tells the catalog view whether the search text applies.
type Action string

const (
	ActionSort   Action = "sort"
	ActionSearch Action = "search"
)

// ParseAction falls back to [ActionSort] for anything unknown.
func ParseAction(s string) Action {
	if Action(s) == ActionSearch {
		return ActionSearch
	}
	return ActionSort
}

// Query holds the catalog view parameters.
type Query struct {
	Sort   SortKey
	Search string
	Action Action
}

// Form field and query parameter names.
const (
	FieldTitle           = "title"
	FieldPublicationYear = "publication_year"
	FieldAuthorID        = "author_id"

	ParamSort    = "sort"
	ParamSearch  = "search"
	ParamAction  = "action"
	ParamMessage = "message"
)

// MaxTitleLen matches the book.title column width.
const MaxTitleLen = 255
