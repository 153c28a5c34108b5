/*
Package book serves the catalog: listing, searching and sorting books, and the
add-book and delete-book operations.

# Routing

  - GET  /                  catalog view (sort, search, action query parameters)
  - GET  /add_book          form descriptor with the current authors
  - POST /add_book          create a book, resolving its ISBN first
  - POST /book/{id}/delete  delete a book, then redirect to the catalog
*/
package book

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/nagrapoonam/Book-Alchemy/internal/core/author"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/apperr"
	requestutil "github.com/nagrapoonam/Book-Alchemy/internal/platform/request"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/respond"
)

// User-facing messages.
const (
	MsgNoResults = "No books match the search criteria."
	MsgCreated   = "Book added successfully!"
	MsgDeleted   = "Book deleted successfully!"
)

var formFields = []respond.FormField{
	{Name: FieldTitle, Type: respond.FieldTypeText, Required: true},
	{Name: FieldPublicationYear, Type: respond.FieldTypeNumber, Required: true},
	{Name: FieldAuthorID, Type: respond.FieldTypeSelect, Required: true},
}

// CatalogPayload is the GET / response body. Message carries either the
// no-results notice or a notice passed along by a redirect.
type CatalogPayload struct {
	Books   []Entry `json:"books"`
	Message string  `json:"message,omitempty"`
}

// FormPayload is the GET /add_book response body.
type FormPayload struct {
	Fields  []respond.FormField `json:"fields"`
	Authors []*author.Author    `json:"authors"`
}

// CreatedPayload is the POST /add_book response body.
type CreatedPayload struct {
	Message string           `json:"message"`
	Book    *Book            `json:"book"`
	Authors []*author.Author `json:"authors"`
}

// # Handler Implementation

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.catalog)
	router.Get("/add_book", handler.showForm)
	router.Post("/add_book", handler.createBook)
	router.Post("/book/{id}/delete", handler.deleteBook)
}

func (handler *Handler) catalog(writer http.ResponseWriter, request *http.Request) {
	query := Query{
		Sort:   ParseSortKey(requestutil.Query(request, ParamSort, string(SortTitle))),
		Search: requestutil.Query(request, ParamSearch, ""),
		Action: ParseAction(requestutil.Query(request, ParamAction, string(ActionSort))),
	}

	entries, err := handler.service.Catalog(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := CatalogPayload{Books: entries, Message: requestutil.Query(request, ParamMessage, "")}
	if len(entries) == 0 {
		payload.Message = MsgNoResults
	}
	respond.OK(writer, payload)
}

func (handler *Handler) showForm(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, FormPayload{Fields: formFields, Authors: authors})
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	form, err := requestutil.ParseForm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := NewBook{
		Title:           form.RequiredString(FieldTitle),
		PublicationYear: form.RequiredInt(FieldPublicationYear),
		AuthorID:        form.RequiredInt(FieldAuthorID),
	}
	if err := form.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.AddBook(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, CreatedPayload{Message: MsgCreated, Book: created, Authors: authors})
}

func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, apperr.NotFound("Book"))
		return
	}

	if err := handler.service.DeleteBook(request.Context(), bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.SeeOther(writer, request, "/?"+url.Values{ParamMessage: {MsgDeleted}}.Encode())
}
