package author

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/nagrapoonam/Book-Alchemy/internal/platform/request"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/respond"
)

// MsgCreated is returned after a successful POST /add_author.
const MsgCreated = "Author added successfully!"

// formFields describes the add-author form.
var formFields = []respond.FormField{
	{Name: FieldName, Type: respond.FieldTypeText, Required: true},
	{Name: FieldBirthDate, Type: respond.FieldTypeDate, Required: true},
	{Name: FieldDateOfDeath, Type: respond.FieldTypeDate},
}

// FormPayload is the GET /add_author response body.
type FormPayload struct {
	Fields []respond.FormField `json:"fields"`
}

// CreatedPayload is the POST /add_author response body.
type CreatedPayload struct {
	Message string  `json:"message"`
	Author  *Author `json:"author"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/add_author", handler.showForm)
	router.Post("/add_author", handler.createAuthor)
}

func (handler *Handler) showForm(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, FormPayload{Fields: formFields})
}

func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	form, err := requestutil.ParseForm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := &Author{
		Name:        form.RequiredString(FieldName),
		BirthDate:   form.RequiredDate(FieldBirthDate),
		DateOfDeath: form.OptionalDate(FieldDateOfDeath),
	}
	if err := form.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateAuthor(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, CreatedPayload{Message: MsgCreated, Author: input})
}
