package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagrapoonam/Book-Alchemy/internal/api"
	"github.com/nagrapoonam/Book-Alchemy/internal/core/author"
	"github.com/nagrapoonam/Book-Alchemy/internal/core/book"
	"github.com/nagrapoonam/Book-Alchemy/internal/lookup"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/config"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/constants"
	"github.com/nagrapoonam/Book-Alchemy/internal/testutil"
)

// newTestServer wires the full stack against an in-memory database and a
// stub Open Library that knows a single title.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	openLibrary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("q") == "The Hobbit" {
			fmt.Fprint(w, `{"docs":[{"isbn":["9780261102217","0261102214"]}]}`)
			return
		}
		fmt.Fprint(w, `{"docs":[]}`)
	}))
	t.Cleanup(openLibrary.Close)

	cfg := &config.Config{
		ServerPort:       "0",
		Environment:      "test",
		CoverURLTemplate: "https://covers.openlibrary.org/b/isbn/%s-L.jpg",
		RateLimitRPS:     1000,
		RateLimitBurst:   1000,
	}

	db := testutil.NewDB(t)
	logger := testutil.Logger()

	authorService := author.NewService(author.NewSQLiteRepository(db), logger)
	fetcher := lookup.NewClient(openLibrary.URL, "book-alchemy-test", 5*time.Second, 0)
	bookService := book.NewService(book.NewSQLiteRepository(db), authorService, fetcher, cfg.CoverURLTemplate, logger)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error { return db.PingContext(context.Background()) },
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := api.NewServer(ctx, cfg, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Author:    author.NewHandler(authorService),
		Book:      book.NewHandler(bookService),
	})
	return server.Handler()
}

func do(handler http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	var request *http.Request
	if form != nil {
		request = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		request = httptest.NewRequest(method, path, nil)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestServer_CatalogFlow adds an author and two books, searches, deletes one
and follows the redirect.
*/
func TestServer_CatalogFlow(t *testing.T) {
	handler := newTestServer(t)

	recorder := do(handler, http.MethodPost, "/add_author", url.Values{
		"name":      {"J.R.R. Tolkien"},
		"birthdate": {"1892-01-03"},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXRequestID))

	for _, title := range []string{"The Hobbit", "Unfinished Tales"} {
		recorder = do(handler, http.MethodPost, "/add_book", url.Values{
			"title":            {title},
			"publication_year": {"1937"},
			"author_id":        {"1"},
		})
		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	}

	recorder = do(handler, http.MethodGet, "/?search=TOLKIEN&action=search", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var catalog struct {
		Data book.CatalogPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &catalog))
	require.Len(t, catalog.Data.Books, 2)
	assert.Equal(t, "The Hobbit", catalog.Data.Books[0].Title)
	assert.Equal(t, "https://covers.openlibrary.org/b/isbn/9780261102217-L.jpg", catalog.Data.Books[0].CoverURL)
	assert.Equal(t, "https://covers.openlibrary.org/b/isbn/-L.jpg", catalog.Data.Books[1].CoverURL)

	recorder = do(handler, http.MethodPost, fmt.Sprintf("/book/%d/delete", catalog.Data.Books[0].ID), url.Values{})
	require.Equal(t, http.StatusSeeOther, recorder.Code)

	recorder = do(handler, http.MethodGet, recorder.Header().Get("Location"), nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &catalog))
	require.Len(t, catalog.Data.Books, 1)
	assert.Equal(t, book.MsgDeleted, catalog.Data.Message)
}

func TestServer_HealthProbes(t *testing.T) {
	handler := newTestServer(t)

	assert.Equal(t, http.StatusOK, do(handler, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, do(handler, http.MethodGet, "/ready", nil).Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	handler := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, do(handler, http.MethodGet, "/books/1", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(handler, http.MethodDelete, "/add_book", nil).Code)
}
