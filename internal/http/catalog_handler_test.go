package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/catalog"
	"libraryapi/internal/catalog/mocks"
	"libraryapi/internal/lending"
	"libraryapi/internal/testutil"
)

func newCatalogFixture(t *testing.T) (*mocks.MockStore, *CatalogHandler) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockStore := mocks.NewMockStore(ctrl)
	svc := lending.NewService(mockStore, nil)
	return mockStore, NewCatalogHandler(svc)
}

func TestCatalogHandler_AddBook(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		mockStore, handler := newCatalogFixture(t)
		mockStore.EXPECT().
			GetBookByISBN(gomock.Any(), "1234567890123").
			Return(catalog.Book{}, catalog.ErrNotFound)
		mockStore.EXPECT().InsertBook(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		handler.AddBook(w, testutil.NewRequest(http.MethodPost, "/books", AddBookRequest{
			Title:       "Test Book",
			Author:      "Test Author",
			ISBN:        "1234567890123",
			TotalCopies: 5,
		}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusCreated, resp.Code)
		assert.Equal(t, true, resp.Body["success"])
		assert.Contains(t, resp.Body["message"], "successfully added")
	})

	t.Run("duplicate isbn conflict", func(t *testing.T) {
		mockStore, handler := newCatalogFixture(t)
		mockStore.EXPECT().
			GetBookByISBN(gomock.Any(), "1234567890123").
			Return(testutil.TestBook, nil)

		w := httptest.NewRecorder()
		handler.AddBook(w, testutil.NewRequest(http.MethodPost, "/books", AddBookRequest{
			Title:       "Test Book",
			Author:      "Test Author",
			ISBN:        "1234567890123",
			TotalCopies: 5,
		}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusConflict, resp.Code)
		errBody := resp.Body["error"].(map[string]interface{})
		assert.Contains(t, errBody["message"], "already exists")
	})

	t.Run("validation rejects a 12-digit isbn before the engine", func(t *testing.T) {
		_, handler := newCatalogFixture(t)

		w := httptest.NewRecorder()
		handler.AddBook(w, testutil.NewRequest(http.MethodPost, "/books", AddBookRequest{
			Title:       "Test Book",
			Author:      "Test Author",
			ISBN:        "123456789012",
			TotalCopies: 5,
		}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, handler := newCatalogFixture(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", nil)
		handler.AddBook(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestCatalogHandler_List(t *testing.T) {
	mockStore, handler := newCatalogFixture(t)
	mockStore.EXPECT().
		GetAllBooks(gomock.Any()).
		Return([]catalog.Book{testutil.TestBook}, nil)

	w := httptest.NewRecorder()
	handler.List(w, testutil.NewRequest(http.MethodGet, "/books", nil))

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	data := resp.Body["data"].([]interface{})
	require.Len(t, data, 1)
	entry := data[0].(map[string]interface{})
	assert.Equal(t, "Test Book Title", entry["title"])
	assert.Equal(t, "3/5 Available", entry["availability"])
}

func TestCatalogHandler_Search(t *testing.T) {
	t.Run("title match via router", func(t *testing.T) {
		mockStore, handler := newCatalogFixture(t)
		mockStore.EXPECT().
			GetAllBooks(gomock.Any()).
			Return([]catalog.Book{testutil.TestBook}, nil)

		w := httptest.NewRecorder()
		handler.Search(w, testutil.NewRequest(http.MethodGet, "/search?q=test&field=title", nil))

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)
		data := resp.Body["data"].([]interface{})
		assert.Len(t, data, 1)
	})

	t.Run("invalid field", func(t *testing.T) {
		_, handler := newCatalogFixture(t)

		w := httptest.NewRecorder()
		handler.Search(w, testutil.NewRequest(http.MethodGet, "/search?q=x&field=publisher", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("empty query returns empty data", func(t *testing.T) {
		_, handler := newCatalogFixture(t)

		w := httptest.NewRecorder()
		handler.Search(w, testutil.NewRequest(http.MethodGet, "/search?q=&field=title", nil))

		resp := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)
		data := resp.Body["data"].([]interface{})
		assert.Empty(t, data)
	})
}
