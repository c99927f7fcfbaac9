package lending

import (
	"context"
	"errors"
	"strings"

	"libraryapi/internal/catalog"
)

// ErrInvalidSearchField is returned for any search field outside
// {title, author, isbn}.
var ErrInvalidSearchField = errors.New("invalid search field")

// Search fields.
const (
	SearchByTitle  = "title"
	SearchByAuthor = "author"
	SearchByISBN   = "isbn"
)

// SearchBooks matches catalog books against the query. Title and author
// are case-insensitive substring matches; ISBN is an exact lookup. An
// empty query returns no results rather than the whole catalog.
func (s *Service) SearchBooks(ctx context.Context, query, field string) ([]catalog.Book, error) {
	switch field {
	case SearchByTitle, SearchByAuthor, SearchByISBN:
	default:
		return nil, ErrInvalidSearchField
	}

	if query == "" {
		return []catalog.Book{}, nil
	}

	if field == SearchByISBN {
		book, err := s.store.GetBookByISBN(ctx, query)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return []catalog.Book{}, nil
			}
			return nil, err
		}
		return []catalog.Book{book}, nil
	}

	books, err := s.store.GetAllBooks(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := []catalog.Book{}
	for _, b := range books {
		var haystack string
		if field == SearchByTitle {
			haystack = b.Title
		} else {
			haystack = b.Author
		}
		if strings.Contains(strings.ToLower(haystack), needle) {
			matches = append(matches, b)
		}
	}
	return matches, nil
}
