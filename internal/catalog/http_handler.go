package catalog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Register mounts the catalog routes on mux. Mutating routes are wrapped
// with admin.
func (h *HTTPHandler) Register(mux *http.ServeMux, admin func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /v1/categories", h.ListCategories)
	mux.HandleFunc("GET /v1/categories/{name}/books", h.BooksInCategory)
	mux.Handle("PATCH /v1/categories/{name}", admin(http.HandlerFunc(h.RenameCategory)))
	mux.HandleFunc("GET /v1/books", h.ListBooks)
	mux.HandleFunc("GET /v1/books/by-title", h.FindByTitle)
	mux.HandleFunc("GET /v1/books/search", h.SearchByAuthor)
	mux.Handle("DELETE /v1/books", admin(http.HandlerFunc(h.DeleteByAuthors)))
	mux.HandleFunc("GET /v1/authors/{author}/categories", h.CategoriesByAuthor)
	mux.HandleFunc("GET /v1/stats", h.Stats)
}

// ListCategories handles GET /v1/categories
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccessWithRequest(r, w, h.svc.Categories(r.Context()), nil)
}

// BooksInCategory handles GET /v1/categories/{name}/books
func (h *HTTPHandler) BooksInCategory(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccessWithRequest(r, w, h.svc.BooksInCategory(r.Context(), r.PathValue("name")), nil)
}

type renameCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100,csvsafe"`
}

// RenameCategory handles PATCH /v1/categories/{name}
func (h *HTTPHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	var req renameCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", details)
		return
	}

	oldName := r.PathValue("name")
	if err := h.svc.RenameCategory(r.Context(), oldName, req.Name); err != nil {
		switch {
		case errors.Is(err, ErrCategoryNotFound):
			httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Category not found", nil)
		case errors.Is(err, ErrDuplicateCategory):
			httpx.JSONErrorWithRequest(r, w, http.StatusConflict, "CONFLICT", "A category with that name already exists", nil)
		case errors.Is(err, ErrInvalidCategoryName):
			httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category name", nil)
		default:
			httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	slog.Info("category renamed", "from", oldName, "to", req.Name, "user_id", httpx.UserIDFrom(r))
	httpx.JSONSuccessWithRequest(r, w, map[string]string{"old_name": oldName, "name": req.Name}, nil)
}

// ListBooks handles GET /v1/books
func (h *HTTPHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	cur, err := DecodeCursor(query.Get("cursor"))
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid cursor", nil)
		return
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	books, total := h.svc.ListBooks(r.Context(), cur.Offset, pageSize)
	meta := map[string]any{
		"page_size": pageSize,
		"total":     total,
	}
	if next := cur.Offset + len(books); next < total {
		meta["next_cursor"] = EncodeCursor(Cursor{Offset: next})
	}
	httpx.JSONSuccessWithRequest(r, w, books, meta)
}

// FindByTitle handles GET /v1/books/by-title?title=
func (h *HTTPHandler) FindByTitle(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "title is required", nil)
		return
	}
	book, err := h.svc.FindBookByTitle(r.Context(), title)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, book, nil)
}

// SearchByAuthor handles GET /v1/books/search?author=
func (h *HTTPHandler) SearchByAuthor(w http.ResponseWriter, r *http.Request) {
	author := r.URL.Query().Get("author")
	if author == "" {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "author is required", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, h.svc.SearchByAuthor(r.Context(), author), nil)
}

// DeleteByAuthors handles DELETE /v1/books?authors=a,b
func (h *HTTPHandler) DeleteByAuthors(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.DeleteBooksByAuthors(r.Context(), r.URL.Query().Get("authors"))
	if err != nil {
		var mismatch *AuthorsNotFoundError
		switch {
		case errors.As(err, &mismatch):
			var details []httpx.ErrorDetail
			for _, name := range mismatch.Found {
				details = append(details, httpx.ErrorDetail{Field: "found", Message: name})
			}
			for _, name := range mismatch.NotFound {
				details = append(details, httpx.ErrorDetail{Field: "not_found", Message: name})
			}
			httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "AUTHORS_NOT_FOUND", "Some authors have no books; nothing was deleted", details)
		case errors.Is(err, ErrNoAuthors):
			httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "authors is required", nil)
		default:
			httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	slog.Info("books deleted", "count", n, "user_id", httpx.UserIDFrom(r))
	httpx.JSONSuccessWithRequest(r, w, map[string]int{"deleted": n}, nil)
}

// CategoriesByAuthor handles GET /v1/authors/{author}/categories
func (h *HTTPHandler) CategoriesByAuthor(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccessWithRequest(r, w, h.svc.CategoriesByAuthor(r.Context(), r.PathValue("author")), nil)
}

// Stats handles GET /v1/stats
func (h *HTTPHandler) Stats(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccessWithRequest(r, w, h.svc.Stats(r.Context()), nil)
}
