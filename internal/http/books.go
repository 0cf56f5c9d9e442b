package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookcatalog/internal/database/books"
	"bookcatalog/internal/entities"
	"bookcatalog/internal/validation"
)

// BookStore is the persistence interface the controllers need. It is
// implemented by books.Repository.
type BookStore interface {
	Create(book entities.Book) (*entities.Book, error)
	GetByID(id uint) (*entities.Book, error)
	List(f books.Filter) ([]entities.Book, error)
	Replace(id uint, input entities.BookInput) (*entities.Book, error)
	PartialUpdate(id uint, changes map[string]any) (*entities.Book, error)
	Delete(id uint) error
	Stats() (*entities.BookStats, error)
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// ListBooks handles GET /api/books with optional author substring,
// year_from/year_to bounds and skip/limit pagination. An inverted year
// range is not an error; it just matches nothing.
func (controller *BooksController) ListBooks(c *gin.Context) {
	yearFrom, ok := parseOptionalIntQuery(c, "year_from")
	if !ok {
		return
	}
	yearTo, ok := parseOptionalIntQuery(c, "year_to")
	if !ok {
		return
	}
	skip, ok := parseIntQueryDefault(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := parseIntQueryDefault(c, "limit", books.DefaultLimit)
	if !ok {
		return
	}
	if skip < 0 {
		respondBadRequest(c, "skip must not be negative")
		return
	}
	if limit <= 0 {
		respondBadRequest(c, "limit must be positive")
		return
	}

	filter := books.Filter{
		Author:   c.Query("author"),
		YearFrom: yearFrom,
		YearTo:   yearTo,
		Skip:     skip,
		Limit:    limit,
	}

	found, err := controller.store.List(filter)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetBook handles GET /api/books/:id.
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// CreateBook handles POST /api/books. The store assigns the ID; the
// response body is the stored record including it.
func (controller *BooksController) CreateBook(c *gin.Context) {
	var input entities.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid JSON body")
		return
	}

	if v := validation.ValidateInput(input); !v.Valid() {
		respondValidationError(c, v.Errors)
		return
	}

	book, err := controller.store.Create(input.Book())
	if err != nil {
		respondInternalError(c, err, "create book")
		return
	}
	c.JSON(http.StatusCreated, book)
}

// ReplaceBook handles PUT /api/books/:id. All four fields are re-validated
// and overwritten; the ID never changes.
func (controller *BooksController) ReplaceBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input entities.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid JSON body")
		return
	}

	if v := validation.ValidateInput(input); !v.Valid() {
		respondValidationError(c, v.Errors)
		return
	}

	book, err := controller.store.Replace(id, input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "replace book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// PatchBook handles PATCH /api/books/:id. Only fields present in the
// payload are validated and applied; omitted fields keep their stored
// values.
func (controller *BooksController) PatchBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var patch entities.BookPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "invalid JSON body")
		return
	}

	if v := validation.ValidatePatch(patch); !v.Valid() {
		respondValidationError(c, v.Errors)
		return
	}

	book, err := controller.store.PartialUpdate(id, patch.Changes())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "patch book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook handles DELETE /api/books/:id. Deleting an absent book
// returns 404, so a repeated delete is visible to the caller rather than
// silently succeeding.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := controller.store.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBookStats handles GET /api/books/stats.
func (controller *BooksController) GetBookStats(c *gin.Context) {
	stats, err := controller.store.Stats()
	if err != nil {
		respondInternalError(c, err, "book stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
