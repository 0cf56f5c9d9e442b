// Package books provides database operations for the book catalog.
//
// This package implements the BookStore interface defined in
// internal/http/books.go.
//
// # Interface Implementation
//
//	var _ http.BookStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetByID(1)
package books

import (
	"strconv"

	"gorm.io/gorm"

	"bookcatalog/internal/entities"
)

// DefaultLimit is the page size used when a list request does not supply one.
const DefaultLimit = 10

// Filter describes an optional predicate set plus pagination for List.
// Zero-value fields are "not supplied": an empty Author skips the substring
// match and nil year bounds skip the range checks. An inverted range
// (YearFrom > YearTo) is legal and simply matches nothing.
type Filter struct {
	Author   string
	YearFrom *int
	YearTo   *int
	Skip     int
	Limit    int
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book. The database assigns the ID; the stored
// record is returned with it filled in.
func (r *Repository) Create(book entities.Book) (*entities.Book, error) {
	book.ID = 0
	if err := r.db.Create(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// GetByID retrieves a book by ID. Returns gorm.ErrRecordNotFound when no
// such book exists.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// List returns the books matching the filter, ordered by ID ascending so
// that pagination is deterministic. A filter that matches nothing yields
// an empty slice, never an error.
func (r *Repository) List(f Filter) ([]entities.Book, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}

	query := r.db.Model(&entities.Book{})
	if f.Author != "" {
		pattern := "%" + f.Author + "%"
		query = query.Where("LOWER(author) LIKE LOWER(?)", pattern)
	}
	if f.YearFrom != nil {
		query = query.Where("year >= ?", *f.YearFrom)
	}
	if f.YearTo != nil {
		query = query.Where("year <= ?", *f.YearTo)
	}

	books := []entities.Book{}
	err := query.Order("id ASC").Offset(f.Skip).Limit(f.Limit).Find(&books).Error
	return books, err
}

// Replace overwrites every field of an existing book, keeping its ID.
// Returns gorm.ErrRecordNotFound when the book does not exist.
func (r *Repository) Replace(id uint, input entities.BookInput) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}

	replacement := input.Book()
	replacement.ID = book.ID
	if err := r.db.Save(&replacement).Error; err != nil {
		return nil, err
	}
	return &replacement, nil
}

// PartialUpdate applies the supplied column values to an existing book and
// returns the updated record. The map form is used so that explicit zero
// values (such as clearing the ISBN) are written, unlike struct updates.
// Returns gorm.ErrRecordNotFound when the book does not exist.
func (r *Repository) PartialUpdate(id uint, changes map[string]any) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		if err := r.db.Model(&book).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	var updated entities.Book
	if err := r.db.First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a book permanently. A second delete of the same ID
// returns gorm.ErrRecordNotFound rather than succeeding silently.
func (r *Repository) Delete(id uint) error {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&book).Error
}

// Stats scans the whole catalog and aggregates counts by author (exact,
// case-sensitive match) and by century. It is a point-in-time snapshot;
// nothing is cached between calls.
func (r *Repository) Stats() (*entities.BookStats, error) {
	var books []entities.Book
	if err := r.db.Find(&books).Error; err != nil {
		return nil, err
	}

	stats := &entities.BookStats{
		TotalBooks:     len(books),
		BooksByAuthor:  make(map[string]int),
		BooksByCentury: make(map[string]int),
	}
	for _, book := range books {
		stats.BooksByAuthor[book.Author]++
		century := strconv.Itoa(book.Year/100 + 1)
		stats.BooksByCentury[century]++
	}
	return stats, nil
}
