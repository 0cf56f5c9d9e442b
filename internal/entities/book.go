package entities

// Field bounds enforced by the validation layer.
const (
	TitleMaxLength  = 200
	AuthorMaxLength = 100
	ISBNMinLength   = 10
	ISBNMaxLength   = 13
	YearMin         = 1000
)

// Book is a single catalog record. IDs are assigned by the database on
// insert and never change afterwards.
type Book struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Title  string `gorm:"index;size:200" json:"title"`
	Author string `gorm:"index;size:100" json:"author"`
	Year   int    `gorm:"index" json:"year"`
	ISBN   string `gorm:"size:13" json:"isbn,omitempty"`
}

// BookInput is the payload for create and full-replace requests.
// Title, author and year are mandatory; ISBN is optional, so it is a
// pointer to tell "absent" apart from an empty string.
type BookInput struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Year   int     `json:"year"`
	ISBN   *string `json:"isbn"`
}

// BookPatch is the payload for partial updates. Every field is a pointer:
// a nil field was omitted from the request and must leave the stored value
// untouched, while a non-nil field is validated and applied even when it
// carries a zero value.
type BookPatch struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Year   *int    `json:"year"`
	ISBN   *string `json:"isbn"`
}

// BookStats is the aggregation over the whole catalog. Author keys are
// exact, case-sensitive strings; century keys are decimal labels computed
// as year/100 + 1 (1869 -> "19").
type BookStats struct {
	TotalBooks     int            `json:"total_books"`
	BooksByAuthor  map[string]int `json:"books_by_author"`
	BooksByCentury map[string]int `json:"books_by_century"`
}

// Book builds the entity a validated input describes. The ID is left zero
// for the store to assign.
func (in BookInput) Book() Book {
	book := Book{
		Title:  in.Title,
		Author: in.Author,
		Year:   in.Year,
	}
	if in.ISBN != nil {
		book.ISBN = *in.ISBN
	}
	return book
}

// Changes returns the column->value map of the fields that were actually
// supplied. Zero-ish values (e.g. an explicit empty ISBN) are included;
// only omitted fields are absent from the map.
func (p BookPatch) Changes() map[string]any {
	changes := make(map[string]any)
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Author != nil {
		changes["author"] = *p.Author
	}
	if p.Year != nil {
		changes["year"] = *p.Year
	}
	if p.ISBN != nil {
		changes["isbn"] = *p.ISBN
	}
	return changes
}
