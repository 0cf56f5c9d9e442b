package validation

import (
	"fmt"
	"time"

	"bookcatalog/internal/entities"
)

// maxYear is the upper bound for the year field. It is read at validation
// time rather than at startup, so a process running across a New Year
// starts accepting the new year without a restart.
func maxYear() int {
	return time.Now().Year()
}

func checkTitle(v *Validator, title string) {
	v.Check(lengthBetween(title, 1, entities.TitleMaxLength), "title",
		fmt.Sprintf("must be between 1 and %d characters", entities.TitleMaxLength))
}

func checkAuthor(v *Validator, author string) {
	v.Check(lengthBetween(author, 1, entities.AuthorMaxLength), "author",
		fmt.Sprintf("must be between 1 and %d characters", entities.AuthorMaxLength))
}

func checkYear(v *Validator, year int) {
	v.Check(year >= entities.YearMin && year <= maxYear(), "year",
		fmt.Sprintf("must be between %d and %d", entities.YearMin, maxYear()))
}

func checkISBN(v *Validator, isbn string) {
	v.Check(lengthBetween(isbn, entities.ISBNMinLength, entities.ISBNMaxLength), "isbn",
		fmt.Sprintf("must be between %d and %d characters", entities.ISBNMinLength, entities.ISBNMaxLength))
}

// ValidateInput checks a create/full-replace payload: title, author and
// year are all required, ISBN only when supplied. No ISBN checksum is
// verified, only its length.
func ValidateInput(in entities.BookInput) *Validator {
	v := New()
	checkTitle(v, in.Title)
	checkAuthor(v, in.Author)
	checkYear(v, in.Year)
	if in.ISBN != nil {
		checkISBN(v, *in.ISBN)
	}
	return v
}

// ValidatePatch checks a partial-update payload. Only supplied (non-nil)
// fields are validated; omitted fields are legal and leave the stored
// record untouched.
func ValidatePatch(p entities.BookPatch) *Validator {
	v := New()
	if p.Title != nil {
		checkTitle(v, *p.Title)
	}
	if p.Author != nil {
		checkAuthor(v, *p.Author)
	}
	if p.Year != nil {
		checkYear(v, *p.Year)
	}
	if p.ISBN != nil {
		checkISBN(v, *p.ISBN)
	}
	return v
}
