package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"bookcatalog/internal/database/books"
	"bookcatalog/internal/http"
)

// BookStore implementations
var _ http.BookStore = (*books.Repository)(nil)
