package http

import "bookcatalog/internal/database"

// RouterConfig carries every dependency the router needs, so NewRouter
// stays testable and its parameter list does not grow with each feature.
type RouterConfig struct {
	Database *database.Database
	Store    BookStore
	APIKey   string
	Version  string

	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
}
