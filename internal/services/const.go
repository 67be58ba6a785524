package services

import "time"

const (
	CACHE_TTL_5_MINS = 5 * time.Minute

	DBKeyCategories = "trivia:categories"
)
