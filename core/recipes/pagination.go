// ABOUTME: Pagination utilities for recipe results
// ABOUTME: Provides functions to page through a session's recipes for API responses

package recipes

import "recipe-finder-api/core/domain"

// DefaultPerPage is used when perPage is not positive
const DefaultPerPage = 12

// PaginateRecipes returns one page of recipes. Pages start at 1.
func PaginateRecipes(items []domain.Recipe, page, perPage int) []domain.Recipe {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return []domain.Recipe{}
	}

	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// TotalPages returns how many pages total items fill
func TotalPages(total, perPage int) int {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
