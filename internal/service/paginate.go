package service

// QuestionsPerPage is the fixed page size of every paginated listing.
const QuestionsPerPage = 10

// Paginate returns the items of the 1-based page, or an empty slice when the
// page is below 1 or past the end.
func Paginate[T any](items []T, page int) []T {
	if page < 1 || page-1 > len(items)/QuestionsPerPage {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}
