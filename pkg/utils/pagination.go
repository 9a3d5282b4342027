package utils

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}

// PageBounds returns the [start, end) window of page within a collection of
// length total, clipped so both bounds stay inside the collection.
func PageBounds(total, page, perPage int) (int, int) {
	if total <= 0 || perPage <= 0 {
		return 0, 0
	}

	start := CalculateOffset(page, perPage)
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return start, end
}
