package digests

// Filter carries the composable digest list predicates. All active predicates
// combine with AND semantics; important/favorite/search additionally restrict
// each digest's news collection, and the restrictions intersect.
type Filter struct {
	Important *bool
	Favorite  *bool
	Unread    *bool
	Search    *string

	Year  *int
	Month *int
	Day   *int

	Page     *int
	PageSize *int
}

// RestrictsNews reports whether any news-restricting predicate is active.
// Views switch to the full representation when it is.
func (f Filter) RestrictsNews() bool {
	return f.Important != nil || f.Favorite != nil || (f.Search != nil && *f.Search != "")
}

// restrictNews keeps only news matching keep in each digest, then drops
// digests left without news. Filtering happens on the annotated collection,
// never on raw storage rows.
func restrictNews(digests []Digest, keep func(*News) bool) []Digest {
	result := digests[:0]
	for i := range digests {
		news := make([]News, 0, len(digests[i].News))
		for j := range digests[i].News {
			if keep(&digests[i].News[j]) {
				news = append(news, digests[i].News[j])
			}
		}
		if len(news) == 0 {
			continue
		}
		digests[i].News = news
		result = append(result, digests[i])
	}

	return result
}

func restrictByImportant(digests []Digest, value bool) []Digest {
	return restrictNews(digests, func(n *News) bool {
		return n.Important == value
	})
}

func restrictByFavorite(digests []Digest, value bool) []Digest {
	return restrictNews(digests, func(n *News) bool {
		return n.Favorite == value
	})
}

func restrictBySearch(digests []Digest, matched map[int]struct{}) []Digest {
	return restrictNews(digests, func(n *News) bool {
		_, ok := matched[n.ID]
		return ok
	})
}

// paginate cuts the requested page out of the filtered collection. Pages past
// the end come back empty.
func paginate(digests []Digest, page, pageSize int) []Digest {
	start := (page - 1) * pageSize
	if start >= len(digests) {
		return []Digest{}
	}

	end := start + pageSize
	if end > len(digests) {
		end = len(digests)
	}

	return digests[start:end]
}

// filterByUnread keeps digests whose read mark exists and has the given unread
// value. Digests without a mark for the caller are excluded.
func filterByUnread(digests []Digest, value bool) []Digest {
	result := digests[:0]
	for i := range digests {
		if digests[i].Unread == nil || *digests[i].Unread != value {
			continue
		}
		result = append(result, digests[i])
	}

	return result
}
