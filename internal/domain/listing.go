package domain

// Highlight is the display split of one field around the first occurrence of
// the active search term. Prefix+Match+Suffix always equals the field text.
// When Found is false the whole text sits in Prefix and Match is empty.
type Highlight struct {
	Prefix string `json:"prefix"`
	Match  string `json:"match"`
	Suffix string `json:"suffix"`
	Found  bool   `json:"found"`
}

// ListingRow is one displayed entry. Highlights is nil when search is inactive.
type ListingRow struct {
	Entry      Entry
	Highlights map[Field]Highlight
}

// Listing is the view the presentation layer renders: the rows to show plus
// the counters the page header needs.
type Listing struct {
	// Term is the normalized search term; empty means search inactive.
	Term string
	// Total is the size of the unfiltered collection.
	Total int
	Rows  []ListingRow
}

// Active reports whether a search term is in effect.
func (l Listing) Active() bool {
	return l.Term != ""
}

// DeleteResult reports what a delete did.
type DeleteResult struct {
	// Deleted is false when the id was not present (a no-op).
	Deleted bool
	// DraftReset is true when the deleted entry was being edited and the draft
	// was therefore cleared.
	DraftReset bool
}
