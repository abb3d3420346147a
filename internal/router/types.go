package router

// Intent represents the classified purpose of a user message.
type Intent string

const (
	IntentBookSearch     Intent = "book_search"
	IntentBookRecommend  Intent = "book_recommend"
	IntentBookLookupISBN Intent = "book_lookup_isbn"
	IntentLibraryInfo    Intent = "library_info"
	IntentGeneralChat    Intent = "general_chat"
)

// AllIntents enumerates the closed intent set. Dispatch totality is
// checked against this list in tests.
var AllIntents = []Intent{
	IntentBookSearch,
	IntentBookRecommend,
	IntentBookLookupISBN,
	IntentLibraryInfo,
	IntentGeneralChat,
}

// Known reports whether a label is in the enumerated intent set.
func Known(i Intent) bool {
	for _, known := range AllIntents {
		if i == known {
			return true
		}
	}
	return false
}

// Output is the structured response from the intent classifier.
type Output struct {
	Intent     Intent `json:"intent"`
	Confidence int    `json:"confidence"` // 0-100
	Reasoning  string `json:"reasoning"`
}
