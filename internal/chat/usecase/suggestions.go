package usecase

import "strings"

// defaultReminders are the fallback follow-ups when nothing matches.
var defaultReminders = []string{
	"Could you clarify your query or provide more details?",
	"Try rephrasing your question for better results.",
	"Explore general information about the library.",
}

var searchSuggestions = []string{
	"You can check the availability of these books at our library.",
	"Would you like to know more about any specific book?",
	"I can help you find similar books if you're interested.",
}

var recommendSuggestions = []string{
	"Search for more books by this author or subject.",
	"Recommend me another book.",
	"I need help with library borrowing or services?",
}

// keywordSuggestions offers canned follow-up questions per topic.
var keywordSuggestions = map[string][]string{
	"borrow": {
		"How can I borrow resources from the library?",
		"What is the process for borrowing books from the library?",
		"How many books can I borrow at once?",
	},
	"card": {
		"How can I apply for a library ID?",
		"Which documents are required to apply for a library ID?",
		"Where do I renew my library ID?",
	},
	"hours": {
		"What are the library opening hours?",
		"Is the library open on weekends?",
		"When does the reading area close?",
	},
	"division": {
		"What does the Access Services Division do?",
		"What services are offered at the American Corner?",
		"Who is the head of the Information Technology Services Division?",
	},
	"location": {
		"Where is the main library located?",
		"Where is the University Archives section?",
		"How do I find the periodicals section?",
	},
}

// keywordOrder fixes the match precedence so the same query always
// yields the same suggestions.
var keywordOrder = []string{"borrow", "card", "hours", "division", "location"}

// suggestionsFor picks up to three follow-ups matching the query,
// falling back to the default reminders.
func suggestionsFor(query string) []string {
	q := strings.ToLower(query)
	for _, keyword := range keywordOrder {
		if strings.Contains(q, keyword) {
			return keywordSuggestions[keyword]
		}
	}
	return defaultReminders
}
