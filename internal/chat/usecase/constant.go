package usecase

import "time"

// Log prefixes
const (
	LogPrefixQuery   = "internal.chat.Query"
	LogPrefixCompose = "internal.chat.composeHistory"
	LogPrefixSearch  = "internal.chat.handleBookSearch"
	LogPrefixRecs    = "internal.chat.handleBookRecommend"
	LogPrefixLookup  = "internal.chat.handleBookLookupISBN"
	LogPrefixInfo    = "internal.chat.handleLibraryInfo"
	LogPrefixGeneral = "internal.chat.handleGeneralChat"
)

// External call deadlines. A slow collaborator surfaces as a degraded
// answer or ErrUpstreamUnavailable, never as a hung request.
const (
	catalogTimeout   = 8 * time.Second
	llmTimeout       = 20 * time.Second
	vectorTimeout    = 10 * time.Second
	retentionTimeout = 5 * time.Second
)

// Vector search parameters
const (
	recommendTopK   = 8
	lookupTopK      = 3
	libraryInfoTopK = 3
	historyWindow   = 4 // turns of context handed to the LLM prompts
)

// Prompts
const (
	promptSearchBooks = `You are a helpful library assistant. A patron asked: "%s"

These books from our catalog matched:
%s

Using only the books listed, answer the patron's question, mentioning titles, authors and how many copies we hold. Be concise and friendly.

%s`

	promptRecommendBooks = `You are a helpful library assistant. A patron asked for recommendations: "%s"

Candidate books from our catalog:
%s

Recommend the most fitting books from the candidates only. For each, give the title, author and one sentence on why it fits. Be concise.`

	promptLookupISBN = `You are a helpful library assistant. Tell the patron that the ISBN of "%s" is %s and that we hold %d copies. One or two sentences.`

	promptLookupISBNOnly = `You are a helpful library assistant. Tell the patron that the ISBN of "%s" is %s. One or two sentences.`

	promptLookupNotFound = `You are a helpful library assistant. Tell the patron politely that you could not find an ISBN for "%s" in the catalog, and suggest they check the spelling or ask for a catalog search. One or two sentences.`

	promptLibraryInfo = `You are the assistant of the university library. Use the conversation and the reference material to answer the patron's question. If the material does not cover it, say so honestly and point them to the library help desk.

%s

Reference material:
%s

Patron question: "%s"`

	promptGeneralChat = `You are the friendly assistant of the university library. Keep answers short and helpful. If the patron asks about books or library services, invite them to ask directly.

%s

Patron message: "%s"`
)

// Canned degraded answers. These keep the chat flow alive when a
// collaborator fails mid-request.
const (
	msgNoBooksFound    = "No books found. Try refining your query."
	msgNoRecommendable = "Sorry, there are no suitable books in our library catalog for your query."
	msgLLMUnavailable  = "Sorry, I could not generate an answer right now. Please try again in a moment."
	msgISBNNotFound    = "Sorry, I could not find the ISBN for that book."
)
