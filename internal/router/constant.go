package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Classifier prompts
const (
	PromptClassifierSystem = `You are the intent classifier of a library assistant. Classify the user's message into exactly one category. Rules are STRICT, follow exactly:

- book_search: The user wants to FIND, LOOK UP, SEARCH, or LOCATE books by title, topic, or author, or asks about copies and availability.
- book_recommend: The user asks to RECOMMEND, SUGGEST, or list books worth reading.
- book_lookup_isbn: The user provides an ISBN/ISSN or asks for the ISBN of a book.
- library_info: Questions about library services, divisions, locations, policies, or opening hours.
- general_chat: Greetings, small talk, off-topic, or anything that fits none of the above.

Current message: "%s"

Return JSON with format:
{
  "intent": "book_search|book_recommend|book_lookup_isbn|library_info|general_chat",
  "confidence": 0-100,
  "reasoning": "One short sentence"
}`

	PromptHistoryPrefix = "Recent conversation:\n"
)

// Classifier configuration
const (
	ClassifierTemperature        = 0.1
	ClassifierFallbackIntent     = IntentGeneralChat
	ClassifierFallbackConfidence = 50
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "Failed to parse JSON, falling back to general_chat"
	ErrMsgEmptyResponse   = "Empty LLM response, falling back to general_chat"
	ErrMsgUnknownLabel    = "Unknown intent label, falling back to general_chat"
)

// Fallback reasons
const (
	ReasonClassifierError = "Fallback due to classifier error"
	ReasonParsingError    = "Fallback due to parsing error"
	ReasonEmptyResponse   = "Fallback due to empty response"
	ReasonUnknownLabel    = "Fallback due to out-of-enum label"
)
