package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"library-assistant/pkg/gemini"
)

// Classify determines user intent from the message. It never returns
// an error: a broken classifier must degrade to the fallback intent,
// not reject the request.
func (r *IntentRouter) Classify(ctx context.Context, message string, conversationHistory []string) Output {
	historyContext := ""
	if len(conversationHistory) > 0 {
		historyContext = PromptHistoryPrefix
		for i, msg := range conversationHistory {
			historyContext += fmt.Sprintf("%d. %s\n", i+1, msg)
		}
		historyContext += "\n"
	}

	prompt := historyContext + fmt.Sprintf(PromptClassifierSystem, message)

	resp, err := r.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Role:  "user",
				Parts: []gemini.Part{{Text: prompt}},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature: ClassifierTemperature,
		},
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return fallback(ReasonClassifierError)
	}

	responseText := strings.TrimSpace(resp.Text())
	if responseText == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return fallback(ReasonEmptyResponse)
	}

	responseText = stripCodeFence(responseText)

	var output Output
	if err := json.Unmarshal([]byte(responseText), &output); err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return fallback(ReasonParsingError)
	}

	output.Intent = Intent(strings.ToLower(strings.TrimSpace(string(output.Intent))))
	if !Known(output.Intent) {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgUnknownLabel, output.Intent)
		return fallback(ReasonUnknownLabel)
	}

	r.l.Infof(ctx, "%s: Classified as %s (confidence: %d%%)", LogPrefixClassify, output.Intent, output.Confidence)
	return output
}

func fallback(reason string) Output {
	return Output{
		Intent:     ClassifierFallbackIntent,
		Confidence: ClassifierFallbackConfidence,
		Reasoning:  reason,
	}
}

// stripCodeFence removes markdown code blocks if present (```json ... ```).
func stripCodeFence(s string) string {
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		return strings.TrimSpace(s)
	}
	return s
}
