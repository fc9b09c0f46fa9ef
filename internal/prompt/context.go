package prompt

import "strings"

const contextSeparator = "\n\n---\n\n"

// Inject prepends accumulated winery context to a built prompt. Empty context
// returns the prompt unchanged, with no stray separator.
func Inject(basePrompt, context string) string {
	if strings.TrimSpace(context) == "" {
		return basePrompt
	}
	return "WINERY CONTEXT (use this information to personalize your response):\n" +
		context + contextSeparator + basePrompt
}
