package llm

import "fmt"

const sentimentPrompt = "What is the overall sentiment of the following text? " +
	"Please respond with only a single word: Positive, Negative, or Neutral.\n\n" +
	"Text: \"\"\"%s\"\"\""

// BuildPrompt embeds text verbatim into the one-word sentiment instruction.
func BuildPrompt(text string) string {
	return fmt.Sprintf(sentimentPrompt, text)
}
