package responder

import (
	"strings"

	"github.com/yourusername/craftchat/internal/conversation"
)

const promptTemplate = `You are an expert Minecraft assistant. Answer the player's QUESTION clearly and accurately.

RULES:
1. Assume Java Edition Survival Mode unless the QUESTION explicitly asks about another edition or mode.
2. Be direct and concise.
3. Use a friendly tone, as if you were another player.
4. Use markdown lists or bold text for recipes, steps and item lists.
5. If you do not know the answer, say so instead of guessing.

---

CONVERSATION SO FAR:
{history}

---

QUESTION:
{question}

---

ANSWER:
`

// BuildPrompt fills the assistant prompt with the question and prior turns
func BuildPrompt(question string, history []conversation.Message) string {
	var h strings.Builder
	if len(history) == 0 {
		h.WriteString("(none)")
	}
	for i, msg := range history {
		if i > 0 {
			h.WriteString("\n")
		}
		label := "Player"
		if !msg.IsUser() {
			label = "Assistant"
		}
		h.WriteString(label + ": " + msg.Text)
	}

	r := strings.NewReplacer("{history}", h.String(), "{question}", question)
	return r.Replace(promptTemplate)
}

// cleanReply strips surrounding whitespace and markdown code fences models sometimes add
func cleanReply(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") && len(text) >= 6 {
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimPrefix(text, "```markdown")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}
