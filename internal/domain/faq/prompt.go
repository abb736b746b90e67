package faq

import (
	"strconv"
	"strings"
)

const notAvailable = "N/A"

func buildIntentPrompt(catalog *Catalog, prompt string) string {
	var b strings.Builder
	b.WriteString("Analyze the following user question and determine if it matches any of these predefined topics:\n\n")
	for _, entry := range catalog.entries {
		b.WriteString("- **")
		b.WriteString(entry.ID)
		b.WriteString("**: ")
		b.WriteString(strings.Join(entry.QuestionPhrases, " | "))
		b.WriteString("\n")
	}
	b.WriteString("\nUser question: \"")
	b.WriteString(prompt)
	b.WriteString("\"\n\n")

	examples := make([]string, 0, len(catalog.entries))
	for _, entry := range catalog.entries {
		examples = append(examples, strconv.Quote(entry.ID))
	}
	b.WriteString("If the user question clearly matches one of the topics above, respond ONLY with the ID of that topic (e.g., ")
	b.WriteString(strings.Join(examples, ", "))
	b.WriteString("). If it does not clearly match any of these, respond ONLY with \"none\".")
	return b.String()
}

func buildGeneralPrompt(prompt string, info *UserInfo) string {
	if info == nil {
		return prompt
	}
	var b strings.Builder
	b.WriteString("User's Name: ")
	b.WriteString(orNotAvailable(info.Name))
	b.WriteString("\nUser's Phone: ")
	b.WriteString(orNotAvailable(info.Phone))
	b.WriteString("\nUser's Address: ")
	b.WriteString(orNotAvailable(info.Address))
	b.WriteString("\n\nUser's Request: ")
	b.WriteString(prompt)
	return b.String()
}

func normalizeLabel(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
