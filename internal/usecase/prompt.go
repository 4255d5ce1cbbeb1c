package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"portfolio-assistant/internal/knowledge"
	"portfolio-assistant/internal/language"
	"portfolio-assistant/internal/locale"
)

// Composer builds the system prompt. The knowledge base is serialized once;
// Compose is then a pure function of the language.
type Composer struct {
	kb     knowledge.Base
	kbJSON string
}

func NewComposer(kb knowledge.Base) (*Composer, error) {
	if err := kb.Validate(); err != nil {
		return nil, fmt.Errorf("usecase: composer: %w", err)
	}
	raw, err := json.MarshalIndent(kb, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("usecase: marshal knowledge base: %w", err)
	}
	return &Composer{kb: kb, kbJSON: string(raw)}, nil
}

func (c *Composer) Compose(lang language.Code) string {
	lang = lang.OrDefault()
	return strings.Join([]string{
		personaPrompt(c.kb.Personal.Name),
		"",
		"KNOWLEDGE BASE:",
		c.kbJSON,
		"",
		"FORMATTING GUIDELINES FOR CHAT:",
		formattingRules(),
		"",
		"RESPONSE GUIDELINES:",
		responseRules(c.kb.Personal, lang),
		"",
		"LANGUAGE INSTRUCTIONS:",
		languageRules(lang),
	}, "\n")
}

func personaPrompt(name string) string {
	first := strings.Fields(name)[0]
	return strings.Join([]string{
		fmt.Sprintf("You are %s's AI Assistant, a helpful and knowledgeable AI that represents %s's portfolio.", first, name),
		"",
		"PERSONA:",
		"- Professional yet friendly and approachable",
		"- Enthusiastic about technology, especially AI/ML and web development",
		fmt.Sprintf("- Knowledgeable about %s's work and capabilities", first),
		"- Helpful in answering questions about projects and skills",
	}, "\n")
}

func formattingRules() string {
	return strings.Join([]string{
		"- Keep responses conversational and easy to read",
		"- Use short paragraphs (2-3 sentences max)",
		"- Keep responses under 200 words when possible",
		"- ALWAYS add double line breaks between paragraphs",
		"- Use dashes (-) for any lists or bullet points",
	}, "\n")
}

func responseRules(p knowledge.Personal, lang language.Code) string {
	info, _ := language.Lookup(lang)
	rules := []string{
		"1) Always speak in first person as the portfolio owner.",
		"2) Be specific about projects, technologies and achievements.",
		"3) If asked about something not in the knowledge base, say so honestly.",
		"4) When discussing projects, mention their technologies and link them as [Project Name](github-url).",
		fmt.Sprintf("5) Always respond in %s.", info.Name),
		"6) When providing contact information, always use clickable markdown links:",
	}
	return strings.Join(append(rules, contactLinks(p)...), "\n")
}

func languageRules(lang language.Code) string {
	return strings.Join([]string{
		"- Target language: " + string(lang),
		"- " + locale.Directive(lang),
		"- Always respond in the same language as the user's question",
		"- Use proper formatting with double line breaks between paragraphs",
		"- Use bullet points with dashes (-) for lists",
		"- Be culturally appropriate for the target language",
	}, "\n")
}

func contactLinks(p knowledge.Personal) []string {
	var out []string
	if p.Email != "" {
		out = append(out, fmt.Sprintf("   - Email: [%s](mailto:%s)", p.Email, p.Email))
	}
	if p.Phone != "" {
		out = append(out, fmt.Sprintf("   - Phone: [%s](tel:%s)", p.Phone, dialable(p.Phone)))
	}
	if p.GitHub != "" {
		out = append(out, fmt.Sprintf("   - GitHub: [%s](%s)", displayURL(p.GitHub), p.GitHub))
	}
	if p.LinkedIn != "" {
		out = append(out, fmt.Sprintf("   - LinkedIn: [%s](%s)", displayURL(p.LinkedIn), p.LinkedIn))
	}
	return out
}

// dialable keeps the leading plus and digits: "+91-8103107867" -> "+918103107867".
func dialable(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func displayURL(u string) string {
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimPrefix(u, "www.")
	return strings.TrimRight(u, "/")
}
