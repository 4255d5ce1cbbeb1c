package locale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	lang "portfolio-assistant/internal/language"
)

func TestEveryLanguageHasCompletePhrasebook(t *testing.T) {
	for _, code := range lang.Codes() {
		t.Run(string(code), func(t *testing.T) {
			pb, ok := phrasebooks[code]
			require.True(t, ok)

			for _, topic := range []Topic{TopicDefault, TopicProjects, TopicSkills, TopicContact} {
				require.NotEmpty(t, Answer(topic, code), topic.String())
			}
			require.NotEmpty(t, Welcome(code))
			require.True(t, strings.HasPrefix(Notice(code), "⚠️"))
			require.NotEmpty(t, Directive(code))
			require.Len(t, QuickReplies(code), 4)
			require.NotEmpty(t, Strings(code).ChatTitle)
			for _, f := range []Failure{FailureConfiguration, FailureAuthentication, FailureRateLimit, FailureNetwork} {
				require.NotEmpty(t, ErrorPrefix(f, code))
			}
			for _, topic := range []Topic{TopicProjects, TopicSkills, TopicContact} {
				require.NotEmpty(t, pb.keywords[topic], topic.String())
			}
		})
	}
}

func TestAnswer_LocalizedContentCarriesFacts(t *testing.T) {
	for _, code := range lang.Codes() {
		require.Contains(t, Answer(TopicProjects, code), "AGRO-ADVISOR", code)
		require.Contains(t, Answer(TopicContact, code), "tiwarianmol173@gmail.com", code)
		require.Contains(t, Answer(TopicSkills, code), "Python (95%)", code)
	}
}

func TestAnswer_EnglishMatchesCannedText(t *testing.T) {
	require.Equal(t, "I'd love to tell you about my AI/ML projects!\n\n"+
		"I've built several exciting applications:\n\n"+
		"- AGRO-ADVISOR: Crop recommendation using machine learning\n"+
		"- TALK-TRACK: WhatsApp analytics with sentiment analysis\n"+
		"- CODE-GURU: AI coding assistant with teaching capabilities\n"+
		"- MATHS-GPT: Mathematical problem solver using LangChain\n"+
		"- SMART-ATS: Resume analyzer with improvement suggestions\n\n"+
		"Each project showcases different AI/ML technologies like NLP, machine learning, and deep learning.",
		Answer(TopicProjects, lang.English))

	require.True(t, strings.HasPrefix(Answer(TopicDefault, lang.English), "Hi! I'm Anmol's AI Assistant.\n\nI can tell you about:\n- His AI/ML"))
}

func TestAnswer_UnsupportedLanguageUsesEnglish(t *testing.T) {
	require.Equal(t, Answer(TopicContact, lang.English), Answer(TopicContact, "nl"))
	require.Equal(t, Welcome(lang.English), Welcome(""))
	require.Equal(t, Notice(lang.English), Notice("xx"))
	require.Equal(t, Answer(TopicDefault, lang.French), Answer(Topic(42), lang.French))
}

func TestQuickReplies_ReturnsCopy(t *testing.T) {
	qr := QuickReplies(lang.Spanish)
	qr[0].Question = "changed"
	require.Equal(t, "Cuéntame sobre los proyectos de IA de Anmol", QuickReplies(lang.Spanish)[0].Question)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		code lang.Code
		want Topic
	}{
		{"Tell me about his projects", lang.English, TopicProjects},
		{"What AI work has he done?", lang.English, TopicProjects},
		{"What are his technical skills?", lang.English, TopicSkills},
		{"What's his email?", lang.English, TopicContact},
		{"How do I reach him?", lang.English, TopicContact},
		{"What's his experience?", lang.English, TopicDefault},
		{"", lang.English, TopicDefault},
		{"¿Cómo puedo contactarlo?", lang.Spanish, TopicContact},
		{"¿Cuáles son sus habilidades técnicas?", lang.Spanish, TopicSkills},
		{"Cuéntame sobre los proyectos de IA de Anmol", lang.Spanish, TopicProjects},
		{"Was sind seine technischen Fähigkeiten?", lang.German, TopicSkills},
		{"Wie kann ich ihn kontaktieren?", lang.German, TopicContact},
		{"उनके तकनीकी कौशल क्या हैं?", lang.Hindi, TopicSkills},
		{"मैं उनसे कैसे संपर्क कर सकता हूं?", lang.Hindi, TopicContact},
		{"彼の技術スキルは何ですか？", lang.Japanese, TopicSkills},
		{"我如何联系他？", lang.Chinese, TopicContact},
		{"그의 기술 스킬은 무엇인가요?", lang.Korean, TopicSkills},
		{"Как я могу с ним связаться?", lang.Russian, TopicContact},
		{"Расскажите об ИИ проектах Анмола", lang.Russian, TopicProjects},
		{"Come posso contattarlo?", lang.Italian, TopicContact},
		// English keywords apply in every language.
		{"Quels projets et quel email?", lang.French, TopicProjects},
		{"contact", "nl", TopicContact},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.text, tc.code))
		})
	}
}

func TestClassify_ShortKeywordsMatchWholeWords(t *testing.T) {
	// "ai" inside "email" and "ml" inside "html" are not topic signals.
	require.Equal(t, TopicContact, Classify("send me an email", lang.English))
	require.Equal(t, TopicDefault, Classify("does he know html?", lang.English))
	require.Equal(t, TopicProjects, Classify("any ML work?", lang.English))
}

func TestKeywords_MergesEnglish(t *testing.T) {
	kw := Keywords(TopicContact, lang.Spanish)
	require.Contains(t, kw, "contacto")
	require.Contains(t, kw, "email")

	require.Equal(t, Keywords(TopicContact, lang.English), Keywords(TopicContact, "zz"))
}
