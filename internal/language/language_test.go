package language

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetect_DominantSignal(t *testing.T) {
	cases := []struct {
		text string
		want Code
	}{
		{"What are his technical skills?", English},
		{"Tell me about his projects", English},
		{"¿Cómo puedo contactarlo?", Spanish},
		{"¿Cuáles son sus habilidades técnicas?", Spanish},
		{"Quelles sont ses compétences techniques?", French},
		{"Comment puis-je le contacter?", French},
		{"Was sind seine technischen Fähigkeiten?", German},
		{"Wie kann ich ihn kontaktieren?", German},
		{"उनके तकनीकी कौशल क्या हैं?", Hindi},
		{"彼の技術スキルは何ですか？", Japanese},
		{"그의 기술 스킬은 무엇인가요?", Korean},
		{"他的技术技能是什么？", Chinese},
		{"ما هي مهاراته التقنية؟", Arabic},
		{"Quais são as habilidades técnicas dele?", Portuguese},
		{"Como posso contatá-lo?", Portuguese},
		{"Какие у него технические навыки?", Russian},
		{"Quali sono le sue competenze tecniche?", Italian},
		{"Come posso contattarlo?", Italian},
	}

	d := NewDetector(nil)
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			require.Equal(t, tc.want, d.Detect(tc.text))
		})
	}
}

func TestDetect_NoSignalDefaultsToEnglish(t *testing.T) {
	d := NewDetector(nil)
	for _, text := range []string{"", "   ", "\n\t", "12345 !!!", "AGRO-ADVISOR"} {
		require.Equal(t, English, d.Detect(text), "text=%q", text)
	}
}

type fixedScorer map[Code]int

func (f fixedScorer) Score(string) map[Code]int { return f }

func TestDetect_TieBreak(t *testing.T) {
	d := NewDetector(fixedScorer{Spanish: 2, Portuguese: 2, English: 1})

	require.Equal(t, Spanish, d.Detect("x"), "earliest in table order wins without a hint")
	require.Equal(t, Portuguese, d.DetectWithHint("x", Portuguese))
	require.Equal(t, Spanish, d.DetectWithHint("x", English), "hint outside the tie is ignored")
}

func TestDetect_HanWithoutKanaIsChinese(t *testing.T) {
	d := NewDetector(nil)
	require.Equal(t, Chinese, d.Detect("技术"))
	require.Equal(t, Japanese, d.Detect("技術です"))
}

func TestRank_OrdersByScore(t *testing.T) {
	d := NewDetector(fixedScorer{Russian: 5, German: 3})
	ranked := d.Rank("x")
	require.Len(t, ranked, len(All()))
	require.Equal(t, Score{Code: Russian, Value: 5}, ranked[0])
	require.Equal(t, Score{Code: German, Value: 3}, ranked[1])
	require.Equal(t, English, ranked[2].Code)
}

func TestTable(t *testing.T) {
	require.Len(t, All(), 12)
	require.Equal(t, Codes()[0], English)

	info, ok := Lookup(Arabic)
	require.True(t, ok)
	require.Equal(t, RTL, info.Direction)
	require.Equal(t, "العربية", info.NativeName)

	_, ok = Lookup("xx")
	require.False(t, ok)
	require.Equal(t, English, Code("xx").OrDefault())
	require.Equal(t, Korean, Korean.OrDefault())
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Code
	}{
		{"es", Spanish},
		{"pt-BR", Portuguese},
		{"zh-Hans", Chinese},
		{" FR ", French},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got)
	}

	_, err := Parse("nl")
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = Parse("")
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = Parse("not a tag!")
	require.Error(t, err)
}

func TestMatchAcceptLanguage(t *testing.T) {
	got, ok := MatchAcceptLanguage("de-DE,de;q=0.9,en;q=0.8")
	require.True(t, ok)
	require.Equal(t, German, got)

	got, ok = MatchAcceptLanguage("ja")
	require.True(t, ok)
	require.Equal(t, Japanese, got)

	_, ok = MatchAcceptLanguage("")
	require.False(t, ok)
}

func TestTokens(t *testing.T) {
	require.Equal(t, []string{"cómo", "puedo", "contactarlo"}, Tokens("¿cómo puedo contactarlo?"))
	require.Equal(t, []string{"d", "anmol"}, Tokens("d'anmol"))
}
