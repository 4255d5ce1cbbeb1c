package knowledge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedProfile(t *testing.T) {
	b := Default()
	require.Equal(t, "Anmol Tiwari", b.Personal.Name)
	require.Equal(t, "tiwarianmol173@gmail.com", b.Personal.Email)
	require.Len(t, b.Projects, 6)
	require.Equal(t, "AGRO-ADVISOR", b.Projects[0].Title)
	require.Contains(t, b.ProjectTitles(), "SMART-ATS")
	require.Len(t, b.Experience, 1)
	require.NotEmpty(t, b.Skills.AIML)
}

func TestParse_Override(t *testing.T) {
	b, err := Parse([]byte(`
personal:
  name: Jane Doe
  email: jane@example.com
projects:
  - title: ONE
`))
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", b.Personal.Name)
	require.Equal(t, []string{"ONE"}, b.ProjectTitles())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":         "  ",
		"unknown field": "personal:\n  name: x\n  email: y\nhobbies: [chess]\n",
		"missing email": "personal:\n  name: x\n",
		"untitled":      "personal:\n  name: x\n  email: y\nprojects:\n  - description: z\n",
		"not yaml":      "personal: [",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			require.Error(t, err)
		})
	}
}
