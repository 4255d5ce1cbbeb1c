// Package locale holds every user-facing string the assistant produces
// without the completion service: canned answers, the welcome turn, degraded
// notices and the quick-reply suggestions.
package locale

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"

	lang "portfolio-assistant/internal/language"
)

// Topic is the subject a canned answer covers.
type Topic int

const (
	TopicDefault Topic = iota
	TopicProjects
	TopicSkills
	TopicContact
)

func (t Topic) String() string {
	switch t {
	case TopicProjects:
		return "projects"
	case TopicSkills:
		return "skills"
	case TopicContact:
		return "contact"
	default:
		return "default"
	}
}

// Failure names the class of completion failure a prefix explains.
type Failure int

const (
	FailureConfiguration Failure = iota + 1
	FailureAuthentication
	FailureRateLimit
	FailureNetwork
)

// QuickReply is a suggested first question.
type QuickReply struct {
	Question string `json:"question"`
	Hint     string `json:"hint"`
}

// UI carries the chat widget labels.
type UI struct {
	ChatTitle   string `json:"chatTitle"`
	Placeholder string `json:"placeholder"`
	Send        string `json:"send"`
	Clear       string `json:"clear"`
	Retry       string `json:"retry"`
	Typing      string `json:"typing"`
	Error       string `json:"error"`
	Offline     string `json:"offline"`
	Language    string `json:"languageSelector"`
}

var answers = make(map[lang.Code][4]string, len(phrasebooks))

func init() {
	for code, pb := range phrasebooks {
		var a [4]string
		a[TopicDefault] = pb.renderDefault()
		a[TopicProjects] = pb.renderProjects()
		a[TopicSkills] = pb.renderSkills()
		a[TopicContact] = pb.renderContact()
		answers[code] = a
	}
}

func book(code lang.Code) *phrasebook {
	if pb, ok := phrasebooks[code]; ok {
		return pb
	}
	return phrasebooks[lang.English]
}

// Answer returns the canned paragraph for topic in code. Unsupported codes get
// the English table.
func Answer(t Topic, code lang.Code) string {
	a, ok := answers[code]
	if !ok {
		a = answers[lang.English]
	}
	if t < TopicDefault || t > TopicContact {
		t = TopicDefault
	}
	return a[t]
}

// Welcome is the single assistant turn a fresh or cleared session starts with.
func Welcome(code lang.Code) string { return book(code).welcome }

// Notice is appended to degraded answers.
func Notice(code lang.Code) string { return book(code).notice }

// Directive is the instruction sentence telling the model which language to
// answer in.
func Directive(code lang.Code) string { return book(code).directive }

func QuickReplies(code lang.Code) []QuickReply {
	src := book(code).quickReplies
	out := make([]QuickReply, len(src))
	copy(out, src[:])
	return out
}

func Strings(code lang.Code) UI { return book(code).ui }

// ErrorPrefix explains why the reply came from the offline table. It is empty
// for failures without a dedicated message.
func ErrorPrefix(f Failure, code lang.Code) string {
	return book(code).prefixes[f]
}

// Keywords returns the topic keywords for code merged with the English set.
func Keywords(t Topic, code lang.Code) []string {
	en := phrasebooks[lang.English].keywords[t]
	if code == lang.English {
		return append([]string(nil), en...)
	}
	pb, ok := phrasebooks[code]
	if !ok {
		return append([]string(nil), en...)
	}
	out := make([]string, 0, len(pb.keywords[t])+len(en))
	out = append(out, pb.keywords[t]...)
	return append(out, en...)
}

// Classify picks the first topic, in projects, skills, contact order, with a
// keyword present in text.
func Classify(text string, code lang.Code) Topic {
	folded := cases.Fold().String(text)
	var tokens map[string]struct{}
	for _, t := range []Topic{TopicProjects, TopicSkills, TopicContact} {
		for _, kw := range Keywords(t, code) {
			if !wholeWordOnly(kw) {
				if strings.Contains(folded, kw) {
					return t
				}
				continue
			}
			if tokens == nil {
				tokens = make(map[string]struct{})
				for _, tok := range lang.Tokens(folded) {
					tokens[tok] = struct{}{}
				}
			}
			if _, ok := tokens[kw]; ok {
				return t
			}
		}
	}
	return TopicDefault
}

// wholeWordOnly reports whether kw is a short word in a space-delimited
// alphabet, where substring matches misfire ("ai" in "email").
func wholeWordOnly(kw string) bool {
	if utf8.RuneCountInString(kw) > 3 {
		return false
	}
	for _, r := range kw {
		if !unicode.In(r, unicode.Latin, unicode.Cyrillic) {
			return false
		}
	}
	return true
}

type phrasebook struct {
	welcome   string
	notice    string
	directive string

	quickReplies [4]QuickReply
	ui           UI
	prefixes     map[Failure]string
	keywords     map[Topic][]string

	projectsIntro string
	projectsBuilt string
	projectItems  [5]string
	projectsOutro string

	skillsIntro     string
	programming     string
	aiml            string
	machineLearning string
	deepLearning    string
	generativeAI    string
	web             string
	skillsOutro     string

	contactIntro string
	email        string
	phone        string
	contactOutro string

	greeting string
	canTell  string
	offers   [4]string
	question string
}

var projectTitles = [5]string{"AGRO-ADVISOR", "TALK-TRACK", "CODE-GURU", "MATHS-GPT", "SMART-ATS"}

func (pb *phrasebook) renderProjects() string {
	items := make([]string, len(projectTitles))
	for i, title := range projectTitles {
		items[i] = fmt.Sprintf("- %s: %s", title, pb.projectItems[i])
	}
	return pb.projectsIntro + "\n\n" + pb.projectsBuilt + "\n\n" +
		strings.Join(items, "\n") + "\n\n" + pb.projectsOutro
}

func (pb *phrasebook) renderSkills() string {
	return strings.Join([]string{
		pb.skillsIntro,
		"",
		pb.programming,
		"- Python (95%)",
		"- JavaScript (90%)",
		"- C++ (80%)",
		"- C (85%)",
		"",
		pb.aiml,
		"- " + pb.machineLearning + " (88%)",
		"- " + pb.deepLearning + " (85%)",
		"- " + pb.generativeAI + " (90%)",
		"- LangChain (85%)",
		"",
		pb.web,
		"- React (88%)",
		"- Node.js (82%)",
		"- MongoDB (75%)",
		"",
		pb.skillsOutro,
	}, "\n")
}

func (pb *phrasebook) renderContact() string {
	return strings.Join([]string{
		pb.contactIntro,
		"",
		"- " + pb.email + ": [tiwarianmol173@gmail.com](mailto:tiwarianmol173@gmail.com)",
		"- " + pb.phone + ": [+91-8103107867](tel:+918103107867)",
		"- GitHub: [github.com/Anmol0201](https://github.com/Anmol0201/)",
		"- LinkedIn: [linkedin.com/in/anmol-tiwari-626866239](https://www.linkedin.com/in/anmol-tiwari-626866239/)",
		"",
		pb.contactOutro,
	}, "\n")
}

func (pb *phrasebook) renderDefault() string {
	lines := []string{pb.greeting, "", pb.canTell}
	for _, o := range pb.offers {
		lines = append(lines, "- "+o)
	}
	return strings.Join(append(lines, "", pb.question), "\n")
}
