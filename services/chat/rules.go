// File: services/chat/rules.go
package chat

import (
	"regexp"
	"strings"

	"veritek/models"
)

// Rule is one entry in the ordered intent table. Order is behavior: the
// table is scanned top to bottom and the first rule whose predicate matches
// wins; later rules are never evaluated for that message.
type Rule struct {
	Name    string
	When    func(input string, st *models.ConversationState) bool
	Effect  func(st *models.ConversationState)
	Respond func(st *models.ConversationState) string
}

// Match applies the first matching rule: its state effect runs first, then
// its response is built from the updated state. The table ends with an
// unconditional rule, so a reply is always produced.
func Match(rules []Rule, input string, st *models.ConversationState) (reply string, ruleName string) {
	for _, r := range rules {
		if !r.When(input, st) {
			continue
		}
		if r.Effect != nil {
			r.Effect(st)
		}
		return r.Respond(st), r.Name
	}
	return "", ""
}

var (
	resetRe     = regexp.MustCompile(`\b(start over|restart|reset|main menu|show options|go back)\b`)
	greetingRe  = regexp.MustCompile(`\b(hi|hello|hey|howdy|greetings|good (morning|afternoon|evening))\b`)
	discoveryRe = regexp.MustCompile(`\b(help|find|looking for|need|want|search)\b`)

	automationWordsRe = regexp.MustCompile(`\b(plc|scada|hmi|robots?|robotics|automation)\b`)
	safetyWordsRe     = regexp.MustCompile(`\b(safety|risk assessments?|guarding|lockout|tagout|loto)\b`)
	designWordsRe     = regexp.MustCompile(`\b(design|schematics?|drawings?|controls engineering)\b`)
	panelWordsRe      = regexp.MustCompile(`\b(panels?|enclosures?|cabinets?|ul 508a)\b`)
	trainingWordsRe   = regexp.MustCompile(`\b(training|courses?|certifications?|classes?)\b`)
	unsureWordsRe     = regexp.MustCompile(`\b(not sure|unsure|other|something else|engineer|specialist)\b`)

	pharmaRe     = regexp.MustCompile(`\b(pharma|pharmaceuticals?|gmp|life sciences?)\b`)
	automotiveRe = regexp.MustCompile(`\b(automotive|auto plant|vehicles?|cars?)\b`)
	foodRe       = regexp.MustCompile(`\b(food|beverage|dairy|brewery|bottling)\b`)

	quoteRe     = regexp.MustCompile(`\b(quotes?|pricing|prices?|costs?|estimates?)\b`)
	contactRe   = regexp.MustCompile(`\b(contact|phone|email|address|call|speak|talk)\b`)
	complaintRe = regexp.MustCompile(`\b(complaints?|problems?|broken|not working|disappointed|unhappy|issues?|frustrated)\b`)
)

// matchesChoice accepts either the bare menu number or a keyword synonym.
func matchesChoice(input, number string, words *regexp.Regexp) bool {
	return strings.TrimSpace(input) == number || words.MatchString(input)
}

// categoryRule builds one discovery-menu selection rule. Selection is only
// eligible while the session is in the discovery funnel with no category
// chosen yet.
func categoryRule(name, number string, words *regexp.Regexp, cat models.ServiceCategory, respond func(st *models.ConversationState) string) Rule {
	return Rule{
		Name: name,
		When: func(input string, st *models.ConversationState) bool {
			return st.Discovering() && st.Category == "" && matchesChoice(input, number, words)
		},
		Effect: func(st *models.ConversationState) {
			st.SelectCategory(cat)
		},
		Respond: respond,
	}
}

// industryRule builds one industry refinement rule, eligible once a category
// has been chosen.
func industryRule(name string, words *regexp.Regexp, ind models.Industry, respond func(st *models.ConversationState) string) Rule {
	return Rule{
		Name: name,
		When: func(input string, st *models.ConversationState) bool {
			return st.Category != "" && words.MatchString(input)
		},
		Effect: func(st *models.ConversationState) {
			st.RefineIndustry(ind)
		},
		Respond: respond,
	}
}

// keywordRule builds one flat topic fallback with no state gating, so
// visitors who skip the discovery funnel still get a relevant answer.
func keywordRule(name string, words *regexp.Regexp, response string) Rule {
	return Rule{
		Name: name,
		When: func(input string, st *models.ConversationState) bool {
			return words.MatchString(input)
		},
		Respond: func(st *models.ConversationState) string {
			return response
		},
	}
}

// DefaultRules returns the production intent table in evaluation order:
// reset, greeting, discovery entry, category selection, industry refinement,
// flat topic fallbacks, complaint, default.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "reset",
			When: func(input string, st *models.ConversationState) bool {
				return resetRe.MatchString(input)
			},
			Effect: func(st *models.ConversationState) {
				st.Reset()
			},
			Respond: func(st *models.ConversationState) string {
				return resetResponse
			},
		},
		{
			Name: "greeting",
			When: func(input string, st *models.ConversationState) bool {
				return greetingRe.MatchString(input)
			},
			Respond: func(st *models.ConversationState) string {
				return greetingResponse
			},
		},
		{
			Name: "discovery-entry",
			When: func(input string, st *models.ConversationState) bool {
				return st.Category == "" && discoveryRe.MatchString(input)
			},
			Effect: func(st *models.ConversationState) {
				st.EnterDiscovery()
			},
			Respond: func(st *models.ConversationState) string {
				return discoveryMenuResponse
			},
		},

		categoryRule("select-automation", "1", automationWordsRe, models.CategoryAutomation,
			func(st *models.ConversationState) string { return automationSelectedResponse }),
		categoryRule("select-safety", "2", safetyWordsRe, models.CategorySafety,
			func(st *models.ConversationState) string { return safetySelectedResponse }),
		categoryRule("select-design", "3", designWordsRe, models.CategoryDesign,
			func(st *models.ConversationState) string { return designSelectedResponse }),
		categoryRule("select-panel", "4", panelWordsRe, models.CategoryPanel,
			func(st *models.ConversationState) string { return panelSelectedResponse }),
		categoryRule("select-training", "5", trainingWordsRe, models.CategoryTraining,
			func(st *models.ConversationState) string { return trainingSelectedResponse }),
		{
			// Menu option 6 hands off to an engineer without picking a
			// category, so the funnel stays open.
			Name: "select-unsure",
			When: func(input string, st *models.ConversationState) bool {
				return st.Discovering() && st.Category == "" && matchesChoice(input, "6", unsureWordsRe)
			},
			Respond: func(st *models.ConversationState) string {
				return unsureResponse
			},
		},

		industryRule("industry-pharma", pharmaRe, models.IndustryPharmaceutical, pharmaResponse),
		industryRule("industry-automotive", automotiveRe, models.IndustryAutomotive, automotiveResponse),
		industryRule("industry-food", foodRe, models.IndustryFood, foodResponse),

		keywordRule("topic-automation", automationWordsRe, automationTopicResponse),
		keywordRule("topic-safety", safetyWordsRe, safetyTopicResponse),
		keywordRule("topic-design", designWordsRe, designTopicResponse),
		keywordRule("topic-panel", panelWordsRe, panelTopicResponse),
		keywordRule("topic-training", trainingWordsRe, trainingTopicResponse),
		keywordRule("topic-quote", quoteRe, quoteResponse),
		keywordRule("topic-contact", contactRe, contactResponse),

		keywordRule("complaint", complaintRe, complaintResponse),

		{
			Name: "default",
			When: func(input string, st *models.ConversationState) bool {
				return true
			},
			Respond: func(st *models.ConversationState) string {
				return defaultResponse
			},
		},
	}
}
