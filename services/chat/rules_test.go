package chat

import (
	"testing"

	"veritek/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWithCategory(t *testing.T) *models.ConversationState {
	t.Helper()
	st := models.NewConversationState()
	st.EnterDiscovery()
	require.True(t, st.SelectCategory(models.CategoryAutomation))
	return st
}

func match(t *testing.T, input string, st *models.ConversationState) (string, string) {
	t.Helper()
	reply, rule := Match(DefaultRules(), input, st)
	require.NotEmpty(t, reply, "the table must always produce a reply")
	return reply, rule
}

func TestResetRuleClearsStateFromAnywhere(t *testing.T) {
	st := stateWithCategory(t)
	require.True(t, st.RefineIndustry(models.IndustryPharmaceutical))

	_, rule := match(t, "ok let's start over please", st)

	assert.Equal(t, "reset", rule)
	assert.Equal(t, models.PhaseIdle, st.Phase)
	assert.Empty(t, st.Category)
	assert.Empty(t, st.Industry)
}

func TestGreetingDoesNotMutateState(t *testing.T) {
	st := models.NewConversationState()
	st.EnterDiscovery()

	_, rule := match(t, "hello there", st)

	assert.Equal(t, "greeting", rule)
	assert.True(t, st.Discovering())
}

func TestDiscoveryEntrySetsDiscoveryMode(t *testing.T) {
	st := models.NewConversationState()

	reply, rule := match(t, "i'm looking for the right service", st)

	assert.Equal(t, "discovery-entry", rule)
	assert.True(t, st.Discovering())
	assert.Contains(t, reply, "1.")
	assert.Contains(t, reply, "6.")
}

func TestDiscoveryEntryGatedOnceCategoryChosen(t *testing.T) {
	st := stateWithCategory(t)

	_, rule := match(t, "i need help", st)

	assert.Equal(t, "default", rule)
	assert.Equal(t, models.CategoryAutomation, st.Category)
}

func TestCategorySelectionByNumber(t *testing.T) {
	tests := []struct {
		input string
		want  models.ServiceCategory
		rule  string
	}{
		{"1", models.CategoryAutomation, "select-automation"},
		{"2", models.CategorySafety, "select-safety"},
		{"3", models.CategoryDesign, "select-design"},
		{"4", models.CategoryPanel, "select-panel"},
		{"5", models.CategoryTraining, "select-training"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			st := models.NewConversationState()
			st.EnterDiscovery()

			_, rule := match(t, tt.input, st)

			assert.Equal(t, tt.rule, rule)
			assert.Equal(t, tt.want, st.Category)
			assert.Equal(t, models.PhaseCategorySelected, st.Phase)
		})
	}
}

func TestCategorySelectionByKeyword(t *testing.T) {
	st := models.NewConversationState()
	st.EnterDiscovery()

	reply, rule := match(t, "we have a robot cell to integrate", st)

	assert.Equal(t, "select-automation", rule)
	assert.Equal(t, models.CategoryAutomation, st.Category)
	assert.Contains(t, reply, "automation.html")
}

func TestCategorySelectionRequiresDiscoveryMode(t *testing.T) {
	st := models.NewConversationState()

	_, rule := match(t, "2", st)

	assert.Equal(t, "default", rule)
	assert.Empty(t, st.Category)
}

func TestCategoryIsSetAtMostOnce(t *testing.T) {
	st := stateWithCategory(t)

	_, rule := match(t, "2", st)

	assert.Equal(t, "default", rule)
	assert.Equal(t, models.CategoryAutomation, st.Category)
}

func TestUnsureOptionLeavesFunnelOpen(t *testing.T) {
	st := models.NewConversationState()
	st.EnterDiscovery()

	reply, rule := match(t, "6", st)

	assert.Equal(t, "select-unsure", rule)
	assert.Empty(t, st.Category)
	assert.True(t, st.Discovering())
	assert.Contains(t, reply, "contact.html?dept=engineering&type=consultation")
}

func TestIndustryRefinement(t *testing.T) {
	st := stateWithCategory(t)

	reply, rule := match(t, "pharma", st)

	assert.Equal(t, "industry-pharma", rule)
	assert.Contains(t, reply, "Pharmaceutical")
	assert.Equal(t, models.IndustryPharmaceutical, st.Industry)
	assert.Equal(t, models.PhaseRefined, st.Phase)
	assert.Contains(t, reply, "service=automation")
	assert.Contains(t, reply, "industry=pharmaceutical")
}

func TestIndustryGatedOnCategory(t *testing.T) {
	st := models.NewConversationState()

	_, rule := match(t, "pharma", st)

	assert.Equal(t, "default", rule)
	assert.Empty(t, st.Industry)
}

func TestFlatTopicFallbackWithoutDiscovery(t *testing.T) {
	st := models.NewConversationState()

	reply, rule := match(t, "tell me about automation services", st)

	assert.Equal(t, "topic-automation", rule)
	assert.Contains(t, reply, "automation.html")
	// The flat tier never touches state.
	assert.Equal(t, models.PhaseIdle, st.Phase)
	assert.Empty(t, st.Category)
}

func TestRuleOrderIsObservable(t *testing.T) {
	// "i need help with safety training" matches discovery entry, the safety
	// topic and the training topic; the earlier rule must win.
	st := models.NewConversationState()

	_, rule := match(t, "i need help with safety training", st)

	assert.Equal(t, "discovery-entry", rule)
}

func TestComplaintRule(t *testing.T) {
	st := models.NewConversationState()

	reply, rule := match(t, "i have a complaint about my last order", st)

	assert.Equal(t, "complaint", rule)
	assert.Contains(t, reply, "dept=support")
}

func TestQuoteFallback(t *testing.T) {
	st := models.NewConversationState()

	reply, rule := match(t, "how much does this cost", st)

	assert.Equal(t, "topic-quote", rule)
	assert.Contains(t, reply, "type=quote")
}

func TestDefaultRuleCatchesEverything(t *testing.T) {
	st := models.NewConversationState()

	reply, rule := match(t, "xyzzy", st)

	assert.Equal(t, "default", rule)
	assert.Contains(t, reply, "contact.html")
}

func TestMatchIsDeterministic(t *testing.T) {
	rules := DefaultRules()
	for i := 0; i < 5; i++ {
		st := models.NewConversationState()
		reply, rule := Match(rules, "tell me about plc systems", st)
		assert.Equal(t, "topic-automation", rule)
		assert.Equal(t, automationTopicResponse, reply)
	}
}
