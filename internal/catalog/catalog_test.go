package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultWeightVectorsSumToOne(t *testing.T) {
	c := Default()
	for _, p := range c.Priorities() {
		w, ok := c.PriorityWeights(p.ID)
		require.True(t, ok, "priority %s has no weights", p.ID)
		sum := w.Durability + w.Speed + w.MinInvasive + w.Maintenance + w.Risk
		assert.InDelta(t, 1.0, sum, 1e-6, "priority %s", p.ID)
	}
}

func TestLookups(t *testing.T) {
	c := Default()

	m, ok := c.Method("implant")
	require.True(t, ok)
	assert.Equal(t, "Implant", m.Label)
	assert.InDelta(t, 90, m.Metrics.Durability, 0)

	_, ok = c.Method("no_such_method")
	assert.False(t, ok)

	cmp, ok := c.Comparator("missing_tooth")
	require.True(t, ok)
	assert.Equal(t, []string{"implant", "bridge", "partial_denture"}, cmp.MethodIDs)
	assert.Equal(t, "braki", cmp.CategoryID)

	_, ok = c.Comparator("no_such_comparator")
	assert.False(t, ok)

	p, ok := c.Priority("fast")
	require.True(t, ok)
	assert.Equal(t, "najszybsze rozwiązanie", p.Phrase)
}

func TestListComparators(t *testing.T) {
	c := Default()

	all := c.ListComparators("")
	require.NotEmpty(t, all)

	braki := c.ListComparators("braki")
	require.NotEmpty(t, braki)
	for _, cmp := range braki {
		assert.Equal(t, "braki", cmp.CategoryID)
	}

	// Filtered list keeps the relative definition order.
	pos := make(map[string]int, len(all))
	for i, cmp := range all {
		pos[cmp.ID] = i
	}
	for i := 1; i < len(braki); i++ {
		assert.Less(t, pos[braki[i-1].ID], pos[braki[i].ID])
	}

	assert.Empty(t, c.ListComparators("no_such_category"))
}

func TestRulesKeepDeclarationOrder(t *testing.T) {
	c := Default()

	rules := c.Rules("missing_tooth")
	require.Len(t, rules, 2)
	assert.Equal(t, "missing_healthy", rules[0].ID)
	assert.Equal(t, "missing_many", rules[1].ID)

	assert.Empty(t, c.Rules("no_such_comparator"))
}

func TestVersionTracksContent(t *testing.T) {
	a := Default()
	b := Default()
	assert.Equal(t, a.Version(), b.Version())

	methods := defaultMethods()
	methods[0].Metrics.Durability = math.Min(methods[0].Metrics.Durability+1, 100)
	changed := New(defaultCategories(), defaultComparators(), methods,
		defaultPriorities(), defaultWeights(), defaultGatingRules(), defaultTableRowLabels())
	assert.NotEqual(t, a.Version(), changed.Version())
}

func TestValidateFlagsBrokenData(t *testing.T) {
	comparators := []Comparator{{
		ID: "broken", CategoryID: "no_such_category",
		MethodIDs: []string{"no_such_method"},
		Questions: []Question{{ID: "q", Label: "Q", Options: []QuestionOption{
			{Value: "a", Label: "A"}, {Value: "a", Label: "A again"},
		}}},
	}}
	rules := []GatingRule{
		{ID: "dup", ComparatorID: "broken", Answers: map[string]string{"q": "b"}, Effects: []GatingEffect{{MethodID: "other", ScoreDelta: 1}}},
		{ID: "dup", ComparatorID: "missing", Answers: nil, Effects: nil},
	}
	weights := map[string]Weights{
		"skewed":   {Durability: 0.5, Speed: 0.5, MinInvasive: 0.5},
		"orphaned": {Durability: 1},
	}
	c := New(nil, comparators, nil, []PriorityOption{{ID: "skewed", Label: "Skewed"}}, weights, rules, nil)

	err := c.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `unknown category "no_such_category"`)
	assert.Contains(t, msg, `unknown method "no_such_method"`)
	assert.Contains(t, msg, `duplicate option value "a"`)
	assert.Contains(t, msg, `weights sum to 1.5`)
	assert.Contains(t, msg, `weight vector "orphaned" has no priority profile`)
	assert.Contains(t, msg, `duplicate rule "dup"`)
	assert.Contains(t, msg, `has no option "b"`)
	assert.Contains(t, msg, `not eligible`)
	assert.Contains(t, msg, `unknown comparator "missing"`)
}

func TestValidateAcceptsUnconditionalRule(t *testing.T) {
	comparators := []Comparator{{
		ID: "plain", CategoryID: "cat",
		MethodIDs: []string{"m"},
		Questions: []Question{{ID: "q", Label: "Q", Options: []QuestionOption{
			{Value: "a", Label: "A"}, {Value: "b", Label: "B"},
		}}},
	}}
	rules := []GatingRule{
		// No answer conditions: fires on every ranking. Legal data.
		{ID: "always", ComparatorID: "plain", Answers: nil, Effects: []GatingEffect{{MethodID: "m", ScoreDelta: -5}}},
	}
	methods := []Method{{ID: "m", Label: "M", Short: "M."}}
	c := New([]Category{{ID: "cat", Title: "Cat"}}, comparators, methods, nil, nil, rules, nil)

	assert.NoError(t, c.Validate())
}

func TestNewCopiesInputs(t *testing.T) {
	cats := []Category{{ID: "x", Title: "X"}}
	c := New(cats, nil, nil, nil, nil, nil, nil)
	cats[0].Title = "mutated"
	assert.Equal(t, "X", c.Categories()[0].Title)
}
