package specification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/solid-specifications-go/product"
	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

//nolint:funlen
func Test_CriteriaBuilder_ValidCombinations(t *testing.T) {
	tests := []struct {
		name     string
		build    func() specification.Criteria
		validate func(t *testing.T, c specification.Criteria)
	}{
		{
			name: "matching_anything_creates_empty_criteria",
			build: func() specification.Criteria {
				return specification.BuildCriteria().MatchingAnything()
			},
			validate: func(t *testing.T, c specification.Criteria) {
				assert.Empty(t, c.Items())
			},
		},
		{
			name: "single_predicate",
			build: func() specification.Criteria {
				return specification.BuildCriteria().
					Matching().
					AnyAttributeOf(specification.A("color", "green")).
					Finalize()
			},
			validate: func(t *testing.T, c specification.Criteria) {
				assert.Len(t, c.Items(), 1)
				assert.Len(t, c.Items()[0].Predicates(), 1)
				assert.Equal(t, "color", c.Items()[0].Predicates()[0].Key())
				assert.Equal(t, "green", c.Items()[0].Predicates()[0].Val())
				assert.False(t, c.Items()[0].AllPredicatesMustMatch())
			},
		},
		{
			name: "all_predicates_are_sorted",
			build: func() specification.Criteria {
				return specification.BuildCriteria().
					Matching().
					AllAttributesOf(specification.A("size", "large"), specification.A("color", "green")).
					Finalize()
			},
			validate: func(t *testing.T, c specification.Criteria) {
				assert.Len(t, c.Items(), 1)
				assert.True(t, c.Items()[0].AllPredicatesMustMatch())
				assert.Equal(
					t,
					[]specification.AttributePredicate{specification.A("color", "green"), specification.A("size", "large")},
					c.Items()[0].Predicates(),
				)
			},
		},
		{
			name: "empty_keys_and_duplicate_predicates_are_removed",
			build: func() specification.Criteria {
				return specification.BuildCriteria().
					Matching().
					AnyAttributeOf(
						specification.A("color", "green"),
						specification.A("", "green"),
						specification.A("color", ""),
						specification.A("color", "green"),
						specification.A("color", "blue"),
					).
					Finalize()
			},
			validate: func(t *testing.T, c specification.Criteria) {
				assert.Equal(
					t,
					[]specification.AttributePredicate{
						specification.A("color", ""),
						specification.A("color", "blue"),
						specification.A("color", "green"),
					},
					c.Items()[0].Predicates(),
				)
			},
		},
		{
			name: "multiple_items",
			build: func() specification.Criteria {
				return specification.BuildCriteria().
					Matching().
					AllAttributesOf(specification.A("color", "green"), specification.A("size", "large")).
					OrMatching().
					AnyAttributeOf(specification.A("name", "House")).
					Finalize()
			},
			validate: func(t *testing.T, c specification.Criteria) {
				assert.Len(t, c.Items(), 2)
				assert.True(t, c.Items()[0].AllPredicatesMustMatch())
				assert.False(t, c.Items()[1].AllPredicatesMustMatch())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.validate(t, tc.build())
		})
	}
}

func Test_Criteria_IsSatisfied(t *testing.T) {
	items := product.AsAttributed(fixtureProducts())

	tests := []struct {
		name     string
		criteria specification.Criteria
		expected []specification.Attributed
	}{
		{
			name:     "empty_criteria_match_everything",
			criteria: specification.BuildCriteria().MatchingAnything(),
			expected: items,
		},
		{
			name: "green_and_large",
			criteria: specification.BuildCriteria().
				Matching().
				AllAttributesOf(specification.A(product.AttrColor, "green"), specification.A(product.AttrSize, "large")).
				Finalize(),
			expected: []specification.Attributed{items[1]},
		},
		{
			name: "green_or_large",
			criteria: specification.BuildCriteria().
				Matching().
				AnyAttributeOf(specification.A(product.AttrColor, "green"), specification.A(product.AttrSize, "large")).
				Finalize(),
			expected: items,
		},
		{
			name: "small_apple_or_blue",
			criteria: specification.BuildCriteria().
				Matching().
				AllAttributesOf(specification.A(product.AttrName, "Apple"), specification.A(product.AttrSize, "small")).
				OrMatching().
				AnyAttributeOf(specification.A(product.AttrColor, "blue")).
				Finalize(),
			expected: []specification.Attributed{items[0], items[2]},
		},
		{
			name: "unknown_attribute_in_all_item_matches_nothing",
			criteria: specification.BuildCriteria().
				Matching().
				AllAttributesOf(specification.A(product.AttrColor, "green"), specification.A("weight", "light")).
				Finalize(),
			expected: []specification.Attributed{},
		},
		{
			name: "unknown_attribute_in_any_item_is_ignored",
			criteria: specification.BuildCriteria().
				Matching().
				AnyAttributeOf(specification.A(product.AttrColor, "blue"), specification.A("weight", "light")).
				Finalize(),
			expected: []specification.Attributed{items[2]},
		},
		{
			name: "item_emptied_by_sanitizing_matches_nothing",
			criteria: specification.BuildCriteria().
				Matching().
				AllAttributesOf(specification.A("", "green")).
				Finalize(),
			expected: []specification.Attributed{},
		},
		{
			name: "empty_value_does_not_match_non_empty_attribute",
			criteria: specification.BuildCriteria().
				Matching().
				AllAttributesOf(specification.A(product.AttrColor, "")).
				Finalize(),
			expected: []specification.Attributed{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, specification.Filter(items, specification.Specification[specification.Attributed](tc.criteria)))
		})
	}
}

func Test_Criteria_Equals_And_Of_AttributeEquals(t *testing.T) {
	items := product.AsAttributed(fixtureProducts())
	criteria := specification.BuildCriteria().
		Matching().
		AllAttributesOf(specification.A(product.AttrColor, "green"), specification.A(product.AttrSize, "large")).
		Finalize()
	and := specification.And[specification.Attributed](
		specification.AttributeEquals(product.AttrColor, "green"),
		specification.AttributeEquals(product.AttrSize, "large"),
	)

	for _, item := range items {
		assert.Equal(t, and.IsSatisfied(item), criteria.IsSatisfied(item))
	}
}

func Test_Criteria_EmptyValue_MatchesOnlyEmptyAttribute(t *testing.T) {
	// arrange
	criteria := specification.BuildCriteria().
		Matching().
		AllAttributesOf(specification.A(product.AttrColor, "")).
		Finalize()
	uncolored := product.Build("Ghost", "", product.Small)
	green := product.Build("Tree", product.Green, product.Large)

	// act & assert
	assert.True(t, criteria.IsSatisfied(uncolored))
	assert.False(t, criteria.IsSatisfied(green))
	assert.False(t, criteria.IsSatisfied(tagOnly{tag: "green"}))
}

func Test_Criteria_TypedNilItem_IsNotSatisfied(t *testing.T) {
	criteria := specification.BuildCriteria().
		Matching().
		AnyAttributeOf(specification.A(product.AttrColor, "green")).
		Finalize()

	assert.False(t, criteria.IsSatisfied((*pointerRecord)(nil)))
}
