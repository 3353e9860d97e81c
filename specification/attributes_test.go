package specification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/solid-specifications-go/product"
	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

type tagOnly struct {
	tag string
}

func (t tagOnly) Attributes() specification.Attributes {
	return specification.Attributes{"tag": t.tag}
}

type pointerRecord struct {
	color string
}

func (r *pointerRecord) Attributes() specification.Attributes {
	return specification.Attributes{product.AttrColor: r.color}
}

func Test_AttributeEquals(t *testing.T) {
	tests := []struct {
		name     string
		spec     specification.AttributeEqualsSpecification
		item     specification.Attributed
		expected bool
	}{
		{
			name:     "matching_attribute",
			spec:     specification.AttributeEquals(product.AttrColor, "green"),
			item:     product.Build("Tree", product.Green, product.Large),
			expected: true,
		},
		{
			name:     "different_value",
			spec:     specification.AttributeEquals(product.AttrColor, "blue"),
			item:     product.Build("Tree", product.Green, product.Large),
			expected: false,
		},
		{
			name:     "missing_attribute_is_not_satisfied",
			spec:     specification.AttributeEquals(product.AttrColor, "green"),
			item:     tagOnly{tag: "green"},
			expected: false,
		},
		{
			name:     "nil_item_is_not_satisfied",
			spec:     specification.AttributeEquals(product.AttrColor, "green"),
			item:     nil,
			expected: false,
		},
		{
			name:     "typed_nil_pointer_item_is_not_satisfied",
			spec:     specification.AttributeEquals(product.AttrColor, "green"),
			item:     (*pointerRecord)(nil),
			expected: false,
		},
		{
			name:     "pointer_item",
			spec:     specification.AttributeEquals(product.AttrColor, "green"),
			item:     &pointerRecord{color: "green"},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.spec.IsSatisfied(tc.item))
		})
	}
}

func Test_AttributeEquals_Combines_With_And_Over_HeterogeneousRecords(t *testing.T) {
	items := []specification.Attributed{
		product.Build("Apple", product.Green, product.Small),
		tagOnly{tag: "green"},
		product.Build("Tree", product.Green, product.Large),
	}
	spec := specification.And[specification.Attributed](
		specification.AttributeEquals(product.AttrColor, "green"),
		specification.AttributeEquals(product.AttrSize, "large"),
	)

	result := specification.Filter(items, spec)

	assert.Equal(t, []specification.Attributed{product.Build("Tree", product.Green, product.Large)}, result)
}

func Test_AttributesOf(t *testing.T) {
	attributes, ok := specification.AttributesOf(&pointerRecord{color: "red"})
	assert.True(t, ok)
	assert.Equal(t, specification.Attributes{product.AttrColor: "red"}, attributes)

	_, ok = specification.AttributesOf((*pointerRecord)(nil))
	assert.False(t, ok)

	_, ok = specification.AttributesOf(nil)
	assert.False(t, ok)
}
