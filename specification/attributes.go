package specification

import (
	"reflect"
)

type AttributeKeyString = string
type AttributeValString = string

// Attributes is a read-only view of a record's named attributes.
type Attributes map[AttributeKeyString]AttributeValString

// Get returns the value of the named attribute and whether it exists.
func (a Attributes) Get(key AttributeKeyString) (AttributeValString, bool) {
	val, ok := a[key]
	return val, ok
}

// Attributed is implemented by domain objects that expose their fields by name,
// e.g. for generic attribute predicates, CEL expressions, or storage engines.
type Attributed interface {
	Attributes() Attributes
}

// AttributesOf returns the attributes of item. It returns false for a nil item, including a typed nil
// such as a nil pointer, whose Attributes method would otherwise dereference nil.
func AttributesOf(item Attributed) (Attributes, bool) {
	if item == nil {
		return nil, false
	}

	switch v := reflect.ValueOf(item); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return nil, false
		}
	default:
	}

	return item.Attributes(), true
}

/***** AttributeEqualsSpecification *****/

// AttributeEqualsSpecification is satisfied if the record has the attribute and its value equals Val.
// A record lacking the attribute does not satisfy it.
type AttributeEqualsSpecification struct {
	Key AttributeKeyString
	Val AttributeValString
}

// AttributeEquals builds an AttributeEqualsSpecification.
func AttributeEquals(key AttributeKeyString, val AttributeValString) AttributeEqualsSpecification {
	return AttributeEqualsSpecification{Key: key, Val: val}
}

// IsSatisfied implements Specification.
func (s AttributeEqualsSpecification) IsSatisfied(item Attributed) bool {
	attributes, ok := AttributesOf(item)
	if !ok {
		return false
	}

	val, ok := attributes.Get(s.Key)

	return ok && val == s.Val
}

var _ Specification[Attributed] = AttributeEqualsSpecification{}

// AsAttributed converts a slice of any Attributed type for use with specifications over Attributed,
// e.g. Criteria.
func AsAttributed[T Attributed](items []T) []Attributed {
	attributed := make([]Attributed, 0, len(items))
	for _, item := range items {
		attributed = append(attributed, item)
	}

	return attributed
}
