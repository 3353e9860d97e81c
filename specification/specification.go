package specification

/***** Specification *****/

// Specification is a pure predicate over items of type T.
//
// Implementations must not mutate the item nor themselves, and must be total:
// an item lacking what the predicate inspects is simply not satisfied.
type Specification[T any] interface {
	IsSatisfied(item T) bool
}

// Func adapts a plain function to a Specification.
type Func[T any] func(item T) bool

// IsSatisfied calls f. A nil Func is satisfied by nothing.
func (f Func[T]) IsSatisfied(item T) bool {
	if f == nil {
		return false
	}

	return f(item)
}

/***** AndSpecification *****/

// AndSpecification is satisfied iff all of its children are satisfied.
// With zero children it is satisfied by every item.
type AndSpecification[T any] struct {
	specs []Specification[T]
}

// And combines specs with logical AND. The given slice is copied, nil entries are dropped.
func And[T any](specs ...Specification[T]) AndSpecification[T] {
	return AndSpecification[T]{specs: compactSpecs(specs)}
}

// IsSatisfied returns true if every child specification is satisfied by item.
func (s AndSpecification[T]) IsSatisfied(item T) bool {
	for _, spec := range s.specs {
		if !spec.IsSatisfied(item) {
			return false
		}
	}

	return true
}

// Specs returns a copy of the child specifications.
func (s AndSpecification[T]) Specs() []Specification[T] {
	return append([]Specification[T](nil), s.specs...)
}

/***** OrSpecification *****/

// OrSpecification is satisfied iff at least one of its children is satisfied.
// With zero children it is satisfied by nothing.
type OrSpecification[T any] struct {
	specs []Specification[T]
}

// Or combines specs with logical OR. The given slice is copied, nil entries are dropped.
func Or[T any](specs ...Specification[T]) OrSpecification[T] {
	return OrSpecification[T]{specs: compactSpecs(specs)}
}

// IsSatisfied returns true if any child specification is satisfied by item.
func (s OrSpecification[T]) IsSatisfied(item T) bool {
	for _, spec := range s.specs {
		if spec.IsSatisfied(item) {
			return true
		}
	}

	return false
}

// Specs returns a copy of the child specifications.
func (s OrSpecification[T]) Specs() []Specification[T] {
	return append([]Specification[T](nil), s.specs...)
}

/***** NotSpecification *****/

// NotSpecification negates its child. Negating nil is satisfied by every item.
type NotSpecification[T any] struct {
	spec Specification[T]
}

// Not negates spec.
func Not[T any](spec Specification[T]) NotSpecification[T] {
	return NotSpecification[T]{spec: spec}
}

// IsSatisfied returns true if the child specification is not satisfied by item.
func (s NotSpecification[T]) IsSatisfied(item T) bool {
	if s.spec == nil {
		return true
	}

	return !s.spec.IsSatisfied(item)
}

/***** Filter *****/

// Filter returns the items satisfying spec, preserving their relative order.
// The input slice is never modified. A nil spec matches nothing.
func Filter[T any](items []T, spec Specification[T]) []T {
	result := make([]T, 0, len(items))

	if spec == nil {
		return result
	}

	for _, item := range items {
		if spec.IsSatisfied(item) {
			result = append(result, item)
		}
	}

	return result
}

func compactSpecs[T any](specs []Specification[T]) []Specification[T] {
	compacted := make([]Specification[T], 0, len(specs))

	for _, spec := range specs {
		if spec != nil {
			compacted = append(compacted, spec)
		}
	}

	return compacted
}

var (
	_ Specification[any] = Func[any](nil)
	_ Specification[any] = AndSpecification[any]{}
	_ Specification[any] = OrSpecification[any]{}
	_ Specification[any] = NotSpecification[any]{}
)
