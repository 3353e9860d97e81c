package specification

import (
	"cmp"
	"slices"
)

/***** Criteria *****/

// Criteria is a data-only specification over Attributed records.
//
// It is a disjunction of CriteriaItem(s); each CriteriaItem holds AttributePredicate(s) that must either
// all match or of which any must match. Because it is plain data, storage engines can translate it into
// their own query language while in-memory evaluation via IsSatisfied yields the same result.
//
// Empty Criteria (no items) match every record.
type Criteria struct {
	items []CriteriaItem
}

func (c Criteria) Items() []CriteriaItem {
	return c.items
}

// IsSatisfied returns true if any CriteriaItem is satisfied by item, or if there are no items.
func (c Criteria) IsSatisfied(item Attributed) bool {
	if len(c.items) == 0 {
		return true
	}

	for _, ci := range c.items {
		if ci.IsSatisfied(item) {
			return true
		}
	}

	return false
}

/***** CriteriaItem *****/

type CriteriaItem struct {
	predicates             []AttributePredicate
	allPredicatesMustMatch bool
}

func (ci CriteriaItem) Predicates() []AttributePredicate {
	return ci.predicates
}

func (ci CriteriaItem) AllPredicatesMustMatch() bool {
	return ci.allPredicatesMustMatch
}

// IsSatisfied evaluates the item's predicates against a record.
// An item without predicates (all of them were sanitized away) is satisfied by no record.
func (ci CriteriaItem) IsSatisfied(item Attributed) bool {
	if len(ci.predicates) == 0 {
		return false
	}

	attributes, ok := AttributesOf(item)
	if !ok {
		return false
	}

	if ci.allPredicatesMustMatch {
		for _, p := range ci.predicates {
			if !p.matches(attributes) {
				return false
			}
		}

		return true
	}

	for _, p := range ci.predicates {
		if p.matches(attributes) {
			return true
		}
	}

	return false
}

/***** AttributePredicate *****/

type AttributePredicate struct {
	key AttributeKeyString
	val AttributeValString
}

// A builds an AttributePredicate: attribute key must equal val.
func A(key AttributeKeyString, val AttributeValString) AttributePredicate {
	return AttributePredicate{key: key, val: val}
}

func (ap AttributePredicate) Key() AttributeKeyString {
	return ap.key
}

func (ap AttributePredicate) Val() AttributeValString {
	return ap.val
}

func (ap AttributePredicate) matches(attributes Attributes) bool {
	val, ok := attributes.Get(ap.key)

	return ok && val == ap.val
}

/***** CriteriaBuilder *****/

// CriteriaBuilder builds Criteria. It only allows these combinations:
//
//   - empty criteria (matches everything, only via MatchingAnything)
//   - (predicate)
//   - (predicate OR predicate...)
//   - (predicate AND predicate...)
//   - ((predicate AND predicate...) OR (predicate...)...) -> multiple CriteriaItem(s)
type CriteriaBuilder interface {
	// Matching starts a new CriteriaItem.
	Matching() EmptyCriteriaItemBuilder

	// MatchingAnything directly creates empty Criteria.
	MatchingAnything() Criteria
}

type EmptyCriteriaItemBuilder interface {
	// AnyAttributeOf adds one or multiple AttributePredicate(s) to the current CriteriaItem expecting ANY to match.
	//
	// It sanitizes the input:
	//	- removing AttributePredicate(s) with an empty key ("" is a valid value to match)
	//	- sorting the AttributePredicate(s)
	//	- removing duplicate AttributePredicate(s)
	AnyAttributeOf(predicate AttributePredicate, predicates ...AttributePredicate) CompletedCriteriaItemBuilder

	// AllAttributesOf adds one or multiple AttributePredicate(s) to the current CriteriaItem expecting ALL to match.
	//
	// It sanitizes the input the same way as AnyAttributeOf.
	AllAttributesOf(predicate AttributePredicate, predicates ...AttributePredicate) CompletedCriteriaItemBuilder
}

type CompletedCriteriaItemBuilder interface {
	// OrMatching finalizes the current CriteriaItem and starts a new one.
	OrMatching() EmptyCriteriaItemBuilder

	// Finalize returns the Criteria.
	Finalize() Criteria
}

// criteriaBuilder implements all the interfaces of CriteriaBuilder
type criteriaBuilder struct {
	criteria    Criteria
	currentItem CriteriaItem
}

// BuildCriteria creates a CriteriaBuilder which must eventually be finalized with Finalize() or MatchingAnything().
func BuildCriteria() CriteriaBuilder {
	return criteriaBuilder{}
}

// Matching starts a new CriteriaItem.
func (cb criteriaBuilder) Matching() EmptyCriteriaItemBuilder {
	cb.currentItem = CriteriaItem{}

	return cb
}

// AnyAttributeOf adds one or multiple AttributePredicate(s) to the current CriteriaItem expecting ANY to match.
func (cb criteriaBuilder) AnyAttributeOf(
	predicate AttributePredicate,
	predicates ...AttributePredicate,
) CompletedCriteriaItemBuilder {

	cb.currentItem.allPredicatesMustMatch = false
	cb.currentItem.predicates = cb.sanitizePredicates(predicate, predicates...)

	return cb
}

// AllAttributesOf adds one or multiple AttributePredicate(s) to the current CriteriaItem expecting ALL to match.
func (cb criteriaBuilder) AllAttributesOf(
	predicate AttributePredicate,
	predicates ...AttributePredicate,
) CompletedCriteriaItemBuilder {

	cb.currentItem.allPredicatesMustMatch = true
	cb.currentItem.predicates = cb.sanitizePredicates(predicate, predicates...)

	return cb
}

func (cb criteriaBuilder) sanitizePredicates(
	predicate AttributePredicate,
	predicates ...AttributePredicate,
) []AttributePredicate {

	allPredicates := append([]AttributePredicate{predicate}, predicates...)
	allPredicates = slices.DeleteFunc(
		allPredicates,
		func(p AttributePredicate) bool {
			return len(p.key) == 0
		})
	slices.SortFunc(
		allPredicates,
		func(a, b AttributePredicate) int {
			if c := cmp.Compare(a.key, b.key); c != 0 {
				return c
			}

			return cmp.Compare(a.val, b.val)
		})
	allPredicates = slices.Compact(allPredicates)
	allPredicates = slices.Clip(allPredicates)

	return allPredicates
}

// OrMatching finalizes the current CriteriaItem and starts a new one.
func (cb criteriaBuilder) OrMatching() EmptyCriteriaItemBuilder {
	cb.criteria.items = append(slices.Clip(cb.criteria.items), cb.currentItem)
	cb.currentItem = CriteriaItem{}

	return cb
}

// MatchingAnything directly creates empty Criteria.
func (cb criteriaBuilder) MatchingAnything() Criteria {
	return cb.criteria
}

// Finalize returns the Criteria with the current CriteriaItem appended.
func (cb criteriaBuilder) Finalize() Criteria {
	cb.criteria.items = append(slices.Clip(cb.criteria.items), cb.currentItem)

	return cb.criteria
}

var _ Specification[Attributed] = Criteria{}
