package genealogy

import (
	"slices"

	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

// RelationshipBrowser is the abstraction high-level modules depend on.
type RelationshipBrowser interface {
	FindAllChildrenOf(name string) []Person
	FindAllParentsOf(name string) []Person
	FindAllSiblingsOf(name string) []Person
}

// Relationships is an in-memory relationship store, the zero value is ready to use.
type Relationships struct {
	relations []Relationship
}

func NewRelationships() *Relationships {
	return &Relationships{}
}

// AddParentAndChild records the relation in both directions.
func (r *Relationships) AddParentAndChild(parent, child Person) {
	r.relations = append(
		r.relations,
		Relationship{From: parent, Type: Parent, To: child},
		Relationship{From: child, Type: Child, To: parent},
	)
}

// AddSiblings records the relation in both directions.
func (r *Relationships) AddSiblings(a, b Person) {
	r.relations = append(
		r.relations,
		Relationship{From: a, Type: Sibling, To: b},
		Relationship{From: b, Type: Sibling, To: a},
	)
}

// All returns a copy of every recorded relationship in insertion order.
func (r *Relationships) All() []Relationship {
	return slices.Clone(r.relations)
}

func (r *Relationships) FindAllChildrenOf(name string) []Person {
	return r.find(name, Parent)
}

func (r *Relationships) FindAllParentsOf(name string) []Person {
	return r.find(name, Child)
}

func (r *Relationships) FindAllSiblingsOf(name string) []Person {
	return r.find(name, Sibling)
}

func (r *Relationships) find(name string, relationshipType RelationshipType) []Person {
	matching := specification.Filter(
		r.relations,
		specification.And[Relationship](FromPersonNamed{Name: name}, OfType{Type: relationshipType}),
	)

	people := make([]Person, 0, len(matching))
	for _, relation := range matching {
		people = append(people, relation.To)
	}

	return people
}

var _ RelationshipBrowser = (*Relationships)(nil)
