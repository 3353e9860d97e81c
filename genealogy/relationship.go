package genealogy

import (
	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

// RelationshipType is what From is to To.
type RelationshipType int

const (
	Parent RelationshipType = iota
	Child
	Sibling
)

func (t RelationshipType) String() string {
	switch t {
	case Parent:
		return "parent"
	case Child:
		return "child"
	case Sibling:
		return "sibling"
	default:
		return "unknown"
	}
}

// Relationship reads as "From is the Type of To".
type Relationship struct {
	From Person
	Type RelationshipType
	To   Person
}

// FromPersonNamed is satisfied by relationships starting at a person with the given name.
type FromPersonNamed struct {
	Name string
}

func (s FromPersonNamed) IsSatisfied(r Relationship) bool {
	return r.From.Name == s.Name
}

// OfType is satisfied by relationships of the given type.
type OfType struct {
	Type RelationshipType
}

func (s OfType) IsSatisfied(r Relationship) bool {
	return r.Type == s.Type
}

var (
	_ specification.Specification[Relationship] = FromPersonNamed{}
	_ specification.Specification[Relationship] = OfType{}
)
