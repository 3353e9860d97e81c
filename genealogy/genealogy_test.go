package genealogy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/solid-specifications-go/genealogy"
	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

type family struct {
	john, chris, matt genealogy.Person
	relationships     *genealogy.Relationships
}

func fixtureFamily() family {
	f := family{
		john:          genealogy.NewPerson("John"),
		chris:         genealogy.NewPerson("Chris"),
		matt:          genealogy.NewPerson("Matt"),
		relationships: genealogy.NewRelationships(),
	}

	f.relationships.AddParentAndChild(f.john, f.chris)
	f.relationships.AddParentAndChild(f.john, f.matt)
	f.relationships.AddSiblings(f.chris, f.matt)

	return f
}

// browserStub is a RelationshipBrowser that is not backed by Relationships at all.
type browserStub struct {
	children map[string][]genealogy.Person
}

func (b browserStub) FindAllChildrenOf(name string) []genealogy.Person {
	return b.children[name]
}

func (b browserStub) FindAllParentsOf(string) []genealogy.Person {
	return nil
}

func (b browserStub) FindAllSiblingsOf(string) []genealogy.Person {
	return nil
}

func Test_Research_ChildrenReport(t *testing.T) {
	// arrange
	f := fixtureFamily()

	// act
	report := genealogy.NewResearch(f.relationships).ChildrenReport("John")

	// assert
	assert.Equal(t, []string{"John has a child named Chris", "John has a child named Matt"}, report)
}

func Test_Research_DependsOnlyOnTheBrowser(t *testing.T) {
	// arrange
	stub := browserStub{children: map[string][]genealogy.Person{"John": {genealogy.NewPerson("Chris")}}}

	// act
	report := genealogy.NewResearch(stub).ChildrenReport("John")

	// assert
	assert.Equal(t, []string{"John has a child named Chris"}, report)
}

func Test_Research_ParentsAndSiblings(t *testing.T) {
	// arrange
	research := genealogy.NewResearch(fixtureFamily().relationships)

	// act & assert
	assert.Equal(t, []string{"Chris has a parent named John"}, research.ParentsReport("Chris"))
	assert.Equal(t, []string{"Matt has a sibling named Chris"}, research.SiblingsReport("Matt"))
	assert.Empty(t, research.ChildrenReport("Matt"))
}

func Test_Research_WithoutBrowser(t *testing.T) {
	research := genealogy.NewResearch(nil)

	assert.Empty(t, research.ChildrenReport("John"))
	assert.Empty(t, research.ParentsReport("John"))
	assert.Empty(t, research.SiblingsReport("John"))
}

func Test_Relationships_RecordsBothDirections(t *testing.T) {
	// arrange
	f := fixtureFamily()

	// act
	all := f.relationships.All()

	// assert
	assert.Len(t, all, 6)
	assert.Equal(t, genealogy.Relationship{From: f.john, Type: genealogy.Parent, To: f.chris}, all[0])
	assert.Equal(t, genealogy.Relationship{From: f.chris, Type: genealogy.Child, To: f.john}, all[1])
	assert.Equal(t, []genealogy.Person{f.chris, f.matt}, f.relationships.FindAllChildrenOf("John"))
	assert.Equal(t, []genealogy.Person{f.john}, f.relationships.FindAllParentsOf("Matt"))
}

func Test_Relationships_AllReturnsACopy(t *testing.T) {
	// arrange
	f := fixtureFamily()

	// act
	all := f.relationships.All()
	all[0].Type = genealogy.Sibling

	// assert
	assert.Equal(t, genealogy.Parent, f.relationships.All()[0].Type)
}

func Test_Relationships_ZeroValueIsUsable(t *testing.T) {
	var relationships genealogy.Relationships

	assert.Empty(t, relationships.FindAllChildrenOf("John"))
	assert.Empty(t, relationships.All())
}

func Test_RelationshipType_String(t *testing.T) {
	assert.Equal(t, "parent", genealogy.Parent.String())
	assert.Equal(t, "child", genealogy.Child.String())
	assert.Equal(t, "sibling", genealogy.Sibling.String())
	assert.Equal(t, "unknown", genealogy.RelationshipType(42).String())
}

func Test_Person_IsAttributed(t *testing.T) {
	// arrange
	john := genealogy.NewPerson("John")
	otherJohn := genealogy.NewPerson("John")

	// act
	sameName := specification.AttributeEquals(genealogy.AttrName, "John")
	sameID := specification.AttributeEquals(genealogy.AttrID, john.ID.String())

	// assert
	assert.NotEqual(t, john.ID, otherJohn.ID)
	assert.True(t, sameName.IsSatisfied(otherJohn))
	assert.True(t, sameID.IsSatisfied(john))
	assert.False(t, sameID.IsSatisfied(otherJohn))
}
