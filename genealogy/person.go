package genealogy

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/solid-specifications-go/specification"
)

const (
	AttrID   = "id"
	AttrName = "name"
)

// Person is identified by ID, two people may share a name.
type Person struct {
	ID   uuid.UUID
	Name string
}

func NewPerson(name string) Person {
	return Person{
		ID:   uuid.New(),
		Name: name,
	}
}

func (p Person) Attributes() specification.Attributes {
	return specification.Attributes{
		AttrID:   p.ID.String(),
		AttrName: p.Name,
	}
}

func (p Person) String() string {
	return p.Name
}

var _ specification.Attributed = Person{}
