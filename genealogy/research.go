package genealogy

import (
	"fmt"
)

// Research answers questions about a family using only a RelationshipBrowser.
type Research struct {
	browser RelationshipBrowser
}

func NewResearch(browser RelationshipBrowser) Research {
	return Research{browser: browser}
}

// ChildrenReport returns one line per child of the named person, e.g. "John has a child named Chris".
func (r Research) ChildrenReport(name string) []string {
	if r.browser == nil {
		return []string{}
	}

	return describe(name, "child", r.browser.FindAllChildrenOf(name))
}

// ParentsReport returns one line per parent of the named person.
func (r Research) ParentsReport(name string) []string {
	if r.browser == nil {
		return []string{}
	}

	return describe(name, "parent", r.browser.FindAllParentsOf(name))
}

// SiblingsReport returns one line per sibling of the named person.
func (r Research) SiblingsReport(name string) []string {
	if r.browser == nil {
		return []string{}
	}

	return describe(name, "sibling", r.browser.FindAllSiblingsOf(name))
}

func describe(name, relation string, people []Person) []string {
	lines := make([]string, 0, len(people))
	for _, p := range people {
		lines = append(lines, fmt.Sprintf("%s has a %s named %s", name, relation, p.Name))
	}

	return lines
}
