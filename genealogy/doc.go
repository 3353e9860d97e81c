// Package genealogy records family relationships between people.
//
// Relationships is the low-level store. Research is the high-level consumer and only knows the
// RelationshipBrowser abstraction, so the store can change its representation without touching Research.
package genealogy
