// Package journal keeps numbered diary entries.
//
// A Journal only manages its entries; rendering for storage and writing it somewhere
// is the job of package journal/persistence.
package journal
