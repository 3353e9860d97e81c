// Package product contains the Open-Closed example: filtering products by their attributes.
//
// ProductFilter shows the approach that breaks the Open-Closed principle: every new filtering need
// adds another method, and combinations multiply ("state space explosion").
// The Specification types in this package show the alternative: each criterion is its own type,
// and combinations are built with specification.And, specification.Or and specification.Not,
// so neither the filter nor the existing criteria ever change.
package product
