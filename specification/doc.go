// Package specification provides the Specification pattern: small, composable predicate objects
// over domain objects, and a Filter that applies them.
//
// A Specification is closed for modification and open for extension: new filtering needs are met
// by adding new Specification implementations and combining them, never by adding methods to an
// existing filter type.
//
// Key types:
//   - Specification: the predicate contract (IsSatisfied)
//   - AndSpecification, OrSpecification, NotSpecification: combinators
//   - AttributeEqualsSpecification: a predicate over records that expose named attributes
//   - Criteria: a data-only specification over attributes that storage engines can translate
//     into their own query language
//
// Common usage pattern:
//
//	greenAndLarge := specification.And[product.Product](
//		product.ColorSpecification{Color: product.Green},
//		product.SizeSpecification{Size: product.Large},
//	)
//
//	for _, p := range specification.Filter(products, greenAndLarge) {
//		fmt.Printf(" * %s is large and green.\n", p.Name)
//	}
//
// The same selection expressed as Criteria, usable in memory and by the catalog store:
//
//	criteria := specification.BuildCriteria().
//		Matching().
//		AllAttributesOf(specification.A("color", "green"), specification.A("size", "large")).
//		Finalize()
package specification
