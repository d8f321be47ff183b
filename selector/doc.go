// Package selector builds CSS compound selectors.
//
// Parts must be appended in the order element, id, class, attribute,
// pseudo-class, pseudo-element. Element, id and pseudo-element may occur once.
// Violations surface as selkit.Issues matching selkit.ErrOutOfOrderSelectorPart
// or selkit.ErrDuplicateSelectorPart:
//
//	s, err := selector.ID("main").Class("container").Class("editable").Build()
//	// "#main.container.editable"
//
//	_, err = selector.Class("a").Element("b").Build()
//	// errors.Is(err, selkit.ErrOutOfOrderSelectorPart)
//
// Builders are values. Appending returns a new Builder, so a prefix can be
// shared between several selectors.
package selector
