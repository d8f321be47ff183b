package selector

// Category identifies the kind of a compound-selector part.
type Category int

const (
	categoryNone Category = iota // combined text; carries no rank
	CategoryElement
	CategoryID
	CategoryClass
	CategoryAttribute
	CategoryPseudoClass
	CategoryPseudoElement
)

// Rank returns the ordering rank. A part must never rank higher than the
// part appended before it.
func (c Category) Rank() int {
	switch c {
	case CategoryElement:
		return 10
	case CategoryID:
		return 8
	case CategoryClass:
		return 6
	case CategoryAttribute:
		return 4
	case CategoryPseudoClass:
		return 2
	case CategoryPseudoElement:
		return 1
	}
	return 0
}

// Singleton reports whether the category may occur at most once per selector.
func (c Category) Singleton() bool {
	return c == CategoryElement || c == CategoryID || c == CategoryPseudoElement
}

// Render returns the selector token for name.
func (c Category) Render(name string) string {
	switch c {
	case CategoryID:
		return "#" + name
	case CategoryClass:
		return "." + name
	case CategoryAttribute:
		return "[" + name + "]"
	case CategoryPseudoClass:
		return ":" + name
	case CategoryPseudoElement:
		return "::" + name
	}
	return name
}

func (c Category) specificity() Specificity {
	switch c {
	case CategoryID:
		return Specificity{1, 0, 0}
	case CategoryClass, CategoryAttribute, CategoryPseudoClass:
		return Specificity{0, 1, 0}
	case CategoryElement, CategoryPseudoElement:
		return Specificity{0, 0, 1}
	}
	return Specificity{}
}

func (c Category) valid() bool { return c >= CategoryElement && c <= CategoryPseudoElement }

// String returns the key used for the category in selector documents.
func (c Category) String() string {
	switch c {
	case CategoryElement:
		return "element"
	case CategoryID:
		return "id"
	case CategoryClass:
		return "class"
	case CategoryAttribute:
		return "attr"
	case CategoryPseudoClass:
		return "pseudoClass"
	case CategoryPseudoElement:
		return "pseudoElement"
	}
	return "none"
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(key string) (Category, bool) {
	for c := CategoryElement; c <= CategoryPseudoElement; c++ {
		if c.String() == key {
			return c, true
		}
	}
	return categoryNone, false
}
