package selector

// Each function below starts a fresh selector.

func Element(name string) Builder       { return Builder{}.Element(name) }
func ID(name string) Builder            { return Builder{}.ID(name) }
func Class(name string) Builder         { return Builder{}.Class(name) }
func Attr(spec string) Builder          { return Builder{}.Attr(spec) }
func PseudoClass(name string) Builder   { return Builder{}.PseudoClass(name) }
func PseudoElement(name string) Builder { return Builder{}.PseudoElement(name) }

// Combine joins two selectors with a combinator, for example
// Combine(Element("ul"), Child, Element("li")) renders "ul > li".
func Combine(left Builder, combinator string, right Builder) Builder {
	return Builder{}.Combine(left, combinator, right)
}

// Stringify renders an empty selector, which is always "".
func Stringify() string { return Builder{}.String() }
