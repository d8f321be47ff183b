// Package selkit provides:
//
// - A CSS compound-selector builder that validates part order and uniqueness (selector/)
// - A stable error model via Issues (path, code, message, cause)
// - A JSON/YAML serialize/deserialize pair backed by an explicit decoder registry (codec/)
// - Selector documents in YAML or JSON, compiled through the builder (document/)
//
// Design policy:
// - Keep only the shared error model and options in the root package.
// - Place the builder under selector/, codecs under codec/, and the CLI under cmd/selkit.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s, err := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Build()
//	// s == `a[href$=".png"]:focus`
//
//	pair := selector.Combine(selector.Element("div").ID("main"), selector.NextSibling, selector.Element("table"))
//	// pair.String() == "div#main + table"
//
//	reg := codec.NewRegistry()
//	shape.Register(reg)
//	r, err := codec.DeserializeAs[shape.Rectangle](reg, shape.TypeName, `{"width":2,"height":3}`)
package selkit
