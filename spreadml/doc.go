// Package spreadml parses the SpreadsheetML (XML Spreadsheet 2003) dialect
// into a generic, queryable element tree.
//
// The package knows nothing about election data. It produces an ordered tree
// of elements with local names, string attributes, and character data, which
// higher layers interrogate through the [Element] interface:
//
//	root, err := spreadml.Load("export.xml")
//	if err != nil {
//	    // handle error
//	}
//	ws, ok := root.FirstChild("Worksheet")
//
// # Element names and namespaces
//
// These exports prefix every element and attribute with a namespace alias
// (commonly "s:" for the spreadsheet namespace and "o:" for the office
// namespace). The tree stores local names only, so lookups use "Worksheet",
// "Cell", "StyleID", and so on regardless of which prefix letters the
// exporter chose.
//
// # Substituting a parser
//
// Consumers depend on [Element], not on the concrete [Node] tree, so any
// markup parser can stand in by implementing the interface.
package spreadml
