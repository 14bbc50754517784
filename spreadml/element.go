package spreadml

// Attr is a single attribute on an element. Names are local names with the
// namespace prefix removed.
type Attr struct {
	Name  string
	Value string
}

// Element is the capability surface readers need from a parsed markup tree:
// named elements, string attributes, ordered children, sibling navigation,
// and character data.
type Element interface {
	// Name returns the element's local name.
	Name() string

	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Children returns the child elements in document order.
	Children() []Element

	// FirstChild returns the first child element with the given local name.
	FirstChild(name string) (Element, bool)

	// NextSibling returns the element immediately following this one among
	// its parent's children, regardless of name.
	NextSibling() (Element, bool)

	// Text returns the concatenated character data directly inside the
	// element, excluding text of child elements.
	Text() string
}

// Node is the default Element implementation produced by [Parse] and [Load].
type Node struct {
	name     string
	attrs    []Attr
	children []*Node
	text     string

	parent *Node
	pos    int // index within parent.children
}

var _ Element = (*Node)(nil)

// Name returns the element's local name.
func (n *Node) Name() string { return n.name }

// Attr returns the value of the named attribute and whether it exists.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns the element's attributes in document order.
func (n *Node) Attrs() []Attr {
	out := make([]Attr, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// Children returns the child elements in document order.
func (n *Node) Children() []Element {
	out := make([]Element, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// FirstChild returns the first child element with the given local name.
func (n *Node) FirstChild(name string) (Element, bool) {
	for _, c := range n.children {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// NextSibling returns the element immediately following this one among its
// parent's children.
func (n *Node) NextSibling() (Element, bool) {
	if n.parent == nil || n.pos+1 >= len(n.parent.children) {
		return nil, false
	}
	return n.parent.children[n.pos+1], true
}

// Text returns the character data directly inside the element.
func (n *Node) Text() string { return n.text }
