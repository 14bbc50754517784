package spreadml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrDocumentLoad indicates the document could not be read or is not
// well-formed markup.
var ErrDocumentLoad = errors.New("spreadml: cannot load document")

// Load reads and parses the markup file at path, returning the root element.
func Load(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentLoad, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads markup from r and returns the root element of the tree.
//
// Exports in this dialect are frequently written as UTF-16 with a byte-order
// mark; the stream is normalized to UTF-8 before decoding, and declared
// non-UTF-8 encodings are honored via the decoder's charset reader.
func Parse(r io.Reader) (*Node, error) {
	bom := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	dec := xml.NewDecoder(transform.NewReader(r, bom))
	dec.CharsetReader = charsetReader

	var root *Node
	var stack []*Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDocumentLoad, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{name: t.Name.Local}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				n.attrs = append(n.attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrDocumentLoad)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				n.parent = parent
				n.pos = len(parent.children)
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrDocumentLoad)
	}
	return root, nil
}

// charsetReader converts streams with a declared non-UTF-8 encoding. The BOM
// transform has already turned UTF-16 input into UTF-8 by the time the
// decoder sees the declaration, so UTF-16 labels pass through unchanged
// rather than decoding twice; everything else goes through the registered
// charset decoders.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-16", "utf16", "utf-16le", "utf-16be":
		return input, nil
	}
	return charset.NewReaderLabel(label, input)
}
