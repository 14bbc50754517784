package scytl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ulti/read-election-data/spreadml"
)

// childrenNamed returns e's child elements with the given local name, in
// document order.
func childrenNamed(e spreadml.Element, name string) []spreadml.Element {
	var out []spreadml.Element
	for _, c := range e.Children() {
		if c.Name() == name {
			out = append(out, c)
		}
	}
	return out
}

// fromFirst returns e's children starting at the first child with the given
// name. Tables open with Column elements before the first Row, and the
// original reader walked from the first named element through every sibling
// after it; this mirrors that traversal.
func fromFirst(e spreadml.Element, name string) []spreadml.Element {
	children := e.Children()
	for i, c := range children {
		if c.Name() == name {
			return children[i:]
		}
	}
	return nil
}

// rowsOf returns the rows of a worksheet's table.
func rowsOf(ws spreadml.Element) ([]spreadml.Element, error) {
	table, ok := ws.FirstChild(elemTable)
	if !ok {
		return nil, fmt.Errorf("%w: worksheet has no %s", ErrStructure, elemTable)
	}
	return fromFirst(table, elemRow), nil
}

// cellsOf returns the cells of a row.
func cellsOf(row spreadml.Element) []spreadml.Element {
	return fromFirst(row, elemCell)
}

// dataOf returns the cell's nested Data element.
func dataOf(cell spreadml.Element) (spreadml.Element, bool) {
	return cell.FirstChild(elemData)
}

// typeOf returns the Data element's declared type, or "" when absent.
func typeOf(data spreadml.Element) string {
	t, _ := data.Attr(attrType)
	return t
}

// styleOf returns the cell's style marker, or "" when absent.
func styleOf(cell spreadml.Element) string {
	s, _ := cell.Attr(attrStyleID)
	return s
}

// intText parses the Data element's text as an integer. The whole text must
// parse; trailing characters fail rather than truncate.
func intText(data spreadml.Element) (int, error) {
	s := strings.TrimSpace(data.Text())
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrCoercion, s)
	}
	return n, nil
}

// intAttr parses the named attribute as an integer, defaulting to 0 when the
// attribute is absent.
func intAttr(e spreadml.Element, name string) (int, error) {
	s, ok := e.Attr(name)
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: attribute %s=%q is not an integer", ErrCoercion, name, s)
	}
	return n, nil
}
