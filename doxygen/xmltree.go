package doxygen

import (
	"encoding/xml"
	"io"
	"strings"
)

// element is a lightweight XML element tree with mixed-content fidelity:
// Text is the character data before the first child, Tail is the character
// data between this element's end tag and the next sibling. Documentation
// paragraphs interleave text and markup, so both matter.
type element struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	Tail     string
	Children []*element
}

// decodeXML builds the element tree for the document's root element.
func decodeXML(r io.Reader) (*element, error) {
	dec := xml.NewDecoder(r)

	var root *element
	var stack []*element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{Tag: t.Name.Local}
			if len(t.Attr) > 0 {
				el.Attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					el.Attrs[a.Name.Local] = a.Value
				}
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			cur := stack[len(stack)-1]
			if len(cur.Children) > 0 {
				cur.Children[len(cur.Children)-1].Tail += string(t)
			} else {
				cur.Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}
	return root, nil
}

// attr returns the named attribute or "".
func (e *element) attr(name string) string {
	return e.Attrs[name]
}

// text returns the element's leading character data with surrounding
// whitespace stripped.
func (e *element) text() string {
	return strings.TrimSpace(e.Text)
}

// child returns the first direct child with the given tag, or nil.
func (e *element) child(tag string) *element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// childText returns the trimmed text of the first direct child with the
// given tag, or "".
func (e *element) childText(tag string) string {
	if c := e.child(tag); c != nil {
		return c.text()
	}
	return ""
}

// childrenByTag returns all direct children with the given tag, in
// document order.
func (e *element) childrenByTag(tag string) []*element {
	if e == nil {
		return nil
	}
	var out []*element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// descendant returns the first descendant with the given tag, depth-first
// in document order, or nil.
func (e *element) descendant(tag string) *element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
		if d := c.descendant(tag); d != nil {
			return d
		}
	}
	return nil
}

// descendants returns all descendants with the given tag, depth-first in
// document order.
func (e *element) descendants(tag string) []*element {
	if e == nil {
		return nil
	}
	var out []*element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
		out = append(out, c.descendants(tag)...)
	}
	return out
}
