package ringconfig

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/benoitkugler/progresscircle/ringcolor"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Attribute is the markup attribute holding JSON options.
const Attribute = "data-progresscircle"

// PayloadError is returned when the markup attribute is not valid JSON.
// It matches ringcolor.ErrFormat.
type PayloadError struct {
	Payload string
	Err     error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("options format is not correct: %s (in %q)", e.Err, e.Payload)
}

func (e *PayloadError) Unwrap() error { return e.Err }

func (e *PayloadError) Is(target error) bool { return target == ringcolor.ErrFormat }

// FromMarkup parses an HTML document (or fragment) and returns the options
// of the first element carrying the Attribute.
// `contentType` is used to detect the encoding, and may be empty.
// An empty layer is returned if no element has the attribute.
func FromMarkup(r io.Reader, contentType string) (Partial, error) {
	utf8, err := charset.NewReader(r, contentType)
	if err != nil {
		return Partial{}, err
	}
	doc, err := html.Parse(utf8)
	if err != nil {
		return Partial{}, err
	}
	el := FindElement(doc)
	if el == nil {
		return Partial{}, nil
	}
	return FromElement(el)
}

// FindElement returns the first element, in document order,
// carrying the Attribute, or nil.
func FindElement(n *html.Node) *html.Node {
	if n.Type == html.ElementNode {
		if _, ok := attr(n); ok {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindElement(c); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == Attribute {
			return a.Val, true
		}
	}
	return "", false
}

// FromElement decodes the Attribute of `el`.
func FromElement(el *html.Node) (Partial, error) {
	payload, ok := attr(el)
	if !ok || payload == "" {
		return Partial{}, nil
	}
	var p Partial
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return Partial{}, &PayloadError{Payload: payload, Err: err}
	}
	return p, nil
}
