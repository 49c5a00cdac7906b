package frame

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// document mirrors the unit's page layout:
//
//	<PARAMETER>
//	  <LANG>en</LANG>
//	  <ID>v00104</ID><VA>12.5</VA>
//	  ...
//	</PARAMETER>
//
// The root element name is not checked.
type document struct {
	Languages []string `xml:"LANG"`
	IDs       []string `xml:"ID"`
	Values    []string `xml:"VA"`
}

// Parse decodes one XML page into a Frame.
//
// The i-th ID is paired with the i-th VA. When the lists differ in length the
// surplus of the longer list is ignored. When a label repeats, its last value
// wins. A missing LANG element leaves Language empty.
//
// Documents declaring a non-UTF-8 encoding in their prolog (the unit serves
// ISO-8859-1) are transcoded before decoding. The document must hold exactly
// one root element; text other than whitespace outside it is rejected, while
// comments, directives and processing instructions are allowed.
//
// Returns:
//   - *Frame: decoded frame, never nil on success
//   - error: ErrMalformedDocument wrapping the decoder error
func Parse(doc []byte) (*Frame, error) {
	dec := xml.NewDecoder(bytes.NewReader(doc))
	dec.CharsetReader = charset.NewReaderLabel

	var (
		d    document
		root bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root {
				return nil, fmt.Errorf("%w: second root element <%s>", ErrMalformedDocument, t.Name.Local)
			}
			if err := dec.DecodeElement(&d, &t); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
			}
			root = true
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return nil, fmt.Errorf("%w: text outside the root element", ErrMalformedDocument)
			}
		}
	}
	if !root {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedDocument)
	}

	f := New("")
	if len(d.Languages) > 0 {
		f.Language = strings.TrimSpace(d.Languages[0])
	}

	n := min(len(d.IDs), len(d.Values))
	for i := range n {
		f.Set(strings.TrimSpace(d.IDs[i]), d.Values[i])
	}
	return f, nil
}
