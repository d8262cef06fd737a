package rightnow

import "encoding/xml"

// PayloadMode selects the markup expected by a comment mutation action.
type PayloadMode int

const (
	// PayloadCreate wraps the comment in <comments>, as CommentAdd expects.
	PayloadCreate PayloadMode = iota
	// PayloadUpdate sends a bare <comment>, as CommentUpdate expects.
	PayloadUpdate
)

const xmlDeclaration = `<?xml version="1.0"?>`

type commentValue struct {
	Text string `xml:",cdata"`
}

type commentXML struct {
	XMLName xml.Name     `xml:"comment"`
	Value   commentValue `xml:"value"`
}

type commentsXML struct {
	XMLName xml.Name   `xml:"comments"`
	Comment commentXML `xml:"comment"`
}

// CommentPayload builds the XML document carried in the payload parameter of
// comment mutations. The body is emitted as CDATA; a "]]>" inside it is
// split across two CDATA sections so the document stays well-formed.
func CommentPayload(body string, mode PayloadMode) (string, error) {
	comment := commentXML{Value: commentValue{Text: body}}

	var doc any = comment
	if mode == PayloadCreate {
		doc = commentsXML{Comment: comment}
	}

	out, err := xml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return xmlDeclaration + string(out), nil
}
