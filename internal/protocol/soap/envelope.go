package soap

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/danmuck/gsxws/internal/protocol"
)

const (
	EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	DefaultNamespace  = "http://gsxws.apple.com/elements/global"
)

// Request is one outbound operation call.
type Request struct {
	Operation string
	// Session is the user session id; empty before authentication.
	Session string
	Body    *protocol.Map
}

func name(local string) xml.Name {
	return xml.Name{Local: local}
}

// EncodeEnvelope writes req as a SOAP envelope. The operation element wraps a
// single <{Operation}Request> holding the session block and the body fields.
func EncodeEnvelope(w io.Writer, namespace string, req Request) error {
	if req.Operation == "" {
		return ErrOperationMissing
	}
	enc := xml.NewEncoder(w)
	envelope := xml.StartElement{
		Name: name("soapenv:Envelope"),
		Attr: []xml.Attr{
			{Name: name("xmlns:soapenv"), Value: EnvelopeNamespace},
			{Name: name("xmlns:gsx"), Value: namespace},
		},
	}
	header := xml.StartElement{Name: name("soapenv:Header")}
	body := xml.StartElement{Name: name("soapenv:Body")}
	op := xml.StartElement{Name: name("gsx:" + req.Operation)}
	request := xml.StartElement{Name: name(req.Operation + "Request")}

	for _, tok := range []xml.Token{envelope, header, header.End(), body, op, request} {
		if err := enc.EncodeToken(tok); err != nil {
			return err
		}
	}
	if req.Session != "" {
		sess := protocol.NewMap().Set("userSessionId", protocol.String(req.Session))
		if err := protocol.EncodeElement(enc, "userSession", protocol.MapOf(sess)); err != nil {
			return err
		}
	}
	if req.Body != nil {
		if err := req.Body.EncodeXML(enc); err != nil {
			return err
		}
	}
	for _, tok := range []xml.Token{request.End(), op.End(), body.End(), envelope.End()} {
		if err := enc.EncodeToken(tok); err != nil {
			return err
		}
	}
	return enc.Flush()
}

// DecodeEnvelope reads a SOAP response and returns the first element inside
// Body. A Fault element is returned as *Fault.
func DecodeEnvelope(r io.Reader) (*protocol.Node, error) {
	root, err := protocol.ParseNode(r)
	if err != nil {
		return nil, err
	}
	body := root.Child("Body")
	if body == nil || len(body.Children) == 0 {
		return nil, ErrNoBody
	}
	if f := body.Child("Fault"); f != nil {
		return nil, decodeFault(f)
	}
	return body.Children[0], nil
}

func decodeFault(n *protocol.Node) *Fault {
	f := &Fault{}
	if c := n.Child("faultcode"); c != nil {
		f.Code = c.Text
	}
	if s := n.Child("faultstring"); s != nil {
		f.String = s.Text
	}
	if d := n.Child("detail"); d != nil {
		f.Detail = flatten(d)
	}
	return f
}

func flatten(n *protocol.Node) string {
	if n.IsLeaf() {
		return n.Text
	}
	var out string
	for _, c := range n.Children {
		if s := flatten(c); s != "" {
			if out != "" {
				out += "; "
			}
			out += fmt.Sprintf("%s=%s", c.Tag, s)
		}
	}
	return out
}
