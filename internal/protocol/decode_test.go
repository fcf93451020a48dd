package protocol

import (
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/gsxws/internal/testutil/testlog"
)

const soapResponse = `<?xml version="1.0" encoding="UTF-8"?>
<S:Envelope xmlns:S="http://schemas.xmlsoap.org/soap/envelope/">
  <S:Body>
    <ns2:ReturnLabelResponse xmlns:ns2="http://gsxws.apple.com/elements/global">
      <returnLabelData>
        <returnOrderNumber>7123456789</returnOrderNumber>
        <returnLabelFileData>SGVsbG8=</returnLabelFileData>
      </returnLabelData>
    </ns2:ReturnLabelResponse>
  </S:Body>
</S:Envelope>`

func TestParseNodeStripsNamespaces(t *testing.T) {
	testlog.Start(t)
	root, err := ParseNode(strings.NewReader(soapResponse))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if root.Tag != "Envelope" {
		t.Fatalf("unexpected root tag: %q", root.Tag)
	}
	if root.Text != "" {
		t.Fatalf("internal node should drop whitespace text, got %q", root.Text)
	}
	label := root.Find("returnLabelData")
	if label == nil {
		t.Fatalf("missing returnLabelData")
	}
	if n := label.Child("returnOrderNumber"); n == nil || n.Text != "7123456789" {
		t.Fatalf("unexpected return order node: %+v", n)
	}
}

func TestFindAllDocumentOrder(t *testing.T) {
	testlog.Start(t)
	root, err := ParseNode(strings.NewReader(`<a><g>1</g><b><g>2</g></b><g>3</g></a>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var got []string
	for _, n := range root.FindAll("g") {
		got = append(got, n.Text)
	}
	if strings.Join(got, ",") != "1,2,3" {
		t.Fatalf("unexpected order: %v", got)
	}
	if root.Find("missing") != nil {
		t.Fatalf("expected nil for missing tag")
	}
}

func TestParseNodeErrors(t *testing.T) {
	testlog.Start(t)
	if _, err := ParseNode(strings.NewReader("")); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
	if _, err := ParseNode(strings.NewReader("<a><b></a>")); !errors.Is(err, ErrMalformedXML) {
		t.Fatalf("expected ErrMalformedXML, got %v", err)
	}
}
