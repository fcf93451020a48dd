package protocol

import (
	"bytes"
	"encoding/xml"
	"errors"
	"testing"
	"time"

	"github.com/danmuck/gsxws/internal/testutil/testlog"
)

func TestMarshalNatives(t *testing.T) {
	testlog.Start(t)
	f := Formats{Date: "02.01.06", Time: "15:04"}
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "bool true", in: true, want: "Y"},
		{name: "bool false", in: false, want: "N"},
		{name: "date with locale", in: time.Date(2013, 1, 2, 9, 30, 0, 0, time.UTC), want: "02.01.13"},
		{name: "time with locale", in: TimeOfDay(time.Date(2013, 1, 2, 9, 30, 0, 0, time.UTC)), want: "09:30"},
		{name: "int", in: 3, want: "3"},
		{name: "float", in: 2.5, want: "2.5"},
		{name: "string", in: "C02ABCDEFGH", want: "C02ABCDEFGH"},
		{name: "int32", in: int32(2), want: "2"},
		{name: "uint64", in: uint64(7), want: "7"},
		{name: "float32", in: float32(1.5), want: "1.5"},
		{name: "named string", in: partNumber("661-5245"), want: "661-5245"},
		{name: "named bool", in: flag(true), want: "Y"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Marshal(tc.in, f)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if v.Text() != tc.want {
				t.Fatalf("marshal %v got=%q want=%q", tc.in, v.Text(), tc.want)
			}
		})
	}
}

func TestMarshalUnsupported(t *testing.T) {
	testlog.Start(t)
	_, err := Marshal(map[string]any{"bad": struct{}{}}, DefaultFormats)
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Fatalf("expected ErrUnsupportedValue, got %v", err)
	}
}

type (
	partNumber string
	flag       bool
	block      map[string]any
)

func TestMarshalNamedContainers(t *testing.T) {
	testlog.Start(t)
	v, err := Marshal(map[string]any{
		"customerAddress": block{"firstName": "Jane", "zipCode": int32(10115)},
		"orderLines":      []block{{"partNumber": "661-5245"}, {"partNumber": "661-5246"}},
		"quantities":      []int{1, 2},
	}, DefaultFormats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	addr, ok := v.Get("customerAddress")
	if !ok {
		t.Fatalf("nested block missing")
	}
	m, err := addr.Map()
	if err != nil {
		t.Fatalf("nested block kind: %v", addr.Kind())
	}
	if got := m.Keys(); len(got) != 2 || got[0] != "firstName" || got[1] != "zipCode" {
		t.Fatalf("unexpected nested keys: %v", got)
	}
	if zip, _ := m.Get("zipCode"); zip.Text() != "10115" {
		t.Fatalf("unexpected zipCode: %q", zip.Text())
	}
	lines, _ := v.Get("orderLines")
	items, err := lines.List()
	if err != nil || len(items) != 2 {
		t.Fatalf("unexpected order lines: %v %v", items, err)
	}
	if pn, _ := items[1].Get("partNumber"); pn.Text() != "661-5246" {
		t.Fatalf("unexpected part number: %q", pn.Text())
	}
	qty, _ := v.Get("quantities")
	if got := qty.Items(); len(got) != 2 || got[1].Text() != "2" {
		t.Fatalf("unexpected quantities: %v", got)
	}

	if _, err := Marshal(map[int]string{1: "x"}, DefaultFormats); !errors.Is(err, ErrUnsupportedValue) {
		t.Fatalf("expected ErrUnsupportedValue for int keys, got %v", err)
	}
}

func TestEncodeXMLUnfoldsLists(t *testing.T) {
	testlog.Start(t)
	payload, err := Marshal(map[string]any{
		"shipTo": "1234",
		"orderLines": []map[string]any{
			{"partNumber": "661-1234", "quantity": 1},
			{"partNumber": "661-5678", "quantity": 2},
		},
	}, DefaultFormats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	m, _ := payload.Map()

	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if err := EncodeElement(enc, "orderData", MapOf(m)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := enc.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	want := `<orderData><orderLines><partNumber>661-1234</partNumber><quantity>1</quantity></orderLines>` +
		`<orderLines><partNumber>661-5678</partNumber><quantity>2</quantity></orderLines>` +
		`<shipTo>1234</shipTo></orderData>`
	if buf.String() != want {
		t.Fatalf("unexpected xml:\n got=%s\nwant=%s", buf.String(), want)
	}

	// folding the encoded form restores the list
	root, err := ParseNode(&buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	back, _ := Normalize(root)
	lines, _ := back.Get("orderLines")
	if len(lines.Items()) != 2 {
		t.Fatalf("expected folded order lines, got %#v", lines)
	}
}

func TestEncodeElementScalars(t *testing.T) {
	testlog.Start(t)
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	m := NewMap().
		Set("packingList", Bytes([]byte("Hello"))).
		Set("requestReviewByApple", Bool(false)).
		Set("notes", String("a < b"))
	if err := m.EncodeXML(enc); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := enc.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	want := `<packingList>SGVsbG8=</packingList><requestReviewByApple>N</requestReviewByApple><notes>a &lt; b</notes>`
	if buf.String() != want {
		t.Fatalf("unexpected xml: %s", buf.String())
	}
}
