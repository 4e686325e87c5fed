package ipp

import (
	"bytes"
	"strings"
	"testing"
)

func TestAttributeConstructors(t *testing.T) {
	tests := []struct {
		name     string
		attr     Attribute
		wantTag  byte
		wantName string
		wantVal  []byte
	}{
		{
			name:     "charset",
			attr:     Charset("utf-8"),
			wantTag:  TagCharset,
			wantName: "attributes-charset",
			wantVal:  []byte("utf-8"),
		},
		{
			name:     "natural language",
			attr:     NaturalLanguage("en"),
			wantTag:  TagNaturalLanguage,
			wantName: "attributes-natural-language",
			wantVal:  []byte("en"),
		},
		{
			name:     "printer uri",
			attr:     URIAttribute("printer-uri", "ipp://printer.local:631/ipp/print"),
			wantTag:  TagURI,
			wantName: "printer-uri",
			wantVal:  []byte("ipp://printer.local:631/ipp/print"),
		},
		{
			name:     "requesting user",
			attr:     NameAttribute("requesting-user-name", "alice"),
			wantTag:  TagName,
			wantName: "requesting-user-name",
			wantVal:  []byte("alice"),
		},
		{
			name:     "job id",
			attr:     IntegerAttribute("job-id", 42),
			wantTag:  TagInteger,
			wantName: "job-id",
			wantVal:  []byte{0x00, 0x00, 0x00, 0x2A},
		},
		{
			name:     "negative integer",
			attr:     IntegerAttribute("job-id", -1),
			wantTag:  TagInteger,
			wantName: "job-id",
			wantVal:  []byte{0xFF, 0xFF, 0xFF, 0xFF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Tag != tt.wantTag {
				t.Errorf("Tag = 0x%02x, want 0x%02x", tt.attr.Tag, tt.wantTag)
			}
			if tt.attr.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tt.attr.Name, tt.wantName)
			}
			if !bytes.Equal(tt.attr.Value, tt.wantVal) {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.wantVal)
			}
		})
	}
}

func TestAttributeEncodeLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := Charset("utf-8").encode(&buf); err != nil {
		t.Fatalf("encode() error = %v", err)
	}

	want := []byte{
		0x47,       // charset tag
		0x00, 0x12, // name length 18
	}
	want = append(want, []byte("attributes-charset")...)
	want = append(want, 0x00, 0x05)
	want = append(want, []byte("utf-8")...)

	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("encode() = %v, want %v", buf.Bytes(), want)
	}
}

func TestAttributeRoundTrip(t *testing.T) {
	attrs := []Attribute{
		Charset("utf-8"),
		NaturalLanguage("en"),
		URIAttribute("job-uri", "ipps://cups.lan:631/printers/office/7"),
		NameAttribute("requesting-user-name", "bob"),
		IntegerAttribute("job-id", 7),
		NameAttribute("big", strings.Repeat("x", 0xFFFF)), // largest representable value
	}

	for _, attr := range attrs {
		var buf bytes.Buffer
		if err := attr.encode(&buf); err != nil {
			t.Fatalf("encode(%q) error = %v", attr.Name, err)
		}

		decoded, n, err := DecodeAttribute(buf.Bytes())
		if err != nil {
			t.Fatalf("DecodeAttribute(%q) error = %v", attr.Name, err)
		}
		if n != buf.Len() {
			t.Errorf("DecodeAttribute(%q) consumed %d bytes, want %d", attr.Name, n, buf.Len())
		}
		if decoded.Tag != attr.Tag || decoded.Name != attr.Name || !bytes.Equal(decoded.Value, attr.Value) {
			t.Errorf("round trip of %q lost data: got %+v", attr.Name, decoded)
		}
	}
}

func TestAttributeEncodeOversize(t *testing.T) {
	tests := []struct {
		name string
		attr Attribute
	}{
		{
			name: "value too long",
			attr: NameAttribute("requesting-user-name", strings.Repeat("x", 0x10000)),
		},
		{
			name: "name too long",
			attr: Attribute{Tag: TagName, Name: strings.Repeat("n", 0x10000), Value: []byte("v")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := tt.attr.encode(&buf)
			if err == nil {
				t.Fatal("encode() should fail for oversize field")
			}
			if !IsEncodingError(err) {
				t.Errorf("encode() error should be an encoding error, got %v", err)
			}
		})
	}
}

func TestAttributeInt(t *testing.T) {
	v, err := IntegerAttribute("job-id", 42).Int()
	if err != nil {
		t.Fatalf("Int() error = %v", err)
	}
	if v != 42 {
		t.Errorf("Int() = %d, want 42", v)
	}

	if _, err := NameAttribute("requesting-user-name", "alice").Int(); err == nil {
		t.Error("Int() should fail for a non-integer attribute")
	}
}

func TestDecodeAttributeTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := Charset("utf-8").encode(&buf); err != nil {
		t.Fatalf("encode() error = %v", err)
	}

	for n := 0; n < buf.Len(); n++ {
		if _, _, err := DecodeAttribute(buf.Bytes()[:n]); err == nil {
			t.Errorf("DecodeAttribute() should fail on %d-byte prefix", n)
		}
	}
}
