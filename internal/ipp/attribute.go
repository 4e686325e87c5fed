package ipp

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Value tags for operation attributes (RFC 8010 section 3.5.2)
const (
	TagInteger         = 0x21
	TagName            = 0x42
	TagURI             = 0x45
	TagCharset         = 0x47
	TagNaturalLanguage = 0x48
)

// maxFieldLen is the largest name or value an attribute can carry; the wire
// format encodes both lengths as unsigned 16-bit integers.
const maxFieldLen = 0xFFFF

// Attribute is a single tagged name/value pair in the operation attributes
// group. Construct attributes through the typed constructor functions rather
// than filling the struct directly; the constructors pick the correct tag
// and value encoding.
type Attribute struct {
	Tag   byte
	Name  string
	Value []byte
}

// Charset builds the mandatory attributes-charset attribute.
func Charset(value string) Attribute {
	return Attribute{Tag: TagCharset, Name: "attributes-charset", Value: []byte(value)}
}

// NaturalLanguage builds the mandatory attributes-natural-language attribute.
func NaturalLanguage(value string) Attribute {
	return Attribute{Tag: TagNaturalLanguage, Name: "attributes-natural-language", Value: []byte(value)}
}

// URIAttribute builds a URI-valued attribute such as printer-uri or job-uri.
func URIAttribute(name, uri string) Attribute {
	return Attribute{Tag: TagURI, Name: name, Value: []byte(uri)}
}

// NameAttribute builds a name-valued attribute such as requesting-user-name.
func NameAttribute(name, value string) Attribute {
	return Attribute{Tag: TagName, Name: name, Value: []byte(value)}
}

// IntegerAttribute builds an integer-valued attribute such as job-id. The
// value is encoded as a 4-byte big-endian two's-complement integer.
func IntegerAttribute(name string, value int32) Attribute {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(value))
	return Attribute{Tag: TagInteger, Name: name, Value: buf}
}

// Int returns the attribute value decoded as a 32-bit signed integer.
// Valid only for TagInteger attributes with a 4-byte value.
func (a Attribute) Int() (int32, error) {
	if a.Tag != TagInteger || len(a.Value) != 4 {
		return 0, fmt.Errorf("attribute %q is not a 4-byte integer", a.Name)
	}
	return int32(binary.BigEndian.Uint32(a.Value)), nil
}

// encode appends the attribute in tag-length-value form:
// tag(1) nameLen(2,BE) name valueLen(2,BE) value.
func (a Attribute) encode(buf *bytes.Buffer) error {
	if len(a.Name) > maxFieldLen {
		return NewEncodingError(fmt.Sprintf("attribute name is %d bytes, limit is %d", len(a.Name), maxFieldLen))
	}
	if len(a.Value) > maxFieldLen {
		return NewEncodingError(fmt.Sprintf("attribute %q value is %d bytes, limit is %d", a.Name, len(a.Value), maxFieldLen))
	}

	buf.WriteByte(a.Tag)

	var lenField [2]byte
	binary.BigEndian.PutUint16(lenField[:], uint16(len(a.Name)))
	buf.Write(lenField[:])
	buf.WriteString(a.Name)

	binary.BigEndian.PutUint16(lenField[:], uint16(len(a.Value)))
	buf.Write(lenField[:])
	buf.Write(a.Value)

	return nil
}

// DecodeAttribute reads one tag-length-value attribute from data and returns
// it along with the number of bytes consumed. It is the inverse of encode and
// is used to verify constructed packets.
func DecodeAttribute(data []byte) (Attribute, int, error) {
	if len(data) < 3 {
		return Attribute{}, 0, fmt.Errorf("attribute truncated: %d bytes", len(data))
	}

	tag := data[0]
	nameLen := int(binary.BigEndian.Uint16(data[1:3]))
	off := 3

	if len(data) < off+nameLen+2 {
		return Attribute{}, 0, fmt.Errorf("attribute name truncated")
	}
	name := string(data[off : off+nameLen])
	off += nameLen

	valueLen := int(binary.BigEndian.Uint16(data[off : off+2]))
	off += 2

	if len(data) < off+valueLen {
		return Attribute{}, 0, fmt.Errorf("attribute value truncated")
	}
	value := make([]byte, valueLen)
	copy(value, data[off:off+valueLen])
	off += valueLen

	return Attribute{Tag: tag, Name: name, Value: value}, off, nil
}
