package ipp

import (
	"bytes"
	"encoding/binary"
)

// Delimiter tags framing the operation attributes group (RFC 8010 section 3.5.1)
const (
	tagOperationAttributes = 0x01
	tagEndOfAttributes     = 0x03
)

// Transmitted protocol version. The two bytes on the wire are the major/minor
// pair {2, 0} (IPP/2.0); CUPS accepts 2.0 since release 1.4. Keep both bytes
// in lockstep with the documentation above - compliant servers reject
// versions they do not recognize with client-error-version-not-supported.
const (
	versionMajor = 2
	versionMinor = 0
)

// Mandatory leading attribute values (RFC 8011 section 4.1.4.1)
const (
	charsetUTF8     = "utf-8"
	naturalLanguage = "en"
)

// BuildRequest assembles a complete IPP request packet: version, operation
// code, request id, the operation-attributes group, and the end-of-attributes
// marker. The mandatory attributes-charset and attributes-natural-language
// attributes are always emitted first, in that order, before attrs; callers
// supply only the target (printer-uri, or job-uri and job-id) and optional
// attributes such as requesting-user-name, and must not repeat the mandatory
// pair.
//
// The builder performs no I/O. It fails only when an attribute name or value
// cannot be represented in the 16-bit length field.
func BuildRequest(op Operation, requestID uint32, attrs []Attribute) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte(versionMajor)
	buf.WriteByte(versionMinor)

	var u16 [2]byte
	binary.BigEndian.PutUint16(u16[:], uint16(op))
	buf.Write(u16[:])

	var u32 [4]byte
	binary.BigEndian.PutUint32(u32[:], requestID)
	buf.Write(u32[:])

	buf.WriteByte(tagOperationAttributes)

	if err := Charset(charsetUTF8).encode(&buf); err != nil {
		return nil, err
	}
	if err := NaturalLanguage(naturalLanguage).encode(&buf); err != nil {
		return nil, err
	}

	for _, attr := range attrs {
		if err := attr.encode(&buf); err != nil {
			return nil, err
		}
	}

	buf.WriteByte(tagEndOfAttributes)

	return buf.Bytes(), nil
}
