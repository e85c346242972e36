package pgpframe

import (
	"fmt"
	"io"
	"math"
)

// Packet is one framed OpenPGP unit: a tag plus its content bytes.
//
// The content slice is a view into the buffer the packet was decoded
// from; no copy is made. The caller must keep that buffer alive for as
// long as the Packet is in use, or copy Contents() if it needs
// independent ownership. A Packet is immutable after construction.
type Packet struct {
	tag    Tag
	buffer []byte
}

var errInvalidTag = fmt.Errorf("pgpframe: tag must be in range [1, 63]")

// NewPacket creates a packet for serialization. The tag must be in
// [1, 63]; tag 0 is reserved. The contents slice is borrowed, not copied.
func NewPacket(tag Tag, contents []byte) (*Packet, error) {
	if tag == 0 || tag > 0x3F {
		return nil, errInvalidTag
	}
	return &Packet{tag: tag, buffer: contents}, nil
}

// Tag returns the packet's tag, masked to 6 bits. Always nonzero for a
// decoded packet.
func (p *Packet) Tag() Tag {
	return p.tag & 0x3F
}

// Contents returns the packet's content bytes without copying.
func (p *Packet) Contents() []byte {
	return p.buffer
}

// Serialize wraps the packet in OpenPGP framing. The output is always
// new format, regardless of the format the packet was decoded from; only
// the tag and contents round-trip. Contents longer than 2^32-1 bytes
// cannot be represented in OpenPGP framing, and Serialize panics.
func (p *Packet) Serialize() []byte {
	length := len(p.buffer)
	if uint64(length) > math.MaxUint32 {
		panic("pgpframe: contents too long for OpenPGP framing")
	}
	tagByte := byte(p.Tag()) | 0b1100_0000

	var out []byte
	switch {
	case length < 192:
		// 1-byte length
		out = make([]byte, 0, 2+length)
		out = append(out, tagByte, byte(length))
	case length < 8384:
		// 2-byte length
		l := length - 192
		out = make([]byte, 0, 3+length)
		out = append(out, tagByte, byte(l>>8)+192, byte(l))
	default:
		// 5-byte length
		out = make([]byte, 0, 6+length)
		out = append(out, tagByte, 0xFF,
			byte(length>>24), byte(length>>16), byte(length>>8), byte(length))
	}
	return append(out, p.buffer...)
}

// WriteTo implements io.WriterTo over the serialized form.
func (p *Packet) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Serialize())
	return int64(n), err
}
