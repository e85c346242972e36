package pgpframe

import "io"

// readVarlenBytes decodes a new-format length field and the content
// bytes it declares. The leading keybyte selects the length form:
// 0-191 is the length itself, 192-223 starts a 2-byte form, 255 starts
// a 5-byte form. Keybytes 224-254 are partial body lengths; those imply
// streamed payloads this toolchain does not process, so they fail with
// ErrPartialLength before any content is read.
func readVarlenBytes(r *Reader) ([]byte, error) {
	keybyte, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	var length int
	switch {
	case keybyte < 192:
		length = int(keybyte)
	case keybyte < 224:
		next, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		length = (int(keybyte)-192)<<8 + int(next) + 192
	case keybyte == 255:
		l, err := r.ReadBeUint32()
		if err != nil {
			return nil, err
		}
		length = int(l)
	default:
		return nil, ErrPartialLength
	}
	return r.ReadBytes(length)
}

// Next reads one packet from r. It returns io.EOF if r is already
// exhausted; this is the only non-failing way to observe end of input.
// On success the cursor has advanced exactly past the packet's header
// and contents. The returned packet borrows from r's underlying buffer.
func Next(r *Reader) (*Packet, error) {
	tagbyte, ok := r.MaybeByte()
	if !ok {
		return nil, io.EOF
	}
	if tagbyte&0x80 == 0 {
		return nil, ErrFirstBitZero
	}

	var packet *Packet
	if headerFormat(tagbyte) == FormatOld {
		lenlen := 1 << (tagbyte & 0b11)
		// The 8-byte selector is the indefinite-length form.
		if lenlen > 4 {
			return nil, ErrPartialLength
		}
		lenBytes, err := r.ReadBytes(lenlen)
		if err != nil {
			return nil, err
		}
		length := 0
		for _, b := range lenBytes {
			length = length<<8 | int(b)
		}
		buffer, err := r.ReadBytes(length)
		if err != nil {
			return nil, err
		}
		packet = &Packet{tag: Tag(tagbyte>>2) & 0xF, buffer: buffer}
	} else {
		buffer, err := readVarlenBytes(r)
		if err != nil {
			return nil, err
		}
		packet = &Packet{tag: Tag(tagbyte & 0x3F), buffer: buffer}
	}

	if packet.tag == 0 {
		return nil, ErrBadTag
	}
	return packet, nil
}

// ReadAll decodes every packet in data. The returned packets borrow
// from data.
func ReadAll(data []byte) ([]*Packet, error) {
	var packets []*Packet
	r := NewReader(data)
	for {
		packet, err := Next(r)
		if err == io.EOF {
			return packets, nil
		}
		if err != nil {
			return nil, err
		}
		packets = append(packets, packet)
	}
}
