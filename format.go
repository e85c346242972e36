package pgpframe

// Format is the header style of an OpenPGP packet. RFC 4880 defines two:
// the old (pre-RFC 2440) format and the new format. The format only
// selects the decoding path; it is not retained on the decoded Packet,
// and Serialize always emits the new format.
type Format byte

const (
	FormatOld Format = 0
	FormatNew Format = 0x40
)

func (f Format) String() string {
	switch f {
	case FormatOld:
		return "old"
	case FormatNew:
		return "new"
	}
	return "<invalid>"
}

func headerFormat(tagbyte byte) Format {
	return Format(tagbyte & 0x40)
}
