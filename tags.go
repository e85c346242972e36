package pgpframe

// Tag identifies a packet's semantic type. Tag 0 is reserved by RFC 4880
// and never assigned; decoding it is an error. This package names tags
// for diagnostics but never interprets packet payloads.
type Tag byte

// Packet tags from RFC 4880, section 4.3.
const (
	TagPublicKeyEncryptedSessionKey       Tag = 1
	TagSignature                          Tag = 2
	TagSymmetricKeyEncryptedSessionKey    Tag = 3
	TagOnePassSignature                   Tag = 4
	TagSecretKey                          Tag = 5
	TagPublicKey                          Tag = 6
	TagSecretSubkey                       Tag = 7
	TagCompressedData                     Tag = 8
	TagSymmetricallyEncryptedData         Tag = 9
	TagMarker                             Tag = 10
	TagLiteralData                        Tag = 11
	TagTrust                              Tag = 12
	TagUserID                             Tag = 13
	TagPublicSubkey                       Tag = 14
	TagUserAttribute                      Tag = 17
	TagSymEncryptedIntegrityProtectedData Tag = 18
	TagModificationDetectionCode          Tag = 19
)

func (t Tag) String() string {
	switch t {
	case TagPublicKeyEncryptedSessionKey:
		return "Public-Key Encrypted Session Key"
	case TagSignature:
		return "Signature"
	case TagSymmetricKeyEncryptedSessionKey:
		return "Symmetric-Key Encrypted Session Key"
	case TagOnePassSignature:
		return "One-Pass Signature"
	case TagSecretKey:
		return "Secret-Key"
	case TagPublicKey:
		return "Public-Key"
	case TagSecretSubkey:
		return "Secret-Subkey"
	case TagCompressedData:
		return "Compressed Data"
	case TagSymmetricallyEncryptedData:
		return "Symmetrically Encrypted Data"
	case TagMarker:
		return "Marker"
	case TagLiteralData:
		return "Literal Data"
	case TagTrust:
		return "Trust"
	case TagUserID:
		return "User ID"
	case TagPublicSubkey:
		return "Public-Subkey"
	case TagUserAttribute:
		return "User Attribute"
	case TagSymEncryptedIntegrityProtectedData:
		return "Sym. Encrypted and Integrity Protected Data"
	case TagModificationDetectionCode:
		return "Modification Detection Code"
	}
	if t >= 60 && t <= 63 {
		return "Private/Experimental"
	}
	return "Unknown"
}
