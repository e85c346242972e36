package pgpframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagString(t *testing.T) {
	assert.Equal(t, "Signature", TagSignature.String())
	assert.Equal(t, "User ID", TagUserID.String())
	assert.Equal(t, "Private/Experimental", Tag(60).String())
	assert.Equal(t, "Private/Experimental", Tag(63).String())
	assert.Equal(t, "Unknown", Tag(42).String())
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "old", FormatOld.String())
	assert.Equal(t, "new", FormatNew.String())
	assert.Equal(t, "<invalid>", Format(1).String())
}
