package obfuscate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecode(t *testing.T) {
	assert.Equal(t, "2025-09-20", Decode(Encode("2025-09-20")))
	assert.Equal(t, "hofbrau", Decode(Encode("hofbrau")))
}

func TestDecode_RawFallback(t *testing.T) {
	// Невалидный base64 возвращается как есть
	assert.Equal(t, "2025-09-20", Decode("2025-09-20"))
	assert.Equal(t, "kein base64!", Decode("kein base64!"))
}

func TestEncode_NotReadable(t *testing.T) {
	assert.NotEqual(t, "2025-09-20", Encode("2025-09-20"))
}
