package hashsource_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estevao-braga/ecdsacore/hashsource"
)

func TestSHA256Digest(t *testing.T) {
	msg := []byte("Bob -> 1 BTC -> Alice")
	want := sha256.Sum256(msg)
	assert.Equal(t, want[:], hashsource.SHA256{}.Digest(msg))
}
