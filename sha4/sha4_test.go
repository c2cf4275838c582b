package sha4

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	cases := []struct {
		name  string
		input string
		is384 bool
		want  string
	}{
		{
			name:  "sha512 abc",
			input: "abc",
			want: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
				"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		},
		{
			name:  "sha512 empty",
			input: "",
			want: "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce" +
				"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
		},
		{
			name:  "sha384 abc",
			input: "abc",
			is384: true,
			want:  "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7",
		},
		{
			name:  "sha384 empty",
			input: "",
			is384: true,
			want:  "38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Sum([]byte(c.input), c.is384)
			assert.Equal(t, c.want, hex.EncodeToString(got))
		})
	}
}

func TestDigestSizes(t *testing.T) {
	assert.Len(t, Sum(nil, false), Size)
	assert.Len(t, Sum(nil, true), Size384)
	assert.Equal(t, Size, New(false).Size())
	assert.Equal(t, Size384, New(true).Size())
}

func TestIncremental(t *testing.T) {
	h := New(false)
	_, err := h.Write([]byte("ab"))
	require.NoError(t, err)
	_, err = h.Write([]byte("c"))
	require.NoError(t, err)
	assert.Equal(t, Sum([]byte("abc"), false), h.Sum(nil), "split writes match the one-shot digest")
}

func TestHMAC(t *testing.T) {
	key := []byte("key")
	msg := []byte("The quick brown fox jumps over the lazy dog")

	got := HMAC(key, msg, false)
	assert.Equal(t,
		"b42af09057bac1e2d41708e48a902e09b5ff7f12ab428a4fe86653c73dd248fb"+
			"82f948a549f7b791a5b41915ee4d1ec3935357e4e2317250d0372afa2ebeeb3a",
		hex.EncodeToString(got))

	got = HMAC(key, msg, true)
	assert.Equal(t,
		"d7f4727e2c0b39ae0f1e40cc96f60242d5b7801841cea6fc592c5d3e1ae50700582a96cf35e1e554995fe4e03381c237",
		hex.EncodeToString(got))
}

func TestHMACIncremental(t *testing.T) {
	key := []byte("key")
	msg := []byte("The quick brown fox jumps over the lazy dog")

	h := NewHMAC(key, false)
	_, err := h.Write(msg[:20])
	require.NoError(t, err)
	_, err = h.Write(msg[20:])
	require.NoError(t, err)
	assert.Equal(t, HMAC(key, msg, false), h.Sum(nil))
}
