package hexf

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/tekert/golang-cfgmgr/internal/test"
)

func TestEncodeToString(t *testing.T) {
	t.Parallel()

	tt := test.FromT(t)

	cases := [][]byte{
		nil,
		{0x00},
		{0xde, 0xad, 0xbe, 0xef},
		{0x00, 0x01, 0x0f, 0xf0, 0xff},
	}

	for _, c := range cases {
		want := hex.EncodeToString(c)
		tt.Assertf(EncodeToString(c) == want, "EncodeToString(% x) != %q", c, want)
		tt.Assertf(EncodeToStringU(c) == strings.ToUpper(want), "EncodeToStringU(% x) != %q", c, strings.ToUpper(want))
		tt.Assertf(EncodeToStringPrefix(c) == "0x"+want, "EncodeToStringPrefix(% x) != %q", c, "0x"+want)
	}
}

func TestEncodeBuffer(t *testing.T) {
	t.Parallel()

	tt := test.FromT(t)

	src := []byte{0x12, 0xab}
	var dst [4]byte
	test.Eq(tt, EncodeU(dst[:], src), 4)
	test.Eq(tt, string(dst[:]), "12AB")

	test.Eq(tt, Encode(dst[:], src), 4)
	test.Eq(tt, string(dst[:]), "12ab")
}
