//go:build windows
// +build windows

package cfgmgr

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
	"time"
	"unicode/utf16"

	"github.com/0xrawsec/toast"
)

// u16bytes encodes s as UTF-16LE with a trailing NUL, the way the native
// property store holds string buffers.
func u16bytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	units = append(units, 0)
	out := make([]byte, 0, len(units)*2)
	for _, u := range units {
		out = binary.LittleEndian.AppendUint16(out, u)
	}
	return out
}

func u16list(ss ...string) []byte {
	var out []byte
	for _, s := range ss {
		out = append(out, u16bytes(s)...)
	}
	// list terminator
	return append(out, 0, 0)
}

var testKey = DevPropKey{FmtID: *MustParseGUID("{78c34fc8-104a-4aca-9ea4-524d52996e57}"), PID: 256}

func TestPropertyString(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	p := NewProperty(testKey, DEVPROP_TYPE_STRING, u16bytes("USB Root Hub"))
	s, err := p.GetString()
	tt.CheckErr(err)
	tt.Assert(s == "USB Root Hub")

	// decoding must be repeatable
	s, err = p.GetString()
	tt.CheckErr(err)
	tt.Assert(s == "USB Root Hub")

	// empty string property: a single NUL, still present
	p = NewProperty(testKey, DEVPROP_TYPE_STRING, u16bytes(""))
	s, err = p.GetString()
	tt.CheckErr(err)
	tt.Assert(s == "")

	// zero sized buffer is valid for STRING too
	p = NewProperty(testKey, DEVPROP_TYPE_STRING, nil)
	s, err = p.GetString()
	tt.CheckErr(err)
	tt.Assert(s == "")

	// odd buffer cannot hold UTF-16
	p = NewProperty(testKey, DEVPROP_TYPE_STRING, []byte{0x41})
	_, err = p.GetString()
	tt.Assert(err != nil)

	// wrong type tag
	p = NewProperty(testKey, DEVPROP_TYPE_UINT32, u16bytes("nope"))
	_, err = p.GetString()
	tt.Assert(err != nil)
}

func TestPropertyStrings(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	p := NewProperty(testKey, DEVPROP_TYPE_STRING_LIST,
		u16list(`USB\VID_8087&PID_0029&REV_0001`, `USB\VID_8087&PID_0029`))
	ss, err := p.GetStrings()
	tt.CheckErr(err)
	tt.Assert(len(ss) == 2)
	tt.Assert(ss[0] == `USB\VID_8087&PID_0029&REV_0001`)
	tt.Assert(ss[1] == `USB\VID_8087&PID_0029`)

	// empty list: just the terminator
	p = NewProperty(testKey, DEVPROP_TYPE_STRING_LIST, []byte{0, 0})
	ss, err = p.GetStrings()
	tt.CheckErr(err)
	tt.Assert(len(ss) == 0)

	p = NewProperty(testKey, DEVPROP_TYPE_STRING, u16bytes("single"))
	_, err = p.GetStrings()
	tt.Assert(err != nil)
}

func TestPropertyBool(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	// DEVPROP_TRUE is 0xFF on the wire
	p := NewProperty(testKey, DEVPROP_TYPE_BOOLEAN, []byte{0xFF})
	b, err := p.GetBool()
	tt.CheckErr(err)
	tt.Assert(b)

	p = NewProperty(testKey, DEVPROP_TYPE_BOOLEAN, []byte{0x00})
	b, err = p.GetBool()
	tt.CheckErr(err)
	tt.Assert(!b)

	p = NewProperty(testKey, DEVPROP_TYPE_BOOLEAN, []byte{0x01, 0x00})
	_, err = p.GetBool()
	tt.Assert(err != nil)
}

func TestPropertyScalars(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	le := binary.LittleEndian

	p := NewProperty(testKey, DEVPROP_TYPE_SBYTE, []byte{0xFF})
	i, err := p.GetInt()
	tt.CheckErr(err)
	tt.Assert(i == -1)

	buf := make([]byte, 4)
	le.PutUint32(buf, 0xFFFFFFFE)
	p = NewProperty(testKey, DEVPROP_TYPE_INT32, buf)
	i, err = p.GetInt()
	tt.CheckErr(err)
	tt.Assert(i == -2)

	p = NewProperty(testKey, DEVPROP_TYPE_UINT32, buf)
	u, err := p.GetUInt()
	tt.CheckErr(err)
	tt.Assert(u == 0xFFFFFFFE)
	u32, err := p.GetUint32()
	tt.CheckErr(err)
	tt.Assert(u32 == 0xFFFFFFFE)

	buf = make([]byte, 8)
	le.PutUint64(buf, 1<<42)
	p = NewProperty(testKey, DEVPROP_TYPE_UINT64, buf)
	u, err = p.GetUInt()
	tt.CheckErr(err)
	tt.Assert(u == 1<<42)

	// truncated buffer
	p = NewProperty(testKey, DEVPROP_TYPE_UINT32, buf[:2])
	_, err = p.GetUInt()
	tt.Assert(err != nil)
}

func TestPropertyGUID(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	g := MustParseGUID("{4d36e972-e325-11ce-bfc1-08002be10318}")
	raw := g.Bytes()
	p := NewProperty(testKey, DEVPROP_TYPE_GUID, raw[:])
	got, err := p.GetGUID()
	tt.CheckErr(err)
	tt.Assert(got.Equals(g))

	// Format must render the braced GUID string, not the struct fields
	tt.Assert(p.Format() == g.String())

	p = NewProperty(testKey, DEVPROP_TYPE_GUID, raw[:12])
	_, err = p.GetGUID()
	tt.Assert(err != nil)
}

func TestPropertyTime(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	// 2021-01-01T00:00:00Z as FILETIME ticks
	want := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := uint64(want.Unix()+EPOCH_DIFF) * TICKS_PER_SECOND
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, ticks)

	p := NewProperty(testKey, DEVPROP_TYPE_FILETIME, buf)
	ts, err := p.GetTime()
	tt.CheckErr(err)
	tt.Assert(ts.UTC().Equal(want))
}

func TestPropertyPropKey(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	raw := DEVPKEY_Device_ClassGuid.FmtID.Bytes()
	buf := append([]byte{}, raw[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, DEVPKEY_Device_ClassGuid.PID)

	p := NewProperty(testKey, DEVPROP_TYPE_DEVPROPKEY, buf)
	k, err := p.GetPropKey()
	tt.CheckErr(err)
	tt.Assert(k == DEVPKEY_Device_ClassGuid)
}

func TestPropertyValue(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	// EMPTY and NULL decode to nil
	for _, typ := range []DevPropType{DEVPROP_TYPE_EMPTY, DEVPROP_TYPE_NULL} {
		p := NewProperty(testKey, typ, nil)
		v, err := p.Value()
		tt.CheckErr(err)
		tt.Assert(v == nil)
	}

	p := NewProperty(testKey, DEVPROP_TYPE_STRING, u16bytes("hello"))
	v, err := p.Value()
	tt.CheckErr(err)
	tt.Assert(v.(string) == "hello")
	tt.Assert(p.Format() == "hello")

	// unknown tags fall back to the raw buffer instead of failing
	raw := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	p = NewProperty(testKey, DEVPROP_TYPE_BINARY, raw)
	v, err = p.Value()
	tt.CheckErr(err)
	tt.Assert(bytes.Equal(v.([]byte), raw))
	tt.Assert(p.Format() == "0xdeadbeef")

	p = NewProperty(testKey, DevPropType(0x0FFE), raw)
	v, err = p.Value()
	tt.CheckErr(err)
	tt.Assert(bytes.Equal(v.([]byte), raw))
}

func TestPropertyImmutable(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	raw := u16bytes("owned")
	p := NewProperty(testKey, DEVPROP_TYPE_STRING, raw)
	// caller scribbling on its buffer must not reach the property
	raw[0] = 0xFF
	s, err := p.GetString()
	tt.CheckErr(err)
	tt.Assert(s == "owned")

	// and Bytes hands out a copy
	b := p.Bytes()
	b[0] = 0xFF
	s, err = p.GetString()
	tt.CheckErr(err)
	tt.Assert(s == "owned")
}

func TestDevPropKeyString(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	s := DEVPKEY_Device_InstanceId.String()
	tt.Assert(strings.EqualFold(s, "{78c34fc8-104a-4aca-9ea4-524d52996e57},256"))
}

func TestDevPropTypeString(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	tt.Assert(DEVPROP_TYPE_STRING.String() == "STRING")
	tt.Assert(DevPropType(0x0FFE).String() == "DEVPROPTYPE(0x0FFE)")
	tt.Assert(DEVPROP_TYPE_STRING_LIST.Base() == DEVPROP_TYPE_STRING)
	tt.Assert(DEVPROP_TYPE_BOOLEAN.Base() == DEVPROP_TYPE_BOOLEAN)
}
