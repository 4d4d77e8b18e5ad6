//go:build windows
// +build windows

package cfgmgr

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tekert/golang-cfgmgr/cfgmgr/pkg/hexf"
)

const (
	nullGUIDStr = "{00000000-0000-0000-0000-000000000000}"
)

var (
	nullGUID = GUID{}
)

/*
typedef struct _GUID {
	DWORD Data1;
	WORD Data2;
	WORD Data3;
	BYTE Data4[8];
} GUID;
*/

// GUID structure, layout compatible with the native GUID so pointers to it
// can be passed to cfgmgr32 calls directly.
// Example: {4D36E972-E325-11CE-BFC1-08002BE10318} =
// GUID(0x4d36e972, 0xe325, 0x11ce, [8]byte{0xbf, 0xc1, 0x08, 0x00, 0x2b, 0xe1, 0x03, 0x18})
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// IsZero checks if GUID is all zeros
func (g *GUID) IsZero() bool {
	return g.Equals(&nullGUID)
}

// UPPERCASE String representation of the GUID
func (g *GUID) String() string {
	var b [38]byte
	b[0] = '{'
	b[37] = '}'

	// Avoid slice allocations
	var d1 [4]byte
	binary.BigEndian.PutUint32(d1[:], g.Data1)

	var d2 [2]byte
	binary.BigEndian.PutUint16(d2[:], g.Data2)

	var d3 [2]byte
	binary.BigEndian.PutUint16(d3[:], g.Data3)

	hexf.EncodeU(b[1:9], d1[:])
	b[9] = '-'
	hexf.EncodeU(b[10:14], d2[:])
	b[14] = '-'
	hexf.EncodeU(b[15:19], d3[:])
	b[19] = '-'
	hexf.EncodeU(b[20:24], g.Data4[:2])
	b[24] = '-'
	hexf.EncodeU(b[25:37], g.Data4[2:])

	return string(b[:])
}

// lowercase string representation of the GUID
func (g *GUID) StringL() string {
	var b [38]byte
	b[0] = '{'
	b[37] = '}'

	var d1 [4]byte
	binary.BigEndian.PutUint32(d1[:], g.Data1)

	var d2 [2]byte
	binary.BigEndian.PutUint16(d2[:], g.Data2)

	var d3 [2]byte
	binary.BigEndian.PutUint16(d3[:], g.Data3)

	hexf.Encode(b[1:9], d1[:])
	b[9] = '-'
	hexf.Encode(b[10:14], d2[:])
	b[14] = '-'
	hexf.Encode(b[15:19], d3[:])
	b[19] = '-'
	hexf.Encode(b[20:24], g.Data4[:2])
	b[24] = '-'
	hexf.Encode(b[25:37], g.Data4[2:])

	return string(b[:])
}

func (g *GUID) Equals(other *GUID) bool {
	return g.Data1 == other.Data1 &&
		g.Data2 == other.Data2 &&
		g.Data3 == other.Data3 &&
		g.Data4 == other.Data4
}

// Bytes returns the native 16 byte memory layout of the GUID
// (Data1..Data3 little endian, Data4 as is). This is the form DEVPROP_TYPE_GUID
// property buffers carry.
func (g *GUID) Bytes() [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint32(b[0:4], g.Data1)
	binary.LittleEndian.PutUint16(b[4:6], g.Data2)
	binary.LittleEndian.PutUint16(b[6:8], g.Data3)
	copy(b[8:], g.Data4[:])
	return b
}

// GUIDFromBytes decodes a GUID from its native 16 byte memory layout.
func GUIDFromBytes(b []byte) (g GUID, err error) {
	if len(b) != 16 {
		return g, fmt.Errorf("bad GUID buffer size %d", len(b))
	}
	g.Data1 = binary.LittleEndian.Uint32(b[0:4])
	g.Data2 = binary.LittleEndian.Uint16(b[4:6])
	g.Data3 = binary.LittleEndian.Uint16(b[6:8])
	copy(g.Data4[:], b[8:])
	return g, nil
}

var (
	guidRE = regexp.MustCompile(`^\{?[A-F0-9]{8}-[A-F0-9]{4}-[A-F0-9]{4}-[A-F0-9]{4}-[A-F0-9]{12}\}?$`)
)

// MustParseGUID parses a guid string into a GUID struct or panics
func MustParseGUID(sguid string) (guid *GUID) {
	var err error
	if guid, err = ParseGUID(sguid); err != nil {
		panic(err)
	}
	return
}

// ParseGUID parses a guid string into a GUID structure
func ParseGUID(guid string) (g *GUID, err error) {
	var u uint64

	g = &GUID{}
	guid = strings.ToUpper(guid)
	if !guidRE.MatchString(guid) {
		return nil, fmt.Errorf("bad GUID format")
	}
	guid = strings.Trim(guid, "{}")
	sp := strings.Split(guid, "-")

	if u, err = strconv.ParseUint(sp[0], 16, 32); err != nil {
		return
	}
	g.Data1 = uint32(u)
	if u, err = strconv.ParseUint(sp[1], 16, 16); err != nil {
		return
	}
	g.Data2 = uint16(u)
	if u, err = strconv.ParseUint(sp[2], 16, 16); err != nil {
		return
	}
	g.Data3 = uint16(u)
	if u, err = strconv.ParseUint(sp[3], 16, 16); err != nil {
		return
	}
	g.Data4[0] = uint8(u >> 8)
	g.Data4[1] = uint8(u & 0xff)
	if u, err = strconv.ParseUint(sp[4], 16, 64); err != nil {
		return
	}
	g.Data4[2] = uint8((u >> 40))
	g.Data4[3] = uint8((u >> 32) & 0xff)
	g.Data4[4] = uint8((u >> 24) & 0xff)
	g.Data4[5] = uint8((u >> 16) & 0xff)
	g.Data4[6] = uint8((u >> 8) & 0xff)
	g.Data4[7] = uint8(u & 0xff)

	return
}
