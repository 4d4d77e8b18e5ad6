//go:build windows
// +build windows

package cfgmgr

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/tekert/golang-cfgmgr/cfgmgr/pkg/hexf"
)

// https://learn.microsoft.com/en-us/windows-hardware/drivers/install/devprop-types
// v10.0.16299.0 /devpropdef.h
/*
   #define DEVPROP_TYPEMOD_ARRAY                   0x00001000
   #define DEVPROP_TYPEMOD_LIST                    0x00002000

   #define DEVPROP_TYPE_EMPTY                      0x00000000  // nothing, no property data
   #define DEVPROP_TYPE_NULL                       0x00000001  // null property data
   #define DEVPROP_TYPE_SBYTE                      0x00000002  // 8-bit signed int (SBYTE)
   #define DEVPROP_TYPE_BYTE                       0x00000003  // 8-bit unsigned int (BYTE)
   #define DEVPROP_TYPE_INT16                      0x00000004  // 16-bit signed int (SHORT)
   #define DEVPROP_TYPE_UINT16                     0x00000005  // 16-bit unsigned int (USHORT)
   #define DEVPROP_TYPE_INT32                      0x00000006  // 32-bit signed int (LONG)
   #define DEVPROP_TYPE_UINT32                     0x00000007  // 32-bit unsigned int (ULONG)
   #define DEVPROP_TYPE_INT64                      0x00000008  // 64-bit signed int (LONG64)
   #define DEVPROP_TYPE_UINT64                     0x00000009  // 64-bit unsigned int (ULONG64)
   #define DEVPROP_TYPE_FLOAT                      0x0000000A  // 32-bit floating-point (FLOAT)
   #define DEVPROP_TYPE_DOUBLE                     0x0000000B  // 64-bit floating-point (DOUBLE)
   #define DEVPROP_TYPE_DECIMAL                    0x0000000C  // 128-bit data (DECIMAL)
   #define DEVPROP_TYPE_GUID                       0x0000000D  // 128-bit unique identifier (GUID)
   #define DEVPROP_TYPE_CURRENCY                   0x0000000E  // 64 bit signed int currency value (CURRENCY)
   #define DEVPROP_TYPE_DATE                       0x0000000F  // date (DATE)
   #define DEVPROP_TYPE_FILETIME                   0x00000010  // file time (FILETIME)
   #define DEVPROP_TYPE_BOOLEAN                    0x00000011  // 8-bit boolean (DEVPROP_BOOLEAN)
   #define DEVPROP_TYPE_STRING                     0x00000012  // null-terminated string
   #define DEVPROP_TYPE_STRING_LIST (DEVPROP_TYPE_STRING|DEVPROP_TYPEMOD_LIST) // multi-sz string list
   #define DEVPROP_TYPE_SECURITY_DESCRIPTOR        0x00000013  // self-relative binary SECURITY_DESCRIPTOR
   #define DEVPROP_TYPE_SECURITY_DESCRIPTOR_STRING 0x00000014  // security descriptor string (SDDL format)
   #define DEVPROP_TYPE_DEVPROPKEY                 0x00000015  // device property key (DEVPROPKEY)
   #define DEVPROP_TYPE_DEVPROPTYPE                0x00000016  // device property type (DEVPROPTYPE)
   #define DEVPROP_TYPE_BINARY      (DEVPROP_TYPE_BYTE|DEVPROP_TYPEMOD_ARRAY)  // custom binary data
   #define DEVPROP_TYPE_ERROR                      0x00000017  // 32-bit Win32 system error code
   #define DEVPROP_TYPE_NTSTATUS                   0x00000018  // 32-bit NTSTATUS code
   #define DEVPROP_TYPE_STRING_INDIRECT            0x00000019  // string resource (@[path\]<dllname>,-<strId>)

   #define MAX_DEVPROP_TYPE                        0x00000019  // max valid DEVPROP_TYPE value
   #define MAX_DEVPROP_TYPEMOD                     0x00002000  // max valid DEVPROP_TYPEMOD value

   #define DEVPROP_MASK_TYPE                       0x00000FFF  // range for base DEVPROP_TYPE values
   #define DEVPROP_MASK_TYPEMOD                    0x0000F000  // mask for DEVPROP_TYPEMOD type modifiers
*/

// DevPropType is a native property-type tag (DEVPROPTYPE).
type DevPropType uint32

const (
	DEVPROP_TYPEMOD_ARRAY DevPropType = 0x00001000
	DEVPROP_TYPEMOD_LIST  DevPropType = 0x00002000

	DEVPROP_TYPE_EMPTY                      DevPropType = 0x00000000
	DEVPROP_TYPE_NULL                       DevPropType = 0x00000001
	DEVPROP_TYPE_SBYTE                      DevPropType = 0x00000002
	DEVPROP_TYPE_BYTE                       DevPropType = 0x00000003
	DEVPROP_TYPE_INT16                      DevPropType = 0x00000004
	DEVPROP_TYPE_UINT16                     DevPropType = 0x00000005
	DEVPROP_TYPE_INT32                      DevPropType = 0x00000006
	DEVPROP_TYPE_UINT32                     DevPropType = 0x00000007
	DEVPROP_TYPE_INT64                      DevPropType = 0x00000008
	DEVPROP_TYPE_UINT64                     DevPropType = 0x00000009
	DEVPROP_TYPE_FLOAT                      DevPropType = 0x0000000A
	DEVPROP_TYPE_DOUBLE                     DevPropType = 0x0000000B
	DEVPROP_TYPE_DECIMAL                    DevPropType = 0x0000000C
	DEVPROP_TYPE_GUID                       DevPropType = 0x0000000D
	DEVPROP_TYPE_CURRENCY                   DevPropType = 0x0000000E
	DEVPROP_TYPE_DATE                       DevPropType = 0x0000000F
	DEVPROP_TYPE_FILETIME                   DevPropType = 0x00000010
	DEVPROP_TYPE_BOOLEAN                    DevPropType = 0x00000011
	DEVPROP_TYPE_STRING                     DevPropType = 0x00000012
	DEVPROP_TYPE_STRING_LIST                DevPropType = DEVPROP_TYPE_STRING | DEVPROP_TYPEMOD_LIST
	DEVPROP_TYPE_SECURITY_DESCRIPTOR        DevPropType = 0x00000013
	DEVPROP_TYPE_SECURITY_DESCRIPTOR_STRING DevPropType = 0x00000014
	DEVPROP_TYPE_DEVPROPKEY                 DevPropType = 0x00000015
	DEVPROP_TYPE_DEVPROPTYPE                DevPropType = 0x00000016
	DEVPROP_TYPE_BINARY                     DevPropType = DEVPROP_TYPE_BYTE | DEVPROP_TYPEMOD_ARRAY
	DEVPROP_TYPE_ERROR                      DevPropType = 0x00000017
	DEVPROP_TYPE_NTSTATUS                   DevPropType = 0x00000018
	DEVPROP_TYPE_STRING_INDIRECT            DevPropType = 0x00000019

	DEVPROP_MASK_TYPE    DevPropType = 0x00000FFF
	DEVPROP_MASK_TYPEMOD DevPropType = 0x0000F000
)

// Base returns the tag with type modifiers masked off.
func (t DevPropType) Base() DevPropType {
	return t & DEVPROP_MASK_TYPE
}

var propTypeNames = map[DevPropType]string{
	DEVPROP_TYPE_EMPTY:                      "EMPTY",
	DEVPROP_TYPE_NULL:                       "NULL",
	DEVPROP_TYPE_SBYTE:                      "SBYTE",
	DEVPROP_TYPE_BYTE:                       "BYTE",
	DEVPROP_TYPE_INT16:                      "INT16",
	DEVPROP_TYPE_UINT16:                     "UINT16",
	DEVPROP_TYPE_INT32:                      "INT32",
	DEVPROP_TYPE_UINT32:                     "UINT32",
	DEVPROP_TYPE_INT64:                      "INT64",
	DEVPROP_TYPE_UINT64:                     "UINT64",
	DEVPROP_TYPE_FLOAT:                      "FLOAT",
	DEVPROP_TYPE_DOUBLE:                     "DOUBLE",
	DEVPROP_TYPE_DECIMAL:                    "DECIMAL",
	DEVPROP_TYPE_GUID:                       "GUID",
	DEVPROP_TYPE_CURRENCY:                   "CURRENCY",
	DEVPROP_TYPE_DATE:                       "DATE",
	DEVPROP_TYPE_FILETIME:                   "FILETIME",
	DEVPROP_TYPE_BOOLEAN:                    "BOOLEAN",
	DEVPROP_TYPE_STRING:                     "STRING",
	DEVPROP_TYPE_STRING_LIST:                "STRING_LIST",
	DEVPROP_TYPE_SECURITY_DESCRIPTOR:        "SECURITY_DESCRIPTOR",
	DEVPROP_TYPE_SECURITY_DESCRIPTOR_STRING: "SECURITY_DESCRIPTOR_STRING",
	DEVPROP_TYPE_DEVPROPKEY:                 "DEVPROPKEY",
	DEVPROP_TYPE_DEVPROPTYPE:                "DEVPROPTYPE",
	DEVPROP_TYPE_BINARY:                     "BINARY",
	DEVPROP_TYPE_ERROR:                      "ERROR",
	DEVPROP_TYPE_NTSTATUS:                   "NTSTATUS",
	DEVPROP_TYPE_STRING_INDIRECT:            "STRING_INDIRECT",
}

func (t DevPropType) String() string {
	if s, ok := propTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("DEVPROPTYPE(0x%04X)", uint32(t))
}

// Property is one decoded-on-demand property read from a device or a class:
// the key it was read with, the native type tag the store reported, and a
// private copy of the raw buffer. Immutable after construction.
type Property struct {
	Key  DevPropKey
	Type DevPropType

	data []byte
}

// NewProperty builds a Property from a raw native buffer. The buffer is
// copied, the caller keeps ownership of raw.
func NewProperty(key DevPropKey, typ DevPropType, raw []byte) *Property {
	data := make([]byte, len(raw))
	copy(data, raw)
	return &Property{Key: key, Type: typ, data: data}
}

// Size returns the raw buffer size in bytes.
func (p *Property) Size() int {
	return len(p.data)
}

// Bytes returns a copy of the raw property buffer.
func (p *Property) Bytes() []byte {
	out := make([]byte, len(p.data))
	copy(out, p.data)
	return out
}

func (p *Property) badSize() error {
	return fmt.Errorf("bad %s buffer size %d for key %s", p.Type, len(p.data), p.Key)
}

func (p *Property) badType(want DevPropType) error {
	return fmt.Errorf("property %s has type %s, not %s", p.Key, p.Type, want)
}

// GetString decodes a NUL terminated UTF-16 string property
// (STRING, STRING_INDIRECT or SECURITY_DESCRIPTOR_STRING).
func (p *Property) GetString() (string, error) {
	switch p.Type {
	case DEVPROP_TYPE_STRING, DEVPROP_TYPE_STRING_INDIRECT, DEVPROP_TYPE_SECURITY_DESCRIPTOR_STRING:
	default:
		return "", p.badType(DEVPROP_TYPE_STRING)
	}
	if len(p.data)%2 != 0 {
		return "", p.badSize()
	}
	return UTF16BytesToString(p.data), nil
}

// GetStrings decodes a STRING_LIST property: consecutive NUL terminated UTF-16
// strings, ended by an empty string. An empty list decodes to a nil slice.
func (p *Property) GetStrings() ([]string, error) {
	if p.Type != DEVPROP_TYPE_STRING_LIST {
		return nil, p.badType(DEVPROP_TYPE_STRING_LIST)
	}
	if len(p.data)%2 != 0 {
		return nil, p.badSize()
	}
	return UTF16BytesToStrings(p.data), nil
}

// GetBool decodes a BOOLEAN property. DEVPROP_BOOLEAN is a single byte,
// DEVPROP_TRUE is stored as 0xFF but any non-zero value reads as true.
func (p *Property) GetBool() (bool, error) {
	if p.Type != DEVPROP_TYPE_BOOLEAN {
		return false, p.badType(DEVPROP_TYPE_BOOLEAN)
	}
	if len(p.data) != 1 {
		return false, p.badSize()
	}
	return p.data[0] != 0, nil
}

// GetInt decodes any signed scalar property (SBYTE, INT16, INT32, INT64) as
// int64.
func (p *Property) GetInt() (int64, error) {
	switch p.Type {
	case DEVPROP_TYPE_SBYTE:
		if len(p.data) != 1 {
			return 0, p.badSize()
		}
		return int64(int8(p.data[0])), nil
	case DEVPROP_TYPE_INT16:
		if len(p.data) != 2 {
			return 0, p.badSize()
		}
		return int64(int16(binary.LittleEndian.Uint16(p.data))), nil
	case DEVPROP_TYPE_INT32:
		if len(p.data) != 4 {
			return 0, p.badSize()
		}
		return int64(int32(binary.LittleEndian.Uint32(p.data))), nil
	case DEVPROP_TYPE_INT64, DEVPROP_TYPE_CURRENCY:
		if len(p.data) != 8 {
			return 0, p.badSize()
		}
		return int64(binary.LittleEndian.Uint64(p.data)), nil
	}
	return 0, p.badType(DEVPROP_TYPE_INT64)
}

// GetUInt decodes any unsigned scalar property (BYTE, UINT16, UINT32, UINT64,
// ERROR, NTSTATUS, DEVPROPTYPE) as uint64.
func (p *Property) GetUInt() (uint64, error) {
	switch p.Type {
	case DEVPROP_TYPE_BYTE:
		if len(p.data) != 1 {
			return 0, p.badSize()
		}
		return uint64(p.data[0]), nil
	case DEVPROP_TYPE_UINT16:
		if len(p.data) != 2 {
			return 0, p.badSize()
		}
		return uint64(binary.LittleEndian.Uint16(p.data)), nil
	case DEVPROP_TYPE_UINT32, DEVPROP_TYPE_ERROR, DEVPROP_TYPE_NTSTATUS, DEVPROP_TYPE_DEVPROPTYPE:
		if len(p.data) != 4 {
			return 0, p.badSize()
		}
		return uint64(binary.LittleEndian.Uint32(p.data)), nil
	case DEVPROP_TYPE_UINT64:
		if len(p.data) != 8 {
			return 0, p.badSize()
		}
		return binary.LittleEndian.Uint64(p.data), nil
	}
	return 0, p.badType(DEVPROP_TYPE_UINT64)
}

// GetUint32 decodes a UINT32 property.
func (p *Property) GetUint32() (uint32, error) {
	if p.Type != DEVPROP_TYPE_UINT32 {
		return 0, p.badType(DEVPROP_TYPE_UINT32)
	}
	if len(p.data) != 4 {
		return 0, p.badSize()
	}
	return binary.LittleEndian.Uint32(p.data), nil
}

// GetFloat decodes a FLOAT or DOUBLE property as float64.
func (p *Property) GetFloat() (float64, error) {
	switch p.Type {
	case DEVPROP_TYPE_FLOAT:
		if len(p.data) != 4 {
			return 0, p.badSize()
		}
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(p.data))), nil
	case DEVPROP_TYPE_DOUBLE:
		if len(p.data) != 8 {
			return 0, p.badSize()
		}
		return math.Float64frombits(binary.LittleEndian.Uint64(p.data)), nil
	}
	return 0, p.badType(DEVPROP_TYPE_DOUBLE)
}

// GetGUID decodes a GUID property from its 16 byte native layout.
func (p *Property) GetGUID() (GUID, error) {
	if p.Type != DEVPROP_TYPE_GUID {
		return GUID{}, p.badType(DEVPROP_TYPE_GUID)
	}
	g, err := GUIDFromBytes(p.data)
	if err != nil {
		return GUID{}, p.badSize()
	}
	return g, nil
}

// GetTime decodes a FILETIME property.
func (p *Property) GetTime() (time.Time, error) {
	if p.Type != DEVPROP_TYPE_FILETIME {
		return time.Time{}, p.badType(DEVPROP_TYPE_FILETIME)
	}
	if len(p.data) != 8 {
		return time.Time{}, p.badSize()
	}
	return UnixTimeStamp(int64(binary.LittleEndian.Uint64(p.data))), nil
}

// GetPropKey decodes a DEVPROPKEY property.
func (p *Property) GetPropKey() (DevPropKey, error) {
	if p.Type != DEVPROP_TYPE_DEVPROPKEY {
		return DevPropKey{}, p.badType(DEVPROP_TYPE_DEVPROPKEY)
	}
	if len(p.data) != 20 {
		return DevPropKey{}, p.badSize()
	}
	g, _ := GUIDFromBytes(p.data[:16])
	return DevPropKey{FmtID: g, PID: binary.LittleEndian.Uint32(p.data[16:])}, nil
}

// Value decodes the property into its semantic Go value based on the native
// type tag: string, []string, int64, uint64, float64, bool, GUID, time.Time,
// DevPropKey or []byte. Unknown or vendor specific tags decode to the raw
// byte slice instead of failing, enumeration stays robust against future
// property types. DEVPROP_TYPE_EMPTY and DEVPROP_TYPE_NULL decode to nil.
func (p *Property) Value() (any, error) {
	switch p.Type {
	case DEVPROP_TYPE_EMPTY, DEVPROP_TYPE_NULL:
		return nil, nil
	case DEVPROP_TYPE_SBYTE, DEVPROP_TYPE_INT16, DEVPROP_TYPE_INT32,
		DEVPROP_TYPE_INT64, DEVPROP_TYPE_CURRENCY:
		return p.GetInt()
	case DEVPROP_TYPE_BYTE, DEVPROP_TYPE_UINT16, DEVPROP_TYPE_UINT32,
		DEVPROP_TYPE_UINT64, DEVPROP_TYPE_ERROR, DEVPROP_TYPE_NTSTATUS,
		DEVPROP_TYPE_DEVPROPTYPE:
		return p.GetUInt()
	case DEVPROP_TYPE_FLOAT, DEVPROP_TYPE_DOUBLE:
		return p.GetFloat()
	case DEVPROP_TYPE_GUID:
		return p.GetGUID()
	case DEVPROP_TYPE_FILETIME:
		return p.GetTime()
	case DEVPROP_TYPE_BOOLEAN:
		return p.GetBool()
	case DEVPROP_TYPE_STRING, DEVPROP_TYPE_STRING_INDIRECT,
		DEVPROP_TYPE_SECURITY_DESCRIPTOR_STRING:
		return p.GetString()
	case DEVPROP_TYPE_STRING_LIST:
		return p.GetStrings()
	case DEVPROP_TYPE_DEVPROPKEY:
		return p.GetPropKey()
	default:
		// BINARY, DECIMAL, DATE, SECURITY_DESCRIPTOR, arrays and anything
		// newer than this table: raw bytes.
		return p.Bytes(), nil
	}
}

// Format renders the decoded value for display, raw buffers as 0x hex.
func (p *Property) Format() string {
	v, err := p.Value()
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return hexf.EncodeToStringPrefix(t)
	case string:
		return t
	case GUID:
		// String has a pointer receiver, %v on the value would dump the
		// struct fields
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
