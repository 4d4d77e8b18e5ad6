//go:build windows
// +build windows

package cfgmgr

import (
	"syscall"
	"unsafe"
)

func Wcslen(p *uint16) (len uint64) {
	end := unsafe.Pointer(p)
	for *(*uint16)(end) != 0 {
		end = unsafe.Pointer(uintptr(end) + unsafe.Sizeof(*p))
		len++
	}
	return
}

// UTF16PtrToString transforms a null terminated *uint16 to a Go string
func UTF16PtrToString(p *uint16) string {
	if p == nil {
		return ""
	}
	return syscall.UTF16ToString(unsafe.Slice(p, Wcslen(p)))
}

func utf16Units(b []byte) []uint16 {
	if len(b) < 2 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&b[0])), len(b)/2)
}

// UTF16BytesToString transforms a byte buffer of UTF16 encoded characters
// to a Go string. Decoding stops at the first NUL.
func UTF16BytesToString(b []byte) string {
	return syscall.UTF16ToString(utf16Units(b))
}

// UTF16BytesToStrings decodes a UTF16 multi string buffer (consecutive NUL
// terminated strings, ended by an empty string) into a Go slice. An empty
// list decodes to nil.
func UTF16BytesToStrings(b []byte) []string {
	return UTF16ToStrings(utf16Units(b))
}

// UTF16ToStrings decodes a UTF16 multi string (consecutive NUL terminated
// strings, ended by an empty string) into a Go slice.
func UTF16ToStrings(u []uint16) (out []string) {
	for len(u) > 0 {
		i := 0
		for i < len(u) && u[i] != 0 {
			i++
		}
		if i == 0 {
			// empty string terminates the list
			break
		}
		out = append(out, syscall.UTF16ToString(u[:i]))
		if i >= len(u) {
			break
		}
		u = u[i+1:]
	}
	return
}
