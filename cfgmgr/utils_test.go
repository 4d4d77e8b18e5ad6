//go:build windows
// +build windows

package cfgmgr

import (
	"bytes"
	"testing"
	"time"
	"unsafe"

	"github.com/0xrawsec/toast"
)

func TestUnixTimeStamp(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	// the Windows epoch itself
	tt.Assert(UnixTimeStamp(0).UTC().Equal(time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC)))

	// round trip through FILETIME ticks with sub second precision
	want := time.Date(2024, 6, 15, 12, 30, 45, 500_000_000, time.UTC)
	ticks := (want.Unix()+EPOCH_DIFF)*TICKS_PER_SECOND + int64(want.Nanosecond())/WINDOWS_TICK
	tt.Assert(UnixTimeStamp(ticks).UTC().Equal(want))
}

func TestCopyData(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	src := []byte{1, 2, 3, 4}
	got := CopyData(unsafe.Pointer(&src[0]), len(src))
	tt.Assert(bytes.Equal(got, src))

	// a copy, not a view
	src[0] = 9
	tt.Assert(got[0] == 1)

	tt.Assert(CopyData(nil, 0) == nil)
}
