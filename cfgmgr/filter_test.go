//go:build windows
// +build windows

package cfgmgr

import (
	"testing"

	"github.com/0xrawsec/toast"
)

type fakeDevice struct {
	class      GUID
	classErr   error
	enumerator string
}

func (d *fakeDevice) ClassGUID() (GUID, error) {
	return d.class, d.classErr
}

func (d *fakeDevice) EnumeratorName() string {
	return d.enumerator
}

func TestClassFilter(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	disk := *MustParseGUID("{4d36e967-e325-11ce-bfc1-08002be10318}")
	net := *MustParseGUID("{4d36e972-e325-11ce-bfc1-08002be10318}")

	f := NewClassFilter()
	// empty filter matches everything
	tt.Assert(f.Match(&fakeDevice{class: disk}))

	f.UpdateGUID(disk)
	tt.Assert(f.Match(&fakeDevice{class: disk}))
	tt.Assert(!f.Match(&fakeDevice{class: net}))

	f.UpdateGUID(net)
	tt.Assert(f.Match(&fakeDevice{class: net}))

	// a device whose class cannot be read is filtered out
	tt.Assert(!f.Match(&fakeDevice{classErr: ErrDeviceGone}))
}

func TestEnumeratorFilter(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	f := NewEnumeratorFilter()
	tt.Assert(f.Match(&fakeDevice{enumerator: "PCI"}))

	f = NewEnumeratorFilter("usb", "PCI")
	tt.Assert(f.Match(&fakeDevice{enumerator: "USB"}))
	tt.Assert(f.Match(&fakeDevice{enumerator: "pci"}))
	tt.Assert(!f.Match(&fakeDevice{enumerator: "HID"}))

	f.Update("hid")
	tt.Assert(f.Match(&fakeDevice{enumerator: "HID"}))
}
