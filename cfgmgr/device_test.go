//go:build windows
// +build windows

package cfgmgr

import (
	"errors"
	"strings"
	"testing"

	"github.com/0xrawsec/toast"
)

func deviceIDs(tt *toast.T, presentOnly bool) map[string]bool {
	ids := make(map[string]bool)
	for d, err := range Devices(presentOnly) {
		tt.CheckErr(err)
		tt.Assert(d.ID() != "")
		ids[strings.ToUpper(d.ID())] = true
	}
	return ids
}

func TestDevices(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	present := deviceIDs(tt, true)
	all := deviceIDs(tt, false)

	tt.Assert(len(present) > 0)
	// present devices are a subset of all known instances
	tt.Assert(len(all) >= len(present))
	for id := range present {
		tt.Assert(all[id])
	}
}

func TestDeviceProperties(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	for d, err := range Devices(true) {
		tt.CheckErr(err)

		// the canonical instance id matches what the device was located
		// with, possibly differing in case
		id, err := d.InstanceID()
		tt.CheckErr(err)
		tt.Assert(strings.EqualFold(id, d.ID()))

		// reads are stateless, a second read yields the same value
		again, err := d.InstanceID()
		tt.CheckErr(err)
		tt.Assert(again == id)

		name, err := d.Name()
		tt.CheckErr(err)
		_ = name

		keys, err := d.PropertyKeys()
		tt.CheckErr(err)
		tt.Assert(len(keys) > 0)

		props, err := d.Properties()
		tt.CheckErr(err)
		tt.Assert(len(props) > 0)

		// a key no device carries reads as ErrNotPresent
		bogus := DevPropKey{FmtID: *MustParseGUID("{deadbeef-dead-beef-dead-beefdeadbeef}"), PID: 2}
		_, err = d.Property(bogus)
		tt.Assert(errors.Is(err, ErrNotPresent))
		return
	}
	t.Fatal("no present device")
}

func TestDevicesInClass(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	// pick a named class with at least one present device
	var name string
	var guid GUID
outer:
	for c, err := range SetupClasses() {
		tt.CheckErr(err)
		cn, err := c.ClassName()
		tt.CheckErr(err)
		if cn == "" {
			continue
		}
		g := c.GUID()
		for _, err := range DevicesInClassGUID(&g, true) {
			tt.CheckErr(err)
			name, guid = cn, g
			break outer
		}
	}
	tt.Assert(name != "")

	// every enumerated device belongs to the class
	count := 0
	for d, err := range DevicesInClassGUID(&guid, true) {
		tt.CheckErr(err)
		g, err := d.ClassGUID()
		tt.CheckErr(err)
		tt.Assert(g == guid)
		count++
	}
	tt.Assert(count > 0)

	// lookup by name reaches the same devices
	byName := 0
	for d, err := range DevicesInClass(strings.ToLower(name), true) {
		tt.CheckErr(err)
		g, err := d.ClassGUID()
		tt.CheckErr(err)
		tt.Assert(g == guid)
		byName++
	}
	tt.Assert(byName == count)

	// unknown class name surfaces as ErrUnknownClass
	for _, err := range DevicesInClass("NoSuchClassName", true) {
		tt.Assert(errors.Is(err, ErrUnknownClass))
	}
}

func TestDevicesInEmptyClass(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	// a registered class with zero instances enumerates to nothing,
	// not to an error
	for c, err := range SetupClasses() {
		tt.CheckErr(err)
		g := c.GUID()
		empty := true
		for _, err := range DevicesInClassGUID(&g, true) {
			tt.CheckErr(err)
			empty = false
			break
		}
		if empty {
			return
		}
	}
	t.Skip("every setup class has present devices")
}

func TestEnumerators(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	names := []string{}
	for n, err := range Enumerators() {
		tt.CheckErr(err)
		tt.Assert(n != "")
		names = append(names, n)
	}
	tt.Assert(len(names) > 0)

	// find one enumerator with present devices and check the prefix
	for _, n := range names {
		count := 0
		for d, err := range DevicesByEnumerator(n, true) {
			tt.CheckErr(err)
			tt.Assert(strings.EqualFold(d.EnumeratorName(), n))
			count++
		}
		if count > 0 {
			return
		}
	}
	t.Skip("no enumerator with present devices")
}

func TestLocateDevice(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	for d, err := range Devices(true) {
		tt.CheckErr(err)

		located, err := LocateDevice(d.ID(), LOCATE_DEVNODE_NORMAL)
		tt.CheckErr(err)
		tt.Assert(located.ID() == d.ID())

		// a raw handle resolves back to the same instance id
		fromInst, err := DeviceFromInst(located.DevInst())
		tt.CheckErr(err)
		tt.Assert(strings.EqualFold(fromInst.ID(), d.ID()))

		id, err := located.InstanceID()
		tt.CheckErr(err)
		tt.Assert(strings.EqualFold(id, d.ID()))
		break
	}

	_, err := LocateDevice(`ROOT\NOSUCHDEVICE\0000`, LOCATE_DEVNODE_NORMAL)
	tt.Assert(errors.Is(err, ErrDeviceGone))
}

func TestDeviceClassFilterMatch(t *testing.T) {
	t.Parallel()

	tt := toast.FromT(t)

	for d, err := range Devices(true) {
		tt.CheckErr(err)
		g, err := d.ClassGUID()
		if errors.Is(err, ErrNotPresent) {
			continue
		}
		tt.CheckErr(err)

		f := NewClassFilter()
		f.UpdateGUID(g)
		tt.Assert(f.Match(d))

		f = NewClassFilter()
		f.UpdateGUID(*MustParseGUID("{deadbeef-dead-beef-dead-beefdeadbeef}"))
		tt.Assert(!f.Match(d))
		return
	}
	t.Fatal("no present device with a setup class")
}
