//go:build windows
// +build windows

package cfgmgr

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"golang.org/x/sys/windows"
)

// Device represents one device instance in the device tree, present or
// historical (phantom). It holds only the opaque instance handle and the
// instance id it was located with, property reads re-resolve against the
// native store each time.
type Device struct {
	devInst DevInst
	id      string
}

// LocateDevice resolves a device instance id string (such as
// "USB\VID_046D&PID_C52B\5&27F4B92&0&4") to a Device. Pass
// LOCATE_DEVNODE_PHANTOM to also resolve instances that are not currently
// present. Returns ErrDeviceGone when the id no longer resolves.
func LocateDevice(instanceID string, flags LocateFlag) (*Device, error) {
	p, err := windows.UTF16PtrFromString(instanceID)
	if err != nil {
		return nil, fmt.Errorf("bad instance id %q: %w", instanceID, err)
	}
	var dn DevInst
	if cr := CMLocateDevNode(&dn, p, flags); cr != CR_SUCCESS {
		return nil, crError(cr)
	}
	return &Device{devInst: dn, id: instanceID}, nil
}

// DeviceFromInst builds a Device from a raw device instance handle by
// reading its instance id back from the configuration store, for handles
// obtained outside this package.
func DeviceFromInst(devInst DevInst) (*Device, error) {
	var chars uint32
	if cr := CMGetDeviceIDSize(&chars, devInst, 0); cr != CR_SUCCESS {
		return nil, crError(cr)
	}
	// size excludes the terminating NUL
	buf := make([]uint16, chars+1)
	if cr := CMGetDeviceID(devInst, &buf[0], uint32(len(buf)), 0); cr != CR_SUCCESS {
		return nil, crError(cr)
	}
	return &Device{devInst: devInst, id: windows.UTF16ToString(buf)}, nil
}

// DevInst returns the opaque device instance handle. Only valid within this
// process and until the device is removed.
func (d *Device) DevInst() DevInst {
	return d.devInst
}

// ID returns the instance id string this device was located with.
func (d *Device) ID() string {
	return d.id
}

// EnumeratorName returns the bus enumerator prefix of the instance id
// ("USB", "PCI", "HID", ...). Derived from the id, no native call.
func (d *Device) EnumeratorName() string {
	if i := strings.IndexByte(d.id, '\\'); i >= 0 {
		return d.id[:i]
	}
	return d.id
}

// Property reads one device property. ErrNotPresent when the device has no
// value for that key, ErrDeviceGone when the instance no longer resolves.
func (d *Device) Property(key DevPropKey) (*Property, error) {
	return readProperty(key, func(t *DevPropType, b *byte, s *uint32) ConfigRet {
		return CMGetDevNodeProperty(d.devInst, &key, t, b, s, 0)
	})
}

// PropertyKeys returns the keys of all properties set on the device.
func (d *Device) PropertyKeys() ([]DevPropKey, error) {
	return readPropertyKeys(func(keys *DevPropKey, count *uint32) ConfigRet {
		return CMGetDevNodePropertyKeys(d.devInst, keys, count, 0)
	})
}

// Properties reads all properties set on the device.
func (d *Device) Properties() ([]*Property, error) {
	return allProperties(d)
}

// Name returns the device name (DEVPKEY_NAME), or "" when not set.
func (d *Device) Name() (string, error) {
	return stringOrEmpty(d.Property(DEVPKEY_NAME))
}

// Description returns the device description, or "" when not set.
func (d *Device) Description() (string, error) {
	return stringOrEmpty(d.Property(DEVPKEY_Device_DeviceDesc))
}

// InstanceID re-reads the canonical instance id from the property store, or
// "" when not set.
func (d *Device) InstanceID() (string, error) {
	return stringOrEmpty(d.Property(DEVPKEY_Device_InstanceId))
}

// ClassGUID returns the setup class GUID of the device. ErrNotPresent when
// the device has no class.
func (d *Device) ClassGUID() (GUID, error) {
	p, err := d.Property(DEVPKEY_Device_ClassGuid)
	if err != nil {
		return GUID{}, err
	}
	return p.GetGUID()
}

// ClassName returns the setup class name of the device, or "" when it has
// none.
func (d *Device) ClassName() (string, error) {
	return stringOrEmpty(d.Property(DEVPKEY_Device_Class))
}

// deviceIDList performs the two call size/fetch protocol around
// CM_Get_Device_ID_ListW and splits the resulting multi string.
func deviceIDList(filter string, flags uint32) ([]string, error) {
	var pFilter *uint16
	if filter != "" {
		var err error
		if pFilter, err = windows.UTF16PtrFromString(filter); err != nil {
			return nil, fmt.Errorf("bad filter %q: %w", filter, err)
		}
	}

	// The list can grow between the size query and the fetch, retry on
	// CR_BUFFER_SMALL with the new size.
	for {
		var chars uint32
		if cr := CMGetDeviceIDListSize(&chars, pFilter, flags); cr != CR_SUCCESS {
			return nil, crError(cr)
		}
		if chars == 0 {
			return nil, nil
		}
		buf := make([]uint16, chars)
		switch cr := CMGetDeviceIDList(pFilter, &buf[0], chars, flags); cr {
		case CR_SUCCESS:
			return UTF16ToStrings(buf), nil
		case CR_BUFFER_SMALL:
			slog.Debug("device id list grew, retrying", "chars", chars)
			continue
		default:
			return nil, crError(cr)
		}
	}
}

// locateAll lazily resolves a list of instance ids to devices as the
// sequence is consumed. Ids that disappeared since the snapshot are skipped,
// the device tree can change at any time.
func locateAll(ids []string, locFlags LocateFlag) iter.Seq2[*Device, error] {
	return func(yield func(*Device, error) bool) {
		for _, id := range ids {
			d, err := LocateDevice(id, locFlags)
			if err != nil {
				if errors.Is(err, ErrDeviceGone) {
					slog.Debug("device disappeared during enumeration", "id", id)
					continue
				}
				yield(nil, err)
				return
			}
			if !yield(d, nil) {
				return
			}
		}
	}
}

func presentFlag(presentOnly bool) (listFlags uint32, locFlags LocateFlag) {
	if presentOnly {
		return CM_GETIDLIST_FILTER_PRESENT, LOCATE_DEVNODE_NORMAL
	}
	// phantom devices keep configuration but no active hardware
	return 0, LOCATE_DEVNODE_PHANTOM
}

// Devices enumerates device instances. With presentOnly all devices
// currently attached, without it every instance the configuration store
// knows about, including phantom (historical) ones. The sequence is a lazy
// view over a snapshot taken at call time.
func Devices(presentOnly bool) iter.Seq2[*Device, error] {
	listFlags, locFlags := presentFlag(presentOnly)
	ids, err := deviceIDList("", CM_GETIDLIST_FILTER_NONE|listFlags)
	if err != nil {
		return errSeq[*Device](err)
	}
	return locateAll(ids, locFlags)
}

// DevicesInClassGUID enumerates the device instances of one setup class.
func DevicesInClassGUID(guid *GUID, presentOnly bool) iter.Seq2[*Device, error] {
	listFlags, locFlags := presentFlag(presentOnly)
	ids, err := deviceIDList(guid.String(), CM_GETIDLIST_FILTER_CLASS|listFlags)
	if err != nil {
		return errSeq[*Device](err)
	}
	return locateAll(ids, locFlags)
}

// DevicesInClass enumerates the device instances of the setup class with
// the given name (case insensitive). Yields ErrUnknownClass when the name
// does not resolve to any registered class.
func DevicesInClass(className string, presentOnly bool) iter.Seq2[*Device, error] {
	c, err := FindSetupClassByName(className, true)
	if err != nil {
		return errSeq[*Device](err)
	}
	guid := c.GUID()
	return DevicesInClassGUID(&guid, presentOnly)
}

// DevicesByEnumerator enumerates the device instances under one bus
// enumerator name ("USB", "PCI", ...), see Enumerators.
func DevicesByEnumerator(enumerator string, presentOnly bool) iter.Seq2[*Device, error] {
	listFlags, locFlags := presentFlag(presentOnly)
	ids, err := deviceIDList(enumerator, CM_GETIDLIST_FILTER_ENUMERATOR|listFlags)
	if err != nil {
		return errSeq[*Device](err)
	}
	return locateAll(ids, locFlags)
}

// Enumerators enumerates the registered bus enumerator names.
func Enumerators() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		var buf [MAX_DEVICE_ID_LEN]uint16
		for i := uint32(0); ; i++ {
			length := uint32(len(buf))
			switch cr := CMEnumerateEnumerators(i, &buf[0], &length, 0); cr {
			case CR_SUCCESS:
				if !yield(windows.UTF16ToString(buf[:length]), nil) {
					return
				}
			case CR_NO_SUCH_VALUE:
				return
			default:
				yield("", crError(cr))
				return
			}
		}
	}
}

// errSeq is a sequence that yields a single error.
func errSeq[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}
