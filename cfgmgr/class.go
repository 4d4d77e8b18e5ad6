//go:build windows
// +build windows

package cfgmgr

import (
	"iter"
	"strings"
)

// SetupClass represents one registered device setup class (a hardware
// category such as "battery" or "net"). Immutable, identified by its GUID.
type SetupClass struct {
	guid GUID
}

// GUID returns a copy of the class GUID.
func (c *SetupClass) GUID() GUID {
	return c.guid
}

// Property reads one class property. ErrNotPresent when the class has no
// value for that key.
func (c *SetupClass) Property(key DevPropKey) (*Property, error) {
	return classProperty(&c.guid, key, CM_CLASS_PROPERTY_INSTALLER)
}

// PropertyKeys returns the keys of all properties set on the class.
func (c *SetupClass) PropertyKeys() ([]DevPropKey, error) {
	return classPropertyKeys(&c.guid, CM_CLASS_PROPERTY_INSTALLER)
}

// Properties reads all properties set on the class.
func (c *SetupClass) Properties() ([]*Property, error) {
	return allProperties(c)
}

// Name returns the friendly name of the class, or "" when none is
// registered.
func (c *SetupClass) Name() (string, error) {
	return stringOrEmpty(c.Property(DEVPKEY_NAME))
}

// ClassName returns the registered class name (the short name used for
// filtering, e.g. "Battery"), or "" when absent.
func (c *SetupClass) ClassName() (string, error) {
	return stringOrEmpty(c.Property(DEVPKEY_DeviceClass_ClassName))
}

// SetupClasses enumerates all registered device setup classes, in whatever
// order the registry yields them. The sequence is lazy and one-shot, a new
// call re-enumerates.
func SetupClasses() iter.Seq2[*SetupClass, error] {
	return func(yield func(*SetupClass, error) bool) {
		for i := uint32(0); ; i++ {
			var guid GUID
			switch cr := CMEnumerateClasses(i, &guid, CM_ENUMERATE_CLASSES_INSTALLER); cr {
			case CR_SUCCESS:
				if !yield(&SetupClass{guid: guid}, nil) {
					return
				}
			case CR_NO_SUCH_VALUE:
				// normal exhaustion
				return
			default:
				yield(nil, crError(cr))
				return
			}
		}
	}
}

// FindSetupClassByName resolves a class name (as returned by
// SetupClass.ClassName) to its setup class. Returns ErrUnknownClass when no
// registered class carries that name.
func FindSetupClassByName(name string, ignoreCase bool) (*SetupClass, error) {
	for c, err := range SetupClasses() {
		if err != nil {
			return nil, err
		}
		cn, err := c.ClassName()
		if err != nil {
			return nil, err
		}
		if cn == "" {
			continue
		}
		if cn == name || (ignoreCase && strings.EqualFold(cn, name)) {
			return c, nil
		}
	}
	return nil, ErrUnknownClass
}

// InterfaceClass represents one registered device interface class.
type InterfaceClass struct {
	guid GUID
}

// GUID returns a copy of the interface class GUID.
func (c *InterfaceClass) GUID() GUID {
	return c.guid
}

// Property reads one interface class property.
func (c *InterfaceClass) Property(key DevPropKey) (*Property, error) {
	return classProperty(&c.guid, key, CM_CLASS_PROPERTY_INTERFACE)
}

// PropertyKeys returns the keys of all properties set on the interface
// class.
func (c *InterfaceClass) PropertyKeys() ([]DevPropKey, error) {
	return classPropertyKeys(&c.guid, CM_CLASS_PROPERTY_INTERFACE)
}

// Name returns the friendly name of the interface class, or "" when none is
// registered.
func (c *InterfaceClass) Name() (string, error) {
	return stringOrEmpty(c.Property(DEVPKEY_NAME))
}

// InterfaceClasses enumerates all registered device interface classes.
func InterfaceClasses() iter.Seq2[*InterfaceClass, error] {
	return func(yield func(*InterfaceClass, error) bool) {
		for i := uint32(0); ; i++ {
			var guid GUID
			switch cr := CMEnumerateClasses(i, &guid, CM_ENUMERATE_CLASSES_INTERFACE); cr {
			case CR_SUCCESS:
				if !yield(&InterfaceClass{guid: guid}, nil) {
					return
				}
			case CR_NO_SUCH_VALUE:
				return
			default:
				yield(nil, crError(cr))
				return
			}
		}
	}
}

func classProperty(guid *GUID, key DevPropKey, flags uint32) (*Property, error) {
	return readProperty(key, func(t *DevPropType, b *byte, s *uint32) ConfigRet {
		return CMGetClassProperty(guid, &key, t, b, s, flags)
	})
}

func classPropertyKeys(guid *GUID, flags uint32) ([]DevPropKey, error) {
	return readPropertyKeys(func(keys *DevPropKey, count *uint32) ConfigRet {
		return CMGetClassPropertyKeys(guid, keys, count, flags)
	})
}
