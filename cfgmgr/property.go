//go:build windows
// +build windows

package cfgmgr

import (
	"errors"
	"log/slog"
)

// The native property read is a mandatory two step protocol: query the size
// with a nil buffer (CR_BUFFER_SMALL is the expected answer), allocate
// exactly that much, read again. These helpers are the only raw-buffer path
// in the package; Device and class accessors all go through them.

// propReader abstracts CM_Get_DevNode_PropertyW / CM_Get_Class_PropertyW
// over their first arguments.
type propReader func(propType *DevPropType, buffer *byte, size *uint32) ConfigRet

// keyReader abstracts CM_Get_DevNode_Property_Keys / CM_Get_Class_Property_Keys.
type keyReader func(keys *DevPropKey, count *uint32) ConfigRet

func readProperty(key DevPropKey, read propReader) (*Property, error) {
	var typ DevPropType
	var size uint32

	switch cr := read(&typ, nil, &size); cr {
	case CR_BUFFER_SMALL:
	case CR_SUCCESS:
		// zero sized value, the tag alone carries the information
		return NewProperty(key, typ, nil), nil
	default:
		return nil, crError(cr)
	}

	// The value can grow between the size query and the fetch, retry on
	// CR_BUFFER_SMALL with the new size.
	for {
		buf := make([]byte, size)
		switch cr := read(&typ, &buf[0], &size); cr {
		case CR_SUCCESS:
			return NewProperty(key, typ, buf[:size]), nil
		case CR_BUFFER_SMALL:
			slog.Debug("property value grew, retrying", "key", key, "size", size)
			continue
		default:
			return nil, crError(cr)
		}
	}
}

func readPropertyKeys(read keyReader) ([]DevPropKey, error) {
	var count uint32

	switch cr := read(nil, &count); cr {
	case CR_BUFFER_SMALL:
	case CR_SUCCESS:
		return nil, nil
	default:
		return nil, crError(cr)
	}

	for {
		keys := make([]DevPropKey, count)
		switch cr := read(&keys[0], &count); cr {
		case CR_SUCCESS:
			return keys[:count], nil
		case CR_BUFFER_SMALL:
			// key list grew since the count query
			continue
		default:
			return nil, crError(cr)
		}
	}
}

// stringOrEmpty turns the ErrNotPresent outcome of a string property read
// into ("", nil), the behavior of the convenience name accessors.
func stringOrEmpty(p *Property, err error) (string, error) {
	if err != nil {
		if errors.Is(err, ErrNotPresent) {
			return "", nil
		}
		return "", err
	}
	return p.GetString()
}

type propertyReader interface {
	Property(key DevPropKey) (*Property, error)
	PropertyKeys() ([]DevPropKey, error)
}

func allProperties(c propertyReader) ([]*Property, error) {
	keys, err := c.PropertyKeys()
	if err != nil {
		return nil, err
	}
	props := make([]*Property, 0, len(keys))
	for _, key := range keys {
		p, err := c.Property(key)
		if errors.Is(err, ErrNotPresent) {
			// the value went away between the key listing and the read
			continue
		}
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, nil
}
