//go:build windows
// +build windows

package cfgmgr

import (
	"strings"
	"sync"

	"github.com/0xrawsec/golang-utils/datastructs"
)

// IDevice is the device surface filters match against.
type IDevice interface {
	ClassGUID() (GUID, error)
	EnumeratorName() string
}

// DeviceFilter filters devices client side, after enumeration. An empty
// filter matches everything.
type DeviceFilter interface {
	// Match must return true if the device has to be filtered in
	Match(IDevice) bool
}

type baseFilter struct {
	sync.RWMutex
	s *datastructs.Set
}

func (f *baseFilter) empty() bool {
	return f.s == nil || f.s.Len() == 0
}

// ClassFilter filters devices by a set of setup class GUIDs.
type ClassFilter struct {
	baseFilter
}

// NewClassFilter creates a new ClassFilter structure
func NewClassFilter() *ClassFilter {
	f := ClassFilter{}
	f.s = datastructs.NewInitSet()
	return &f
}

// Update adds the class to the filter set.
func (f *ClassFilter) Update(c *SetupClass) {
	f.UpdateGUID(c.GUID())
}

// UpdateGUID adds a class GUID to the filter set.
func (f *ClassFilter) UpdateGUID(g GUID) {
	f.Lock()
	defer f.Unlock()
	f.s.Add(g)
}

// Match checks if the device's setup class is in the filter set. Devices
// whose class cannot be read are filtered out.
func (f *ClassFilter) Match(d IDevice) bool {
	f.RLock()
	defer f.RUnlock()

	if f.empty() {
		return true
	}
	g, err := d.ClassGUID()
	if err != nil {
		return false
	}
	return f.s.Contains(g)
}

// EnumeratorFilter filters devices by their bus enumerator prefix
// ("USB", "PCI", ...). Names are compared case insensitively.
type EnumeratorFilter struct {
	baseFilter
}

// NewEnumeratorFilter creates a new EnumeratorFilter structure
func NewEnumeratorFilter(names ...string) *EnumeratorFilter {
	f := EnumeratorFilter{}
	f.s = datastructs.NewInitSet()
	for _, n := range names {
		f.Update(n)
	}
	return &f
}

// Update adds a bus enumerator name to the filter set.
func (f *EnumeratorFilter) Update(name string) {
	f.Lock()
	defer f.Unlock()
	f.s.Add(strings.ToUpper(name))
}

// Match checks if the device's enumerator prefix is in the filter set.
func (f *EnumeratorFilter) Match(d IDevice) bool {
	f.RLock()
	defer f.RUnlock()

	if f.empty() {
		return true
	}
	return f.s.Contains(strings.ToUpper(d.EnumeratorName()))
}
