//go:build windows
// +build windows

package cfgmgr

import (
	"strconv"
)

// https://learn.microsoft.com/en-us/windows-hardware/drivers/install/devpropkey
// v10.0.16299.0 /devpropdef.h
/*
typedef struct _DEVPROPKEY {
	DEVPROPGUID fmtid;
	DEVPROPID   pid;
} DEVPROPKEY, *PDEVPROPKEY;
*/

// DevPropKey identifies one property slot: a property-set GUID plus a
// numeric property id. Layout compatible with the native DEVPROPKEY.
// It is a plain value type, compare with ==.
type DevPropKey struct {
	FmtID GUID
	PID   uint32
}

// String renders the key as "{fmtid},pid".
func (k DevPropKey) String() string {
	return k.FmtID.String() + "," + strconv.FormatUint(uint64(k.PID), 10)
}

// Well known property keys from devpkey.h. The DEVPKEY_Device_* set reads
// from device instances, the DEVPKEY_DeviceClass_* set from setup classes,
// DEVPKEY_NAME works on both.
var (
	// DEVPKEY_NAME, DEVPROP_TYPE_STRING
	DEVPKEY_NAME = DevPropKey{GUID{0xb725f130, 0x47ef, 0x101a, [8]byte{0xa5, 0xf1, 0x02, 0x60, 0x8c, 0x9e, 0xeb, 0xac}}, 10}

	// DEVPKEY_Device_DeviceDesc, DEVPROP_TYPE_STRING
	DEVPKEY_Device_DeviceDesc = DevPropKey{devGUID, 2}
	// DEVPKEY_Device_HardwareIds, DEVPROP_TYPE_STRING_LIST
	DEVPKEY_Device_HardwareIds = DevPropKey{devGUID, 3}
	// DEVPKEY_Device_CompatibleIds, DEVPROP_TYPE_STRING_LIST
	DEVPKEY_Device_CompatibleIds = DevPropKey{devGUID, 4}
	// DEVPKEY_Device_Service, DEVPROP_TYPE_STRING
	DEVPKEY_Device_Service = DevPropKey{devGUID, 6}
	// DEVPKEY_Device_Class, DEVPROP_TYPE_STRING
	DEVPKEY_Device_Class = DevPropKey{devGUID, 9}
	// DEVPKEY_Device_ClassGuid, DEVPROP_TYPE_GUID
	DEVPKEY_Device_ClassGuid = DevPropKey{devGUID, 10}
	// DEVPKEY_Device_Driver, DEVPROP_TYPE_STRING
	DEVPKEY_Device_Driver = DevPropKey{devGUID, 11}
	// DEVPKEY_Device_ConfigFlags, DEVPROP_TYPE_UINT32
	DEVPKEY_Device_ConfigFlags = DevPropKey{devGUID, 12}
	// DEVPKEY_Device_Manufacturer, DEVPROP_TYPE_STRING
	DEVPKEY_Device_Manufacturer = DevPropKey{devGUID, 13}
	// DEVPKEY_Device_FriendlyName, DEVPROP_TYPE_STRING
	DEVPKEY_Device_FriendlyName = DevPropKey{devGUID, 14}
	// DEVPKEY_Device_LocationInfo, DEVPROP_TYPE_STRING
	DEVPKEY_Device_LocationInfo = DevPropKey{devGUID, 15}
	// DEVPKEY_Device_PDOName, DEVPROP_TYPE_STRING
	DEVPKEY_Device_PDOName = DevPropKey{devGUID, 16}
	// DEVPKEY_Device_Capabilities, DEVPROP_TYPE_UINT32
	DEVPKEY_Device_Capabilities = DevPropKey{devGUID, 17}
	// DEVPKEY_Device_UINumber, DEVPROP_TYPE_UINT32
	DEVPKEY_Device_UINumber = DevPropKey{devGUID, 18}
	// DEVPKEY_Device_EnumeratorName, DEVPROP_TYPE_STRING
	DEVPKEY_Device_EnumeratorName = DevPropKey{devGUID, 24}

	// DEVPKEY_Device_InstanceId, DEVPROP_TYPE_STRING
	DEVPKEY_Device_InstanceId = DevPropKey{GUID{0x78c34fc8, 0x104a, 0x4aca, [8]byte{0x9e, 0xa4, 0x52, 0x4d, 0x52, 0x99, 0x6e, 0x57}}, 256}

	// DEVPKEY_Device_ContainerId, DEVPROP_TYPE_GUID
	DEVPKEY_Device_ContainerId = DevPropKey{GUID{0x8c7ed206, 0x3f8a, 0x4827, [8]byte{0xb3, 0xab, 0xae, 0x9e, 0x1f, 0xae, 0xfc, 0x6c}}, 2}

	// DEVPKEY_Device_BusReportedDeviceDesc, DEVPROP_TYPE_STRING
	DEVPKEY_Device_BusReportedDeviceDesc = DevPropKey{busGUID, 4}
	// DEVPKEY_Device_IsPresent, DEVPROP_TYPE_BOOLEAN
	DEVPKEY_Device_IsPresent = DevPropKey{busGUID, 5}
	// DEVPKEY_Device_HasProblem, DEVPROP_TYPE_BOOLEAN
	DEVPKEY_Device_HasProblem = DevPropKey{busGUID, 6}

	// DEVPKEY_DeviceClass_Name, DEVPROP_TYPE_STRING
	DEVPKEY_DeviceClass_Name = DevPropKey{classGUID, 2}
	// DEVPKEY_DeviceClass_ClassName, DEVPROP_TYPE_STRING
	DEVPKEY_DeviceClass_ClassName = DevPropKey{classGUID, 3}
	// DEVPKEY_DeviceClass_Icon, DEVPROP_TYPE_STRING
	DEVPKEY_DeviceClass_Icon = DevPropKey{classGUID, 4}
	// DEVPKEY_DeviceClass_NoDisplayClass, DEVPROP_TYPE_BOOLEAN
	DEVPKEY_DeviceClass_NoDisplayClass = DevPropKey{classGUID, 8}
	// DEVPKEY_DeviceClass_SilentInstall, DEVPROP_TYPE_BOOLEAN
	DEVPKEY_DeviceClass_SilentInstall = DevPropKey{classGUID, 9}
)

// Shared fmtids of the well known key sets.
var (
	devGUID   = GUID{0xa45c254e, 0xdf1c, 0x4efd, [8]byte{0x80, 0x20, 0x67, 0xd1, 0x46, 0xa8, 0x50, 0xe0}}
	busGUID   = GUID{0x540b947e, 0x8b40, 0x45bc, [8]byte{0xa8, 0xa2, 0x6a, 0x0b, 0x89, 0x4c, 0xbd, 0xa2}}
	classGUID = GUID{0x259abffc, 0x50a7, 0x47ce, [8]byte{0xaf, 0x08, 0x68, 0xc9, 0xa7, 0xd7, 0x33, 0x66}}
)
