//go:build windows
// +build windows

package cfgmgr

import (
	"unsafe"
)

// Thin wrappers over cfgmgr32.dll. All of them return the raw CONFIGRET
// status: CR_BUFFER_SMALL and CR_NO_SUCH_VALUE are part of the calling
// protocol and are interpreted by the callers, not here.

// https://learn.microsoft.com/en-us/windows/win32/api/cfgmgr32/nf-cfgmgr32-cm_enumerate_classes
/*
CM_Enumerate_Classes API wrapper generated from prototype
CMAPI CONFIGRET CM_Enumerate_Classes(
	 ULONG ulClassIndex,
	 LPGUID ClassGuid,
	 ULONG ulFlags );
*/

// Enumerates the installed device classes by index. Returns CR_NO_SUCH_VALUE
// when the index is past the last registered class.
func CMEnumerateClasses(classIndex uint32, classGUID *GUID, flags uint32) ConfigRet {
	r1, _, _ := procCMEnumerateClasses.Call(
		uintptr(classIndex),
		uintptr(unsafe.Pointer(classGUID)),
		uintptr(flags))
	return ConfigRet(r1)
}

// https://learn.microsoft.com/en-us/windows/win32/api/cfgmgr32/nf-cfgmgr32-cm_enumerate_enumeratorsw
/*
CM_Enumerate_EnumeratorsW API wrapper generated from prototype
CMAPI CONFIGRET CM_Enumerate_EnumeratorsW(
	 ULONG ulEnumIndex,
	 PWSTR Buffer,
	 PULONG pulLength,
	 ULONG ulFlags );
*/

// Enumerates the bus enumerator names (PCI, USB, ...) by index.
func CMEnumerateEnumerators(enumIndex uint32, buffer *uint16, length *uint32, flags uint32) ConfigRet {
	r1, _, _ := procCMEnumerateEnumeratorsW.Call(
		uintptr(enumIndex),
		uintptr(unsafe.Pointer(buffer)),
		uintptr(unsafe.Pointer(length)),
		uintptr(flags))
	return ConfigRet(r1)
}

// https://learn.microsoft.com/en-us/windows/win32/api/cfgmgr32/nf-cfgmgr32-cm_get_class_propertyw
/*
CM_Get_Class_PropertyW API wrapper generated from prototype
CMAPI CONFIGRET CM_Get_Class_PropertyW(
	 LPCGUID ClassGUID,
	 const DEVPROPKEY *PropertyKey,
	 DEVPROPTYPE *PropertyType,
	 PBYTE PropertyBuffer,
	 PULONG PropertyBufferSize,
	 ULONG ulFlags );
*/

// Retrieves a device class property. Call once with a nil buffer to get the
// required size (CR_BUFFER_SMALL) then again with the allocated buffer.
func CMGetClassProperty(classGUID *GUID, key *DevPropKey, propType *DevPropType, buffer *byte, size *uint32, flags uint32) ConfigRet {
	r1, _, _ := procCMGetClassPropertyW.Call(
		uintptr(unsafe.Pointer(classGUID)),
		uintptr(unsafe.Pointer(key)),
		uintptr(unsafe.Pointer(propType)),
		uintptr(unsafe.Pointer(buffer)),
		uintptr(unsafe.Pointer(size)),
		uintptr(flags))
	return ConfigRet(r1)
}

// https://learn.microsoft.com/en-us/windows/win32/api/cfgmgr32/nf-cfgmgr32-cm_get_class_property_keys
/*
CM_Get_Class_Property_Keys API wrapper generated from prototype
CMAPI CONFIGRET CM_Get_Class_Property_Keys(
	 LPCGUID ClassGUID,
	 DEVPROPKEY *PropertyKeyArray,
	 PULONG PropertyKeyCount,
	 ULONG ulFlags );
*/

// Retrieves the property keys set on a device class.
func CMGetClassPropertyKeys(classGUID *GUID, keys *DevPropKey, count *uint32, flags uint32) ConfigRet {
	r1, _, _ := procCMGetClassPropertyKeys.Call(
		uintptr(unsafe.Pointer(classGUID)),
		uintptr(unsafe.Pointer(keys)),
		uintptr(unsafe.Pointer(count)),
		uintptr(flags))
	return ConfigRet(r1)
}

// https://learn.microsoft.com/en-us/windows/win32/api/cfgmgr32/nf-cfgmgr32-cm_get_device_id_list_sizew
/*
CM_Get_Device_ID_List_SizeW API wrapper generated from prototype
CMAPI CONFIGRET CM_Get_Device_ID_List_SizeW(
	 PULONG pulLen,
	 PCWSTR pszFilter,
	 ULONG ulFlags );
*/

// Retrieves the buffer size (in characters) required to hold a device
// instance id list.
func CMGetDeviceIDListSize(length *uint32, filter *uint16, flags uint32) ConfigRet {
	r1, _, _ := procCMGetDeviceIDListSizeW.Call(
		uintptr(unsafe.Pointer(length)),
		uintptr(unsafe.Pointer(filter)),
		uintptr(flags))
	return ConfigRet(r1)
}

// https://learn.microsoft.com/en-us/windows/win32/api/cfgmgr32/nf-cfgmgr32-cm_get_device_id_listw
/*
CM_Get_Device_ID_ListW API wrapper generated from prototype
CMAPI CONFIGRET CM_Get_Device_ID_ListW(
	 PCWSTR pszFilter,
	 PWCHAR Buffer,
	 ULONG BufferLen,
	 ULONG ulFlags );
*/

// Retrieves the list of device instance ids matching the filter, as a
// double NUL terminated multi string.
func CMGetDeviceIDList(filter *uint16, buffer *uint16, bufferLen uint32, flags uint32) ConfigRet {
	r1, _, _ := procCMGetDeviceIDListW.Call(
		uintptr(unsafe.Pointer(filter)),
		uintptr(unsafe.Pointer(buffer)),
		uintptr(bufferLen),
		uintptr(flags))
	return ConfigRet(r1)
}

// https://learn.microsoft.com/en-us/windows/win32/api/cfgmgr32/nf-cfgmgr32-cm_get_device_id_size
/*
CM_Get_Device_ID_Size API wrapper generated from prototype
CMAPI CONFIGRET CM_Get_Device_ID_Size(
	 PULONG pulLen,
	 DEVINST dnDevInst,
	 ULONG ulFlags );
*/

// Retrieves the length (in characters, excluding the terminator) of the
// instance id of a device node.
func CMGetDeviceIDSize(length *uint32, devInst DevInst, flags uint32) ConfigRet {
	r1, _, _ := procCMGetDeviceIDSize.Call(
		uintptr(unsafe.Pointer(length)),
		uintptr(devInst),
		uintptr(flags))
	return ConfigRet(r1)
}

// https://learn.microsoft.com/en-us/windows/win32/api/cfgmgr32/nf-cfgmgr32-cm_get_device_idw
/*
CM_Get_Device_IDW API wrapper generated from prototype
CMAPI CONFIGRET CM_Get_Device_IDW(
	 DEVINST dnDevInst,
	 PWSTR Buffer,
	 ULONG BufferLen,
	 ULONG ulFlags );
*/

// Retrieves the instance id of a device node.
func CMGetDeviceID(devInst DevInst, buffer *uint16, bufferLen uint32, flags uint32) ConfigRet {
	r1, _, _ := procCMGetDeviceIDW.Call(
		uintptr(devInst),
		uintptr(unsafe.Pointer(buffer)),
		uintptr(bufferLen),
		uintptr(flags))
	return ConfigRet(r1)
}

// https://learn.microsoft.com/en-us/windows/win32/api/cfgmgr32/nf-cfgmgr32-cm_get_devnode_propertyw
/*
CM_Get_DevNode_PropertyW API wrapper generated from prototype
CMAPI CONFIGRET CM_Get_DevNode_PropertyW(
	 DEVINST dnDevInst,
	 const DEVPROPKEY *PropertyKey,
	 DEVPROPTYPE *PropertyType,
	 PBYTE PropertyBuffer,
	 PULONG PropertyBufferSize,
	 ULONG ulFlags );
*/

// Retrieves a device instance property. Same two call size protocol as
// CMGetClassProperty.
func CMGetDevNodeProperty(devInst DevInst, key *DevPropKey, propType *DevPropType, buffer *byte, size *uint32, flags uint32) ConfigRet {
	r1, _, _ := procCMGetDevNodePropertyW.Call(
		uintptr(devInst),
		uintptr(unsafe.Pointer(key)),
		uintptr(unsafe.Pointer(propType)),
		uintptr(unsafe.Pointer(buffer)),
		uintptr(unsafe.Pointer(size)),
		uintptr(flags))
	return ConfigRet(r1)
}

// https://learn.microsoft.com/en-us/windows/win32/api/cfgmgr32/nf-cfgmgr32-cm_get_devnode_property_keys
/*
CM_Get_DevNode_Property_Keys API wrapper generated from prototype
CMAPI CONFIGRET CM_Get_DevNode_Property_Keys(
	 DEVINST dnDevInst,
	 DEVPROPKEY *PropertyKeyArray,
	 PULONG PropertyKeyCount,
	 ULONG ulFlags );
*/

// Retrieves the property keys set on a device instance.
func CMGetDevNodePropertyKeys(devInst DevInst, keys *DevPropKey, count *uint32, flags uint32) ConfigRet {
	r1, _, _ := procCMGetDevNodePropertyKeys.Call(
		uintptr(devInst),
		uintptr(unsafe.Pointer(keys)),
		uintptr(unsafe.Pointer(count)),
		uintptr(flags))
	return ConfigRet(r1)
}

// https://learn.microsoft.com/en-us/windows/win32/api/cfgmgr32/nf-cfgmgr32-cm_locate_devnodew
/*
CM_Locate_DevNodeW API wrapper generated from prototype
CMAPI CONFIGRET CM_Locate_DevNodeW(
	 PDEVINST pdnDevInst,
	 DEVINSTID_W pDeviceID,
	 ULONG ulFlags );
*/

// Resolves a device instance id string to a device node handle.
func CMLocateDevNode(devInst *DevInst, deviceID *uint16, flags LocateFlag) ConfigRet {
	r1, _, _ := procCMLocateDevNodeW.Call(
		uintptr(unsafe.Pointer(devInst)),
		uintptr(unsafe.Pointer(deviceID)),
		uintptr(flags))
	return ConfigRet(r1)
}
