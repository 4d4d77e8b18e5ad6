//go:build windows
// +build windows

package cfgmgr

// https://learn.microsoft.com/en-us/windows/win32/api/cfgmgr32/
// v10.0.16299.0 /cfgmgr32.h

/*
   #define MAX_DEVICE_ID_LEN     200
   #define MAX_DEVNODE_ID_LEN    MAX_DEVICE_ID_LEN

   #define MAX_GUID_STRING_LEN   39          // 38 chars + terminator null
   #define MAX_CLASS_NAME_LEN    32
   #define MAX_PROFILE_LEN       80
*/

const (
	MAX_DEVICE_ID_LEN   = 200
	MAX_GUID_STRING_LEN = 39
	MAX_CLASS_NAME_LEN  = 32
)

// Flags for CM_Enumerate_Classes.
/*
   #define CM_ENUMERATE_CLASSES_INSTALLER        (0x00000000)
   #define CM_ENUMERATE_CLASSES_INTERFACE        (0x00000001)
*/
const (
	CM_ENUMERATE_CLASSES_INSTALLER = 0x00000000
	CM_ENUMERATE_CLASSES_INTERFACE = 0x00000001
)

// Flags for CM_Get_Class_Property / CM_Get_Class_Property_Keys.
/*
   #define CM_CLASS_PROPERTY_INSTALLER           (0x00000000)
   #define CM_CLASS_PROPERTY_INTERFACE           (0x00000001)
*/
const (
	CM_CLASS_PROPERTY_INSTALLER = 0x00000000
	CM_CLASS_PROPERTY_INTERFACE = 0x00000001
)

// Flags for CM_Get_Device_ID_List / CM_Get_Device_ID_List_Size.
/*
   #define CM_GETIDLIST_FILTER_NONE               (0x00000000)
   #define CM_GETIDLIST_FILTER_ENUMERATOR         (0x00000001)
   #define CM_GETIDLIST_FILTER_SERVICE            (0x00000002)
   #define CM_GETIDLIST_FILTER_EJECTRELATIONS     (0x00000004)
   #define CM_GETIDLIST_FILTER_REMOVALRELATIONS   (0x00000008)
   #define CM_GETIDLIST_FILTER_POWERRELATIONS     (0x00000010)
   #define CM_GETIDLIST_FILTER_BUSRELATIONS       (0x00000020)
   #define CM_GETIDLIST_DONOTGENERATE             (0x10000040)
   #define CM_GETIDLIST_FILTER_TRANSPORTRELATIONS (0x00000080)
   #define CM_GETIDLIST_FILTER_PRESENT            (0x00000100)
   #define CM_GETIDLIST_FILTER_CLASS              (0x00000200)
*/
const (
	CM_GETIDLIST_FILTER_NONE               = 0x00000000
	CM_GETIDLIST_FILTER_ENUMERATOR         = 0x00000001
	CM_GETIDLIST_FILTER_SERVICE            = 0x00000002
	CM_GETIDLIST_FILTER_EJECTRELATIONS     = 0x00000004
	CM_GETIDLIST_FILTER_REMOVALRELATIONS   = 0x00000008
	CM_GETIDLIST_FILTER_POWERRELATIONS     = 0x00000010
	CM_GETIDLIST_FILTER_BUSRELATIONS       = 0x00000020
	CM_GETIDLIST_DONOTGENERATE             = 0x10000040
	CM_GETIDLIST_FILTER_TRANSPORTRELATIONS = 0x00000080
	CM_GETIDLIST_FILTER_PRESENT            = 0x00000100
	CM_GETIDLIST_FILTER_CLASS              = 0x00000200
)

// Flags for CM_Locate_DevNode.
/*
   #define CM_LOCATE_DEVNODE_NORMAL       0x00000000
   #define CM_LOCATE_DEVNODE_PHANTOM      0x00000001
   #define CM_LOCATE_DEVNODE_CANCELREMOVE 0x00000002
   #define CM_LOCATE_DEVNODE_NOVALIDATION 0x00000004
*/

// LocateFlag selects how CM_Locate_DevNode resolves an instance id.
// LOCATE_DEVNODE_PHANTOM also resolves instances that are known to the
// configuration store but not currently present.
type LocateFlag uint32

const (
	LOCATE_DEVNODE_NORMAL       LocateFlag = 0x00000000
	LOCATE_DEVNODE_PHANTOM      LocateFlag = 0x00000001
	LOCATE_DEVNODE_CANCELREMOVE LocateFlag = 0x00000002
	LOCATE_DEVNODE_NOVALIDATION LocateFlag = 0x00000004
)

// DevInst is an opaque device instance handle. It is only meaningful inside
// the process that obtained it and is not stable across reboots.
type DevInst uint32
