//go:build windows
// +build windows

//lint:file-ignore U1000 exports

package cfgmgr

import (
	"golang.org/x/sys/windows"
)

var (
	modcfgmgr32 = windows.NewLazySystemDLL("cfgmgr32.dll")

	procCMEnumerateClasses       = modcfgmgr32.NewProc("CM_Enumerate_Classes")
	procCMEnumerateEnumeratorsW  = modcfgmgr32.NewProc("CM_Enumerate_EnumeratorsW")
	procCMGetClassPropertyW      = modcfgmgr32.NewProc("CM_Get_Class_PropertyW")
	procCMGetClassPropertyKeys   = modcfgmgr32.NewProc("CM_Get_Class_Property_Keys")
	procCMGetDeviceIDListSizeW   = modcfgmgr32.NewProc("CM_Get_Device_ID_List_SizeW")
	procCMGetDeviceIDListW       = modcfgmgr32.NewProc("CM_Get_Device_ID_ListW")
	procCMGetDeviceIDSize        = modcfgmgr32.NewProc("CM_Get_Device_ID_Size")
	procCMGetDeviceIDW           = modcfgmgr32.NewProc("CM_Get_Device_IDW")
	procCMGetDevNodePropertyW    = modcfgmgr32.NewProc("CM_Get_DevNode_PropertyW")
	procCMGetDevNodePropertyKeys = modcfgmgr32.NewProc("CM_Get_DevNode_Property_Keys")
	procCMLocateDevNodeW         = modcfgmgr32.NewProc("CM_Locate_DevNodeW")
)
