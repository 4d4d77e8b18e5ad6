//go:build windows
// +build windows

package cfgmgr

import (
	"fmt"
)

// https://learn.microsoft.com/en-us/windows/win32/api/cfgmgr32/
// v10.0.16299.0 /cfgmgr32.h
//
// CONFIGRET return codes:
/*
   #define CR_SUCCESS                  (0x00000000)
   #define CR_DEFAULT                  (0x00000001)
   #define CR_OUT_OF_MEMORY            (0x00000002)
   #define CR_INVALID_POINTER          (0x00000003)
   #define CR_INVALID_FLAG             (0x00000004)
   #define CR_INVALID_DEVNODE          (0x00000005)
   #define CR_INVALID_DEVINST          CR_INVALID_DEVNODE
   #define CR_INVALID_RES_DES          (0x00000006)
   #define CR_INVALID_LOG_CONF         (0x00000007)
   #define CR_INVALID_ARBITRATOR       (0x00000008)
   #define CR_INVALID_NODELIST         (0x00000009)
   #define CR_DEVNODE_HAS_REQS         (0x0000000A)
   #define CR_INVALID_RESOURCEID       (0x0000000B)
   #define CR_DLVXD_NOT_FOUND          (0x0000000C)
   #define CR_NO_SUCH_DEVNODE          (0x0000000D)
   #define CR_NO_SUCH_DEVINST          CR_NO_SUCH_DEVNODE
   #define CR_NO_MORE_LOG_CONF         (0x0000000E)
   #define CR_NO_MORE_RES_DES          (0x0000000F)
   #define CR_ALREADY_SUCH_DEVNODE     (0x00000010)
   #define CR_INVALID_RANGE_LIST       (0x00000011)
   #define CR_INVALID_RANGE            (0x00000012)
   #define CR_FAILURE                  (0x00000013)
   #define CR_NO_SUCH_LOGICAL_DEV      (0x00000014)
   #define CR_CREATE_BLOCKED           (0x00000015)
   #define CR_NOT_SYSTEM_VM            (0x00000016)
   #define CR_REMOVE_VETOED            (0x00000017)
   #define CR_APM_VETOED               (0x00000018)
   #define CR_INVALID_LOAD_TYPE        (0x00000019)
   #define CR_BUFFER_SMALL             (0x0000001A)
   #define CR_NO_ARBITRATOR            (0x0000001B)
   #define CR_NO_REGISTRY_HANDLE       (0x0000001C)
   #define CR_REGISTRY_ERROR           (0x0000001D)
   #define CR_INVALID_DEVICE_ID        (0x0000001E)
   #define CR_INVALID_DATA             (0x0000001F)
   #define CR_INVALID_API              (0x00000020)
   #define CR_DEVLOADER_NOT_READY      (0x00000021)
   #define CR_NEED_RESTART             (0x00000022)
   #define CR_NO_MORE_HW_PROFILES      (0x00000023)
   #define CR_DEVICE_NOT_THERE         (0x00000024)
   #define CR_NO_SUCH_VALUE            (0x00000025)
   #define CR_WRONG_TYPE               (0x00000026)
   #define CR_INVALID_PRIORITY         (0x00000027)
   #define CR_NOT_DISABLEABLE          (0x00000028)
   #define CR_FREE_RESOURCES           (0x00000029)
   #define CR_QUERY_VETOED             (0x0000002A)
   #define CR_CANT_SHARE_IRQ           (0x0000002B)
   #define CR_NO_DEPENDENT             (0x0000002C)
   #define CR_SAME_RESOURCES           (0x0000002D)
   #define CR_NO_SUCH_REGISTRY_KEY     (0x0000002E)
   #define CR_INVALID_MACHINENAME      (0x0000002F)
   #define CR_REMOTE_COMM_FAILURE      (0x00000030)
   #define CR_MACHINE_UNAVAILABLE      (0x00000031)
   #define CR_NO_CM_SERVICES           (0x00000032)
   #define CR_ACCESS_DENIED            (0x00000033)
   #define CR_CALL_NOT_IMPLEMENTED     (0x00000034)
   #define CR_INVALID_PROPERTY         (0x00000035)
   #define CR_DEVICE_INTERFACE_ACTIVE  (0x00000036)
   #define CR_NO_SUCH_DEVICE_INTERFACE (0x00000037)
   #define CR_INVALID_REFERENCE_STRING (0x00000038)
   #define CR_INVALID_CONFLICT_LIST    (0x00000039)
   #define CR_INVALID_INDEX            (0x0000003A)
   #define CR_INVALID_STRUCTURE_SIZE   (0x0000003B)
   #define NUM_CR_RESULTS              (0x0000003C)
*/

// ConfigRet is a CONFIGRET status code returned by cfgmgr32 calls.
type ConfigRet uint32

const (
	CR_SUCCESS                  ConfigRet = 0x00000000
	CR_DEFAULT                  ConfigRet = 0x00000001
	CR_OUT_OF_MEMORY            ConfigRet = 0x00000002
	CR_INVALID_POINTER          ConfigRet = 0x00000003
	CR_INVALID_FLAG             ConfigRet = 0x00000004
	CR_INVALID_DEVNODE          ConfigRet = 0x00000005
	CR_INVALID_DEVINST          ConfigRet = CR_INVALID_DEVNODE
	CR_INVALID_RES_DES          ConfigRet = 0x00000006
	CR_INVALID_LOG_CONF         ConfigRet = 0x00000007
	CR_INVALID_ARBITRATOR       ConfigRet = 0x00000008
	CR_INVALID_NODELIST         ConfigRet = 0x00000009
	CR_DEVNODE_HAS_REQS         ConfigRet = 0x0000000A
	CR_INVALID_RESOURCEID       ConfigRet = 0x0000000B
	CR_DLVXD_NOT_FOUND          ConfigRet = 0x0000000C
	CR_NO_SUCH_DEVNODE          ConfigRet = 0x0000000D
	CR_NO_SUCH_DEVINST          ConfigRet = CR_NO_SUCH_DEVNODE
	CR_NO_MORE_LOG_CONF         ConfigRet = 0x0000000E
	CR_NO_MORE_RES_DES          ConfigRet = 0x0000000F
	CR_ALREADY_SUCH_DEVNODE     ConfigRet = 0x00000010
	CR_INVALID_RANGE_LIST       ConfigRet = 0x00000011
	CR_INVALID_RANGE            ConfigRet = 0x00000012
	CR_FAILURE                  ConfigRet = 0x00000013
	CR_NO_SUCH_LOGICAL_DEV      ConfigRet = 0x00000014
	CR_CREATE_BLOCKED           ConfigRet = 0x00000015
	CR_NOT_SYSTEM_VM            ConfigRet = 0x00000016
	CR_REMOVE_VETOED            ConfigRet = 0x00000017
	CR_APM_VETOED               ConfigRet = 0x00000018
	CR_INVALID_LOAD_TYPE        ConfigRet = 0x00000019
	CR_BUFFER_SMALL             ConfigRet = 0x0000001A
	CR_NO_ARBITRATOR            ConfigRet = 0x0000001B
	CR_NO_REGISTRY_HANDLE       ConfigRet = 0x0000001C
	CR_REGISTRY_ERROR           ConfigRet = 0x0000001D
	CR_INVALID_DEVICE_ID        ConfigRet = 0x0000001E
	CR_INVALID_DATA             ConfigRet = 0x0000001F
	CR_INVALID_API              ConfigRet = 0x00000020
	CR_DEVLOADER_NOT_READY      ConfigRet = 0x00000021
	CR_NEED_RESTART             ConfigRet = 0x00000022
	CR_NO_MORE_HW_PROFILES      ConfigRet = 0x00000023
	CR_DEVICE_NOT_THERE         ConfigRet = 0x00000024
	CR_NO_SUCH_VALUE            ConfigRet = 0x00000025
	CR_WRONG_TYPE               ConfigRet = 0x00000026
	CR_INVALID_PRIORITY         ConfigRet = 0x00000027
	CR_NOT_DISABLEABLE          ConfigRet = 0x00000028
	CR_FREE_RESOURCES           ConfigRet = 0x00000029
	CR_QUERY_VETOED             ConfigRet = 0x0000002A
	CR_CANT_SHARE_IRQ           ConfigRet = 0x0000002B
	CR_NO_DEPENDENT             ConfigRet = 0x0000002C
	CR_SAME_RESOURCES           ConfigRet = 0x0000002D
	CR_NO_SUCH_REGISTRY_KEY     ConfigRet = 0x0000002E
	CR_INVALID_MACHINENAME      ConfigRet = 0x0000002F
	CR_REMOTE_COMM_FAILURE      ConfigRet = 0x00000030
	CR_MACHINE_UNAVAILABLE      ConfigRet = 0x00000031
	CR_NO_CM_SERVICES           ConfigRet = 0x00000032
	CR_ACCESS_DENIED            ConfigRet = 0x00000033
	CR_CALL_NOT_IMPLEMENTED     ConfigRet = 0x00000034
	CR_INVALID_PROPERTY         ConfigRet = 0x00000035
	CR_DEVICE_INTERFACE_ACTIVE  ConfigRet = 0x00000036
	CR_NO_SUCH_DEVICE_INTERFACE ConfigRet = 0x00000037
	CR_INVALID_REFERENCE_STRING ConfigRet = 0x00000038
	CR_INVALID_CONFLICT_LIST    ConfigRet = 0x00000039
	CR_INVALID_INDEX            ConfigRet = 0x0000003A
	CR_INVALID_STRUCTURE_SIZE   ConfigRet = 0x0000003B
)

var crNames = map[ConfigRet]string{
	CR_SUCCESS:                  "CR_SUCCESS",
	CR_DEFAULT:                  "CR_DEFAULT",
	CR_OUT_OF_MEMORY:            "CR_OUT_OF_MEMORY",
	CR_INVALID_POINTER:          "CR_INVALID_POINTER",
	CR_INVALID_FLAG:             "CR_INVALID_FLAG",
	CR_INVALID_DEVNODE:          "CR_INVALID_DEVNODE",
	CR_INVALID_RES_DES:          "CR_INVALID_RES_DES",
	CR_INVALID_LOG_CONF:         "CR_INVALID_LOG_CONF",
	CR_INVALID_ARBITRATOR:       "CR_INVALID_ARBITRATOR",
	CR_INVALID_NODELIST:         "CR_INVALID_NODELIST",
	CR_DEVNODE_HAS_REQS:         "CR_DEVNODE_HAS_REQS",
	CR_INVALID_RESOURCEID:       "CR_INVALID_RESOURCEID",
	CR_DLVXD_NOT_FOUND:          "CR_DLVXD_NOT_FOUND",
	CR_NO_SUCH_DEVNODE:          "CR_NO_SUCH_DEVNODE",
	CR_NO_MORE_LOG_CONF:         "CR_NO_MORE_LOG_CONF",
	CR_NO_MORE_RES_DES:          "CR_NO_MORE_RES_DES",
	CR_ALREADY_SUCH_DEVNODE:     "CR_ALREADY_SUCH_DEVNODE",
	CR_INVALID_RANGE_LIST:       "CR_INVALID_RANGE_LIST",
	CR_INVALID_RANGE:            "CR_INVALID_RANGE",
	CR_FAILURE:                  "CR_FAILURE",
	CR_NO_SUCH_LOGICAL_DEV:      "CR_NO_SUCH_LOGICAL_DEV",
	CR_CREATE_BLOCKED:           "CR_CREATE_BLOCKED",
	CR_NOT_SYSTEM_VM:            "CR_NOT_SYSTEM_VM",
	CR_REMOVE_VETOED:            "CR_REMOVE_VETOED",
	CR_APM_VETOED:               "CR_APM_VETOED",
	CR_INVALID_LOAD_TYPE:        "CR_INVALID_LOAD_TYPE",
	CR_BUFFER_SMALL:             "CR_BUFFER_SMALL",
	CR_NO_ARBITRATOR:            "CR_NO_ARBITRATOR",
	CR_NO_REGISTRY_HANDLE:       "CR_NO_REGISTRY_HANDLE",
	CR_REGISTRY_ERROR:           "CR_REGISTRY_ERROR",
	CR_INVALID_DEVICE_ID:        "CR_INVALID_DEVICE_ID",
	CR_INVALID_DATA:             "CR_INVALID_DATA",
	CR_INVALID_API:              "CR_INVALID_API",
	CR_DEVLOADER_NOT_READY:      "CR_DEVLOADER_NOT_READY",
	CR_NEED_RESTART:             "CR_NEED_RESTART",
	CR_NO_MORE_HW_PROFILES:      "CR_NO_MORE_HW_PROFILES",
	CR_DEVICE_NOT_THERE:         "CR_DEVICE_NOT_THERE",
	CR_NO_SUCH_VALUE:            "CR_NO_SUCH_VALUE",
	CR_WRONG_TYPE:               "CR_WRONG_TYPE",
	CR_INVALID_PRIORITY:         "CR_INVALID_PRIORITY",
	CR_NOT_DISABLEABLE:          "CR_NOT_DISABLEABLE",
	CR_FREE_RESOURCES:           "CR_FREE_RESOURCES",
	CR_QUERY_VETOED:             "CR_QUERY_VETOED",
	CR_CANT_SHARE_IRQ:           "CR_CANT_SHARE_IRQ",
	CR_NO_DEPENDENT:             "CR_NO_DEPENDENT",
	CR_SAME_RESOURCES:           "CR_SAME_RESOURCES",
	CR_NO_SUCH_REGISTRY_KEY:     "CR_NO_SUCH_REGISTRY_KEY",
	CR_INVALID_MACHINENAME:      "CR_INVALID_MACHINENAME",
	CR_REMOTE_COMM_FAILURE:      "CR_REMOTE_COMM_FAILURE",
	CR_MACHINE_UNAVAILABLE:      "CR_MACHINE_UNAVAILABLE",
	CR_NO_CM_SERVICES:           "CR_NO_CM_SERVICES",
	CR_ACCESS_DENIED:            "CR_ACCESS_DENIED",
	CR_CALL_NOT_IMPLEMENTED:     "CR_CALL_NOT_IMPLEMENTED",
	CR_INVALID_PROPERTY:         "CR_INVALID_PROPERTY",
	CR_DEVICE_INTERFACE_ACTIVE:  "CR_DEVICE_INTERFACE_ACTIVE",
	CR_NO_SUCH_DEVICE_INTERFACE: "CR_NO_SUCH_DEVICE_INTERFACE",
	CR_INVALID_REFERENCE_STRING: "CR_INVALID_REFERENCE_STRING",
	CR_INVALID_CONFLICT_LIST:    "CR_INVALID_CONFLICT_LIST",
	CR_INVALID_INDEX:            "CR_INVALID_INDEX",
	CR_INVALID_STRUCTURE_SIZE:   "CR_INVALID_STRUCTURE_SIZE",
}

func (cr ConfigRet) String() string {
	if s, ok := crNames[cr]; ok {
		return s
	}
	return fmt.Sprintf("CR(0x%08X)", uint32(cr))
}

var (
	// Returned when a property or a friendly name is not set. Expected,
	// not exceptional: callers branch on it.
	ErrNotPresent = fmt.Errorf("property not present")

	// Returned when a device instance no longer resolves, the hardware
	// was removed between enumeration and access.
	ErrDeviceGone = fmt.Errorf("device no longer present")

	// Returned when the calling context lacks permission to read.
	ErrAccessDenied = fmt.Errorf("access denied")

	// Returned when a class name filter does not resolve to any
	// registered setup class.
	ErrUnknownClass = fmt.Errorf("unknown setup class")
)

// CMError carries an unexpected CONFIGRET status code for diagnostics.
type CMError struct {
	Code ConfigRet
}

func (e *CMError) Error() string {
	return fmt.Sprintf("cfgmgr: %s", e.Code)
}

// crError maps a CONFIGRET code to the package error taxonomy.
// This is the single surfacing point for native status codes.
func crError(cr ConfigRet) error {
	switch cr {
	case CR_SUCCESS:
		return nil
	case CR_NO_SUCH_VALUE:
		return ErrNotPresent
	case CR_NO_SUCH_DEVNODE, CR_DEVICE_NOT_THERE:
		return ErrDeviceGone
	case CR_ACCESS_DENIED:
		return ErrAccessDenied
	default:
		return &CMError{Code: cr}
	}
}
