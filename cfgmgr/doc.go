// Package cfgmgr provides access to the Windows Configuration Manager
// (cfgmgr32.dll) and the unified device property store.
//
// It allows enumerating device setup classes and device instances, filtering
// devices by class name or bus enumerator, and reading typed device or class
// properties without CGO. The package decodes native property buffers into Go
// values once per read and never holds live native handles on behalf of the
// caller.
//
// Basic usage:
//
//	for dev, err := range cfgmgr.DevicesInClass("battery", true) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    name, _ := dev.Name()
//	    fmt.Println(dev.DevInst(), name)
//	}
package cfgmgr
