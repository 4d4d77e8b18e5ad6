//go:build windows
// +build windows

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/tekert/golang-cfgmgr/cfgmgr"
	"github.com/tekert/golang-cfgmgr/logsampler"
)

const (
	copyright = "devdump: dump the Windows device configuration tree"
	usage     = `Usage: devdump [OPTIONS]

Examples:
  devdump -classes
  devdump -class Net -props
  devdump -enum USB -all
  devdump -id "USB\VID_046D&PID_C52B\5&27F4B92&0&4" -props
`
)

var (
	listClasses     bool
	listInterfaces  bool
	listEnumerators bool
	className       string
	enumerator      string
	instanceID      string
	all             bool
	withProps       bool
	jsonOut         bool
	debug           bool
)

// slogReporter bridges the sampler summaries into the default logger.
type slogReporter struct{}

func (slogReporter) LogSummary(key string, suppressed int64) {
	slog.Warn("suppressed repeated failures", "device", key, "count", suppressed)
}

func exit(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}

func dumpClasses() {
	type row struct {
		guid, class, name string
	}
	rows := []row{}
	for c, err := range cfgmgr.SetupClasses() {
		if err != nil {
			exit(1, "enumerating setup classes: %v", err)
		}
		cn, err := c.ClassName()
		if err != nil {
			exit(1, "reading class name: %v", err)
		}
		n, err := c.Name()
		if err != nil {
			exit(1, "reading class friendly name: %v", err)
		}
		g := c.GUID()
		rows = append(rows, row{g.StringL(), cn, n})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].class < rows[j].class })
	for _, r := range rows {
		fmt.Printf("%s %-24s %s\n", r.guid, r.class, r.name)
	}
}

func dumpInterfaceClasses() {
	for c, err := range cfgmgr.InterfaceClasses() {
		if err != nil {
			exit(1, "enumerating interface classes: %v", err)
		}
		n, err := c.Name()
		if err != nil {
			exit(1, "reading interface class name: %v", err)
		}
		g := c.GUID()
		fmt.Printf("%s %s\n", g.StringL(), n)
	}
}

func dumpEnumerators() {
	for n, err := range cfgmgr.Enumerators() {
		if err != nil {
			exit(1, "enumerating bus enumerators: %v", err)
		}
		fmt.Println(n)
	}
}

// jsonValue keeps property values JSON friendly: scalars and string slices
// pass through, everything else (GUIDs, timestamps, raw buffers) renders as
// the display string.
func jsonValue(p *cfgmgr.Property) any {
	v, err := p.Value()
	if err != nil {
		return p.Format()
	}
	switch v.(type) {
	case nil, string, bool, int64, uint64, float64, []string:
		return v
	default:
		return p.Format()
	}
}

func dumpDevice(d *cfgmgr.Device, samp logsampler.Sampler) {
	name, err := d.Name()
	if err != nil {
		if should, _ := samp.ShouldLog(d.ID()); should {
			slog.Warn("reading device name", "device", d.ID(), "error", err)
		}
	}

	var props []*cfgmgr.Property
	if withProps {
		if props, err = d.Properties(); err != nil {
			if should, _ := samp.ShouldLog(d.ID()); should {
				slog.Warn("reading device properties", "device", d.ID(), "error", err)
			}
		}
	}

	if jsonOut {
		out := struct {
			ID         string         `json:"id"`
			Name       string         `json:"name,omitempty"`
			Properties map[string]any `json:"properties,omitempty"`
		}{ID: d.ID(), Name: name}
		if len(props) > 0 {
			out.Properties = make(map[string]any, len(props))
			for _, p := range props {
				out.Properties[p.Key.String()] = jsonValue(p)
			}
		}
		b, err := json.Marshal(out)
		if err != nil {
			exit(1, "encoding %s: %v", d.ID(), err)
		}
		fmt.Println(string(b))
		return
	}

	fmt.Printf("%s\n", d.ID())
	if name != "" {
		fmt.Printf("  name: %s\n", name)
	}
	for _, p := range props {
		fmt.Printf("  %s [%s] = %s\n", p.Key, p.Type, p.Format())
	}
}

func dumpDevices(samp logsampler.Sampler) {
	// The native id list filters by one criterion only. Combining -enum
	// with -class enumerates by bus and narrows by class on our side.
	var filter cfgmgr.DeviceFilter = cfgmgr.NewClassFilter()
	seq := cfgmgr.Devices(!all)
	switch {
	case enumerator != "":
		seq = cfgmgr.DevicesByEnumerator(enumerator, !all)
		if className != "" {
			c, err := cfgmgr.FindSetupClassByName(className, true)
			if err != nil {
				exit(1, "resolving class %q: %v", className, err)
			}
			f := cfgmgr.NewClassFilter()
			f.Update(c)
			filter = f
		}
	case className != "":
		seq = cfgmgr.DevicesInClass(className, !all)
	}

	count := 0
	for d, err := range seq {
		if err != nil {
			exit(1, "enumerating devices: %v", err)
		}
		if !filter.Match(d) {
			continue
		}
		dumpDevice(d, samp)
		count++
	}
	slog.Debug("enumeration done", "devices", count)
}

func main() {
	flag.BoolVar(&listClasses, "classes", false, "List all registered device setup classes")
	flag.BoolVar(&listInterfaces, "interfaces", false, "List all registered device interface classes")
	flag.BoolVar(&listEnumerators, "enumerators", false, "List all registered bus enumerators")
	flag.StringVar(&className, "class", "", "Only devices of this setup class (case insensitive name)")
	flag.StringVar(&enumerator, "enum", "", "Only devices under this bus enumerator (USB, PCI, ...)")
	flag.StringVar(&instanceID, "id", "", "Dump a single device instance id")
	flag.BoolVar(&all, "all", false, "Include phantom (not currently present) devices")
	flag.BoolVar(&withProps, "props", false, "Dump all properties of every listed device")
	flag.BoolVar(&jsonOut, "json", false, "Output devices as one JSON object per line")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n%s\nOptions:\n", copyright, usage)
		flag.PrintDefaults()
		os.Exit(0)
	}

	flag.Parse()

	if debug {
		cfgmgr.SetDebugLevel(false)
	}

	samp := logsampler.NewDeduplicatingSampler(5*time.Second, slogReporter{})
	defer samp.Close()

	switch {
	case listClasses:
		dumpClasses()
	case listInterfaces:
		dumpInterfaceClasses()
	case listEnumerators:
		dumpEnumerators()
	case instanceID != "":
		locFlags := cfgmgr.LOCATE_DEVNODE_NORMAL
		if all {
			locFlags = cfgmgr.LOCATE_DEVNODE_PHANTOM
		}
		d, err := cfgmgr.LocateDevice(instanceID, locFlags)
		if err != nil {
			exit(1, "locating %q: %v", instanceID, err)
		}
		withProps = true
		dumpDevice(d, samp)
	default:
		dumpDevices(samp)
	}
}
