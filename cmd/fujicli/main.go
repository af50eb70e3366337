// Command fujicli is a thin external caller for the driver library: it
// claims a USB-connected Fujifilm body, runs one operation, and exits.
// It is not a feature surface in its own right — no interactive shell, no
// output formatting beyond what the library already returns.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/gousb"

	"github.com/karaolidis/fujicli-sub000/camera"
	"github.com/karaolidis/fujicli-sub000/camera/bodies"
	"github.com/karaolidis/fujicli-sub000/camera/simulation"
	"github.com/karaolidis/fujicli-sub000/fuji"
	"github.com/karaolidis/fujicli-sub000/ptp"
)

const (
	exitOK         = 0
	exitUsage      = 2
	exitNoDevice   = 3
	exitOpenFailed = 4
	exitOpFailed   = 5
)

var exe = "fujicli"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return exitUsage
	}

	cmd := args[0]
	if cmd == "list" {
		return runList()
	}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	productHex := fs.String("product", "", "USB product id of the body to open, e.g. 0x02fc")
	if err := fs.Parse(args[1:]); err != nil {
		return exitUsage
	}
	if *productHex == "" {
		fmt.Fprintln(os.Stderr, "missing required -product flag")
		return exitUsage
	}
	product, err := strconv.ParseUint(trimHexPrefix(*productHex), 16, 16)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -product value %q: %s\n", *productHex, err)
		return exitUsage
	}

	c, err := bodies.Open(ptp.FujifilmVendorID, gousb.ID(product))
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening camera: %s\n", err)
		return exitOpenFailed
	}

	rest := fs.Args()
	switch cmd {
	case "info":
		return runInfo(c)
	case "backup-export":
		return runBackupExport(c, rest)
	case "backup-import":
		return runBackupImport(c, rest)
	case "simulation-list":
		return runSimulationList(c)
	case "simulation-get":
		return runSimulationGet(c, rest)
	case "simulation-set":
		return runSimulationSet(c, rest)
	case "render":
		return runRender(c, rest)
	default:
		printUsage()
		return exitUsage
	}
}

func trimHexPrefix(s string) string {
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		return s[2:]
	}
	return s
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `usage: %s <command> -product <hex id> [args]

commands:
  list                                       list connected Fujifilm USB products
  info            -product ID                print the device info dataset
  backup-export   -product ID OUT_FILE       write the settings backup to OUT_FILE
  backup-import   -product ID IN_FILE        submit IN_FILE's contents as a settings backup
  simulation-list -product ID                print custom-setting slots this body exposes
  simulation-get  -product ID SLOT           print one slot's simulation bundle as JSON
  simulation-set  -product ID SLOT IN_FILE   write IN_FILE's JSON bundle to SLOT
  render          -product ID RAW_FILE OUT_FILE  submit RAW_FILE for conversion, write OUT_FILE
`, exe)
}

func runList() int {
	products, err := ptp.ListConnectedCameras()
	if err != nil {
		fmt.Fprintf(os.Stderr, "listing usb devices: %s\n", err)
		return exitOpFailed
	}
	if len(products) == 0 {
		fmt.Println("no Fujifilm USB devices found")
		return exitNoDevice
	}
	for _, p := range products {
		fmt.Printf("0x%04x\n", uint16(p))
	}
	return exitOK
}

func runInfo(c *camera.Camera) int {
	info, err := c.GetInfo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "getting device info: %s\n", err)
		return exitOpFailed
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(info); err != nil {
		fmt.Fprintf(os.Stderr, "encoding device info: %s\n", err)
		return exitOpFailed
	}
	return exitOK
}

func runBackupExport(c *camera.Camera, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "backup-export requires an OUT_FILE argument")
		return exitUsage
	}
	data, err := c.ExportBackup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "exporting backup: %s\n", err)
		return exitOpFailed
	}
	if err := os.WriteFile(args[0], data, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %s\n", args[0], err)
		return exitOpFailed
	}
	return exitOK
}

func runBackupImport(c *camera.Camera, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "backup-import requires an IN_FILE argument")
		return exitUsage
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %s\n", args[0], err)
		return exitOpFailed
	}
	if err := c.ImportBackup(data); err != nil {
		fmt.Fprintf(os.Stderr, "importing backup: %s\n", err)
		return exitOpFailed
	}
	return exitOK
}

func runSimulationList(c *camera.Camera) int {
	for _, slot := range c.CustomSettingSlots() {
		fmt.Println(slot.String())
	}
	return exitOK
}

func parseSlot(s string) (fuji.CustomSetting, error) {
	return fuji.ParseCustomSetting(s)
}

func runSimulationGet(c *camera.Camera, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "simulation-get requires a SLOT argument")
		return exitUsage
	}
	slot, err := parseSlot(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid slot %q: %s\n", args[0], err)
		return exitUsage
	}
	sim, err := c.GetSimulation(slot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "getting simulation: %s\n", err)
		return exitOpFailed
	}
	data, err := simulation.Serialize(sim)
	if err != nil {
		fmt.Fprintf(os.Stderr, "serializing simulation: %s\n", err)
		return exitOpFailed
	}
	os.Stdout.Write(data)
	fmt.Println()
	return exitOK
}

func runSimulationSet(c *camera.Camera, args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "simulation-set requires SLOT and IN_FILE arguments")
		return exitUsage
	}
	slot, err := parseSlot(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid slot %q: %s\n", args[0], err)
		return exitUsage
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %s\n", args[1], err)
		return exitOpFailed
	}
	sim, err := simulation.Deserialize(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing simulation: %s\n", err)
		return exitOpFailed
	}
	if err := c.SetSimulation(slot, sim); err != nil {
		fmt.Fprintf(os.Stderr, "setting simulation: %s\n", err)
		return exitOpFailed
	}
	return exitOK
}

func runRender(c *camera.Camera, args []string) int {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "render requires RAW_FILE and OUT_FILE arguments")
		return exitUsage
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %s\n", args[0], err)
		return exitOpFailed
	}
	out, err := c.Render(raw, nil, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rendering: %s\n", err)
		return exitOpFailed
	}
	if err := os.WriteFile(args[1], out, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %s\n", args[1], err)
		return exitOpFailed
	}
	return exitOK
}
