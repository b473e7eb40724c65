// hwinfo — print the hardware acceleration capabilities HeroCrypt
// detected on this machine.
//
// Usage:
//
//	hwinfo
//	hwinfo --json
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BeingCiteable/HeroCrypt/accel"
	"github.com/BeingCiteable/HeroCrypt/hwaccel"
	"github.com/spf13/cobra"
)

func main() {
	var asJSON bool

	root := &cobra.Command{
		Use:   "hwinfo",
		Short: "Show detected hardware acceleration capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(asJSON)
		},
	}
	root.Flags().BoolVar(&asJSON, "json", false, "emit the capability snapshot as JSON")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(asJSON bool) error {
	caps := hwaccel.GetCapabilities()

	if asJSON {
		out, err := json.MarshalIndent(caps, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(caps)
	fmt.Printf("OS:          %s\n", caps.OperatingSystem)
	fmt.Printf("Accelerator: %s\n", accel.CreateAccelerator().Name())
	return nil
}
