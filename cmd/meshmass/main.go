package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cfranzen/meshmass/pkg/massprops"
	"github.com/cfranzen/meshmass/pkg/output"
	"github.com/cfranzen/meshmass/pkg/stl"
	"github.com/cfranzen/meshmass/pkg/units"
	"github.com/cfranzen/meshmass/version"
)

var (
	flagFormat    string
	flagUnits     string
	flagScale     float64
	flagMass      float64
	flagReference string
)

var rootCmd = &cobra.Command{
	Use:   "meshmass [flags] <file>",
	Short: "Compute the inertia tensor of a solid described by an STL mesh",
	Long: `meshmass integrates the volume, center of mass and inertia tensor of a
solid bounded by a closed, consistently wound STL surface mesh (ASCII or
binary), re-expresses the tensor about a chosen reference point and prints
it as a plain matrix or as a URDF <inertia> fragment.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "output format: "+strings.Join(output.Formats(), " | "))
	rootCmd.Flags().StringVarP(&flagUnits, "units", "u", "meters", "length unit of the mesh coordinates")
	rootCmd.Flags().Float64VarP(&flagScale, "scale", "s", 1.0, "extra scale factor applied on top of the unit conversion")
	rootCmd.Flags().Float64VarP(&flagMass, "mass", "m", 1.0, "total mass assigned to the solid")
	rootCmd.Flags().StringVarP(&flagReference, "reference", "r", "0, 0, 0", `reference point: "x, y, z" or "center of mass"`)
}

func run(cmd *cobra.Command, args []string) error {
	// Everything checkable from the arguments alone fails before the mesh
	// is even opened.
	factor, err := units.Multiplier(flagUnits, flagScale)
	if err != nil {
		return err
	}
	reference, err := massprops.ParseReference(flagReference)
	if err != nil {
		return err
	}
	render, err := output.Lookup(flagFormat)
	if err != nil {
		return err
	}
	if flagMass <= 0 {
		return fmt.Errorf("mass must be positive, got %g", flagMass)
	}

	model, err := stl.Parse(args[0])
	if err != nil {
		return err
	}
	model.Scale(factor)

	props, err := massprops.Compute(model)
	if err != nil {
		return err
	}

	tensor, err := props.InertiaAt(flagMass, reference.Resolve(props))
	if err != nil {
		return err
	}

	fmt.Println(render(tensor))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
