package main

import (
	"fmt"

	"github.com/axisgl/gscene/sceneaux"
	"github.com/spf13/cobra"
)

var stlCmd = &cobra.Command{
	Use:   "stl <file>",
	Short: "Export the scene primitives as a binary STL mesh",
	Long:  "Write the surface triangles of the scene primitives to a binary STL file. The axis arrows are wireframe only, so use --shapes to export the demo solids.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSTL,
}

func init() {
	rootCmd.AddCommand(stlCmd)
}

func runSTL(cmd *cobra.Command, args []string) error {
	s, err := newScene()
	if err != nil {
		return err
	}
	n, err := sceneaux.WriteSTL(args[0], s)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d triangles to %s\n", n, args[0])
	return nil
}
