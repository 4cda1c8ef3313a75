package main

import (
	"fmt"

	"github.com/axisgl/gscene/sceneaux"
	"github.com/spf13/cobra"
)

var labelsCmd = &cobra.Command{
	Use:   "labels <dir>",
	Short: "Write the rasterized tick label strips to PNG files",
	Long:  "Render every label strip variant of the configured scales without opening a window and save them to dir as <axis>-<variant>.png.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLabels,
}

func init() {
	rootCmd.AddCommand(labelsCmd)
}

func runLabels(cmd *cobra.Command, args []string) error {
	s, err := newScene()
	if err != nil {
		return err
	}
	files, err := sceneaux.WriteLabelPNGs(args[0], s)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
