// Package cli implements the command-line interface for cubeview.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	debug      bool
	frames     int
	fps        int
	record     bool
	dbPath     string
)

// rootCmd is the base command. Without a subcommand it opens the window.
var rootCmd = &cobra.Command{
	Use:   "cubeview",
	Short: "Interactive 3D cube viewer",
	Long: `cubeview - an interactive 3D Rubik's cube viewer.

Orbit the camera with the arrow keys, zoom with PageUp/PageDown and turn
faces from the keyboard. Every turn is animated; the number of stickers
out of place is logged after each move.

Keys:
  a s d f g h    U F L B R D clockwise
  1 2 3 4 5 6    U F L B R D counter-clockwise
  p o / l k      x x' / y y' (whole cube)
  0 scramble     i reset cube     r reset view
  w wireframe    b culling        x axes     m grey
  q quit`,
	Version: version,
	RunE:    runWindow,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./cubeview.yaml or the user config dir)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVar(&frames, "frames", 0, "Animation frames per quarter turn (default 10)")
	rootCmd.PersistentFlags().IntVar(&fps, "fps", 0, "Frames per second (default 60)")
	rootCmd.PersistentFlags().BoolVar(&record, "record", false, "Record committed moves to the history database")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "History database path (default: ~/.cubeview/history.db)")
}
