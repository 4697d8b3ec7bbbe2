package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeview/internal/render/term"
	"github.com/SeamusWaldron/cubeview/internal/render/window"
	"github.com/SeamusWaldron/cubeview/internal/tui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the cube in a desktop window",
	Long:  `Open a desktop window with the 3D cube. This is the default command.`,
	RunE:  runWindow,
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Show the cube in the terminal",
	Long: `Render the 3D cube in the terminal using half-block pixels.
Works best in a true-color terminal; others fall back to 216 colors.`,
	RunE: runTerm,
}

var netCmd = &cobra.Command{
	Use:   "net",
	Short: "Show the cube as an unfolded net",
	Long: `Show the cube as a flat net in the terminal. Stickers in the turning
slice are shaded while a move animates.`,
	RunE: runNet,
}

func init() {
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(netCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	e, err := setup("window", true)
	if err != nil {
		return err
	}
	defer e.close()

	return window.Run(e.newApp(), e.keys, e.palette, e.cfg.Window, e.cfg.Animation.FPS, e.log)
}

func runTerm(cmd *cobra.Command, args []string) error {
	e, err := setup("term", false)
	if err != nil {
		return err
	}
	defer e.close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()
	return term.Run(ctx, e.newApp(), e.keys, e.palette, float64(e.cfg.Animation.FPS), e.log)
}

func runNet(cmd *cobra.Command, args []string) error {
	e, err := setup("net", false)
	if err != nil {
		return err
	}
	defer e.close()

	return tui.Run(tui.New(e.newApp(), e.keys, e.palette, e.cfg.Animation.FPS))
}
