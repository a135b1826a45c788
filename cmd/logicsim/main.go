package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "logicsim",
	Short: "Combinational logic simulator with waveform output",
	Long: `logicsim evaluates a ripple-carry adder over a testbench stimulus
sequence and renders the resulting signal traces as a waveform.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
