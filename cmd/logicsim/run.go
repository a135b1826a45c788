package main

import (
	"log/slog"
	"os"

	ls "github.com/mhg42/logicsim"
	"github.com/mhg42/logicsim/stimulus"
	"github.com/mhg42/logicsim/wave"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate the adder over a stimulus sequence",
	Long: `Evaluates the ripple-carry adder once per stimulus cycle and prints the
result table. The stimulus is either the built-in sweep or a YAML file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		stimPath, _ := cmd.Flags().GetString("stimulus")
		out, _ := cmd.Flags().GetString("out")
		term, _ := cmd.Flags().GetBool("term")
		width, _ := cmd.Flags().GetInt("width")
		stride, _ := cmd.Flags().GetUint64("stride")
		cycles, _ := cmd.Flags().GetInt("cycles")

		var vectors []ls.Vector
		var err error
		if stimPath != "" {
			vectors, err = stimulus.Load(stimPath)
		} else {
			sweep := stimulus.DefaultSweep()
			sweep.Width = width
			sweep.Stride = stride
			vectors, err = sweep.Generate()
		}
		if err != nil {
			return err
		}
		if cycles > 0 && cycles < len(vectors) {
			vectors = vectors[:cycles]
		}

		results, err := ls.Eval(vectors)
		if err != nil {
			return err
		}

		if err := wave.Table(os.Stdout, vectors, results); err != nil {
			return err
		}
		if term {
			if err := wave.Draw(os.Stdout, results); err != nil {
				return err
			}
		}
		if out != "" {
			if err := wave.RenderPNG(out, results); err != nil {
				return err
			}
			logger.Info("waveform saved", "path", out)
		}
		logger.Info("simulation complete", "cycles", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("stimulus", "s", "", "YAML stimulus file (default: built-in sweep)")
	runCmd.Flags().StringP("out", "o", "", "write a PNG waveform to this path")
	runCmd.Flags().Bool("term", false, "draw the waveform in the terminal")
	runCmd.Flags().Int("width", 4, "operand width for the generated sweep")
	runCmd.Flags().Uint64("stride", 3, "operand A step for the generated sweep")
	runCmd.Flags().Int("cycles", 0, "cap the cycle count (0 = no cap)")
}
