package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bmscap/internal/capture"
	"bmscap/internal/textinput"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var inputPath string
	var outputPath string
	var inputEncoding string
	var faultSource string
	var strict bool
	var noSessionLog bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a captured serial log file into CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("%w: open input: %v", capture.ErrInput, err)
			}
			defer file.Close()

			reader, err := textinput.NewReader(file, inputEncoding)
			if err != nil {
				return fmt.Errorf("%w: %v", capture.ErrConfiguration, err)
			}

			return runPipeline(cmd.Context(), ctx, runParams{
				mode:        "convert",
				source:      inputPath,
				output:      outputPath,
				reader:      reader,
				faultSource: faultSource,
				sessionLog:  !noSessionLog,
				opts: capture.Options{
					Strict: strict,
				},
			})
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to raw serial log text file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output CSV path")
	cmd.Flags().StringVar(&inputEncoding, "input-encoding", "", "Character encoding of the input file (default UTF-8)")
	cmd.Flags().StringVar(&faultSource, "fault-source", "", "Firmware source used to extract fault column names")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on the first malformed frame instead of skipping it")
	cmd.Flags().BoolVar(&noSessionLog, "no-session-log", false, "Do not record this run in the session journal")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
