package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bmscap/internal/frame"
	"bmscap/internal/schema"
)

func newSchemaCommand(ctx *commandContext) *cobra.Command {
	var faultSource string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the output column list",
		Long: "Print the output column list.\n\n" +
			"The columns are identical for every row of a run. Pass the same\n" +
			"--fault-source you will use for the capture to see resolved fault\n" +
			"column names instead of positional ones.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			faultColumns := frame.ResolveFaultColumns(resolveFaultSource(faultSource, cfg), logger)
			sch, err := schema.Build(faultColumns)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, sch.Len())
			for i, column := range sch.Columns() {
				rows = append(rows, []string{strconv.Itoa(i + 1), column})
			}
			fmt.Println(renderTable([]string{"#", "column"}, rows, 1))
			return nil
		},
	}

	cmd.Flags().StringVar(&faultSource, "fault-source", "", "Firmware source used to extract fault column names")
	return cmd
}
