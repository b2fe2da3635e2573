package schema

import (
	"fmt"

	"bmscap/internal/frame"
)

// Schema is the ordered output column list, fixed for the lifetime of a run.
type Schema struct {
	columns []string
}

// Build combines the fixed scalar and per-cell vector columns with the
// resolved fault columns. faultColumns must carry exactly frame.FaultCount
// names; the fault-name resolver guarantees that, so a mismatch here is an
// internal consistency failure.
func Build(faultColumns []string) (Schema, error) {
	if len(faultColumns) != frame.FaultCount {
		return Schema{}, fmt.Errorf("schema: %d fault columns, need %d", len(faultColumns), frame.FaultCount)
	}

	columns := make([]string, 0, 4+4*frame.CellCount+7+frame.FaultCount+1)
	columns = append(columns, "frame_index", "total_devices", "chain_id", "device_id")
	for cell := 1; cell <= frame.CellCount; cell++ {
		columns = append(columns, fmt.Sprintf("soc_cell%d", cell))
	}
	for cell := 1; cell <= frame.CellCount; cell++ {
		columns = append(columns, fmt.Sprintf("vcell%d_v", cell))
	}
	for cell := 1; cell <= frame.CellCount; cell++ {
		columns = append(columns, fmt.Sprintf("temp_cell%d_raw", cell))
	}
	for cell := 1; cell <= frame.CellCount; cell++ {
		columns = append(columns, fmt.Sprintf("bal_cell%d", cell))
	}
	columns = append(columns,
		"current_a",
		"pack_voltage_v",
		"vref_v",
		"vuv_threshold_v",
		"vov_threshold_v",
		"gput_threshold_v",
		"gpot_threshold_v",
	)
	columns = append(columns, faultColumns...)
	columns = append(columns, "vtref_v")

	return Schema{columns: columns}, nil
}

// Columns returns a copy of the ordered column names.
func (s Schema) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Len returns the number of columns.
func (s Schema) Len() int {
	return len(s.columns)
}
