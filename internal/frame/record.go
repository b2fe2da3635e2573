package frame

import "strconv"

// Record is the validated, structured result of one frame. Values keep the
// exact token text from the wire so emitting them cannot lose precision
// against the firmware's own formatting.
type Record struct {
	TotalDevices string
	ChainID      string
	DeviceID     string
	SOC          []string
	Vcell        []string
	Temp         []string
	Bal          []string
	Current      string
	PackVoltage  string
	Vref         string
	VUV          string
	VOV          string
	GPUT         string
	GPOT         string
	Faults       []string
	VTRef        string
}

func (r *Record) assign(sectionName string, values []string) {
	switch sectionName {
	case "TOTDEV":
		r.TotalDevices = values[0]
	case "CHAIN":
		r.ChainID = values[0]
	case "DEV":
		r.DeviceID = values[0]
	case "SOC":
		r.SOC = values
	case "Vcell":
		r.Vcell = values
	case "TEMP":
		r.Temp = values
	case "BAL":
		r.Bal = values
	case "Curr":
		r.Current = values[0]
	case "totV":
		r.PackVoltage = values[0]
	case "Vref":
		r.Vref = values[0]
	case "VUV":
		r.VUV = values[0]
	case "VOV":
		r.VOV = values[0]
	case "GPUT":
		r.GPUT = values[0]
	case "GPOT":
		r.GPOT = values[0]
	case "FAULTS":
		r.Faults = values
	case "VTREF":
		r.VTRef = values[0]
	}
}

// Row flattens the record into one output row in schema column order.
// frameIndex is the 1-based attempted frame index, so skipped frames show
// up as gaps in the frame_index column.
func (r *Record) Row(frameIndex int) []string {
	row := make([]string, 0, 4+4*CellCount+7+FaultCount+1)
	row = append(row, strconv.Itoa(frameIndex), r.TotalDevices, r.ChainID, r.DeviceID)
	row = append(row, r.SOC...)
	row = append(row, r.Vcell...)
	row = append(row, r.Temp...)
	row = append(row, r.Bal...)
	row = append(row, r.Current, r.PackVoltage, r.Vref, r.VUV, r.VOV, r.GPUT, r.GPOT)
	row = append(row, r.Faults...)
	row = append(row, r.VTRef)
	return row
}
