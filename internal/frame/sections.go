package frame

const (
	// Terminator is the literal that closes every frame on the wire. Frame
	// boundaries are defined by this marker alone; line breaks inside a
	// frame carry no meaning.
	Terminator = "ENDData"

	// CellCount is the number of cells each device reports per vector section.
	CellCount = 14

	// FaultCount is the number of diagnostic fault flags carried per frame.
	FaultCount = 187
)

type valueKind int

const (
	kindInt valueKind = iota
	kindFloat
)

// section describes one labeled group in the frame layout: the wire label
// that introduces it, its name in diagnostics, the numeric kind of its
// values, and the exact number of value tokens it must carry.
type section struct {
	label string
	name  string
	kind  valueKind
	count int
}

// layout is the fixed frame grammar in wire order. Labels are reproduced
// exactly as the firmware emits them, trailing colons included.
var layout = []section{
	{label: "TOTDEV", name: "TOTDEV", kind: kindInt, count: 1},
	{label: "CHAIN", name: "CHAIN", kind: kindInt, count: 1},
	{label: "DEV", name: "DEV", kind: kindInt, count: 1},
	{label: "SOC", name: "SOC", kind: kindInt, count: CellCount},
	{label: "Vcell:", name: "Vcell", kind: kindFloat, count: CellCount},
	{label: "TEMP:", name: "TEMP", kind: kindFloat, count: CellCount},
	{label: "BAL:", name: "BAL", kind: kindInt, count: CellCount},
	{label: "Curr:", name: "Curr", kind: kindFloat, count: 1},
	{label: "totV:", name: "totV", kind: kindFloat, count: 1},
	{label: "Vref:", name: "Vref", kind: kindFloat, count: 1},
	{label: "VUV:", name: "VUV", kind: kindFloat, count: 1},
	{label: "VOV:", name: "VOV", kind: kindFloat, count: 1},
	{label: "GPUT:", name: "GPUT", kind: kindFloat, count: 1},
	{label: "GPOT:", name: "GPOT", kind: kindFloat, count: 1},
	{label: "FAULTS:", name: "FAULTS", kind: kindInt, count: FaultCount},
	{label: "VTREF", name: "VTREF", kind: kindFloat, count: 1},
}
