package main

import (
	"strings"
	"testing"
)

func TestRenderTableRightAlignsNumericColumns(t *testing.T) {
	out := renderTable(
		[]string{"#", "column"},
		[][]string{
			{"1", "alpha"},
			{"10", "beta"},
		},
		1,
	)

	for _, want := range []string{"#", "column", "alpha", "beta"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered table missing %q:\n%s", want, out)
		}
	}

	var alphaLine, betaLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "alpha") {
			alphaLine = line
		}
		if strings.Contains(line, "beta") {
			betaLine = line
		}
	}
	if alphaLine == "" || betaLine == "" {
		t.Fatalf("rows not found in output:\n%s", out)
	}
	// Right alignment pads "1" so its digit lines up with the end of "10".
	if strings.Index(alphaLine, "1") != strings.Index(betaLine, "10")+1 {
		t.Fatalf("numeric column not right-aligned:\n%s", out)
	}
}

func TestRenderTableFieldValuePairs(t *testing.T) {
	out := renderTable(
		[]string{"field", "value"},
		[][]string{
			{"output", "/tmp/run.csv"},
			{"frames", "12"},
		},
	)

	for _, want := range []string{"field", "value", "output", "/tmp/run.csv", "frames", "12"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered table missing %q:\n%s", want, out)
		}
	}
}
