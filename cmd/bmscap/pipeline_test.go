package main

import (
	"path/filepath"
	"testing"

	"bmscap/internal/config"
)

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		directory string
		want      string
	}{
		{
			name:   "absolute output ignores configured directory",
			output: "/data/run.csv",
			want:   "/data/run.csv",
		},
		{
			name:      "relative output joins configured directory",
			output:    "run.csv",
			directory: "/data/captures",
			want:      "/data/captures/run.csv",
		},
		{
			name:      "joined path is cleaned",
			output:    "logs/../run.csv",
			directory: "/data/captures",
			want:      "/data/captures/run.csv",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Output.Directory = tc.directory

			got, err := resolveOutputPath(tc.output, cfg)
			if err != nil {
				t.Fatalf("resolveOutputPath returned error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("resolveOutputPath = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveOutputPathNormalizesRelativeDirectory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Output.Directory = "captures"

	got, err := resolveOutputPath("run.csv", cfg)
	if err != nil {
		t.Fatalf("resolveOutputPath returned error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("joined path not absolute: %q", got)
	}
	if filepath.Base(got) != "run.csv" || filepath.Base(filepath.Dir(got)) != "captures" {
		t.Fatalf("unexpected joined path: %q", got)
	}
}
