package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	return c.Execute(context.Background(), f)
}

func TestReportCmd_WritesMarkdown(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.md")

	status := execute(t, &reportCmd{}, "-sample", "-investor", "철수", "-o", out)

	if status != subcommands.ExitSuccess {
		t.Fatalf("expected success, got %v", status)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Holdings report: 철수") {
		t.Errorf("unexpected report start: %.40s", data)
	}
}

func TestReportCmd_WritesHTML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.html")

	status := execute(t, &reportCmd{}, "-sample", "-investor", "영희", "-html", "-o", out)

	if status != subcommands.ExitSuccess {
		t.Fatalf("expected success, got %v", status)
	}
	data, _ := os.ReadFile(out)
	if !bytes.Contains(data, []byte("<table>")) {
		t.Errorf("expected HTML tables")
	}
}

func TestChartCmd_WritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.png")

	status := execute(t, &chartCmd{}, "-sample", "-investor", "전체", "-kind", "ranking", "-o", out)

	if status != subcommands.ExitSuccess {
		t.Fatalf("expected success, got %v", status)
	}
	data, _ := os.ReadFile(out)
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("expected a PNG file")
	}
}

func TestCommands_RejectBadFlags(t *testing.T) {
	tests := []struct {
		name string
		cmd  subcommands.Command
		args []string
		want subcommands.ExitStatus
	}{
		{"summary without investor", &summaryCmd{}, []string{"-sample"}, subcommands.ExitUsageError},
		{"summary with unknown currency", &summaryCmd{}, []string{"-sample", "-investor", "A", "-currency", "XYZ"}, subcommands.ExitUsageError},
		{"chart without output", &chartCmd{}, []string{"-sample", "-investor", "A"}, subcommands.ExitUsageError},
		{"investors without file", &investorsCmd{}, nil, subcommands.ExitFailure},
		{"report on missing file", &reportCmd{}, []string{"-investor", "A", "-raw", "/nonexistent/holdings.csv"}, subcommands.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := execute(t, tt.cmd, tt.args...); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
