package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"anchor/internal/syncer"
)

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
)

func printReport(out io.Writer, report syncer.Report) {
	rows := [][]string{
		{"Subtitle lines", strconv.Itoa(report.Lines)},
		{"Speech segments", strconv.Itoa(report.Segments)},
		{"Anchors", strconv.Itoa(report.Anchors)},
		{"Rejected outliers", strconv.Itoa(report.RejectedOutliers)},
		{"Overlaps fixed", strconv.Itoa(report.OverlapsFixed)},
	}
	for i, pass := range report.RepairPasses {
		rows = append(rows, []string{
			fmt.Sprintf("Repair pass %d", i+1),
			fmt.Sprintf("%d zones, %d repaired", pass.Zones, pass.Repaired),
		})
	}

	fmt.Fprintln(out, renderTable(
		[]string{"Metric", "Value"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))
	printOK(out, fmt.Sprintf("wrote %s", report.Output))
}

func printOK(out io.Writer, message string) {
	line := "OK " + message
	if shouldColorize(out) {
		line = ansiGreen + line + ansiReset
	}
	fmt.Fprintln(out, line)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
