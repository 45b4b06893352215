package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"anchor/internal/subtitle"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeTestConfig points every directory at tmp so commands never touch
// the real home directory.
func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	body := fmt.Sprintf(`[paths]
cache_dir = %q
log_dir = %q
work_dir = %q
`,
		filepath.Join(dir, "cache"),
		filepath.Join(dir, "logs"),
		filepath.Join(dir, "work"),
	)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q does not contain %q", output, want)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// A second init must refuse to overwrite.
	if _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error on existing config file")
	}
}

func TestConfigValidate(t *testing.T) {
	cfgPath := writeTestConfig(t, t.TempDir())

	out, err := runCLI(t, "--config", cfgPath, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigShow(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)

	out, err := runCLI(t, "--config", cfgPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "recognition model")
	requireContains(t, out, "large-v3")
	requireContains(t, out, filepath.Join(dir, "cache"))
}

func TestPointSyncCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeTestConfig(t, dir)

	var target, ref []subtitle.Line
	for i := 0; i < 5; i++ {
		text := fmt.Sprintf("alpha%d bravo%d charlie%d", i, i, i)
		start := i * 4000
		target = append(target, subtitle.Line{
			Index: i + 1, Start: start, End: start + 2000, Text: text,
		})
		ref = append(ref, subtitle.Line{
			Index: i + 1, Start: start + 2000, End: start + 4000, Text: text,
		})
	}

	targetPath := filepath.Join(dir, "target.srt")
	refPath := filepath.Join(dir, "reference.srt")
	if err := subtitle.SaveFile(targetPath, target); err != nil {
		t.Fatal(err)
	}
	if err := subtitle.SaveFile(refPath, ref); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "fixed.srt")
	out, err := runCLI(t, "--config", cfgPath, "pointsync", targetPath, refPath, "--output", outPath)
	if err != nil {
		t.Fatalf("pointsync: %v", err)
	}
	requireContains(t, out, "wrote "+outPath)

	synced, err := subtitle.LoadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(synced) != 5 {
		t.Fatalf("len = %d, want 5", len(synced))
	}
	for i, line := range synced {
		want := i*4000 + 2000
		if line.Start != want {
			t.Errorf("line %d start = %d, want %d", i, line.Start, want)
		}
	}
}
