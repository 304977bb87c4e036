// ABOUTME: Integration tests for the genzhealth CLI.
// ABOUTME: Builds the binary and runs the full workflow against a sample CSV.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/genzhealth/internal/testutil"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(projectRoot, "genzhealth")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/genzhealth")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(binary)

	dataPath := testutil.WriteSample(t)
	workDir := t.TempDir()

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--data", dataPath}, args...)
		cmd := exec.Command(binary, fullArgs...)
		cmd.Dir = workDir
		cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+t.TempDir())
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Summary over every respondent
	output, err := run("summary")
	if err != nil {
		t.Fatalf("Failed to summarize: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Sample Size: 9") {
		t.Errorf("Expected 'Sample Size: 9' in output, got: %s", output)
	}

	// Filtered summary as markdown
	output, err = run("summary", "--gender", "Female", "--format", "markdown")
	if err != nil {
		t.Fatalf("Failed to summarize as markdown: %v\n%s", err, output)
	}
	if !strings.Contains(output, "| Female |") {
		t.Errorf("Expected Female row in markdown, got: %s", output)
	}

	// Export to the default file name
	output, err = run("export", "--exercise", "No")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Exported 2 rows") {
		t.Errorf("Expected 'Exported 2 rows' in output, got: %s", output)
	}
	if _, err := os.Stat(filepath.Join(workDir, "genz_filtered.csv")); err != nil {
		t.Errorf("Expected genz_filtered.csv in working directory: %v", err)
	}

	// Classify
	output, err = run("classify", "24.9")
	if err != nil {
		t.Fatalf("Failed to classify: %v\n%s", err, output)
	}
	if strings.TrimSpace(output) != "Normal" {
		t.Errorf("Expected 'Normal', got: %s", output)
	}

	// Missing dataset is fatal
	cmd := exec.Command(binary, "--data", filepath.Join(workDir, "missing.csv"), "summary")
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+t.TempDir())
	if output, err := cmd.CombinedOutput(); err == nil {
		t.Errorf("Expected failure for missing dataset, got: %s", output)
	}
}
