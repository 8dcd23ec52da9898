package main_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// #nosec G204
func buildBinary(t *testing.T) string {
	t.Helper()
	goExecutable, lookupError := exec.LookPath("go")
	if lookupError != nil {
		t.Skip("go toolchain not available")
	}
	binaryName := "ltree_integration_test_binary"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}
	binaryPath := filepath.Join(t.TempDir(), binaryName)

	currentDirectory, directoryError := os.Getwd()
	if directoryError != nil {
		t.Fatalf("get working directory: %v", directoryError)
	}
	buildCommand := exec.Command(goExecutable, "build", "-o", binaryPath, ".")
	buildCommand.Dir = currentDirectory
	if buildOutput, buildError := buildCommand.CombinedOutput(); buildError != nil {
		t.Fatalf("build binary: %v\n%s", buildError, string(buildOutput))
	}
	return binaryPath
}

// #nosec G204
func runBinary(t *testing.T, binaryPath string, workingDirectory string, arguments ...string) (string, string, int) {
	t.Helper()
	command := exec.Command(binaryPath, arguments...)
	command.Dir = workingDirectory
	command.Env = append(os.Environ(), "HOME="+t.TempDir(), "NO_COLOR=1")
	var standardOutput, standardError bytes.Buffer
	command.Stdout = &standardOutput
	command.Stderr = &standardError

	exitCode := 0
	if runError := command.Run(); runError != nil {
		var exitError *exec.ExitError
		if !errors.As(runError, &exitError) {
			t.Fatalf("run binary: %v", runError)
		}
		exitCode = exitError.ExitCode()
	}
	return standardOutput.String(), standardError.String(), exitCode
}

func TestBinaryRendersTreeAndReportsFailures(t *testing.T) {
	binaryPath := buildBinary(t)
	workspace := t.TempDir()
	for _, relativePath := range []string{"a.txt", "b.rs", filepath.Join("sub", "x")} {
		absolutePath := filepath.Join(workspace, relativePath)
		if err := os.MkdirAll(filepath.Dir(absolutePath), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(absolutePath, []byte("content"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	standardOutput, standardError, exitCode := runBinary(t, binaryPath, workspace, "-s", "2")
	if exitCode != 0 {
		t.Fatalf("expected success, got exit code %d\n%s", exitCode, standardError)
	}
	expectedOutput := ".\n    ├── a.txt\n    └── b.rs\n    ... (1 more entries)\n"
	if standardOutput != expectedOutput {
		t.Fatalf("unexpected output:\n%s", standardOutput)
	}

	standardOutput, standardError, exitCode = runBinary(t, binaryPath, workspace, "missing")
	if exitCode == 0 {
		t.Fatalf("expected failure exit code for missing path")
	}
	if standardOutput != "" {
		t.Fatalf("expected no tree output, got %q", standardOutput)
	}
	if !strings.Contains(standardError, "does not exist") {
		t.Fatalf("expected error message on standard error, got %q", standardError)
	}
}
