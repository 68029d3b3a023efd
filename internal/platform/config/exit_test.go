package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/gaurikolhe/roman-numeral-converter/internal/platform/config"
)

// os.Exit cannot be intercepted in-process, so the test re-runs itself.
func TestExitfTerminatesProcess(t *testing.T) {
	if os.Getenv("ROMAN_NUMERAL_EXITF_CHILD") == "1" {
		config.Exitf("parse flags: %s", "bad http addr")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfTerminatesProcess$")
	cmd.Env = append(os.Environ(), "ROMAN_NUMERAL_EXITF_CHILD=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "parse flags: bad http addr") {
		t.Fatalf("expected stderr to contain %q, got %q", "parse flags: bad http addr", string(out))
	}
}
