// ABOUTME: Integration tests for the lifedash CLI.
// ABOUTME: Builds the binary and drives a full day through it against a temp database.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "lifedash")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/lifedash")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	run := func(args ...string) string {
		t.Helper()
		cmd := exec.Command(binary, append([]string{"--db", dbPath}, args...)...)
		cmd.Env = append(os.Environ(),
			"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
			"XDG_DATA_HOME="+tmpDir,
			"NO_COLOR=1",
		)
		output, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("lifedash %s: %v\n%s", strings.Join(args, " "), err, output)
		}
		return string(output)
	}
	expect := func(output, want string) {
		t.Helper()
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}

	expect(run("remind", "add", "water the plants"), "Added reminder #1")
	expect(run("log", "food", "porridge", "--meal", "breakfast"), "Logged food")
	expect(run("log", "training", "run", "--duration", "30"), "Logged training")
	expect(run("weight", "add", "81.4"), "81.4 kg")
	expect(run("summary", "set", "--highlight", "sunny walk", "--energy", "8"), "Saved summary")
	expect(run("sub", "add", "Netflix", "15.99", "--category", "entertainment"), "Added Netflix")
	expect(run("sub", "add", "Domain", "120", "--cycle", "yearly"), "Added Domain")

	today := run("today")
	expect(today, "water the plants")
	expect(today, "porridge")
	expect(today, "sunny walk")

	expect(run("list", "training"), "30 min")
	expect(run("sub", "list"), "$25.99/month")
	expect(run("stats"), "81.4 kg")

	expect(run("remind", "done", "1"), "Done: water the plants")
	if out := run("remind", "list"); !strings.Contains(out, "No reminders.") {
		t.Errorf("Expected no pending reminders, got: %s", out)
	}

	backup := filepath.Join(tmpDir, "backup.json")
	expect(run("export", "json", "-o", backup), "Exported to")
	if _, err := os.Stat(backup); err != nil {
		t.Errorf("Expected backup file: %v", err)
	}
}
