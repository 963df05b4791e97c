package gen_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// runExampleIntegrationTest copies the hand-written sources of an example
// into a scratch package inside the module, generates its binding with the
// optbind command, and checks that the result compiles.
func runExampleIntegrationTest(t *testing.T, exampleName string) {
	t.Helper()

	if testing.Short() {
		t.Skip("runs the go toolchain")
	}

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	exampleDir := filepath.Join(repoRoot, "examples", exampleName)

	// The scratch package must live inside the module to import optbind/bind.
	outDir, err := os.MkdirTemp(repoRoot, "optbind-it-")
	if err != nil {
		t.Fatalf("scratch dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(outDir) })

	entries, err := os.ReadDir(exampleDir)
	if err != nil {
		t.Fatalf("read example: %v", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") ||
			strings.HasSuffix(name, "_test.go") || strings.HasSuffix(name, "_optbind.go") {
			continue
		}

		b, err := os.ReadFile(filepath.Join(exampleDir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}

		if err := os.WriteFile(filepath.Join(outDir, name), b, 0o644); err != nil {
			t.Fatalf("copy %s: %v", name, err)
		}
	}

	pkg := "./" + filepath.Base(outDir)

	cmd := exec.CommandContext(t.Context(), "go", "run", "./cmd/optbind", pkg)
	cmd.Dir = repoRoot

	b, err := cmd.CombinedOutput()
	if err != nil {
		// Best-effort: if any file got written, dump it for easier debugging.
		if entries, readErr := os.ReadDir(outDir); readErr == nil {
			for _, e := range entries {
				if !strings.Contains(e.Name(), "_optbind") {
					continue
				}

				p := filepath.Join(outDir, e.Name())
				if fb, rerr := os.ReadFile(p); rerr == nil {
					t.Logf("generated file %s:\n%s", p, string(fb))
				}
			}
		}

		t.Fatalf("gen failed: %v\n%s", err, string(b))
	}

	build := exec.CommandContext(t.Context(), "go", "vet", pkg)
	build.Dir = repoRoot

	b, err = build.CombinedOutput()
	if err != nil {
		t.Fatalf("compile failed: %v\n%s", err, string(b))
	}
}

func TestGenerate_BasicExample_Compiles(t *testing.T) {
	runExampleIntegrationTest(t, "basic")
}

func TestGenerate_ServerExample_Compiles(t *testing.T) {
	runExampleIntegrationTest(t, "server")
}
