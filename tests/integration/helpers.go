//go:build integration

package integration

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"os/exec"
	"testing"
)

// isCI returns true if running in a CI environment.
// It checks for common CI environment variables.
func isCI() bool {
	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "CIRCLECI", "TRAVIS", "JENKINS_URL"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// skipOrFailOnMissingKey handles a missing API key.
// In CI environments, it fails loudly unless NANOBANANA_SKIP_INTEGRATION
// is set. In local development, it skips the test gracefully.
func skipOrFailOnMissingKey(t *testing.T, keyName string) {
	t.Helper()
	if isCI() && os.Getenv("NANOBANANA_SKIP_INTEGRATION") == "" {
		t.Fatalf("%s not set (CI environment detected; set NANOBANANA_SKIP_INTEGRATION=1 to skip)", keyName)
	}
	t.Skipf("%s not set", keyName)
}

// skipIfNoGeminiKey skips the test if GEMINI_API_KEY is not set.
func skipIfNoGeminiKey(t *testing.T) {
	t.Helper()
	if os.Getenv("GEMINI_API_KEY") == "" {
		skipOrFailOnMissingKey(t, "GEMINI_API_KEY")
	}
}

// getGeminiKey returns the Gemini API key from environment.
func getGeminiKey(t *testing.T) string {
	t.Helper()
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		t.Fatal("GEMINI_API_KEY not set")
	}
	return key
}

// testPNG renders a small solid-color PNG for upload tests.
func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
	return buf.Bytes()
}

// writeTestPNG writes a small PNG to a temp file and returns its path.
func writeTestPNG(t *testing.T) string {
	t.Helper()

	path := t.TempDir() + "/input.png"
	if err := os.WriteFile(path, testPNG(t), 0o644); err != nil {
		t.Fatalf("writing test PNG: %v", err)
	}
	return path
}

type cliResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runCLI executes the nanobanana CLI with the given arguments.
// It uses the pre-built binary from TestMain for efficiency.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()
	return runCLIWithEnv(t, os.Environ(), args...)
}

// runCLIWithEnv executes the CLI with a fully specified environment.
func runCLIWithEnv(t *testing.T, env []string, args ...string) cliResult {
	t.Helper()

	binaryPath := getCliBinary()
	if binaryPath == "" {
		t.Fatal("CLI binary not built - TestMain may not have run")
	}

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = env
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("Failed to run CLI: %v", err)
		}
	}

	return cliResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// envWithout returns the current environment with the named variables
// removed.
func envWithout(names ...string) []string {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}

	var env []string
	for _, entry := range os.Environ() {
		keep := true
		for name := range drop {
			if len(entry) > len(name) && entry[:len(name)] == name && entry[len(name)] == '=' {
				keep = false
				break
			}
		}
		if keep {
			env = append(env, entry)
		}
	}
	return env
}
