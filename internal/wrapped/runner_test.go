package wrapped

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeCargo writes a shell script standing in for cargo and returns its path.
func fakeCargo(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake cargo is a POSIX shell script")
	}
	path := filepath.Join(t.TempDir(), "cargo")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_PassesArgsAndEnv(t *testing.T) {
	bin := fakeCargo(t, `echo "args=$*"; echo "dir=$CARGO_TARGET_DIR"`)

	var out bytes.Buffer
	r := &Runner{Bin: bin, Stdout: &out, Stderr: &out}
	code, err := r.Run(context.Background(), []string{"build", "--release"},
		map[string]string{"CARGO_TARGET_DIR": "/tmp/rcargo_targets/hello-5f5aa55"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "args=build --release") {
		t.Errorf("args not passed through: %q", out.String())
	}
	if !strings.Contains(out.String(), "dir=/tmp/rcargo_targets/hello-5f5aa55") {
		t.Errorf("CARGO_TARGET_DIR not set: %q", out.String())
	}
}

func TestRun_OverridesInheritedVariable(t *testing.T) {
	t.Setenv("CARGO_TARGET_DIR", "/inherited")
	bin := fakeCargo(t, `echo "dir=$CARGO_TARGET_DIR"`)

	var out bytes.Buffer
	r := &Runner{Bin: bin, Stdout: &out}
	if _, err := r.Run(context.Background(), nil, map[string]string{"CARGO_TARGET_DIR": "/redirected"}); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != "dir=/redirected" {
		t.Errorf("output = %q, want dir=/redirected", out.String())
	}
}

func TestRun_MirrorsExitCode(t *testing.T) {
	bin := fakeCargo(t, `exit 101`)

	r := &Runner{Bin: bin, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	code, err := r.Run(context.Background(), []string{"test"}, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if code != 101 {
		t.Errorf("code = %d, want 101", code)
	}
}

func TestRun_SignalIsOne(t *testing.T) {
	bin := fakeCargo(t, `kill -9 $$`)

	r := &Runner{Bin: bin, Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	code, err := r.Run(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if code != 1 {
		t.Errorf("code = %d, want 1", code)
	}
}

func TestRun_MissingBinary(t *testing.T) {
	r := &Runner{Bin: filepath.Join(t.TempDir(), "no-such-cargo")}
	if _, err := r.Run(context.Background(), []string{"build"}, nil); err == nil {
		t.Error("expected spawn error for missing binary")
	}
}

func TestVersion(t *testing.T) {
	bin := fakeCargo(t, `echo "cargo 1.75.0 (1d8b05cdd 2023-11-20)"`)

	got, err := New(bin).Version(context.Background())
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if got != "cargo 1.75.0 (1d8b05cdd 2023-11-20)" {
		t.Errorf("Version = %q", got)
	}
}

func TestVersion_Failure(t *testing.T) {
	bin := fakeCargo(t, `echo broken >&2; exit 2`)

	if _, err := New(bin).Version(context.Background()); err == nil {
		t.Error("expected error for non-zero exit")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct{ in, want int }{{0, 0}, {2, 2}, {101, 101}, {-1, 1}}
	for _, tt := range tests {
		if got := ExitCode(tt.in); got != tt.want {
			t.Errorf("ExitCode(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSetEnv(t *testing.T) {
	env := []string{"PATH=/bin", "CARGO_TARGET_DIR=/old"}
	env = setEnv(env, "CARGO_TARGET_DIR", "/new")
	if len(env) != 2 || env[1] != "CARGO_TARGET_DIR=/new" {
		t.Errorf("replace failed: %v", env)
	}
	env = setEnv(env, "RUSTFLAGS", "-Ctarget-cpu=native")
	if len(env) != 3 || env[2] != "RUSTFLAGS=-Ctarget-cpu=native" {
		t.Errorf("append failed: %v", env)
	}
}
