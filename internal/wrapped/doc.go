// Package wrapped spawns the wrapped cargo binary. Standard streams are
// inherited, the child's exit status is mapped to a process exit code, and
// extra environment variables (the redirected CARGO_TARGET_DIR) are layered
// over the current environment.
package wrapped
