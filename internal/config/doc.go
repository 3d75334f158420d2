// Package config resolves rcargo's settings once per invocation: the target
// root, the convenience-link settings, the wrapped cargo binary and the log
// level. Values come from RCARGO_* environment variables, then the optional
// ~/.rcargo/config.yaml, then built-in defaults.
package config
