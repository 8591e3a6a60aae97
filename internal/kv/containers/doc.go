// Package containers runs the kv stores against real redis and postgres
// containers started with dockertest. Run with -tags docker_test.
package containers
