//go:build !vixeldebug

package sim

const debugAssertions = false

func assertf(string, ...any) {}
