//go:build vixeldebug

package sim

import "fmt"

const debugAssertions = true

func assertf(format string, args ...any) {
	panic(fmt.Sprintf("sim invariant: "+format, args...))
}
