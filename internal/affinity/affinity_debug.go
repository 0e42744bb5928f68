//go:build enable_react_debug

package affinity

import (
	"fmt"

	"github.com/petermattis/goid"
)

// Guard remembers the goroutine a node was created on.
type Guard struct {
	gid int64
}

// Capture records the calling goroutine.
func Capture() Guard {
	return Guard{gid: goid.Get()}
}

// Check panics when called from a goroutine other than the captured one.
func (g Guard) Check(op string) {
	if gid := goid.Get(); gid != g.gid {
		panic(fmt.Sprintf(
			"react: %s called from goroutine %d, node owned by goroutine %d",
			op, gid, g.gid,
		))
	}
}
