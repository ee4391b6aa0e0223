package hovergrid

import (
	"fmt"
	"log"
	"time"
)

// debugStatsWindow is the number of frames aggregated per stats line.
const debugStatsWindow = 120

// debugStats aggregates per-frame draw timing. Only populated when
// Scene.debug is true.
type debugStats struct {
	frames    int
	drawTime  time.Duration
	sprites   int
	timelines int
}

// record adds one frame and logs the averages once per window.
func (st *debugStats) record(draw time.Duration, sprites, timelines int) {
	st.frames++
	st.drawTime += draw
	st.sprites = sprites
	if timelines > st.timelines {
		st.timelines = timelines
	}
	if st.frames < debugStatsWindow {
		return
	}
	logf("draw: %v avg | sprites: %d | peak timelines: %d",
		st.drawTime/time.Duration(st.frames), st.sprites, st.timelines)
	*st = debugStats{}
}

func logf(format string, args ...any) {
	log.Printf("[hovergrid] "+format, args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("hovergrid debug: %s on disposed node %q", op, n.Name))
	}
}
