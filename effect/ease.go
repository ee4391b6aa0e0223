package effect

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
)

var easesByName = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in_quad":      ease.InQuad,
	"out_quad":     ease.OutQuad,
	"in_out_quad":  ease.InOutQuad,
	"in_cubic":     ease.InCubic,
	"out_cubic":    ease.OutCubic,
	"in_out_cubic": ease.InOutCubic,
	"in_quart":     ease.InQuart,
	"out_quart":    ease.OutQuart,
	"in_out_quart": ease.InOutQuart,
	"in_sine":      ease.InSine,
	"out_sine":     ease.OutSine,
	"in_out_sine":  ease.InOutSine,
	"out_expo":     ease.OutExpo,
	"out_back":     ease.OutBack,
	"out_bounce":   ease.OutBounce,
	"out_elastic":  ease.OutElastic,
}

// powerAliases maps the power-N curve names used by web animation tools to
// their polynomial equivalents: power1 is quadratic, power2 cubic, power3
// quartic.
var powerAliases = map[string]string{
	"power1.in":    "in_quad",
	"power1.out":   "out_quad",
	"power1.inout": "in_out_quad",
	"power2.in":    "in_cubic",
	"power2.out":   "out_cubic",
	"power2.inout": "in_out_cubic",
	"power3.in":    "in_quart",
	"power3.out":   "out_quart",
	"power3.inout": "in_out_quart",
}

// EaseByName resolves an easing curve by name, e.g. "out_cubic" or
// "power2.out". Names are case-insensitive.
func EaseByName(name string) (ease.TweenFunc, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := powerAliases[key]; ok {
		key = alias
	}
	fn, ok := easesByName[key]
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", name)
	}
	return fn, nil
}
