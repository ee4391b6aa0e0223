package effect

import (
	"reflect"
	"testing"

	"github.com/tanema/gween/ease"
)

func sameFunc(a, b ease.TweenFunc) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func TestEaseByName(t *testing.T) {
	tests := []struct {
		name string
		want ease.TweenFunc
	}{
		{"linear", ease.Linear},
		{"out_cubic", ease.OutCubic},
		{"OUT_QUAD", ease.OutQuad},
		{" in_out_quart ", ease.InOutQuart},
		{"power1.out", ease.OutQuad},
		{"power2.out", ease.OutCubic},
		{"power3.inOut", ease.InOutQuart},
		{"out_elastic", ease.OutElastic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EaseByName(tt.name)
			if err != nil {
				t.Fatalf("EaseByName(%q): %v", tt.name, err)
			}
			if !sameFunc(got, tt.want) {
				t.Errorf("EaseByName(%q) returned the wrong curve", tt.name)
			}
		})
	}
}

func TestEaseByNameUnknown(t *testing.T) {
	if _, err := EaseByName("wobbly"); err == nil {
		t.Error("expected error for unknown ease")
	}
}
