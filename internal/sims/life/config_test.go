package life

import (
	"testing"
	"time"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"workers":  "3",
		"interval": "0.02",
		"radius":   "7",
	})
	if c.Workers != 3 || c.Interval != 20*time.Millisecond || c.Radius != 7 {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"workers":  "zero",
		"interval": "-1",
		"radius":   "0",
	})
	if c != def {
		t.Fatalf("expected defaults, got %+v", c)
	}
	if FromMap(nil) != def {
		t.Fatal("expected nil map to yield defaults")
	}
}
