package gauss

import (
	"testing"
)

func TestSourceForKeyDeterministic(t *testing.T) {
	a := SourceForKey("2e3b2a66-0c59-4fd3-a3c7-1b1a85db5a86")
	b := SourceForKey("2e3b2a66-0c59-4fd3-a3c7-1b1a85db5a86")
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Expected identical streams for identical keys")
		}
	}
}

func TestSourceForKeyCanonicalizesUUID(t *testing.T) {
	a := SourceForKey("2E3B2A66-0C59-4FD3-A3C7-1B1A85DB5A86")
	b := SourceForKey("2e3b2a66-0c59-4fd3-a3c7-1b1a85db5a86")
	if a.Float64() != b.Float64() {
		t.Error("Expected the same stream regardless of key case")
	}
}

func TestSourceForKeyDistinctKeys(t *testing.T) {
	a := SourceForKey("2e3b2a66-0c59-4fd3-a3c7-1b1a85db5a86")
	b := SourceForKey("9a0ec1d8-5b4f-4a64-9123-0c88eb2f12e4")
	if a.Float64() == b.Float64() && a.Float64() == b.Float64() {
		t.Error("Expected different streams for different keys")
	}
}

func TestSourceForKeyPlainString(t *testing.T) {
	a := SourceForKey("not a uuid")
	b := SourceForKey("not a uuid")
	c := SourceForKey("NOT A UUID")
	if a.Float64() != b.Float64() {
		t.Error("Expected identical streams for identical plain keys")
	}
	// only UUID keys are canonicalized
	if a.Float64() == c.Float64() {
		t.Error("Expected case to matter for plain string keys")
	}
}
