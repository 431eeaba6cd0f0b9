package main

import (
	"strings"
	"testing"
)

func TestCheckBackend(t *testing.T) {
	if err := checkBackend("raster"); err != nil {
		t.Errorf("checkBackend(raster) = %v, want nil", err)
	}
	err := checkBackend("svg")
	if err == nil {
		t.Fatal("checkBackend(svg) should fail")
	}
	if !strings.Contains(err.Error(), "raster") {
		t.Errorf("error %q should list the raster backend", err)
	}
}
