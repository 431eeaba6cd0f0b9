//go:build gpu

package main

import _ "github.com/gogpu/gg/gpu" // register gg's GPU accelerator
