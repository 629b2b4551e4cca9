// Package encoder builds and runs invocations of the external texture
// encoder (img2dds).
//
// The encoder takes a cluster of short flags and the image path:
//
//	v  print a summary of the encode
//	c  compress
//	m  generate mipmaps
//	N  check whether the image is a normal map
//	n  force the normal map encode path
//	r  keep pixel data readable after encoding
//	s  rescale; consumes the next argument as a floating point factor
//
// Exit status 0 is success; anything else is failure. Output is not parsed.
package encoder

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/ddsbatch/pkg/rules"
)

// Scales holds the global rescale factors
type Scales struct {
	Model     float64
	NormalMap float64
}

// DefaultScales leaves textures at their original size
var DefaultScales = Scales{Model: 1, NormalMap: 1}

// Invocation is one encoder call
type Invocation struct {
	Flags string
	// Scale is the argument of the 's' flag, empty when not rescaling
	Scale string
	Path  string
}

// Args returns the argv passed to the encoder binary. The path is a single
// argument, so spaces need no quoting.
func (i Invocation) Args() []string {
	args := []string{i.Flags}
	if i.Scale != "" {
		args = append(args, i.Scale)
	}
	return append(args, i.Path)
}

func (i Invocation) String() string {
	return strings.Join(i.Args(), " ")
}

// Build derives the invocation for a classified texture. It is a pure
// function of its inputs.
func Build(c rules.Classification, path string, s Scales) Invocation {
	var flags strings.Builder
	flags.WriteString("-vc")

	var scale float64
	switch {
	case c.IsModel && c.IsNormalMap:
		flags.WriteString("mn")
		scale = pick(c.NormalMapScale, s.NormalMap)
	case c.IsModel:
		flags.WriteString("mN")
		scale = pick(c.ModelScale, s.Model)
	}

	if c.KeepReadable {
		flags.WriteByte('r')
	}

	inv := Invocation{Path: path}
	if c.IsModel {
		// 's' stays last in the cluster since it takes the next argument
		flags.WriteByte('s')
		inv.Scale = strconv.FormatFloat(scale, 'g', -1, 64)
	}
	inv.Flags = flags.String()
	return inv
}

func pick(override, global float64) float64 {
	if override > 0 {
		return override
	}
	if global > 0 {
		return global
	}
	return 1
}
