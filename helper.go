package wtree

import (
	"image"
	"reflect"

	"golang.org/x/exp/constraints"
)

func pt(v int) image.Point {
	return image.Point{v, v}
}

func rect(p image.Point) image.Rectangle {
	return image.Rectangle{image.ZP, p}
}

func minimum[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maximum[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// clamp returns v limited to [lo, hi]. If hi < lo, lo wins.
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// dim returns the coordinate of p along the main axis.
func dim(p image.Point, vertical bool) int {
	if vertical {
		return p.Y
	}
	return p.X
}

// cross returns the coordinate of p across the main axis.
func cross(p image.Point, vertical bool) int {
	return dim(p, !vertical)
}

// mkpt builds a point from a main and cross axis coordinate.
func mkpt(main, cross int, vertical bool) image.Point {
	if vertical {
		return image.Pt(cross, main)
	}
	return image.Pt(main, cross)
}

// same returns whether a and b are equal. Values whose dynamic type cannot be
// compared, e.g. structs holding slices, are never the same.
func same(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}
