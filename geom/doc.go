// Package geom provides the 2D geometry primitives used throughout quill:
// vectors, positions, rectangles, and translate-scale transforms.
//
// All types are small float32 value types. Units are points (logical
// pixels), with the origin at the top-left, X increasing right and Y
// increasing down.
//
// Vec2 represents a displacement (or a size), Pos2 a position. Keeping the
// two distinct makes layout code clearer: a position plus a vector is a
// position, a position minus a position is a vector.
package geom
