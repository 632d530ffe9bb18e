// Package contour traces iso-lines through a 2D scalar field with marching
// squares and returns them as closed polygon rings.
//
// What:
//
//   - Samples sit on integer lattice points (x, y), 0 ≤ x < W, 0 ≤ y < H.
//   - A sample is "above" when it is ≥ the threshold, "below" otherwise.
//   - Every unit cell between four samples is classified into one of 16
//     cases; a fixed table maps each case to directed edge-to-edge segments.
//   - Segments are stitched by lattice-edge identity, never by comparing
//     floating point coordinates.
//
// Orientation:
//
//   - Coordinates are y-down (screen space). Walking any ring, the above
//     region is on the right-hand side. Exterior rings therefore have a
//     positive signed area (Ring.Area) and holes a negative one.
//
// Saddles:
//
//   - Cases 5 and 10 use the mean of the four corners: mean ≥ threshold joins
//     the two above corners through the cell centre, otherwise they are
//     separated.
//
// Field border:
//
//   - Chains that leave the field are closed along the field perimeter
//     through the above-threshold border samples. A uniform field, or one
//     whose boundary never crosses the border, never produces the perimeter
//     on its own; it only appears as the exterior of holes when the whole
//     border is above. WithBorderClosing(false) drops open chains instead.
//
// Complexity: O(W·H) time and memory per threshold.
package contour
