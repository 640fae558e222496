// Package layout is a flexbox subset measured in terminal cells.
//
// Calculate walks a Layoutable tree and writes each node's border box and
// content box. Containers lay children out in rows or columns, optionally
// wrapping, with gap, padding, margin, grow and shrink. Sizes are fixed,
// percent or intrinsic. The flip package aliases these types for element
// options.
package layout
