// Package ioformat reads and writes the text formats the command-line
// driver speaks: a whitespace-separated dense matrix or a neighbour-count-
// prefixed adjacency list on input, and a headered CSV of point coordinates
// plus cluster index on output. None of this is exercised by the core
// pipeline packages directly — it exists at the process boundary only.
package ioformat
