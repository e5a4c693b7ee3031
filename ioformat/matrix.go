package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/spectral/matrix"
)

// ReadDenseMatrix reads n*n whitespace-separated decimal values (in
// row-major order, rows terminated or not — only whitespace is
// significant) into a new n x n Dense matrix.
func ReadDenseMatrix(r io.Reader, n int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !sc.Scan() {
				return nil, fmt.Errorf("%w: expected %d values, ran out at (%d,%d)", ErrMalformedInput, n*n, i, j)
			}
			v, err := strconv.ParseFloat(sc.Text(), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: value at (%d,%d): %v", ErrMalformedInput, i, j, err)
			}
			if err := m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return m, nil
}

// ReadAdjacencyList reads n lines, each beginning with a neighbour count
// followed by that many neighbour indices, into an adjacency-list slice
// suitable for epsilon.NewNeighborList.
func ReadAdjacencyList(r io.Reader, n int) ([][]int, error) {
	adj := make([][]int, n)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected neighbour count for node %d", ErrMalformedInput, i)
		}
		count, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: neighbour count for node %d: %v", ErrMalformedInput, i, err)
		}
		row := make([]int, count)
		for j := 0; j < count; j++ {
			if !sc.Scan() {
				return nil, fmt.Errorf("%w: node %d declared %d neighbours, ran out at %d", ErrMalformedInput, i, count, j)
			}
			idx, err := strconv.Atoi(sc.Text())
			if err != nil {
				return nil, fmt.Errorf("%w: neighbour %d of node %d: %v", ErrMalformedInput, j, i, err)
			}
			row[j] = idx
		}
		adj[i] = row
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return adj, nil
}
