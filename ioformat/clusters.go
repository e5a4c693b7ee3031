package ioformat

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteClusters writes one CSV row per point: its d coordinates followed
// by its cluster index, with header x0,x1,...,x(d-1),cluster.
func WriteClusters(w io.Writer, points [][]float64, assignments []int) error {
	if len(points) != len(assignments) {
		return fmt.Errorf("%w: %d points, %d assignments", ErrMalformedInput, len(points), len(assignments))
	}

	cw := csv.NewWriter(w)
	if len(points) > 0 {
		d := len(points[0])
		header := make([]string, d+1)
		for j := 0; j < d; j++ {
			header[j] = fmt.Sprintf("x%d", j)
		}
		header[d] = "cluster"
		if err := cw.Write(header); err != nil {
			return err
		}
	}

	for i, pt := range points {
		row := make([]string, len(pt)+1)
		for j, v := range pt {
			row[j] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		row[len(pt)] = strconv.Itoa(assignments[i])
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
