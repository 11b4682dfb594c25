package main

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/exprtree"
)

func TestCanvasCells(t *testing.T) {
	c := newCanvas(21, 11, 10, 5)
	require.Equal(t, 21, c.width())
	require.Equal(t, 11, c.height())
	cases := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 10, 5},
		{-10, 5, 0, 0},
		{10, -5, 20, 10},
		{2.4, 1.2, 12, 4},
		{10.5, 0, nothing, 5},
		{0, -6, 10, nothing},
		{math.NaN(), math.Inf(1), nothing, nothing},
	}
	for _, tc := range cases {
		require.Equal(t, tc.col, c.col(tc.x), "col(%g)", tc.x)
		require.Equal(t, tc.row, c.row(tc.y), "row(%g)", tc.y)
	}
}

func TestCanvasPlot(t *testing.T) {
	e, err := exprtree.Parse("X^2-1")
	require.NoError(t, err)
	c := newCanvas(7, 5, 3, 2)
	pts := exprtree.Sample(e, -3, 3, 7)
	pts = append(pts, exprtree.Point{X: 0, Y: math.NaN()}, exprtree.Point{X: 1, Y: math.Inf(-1)})
	// Only X in {-1, 0, 1} give Y within [-2, 2].
	require.Equal(t, 3, c.plot(pts))
	var b strings.Builder
	n, err := c.WriteTo(&b)
	require.NoError(t, err)
	require.Equal(t, int64(b.Len()), n)
	want := "   |\n" +
		"   |\n" +
		"--*+*--\n" +
		"   *\n" +
		"   |\n"
	require.Equal(t, want, b.String())
}

func TestCanvasPlotJoins(t *testing.T) {
	e, err := exprtree.Parse("X^3")
	require.NoError(t, err)
	c := newCanvas(5, 9, 2, 8)
	// Y is -8, -1, 0, 1, 8 in rows 8, 5, 4, 4, 0.
	require.Equal(t, 5, c.plot(exprtree.Sample(e, -2, 2, 5)))
	var b strings.Builder
	_, err = c.WriteTo(&b)
	require.NoError(t, err)
	want := "  | *\n" +
		"  | *\n" +
		"  | *\n" +
		"  | *\n" +
		"--**-\n" +
		" *|\n" +
		" *|\n" +
		" *|\n" +
		"* |\n"
	require.Equal(t, want, b.String())
}

func TestCanvasPlotBreaks(t *testing.T) {
	c := newCanvas(5, 5, 2, 2)
	pts := []exprtree.Point{
		{X: -2, Y: -2},
		{X: -1, Y: math.Inf(1)},
		{X: 0, Y: 2},
		{X: 1, Y: 10},
		{X: 2, Y: -2},
	}
	// Undefined and out of range points leave gaps instead of joins.
	require.Equal(t, 3, c.plot(pts))
	var b strings.Builder
	_, err := c.WriteTo(&b)
	require.NoError(t, err)
	want := "  *\n" +
		"  |\n" +
		"--+--\n" +
		"  |\n" +
		"* | *\n"
	require.Equal(t, want, b.String())
}
