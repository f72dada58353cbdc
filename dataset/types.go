package dataset

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for dataset generation and reading.
var (
	// ErrBadBounds indicates an empty, inverted or non-finite bounding box.
	ErrBadBounds = errors.New("dataset: invalid bounding box")

	// ErrBadSize indicates a negative point count or invalid shape parameter.
	ErrBadSize = errors.New("dataset: invalid size")

	// ErrUnknownFormat indicates a point file format that cannot be decoded.
	ErrUnknownFormat = errors.New("dataset: unknown format")

	// ErrEmptyFile indicates a point file without any points.
	ErrEmptyFile = errors.New("dataset: no points in input")

	// ErrBadRecord indicates a point record with a missing or malformed coordinate.
	ErrBadRecord = errors.New("dataset: malformed point record")
)

// Box is an axis-aligned bounding box [MinX, MaxX] × [MinY, MaxY].
type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// DefaultBox returns [0, 1e6]², the range used for performance runs.
func DefaultBox() Box {
	return Box{MinX: 0, MaxX: 1e6, MinY: 0, MaxY: 1e6}
}

// Validate checks that the box is finite and has positive width and height.
func (b Box) Validate() error {
	for _, v := range []float64{b.MinX, b.MaxX, b.MinY, b.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite bound in %+v", ErrBadBounds, b)
		}
	}
	if b.MaxX <= b.MinX || b.MaxY <= b.MinY {
		return fmt.Errorf("%w: %+v", ErrBadBounds, b)
	}

	return nil
}

// Kind names a generator for configuration and the CLI.
type Kind string

const (
	// KindUniform draws float coordinates uniformly in a Box.
	KindUniform Kind = "uniform"
	// KindUniformInt draws integer coordinates uniformly in a Box.
	KindUniformInt Kind = "uniform-int"
	// KindClusters builds two far clusters bridged by one close pair.
	KindClusters Kind = "clusters"
	// KindIdentical repeats a single point.
	KindIdentical Kind = "identical"
	// KindLine places points at equal steps along one vertical line.
	KindLine Kind = "line"
)

// Kinds lists every known generator.
func Kinds() []Kind {
	return []Kind{KindUniform, KindUniformInt, KindClusters, KindIdentical, KindLine}
}
