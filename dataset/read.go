package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cpop/geom"
)

// Format names a point file encoding.
type Format string

const (
	// FormatYAML is a YAML document; JSON input is accepted as well.
	FormatYAML Format = "yaml"
	// FormatCSV is "x,y[,color]" rows with an optional header.
	FormatCSV Format = "csv"
)

// record is one point in a YAML/JSON document.
type record struct {
	X     *float64 `yaml:"x"`
	Y     *float64 `yaml:"y"`
	Color string   `yaml:"color"`
}

// document is the mapping form: a top-level "points" key.
type document struct {
	Points []record `yaml:"points"`
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// ReadFile loads points from path, choosing the decoder by extension.
func ReadFile(path string) ([]geom.ColoredPoint, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	pts, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	return pts, nil
}

// Read decodes points from r in the given format.
func Read(r io.Reader, format Format) ([]geom.ColoredPoint, error) {
	var (
		pts []geom.ColoredPoint
		err error
	)
	switch format {
	case FormatYAML:
		pts, err = ReadYAML(r)
	case FormatCSV:
		pts, err = ReadCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, ErrEmptyFile
	}

	return pts, nil
}

// ReadYAML decodes either a bare sequence of {x, y, color} records or a
// mapping with a "points" key holding that sequence.
func ReadYAML(r io.Reader) ([]geom.ColoredPoint, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}
	if len(root.Content) == 0 {
		return nil, ErrEmptyFile
	}

	var recs []record
	switch root.Content[0].Kind {
	case yaml.SequenceNode:
		if err := root.Content[0].Decode(&recs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
	case yaml.MappingNode:
		var doc document
		if err := root.Content[0].Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
		recs = doc.Points
	default:
		return nil, fmt.Errorf("%w: expected a sequence or a mapping", ErrUnknownFormat)
	}

	pts := make([]geom.ColoredPoint, 0, len(recs))
	for i, rec := range recs {
		if rec.X == nil || rec.Y == nil {
			return nil, fmt.Errorf("%w: record %d lacks x or y", ErrBadRecord, i)
		}
		pts = append(pts, geom.Colored(rec.Color, *rec.X, *rec.Y))
	}

	return pts, nil
}

// ReadCSV decodes "x,y[,color]" rows. A first row whose x field is not a
// number is treated as a header. Blank color fields stay empty.
func ReadCSV(r io.Reader) ([]geom.ColoredPoint, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var pts []geom.ColoredPoint
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("%w: row %d has %d fields", ErrBadRecord, row, len(fields))
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if errX != nil && row == 1 {
			continue // header
		}
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: row %d: %q", ErrBadRecord, row, strings.Join(fields, ","))
		}
		color := ""
		if len(fields) == 3 {
			color = strings.TrimSpace(fields[2])
		}
		pts = append(pts, geom.Colored(color, x, y))
	}

	return pts, nil
}
