package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/geometry"
	"github.com/df07/go-grid-raytracer/pkg/material"
)

// ErrMalformedOBJ is returned for OBJ records that cannot be parsed
var ErrMalformedOBJ = errors.New("malformed OBJ")

// OBJOptions places a loaded mesh in the scene
type OBJOptions struct {
	Scale    float64   // Uniform scale applied before translation; zero means 1
	Location core.Vec3 // Translation applied after scaling
	Material material.Material
}

// LoadOBJ loads a Wavefront OBJ file as a single model
func LoadOBJ(filename string, options OBJOptions) (*geometry.Model, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	model, err := ParseOBJ(file, options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	core.Logger().Info("OBJ loaded",
		"file", filename,
		"triangles", len(model.Triangles),
		"duration", time.Since(startTime))
	return model, nil
}

// ParseOBJ reads vertex (v) and face (f) records from r. Faces accept
// the v, v/vt, v//vn and v/vt/vn index forms with 1-based or negative
// (relative) indices; polygons are fan-triangulated. Every other record
// is ignored.
func ParseOBJ(r io.Reader, options OBJOptions) (*geometry.Model, error) {
	scale := options.Scale
	if scale == 0 {
		scale = 1
	}

	var vertices []core.Vec3
	var triangles []*geometry.Triangle

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			vertices = append(vertices, v.Multiply(scale).Add(options.Location))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: %w: face needs at least 3 vertices, got %d",
					lineNumber, ErrMalformedOBJ, len(fields)-1)
			}
			indices := make([]int, 0, len(fields)-1)
			for _, field := range fields[1:] {
				index, err := parseFaceIndex(field, len(vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNumber, err)
				}
				indices = append(indices, index)
			}
			for i := 1; i+1 < len(indices); i++ {
				triangles = append(triangles, geometry.NewTriangle(
					vertices[indices[0]],
					vertices[indices[i]],
					vertices[indices[i+1]],
					options.Material,
				))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ: %w", err)
	}

	return geometry.NewModel(triangles, options.Material), nil
}

// parseVertex parses the x y z coordinates of a v record. An optional
// fourth (w) component is ignored.
func parseVertex(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("%w: vertex needs 3 coordinates, got %d", ErrMalformedOBJ, len(fields))
	}
	var coords [3]float64
	for i := range coords {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("%w: vertex coordinate %q", ErrMalformedOBJ, fields[i])
		}
		coords[i] = value
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

// parseFaceIndex returns the 0-based vertex index of one face element
func parseFaceIndex(field string, vertexCount int) (int, error) {
	position, _, _ := strings.Cut(field, "/")
	index, err := strconv.Atoi(position)
	if err != nil {
		return 0, fmt.Errorf("%w: face index %q", ErrMalformedOBJ, field)
	}

	switch {
	case index > 0:
		index--
	case index < 0:
		index += vertexCount
	default:
		return 0, fmt.Errorf("%w: face index 0", ErrMalformedOBJ)
	}

	if index < 0 || index >= vertexCount {
		return 0, fmt.Errorf("%w: face index %q out of range with %d vertices", ErrMalformedOBJ, field, vertexCount)
	}
	return index, nil
}
