package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/askessler/cadview/pkg/geometry"
)

// Parse reads an STL file, autodetecting ASCII vs binary format
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	model, err := ParseReader(file)
	if err != nil {
		return nil, err
	}
	if model.Name == "" {
		model.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return model, nil
}

// ParseReader reads an STL model from a stream. The first bytes decide
// the format: ASCII files start with "solid".
func ParseReader(reader io.Reader) (*Model, error) {
	buffered := bufio.NewReader(reader)

	header, err := buffered.Peek(5)
	if err != nil {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	if bytes.HasPrefix(header, []byte("solid")) {
		return parseASCII(buffered)
	}
	return parseBinary(buffered)
}

// parseASCII parses an ASCII STL stream
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				currentNormal = parseVector(fields[2], fields[3], fields[4])
			}

		case "vertex":
			if len(fields) >= 4 {
				vertices = append(vertices, parseVector(fields[1], fields[2], fields[3]))
			}

		case "endfacet":
			if len(vertices) == 3 {
				model.AddTriangle(geometry.NewTriangle(
					currentNormal,
					vertices[0],
					vertices[1],
					vertices[2],
				))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseVector(xs, ys, zs string) geometry.Vector3 {
	x, _ := strconv.ParseFloat(xs, 64)
	y, _ := strconv.ParseFloat(ys, 64)
	z, _ := strconv.ParseFloat(zs, 64)
	return geometry.NewVector3(x, y, z)
}

// parseBinary parses a binary STL stream
func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model.Name = string(bytes.TrimRight(header, "\x00 "))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var facet struct {
			Normal     [3]float32
			V1, V2, V3 [3]float32
			Attribute  uint16
		}
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}

		model.AddTriangle(geometry.NewTriangle(
			toVector(facet.Normal),
			toVector(facet.V1),
			toVector(facet.V2),
			toVector(facet.V3),
		))
	}

	return model, nil
}

func toVector(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
