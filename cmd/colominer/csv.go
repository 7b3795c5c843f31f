package main

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/Academic-Paper-Implementations/Efficient-Co-location-Pattern-Mining-in-Large-Spatial-Datasets-with-Rare-Features"
)

// readObjectsCSV parses a four-column id,type,x,y stream, skipping a
// leading header row if present. Id uniqueness and coordinate validity
// beyond basic float parsing are enforced downstream by
// colocation.NewDataset, not here.
func readObjectsCSV(r io.Reader) ([]colocation.Object, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, wrapf(err, "parsing CSV")
	}
	if len(records) == 0 {
		return nil, nil
	}

	start := 0
	if isHeaderRow(records[0]) {
		start = 1
	}

	objects := make([]colocation.Object, 0, len(records)-start)
	for i := start; i < len(records); i++ {
		rec := records[i]
		x, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, wrapf(err, "row %d: parsing x=%q", i+1, rec[2])
		}
		y, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, wrapf(err, "row %d: parsing y=%q", i+1, rec[3])
		}
		objects = append(objects, colocation.Object{
			ID:   rec[0],
			Type: rec[1],
			X:    x,
			Y:    y,
		})
	}
	return objects, nil
}

// isHeaderRow reports whether rec is the literal id,type,x,y column-name
// row. It matches on the known header tokens rather than on whether the
// x/y columns parse as floats: a malformed data row also fails to parse,
// and treating that as a header would silently drop it instead of
// surfacing the bad value.
func isHeaderRow(rec []string) bool {
	if len(rec) != 4 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(rec[0]), "id") &&
		strings.EqualFold(strings.TrimSpace(rec[1]), "type") &&
		strings.EqualFold(strings.TrimSpace(rec[2]), "x") &&
		strings.EqualFold(strings.TrimSpace(rec[3]), "y")
}
