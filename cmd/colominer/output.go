package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Academic-Paper-Implementations/Efficient-Co-location-Pattern-Mining-in-Large-Spatial-Datasets-with-Rare-Features"
)

// writeResult renders a mining result in the requested format: "json" for
// machine consumption, anything else falls back to one colocation per line.
func writeResult(w io.Writer, result *colocation.Result, format string) error {
	if strings.ToLower(format) == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	for _, c := range result.Colocations {
		fmt.Fprintln(w, strings.Join(c, ","))
	}
	return nil
}
