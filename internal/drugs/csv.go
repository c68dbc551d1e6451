package drugs

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadCSV reads brand/generic pairs from the CSV file at path.
// The header row must contain "brand" and "generic" columns (in any
// order; extra columns are ignored). Row order is preserved. Rows with
// an empty brand or generic, and duplicate brand or generic names, are
// rejected with an error naming the offending row.
func LoadCSV(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open drug data: %w", err)
	}
	defer f.Close()

	pairs, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pairs, nil
}

// ReadCSV parses brand/generic pairs from r. See LoadCSV for the
// accepted format.
func ReadCSV(r io.Reader) ([]Pair, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	brandCol, genericCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "brand":
			brandCol = i
		case "generic":
			genericCol = i
		}
	}
	if brandCol < 0 || genericCol < 0 {
		return nil, fmt.Errorf("header must contain %q and %q columns, got %v", "brand", "generic", header)
	}

	var pairs []Pair
	seenBrand := make(map[string]bool)
	seenGeneric := make(map[string]bool)

	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if brandCol >= len(record) || genericCol >= len(record) {
			return nil, fmt.Errorf("row %d: missing brand or generic field", row)
		}

		brand := strings.TrimSpace(record[brandCol])
		generic := strings.TrimSpace(record[genericCol])
		if brand == "" {
			return nil, fmt.Errorf("row %d: empty brand name", row)
		}
		if generic == "" {
			return nil, fmt.Errorf("row %d: empty generic name", row)
		}
		if seenBrand[brand] {
			return nil, fmt.Errorf("row %d: duplicate brand name %q", row, brand)
		}
		if seenGeneric[generic] {
			return nil, fmt.Errorf("row %d: duplicate generic name %q", row, generic)
		}
		seenBrand[brand] = true
		seenGeneric[generic] = true

		pairs = append(pairs, Pair{Brand: brand, Generic: generic})
	}

	return pairs, nil
}
