package estimate

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/de-tools/backup-atlas/pkg/models/domain"
	"github.com/de-tools/backup-atlas/pkg/services/forecast"
)

// ParseResources reads a resource batch from CSV. The first record is a
// header naming at least the columns type and size_gb; job is optional.
// Any malformed row fails the whole parse.
func ParseResources(r io.Reader) ([]domain.Resource, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read CSV header: %v", forecast.ErrInvalidInput, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	typeCol, ok := cols["type"]
	if !ok {
		return nil, fmt.Errorf("%w: CSV is missing the 'type' column", forecast.ErrInvalidInput)
	}
	sizeCol, hasSize := cols["size_gb"]
	jobCol, hasJob := cols["job"]

	var resources []domain.Resource
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: malformed CSV row at line %d: %v", forecast.ErrInvalidInput, line, err)
		}

		res := domain.Resource{Type: strings.TrimSpace(record[typeCol])}
		if hasSize {
			raw := strings.TrimSpace(record[sizeCol])
			if raw != "" {
				size, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: non-numeric size_gb %q at line %d", forecast.ErrInvalidInput, raw, line)
				}
				res.SizeGB = size
			}
		}
		if hasJob {
			res.Job = strings.TrimSpace(record[jobCol])
		}
		resources = append(resources, res)
	}
	return resources, nil
}
