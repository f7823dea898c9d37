package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/de-tools/backup-atlas/pkg/models/domain"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Reporter renders forecast and discovery results for the terminal.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) PrintJSON(v any) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintForecast renders the 12-month projection as a table with one
// column per schedule plus the monthly total.
func (r *Reporter) PrintForecast(f domain.CostForecast) {
	schedules := breakdownColumns(f)

	t := table.NewWriter()
	t.SetOutputMirror(r.writer)
	t.SetTitle(fmt.Sprintf("%s %.0f GB, projected monthly backup storage cost (USD)", f.Resource.Type, f.Resource.SizeGB))

	header := table.Row{"Month"}
	for _, name := range schedules {
		header = append(header, name)
	}
	header = append(header, "Total")
	t.AppendHeader(header)

	for _, m := range f.MonthlyCosts {
		row := table.Row{m.Month}
		for _, name := range schedules {
			row = append(row, strconv.FormatFloat(m.Breakdown[name], 'f', 6, 64))
		}
		row = append(row, strconv.FormatFloat(m.Cost, 'f', 6, 64))
		t.AppendRow(row)
	}
	t.Render()
}

func (r *Reporter) PrintSnapshots(snapshots []domain.VolumeSnapshot) {
	if len(snapshots) == 0 {
		fmt.Fprintln(r.writer, "No snapshots found for this volume.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.writer)
	t.AppendHeader(table.Row{"Snapshot ID", "Created", "State", "Progress", "Size (GB)", "Description"})
	for _, s := range snapshots {
		t.AppendRow(table.Row{
			s.SnapshotID,
			s.StartTime.Format("2006-01-02 15:04:05"),
			s.State,
			s.Progress,
			s.VolumeSize,
			s.Description,
		})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("Total: %d", len(snapshots))})
	t.Render()
}

func (r *Reporter) PrintOccupancy(o domain.SnapshotOccupancy) {
	fmt.Fprintf(r.writer, "%s: %.2f%% (%d blocks, %d bytes of %d bytes)\n",
		o.SnapshotID, o.Percent, o.BlocksStored, o.SnapshotBytes, o.VolumeBytes)
}

// WriteVolumesCSV writes discovered volumes in the layout the batch
// estimate endpoint accepts.
func WriteVolumesCSV(w io.Writer, volumes []domain.TaggedVolume) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"type", "size_gb", "ec2_tag_value"}); err != nil {
		return err
	}
	for _, v := range volumes {
		record := []string{"EBS", strconv.FormatFloat(v.SizeGB, 'f', -1, 64), v.TagValue}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func breakdownColumns(f domain.CostForecast) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, m := range f.MonthlyCosts {
		for name := range m.Breakdown {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
