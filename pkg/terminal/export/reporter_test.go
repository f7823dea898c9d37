package export

import (
	"bytes"
	"testing"

	"github.com/de-tools/backup-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteVolumesCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteVolumesCSV(&buf, []domain.TaggedVolume{
		{VolumeID: "vol-1", InstanceID: "i-1", SizeGB: 100, TagValue: "daily"},
		{VolumeID: "vol-2", InstanceID: "i-1", SizeGB: 20.5, TagValue: "weekly"},
	})
	require.NoError(t, err)

	assert.Equal(t, "type,size_gb,ec2_tag_value\nEBS,100,daily\nEBS,20.5,weekly\n", buf.String())
}

func TestWriteVolumesCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVolumesCSV(&buf, nil))
	assert.Equal(t, "type,size_gb,ec2_tag_value\n", buf.String())
}

func TestPrintForecast_RendersScheduleColumnsAndTotals(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.PrintForecast(domain.CostForecast{
		Resource: domain.Resource{Type: "EBS", SizeGB: 100},
		MonthlyCosts: []domain.MonthlyCost{
			{Month: 1, Cost: 38.2, Breakdown: map[string]float64{"daily": 36.875, "intraday": 1.325}},
			{Month: 2, Cost: 38.0, Breakdown: map[string]float64{"daily": 36.7, "intraday": 1.3}},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "DAILY")
	assert.Contains(t, out, "INTRADAY")
	assert.Contains(t, out, "36.875000")
	assert.Contains(t, out, "38.200000")
}

func TestPrintSnapshots_EmptyList(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).PrintSnapshots(nil)

	assert.Contains(t, buf.String(), "No snapshots found")
}

func TestPrintOccupancy(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).PrintOccupancy(domain.SnapshotOccupancy{
		SnapshotID:    "snap-1",
		VolumeSizeGiB: 1,
		BlocksStored:  1024,
		SnapshotBytes: 536870912,
		VolumeBytes:   1073741824,
		Percent:       50,
	})

	assert.Equal(t, "snap-1: 50.00% (1024 blocks, 536870912 bytes of 1073741824 bytes)\n", buf.String())
}
