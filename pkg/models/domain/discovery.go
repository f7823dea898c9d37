package domain

import "time"

// TaggedVolume is an EBS volume attached to an instance carrying the
// backup tag, sized and ready to feed into a forecast.
type TaggedVolume struct {
	VolumeID   string
	InstanceID string
	SizeGB     float64
	TagValue   string
}

// VolumeSnapshot is one snapshot of an EBS volume.
type VolumeSnapshot struct {
	SnapshotID  string
	VolumeID    string
	StartTime   time.Time
	State       string
	Progress    string
	VolumeSize  int32
	Description string
}

// SnapshotOccupancy reports how much of a snapshot's source volume is
// actually stored, counted from its 512 KiB blocks.
type SnapshotOccupancy struct {
	SnapshotID    string
	VolumeSizeGiB int32
	BlocksStored  int
	SnapshotBytes int64
	VolumeBytes   int64
	Percent       float64
}
