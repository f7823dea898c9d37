package discovery

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ebs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/de-tools/backup-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// DefaultTagKey marks instances whose volumes are under backup.
const DefaultTagKey = "cpm_backup"

const bytesPerBlock = 512 * 1024

type EC2Client interface {
	ec2.DescribeInstancesAPIClient
	ec2.DescribeSnapshotsAPIClient
	DescribeVolumes(
		ctx context.Context,
		params *ec2.DescribeVolumesInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DescribeVolumesOutput, error)
}

type EBSClient interface {
	ebs.ListSnapshotBlocksAPIClient
}

type RDSClient interface {
	rds.DescribeDBInstancesAPIClient
}

// Explorer enumerates AWS resources that feed the cost forecast. It is
// an input-side collaborator only; the forecast engine never calls it.
type Explorer struct {
	ec2 EC2Client
	ebs EBSClient
	rds RDSClient
}

func NewExplorer(cfg aws.Config) *Explorer {
	return &Explorer{
		ec2: ec2.NewFromConfig(cfg),
		ebs: ebs.NewFromConfig(cfg),
		rds: rds.NewFromConfig(cfg),
	}
}

// NewExplorerWithClients wires explicit clients, used by tests.
func NewExplorerWithClients(ec2Client EC2Client, ebsClient EBSClient, rdsClient RDSClient) *Explorer {
	return &Explorer{ec2: ec2Client, ebs: ebsClient, rds: rdsClient}
}

// VolumesByTag lists the EBS volumes attached to EC2 instances carrying
// the given tag key, sized for forecasting.
func (e *Explorer) VolumesByTag(ctx context.Context, tagKey string) ([]domain.TaggedVolume, error) {
	logger := zerolog.Ctx(ctx)
	if tagKey == "" {
		tagKey = DefaultTagKey
	}

	paginator := ec2.NewDescribeInstancesPaginator(e.ec2, &ec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			{
				Name:   aws.String("tag-key"),
				Values: []string{tagKey},
			},
		},
	})

	var volumes []domain.TaggedVolume
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances with tag %q: %w", tagKey, err)
		}

		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				tagValue := ""
				for _, tag := range instance.Tags {
					if aws.ToString(tag.Key) == tagKey {
						tagValue = aws.ToString(tag.Value)
						break
					}
				}
				if tagValue == "" {
					continue
				}

				for _, mapping := range instance.BlockDeviceMappings {
					if mapping.Ebs == nil || mapping.Ebs.VolumeId == nil {
						continue
					}
					volumeID := aws.ToString(mapping.Ebs.VolumeId)

					resp, err := e.ec2.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{
						VolumeIds: []string{volumeID},
					})
					if err != nil {
						return nil, fmt.Errorf("failed to describe volume %s: %w", volumeID, err)
					}
					if len(resp.Volumes) == 0 {
						continue
					}

					volumes = append(volumes, domain.TaggedVolume{
						VolumeID:   volumeID,
						InstanceID: aws.ToString(instance.InstanceId),
						SizeGB:     float64(aws.ToInt32(resp.Volumes[0].Size)),
						TagValue:   tagValue,
					})
				}
			}
		}
	}

	logger.Info().
		Str("tag_key", tagKey).
		Int("volumes", len(volumes)).
		Msg("discovered tagged volumes")
	return volumes, nil
}

// VolumeSnapshots lists every snapshot of one EBS volume. The volume is
// verified first so a typo'd ID fails loudly instead of returning an
// empty list.
func (e *Explorer) VolumeSnapshots(ctx context.Context, volumeID string) ([]domain.VolumeSnapshot, error) {
	logger := zerolog.Ctx(ctx)

	resp, err := e.ec2.DescribeVolumes(ctx, &ec2.DescribeVolumesInput{
		VolumeIds: []string{volumeID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to verify volume %s: %w", volumeID, err)
	}
	if len(resp.Volumes) == 0 {
		return nil, fmt.Errorf("volume %s not found", volumeID)
	}
	logger.Info().
		Str("volume_id", volumeID).
		Int32("size_gb", aws.ToInt32(resp.Volumes[0].Size)).
		Msg("volume found")

	paginator := ec2.NewDescribeSnapshotsPaginator(e.ec2, &ec2.DescribeSnapshotsInput{
		Filters: []ec2types.Filter{
			{
				Name:   aws.String("volume-id"),
				Values: []string{volumeID},
			},
		},
	})

	var snapshots []domain.VolumeSnapshot
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list snapshots for volume %s: %w", volumeID, err)
		}
		for _, snapshot := range page.Snapshots {
			snapshots = append(snapshots, domain.VolumeSnapshot{
				SnapshotID:  aws.ToString(snapshot.SnapshotId),
				VolumeID:    volumeID,
				StartTime:   aws.ToTime(snapshot.StartTime),
				State:       string(snapshot.State),
				Progress:    aws.ToString(snapshot.Progress),
				VolumeSize:  aws.ToInt32(snapshot.VolumeSize),
				Description: aws.ToString(snapshot.Description),
			})
		}
	}

	logger.Info().
		Str("volume_id", volumeID).
		Int("snapshots", len(snapshots)).
		Msg("listed volume snapshots")
	return snapshots, nil
}

// SnapshotOccupancy reports what share of a snapshot's source volume is
// actually stored, by counting its 512 KiB blocks through the EBS
// direct APIs.
func (e *Explorer) SnapshotOccupancy(ctx context.Context, snapshotID string) (domain.SnapshotOccupancy, error) {
	resp, err := e.ec2.DescribeSnapshots(ctx, &ec2.DescribeSnapshotsInput{
		SnapshotIds: []string{snapshotID},
	})
	if err != nil {
		return domain.SnapshotOccupancy{}, fmt.Errorf("failed to describe snapshot %s: %w", snapshotID, err)
	}
	if len(resp.Snapshots) == 0 {
		return domain.SnapshotOccupancy{}, fmt.Errorf("snapshot %s not found", snapshotID)
	}
	volumeSizeGiB := aws.ToInt32(resp.Snapshots[0].VolumeSize)

	paginator := ebs.NewListSnapshotBlocksPaginator(e.ebs, &ebs.ListSnapshotBlocksInput{
		SnapshotId: aws.String(snapshotID),
	})

	blockCount := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return domain.SnapshotOccupancy{}, fmt.Errorf("failed to list blocks for snapshot %s: %w", snapshotID, err)
		}
		blockCount += len(page.Blocks)
	}

	snapshotBytes := int64(blockCount) * bytesPerBlock
	volumeBytes := int64(volumeSizeGiB) * 1024 * 1024 * 1024
	percent := 0.0
	if volumeBytes > 0 {
		percent = float64(snapshotBytes) / float64(volumeBytes) * 100
	}

	return domain.SnapshotOccupancy{
		SnapshotID:    snapshotID,
		VolumeSizeGiB: volumeSizeGiB,
		BlocksStored:  blockCount,
		SnapshotBytes: snapshotBytes,
		VolumeBytes:   volumeBytes,
		Percent:       percent,
	}, nil
}

// RDSResources lists RDS instances as forecastable resources, sized by
// their allocated storage.
func (e *Explorer) RDSResources(ctx context.Context) ([]domain.Resource, error) {
	paginator := rds.NewDescribeDBInstancesPaginator(e.rds, &rds.DescribeDBInstancesInput{})

	var resources []domain.Resource
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe RDS instances: %w", err)
		}
		for _, instance := range page.DBInstances {
			resources = append(resources, domain.Resource{
				Type:   "RDS",
				SizeGB: float64(aws.ToInt32(instance.AllocatedStorage)),
			})
		}
	}
	return resources, nil
}
