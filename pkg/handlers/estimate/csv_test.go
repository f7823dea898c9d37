package estimate

import (
	"strings"
	"testing"

	"github.com/de-tools/backup-atlas/pkg/models/domain"
	"github.com/de-tools/backup-atlas/pkg/services/forecast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResources(t *testing.T) {
	input := `type,size_gb,job
EBS,100,daily
RDS,50,
EFS,2.5,weekly
`
	resources, err := ParseResources(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []domain.Resource{
		{Type: "EBS", SizeGB: 100, Job: "daily"},
		{Type: "RDS", SizeGB: 50},
		{Type: "EFS", SizeGB: 2.5, Job: "weekly"},
	}, resources)
}

func TestParseResources_HeaderIsCaseInsensitive(t *testing.T) {
	input := "Type,Size_GB\nEBS,10\n"

	resources, err := ParseResources(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, domain.Resource{Type: "EBS", SizeGB: 10}, resources[0])
}

func TestParseResources_ExtraColumnsIgnored(t *testing.T) {
	// The volumes CSV produced by discovery carries an ec2_tag_value
	// column; the batch endpoint only reads type and size_gb.
	input := "type,size_gb,ec2_tag_value\nEBS,100,team-a\n"

	resources, err := ParseResources(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, domain.Resource{Type: "EBS", SizeGB: 100}, resources[0])
}

func TestParseResources_NonNumericSize(t *testing.T) {
	input := "type,size_gb\nEBS,huge\n"

	_, err := ParseResources(strings.NewReader(input))
	require.ErrorIs(t, err, forecast.ErrInvalidInput)
	assert.Contains(t, err.Error(), "huge")
}

func TestParseResources_MissingTypeColumn(t *testing.T) {
	input := "size_gb,job\n100,daily\n"

	_, err := ParseResources(strings.NewReader(input))
	require.ErrorIs(t, err, forecast.ErrInvalidInput)
}

func TestParseResources_EmptyInput(t *testing.T) {
	_, err := ParseResources(strings.NewReader(""))
	require.ErrorIs(t, err, forecast.ErrInvalidInput)
}
