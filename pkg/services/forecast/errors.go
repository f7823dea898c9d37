package forecast

import "errors"

// Validation errors returned by Estimate. All of them mean caller
// misuse; none is transient. Callers branch with errors.Is.
var (
	ErrUnsupportedResourceType = errors.New("unsupported resource type")
	ErrUnknownBackupJob        = errors.New("unknown backup job")
	ErrInvalidInput            = errors.New("invalid input")
)
