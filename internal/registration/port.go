package registration

import (
	"context"

	"culturefest-api/internal/logs"
)

type RegistrationServiceAPI interface {
	Create(sub Submission) (*Registration, error)
	Update(ctx context.Context, id string, sub Submission) (*Registration, error)
	Get(id string) (*Registration, error)
	List() ([]Registration, error)
}

var _ RegistrationServiceAPI = (*RegistrationService)(nil)

// FileDiscarder deletes uploaded objects that nothing references anymore.
type FileDiscarder interface {
	Discard(ctx context.Context, publicIDs ...string)
}

type LogServicePort interface {
	Log(entry logs.SystemLog, metadata interface{}) error
}
