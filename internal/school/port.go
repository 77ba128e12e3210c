package school

import "culturefest-api/internal/logs"

type SchoolServiceAPI interface {
	List(tier *Tier) ([]School, error)
	Get(id string) (*School, error)
	Create(in SchoolInput) (*School, error)
	Update(id string, in SchoolInput) (*School, error)
	Delete(id string) (*School, error)
	PerformanceOrder(tier Tier) ([]School, error)
}

var _ SchoolServiceAPI = (*SchoolService)(nil)

type LogServicePort interface {
	Log(entry logs.SystemLog, metadata interface{}) error
}
