package judge

import "culturefest-api/internal/logs"

type JudgeServiceAPI interface {
	List() ([]Judge, error)
	Get(id string) (*Judge, error)
	Create(in JudgeInput) (*Judge, error)
	Update(id string, in JudgeInput) (*Judge, error)
	Delete(id string) (*Judge, error)
	Count() (int64, error)
}

var _ JudgeServiceAPI = (*JudgeService)(nil)

type LogServicePort interface {
	Log(entry logs.SystemLog, metadata interface{}) error
}
