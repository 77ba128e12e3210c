package lottery

import (
	"culturefest-api/internal/logs"
	"culturefest-api/internal/school"
)

type LotteryServiceAPI interface {
	Preview(tier school.Tier) ([]Assignment, error)
	Commit(tier school.Tier, order []Assignment) ([]Assignment, error)
}

var _ LotteryServiceAPI = (*LotteryService)(nil)

type LogServicePort interface {
	Log(entry logs.SystemLog, metadata interface{}) error
}
