package score

import "culturefest-api/internal/logs"

type ScoreServiceAPI interface {
	SubmitBatch(judgeID string, entries []Entry) ([]Score, error)
	ListByJudge(judgeID string) ([]Score, error)
	All() ([]Score, error)
}

var _ ScoreServiceAPI = (*ScoreService)(nil)

// BoardPublisher is told after every committed batch so live boards refresh.
type BoardPublisher interface {
	PublishBoard()
}

type LogServicePort interface {
	Log(entry logs.SystemLog, metadata interface{}) error
}
