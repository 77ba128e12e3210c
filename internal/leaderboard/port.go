package leaderboard

// Broadcaster is the part of the live hub the leaderboard publishes through.
type Broadcaster interface {
	Publish(room, msgType string, payload interface{}) error
}

type LeaderboardServiceAPI interface {
	Build() (Board, error)
}

var _ LeaderboardServiceAPI = (*LeaderboardService)(nil)
