package leaderboard

import (
	"log"

	"culturefest-api/internal/category"
	"culturefest-api/internal/judge"
	"culturefest-api/internal/school"
	"culturefest-api/internal/score"
	"culturefest-api/internal/store"

	"gorm.io/gorm"
)

const (
	Room           = "leaderboard"
	MessageUpdated = "LEADERBOARD_UPDATED"
)

type LeaderboardService struct {
	DB  *gorm.DB
	Hub Broadcaster
}

// Build loads a snapshot of schools, categories, scores and judges and aggregates it.
func (s *LeaderboardService) Build() (Board, error) {
	schools, err := store.ReadAll[school.School](s.DB, "")
	if err != nil {
		return Board{}, err
	}
	categories, err := store.ReadAll[category.Category](s.DB, "position asc, LOWER(name) asc")
	if err != nil {
		return Board{}, err
	}
	scores, err := store.ReadAll[score.Score](s.DB, "")
	if err != nil {
		return Board{}, err
	}
	judges, err := (&judge.JudgeService{DB: s.DB}).Count()
	if err != nil {
		return Board{}, err
	}
	return Aggregate(schools, categories, scores, int(judges)), nil
}

// PublishBoard rebuilds the board and pushes it to the live room. Failures are
// logged; the next committed batch publishes again.
func (s *LeaderboardService) PublishBoard() {
	if s.Hub == nil {
		return
	}
	board, err := s.Build()
	if err != nil {
		log.Printf("leaderboard: rebuild for live update failed: %v", err)
		return
	}
	if err := s.Hub.Publish(Room, MessageUpdated, board); err != nil {
		log.Printf("leaderboard: publish failed: %v", err)
	}
}
