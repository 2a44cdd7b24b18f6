package models

import (
	"fmt"
	"time"
)

type Game string

const (
	GameMarioKart      Game = "mario_kart"
	GameSuperSmashBros Game = "super_smash_bros"
	GameGeneral        Game = "general"
)

// Games lists every known game, in display order.
var Games = []Game{GameMarioKart, GameSuperSmashBros, GameGeneral}

type TournamentStatus string

const (
	TournamentStatusUpcoming  TournamentStatus = "upcoming"
	TournamentStatusOngoing   TournamentStatus = "ongoing"
	TournamentStatusCompleted TournamentStatus = "completed"
)

type TournamentFormat string

const (
	FormatSingleElimination TournamentFormat = "single_elimination"
	FormatDoubleElimination TournamentFormat = "double_elimination"
	FormatRoundRobin        TournamentFormat = "round_robin"
	FormatSwiss             TournamentFormat = "swiss"
)

// PointsSchedule holds the per-placement award configuration stored on a
// tournament. It is configuration only: nothing in this service applies it
// to participants when a tournament completes.
type PointsSchedule struct {
	First         int `dynamodbav:"first" json:"first"`
	Second        int `dynamodbav:"second" json:"second"`
	Third         int `dynamodbav:"third" json:"third"`
	Participation int `dynamodbav:"participation" json:"participation"`
}

type Tournament struct {
	TournamentId         string           `dynamodbav:"tournament_id" json:"id"`
	Name                 string           `dynamodbav:"name" json:"name"`
	Description          string           `dynamodbav:"description" json:"description"`
	Game                 Game             `dynamodbav:"game" json:"game"`
	Date                 time.Time        `dynamodbav:"date" json:"date"`
	RegistrationDeadline time.Time        `dynamodbav:"registration_deadline" json:"registrationDeadline"`
	MaxParticipants      int              `dynamodbav:"max_participants" json:"maxParticipants"`
	Participants         []string         `dynamodbav:"participants" json:"participants"`
	Status               TournamentStatus `dynamodbav:"status" json:"status"`
	PointsAwarded        PointsSchedule   `dynamodbav:"points_awarded" json:"pointsAwarded"`
	Rules                []string         `dynamodbav:"rules" json:"rules"`
	Format               TournamentFormat `dynamodbav:"format" json:"format"`
	EntryFee             float64          `dynamodbav:"entry_fee" json:"entryFee"`
	PrizePool            float64          `dynamodbav:"prize_pool" json:"prizePool"`
	Brackets             []string         `dynamodbav:"brackets" json:"brackets"`
	CreatedAt            time.Time        `dynamodbav:"created_at" json:"createdAt"`
	CreatedBy            string           `dynamodbav:"created_by" json:"createdBy"`
	UpdatedAt            time.Time        `dynamodbav:"updated_at" json:"updatedAt"`

	PK string `dynamodbav:"PK" json:"-"`
	SK string `dynamodbav:"SK" json:"-"`

	GSI1PK string `dynamodbav:"GSI1PK" json:"-"`
	GSI1SK string `dynamodbav:"GSI1SK" json:"-"`
}

// ParticipantCount is the derived count the dashboard displays.
func (t *Tournament) ParticipantCount() int {
	return len(t.Participants)
}

// Key handlers

func TournamentPK(tournamentID string) string {
	return fmt.Sprintf("TOURNAMENT#%s", tournamentID)
}

func MetaSK() string {
	return "META"
}

func TournamentGSI1PK() string {
	return "ENTITY#TOURNAMENT"
}

func CreatedGSI1SK(createdAt string) string {
	return fmt.Sprintf("CREATED#%s", createdAt)
}
