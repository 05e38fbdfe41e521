package bench

import (
	"encoding/json"
	"strings"
	"sync/atomic"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

// Decides which engine makes the first move of a game
type FirstMoverPolicy int

const (
	// Player 1 begins the even games, player 2 the odd ones
	FirstAlternate FirstMoverPolicy = iota
	// Coin flip for every game
	FirstRandom
	FirstPlayer1
	FirstPlayer2
)

func (p FirstMoverPolicy) String() string {
	switch p {
	case FirstRandom:
		return "random"
	case FirstPlayer1:
		return "player1"
	case FirstPlayer2:
		return "player2"
	}
	return "alternate"
}

type VersusArenaStats struct {
	p1Wins           uint32
	p2Wins           uint32
	draws            uint32
	firstToMoveWins  uint32
	secondToMoveWins uint32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(atomic.LoadUint32(&vas.p1Wins))
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(atomic.LoadUint32(&vas.p2Wins))
}

func (vas *VersusArenaStats) Draws() int {
	return int(atomic.LoadUint32(&vas.draws))
}

func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(atomic.LoadUint32(&vas.firstToMoveWins))
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(atomic.LoadUint32(&vas.secondToMoveWins))
}

func (vas *VersusArenaStats) reset() {
	atomic.StoreUint32(&vas.p1Wins, 0)
	atomic.StoreUint32(&vas.p2Wins, 0)
	atomic.StoreUint32(&vas.draws, 0)
	atomic.StoreUint32(&vas.firstToMoveWins, 0)
	atomic.StoreUint32(&vas.secondToMoveWins, 0)
}

// Count a finished game
func (vas *VersusArenaStats) add(outcome GameOutcome, p1WentFirst bool) {
	switch toAgentResult(outcome, p1WentFirst) {
	case VersusDraw:
		atomic.AddUint32(&vas.draws, 1)
		return
	case VersusPl1Win:
		atomic.AddUint32(&vas.p1Wins, 1)
	default:
		atomic.AddUint32(&vas.p2Wins, 1)
	}

	if outcome.FirstPlayerWon {
		atomic.AddUint32(&vas.firstToMoveWins, 1)
	} else {
		atomic.AddUint32(&vas.secondToMoveWins, 1)
	}
}

type VersusWorkerInfo struct {
	WorkerID         int
	NGames           int
	FinishedGames    int
	GameMoveNum      int
	Moves            []ttt.Move
	Board            *ttt.Board
	Outcome          ttt.Outcome
	P1Wins           int
	P2Wins           int
	Draws            int
	FirstToMoveWins  int
	SecondToMoveWins int
	P1Name           string
	P2Name           string
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}

func (s VersusSummaryInfo) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(s)
	return strings.TrimSpace(builder.String())
}

// represents result from the first-player's perspective in a single game
type GameOutcome struct {
	FirstPlayerWon bool
	IsDraw         bool
}

// maps a game outcome to which agent won, given player assignments
func toAgentResult(outcome GameOutcome, p1WentFirst bool) VersusMatchResult {
	if outcome.IsDraw {
		return VersusDraw
	}

	if p1WentFirst == outcome.FirstPlayerWon {
		return VersusPl1Win
	}
	return VersusPl2Win
}

// determines the outcome of a finished game from the first mover's side
func computeOutcome(game *ttt.Game) GameOutcome {
	if !game.IsTerminated() {
		panic("computeOutcome: game not terminated")
	}

	if game.IsDraw() {
		return GameOutcome{IsDraw: true}
	}

	winner, _ := game.Winner()
	return GameOutcome{FirstPlayerWon: winner == game.FirstPlayer()}
}
