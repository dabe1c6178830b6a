package smoke

import (
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/google/uuid"

	"github.com/okian/draftboard/internal/domain/model"
)

var (
	interests  = []model.Interest{model.InterestHigh, model.InterestMedium, model.InterestLow}
	draftTypes = []model.DraftType{model.DraftNeed, model.DraftWant, model.DraftBPA}
)

// submission is one report a generated scout files against a player.
type submission struct {
	Scout    string
	PlayerID int
	Report   model.Report
}

// generateScouts returns n distinct scout emails.
func generateScouts(n int) []string {
	scouts := make([]string, n)
	for i := range scouts {
		scouts[i] = "scout-" + uuid.NewString()[:8] + "@smoke.test"
	}
	return scouts
}

// generateSubmissions spreads n reports over scouts and players round-robin
// with random grades, interest levels and draft types.
func generateSubmissions(n int, scouts []string, players []int) []submission {
	if len(scouts) == 0 || len(players) == 0 {
		return nil
	}
	subs := make([]submission, n)
	for i := range subs {
		grade := randomInt(model.MaxGrade + 1)
		subs[i] = submission{
			Scout:    scouts[i%len(scouts)],
			PlayerID: players[randomInt(len(players))],
			Report: model.Report{
				Text:     "smoke report " + strconv.Itoa(i),
				Grade:    &grade,
				Interest: interests[randomInt(len(interests))],
				Type:     draftTypes[randomInt(len(draftTypes))],
			},
		}
	}
	return subs
}

// randomInt returns a uniform value in [0, n).
func randomInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
