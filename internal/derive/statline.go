package derive

import (
	"math"
	"strconv"

	"euroleague-data-service/internal/domain/boxscore"
	"euroleague-data-service/internal/domain/feed"
)

// Percentage computes made/attempted x 100 rounded to one decimal place.
// Zero attempts yield 0.0, never a division error.
func Percentage(made, attempted int) float64 {
	if attempted <= 0 {
		return 0
	}
	return round1(100 * float64(made) / float64(attempted))
}

// Minutes converts a played-time in seconds to minutes.
func Minutes(seconds int) float64 {
	return float64(seconds) / 60
}

// OvertimeScores reconstructs the ordered overtime sequence from the
// sparse 1-indexed extra-period mapping. Periods are read consecutively
// from 1 and iteration stops at the first missing index; a genuinely
// sparse mapping is truncated at the gap.
func OvertimeScores(extraPeriods map[string]int) []int {
	var scores []int
	for i := 1; ; i++ {
		points, ok := extraPeriods[strconv.Itoa(i)]
		if !ok {
			break
		}
		scores = append(scores, points)
	}
	return scores
}

// RunningTotals computes the cumulative points at the end of each quarter
// and each overtime period as prefix sums over the quarter partials and
// the ordered overtime sequence.
func RunningTotals(p feed.Partials, overtime []int) (endOfQuarter [4]int, endOfOvertime []int) {
	endOfQuarter[0] = p.Quarter1
	endOfQuarter[1] = endOfQuarter[0] + p.Quarter2
	endOfQuarter[2] = endOfQuarter[1] + p.Quarter3
	endOfQuarter[3] = endOfQuarter[2] + p.Quarter4

	running := endOfQuarter[3]
	for _, points := range overtime {
		running += points
		endOfOvertime = append(endOfOvertime, running)
	}
	return endOfQuarter, endOfOvertime
}

// teamStatline derives a side's aggregate statline, including quarter and
// overtime running totals.
func teamStatline(raw feed.RawStatline, partials feed.Partials) boxscore.Statline {
	sl := baseStatline(raw)
	sl.QuarterPoints = [4]int{partials.Quarter1, partials.Quarter2, partials.Quarter3, partials.Quarter4}
	sl.OvertimePoints = OvertimeScores(partials.ExtraPeriods)
	sl.EndOfQuarter, sl.EndOfOvertime = RunningTotals(partials, sl.OvertimePoints)
	return sl
}

// playerStatline derives an individual statline; quarter fields stay zero.
func playerStatline(raw feed.RawStatline) boxscore.Statline {
	return baseStatline(raw)
}

func baseStatline(raw feed.RawStatline) boxscore.Statline {
	fgMade := raw.FieldGoalsMade2 + raw.FieldGoalsMade3
	fgAttempted := raw.FieldGoalsAttempted2 + raw.FieldGoalsAttempted3

	return boxscore.Statline{
		Minutes:              Minutes(raw.TimePlayed),
		PIR:                  raw.Valuation,
		Points:               raw.Points,
		FieldGoalsMade2:      raw.FieldGoalsMade2,
		FieldGoalsAttempted2: raw.FieldGoalsAttempted2,
		FieldGoalsPct2:       Percentage(raw.FieldGoalsMade2, raw.FieldGoalsAttempted2),
		FieldGoalsMade3:      raw.FieldGoalsMade3,
		FieldGoalsAttempted3: raw.FieldGoalsAttempted3,
		FieldGoalsPct3:       Percentage(raw.FieldGoalsMade3, raw.FieldGoalsAttempted3),
		FreeThrowsMade:       raw.FreeThrowsMade,
		FreeThrowsAttempted:  raw.FreeThrowsAttempted,
		FreeThrowsPct:        Percentage(raw.FreeThrowsMade, raw.FreeThrowsAttempted),
		FieldGoalsMade:       fgMade,
		FieldGoalsAttempted:  fgAttempted,
		FieldGoalsPct:        Percentage(fgMade, fgAttempted),
		TotalRebounds:        raw.TotalRebounds,
		DefensiveRebounds:    raw.DefensiveRebounds,
		OffensiveRebounds:    raw.OffensiveRebounds,
		Assists:              raw.Assistances,
		Steals:               raw.Steals,
		Turnovers:            raw.Turnovers,
		BlocksFor:            raw.BlocksFavour,
		BlocksAgainst:        raw.BlocksAgainst,
		FoulsCommitted:       raw.FoulsCommited,
		FoulsReceived:        raw.FoulsReceived,
		PlusMinus:            raw.PlusMinus,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
