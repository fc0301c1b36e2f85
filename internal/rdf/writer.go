package rdf

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"euroleague-data-service/internal/domain/boxscore"
)

const baseLeague = "https://www.euroleaguebasketball.net"

const gamePrefixes = `@prefix rdf:       <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix xsd:       <http://www.w3.org/2001/XMLSchema#> .
@prefix bball:     <http://www.ics.forth.gr/isl/Basketball#> .
@prefix ent:       <http://www.ics.forth.gr/isl/Basketball/entities/> .
@prefix euroleague: <https://www.euroleaguebasketball.net/euroleague/> .
@prefix foaf:      <http://xmlns.com/foaf/0.1/> .
@prefix rdfs:      <http://www.w3.org/2000/01/rdf-schema#> .
@prefix skos:      <https://www.w3.org/TR/skos-reference/> .
`

// GamesWriter serializes derived game records into a Turtle document.
type GamesWriter struct {
	w io.Writer
}

// NewGamesWriter wraps w; callers own buffering and closing.
func NewGamesWriter(w io.Writer) *GamesWriter {
	return &GamesWriter{w: w}
}

// WritePrefixes emits the namespace prefix block. Call once per document.
func (gw *GamesWriter) WritePrefixes() error {
	_, err := fmt.Fprint(gw.w, gamePrefixes+"\n")
	return err
}

// WriteGame emits the game resource, both team boxscores, their statlines
// and every player participation.
func (gw *GamesWriter) WriteGame(g boxscore.Game) error {
	gameURI := gameURI(g)
	homeTeamURI := teamURI(g.Home.TeamCode)
	awayTeamURI := teamURI(g.Away.TeamCode)

	if err := gw.writeGameHeader(g, gameURI, homeTeamURI, awayTeamURI); err != nil {
		return err
	}

	// Away first, then home, matching the boxscore reference order.
	for _, box := range []boxscore.TeamBoxscore{g.Away, g.Home} {
		if err := gw.writeTeamBoxscore(gameURI, box); err != nil {
			return err
		}
	}
	return nil
}

func (gw *GamesWriter) writeGameHeader(g boxscore.Game, gameURI, homeTeamURI, awayTeamURI string) error {
	p := newPrinter(gw.w)
	p.linef("## Game")
	p.linef("<%s> rdf:type bball:Game ;", gameURI)
	p.linef("    bball:hasCode       %q ;", strconv.Itoa(g.GameCode))
	p.linef("    rdfs:label          \"Game %d\" ;", g.GameCode)
	p.linef("    bball:hasLeague     <%s> ;", baseLeague)
	p.linef("    bball:hasSeason     <%s> ;", seasonURI(g.SeasonAlias))
	p.linef("    bball:hasPhase      %q ;", g.Phase)
	p.linef("    bball:hasPhaseGroup %q ;", g.Group)
	p.linef("    bball:hasRound      \"%d\"^^xsd:integer ;", g.Round)
	p.linef("    bball:hasDate       %q^^xsd:dateTime ;", g.Date)
	p.linef("    bball:homeTeam      <%s> ;", homeTeamURI)
	p.linef("    bball:roadTeam      <%s> ;", awayTeamURI)
	p.linef("    bball:hasHomeTeamScore \"%d\"^^xsd:integer ;", g.HomeScore)
	p.linef("    bball:hasRoadTeamScore \"%d\"^^xsd:integer ;", g.AwayScore)
	p.linef("    bball:hasScore      \"%d-%d\" ;", g.HomeScore, g.AwayScore)
	if g.Audience > 0 {
		p.linef("    bball:hasAudience   \"%d\"^^xsd:integer ;", g.Audience)
	}
	p.linef("    bball:hasExtraTime  \"%t\"^^xsd:boolean ;", g.Overtime)
	p.linef("    bball:eventStarted  \"true\"^^xsd:boolean ;")
	p.linef("    bball:eventEnded    \"true\"^^xsd:boolean ;")
	for _, ref := range g.Referees {
		p.linef("    bball:hasReferee    ent:%s ;", ref)
	}
	p.linef("    bball:gameVenue     ent:%s ;", g.VenueCode)
	p.linef("    bball:hasTeamBoxscore <%s#boxscore_%s>,", gameURI, g.Away.TeamCode)
	p.linef("<%s#boxscore_%s> ;", gameURI, g.Home.TeamCode)
	p.linef("    bball:winningTeam   <%s> ;", teamURI(g.WinnerCode))
	p.linef("    bball:losingTeam    <%s> .", teamURI(g.LoserCode))
	p.linef("")
	return p.err
}

func (gw *GamesWriter) writeTeamBoxscore(gameURI string, box boxscore.TeamBoxscore) error {
	boxURI := gameURI + "#boxscore_" + box.TeamCode
	p := newPrinter(gw.w)

	p.linef("## TeamBoxscore %s", box.TeamCode)
	p.linef("<%s> rdf:type bball:TeamBoxscore ;", boxURI)
	p.linef("    bball:overTeam        <%s> ;", teamURI(box.TeamCode))
	p.linef("    bball:hasTeamStatline <%s_Stats> ;", boxURI)
	if box.CoachCode != "" {
		p.linef("    bball:hasHeadCoach    <%s> ;", playerURI(box.CoachCode))
	}
	for _, pp := range box.Players {
		p.linef("    bball:hasPlayerParticipation <%s_%s> ;", boxURI, pp.PlayerCode)
	}
	p.linef("    .")
	p.linef("")
	if p.err != nil {
		return p.err
	}

	if err := gw.writeTeamStatline(boxURI, box); err != nil {
		return err
	}

	for _, pp := range box.Players {
		if err := gw.writeParticipation(boxURI, pp); err != nil {
			return err
		}
	}
	return nil
}

func (gw *GamesWriter) writeTeamStatline(boxURI string, box boxscore.TeamBoxscore) error {
	sl := box.Statline
	p := newPrinter(gw.w)

	p.linef("## WholeTeamStats %s", box.TeamCode)
	p.linef("<%s_Stats> rdf:type bball:Statline ;", boxURI)
	p.linef("    bball:minutesPlayed \"%s\"^^xsd:double ;", fmt1(sl.Minutes))
	p.linef("    bball:PIR            \"%d\"^^xsd:integer ;", sl.PIR)
	p.linef("    bball:points         \"%d\"^^xsd:integer ;", sl.Points)
	gw.writeShooting(p, sl)
	p.linef("    bball:totalRebounds  \"%d\"^^xsd:integer ;", sl.TotalRebounds)
	p.linef("    bball:defensiveRebounds \"%d\"^^xsd:integer ;", sl.DefensiveRebounds)
	p.linef("    bball:offensiveRebounds \"%d\"^^xsd:integer ;", sl.OffensiveRebounds)
	for i, points := range sl.QuarterPoints {
		p.linef("    bball:quarter%dpoints \"%d\"^^xsd:integer ;", i+1, points)
	}
	for i, points := range sl.OvertimePoints {
		p.linef("    bball:extraTime%dPoints \"%d\"^^xsd:integer ;", i+1, points)
	}
	for i, points := range sl.EndOfQuarter {
		p.linef("    bball:endOfQuarter%dpoints \"%d\"^^xsd:integer ;", i+1, points)
	}
	for i, points := range sl.EndOfOvertime {
		p.linef("    bball:endOfExtraTime%dPoints \"%d\"^^xsd:integer ;", i+1, points)
	}
	p.linef("    bball:assists        \"%d\"^^xsd:integer ;", sl.Assists)
	p.linef("    bball:steals         \"%d\"^^xsd:integer ;", sl.Steals)
	p.linef("    bball:turnovers      \"%d\"^^xsd:integer ;", sl.Turnovers)
	p.linef("    bball:blocks         \"%d\"^^xsd:integer ;", sl.BlocksFor)
	p.linef("    bball:blocksAgainst  \"%d\"^^xsd:integer ;", sl.BlocksAgainst)
	p.linef("    bball:foulsCommitted \"%d\"^^xsd:integer ;", sl.FoulsCommitted)
	p.linef("    bball:foulsReceived  \"%d\"^^xsd:integer ;", sl.FoulsReceived)
	p.linef("    bball:plusMinus      \"%d\"^^xsd:integer .", sl.PlusMinus)
	p.linef("")
	return p.err
}

func (gw *GamesWriter) writeParticipation(boxURI string, pp boxscore.PlayerParticipation) error {
	partURI := boxURI + "_" + pp.PlayerCode
	p := newPrinter(gw.w)

	p.linef("## PlayerBoxscore %s", pp.PlayerCode)
	p.linef("<%s> rdf:type bball:PlayerParticipation ;", partURI)
	p.linef("    bball:overPlayer      <%s> ;", playerURI(pp.PlayerCode))
	p.linef("    bball:hasJerseyName   %q ;", pp.JerseyName)
	p.linef("    bball:dnp             \"%t\"^^xsd:boolean ;", pp.DNP)
	p.linef("    bball:hasJerseyNumber \"%d\"^^xsd:integer ;", pp.JerseyNumber)
	if pp.Statline == nil {
		p.linef("    bball:hasPlayerStatline \"false\"^^xsd:boolean ;")
	} else {
		p.linef("    bball:hasPlayerStatline <%s_Stats> ;", partURI)
	}
	p.linef("    .")
	p.linef("")
	if p.err != nil {
		return p.err
	}

	if pp.Statline == nil {
		return nil
	}
	return gw.writePlayerStatline(partURI, pp)
}

func (gw *GamesWriter) writePlayerStatline(partURI string, pp boxscore.PlayerParticipation) error {
	sl := *pp.Statline
	p := newPrinter(gw.w)

	p.linef("## PlayerStats %s", pp.PlayerCode)
	p.linef("<%s_Stats> rdf:type bball:Statline ;", partURI)
	p.linef("    bball:minutesPlayed \"%s\"^^xsd:double ;", fmt1(sl.Minutes))
	p.linef("    bball:PIR            \"%d\"^^xsd:integer ;", sl.PIR)
	p.linef("    bball:points         \"%d\"^^xsd:integer ;", sl.Points)
	gw.writeShooting(p, sl)
	p.linef("    bball:totalRebounds  \"%d\"^^xsd:integer ;", sl.TotalRebounds)
	p.linef("    bball:defensiveRebounds \"%d\"^^xsd:integer ;", sl.DefensiveRebounds)
	p.linef("    bball:offensiveRebounds \"%d\"^^xsd:integer ;", sl.OffensiveRebounds)
	p.linef("    bball:assists        \"%d\"^^xsd:integer ;", sl.Assists)
	p.linef("    bball:steals         \"%d\"^^xsd:integer ;", sl.Steals)
	p.linef("    bball:turnovers      \"%d\"^^xsd:integer ;", sl.Turnovers)
	p.linef("    bball:blocks         \"%d\"^^xsd:integer ;", sl.BlocksFor)
	p.linef("    bball:blocksAgainst  \"%d\"^^xsd:integer ;", sl.BlocksAgainst)
	p.linef("    bball:foulsCommitted \"%d\"^^xsd:integer ;", sl.FoulsCommitted)
	p.linef("    bball:foulsReceived  \"%d\"^^xsd:integer ;", sl.FoulsReceived)
	p.linef("    bball:plusMinus      \"%d\"^^xsd:integer ;", sl.PlusMinus)
	p.linef("    bball:startingFive   \"%t\"^^xsd:boolean .", pp.StartingFive)
	p.linef("")
	return p.err
}

func (gw *GamesWriter) writeShooting(p *printer, sl boxscore.Statline) {
	p.linef("    bball:fieldGoalsMade2 \"%d\"^^xsd:integer ;", sl.FieldGoalsMade2)
	p.linef("    bball:fieldGoalsAttempted2 \"%d\"^^xsd:integer ;", sl.FieldGoalsAttempted2)
	p.linef("    bball:fieldGoalsPer2 \"%s\"^^xsd:double ;", fmt1(sl.FieldGoalsPct2))
	p.linef("    bball:fieldGoalsMade3 \"%d\"^^xsd:integer ;", sl.FieldGoalsMade3)
	p.linef("    bball:fieldGoalsAttempted3 \"%d\"^^xsd:integer ;", sl.FieldGoalsAttempted3)
	p.linef("    bball:fieldGoalsPer3 \"%s\"^^xsd:double ;", fmt1(sl.FieldGoalsPct3))
	p.linef("    bball:freeThrowsMade \"%d\"^^xsd:integer ;", sl.FreeThrowsMade)
	p.linef("    bball:freeThrowsAttempted \"%d\"^^xsd:integer ;", sl.FreeThrowsAttempted)
	p.linef("    bball:freeThrowsPer  \"%s\"^^xsd:double ;", fmt1(sl.FreeThrowsPct))
	p.linef("    bball:fieldGoalsMadeTotal \"%d\"^^xsd:integer ;", sl.FieldGoalsMade)
	p.linef("    bball:fieldGoalsAttemptedTotal \"%d\"^^xsd:integer ;", sl.FieldGoalsAttempted)
	p.linef("    bball:fieldGoalsPer  \"%s\"^^xsd:double ;", fmt1(sl.FieldGoalsPct))
}

func gameURI(g boxscore.Game) string {
	return fmt.Sprintf("%s/euroleague/game-center/%s/-/%s/%d", baseLeague, g.SeasonAlias, g.SeasonCode, g.GameCode)
}

func seasonURI(alias string) string {
	return "http://www.ics.forth.gr/isl/Basketball/entities/Season_" + strings.ReplaceAll(alias, "-", "_")
}

func teamURI(code string) string {
	return baseLeague + "/euroleague/teams/-/" + code
}

func playerURI(code string) string {
	return baseLeague + "/euroleague/players/-/" + code
}

func fmt1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// printer collects the first write error so emission reads linearly.
type printer struct {
	w   io.Writer
	err error
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}
