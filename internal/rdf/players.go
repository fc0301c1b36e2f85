package rdf

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"euroleague-data-service/internal/domain/feed"
)

const playerPrefixes = `@prefix rdf:   <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix bball: <http://www.ics.forth.gr/isl/Basketball#> .
@prefix ent:   <http://www.ics.forth.gr/isl/Basketball/entities/> .
@prefix euroleague: <https://www.euroleaguebasketball.net/euroleague/> .
@prefix foaf:  <http://xmlns.com/foaf/0.1/> .
@prefix rdfs:  <http://www.w3.org/2000/01/rdf-schema#> .
@prefix xsd:   <http://www.w3.org/2001/XMLSchema#> .
`

// PlayerExtractor emits one Player entity per distinct player code seen
// across a run, deduplicated by natural code.
type PlayerExtractor struct {
	w    io.Writer
	seen *CodeSet
}

// NewPlayerExtractor wraps w with a fresh dedup set.
func NewPlayerExtractor(w io.Writer) *PlayerExtractor {
	return &PlayerExtractor{w: w, seen: NewCodeSet()}
}

// WritePrefixes emits the namespace prefix block. Call once per document.
func (pe *PlayerExtractor) WritePrefixes() error {
	_, err := fmt.Fprint(pe.w, playerPrefixes+"\n")
	return err
}

// WriteFrom emits entities for every not-yet-seen player on either side
// of a stats document. Returns the number of entities written.
func (pe *PlayerExtractor) WriteFrom(stats *feed.StatsDocument) (int, error) {
	written := 0
	for _, side := range []feed.StatsSide{stats.Local, stats.Road} {
		for _, entry := range side.Players {
			if entry.Player.Person.Code == "" || !pe.seen.Add(entry.Player.Person.Code) {
				continue
			}
			if err := pe.writePlayer(entry.Player); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}

// writePlayer emits the entity with its biographic triples. Every field
// beyond code and label is optional and omitted when the feed left it out.
func (pe *PlayerExtractor) writePlayer(player feed.PlayerRef) error {
	person := player.Person
	p := newPrinter(pe.w)
	p.linef("<%s> a bball:Player ;", playerURI(person.Code))
	p.linef("    bball:hasCode %q ;", person.Code)
	p.linef("    rdfs:label    %q ;", displayName(person.Name))
	if person.JerseyName != "" {
		p.linef("    bball:hasJerseyName %q ;", person.JerseyName)
	}
	if person.Country != nil && person.Country.Code != "" {
		p.linef("    bball:hasCountry    ent:%s ;", person.Country.Code)
	}
	if person.BirthCountry != nil && person.BirthCountry.Code != "" {
		p.linef("    bball:wasBornIn     ent:%s ;", person.BirthCountry.Code)
	}
	// feed height is centimeters
	if person.Height > 0 {
		p.linef("    bball:hasHeight     \"%s\"^^xsd:double ;", strconv.FormatFloat(person.Height/100, 'f', -1, 64))
	}
	if person.Weight > 0 {
		p.linef("    bball:hasWeight     \"%d\"^^xsd:double ;", person.Weight)
	}
	if date := birthDate(person.BirthDate); date != "" {
		p.linef("    bball:hasBirthDate  \"%s\"^^xsd:date ;", date)
	}
	if player.PositionName != "" {
		p.linef("    bball:hasPosition   %q ;", player.PositionName)
	}
	if player.Images != nil && player.Images.Headshot != "" {
		p.linef("    foaf:depiction      <%s> ;", player.Images.Headshot)
	}
	p.linef("    .")
	return p.err
}

// birthDate trims the feed's timestamp form down to the date part.
func birthDate(raw string) string {
	date, _, _ := strings.Cut(raw, "T")
	return date
}

// displayName turns the upstream "LAST, FIRST" form into "First Last".
func displayName(raw string) string {
	last, first, found := strings.Cut(raw, ",")
	if !found {
		return titleCase(strings.TrimSpace(raw))
	}
	return titleCase(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

var romanNumeral = regexp.MustCompile(`^[IVXLCDM]+$`)

// titleCase capitalizes each word and hyphenated part, leaving all-caps
// Roman numerals (suffixes like II, III) untouched.
func titleCase(input string) string {
	words := strings.Fields(input)
	for i, word := range words {
		parts := strings.Split(word, "-")
		for j, part := range parts {
			if part == "" || romanNumeral.MatchString(part) {
				continue
			}
			parts[j] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
		words[i] = strings.Join(parts, "-")
	}
	return strings.Join(words, " ")
}
