package feed

import (
	"encoding/json"
	"testing"
)

func TestIsPlayedDefaultsToPlayed(t *testing.T) {
	var g GameDocument
	if err := json.Unmarshal([]byte(`{"gameCode":1}`), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !g.IsPlayed() {
		t.Fatal("document without a played field should count as played")
	}

	if err := json.Unmarshal([]byte(`{"gameCode":1,"played":false}`), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if g.IsPlayed() {
		t.Fatal("explicit false should count as not played")
	}

	if err := json.Unmarshal([]byte(`{"gameCode":1,"played":true}`), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !g.IsPlayed() {
		t.Fatal("explicit true should count as played")
	}
}

func TestRefereesSkipsEmptySlots(t *testing.T) {
	g := GameDocument{
		Referee1: &Referee{Code: "R1"},
		Referee3: &Referee{Code: "R3"},
		Referee4: &Referee{Code: ""},
	}
	refs := g.Referees()
	if len(refs) != 2 || refs[0] != "R1" || refs[1] != "R3" {
		t.Fatalf("unexpected referees %v", refs)
	}
}

func TestStatsSideEmpty(t *testing.T) {
	if !(StatsSide{}).Empty() {
		t.Fatal("zero side should be empty")
	}
	if (StatsSide{Coach: &Coach{Code: "C1"}}).Empty() {
		t.Fatal("side with a coach is not empty")
	}
	if (StatsSide{Players: []PlayerEntry{{}}}).Empty() {
		t.Fatal("side with players is not empty")
	}
	if (StatsSide{Total: &RawStatline{}}).Empty() {
		t.Fatal("side with totals is not empty")
	}
}

func TestPartialsDecodeExtraPeriods(t *testing.T) {
	raw := `{"partials1":20,"partials2":18,"partials3":25,"partials4":17,"extraPeriods":{"1":8,"2":5}}`
	var p Partials
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Quarter1 != 20 || p.Quarter4 != 17 {
		t.Fatalf("unexpected quarters %+v", p)
	}
	if len(p.ExtraPeriods) != 2 || p.ExtraPeriods["1"] != 8 || p.ExtraPeriods["2"] != 5 {
		t.Fatalf("unexpected extra periods %v", p.ExtraPeriods)
	}
}
