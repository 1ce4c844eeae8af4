package refdata

import "testing"

func conditionIDs(conditions []Condition) []string {
	ids := make([]string, len(conditions))
	for i, c := range conditions {
		ids[i] = c.ID
	}
	return ids
}

func TestMatchConditions_EmptySelection(t *testing.T) {
	if got := MatchConditions(nil); len(got) != 0 {
		t.Fatalf("MatchConditions(nil) = %v; want empty", conditionIDs(got))
	}
	if got := MatchConditions([]string{}); len(got) != 0 {
		t.Fatalf("MatchConditions([]) = %v; want empty", conditionIDs(got))
	}
}

func TestMatchConditions_SingleSymptom(t *testing.T) {
	// Fever appears in Common Cold, Influenza, COVID-19, and Pneumonia.
	got := MatchConditions([]string{"1"})
	want := []string{"1", "2", "3", "4"}
	if len(got) != len(want) {
		t.Fatalf("MatchConditions({1}) = %v; want %v", conditionIDs(got), want)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("result[%d].ID = %q; want %q (table order)", i, got[i].ID, id)
		}
	}
}

func TestMatchConditions_RashOnly(t *testing.T) {
	got := MatchConditions([]string{"10"})
	if len(got) != 1 || got[0].Name != "Allergic Reaction" {
		t.Fatalf("MatchConditions({10}) = %v; want only Allergic Reaction", conditionIDs(got))
	}
}

func TestMatchConditions_UnknownSymptom(t *testing.T) {
	if got := MatchConditions([]string{"999"}); len(got) != 0 {
		t.Fatalf("MatchConditions({999}) = %v; want empty", conditionIDs(got))
	}
}

func TestMatchConditions_AllSymptoms(t *testing.T) {
	all := make([]string, len(Symptoms))
	for i, s := range Symptoms {
		all[i] = s.ID
	}
	if got := MatchConditions(all); len(got) != len(Conditions) {
		t.Fatalf("full selection matched %d conditions; want %d", len(got), len(Conditions))
	}
}

func TestMatchInteractions_BothEndpointsRequired(t *testing.T) {
	got := MatchInteractions([]string{"1", "3"})
	if len(got) != 1 {
		t.Fatalf("MatchInteractions({1,3}) returned %d records; want 1", len(got))
	}
	if got[0].Severity != SeverityHigh {
		t.Errorf("severity = %q; want %q", got[0].Severity, SeverityHigh)
	}
	if got[0].Medication1 != "1" || got[0].Medication2 != "3" {
		t.Errorf("pair = (%s,%s); want (1,3)", got[0].Medication1, got[0].Medication2)
	}
}

func TestMatchInteractions_SingleMedication(t *testing.T) {
	if got := MatchInteractions([]string{"1"}); len(got) != 0 {
		t.Fatalf("MatchInteractions({1}) returned %d records; want 0", len(got))
	}
}

func TestMatchInteractions_Empty(t *testing.T) {
	if got := MatchInteractions(nil); len(got) != 0 {
		t.Fatalf("MatchInteractions(nil) returned %d records; want 0", len(got))
	}
}

func TestMatchInteractions_MultiplePairs(t *testing.T) {
	// Selecting warfarin with both NSAIDs surfaces both high-severity records.
	got := MatchInteractions([]string{"1", "2", "3"})
	if len(got) != 2 {
		t.Fatalf("MatchInteractions({1,2,3}) returned %d records; want 2", len(got))
	}
	// Table order preserved.
	if got[0].Medication1 != "1" || got[1].Medication1 != "2" {
		t.Errorf("records out of table order: (%s,%s) then (%s,%s)",
			got[0].Medication1, got[0].Medication2, got[1].Medication1, got[1].Medication2)
	}
}

func TestMatchInteractions_SelectionOrderIrrelevant(t *testing.T) {
	a := MatchInteractions([]string{"3", "1"})
	b := MatchInteractions([]string{"1", "3"})
	if len(a) != len(b) {
		t.Fatalf("selection order changed result count: %d vs %d", len(a), len(b))
	}
}

func TestReferenceTables_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Symptoms {
		if seen[s.ID] {
			t.Errorf("duplicate symptom id %q", s.ID)
		}
		seen[s.ID] = true
	}
	seen = map[string]bool{}
	for _, m := range Medications {
		if seen[m.ID] {
			t.Errorf("duplicate medication id %q", m.ID)
		}
		seen[m.ID] = true
	}
}
