package refdata

import "github.com/samber/lo"

// MatchConditions returns every condition whose symptom set has a non-empty
// intersection with the selected symptom ids, in table order. An empty
// selection matches nothing.
func MatchConditions(selectedSymptomIDs []string) []Condition {
	selected := toSet(selectedSymptomIDs)
	return lo.Filter(Conditions, func(c Condition, _ int) bool {
		for _, id := range c.Symptoms {
			if selected[id] {
				return true
			}
		}
		return false
	})
}

// MatchInteractions returns every interaction whose two medication ids are
// both members of the selection, in table order. The membership test is on
// the stored pair exactly as recorded; pairs are not canonicalized.
func MatchInteractions(selectedMedicationIDs []string) []Interaction {
	selected := toSet(selectedMedicationIDs)
	return lo.Filter(Interactions, func(i Interaction, _ int) bool {
		return selected[i.Medication1] && selected[i.Medication2]
	})
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
