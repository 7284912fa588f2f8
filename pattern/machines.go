package pattern

import (
	"medscribe.com/mre/fsm"
)

const (
	stateStart = "START"
	stateEnd   = "END"
)

/*
getTreatmentCountMachine detects counted treatment phrases:
  - ten physiotherapy sessions
  - 10 physio visits
  - two physical therapy appointments
*/
func getTreatmentCountMachine(treatmentWords map[string]bool, sessionNouns map[string]bool) fsm.Machine {
	const (
		Count     = "COUNT"
		Treatment = "TREATMENT"
	)

	textNumberSet := make(map[string]bool, len(textNumbers))
	for word := range textNumbers {
		textNumberSet[word] = true
	}

	countCondition := fsm.NewDisjointCondition(
		fsm.NumberCondition,
		fsm.NewWordSetCondition(textNumberSet),
	)
	treatmentCondition := fsm.NewWordSetCondition(treatmentWords)
	sessionCondition := fsm.NewWordSetCondition(sessionNouns)

	return fsm.Machine{
		stateStart: []fsm.MachineRule{
			{Cond: countCondition, Dst: Count},
			{Cond: fsm.AnyCondition, Dst: stateStart},
		},
		Count: []fsm.MachineRule{
			{Cond: treatmentCondition, Dst: Treatment},
			{Cond: fsm.AnyCondition, Dst: stateStart},
		},
		Treatment: []fsm.MachineRule{
			{Cond: sessionCondition, Dst: stateEnd},
			{Cond: treatmentCondition, Dst: Treatment},
			{Cond: fsm.AnyCondition, Dst: stateStart},
		},
		stateEnd: []fsm.MachineRule{
			{Cond: fsm.AnyCondition, Dst: stateStart},
		},
	}
}

/*
getRecoveryTimeMachine detects temporal-recovery phrases:
  - full recovery within six months
  - recovery is expected within 6 weeks
  - should recover in a month
*/
func getRecoveryTimeMachine(durationUnits map[string]bool) fsm.Machine {
	const (
		Qualifier = "QUALIFIER"
		Recovery  = "RECOVERY"
		Within    = "WITHIN"
		Count     = "COUNT"
	)

	textNumberSet := make(map[string]bool, len(textNumbers))
	for word := range textNumbers {
		textNumberSet[word] = true
	}

	qualifierCondition := fsm.NewDisjointCondition(
		fsm.NewTextValueCondition("full"),
		fsm.NewTextValueCondition("complete"),
	)
	recoveryCondition := fsm.NewDisjointCondition(
		fsm.NewTextValueCondition("recovery"),
		fsm.NewTextValueCondition("recover"),
		fsm.NewTextValueCondition("heal"),
	)
	fillerCondition := fsm.NewWordSetCondition(map[string]bool{
		"is":       true,
		"are":      true,
		"expected": true,
		"likely":   true,
		"fully":    true,
	})
	withinCondition := fsm.NewDisjointCondition(
		fsm.NewTextValueCondition("within"),
		fsm.NewTextValueCondition("in"),
	)
	articleCondition := fsm.NewWordSetCondition(map[string]bool{
		"a":  true,
		"an": true,
	})
	countCondition := fsm.NewDisjointCondition(
		fsm.NumberCondition,
		fsm.NewWordSetCondition(textNumberSet),
	)
	unitCondition := fsm.NewWordSetCondition(durationUnits)

	return fsm.Machine{
		stateStart: []fsm.MachineRule{
			{Cond: qualifierCondition, Dst: Qualifier},
			{Cond: recoveryCondition, Dst: Recovery},
			{Cond: fsm.AnyCondition, Dst: stateStart},
		},
		Qualifier: []fsm.MachineRule{
			{Cond: recoveryCondition, Dst: Recovery},
			{Cond: fsm.AnyCondition, Dst: stateStart},
		},
		Recovery: []fsm.MachineRule{
			{Cond: withinCondition, Dst: Within},
			{Cond: fillerCondition, Dst: Recovery},
			{Cond: fsm.AnyCondition, Dst: stateStart},
		},
		Within: []fsm.MachineRule{
			{Cond: countCondition, Dst: Count},
			{Cond: articleCondition, Dst: Count},
			{Cond: fsm.AnyCondition, Dst: stateStart},
		},
		Count: []fsm.MachineRule{
			{Cond: unitCondition, Dst: stateEnd},
			{Cond: fsm.AnyCondition, Dst: stateStart},
		},
		stateEnd: []fsm.MachineRule{
			{Cond: fsm.AnyCondition, Dst: stateStart},
		},
	}
}
