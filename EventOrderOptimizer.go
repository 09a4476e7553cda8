package main

import "sort"

const unknownEventTypeRank = 0

// Events of one batch are applied in entity life-cycle order, then by timestamp,
// so a task is never updated before it is created in the projection.
var eventTypeRanks = map[string]int{
	ProcessCreatedEvent:                      0,
	ProcessStartedEvent:                      1,
	ProcessUpdatedEvent:                      1,
	ProcessSuspendedEvent:                    1,
	ProcessResumedEvent:                      1,
	SequenceFlowTakenEvent:                   2,
	ActivityStartedEvent:                     3,
	IntegrationRequestedEvent:                4,
	SignalReceivedEvent:                      5,
	ActivityCompletedEvent:                   6,
	ActivityCancelledEvent:                   6,
	IntegrationResultReceivedEvent:           7,
	IntegrationErrorReceivedEvent:            7,
	TaskCreatedEvent:                         8,
	TaskCandidateUserAddedEvent:              9,
	TaskCandidateGroupAddedEvent:             9,
	VariableCreatedEvent:                     10,
	VariableUpdatedEvent:                     11,
	VariableDeletedEvent:                     12,
	TaskActivatedEvent:                       13,
	TaskSuspendedEvent:                       13,
	TaskAssignedEvent:                        13,
	TaskUpdatedEvent:                         13,
	TaskCompletedEvent:                       14,
	TaskCancelledEvent:                       14,
	TaskCandidateUserRemovedEvent:            15,
	TaskCandidateGroupRemovedEvent:           15,
	ProcessCompletedEvent:                    16,
	ProcessCancelledEvent:                    16,
	ProcessCandidateStarterUserAddedEvent:    17,
	ProcessCandidateStarterGroupAddedEvent:   17,
	ProcessCandidateStarterUserRemovedEvent:  18,
	ProcessCandidateStarterGroupRemovedEvent: 18,
	ProcessDeletedEvent:                      19,
}

func eventTypeRank(eventType string) int {
	rank, found := eventTypeRanks[eventType]
	if !found {
		return unknownEventTypeRank
	}

	return rank
}

type EventOrderOptimizer struct{}

// Optimize returns a sorted copy of events; the input slice is left untouched.
func (optimizer EventOrderOptimizer) Optimize(events []*RuntimeEvent) []*RuntimeEvent {
	ordered := make([]*RuntimeEvent, len(events))
	copy(ordered, events)

	sort.SliceStable(ordered, func(i, j int) bool {
		leftRank, rightRank := eventTypeRank(ordered[i].EventType), eventTypeRank(ordered[j].EventType)
		if leftRank != rightRank {
			return leftRank < rightRank
		}

		return ordered[i].Timestamp < ordered[j].Timestamp
	})

	return ordered
}
