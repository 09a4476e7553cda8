package main

import (
	"errors"
	"fmt"
)

var ErrEmptyCandidate = errors.New("candidate event without candidate or owner id")

func NewCandidateEventHandlers(repository QueryRepositoryInterface) []EventHandlerInterface {
	taskUser := candidateTarget{ownerId: candidateTaskId, candidateId: candidateUserId, key: taskCandidateUsersKey, task: true}
	taskGroup := candidateTarget{ownerId: candidateTaskId, candidateId: candidateGroupId, key: taskCandidateGroupsKey, task: true}
	starterUser := candidateTarget{ownerId: candidateProcessDefinitionId, candidateId: candidateUserId, key: processDefinitionCandidateStarterUsersKey}
	starterGroup := candidateTarget{ownerId: candidateProcessDefinitionId, candidateId: candidateGroupId, key: processDefinitionCandidateStarterGroupsKey}

	return []EventHandlerInterface{
		&CandidateEventHandler{repository: repository, eventType: TaskCandidateUserAddedEvent, target: taskUser, added: true},
		&CandidateEventHandler{repository: repository, eventType: TaskCandidateUserRemovedEvent, target: taskUser},
		&CandidateEventHandler{repository: repository, eventType: TaskCandidateGroupAddedEvent, target: taskGroup, added: true},
		&CandidateEventHandler{repository: repository, eventType: TaskCandidateGroupRemovedEvent, target: taskGroup},
		&CandidateEventHandler{repository: repository, eventType: ProcessCandidateStarterUserAddedEvent, target: starterUser, added: true},
		&CandidateEventHandler{repository: repository, eventType: ProcessCandidateStarterUserRemovedEvent, target: starterUser},
		&CandidateEventHandler{repository: repository, eventType: ProcessCandidateStarterGroupAddedEvent, target: starterGroup, added: true},
		&CandidateEventHandler{repository: repository, eventType: ProcessCandidateStarterGroupRemovedEvent, target: starterGroup},
	}
}

type candidateTarget struct {
	ownerId     func(candidate *Candidate) string
	candidateId func(candidate *Candidate) string
	key         func(ownerId string) string
	// task candidates require the task to be projected already
	task bool
}

func candidateTaskId(candidate *Candidate) string {
	return candidate.TaskId
}

func candidateProcessDefinitionId(candidate *Candidate) string {
	return candidate.ProcessDefinitionId
}

func candidateUserId(candidate *Candidate) string {
	return candidate.UserId
}

func candidateGroupId(candidate *Candidate) string {
	return candidate.GroupId
}

// CandidateEventHandler adds or removes a candidate user or group of a task or a process definition.
type CandidateEventHandler struct {
	repository QueryRepositoryInterface
	eventType  string
	target     candidateTarget
	added      bool
}

func (handler *CandidateEventHandler) GetHandledEvent() string {
	return handler.eventType
}

func (handler *CandidateEventHandler) Handle(event *RuntimeEvent) error {
	candidate, err := event.GetCandidate()
	if err != nil {
		return err
	}

	ownerId, candidateId := handler.target.ownerId(candidate), handler.target.candidateId(candidate)
	if ownerId == "" || candidateId == "" {
		return fmt.Errorf("%w: %s %s", ErrEmptyCandidate, event.EventType, event.Id)
	}

	if handler.target.task {
		task, err := handler.repository.GetTask(ownerId)
		if err == nil && task == nil {
			err = fmt.Errorf("%w: %s", ErrTaskNotFound, ownerId)
		}
		if err != nil {
			return err
		}
	}

	if handler.added {
		return handler.repository.AddCandidate(handler.target.key(ownerId), candidateId)
	}

	return handler.repository.RemoveCandidate(handler.target.key(ownerId), candidateId)
}
