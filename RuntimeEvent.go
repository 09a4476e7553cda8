package main

import (
	"encoding/json"
	"github.com/bytedance/sonic"
)

const (
	ProcessCreatedEvent   = "PROCESS_CREATED"
	ProcessStartedEvent   = "PROCESS_STARTED"
	ProcessUpdatedEvent   = "PROCESS_UPDATED"
	ProcessSuspendedEvent = "PROCESS_SUSPENDED"
	ProcessResumedEvent   = "PROCESS_RESUMED"
	ProcessCompletedEvent = "PROCESS_COMPLETED"
	ProcessCancelledEvent = "PROCESS_CANCELLED"
	ProcessDeletedEvent   = "PROCESS_DELETED"

	ProcessCandidateStarterUserAddedEvent    = "PROCESS_CANDIDATE_STARTER_USER_ADDED"
	ProcessCandidateStarterUserRemovedEvent  = "PROCESS_CANDIDATE_STARTER_USER_REMOVED"
	ProcessCandidateStarterGroupAddedEvent   = "PROCESS_CANDIDATE_STARTER_GROUP_ADDED"
	ProcessCandidateStarterGroupRemovedEvent = "PROCESS_CANDIDATE_STARTER_GROUP_REMOVED"

	TaskCreatedEvent   = "TASK_CREATED"
	TaskAssignedEvent  = "TASK_ASSIGNED"
	TaskUpdatedEvent   = "TASK_UPDATED"
	TaskCompletedEvent = "TASK_COMPLETED"
	TaskCancelledEvent = "TASK_CANCELLED"
	TaskActivatedEvent = "TASK_ACTIVATED"
	TaskSuspendedEvent = "TASK_SUSPENDED"

	TaskCandidateUserAddedEvent    = "TASK_CANDIDATE_USER_ADDED"
	TaskCandidateUserRemovedEvent  = "TASK_CANDIDATE_USER_REMOVED"
	TaskCandidateGroupAddedEvent   = "TASK_CANDIDATE_GROUP_ADDED"
	TaskCandidateGroupRemovedEvent = "TASK_CANDIDATE_GROUP_REMOVED"

	VariableCreatedEvent = "VARIABLE_CREATED"
	VariableUpdatedEvent = "VARIABLE_UPDATED"
	VariableDeletedEvent = "VARIABLE_DELETED"

	ActivityStartedEvent   = "ACTIVITY_STARTED"
	ActivityCompletedEvent = "ACTIVITY_COMPLETED"
	ActivityCancelledEvent = "ACTIVITY_CANCELLED"

	SequenceFlowTakenEvent = "SEQUENCE_FLOW_TAKEN"
	SignalReceivedEvent    = "SIGNAL_RECEIVED"

	IntegrationRequestedEvent      = "INTEGRATION_REQUESTED"
	IntegrationResultReceivedEvent = "INTEGRATION_RESULT_RECEIVED"
	IntegrationErrorReceivedEvent  = "INTEGRATION_ERROR_RECEIVED"
)

var AllRuntimeEventTypes = []string{
	ProcessCreatedEvent,
	ProcessStartedEvent,
	ProcessUpdatedEvent,
	ProcessSuspendedEvent,
	ProcessResumedEvent,
	ProcessCompletedEvent,
	ProcessCancelledEvent,
	ProcessDeletedEvent,
	ProcessCandidateStarterUserAddedEvent,
	ProcessCandidateStarterUserRemovedEvent,
	ProcessCandidateStarterGroupAddedEvent,
	ProcessCandidateStarterGroupRemovedEvent,
	TaskCreatedEvent,
	TaskAssignedEvent,
	TaskUpdatedEvent,
	TaskCompletedEvent,
	TaskCancelledEvent,
	TaskActivatedEvent,
	TaskSuspendedEvent,
	TaskCandidateUserAddedEvent,
	TaskCandidateUserRemovedEvent,
	TaskCandidateGroupAddedEvent,
	TaskCandidateGroupRemovedEvent,
	VariableCreatedEvent,
	VariableUpdatedEvent,
	VariableDeletedEvent,
	ActivityStartedEvent,
	ActivityCompletedEvent,
	ActivityCancelledEvent,
	SequenceFlowTakenEvent,
	SignalReceivedEvent,
	IntegrationRequestedEvent,
	IntegrationResultReceivedEvent,
	IntegrationErrorReceivedEvent,
}

// RuntimeEvent is the envelope emitted by the process engine for every state change.
// Entity keeps the raw JSON of the changed object and is decoded on demand by handlers.
type RuntimeEvent struct {
	Id                      string          `json:"id"`
	EventType               string          `json:"eventType"`
	Timestamp               int64           `json:"timestamp"`
	SequenceNumber          int64           `json:"sequenceNumber,omitempty"`
	MessageId               string          `json:"messageId,omitempty"`
	EntityId                string          `json:"entityId,omitempty"`
	ProcessInstanceId       string          `json:"processInstanceId,omitempty"`
	ProcessDefinitionId     string          `json:"processDefinitionId,omitempty"`
	ProcessDefinitionKey    string          `json:"processDefinitionKey,omitempty"`
	BusinessKey             string          `json:"businessKey,omitempty"`
	ParentProcessInstanceId string          `json:"parentProcessInstanceId,omitempty"`
	ServiceName             string          `json:"serviceName,omitempty"`
	ServiceFullName         string          `json:"serviceFullName,omitempty"`
	ServiceVersion          string          `json:"serviceVersion,omitempty"`
	AppName                 string          `json:"appName,omitempty"`
	AppVersion              string          `json:"appVersion,omitempty"`
	Entity                  json.RawMessage `json:"entity,omitempty"`
}

type ProcessInstance struct {
	Id                   string `json:"id"`
	Name                 string `json:"name,omitempty"`
	ProcessDefinitionId  string `json:"processDefinitionId,omitempty"`
	ProcessDefinitionKey string `json:"processDefinitionKey,omitempty"`
	ParentId             string `json:"parentId,omitempty"`
	BusinessKey          string `json:"businessKey,omitempty"`
	Initiator            string `json:"initiator,omitempty"`
	Status               string `json:"status,omitempty"`
	StartDate            int64  `json:"startDate,omitempty"`
	CompletedDate        int64  `json:"completedDate,omitempty"`
	LastModified         int64  `json:"lastModified,omitempty"`
	AppName              string `json:"appName,omitempty"`
	ServiceName          string `json:"serviceName,omitempty"`
}

type Task struct {
	Id                string `json:"id"`
	Name              string `json:"name,omitempty"`
	Description       string `json:"description,omitempty"`
	Assignee          string `json:"assignee,omitempty"`
	Owner             string `json:"owner,omitempty"`
	Priority          int    `json:"priority,omitempty"`
	Status            string `json:"status,omitempty"`
	ProcessInstanceId string `json:"processInstanceId,omitempty"`
	FormKey           string `json:"formKey,omitempty"`
	CreatedDate       int64  `json:"createdDate,omitempty"`
	ClaimedDate       int64  `json:"claimedDate,omitempty"`
	CompletedDate     int64  `json:"completedDate,omitempty"`
	LastModified      int64  `json:"lastModified,omitempty"`
}

type VariableInstance struct {
	Name              string `json:"name"`
	Type              string `json:"type,omitempty"`
	ProcessInstanceId string `json:"processInstanceId,omitempty"`
	TaskId            string `json:"taskId,omitempty"`
	Value             any    `json:"value,omitempty"`
}

// BPMNActivity is one execution of a flow element. ElementId is unique only within a process definition,
// so activities are keyed by element and execution.
type BPMNActivity struct {
	ElementId         string `json:"elementId"`
	ActivityName      string `json:"activityName,omitempty"`
	ActivityType      string `json:"activityType,omitempty"`
	ProcessInstanceId string `json:"processInstanceId,omitempty"`
	ExecutionId       string `json:"executionId,omitempty"`
	Status            string `json:"status,omitempty"`
	StartedDate       int64  `json:"startedDate,omitempty"`
	CompletedDate     int64  `json:"completedDate,omitempty"`
	CancelledDate     int64  `json:"cancelledDate,omitempty"`
}

// Candidate links a user or group to a task or process definition.
type Candidate struct {
	UserId              string `json:"userId,omitempty"`
	GroupId             string `json:"groupId,omitempty"`
	TaskId              string `json:"taskId,omitempty"`
	ProcessDefinitionId string `json:"processDefinitionId,omitempty"`
}

func (variable *VariableInstance) IsTaskVariable() bool {
	return variable.TaskId != ""
}

const (
	ProcessStatusCreated   = "CREATED"
	ProcessStatusRunning   = "RUNNING"
	ProcessStatusSuspended = "SUSPENDED"
	ProcessStatusCompleted = "COMPLETED"
	ProcessStatusCancelled = "CANCELLED"

	TaskStatusCreated   = "CREATED"
	TaskStatusAssigned  = "ASSIGNED"
	TaskStatusSuspended = "SUSPENDED"
	TaskStatusCompleted = "COMPLETED"
	TaskStatusCancelled = "CANCELLED"

	ActivityStatusStarted   = "STARTED"
	ActivityStatusCompleted = "COMPLETED"
	ActivityStatusCancelled = "CANCELLED"
)

func (event *RuntimeEvent) decodeEntity(target any) error {
	if len(event.Entity) == 0 {
		return nil
	}

	return sonic.Unmarshal(event.Entity, target)
}

func (event *RuntimeEvent) GetProcessInstance() (*ProcessInstance, error) {
	processInstance := &ProcessInstance{}
	err := event.decodeEntity(processInstance)
	if processInstance.Id == "" {
		processInstance.Id = event.ProcessInstanceId
	}

	return processInstance, err
}

func (event *RuntimeEvent) GetTask() (*Task, error) {
	task := &Task{}
	err := event.decodeEntity(task)
	if task.Id == "" {
		task.Id = event.EntityId
	}
	if task.ProcessInstanceId == "" {
		task.ProcessInstanceId = event.ProcessInstanceId
	}

	return task, err
}

func (event *RuntimeEvent) GetVariable() (*VariableInstance, error) {
	variable := &VariableInstance{}
	err := event.decodeEntity(variable)
	if variable.ProcessInstanceId == "" {
		variable.ProcessInstanceId = event.ProcessInstanceId
	}

	return variable, err
}

func (event *RuntimeEvent) GetActivity() (*BPMNActivity, error) {
	activity := &BPMNActivity{}
	err := event.decodeEntity(activity)
	if activity.ProcessInstanceId == "" {
		activity.ProcessInstanceId = event.ProcessInstanceId
	}

	return activity, err
}

func (event *RuntimeEvent) GetCandidate() (*Candidate, error) {
	candidate := &Candidate{}
	err := event.decodeEntity(candidate)
	if candidate.ProcessDefinitionId == "" {
		candidate.ProcessDefinitionId = event.ProcessDefinitionId
	}

	return candidate, err
}
