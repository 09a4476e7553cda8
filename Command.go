package main

import (
	"encoding/json"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"reflect"
	"time"
)

const (
	StartProcessCommand           = "StartProcess"
	SuspendProcessCommand         = "SuspendProcess"
	ResumeProcessCommand          = "ResumeProcess"
	DeleteProcessCommand          = "DeleteProcess"
	SignalCommand                 = "Signal"
	SetProcessVariablesCommand    = "SetProcessVariables"
	RemoveProcessVariablesCommand = "RemoveProcessVariables"
	ClaimTaskCommand              = "ClaimTask"
	ReleaseTaskCommand            = "ReleaseTask"
	CompleteTaskCommand           = "CompleteTask"
)

// Command is an instruction for the process engine received from the commands topic.
// Id is opaque and is echoed back as Result.CorrelationId.
type Command struct {
	Id          string          `json:"id"`
	CommandType string          `json:"commandType"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

func (command *Command) DecodePayload(target any) error {
	if len(command.Payload) == 0 {
		return nil
	}

	return sonic.Unmarshal(command.Payload, target)
}

// Result acknowledges an executed command. Empty marks commands without output.
type Result struct {
	Id            string          `json:"id"`
	CorrelationId string          `json:"correlationId"`
	CommandType   string          `json:"commandType"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	Entity        any             `json:"entity,omitempty"`
	Empty         bool            `json:"empty,omitempty"`
	Timestamp     int64           `json:"timestamp"`
}

// NewResult marks the result empty when entity is nil, including a typed nil pointer.
func NewResult(command *Command, entity any) *Result {
	if isNilEntity(entity) {
		entity = nil
	}

	return &Result{
		Id:            uuid.NewString(),
		CorrelationId: command.Id,
		CommandType:   command.CommandType,
		Payload:       command.Payload,
		Entity:        entity,
		Empty:         entity == nil,
		Timestamp:     time.Now().UnixMilli(),
	}
}

func isNilEntity(entity any) bool {
	if entity == nil {
		return true
	}

	value := reflect.ValueOf(entity)
	switch value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return value.IsNil()
	}

	return false
}

type StartProcessPayload struct {
	ProcessDefinitionId  string         `json:"processDefinitionId,omitempty"`
	ProcessDefinitionKey string         `json:"processDefinitionKey,omitempty"`
	BusinessKey          string         `json:"businessKey,omitempty"`
	Name                 string         `json:"name,omitempty"`
	Variables            map[string]any `json:"variables,omitempty"`
}

type ProcessInstancePayload struct {
	ProcessInstanceId string `json:"processInstanceId"`
	Reason            string `json:"reason,omitempty"`
}

type SignalPayload struct {
	Name      string         `json:"name"`
	Variables map[string]any `json:"variables,omitempty"`
}

type SetProcessVariablesPayload struct {
	ProcessInstanceId string         `json:"processInstanceId"`
	Variables         map[string]any `json:"variables"`
}

type RemoveProcessVariablesPayload struct {
	ProcessInstanceId string   `json:"processInstanceId"`
	VariableNames     []string `json:"variableNames"`
}

type ClaimTaskPayload struct {
	TaskId   string `json:"taskId"`
	Assignee string `json:"assignee"`
}

type TaskPayload struct {
	TaskId string `json:"taskId"`
}

type CompleteTaskPayload struct {
	TaskId    string         `json:"taskId"`
	Variables map[string]any `json:"variables,omitempty"`
}
