package main

import (
	"context"
	"errors"
	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type QueryRepositoryInterface interface {
	SaveProcessInstance(processInstance *ProcessInstance) error
	GetProcessInstance(processInstanceId string) (*ProcessInstance, error)
	DeleteProcessInstance(processInstanceId string) error
	SaveTask(task *Task) error
	GetTask(taskId string) (*Task, error)
	GetProcessInstanceTaskIds(processInstanceId string) ([]string, error)
	VariableExists(variable *VariableInstance) (bool, error)
	SaveVariable(variable *VariableInstance) error
	GetVariable(processInstanceId string, taskId string, name string) (*VariableInstance, error)
	DeleteVariable(variable *VariableInstance) error
	SaveActivity(activity *BPMNActivity) error
	GetActivity(processInstanceId string, elementId string, executionId string) (*BPMNActivity, error)
	AddCandidate(key string, candidateId string) error
	RemoveCandidate(key string, candidateId string) error
	GetCandidates(key string) ([]string, error)
	Commit() error
}

// QueryRepository keeps the read-side projection of process instances, tasks, variables,
// activities and candidates.
//
// Keys:
//
//	process_instance:<id>                             JSON of ProcessInstance
//	process_instance:<id>:tasks                       set of task ids
//	process_instance:<id>:variables                   hash name => protobuf encoded variable
//	process_instance:<id>:activities                  hash elementId:executionId => JSON of BPMNActivity
//	task:<id>                                         JSON of Task
//	task:<id>:variables                               hash name => protobuf encoded variable
//	task:<id>:candidate_users                         set of user ids
//	task:<id>:candidate_groups                        set of group ids
//	process_definition:<id>:candidate_starter_users   set of user ids
//	process_definition:<id>:candidate_starter_groups  set of group ids
type QueryRepository struct {
	redis redis.UniversalClient
}

const RedisBackgroundSaveInProgress = "ERR Background save already in progress"

func processInstanceKey(processInstanceId string) string {
	return "process_instance:" + processInstanceId
}

func processInstanceTasksKey(processInstanceId string) string {
	return processInstanceKey(processInstanceId) + ":tasks"
}

func processInstanceVariablesKey(processInstanceId string) string {
	return processInstanceKey(processInstanceId) + ":variables"
}

func processInstanceActivitiesKey(processInstanceId string) string {
	return processInstanceKey(processInstanceId) + ":activities"
}

func activityField(elementId string, executionId string) string {
	return elementId + ":" + executionId
}

func taskKey(taskId string) string {
	return "task:" + taskId
}

func taskVariablesKey(taskId string) string {
	return taskKey(taskId) + ":variables"
}

func taskCandidateUsersKey(taskId string) string {
	return taskKey(taskId) + ":candidate_users"
}

func taskCandidateGroupsKey(taskId string) string {
	return taskKey(taskId) + ":candidate_groups"
}

func processDefinitionCandidateStarterUsersKey(processDefinitionId string) string {
	return "process_definition:" + processDefinitionId + ":candidate_starter_users"
}

func processDefinitionCandidateStarterGroupsKey(processDefinitionId string) string {
	return "process_definition:" + processDefinitionId + ":candidate_starter_groups"
}

func variablesKey(variable *VariableInstance) string {
	if variable.IsTaskVariable() {
		return taskVariablesKey(variable.TaskId)
	}

	return processInstanceVariablesKey(variable.ProcessInstanceId)
}

func (repository *QueryRepository) SaveProcessInstance(processInstance *ProcessInstance) error {
	serialized, err := sonic.Marshal(processInstance)
	if err == nil {
		err = repository.redis.Set(context.Background(), processInstanceKey(processInstance.Id), serialized, 0).Err()
	}

	return err
}

// GetProcessInstance returns nil without error when the process instance is unknown.
func (repository *QueryRepository) GetProcessInstance(processInstanceId string) (*ProcessInstance, error) {
	processInstance := &ProcessInstance{}
	found, err := repository.getJson(processInstanceKey(processInstanceId), processInstance)
	if !found {
		return nil, err
	}

	return processInstance, err
}

func (repository *QueryRepository) DeleteProcessInstance(processInstanceId string) error {
	ctx := context.Background()

	taskIds, err := repository.GetProcessInstanceTaskIds(processInstanceId)
	if err != nil {
		return err
	}

	pipe := repository.redis.TxPipeline()
	for _, taskId := range taskIds {
		pipe.Del(
			ctx,
			taskKey(taskId),
			taskVariablesKey(taskId),
			taskCandidateUsersKey(taskId),
			taskCandidateGroupsKey(taskId),
		)
	}
	pipe.Del(
		ctx,
		processInstanceKey(processInstanceId),
		processInstanceTasksKey(processInstanceId),
		processInstanceVariablesKey(processInstanceId),
		processInstanceActivitiesKey(processInstanceId),
	)

	_, err = pipe.Exec(ctx)
	return err
}

func (repository *QueryRepository) SaveTask(task *Task) error {
	serialized, err := sonic.Marshal(task)
	ctx := context.Background()
	if err == nil {
		pipe := repository.redis.TxPipeline()
		pipe.Set(ctx, taskKey(task.Id), serialized, 0)
		if task.ProcessInstanceId != "" {
			pipe.SAdd(ctx, processInstanceTasksKey(task.ProcessInstanceId), task.Id)
		}

		_, err = pipe.Exec(ctx)
	}

	return err
}

// GetTask returns nil without error when the task is unknown.
func (repository *QueryRepository) GetTask(taskId string) (*Task, error) {
	task := &Task{}
	found, err := repository.getJson(taskKey(taskId), task)
	if !found {
		return nil, err
	}

	return task, err
}

func (repository *QueryRepository) GetProcessInstanceTaskIds(processInstanceId string) ([]string, error) {
	return repository.redis.SMembers(context.Background(), processInstanceTasksKey(processInstanceId)).Result()
}

func (repository *QueryRepository) VariableExists(variable *VariableInstance) (bool, error) {
	return repository.redis.HExists(context.Background(), variablesKey(variable), variable.Name).Result()
}

func (repository *QueryRepository) SaveVariable(variable *VariableInstance) error {
	serialized, err := encodeVariable(variable)
	if err == nil {
		err = repository.redis.HSet(context.Background(), variablesKey(variable), variable.Name, serialized).Err()
	}

	return err
}

// GetVariable returns nil without error when the variable is unknown.
// An empty taskId selects the process instance scope.
func (repository *QueryRepository) GetVariable(processInstanceId string, taskId string, name string) (*VariableInstance, error) {
	variable := &VariableInstance{
		Name:              name,
		ProcessInstanceId: processInstanceId,
		TaskId:            taskId,
	}

	serialized, err := repository.redis.HGet(context.Background(), variablesKey(variable), name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err == nil {
		err = decodeVariable(serialized, variable)
	}

	return variable, err
}

func (repository *QueryRepository) DeleteVariable(variable *VariableInstance) error {
	return repository.redis.HDel(context.Background(), variablesKey(variable), variable.Name).Err()
}

func (repository *QueryRepository) SaveActivity(activity *BPMNActivity) error {
	serialized, err := sonic.Marshal(activity)
	if err == nil {
		err = repository.redis.HSet(
			context.Background(),
			processInstanceActivitiesKey(activity.ProcessInstanceId),
			activityField(activity.ElementId, activity.ExecutionId),
			serialized,
		).Err()
	}

	return err
}

// GetActivity returns nil without error when the activity is unknown.
func (repository *QueryRepository) GetActivity(processInstanceId string, elementId string, executionId string) (*BPMNActivity, error) {
	serialized, err := repository.redis.HGet(
		context.Background(),
		processInstanceActivitiesKey(processInstanceId),
		activityField(elementId, executionId),
	).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	activity := &BPMNActivity{}
	return activity, sonic.Unmarshal(serialized, activity)
}

func (repository *QueryRepository) AddCandidate(key string, candidateId string) error {
	return repository.redis.SAdd(context.Background(), key, candidateId).Err()
}

func (repository *QueryRepository) RemoveCandidate(key string, candidateId string) error {
	return repository.redis.SRem(context.Background(), key, candidateId).Err()
}

func (repository *QueryRepository) GetCandidates(key string) ([]string, error) {
	return repository.redis.SMembers(context.Background(), key).Result()
}

func (repository *QueryRepository) Commit() error {
	err := repository.redis.BgSave(context.Background()).Err()
	if err != nil && err.Error() == RedisBackgroundSaveInProgress {
		err = nil
	}

	return err
}

func (repository *QueryRepository) getJson(key string, target any) (found bool, err error) {
	serialized, err := repository.redis.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, sonic.Unmarshal(serialized, target)
}

func encodeVariable(variable *VariableInstance) ([]byte, error) {
	value, err := structpb.NewValue(variable.Value)
	if err != nil {
		return nil, err
	}

	return proto.Marshal(&structpb.Struct{
		Fields: map[string]*structpb.Value{
			"type":  structpb.NewStringValue(variable.Type),
			"value": value,
		},
	})
}

func decodeVariable(serialized []byte, variable *VariableInstance) error {
	encoded := &structpb.Struct{}
	err := proto.Unmarshal(serialized, encoded)
	if err == nil {
		variable.Type = encoded.GetFields()["type"].GetStringValue()
		variable.Value = encoded.GetFields()["value"].AsInterface()
	}

	return err
}
