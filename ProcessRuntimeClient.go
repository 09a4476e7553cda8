package main

import (
	"bytes"
	"context"
	"fmt"
	"github.com/bytedance/sonic"
	"golang.org/x/time/rate"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type ProcessRuntimeInterface interface {
	StartProcess(ctx context.Context, payload *StartProcessPayload) (*ProcessInstance, error)
	SuspendProcess(ctx context.Context, processInstanceId string) (*ProcessInstance, error)
	ResumeProcess(ctx context.Context, processInstanceId string) (*ProcessInstance, error)
	DeleteProcess(ctx context.Context, processInstanceId string, reason string) (*ProcessInstance, error)
	Signal(ctx context.Context, payload *SignalPayload) error
	SetProcessVariables(ctx context.Context, processInstanceId string, variables map[string]any) error
	RemoveProcessVariables(ctx context.Context, processInstanceId string, variableNames []string) error
	ClaimTask(ctx context.Context, taskId string, assignee string) (*Task, error)
	ReleaseTask(ctx context.Context, taskId string) (*Task, error)
	CompleteTask(ctx context.Context, taskId string, variables map[string]any) (*Task, error)
}

type RuntimeApiError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (err *RuntimeApiError) Error() string {
	return fmt.Sprintf("runtime api %s %s responded %d: %s", err.Method, err.Path, err.StatusCode, err.Body)
}

const defaultRuntimeApiTimeout = time.Second * 30

// ProcessRuntimeClient calls the process engine REST API (v1 resources).
type ProcessRuntimeClient struct {
	Host        string
	HttpClient  *http.Client
	RateLimiter *rate.Limiter
}

// NewProcessRuntimeClient builds a client limited to requestsPerSecond calls; zero or less means no limit.
func NewProcessRuntimeClient(host string, requestsPerSecond int) *ProcessRuntimeClient {
	rateLimiter := rate.NewLimiter(rate.Inf, 0)
	if requestsPerSecond > 0 {
		rateLimiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}

	return &ProcessRuntimeClient{
		Host:        strings.TrimRight(host, "/"),
		HttpClient:  &http.Client{Timeout: defaultRuntimeApiTimeout},
		RateLimiter: rateLimiter,
	}
}

func (client *ProcessRuntimeClient) StartProcess(ctx context.Context, payload *StartProcessPayload) (*ProcessInstance, error) {
	processInstance := &ProcessInstance{}
	err := client.call(ctx, http.MethodPost, "/v1/process-instances", payload, processInstance)

	return processInstance, err
}

func (client *ProcessRuntimeClient) SuspendProcess(ctx context.Context, processInstanceId string) (*ProcessInstance, error) {
	processInstance := &ProcessInstance{}
	err := client.call(ctx, http.MethodPost, processInstancePath(processInstanceId)+"/suspend", nil, processInstance)

	return processInstance, err
}

func (client *ProcessRuntimeClient) ResumeProcess(ctx context.Context, processInstanceId string) (*ProcessInstance, error) {
	processInstance := &ProcessInstance{}
	err := client.call(ctx, http.MethodPost, processInstancePath(processInstanceId)+"/resume", nil, processInstance)

	return processInstance, err
}

func (client *ProcessRuntimeClient) DeleteProcess(ctx context.Context, processInstanceId string, reason string) (*ProcessInstance, error) {
	path := processInstancePath(processInstanceId)
	if reason != "" {
		path += "?reason=" + url.QueryEscape(reason)
	}

	processInstance := &ProcessInstance{}
	err := client.call(ctx, http.MethodDelete, path, nil, processInstance)

	return processInstance, err
}

func (client *ProcessRuntimeClient) Signal(ctx context.Context, payload *SignalPayload) error {
	return client.call(ctx, http.MethodPost, "/v1/process-instances/signal", payload, nil)
}

func (client *ProcessRuntimeClient) SetProcessVariables(ctx context.Context, processInstanceId string, variables map[string]any) error {
	return client.call(
		ctx, http.MethodPost, processInstancePath(processInstanceId)+"/variables",
		map[string]any{"variables": variables}, nil,
	)
}

func (client *ProcessRuntimeClient) RemoveProcessVariables(ctx context.Context, processInstanceId string, variableNames []string) error {
	return client.call(
		ctx, http.MethodDelete, processInstancePath(processInstanceId)+"/variables",
		map[string]any{"variableNames": variableNames}, nil,
	)
}

func (client *ProcessRuntimeClient) ClaimTask(ctx context.Context, taskId string, assignee string) (*Task, error) {
	task := &Task{}
	path := taskPath(taskId) + "/claim"
	if assignee != "" {
		path += "?assignee=" + url.QueryEscape(assignee)
	}
	err := client.call(ctx, http.MethodPost, path, nil, task)

	return task, err
}

func (client *ProcessRuntimeClient) ReleaseTask(ctx context.Context, taskId string) (*Task, error) {
	task := &Task{}
	err := client.call(ctx, http.MethodPost, taskPath(taskId)+"/release", nil, task)

	return task, err
}

func (client *ProcessRuntimeClient) CompleteTask(ctx context.Context, taskId string, variables map[string]any) (*Task, error) {
	task := &Task{}
	err := client.call(
		ctx, http.MethodPost, taskPath(taskId)+"/complete",
		map[string]any{"taskId": taskId, "variables": variables}, task,
	)

	return task, err
}

func (client *ProcessRuntimeClient) call(ctx context.Context, method string, path string, body any, target any) error {
	var requestBody io.Reader
	if body != nil {
		payload, err := sonic.Marshal(body)
		if err != nil {
			return err
		}
		requestBody = bytes.NewReader(payload)
	}

	if client.RateLimiter != nil {
		err := client.RateLimiter.Wait(ctx)
		if err != nil {
			return err
		}
	}

	request, err := http.NewRequestWithContext(ctx, method, client.Host+path, requestBody)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.HttpClient.Do(request)
	if err != nil {
		return err
	}
	defer func() {
		_ = response.Body.Close()
	}()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return &RuntimeApiError{
			Method:     method,
			Path:       path,
			StatusCode: response.StatusCode,
			Body:       string(bytes.TrimSpace(responseBody)),
		}
	}

	if target == nil || len(bytes.TrimSpace(responseBody)) == 0 {
		return nil
	}

	return sonic.Unmarshal(responseBody, target)
}

func processInstancePath(processInstanceId string) string {
	return "/v1/process-instances/" + url.PathEscape(processInstanceId)
}

func taskPath(taskId string) string {
	return "/v1/tasks/" + url.PathEscape(taskId)
}
