package main

import (
	"context"
	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"strconv"
	"time"
)

type AuditEventRepositoryInterface interface {
	Append(event *RuntimeEvent) (bool, error)
	Commit() error
}

const AuditStreamKey = "audit_events"

// AuditEventIdExpiration bounds the window in which a redelivered event is recognised.
const AuditEventIdExpiration = time.Hour * 24 * 7

type AuditEventRepository struct {
	redis redis.UniversalClient
}

func auditEventIdKey(eventId string) string {
	return "audit_event:" + eventId
}

// Append stores the event in the audit stream once per event id.
// It reports false when the event was already stored.
func (repository *AuditEventRepository) Append(event *RuntimeEvent) (bool, error) {
	ctx := context.Background()

	serialized, err := sonic.Marshal(event)
	if err != nil {
		return false, err
	}

	if event.Id != "" {
		isNew, err := repository.redis.SetNX(ctx, auditEventIdKey(event.Id), event.EventType, AuditEventIdExpiration).Result()
		if err != nil || !isNew {
			return false, err
		}
	}

	err = repository.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: AuditStreamKey,
		Values: map[string]any{
			"eventId":           event.Id,
			"eventType":         event.EventType,
			"processInstanceId": event.ProcessInstanceId,
			"timestamp":         strconv.FormatInt(event.Timestamp, 10),
			"event":             string(serialized),
		},
	}).Err()

	if err != nil && event.Id != "" {
		// release the id so the redelivered event is stored
		repository.redis.Del(ctx, auditEventIdKey(event.Id))
	}

	return err == nil, err
}

func (repository *AuditEventRepository) Commit() error {
	err := repository.redis.BgSave(context.Background()).Err()
	if err != nil && err.Error() == RedisBackgroundSaveInProgress {
		err = nil
	}

	return err
}
