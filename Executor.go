package main

import (
	"context"
	"fmt"
	"github.com/redis/go-redis/v9"
	"io"
	"os/signal"
	"sync"
	"syscall"
)

// ExecutorInterface is a long-running part of the service. Execute blocks until ctx is done
// and calls wg.Done on return.
type ExecutorInterface interface {
	Execute(ctx context.Context, wg *sync.WaitGroup)
}

// Executor runs every pool executor until SIGINT, SIGTERM or SIGQUIT.
type Executor struct {
	out          io.Writer
	redis        redis.UniversalClient
	executorPool []ExecutorInterface
}

func (executor *Executor) Execute() {
	if executor.redis != nil {
		_, err := executor.redis.Ping(context.Background()).Result()
		if err != nil {
			_, _ = fmt.Fprintf(executor.out, "Failed to connect to redisClient: %s\n", err.Error())
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	wg := &sync.WaitGroup{}

	wg.Add(len(executor.executorPool))
	for _, poolExecutor := range executor.executorPool {
		go poolExecutor.Execute(ctx, wg)
	}

	wg.Wait()

	if executor.redis != nil {
		executor.redis.Save(context.Background())
	}
}
