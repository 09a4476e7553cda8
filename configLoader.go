package main

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultAppName = "process-event-dispatcher"

const defaultRuntimeApiRateLimit = 50

const defaultMetricsListen = ":9090"

type Config struct {
	appName             string
	kafkaHost           string
	kafkaTimeout        time.Duration
	kafkaAttempts       int
	redisOptions        *redis.Options
	runtimeApiHost      string
	runtimeApiRateLimit int
	eventsTopic         string
	commandsTopic       string
	commandResultsTopic string
	metricsListen       string
	debug               bool
}

func loadConfig(envFilename string) (Config, error) {
	if envFilename != "" {
		err := godotenv.Load(envFilename)
		if err != nil {
			return Config{}, errors.New(fmt.Sprintf("Error loading %s file: %s", envFilename, err))
		}
	}

	kafkaTimeout, err := strconv.Atoi(os.Getenv("KAFKA_TIMEOUT"))
	if kafkaTimeout == 0 || err != nil {
		kafkaTimeout = 10
	}

	kafkaAttempts, err := strconv.Atoi(os.Getenv("KAFKA_ATTEMPTS"))
	if kafkaAttempts == 0 || err != nil {
		kafkaAttempts = 0
	}

	runtimeApiRateLimit, err := strconv.Atoi(os.Getenv("RUNTIME_API_RATE_LIMIT"))
	if runtimeApiRateLimit == 0 || err != nil {
		runtimeApiRateLimit = defaultRuntimeApiRateLimit
	}

	metricsListen, metricsListenIsSet := os.LookupEnv("METRICS_LISTEN")
	if !metricsListenIsSet {
		metricsListen = defaultMetricsListen
	}

	config := Config{
		appName:             getEnvOrDefault("APP_NAME", defaultAppName),
		kafkaHost:           os.Getenv("KAFKA_HOST"),
		kafkaTimeout:        time.Second * time.Duration(kafkaTimeout),
		kafkaAttempts:       kafkaAttempts,
		runtimeApiHost:      os.Getenv("RUNTIME_API_HOST"),
		runtimeApiRateLimit: runtimeApiRateLimit,
		eventsTopic:         getEnvOrDefault("EVENTS_TOPIC", "engine_events"),
		commandsTopic:       getEnvOrDefault("COMMANDS_TOPIC", "commands"),
		commandResultsTopic: getEnvOrDefault("COMMAND_RESULTS_TOPIC", "command_results"),
		metricsListen:       metricsListen,
		debug:               os.Getenv("DEBUG") == "1" || strings.ToLower(os.Getenv("DEBUG")) == "true",
	}

	if config.kafkaHost == "" {
		return Config{}, errors.New("empty KAFKA_HOST")
	}

	if config.runtimeApiHost == "" {
		return Config{}, errors.New("empty RUNTIME_API_HOST")
	}

	if os.Getenv("REDIS_DSN") == "" {
		return Config{}, errors.New("empty REDIS_DSN")
	}

	config.redisOptions, err = redis.ParseURL(os.Getenv("REDIS_DSN"))

	if err != nil {
		return Config{}, err
	}

	return config, nil
}

func getEnvOrDefault(name string, defaultValue string) string {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}

	return value
}
