package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"recruit-backend/internal/bootstrap"
	"recruit-backend/internal/queue"
	"recruit-backend/internal/shared/config"
	"recruit-backend/internal/shared/telemetry"
)

const (
	defaultRegion             = "us-east-1"
	defaultVisibilitySeconds  = 600
	defaultWorkerConcurrency  = 4
	defaultShutdownTimeoutSec = 30
	messageTimeout            = 3 * time.Minute
)

func main() {
	cfg := config.Load()

	queueURL := strings.TrimSpace(os.Getenv("MATCH_SQS_QUEUE_URL"))
	if queueURL == "" {
		log.Fatal("MATCH_SQS_QUEUE_URL is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	visibilitySeconds := envInt("MATCH_SQS_VISIBILITY_TIMEOUT_SECONDS", defaultVisibilitySeconds)
	concurrency := envInt("MATCH_WORKER_CONCURRENCY", defaultWorkerConcurrency)
	shutdownTimeout := time.Duration(envInt("MATCH_SHUTDOWN_TIMEOUT_SECONDS", defaultShutdownTimeoutSec)) * time.Second

	region := strings.TrimSpace(os.Getenv("AWS_REGION"))
	if region == "" {
		region = defaultRegion
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("load aws config: %v", err)
	}
	var sqsClient sqsAPI = sqs.NewFromConfig(awsCfg)

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap build: %v", err)
	}

	sem := make(chan struct{}, max(1, concurrency))
	var wg sync.WaitGroup

	log.Printf("worker started queue=%s concurrency=%d visibility=%ds", queueURL, concurrency, visibilitySeconds)

pollLoop:
	for {
		select {
		case <-ctx.Done():
			break pollLoop
		default:
		}

		resp, err := sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(queueURL),
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     20,
			VisibilityTimeout:   int32(visibilitySeconds),
			AttributeNames:      []sqstypes.QueueAttributeName{sqstypes.QueueAttributeName("ApproximateReceiveCount")},
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				break pollLoop
			}
			log.Printf("receive message: %v", err)
			continue
		}

		for _, msg := range resp.Messages {
			select {
			case <-ctx.Done():
				break pollLoop
			case sem <- struct{}{}:
			}
			wg.Add(1)
			go func(m sqstypes.Message) {
				defer wg.Done()
				defer func() { <-sem }()
				handleMessage(ctx, app, sqsClient, queueURL, m)
			}(msg)
		}
	}

	log.Printf("shutdown requested, waiting up to %s for in-flight jobs", shutdownTimeout)
	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()
	select {
	case <-waitDone:
	case <-time.After(shutdownTimeout):
		log.Printf("shutdown timeout reached; exiting with in-flight jobs")
	}
}

type sqsAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// handleMessage processes one queued match analysis. Malformed messages are
// deleted so they stop redelivering; processing failures leave the message
// for the visibility timeout to redeliver.
func handleMessage(ctx context.Context, app *bootstrap.App, client sqsAPI, queueURL string, msg sqstypes.Message) {
	body := aws.ToString(msg.Body)
	if strings.TrimSpace(body) == "" {
		telemetry.Error("worker.match.empty_body", baseFields(msg, "", ""))
		deleteMessage(ctx, client, queueURL, msg, "", "")
		return
	}

	decoded, err := queue.DecodeMessage([]byte(body))
	if err != nil {
		fields := baseFields(msg, "", "")
		fields["error"] = err.Error()
		telemetry.Error("worker.match.decode_failed", fields)
		deleteMessage(ctx, client, queueURL, msg, "", "")
		return
	}
	if strings.TrimSpace(decoded.MatchScoreID) == "" {
		telemetry.Error("worker.match.missing_id", baseFields(msg, "", decoded.RequestID))
		deleteMessage(ctx, client, queueURL, msg, "", decoded.RequestID)
		return
	}

	telemetry.Info("worker.match.received", baseFields(msg, decoded.MatchScoreID, decoded.RequestID))

	procCtx, cancel := context.WithTimeout(ctx, messageTimeout)
	defer cancel()
	if err := app.MatchingService.Process(procCtx, decoded.MatchScoreID, decoded.RequestID); err != nil {
		fields := baseFields(msg, decoded.MatchScoreID, decoded.RequestID)
		fields["error"] = err.Error()
		telemetry.Error("worker.match.failed", fields)
		return
	}

	if deleteMessage(ctx, client, queueURL, msg, decoded.MatchScoreID, decoded.RequestID) {
		telemetry.Info("worker.match.completed", baseFields(msg, decoded.MatchScoreID, decoded.RequestID))
	}
}

func deleteMessage(ctx context.Context, client sqsAPI, queueURL string, msg sqstypes.Message, matchID, requestID string) bool {
	receipt := aws.ToString(msg.ReceiptHandle)
	if receipt == "" {
		fields := baseFields(msg, matchID, requestID)
		fields["error"] = "missing receipt handle"
		telemetry.Error("worker.match.delete_failed", fields)
		return false
	}
	if _, err := client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: aws.String(receipt),
	}); err != nil {
		fields := baseFields(msg, matchID, requestID)
		fields["error"] = err.Error()
		telemetry.Error("worker.match.delete_failed", fields)
		return false
	}
	return true
}

func baseFields(msg sqstypes.Message, matchID, requestID string) map[string]any {
	fields := map[string]any{
		"match_id":       matchID,
		"sqs_message_id": aws.ToString(msg.MessageId),
		"receive_count":  receiveCount(msg),
	}
	if strings.TrimSpace(requestID) != "" {
		fields["request_id"] = requestID
	}
	return fields
}

func receiveCount(msg sqstypes.Message) int {
	if msg.Attributes == nil {
		return 0
	}
	raw := msg.Attributes["ApproximateReceiveCount"]
	if raw == "" {
		return 0
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return parsed
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return val
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
