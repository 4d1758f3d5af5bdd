package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go-hrms/internal/config"
	"go-hrms/internal/events"
	"go-hrms/internal/lookuptype"
	"go-hrms/internal/messaging/kafka/consumer"
	"go-hrms/internal/notification"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/counter"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer turns request and employee lifecycle events into mail.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	gormDB, sqlDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// Type names are read through the same cached resolver as the API.
	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.DB.MaxRetries)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	lookupTypes := lookuptype.NewService(sqlDB, lookuptype.NewRepository(gormDB), counter.NewRepository(gormDB), redisClient, logger)
	mailer := notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		User:     cfg.Mail.User,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	}, logger)
	notifier := notification.NewService(notification.NewContactRepository(gormDB), lookupTypes, mailer, logger)

	requestReader := newReader(cfg, events.RequestLifecycleTopic)
	defer requestReader.Close()
	employeeReader := newReader(cfg, events.EmployeeCreatedTopic)
	defer employeeReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.ConsumeRequestLifecycle(ctx, requestReader, notifier, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumeEmployeeLifecycle(ctx, employeeReader, notifier, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("consumer shutting down")
	cancel()
	wg.Wait()

	return nil
}

func newReader(cfg *config.Config, topic string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          topic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}
