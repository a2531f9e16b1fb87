package kafka

import (
	"Ladder/internal/api/config"
	"Ladder/internal/service"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	githubConsumer sarama.ConsumerGroup
	githubHandler  sarama.ConsumerGroupHandler

	linkedinConsumer sarama.ConsumerGroup
	linkedinHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg *config.Config, activitySvc service.ActivityService) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	githubConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaGithubConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	githubHandler := NewGithubHandler(activitySvc)

	linkedinConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaLinkedinConsumer.GroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	linkedinHandler := NewLinkedinHandler(activitySvc)

	return &ConsumerManager{
		githubConsumer:   githubConsumer,
		githubHandler:    githubHandler,
		linkedinConsumer: linkedinConsumer,
		linkedinHandler:  linkedinHandler,
	}, nil
}

// Start 启动所有消费者，阻塞到 ctx 取消
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaGithubConsumer.Topic
		log.Info("Github consumer started", "topic", topic)
		for {
			if err := m.githubConsumer.Consume(ctx, []string{topic}, m.githubHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	go func() {
		topic := cfg.KafkaLinkedinConsumer.Topic
		log.Info("Linkedin consumer started", "topic", topic)
		for {
			if err := m.linkedinConsumer.Consume(ctx, []string{topic}, m.linkedinHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.githubConsumer.Close(); err != nil {
		log.Error("Failed to close github consumer", "err", err)
	}
	if err := m.linkedinConsumer.Close(); err != nil {
		log.Error("Failed to close linkedin consumer", "err", err)
	}

	return nil
}
