package kafka

import (
	"errors"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// GrowthEvent 外部平台同步服务推送的累计值事件
// total 是该用户在平台侧的当前累计读数，不是增量
type GrowthEvent struct {
	UserID      uint64    `json:"user_id"`
	ActivityKey string    `json:"activity_key"`
	Total       int       `json:"total"`
	ObservedAt  time.Time `json:"observed_at"`
	Source      string    `json:"source"`
}

// ToGrowthEvent 解析并校验事件，来源不符直接丢弃
func ToGrowthEvent(msg *sarama.ConsumerMessage, source string) (*GrowthEvent, error) {
	var event GrowthEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("unmarshal growth event error", "err", err)
		return nil, err
	}
	if event.Source != source {
		return nil, errors.New("event source not match")
	}
	if event.UserID == 0 || event.ActivityKey == "" {
		return nil, errors.New("growth event missing user or activity")
	}
	if event.ObservedAt.IsZero() {
		event.ObservedAt = time.Now()
	}
	return &event, nil
}
