package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// 通知类型
	NotifyTypePointsAwarded  int8 = 1 // 积分到账
	NotifyTypePointsDeducted int8 = 2 // 积分扣减
	NotifyTypeBadgeAwarded   int8 = 3 // 获得徽章
	NotifyTypeTaskVerified   int8 = 4 // 任务核验通过
	NotifyTypeTaskRejected   int8 = 5 // 任务被驳回
)

// NotificationModel 站内通知模型
type NotificationModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverID uint64             `bson:"receiver_id" json:"receiverId"` // 消息接收者ID
	Type       int8               `bson:"type" json:"type"`
	TargetID   uint64             `bson:"target_id" json:"targetId"` // 关联目标ID（活动/徽章/提交）
	Content    string             `bson:"content" json:"content"`
	Payload    map[string]any     `bson:"payload" json:"payload"`
	IsRead     bool               `bson:"is_read" json:"isRead"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
