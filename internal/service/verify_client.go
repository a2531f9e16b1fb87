package service

import (
	"Ladder/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// VerifyRequest 外部核验服务的请求体
type VerifyRequest struct {
	TaskKey     string `json:"taskKey"`
	UserID      uint64 `json:"userId"`
	EvidenceURL string `json:"evidenceUrl,omitempty"`
	Note        string `json:"note,omitempty"`
}

type verifyResponse struct {
	Verified bool   `json:"verified"`
	Reason   string `json:"reason"`
}

type VerifyClient interface {
	VerifySubmission(ctx context.Context, req *VerifyRequest) (bool, string, error)
}

type verifyClientImpl struct {
	client *resty.Client
}

func NewVerifyClient() VerifyClient {
	cfg := config.Cfg.Verify
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetHeader("Authorization", "Bearer "+cfg.Token)
	return &verifyClientImpl{client: client}
}

// VerifySubmission 调外部服务核验证据，未配置地址时直接放行走人工复核
func (c *verifyClientImpl) VerifySubmission(ctx context.Context, req *VerifyRequest) (bool, string, error) {
	if config.Cfg.Verify.URL == "" {
		return true, "", nil
	}

	var result verifyResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/v1/verify")
	if err != nil {
		return false, "", errors.Wrap(err, "核验服务请求失败")
	}
	if resp.IsError() {
		log.WarnContext(ctx, "核验服务返回异常", "status", resp.StatusCode(), "task_key", req.TaskKey)
		return false, "", errors.Errorf("核验服务返回 %d", resp.StatusCode())
	}
	return result.Verified, result.Reason, nil
}
