package services

import (
	"context"
	"staffdesk-http-service/internal/infrastructure/config"
	"time"

	"github.com/go-redis/redis/v8"
)

// InterfaceRedisService 定义Redis会话服务接口
type InterfaceRedisService interface {
	Ping() error
	BlacklistToken(token string, ttl time.Duration) error
	IsTokenBlacklisted(token string) bool
}

// RedisService 维护已注销令牌的黑名单。Redis不可用时服务降级：
// 注销仍然清除Cookie，只是令牌在剩余有效期内无法被提前作废
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Ping 测试Redis连接
func (s *RedisService) Ping() error {
	ctx, cancel := context.WithTimeout(s.Ctx, 5*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}

// BlacklistToken 将令牌加入黑名单，保留其剩余有效期
func (s *RedisService) BlacklistToken(token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.Client.Set(s.Ctx, "session_blacklist:"+token, "1", ttl).Err()
}

// IsTokenBlacklisted 检查令牌是否已被注销。Redis出错时按未注销处理
func (s *RedisService) IsTokenBlacklisted(token string) bool {
	n, err := s.Client.Exists(s.Ctx, "session_blacklist:"+token).Result()
	if err != nil {
		return false
	}
	return n > 0
}
