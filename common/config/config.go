package config

import (
	"fmt"
	"os"
	"strconv"
)

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoadFromEnv 从环境变量加载 Redis 配置（未设置的字段保持原值）
// 例如 prefix="REDIS" 时读取 REDIS_ADDR / REDIS_PASSWORD / REDIS_DB
func (c *RedisConfig) LoadFromEnv(prefix string) error {
	if addr := os.Getenv(prefix + "_ADDR"); addr != "" {
		c.Addr = addr
	}
	if password := os.Getenv(prefix + "_PASSWORD"); password != "" {
		c.Password = password
	}
	if db := os.Getenv(prefix + "_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid %s_DB %q", prefix, db)
		}
		c.DB = n
	}
	return nil
}

// String 返回不含密码的描述，用于日志
func (c RedisConfig) String() string {
	return fmt.Sprintf("%s/%d", c.Addr, c.DB)
}
