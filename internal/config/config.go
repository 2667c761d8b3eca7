package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	commoncfg "playground-seed/common/config"

	"github.com/joho/godotenv"
)

// Config playground-seed 配置
type Config struct {
	Redis commoncfg.RedisConfig

	Layout struct {
		RoomsFile    string // 房间布局文件（必需）
		SponsorsFile string // 赞助商文件（可选，不存在则跳过）
		EventsFile   string // 活动文件（可选，不存在则跳过）
	}

	Seed struct {
		TileRoom       string // 铺设地砖网格的房间 ID
		OrganizerEmail string // 写入 organizer_emails 集合（可选）
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load 加载配置：先读取可选的 .env 文件，再从环境变量加载
func Load(envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	cfg := &Config{}

	cfg.Redis.Addr = "localhost:6379"
	if err := cfg.Redis.LoadFromEnv("REDIS"); err != nil {
		return nil, err
	}

	cfg.Layout.RoomsFile = getEnv("LAYOUT_ROOMS_FILE", "config/rooms.json")
	cfg.Layout.SponsorsFile = getEnv("LAYOUT_SPONSORS_FILE", "config/sponsors.json")
	cfg.Layout.EventsFile = getEnv("LAYOUT_EVENTS_FILE", "config/events.json")

	cfg.Seed.TileRoom = getEnv("TILE_ROOM", "home")
	cfg.Seed.OrganizerEmail = getEnv("ORGANIZER_EMAIL", "")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

// loadDotEnv 不覆盖已存在的环境变量；默认文件 .env 不存在时忽略
func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env files %v: %w", files, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
