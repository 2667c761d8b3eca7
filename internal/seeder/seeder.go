package seeder

import (
	"context"
	"fmt"
	"strconv"

	"playground-seed/internal/layout"
	"playground-seed/internal/models"
	"playground-seed/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	eventIDLength      = 4
	maxEventIDAttempts = 16
)

// Seeder 清空 store 并写入房间、元素、走廊、赞助商和活动
type Seeder struct {
	store          store.Store
	logger         *zap.Logger
	tileRoom       string
	organizerEmail string
	newID          func() string
}

// Option Seeder 可选配置
type Option func(*Seeder)

// WithTileRoom 指定铺设地砖网格的房间，空字符串表示不铺设
func WithTileRoom(roomID string) Option {
	return func(s *Seeder) { s.tileRoom = roomID }
}

// WithOrganizerEmail 写入 organizer_emails 集合
func WithOrganizerEmail(email string) Option {
	return func(s *Seeder) { s.organizerEmail = email }
}

// WithIDGenerator 替换元素 / 走廊 / 活动 ID 生成函数
func WithIDGenerator(fn func() string) Option {
	return func(s *Seeder) { s.newID = fn }
}

// NewSeeder 创建 Seeder，默认地砖房间为 home
func NewSeeder(st store.Store, logger *zap.Logger, opts ...Option) *Seeder {
	s := &Seeder{
		store:    st,
		logger:   logger,
		tileRoom: "home",
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result 一次写入的统计
type Result struct {
	Rooms    int
	Elements int
	Hallways int
	Sponsors int
	Events   int
}

// Seed 清空 store 后按文档顺序写入全部记录
// 中途失败时不回滚，重新执行即可恢复
func (s *Seeder) Seed(ctx context.Context, doc *layout.Document) (*Result, error) {
	if err := s.store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear store: %w", err)
	}

	res := &Result{}
	for i := range doc.Rooms {
		if err := s.seedRoom(ctx, &doc.Rooms[i], res); err != nil {
			return res, fmt.Errorf("room %s: %w", doc.Rooms[i].ID, err)
		}
	}

	for _, sponsor := range doc.Sponsors {
		if err := s.seedSponsor(ctx, sponsor); err != nil {
			return res, fmt.Errorf("sponsor %s: %w", sponsor.ID, err)
		}
		res.Sponsors++
	}

	usedEventIDs := make(map[string]bool, len(doc.Events))
	for i, event := range doc.Events {
		if err := s.seedEvent(ctx, event, usedEventIDs); err != nil {
			return res, fmt.Errorf("events[%d]: %w", i, err)
		}
		res.Events++
	}

	if s.organizerEmail != "" {
		if err := s.store.AddToSet(ctx, models.OrganizerEmailsKey, s.organizerEmail); err != nil {
			return res, fmt.Errorf("organizer email: %w", err)
		}
	}

	s.logger.Info("Seed completed",
		zap.Int("rooms", res.Rooms),
		zap.Int("elements", res.Elements),
		zap.Int("hallways", res.Hallways),
		zap.Int("sponsors", res.Sponsors),
		zap.Int("events", res.Events),
	)
	return res, nil
}

func (s *Seeder) seedRoom(ctx context.Context, room *models.Room, res *Result) error {
	if err := s.store.AddToSet(ctx, models.RoomsKey, room.ID); err != nil {
		return err
	}

	sponsor, err := StringifyValue(room.Sponsor)
	if err != nil {
		return fmt.Errorf("sponsor: %w", err)
	}
	if err := s.store.WriteHash(ctx, models.RoomKey(room.ID), map[string]string{
		"background": room.Background,
		"sponsor":    sponsor,
	}); err != nil {
		return err
	}
	res.Rooms++

	if room.HasElements() {
		elements := room.Elements
		if room.ID == s.tileRoom {
			elements = append(GenerateTiles(), elements...)
		}
		for i, attrs := range elements {
			id, err := s.writeRecord(ctx, models.ElementKey, ExpandPresets(attrs))
			if err != nil {
				return fmt.Errorf("elements[%d]: %w", i, err)
			}
			if err := s.store.AppendToList(ctx, models.RoomElementsKey(room.ID), id); err != nil {
				return fmt.Errorf("elements[%d]: %w", i, err)
			}
			res.Elements++
		}
	}

	if room.HasHallways() {
		for i, attrs := range room.Hallways {
			id, err := s.writeRecord(ctx, models.HallwayKey, attrs)
			if err != nil {
				return fmt.Errorf("hallways[%d]: %w", i, err)
			}
			if err := s.store.AddToSet(ctx, models.RoomHallwaysKey(room.ID), id); err != nil {
				return fmt.Errorf("hallways[%d]: %w", i, err)
			}
			res.Hallways++
		}
	}

	s.logger.Debug("Room seeded",
		zap.String("room_id", room.ID),
		zap.Int("elements", len(room.Elements)),
		zap.Int("hallways", len(room.Hallways)),
	)
	return nil
}

// writeRecord 生成 ID 并写入 hash，返回 ID
func (s *Seeder) writeRecord(ctx context.Context, key func(string) string, attrs models.Attributes) (string, error) {
	fields, err := Stringify(attrs)
	if err != nil {
		return "", err
	}
	id := s.newID()
	if err := s.store.WriteHash(ctx, key(id), fields); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Seeder) seedSponsor(ctx context.Context, sponsor models.Sponsor) error {
	if len(sponsor.Fields) > 0 {
		fields, err := Stringify(sponsor.Fields)
		if err != nil {
			return err
		}
		if err := s.store.WriteHash(ctx, models.SponsorKey(sponsor.ID), fields); err != nil {
			return err
		}
	}
	return s.store.AddToSet(ctx, models.SponsorsKey, sponsor.ID)
}

// seedEvent 活动 ID 取 UUID 前 4 位，同一次写入内重复时重新生成
func (s *Seeder) seedEvent(ctx context.Context, event models.Event, used map[string]bool) error {
	fields, err := Stringify(event.Fields)
	if err != nil {
		return err
	}
	fields["startTime"] = strconv.FormatInt(event.StartTime, 10)

	var id string
	for attempt := 0; ; attempt++ {
		if attempt == maxEventIDAttempts {
			return fmt.Errorf("no unused event id after %d attempts", attempt)
		}
		id = s.newID()
		if len(id) > eventIDLength {
			id = id[:eventIDLength]
		}
		if !used[id] {
			break
		}
	}
	used[id] = true

	if err := s.store.WriteHash(ctx, models.EventKey(id), fields); err != nil {
		return err
	}
	return s.store.AddToSet(ctx, models.EventsKey, id)
}
