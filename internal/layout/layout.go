package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"playground-seed/internal/models"

	"go.uber.org/zap"
)

// ErrInvalidDocument 文档结构或必需字段不合法
var ErrInvalidDocument = errors.New("invalid layout document")

// EventTimeLayout 活动 start_time 的时间格式
const EventTimeLayout = "2006-01-02T15:04:05-0700"

// Document 一次写入所需的全部数据，加载时已完成校验
type Document struct {
	Rooms    []models.Room
	Sponsors []models.Sponsor
	Events   []models.Event
}

// Paths 各文档路径；Sponsors / Events 为空或文件不存在时跳过
type Paths struct {
	Rooms    string
	Sponsors string
	Events   string
}

// Load 读取并校验全部文档。任何错误都在写入 store 之前返回
func Load(paths Paths, logger *zap.Logger) (*Document, error) {
	data, err := os.ReadFile(paths.Rooms)
	if err != nil {
		return nil, fmt.Errorf("read rooms file: %w", err)
	}
	rooms, err := ParseRooms(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", paths.Rooms, err)
	}

	doc := &Document{Rooms: rooms}

	if data, ok, err := readOptional(paths.Sponsors, logger); err != nil {
		return nil, fmt.Errorf("read sponsors file: %w", err)
	} else if ok {
		if doc.Sponsors, err = ParseSponsors(data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", paths.Sponsors, err)
		}
	}

	if data, ok, err := readOptional(paths.Events, logger); err != nil {
		return nil, fmt.Errorf("read events file: %w", err)
	} else if ok {
		if doc.Events, err = ParseEvents(data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", paths.Events, err)
		}
	}

	logger.Info("Layout loaded",
		zap.Int("rooms", len(doc.Rooms)),
		zap.Int("sponsors", len(doc.Sponsors)),
		zap.Int("events", len(doc.Events)),
	)
	return doc, nil
}

func readOptional(path string, logger *zap.Logger) ([]byte, bool, error) {
	if path == "" {
		return nil, false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("Optional layout file not found, skipping", zap.String("path", path))
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// ParseRooms 解析房间列表，保持文档顺序
func ParseRooms(data []byte) ([]models.Room, error) {
	records, err := decodeList(data)
	if err != nil {
		return nil, err
	}

	rooms := make([]models.Room, 0, len(records))
	seen := make(map[string]bool, len(records))
	for i, rec := range records {
		where := fmt.Sprintf("rooms[%d]", i)

		id, err := requireString(rec, "id", where)
		if err != nil {
			return nil, err
		}
		where = fmt.Sprintf("rooms[%d] (%s)", i, id)
		if seen[id] {
			return nil, fmt.Errorf("%w: %s: duplicate room id", ErrInvalidDocument, where)
		}
		seen[id] = true

		background, err := requireString(rec, "background", where)
		if err != nil {
			return nil, err
		}

		sponsor, ok := rec["sponsor"]
		if !ok || sponsor == nil {
			return nil, fmt.Errorf("%w: %s: missing %q", ErrInvalidDocument, where, "sponsor")
		}
		if !isScalar(sponsor) {
			return nil, fmt.Errorf("%w: %s: %q must be a scalar", ErrInvalidDocument, where, "sponsor")
		}

		room := models.Room{ID: id, Background: background, Sponsor: sponsor}
		if room.Elements, err = attributeList(rec, "elements", where, "x", "y"); err != nil {
			return nil, err
		}
		if room.Hallways, err = attributeList(rec, "hallways", where, "x", "y"); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// ParseSponsors 解析赞助商列表，id 必需
func ParseSponsors(data []byte) ([]models.Sponsor, error) {
	records, err := decodeList(data)
	if err != nil {
		return nil, err
	}

	sponsors := make([]models.Sponsor, 0, len(records))
	for i, rec := range records {
		id, err := requireString(rec, "id", fmt.Sprintf("sponsors[%d]", i))
		if err != nil {
			return nil, err
		}
		fields := models.Attributes(rec).Clone()
		delete(fields, "id")
		sponsors = append(sponsors, models.Sponsor{ID: id, Fields: fields})
	}
	return sponsors, nil
}

// ParseEvents 解析活动列表，start_time 必需且符合 EventTimeLayout
func ParseEvents(data []byte) ([]models.Event, error) {
	records, err := decodeList(data)
	if err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(records))
	for i, rec := range records {
		where := fmt.Sprintf("events[%d]", i)
		raw, err := requireString(rec, "start_time", where)
		if err != nil {
			return nil, err
		}
		start, err := time.Parse(EventTimeLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: start_time: %v", ErrInvalidDocument, where, err)
		}
		events = append(events, models.Event{StartTime: start.Unix(), Fields: models.Attributes(rec)})
	}
	return events, nil
}

// decodeList 数字保留为 json.Number，写入时使用文档中的原始文本
func decodeList(data []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level must be a list", ErrInvalidDocument)
	}

	out := make([]map[string]any, 0, len(list))
	for i, item := range list {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d must be an object", ErrInvalidDocument, i)
		}
		out = append(out, rec)
	}
	return out, nil
}

func requireString(rec map[string]any, field, where string) (string, error) {
	v, ok := rec[field]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %s: missing %q", ErrInvalidDocument, where, field)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s: %q must be a string", ErrInvalidDocument, where, field)
	}
	if s == "" {
		return "", fmt.Errorf("%w: %s: %q is empty", ErrInvalidDocument, where, field)
	}
	return s, nil
}

// attributeList 字段不存在时返回 nil；存在时必须是对象列表，每项带齐 required 字段
func attributeList(rec map[string]any, field, where string, required ...string) ([]models.Attributes, error) {
	v, ok := rec[field]
	if !ok {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %q must be a list", ErrInvalidDocument, where, field)
	}

	out := make([]models.Attributes, 0, len(list))
	for i, item := range list {
		attrs, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s: %s[%d] must be an object", ErrInvalidDocument, where, field, i)
		}
		for _, key := range required {
			if _, ok := attrs[key]; !ok {
				return nil, fmt.Errorf("%w: %s: %s[%d]: missing %q", ErrInvalidDocument, where, field, i, key)
			}
		}
		out = append(out, models.Attributes(attrs))
	}
	return out, nil
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool, json.Number, float64:
		return true
	default:
		return false
	}
}
