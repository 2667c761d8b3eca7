package models

// Attributes 元素 / 走廊 / 赞助商 / 活动的自由属性（键为字符串，值为任意 JSON 标量或复合值）
type Attributes map[string]any

// Clone 浅拷贝，展开预设时不修改原始文档
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Has 判断属性是否存在（不关心值）
func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Room 房间描述
// Elements / Hallways 为 nil 表示文档中没有该字段，空切片表示字段存在但为空
type Room struct {
	ID         string
	Background string
	Sponsor    any
	Elements   []Attributes
	Hallways   []Attributes
}

// HasElements 文档中是否带有 elements 字段
func (r *Room) HasElements() bool {
	return r.Elements != nil
}

// HasHallways 文档中是否带有 hallways 字段
func (r *Room) HasHallways() bool {
	return r.Hallways != nil
}

// Sponsor 赞助商描述（id 之外的字段原样写入）
type Sponsor struct {
	ID     string
	Fields Attributes
}

// Event 活动描述
type Event struct {
	StartTime int64 // Unix 秒
	Fields    Attributes
}
