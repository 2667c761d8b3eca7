package seeder

import (
	"encoding/json"
	"fmt"
	"strconv"

	"playground-seed/internal/models"
)

// Stringify 将属性全部转为文本，元素、走廊、赞助商、活动统一使用
func Stringify(attrs models.Attributes) (map[string]string, error) {
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		s, err := StringifyValue(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", k, err)
		}
		out[k] = s
	}
	return out, nil
}

// StringifyValue 单个值的文本形式
//   - json.Number 保留文档中的原始写法（0.374 -> "0.374"）
//   - float64 使用最短可往返表示
//   - bool 写为 "True" / "False"，null 写为 "None"
//   - 列表 / 对象写为紧凑 JSON
func StringifyValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "None", nil
	case string:
		return val, nil
	case json.Number:
		return val.String(), nil
	case bool:
		if val {
			return "True", nil
		}
		return "False", nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
