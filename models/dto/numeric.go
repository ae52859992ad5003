package dto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NumericString 接收 JSON 字符串或数字形式的数值。
// 表单提交的价格、面积、坐标都是字符串，而接口调用方常直接传数字，两者统一为文本，
// 留给校验阶段判断是否为空，之后再转换为数值。
type NumericString string

func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = NumericString(num.String())
	return nil
}

// IsBlank 去掉首尾空白后是否为空
func (n NumericString) IsBlank() bool {
	return strings.TrimSpace(string(n)) == ""
}
