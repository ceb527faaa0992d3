package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// StepRef 模型输出的来源步骤, 可能是数字也可能是字符串, 无法识别时为 0
type StepRef int

func (s *StepRef) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		if v, err := n.Int64(); err == nil {
			*s = StepRef(v)
			return nil
		}
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
			*s = StepRef(v)
			return nil
		}
	}
	*s = 0
	return nil
}
