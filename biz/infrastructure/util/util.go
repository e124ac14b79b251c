package util

import (
	"encoding/json"
	"homework-show/biz/application/dto/basic"
)

// JSONF 序列化为字符串，仅用于日志
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func Succeed(msg string) (*basic.Response, error) {
	return &basic.Response{
		Code: 0,
		Msg:  msg,
	}, nil
}
