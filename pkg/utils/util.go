package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSeed は環境変数などから受け取ったシード文字列を解釈します。
// 空文字の場合は nil（シード指定なし）を返します。
func ParseSeed(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q: %w", raw, err)
	}
	return &v, nil
}

// SeedToInt32 は SDK の GenerateContentConfig.Seed 用に *int32 へ変換します。
// 範囲外の値は上位ビットが切り捨てられますが、同じ入力からは常に同じ値になります。
func SeedToInt32(seed *int64) *int32 {
	if seed == nil {
		return nil
	}
	val := int32(*seed)
	return &val
}
