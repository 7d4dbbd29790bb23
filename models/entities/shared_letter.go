package entities

import (
	"fmt"
	"strconv"
)

// SharedLetter 是被分享到展示墙的家书实体。
// 生成但未分享的家书只存在于单次请求的生命周期里，不会落库。
type SharedLetter struct {
	ID          string `json:"id"`          // 分享时生成的不可变主键
	Content     string `json:"content"`     // 家书正文
	ParentRole  string `json:"parentRole"`  // 署名身份；匿名分享时为占位身份
	ChildName   string `json:"childName"`   // 孩子称呼；匿名分享时为占位称呼
	Timestamp   int64  `json:"timestamp"`   // 分享时间，毫秒时间戳，不可变
	Likes       int64  `json:"likes"`       // 点赞数，只能通过点赞操作单调递增
	IsAnonymous bool   `json:"isAnonymous"` // 是否匿名分享
}

// Hash 字段名，与 Redis 中 letter:{id} Hash 的存储布局一一对应。
const (
	FieldID          = "id"
	FieldContent     = "content"
	FieldParentRole  = "parent_role"
	FieldChildName   = "child_name"
	FieldTimestamp   = "timestamp"
	FieldLikes       = "likes"
	FieldIsAnonymous = "is_anonymous"
)

// ToHashFields 将实体展开为 HSet 可用的字段映射。
func (l *SharedLetter) ToHashFields() map[string]interface{} {
	return map[string]interface{}{
		FieldID:          l.ID,
		FieldContent:     l.Content,
		FieldParentRole:  l.ParentRole,
		FieldChildName:   l.ChildName,
		FieldTimestamp:   strconv.FormatInt(l.Timestamp, 10),
		FieldLikes:       strconv.FormatInt(l.Likes, 10),
		FieldIsAnonymous: strconv.FormatBool(l.IsAnonymous),
	}
}

// SharedLetterFromHash 从 HGetAll 的结果还原实体。
// - fields 为空映射表示 Key 不存在，返回 (nil, nil)，由调用方决定如何处理缺失。
// - 数值字段解析失败视为数据损坏，返回错误而不是带着脏数据继续。
func SharedLetterFromHash(fields map[string]string) (*SharedLetter, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	letter := &SharedLetter{
		ID:         fields[FieldID],
		Content:    fields[FieldContent],
		ParentRole: fields[FieldParentRole],
		ChildName:  fields[FieldChildName],
	}

	if raw, ok := fields[FieldTimestamp]; ok && raw != "" {
		ts, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("解析家书 timestamp 字段失败 (raw: %q): %w", raw, err)
		}
		letter.Timestamp = ts
	}

	if raw, ok := fields[FieldLikes]; ok && raw != "" {
		likes, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("解析家书 likes 字段失败 (raw: %q): %w", raw, err)
		}
		letter.Likes = likes
	}

	if raw, ok := fields[FieldIsAnonymous]; ok && raw != "" {
		anonymous, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("解析家书 is_anonymous 字段失败 (raw: %q): %w", raw, err)
		}
		letter.IsAnonymous = anonymous
	}

	return letter, nil
}
