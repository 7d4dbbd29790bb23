package moderation

import (
	"strings"
	"unicode/utf8"

	"github.com/Xushengqwer/letter_service/myErrors"
)

// 家书正文的长度边界，按字符（码点）计，不按字节。
// 中文正文按字节计会把边界放大三倍，这里必须用 RuneCount。
const (
	MinContentRunes = 10
	MaxContentRunes = 1000
)

// Denylist 是外部提供的敏感内容判定谓词。
// 返回 true 表示文本含有不允许的内容。具体词库由部署方维护，核心不关心其实现。
type Denylist func(text string) bool

// SubstringDenylist 用一组词构造大小写不敏感的子串匹配谓词。
// 这是 Denylist 的参考实现，词库本身由调用方提供。
func SubstringDenylist(words []string) Denylist {
	lowered := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			lowered = append(lowered, strings.ToLower(w))
		}
	}
	return func(text string) bool {
		lowerText := strings.ToLower(text)
		for _, w := range lowered {
			if strings.Contains(lowerText, w) {
				return true
			}
		}
		return false
	}
}

// ContentGate 校验待分享的家书正文。
// 无副作用：结果只取决于输入文本与注入的谓词。
type ContentGate struct {
	denied Denylist
}

// NewContentGate 构造内容校验闸。denied 为 nil 时跳过敏感词检查。
func NewContentGate(denied Denylist) *ContentGate {
	return &ContentGate{denied: denied}
}

// Validate 校验正文，返回 nil 表示通过。
// 失败时返回 myErrors 中的校验哨兵错误，调用方据此生成面向用户的提示。
// 校验顺序: 去除首尾空白 -> 空内容 -> 过短 -> 过长 -> 敏感词。
func (g *ContentGate) Validate(content string) error {
	trimmed := strings.TrimSpace(content)

	length := utf8.RuneCountInString(trimmed)
	if length == 0 {
		return myErrors.ErrEmptyContent
	}
	if length < MinContentRunes {
		return myErrors.ErrContentTooShort
	}
	if length > MaxContentRunes {
		return myErrors.ErrContentTooLong
	}

	if g.denied != nil && g.denied(trimmed) {
		return myErrors.ErrDisallowedContent
	}
	return nil
}
