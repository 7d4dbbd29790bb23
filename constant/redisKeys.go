package constant

import "fmt"

// Redis Key 相关常量 (导出)
const (
	// RecentLettersKey 是"最新家书"索引的 Key 名称。
	// 这是一个 Sorted Set (ZSet)，成员是家书 ID，分数是分享时间戳（毫秒）。
	// 展示墙按时间倒序分页读取该 ZSet。
	// Redis 类型: Sorted Set
	// 示例成员与分数: Member="0b4e…", Score=1735689600000
	RecentLettersKey = "letters:recent"

	// PopularLettersKey 是"热门家书"索引的 Key 名称。
	// 这是一个 Sorted Set (ZSet)，成员是家书 ID，分数是当前点赞数。
	// 分享时以分数 0 写入，每次点赞成功后将分数重置为最新点赞数。
	// Redis 类型: Sorted Set
	PopularLettersKey = "letters:popular"

	// FlaggedLettersKey 是被举报家书集合的 Key 名称。
	// 举报只做标注，不会将家书移出任何索引。
	// Redis 类型: Set
	FlaggedLettersKey = "letters:flagged"

	// LetterKeyPrefix 是单封家书详情 Hash 的 Key 前缀。
	// 示例 Key: "letter:0b4e…"
	// Redis 类型: Hash
	// 字段: id, content, parent_role, child_name, timestamp, likes, is_anonymous
	LetterKeyPrefix = "letter:"

	// LetterLikersKeySuffix 是单封家书点赞会话集合的 Key 后缀。
	// 示例 Key: "letter:0b4e…:likers"
	// 成员是客户端自发的会话 ID，用于点赞去重。
	// Redis 类型: Set
	LetterLikersKeySuffix = ":likers"
)

// LetterKey 返回指定家书详情 Hash 的完整 Key。
func LetterKey(letterID string) string {
	return fmt.Sprintf("%s%s", LetterKeyPrefix, letterID)
}

// LetterLikersKey 返回指定家书点赞会话集合的完整 Key。
func LetterLikersKey(letterID string) string {
	return fmt.Sprintf("%s%s%s", LetterKeyPrefix, letterID, LetterLikersKeySuffix)
}
