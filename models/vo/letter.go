package vo

import "github.com/Xushengqwer/letter_service/models/entities"

// GenerateLetterVO 定义了生成家书接口的响应数据结构。
type GenerateLetterVO struct {
	Letter string `json:"letter"` // 生成的完整家书文本
}

// ShareLetterVO 定义了分享接口的响应数据结构。
type ShareLetterVO struct {
	Letter    *entities.SharedLetter `json:"letter"`    // 落库后的完整记录
	Remaining int                    `json:"remaining"` // 当前窗口内剩余可分享次数
}

// LikeLetterVO 定义了点赞接口的响应数据结构。
// Success 为 false 且 AlreadyLiked 为 true 表示该会话此前已点过赞，本次未发生任何变更。
type LikeLetterVO struct {
	Success      bool   `json:"success"`
	Likes        int64  `json:"likes"` // 返回时的最新点赞数
	AlreadyLiked bool   `json:"alreadyLiked"`
	Message      string `json:"message,omitempty"`
}

// WallVO 定义了展示墙列表接口的响应数据结构。
// HasMore 用"本页返回条数等于 limit"近似，满足无限滚动场景，不保证精确总数。
type WallVO struct {
	Letters []*entities.SharedLetter `json:"letters"`
	Sort    string                   `json:"sort"`
	HasMore bool                     `json:"hasMore"`
}

// FlagLetterVO 定义了举报接口的响应数据结构。
type FlagLetterVO struct {
	FlagCount int64 `json:"flagCount"` // 当前举报计数
}
