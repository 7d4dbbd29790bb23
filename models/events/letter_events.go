package events

import "time"

// LetterEventData 是事件中携带的家书核心数据。
// 只包含审核侧需要的字段，不包含点赞等易变状态。
type LetterEventData struct {
	LetterID    string `json:"letter_id"`
	Content     string `json:"content"`
	ParentRole  string `json:"parent_role"`
	ChildName   string `json:"child_name"`
	IsAnonymous bool   `json:"is_anonymous"`
	Timestamp   int64  `json:"timestamp"` // 分享时间，毫秒
}

// LetterSharedEvent 在家书成功落库后发布，供外部审核服务消费。
// 发布是尽力而为的：失败只记日志，不回滚存储写入。
type LetterSharedEvent struct {
	EventID   string          `json:"event_id"`
	Timestamp time.Time       `json:"timestamp"`
	Letter    LetterEventData `json:"letter"`
}

// LetterFlaggedEvent 在家书被举报后发布。
// 举报在本服务内只做标注，处置由外部消费方决定。
type LetterFlaggedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	LetterID  string    `json:"letter_id"`
}
