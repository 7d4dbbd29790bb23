package dto

// GenerateLetterRequest 定义了生成家书接口的请求体。
// - 三个字段全部必填，控制器在调用上游前完成校验。
type GenerateLetterRequest struct {
	// ParentInput 是父母想说的原话，生成的家书必须保留其核心意思。
	ParentInput string `json:"parentInput"`

	// ParentRole 是写信人的身份（如 爸爸/妈妈）。
	ParentRole string `json:"parentRole"`

	// ChildName 是孩子的称呼，会作为信件的称谓。
	ChildName string `json:"childName"`
}

// ShareLetterRequest 定义了分享家书到展示墙的请求体。
type ShareLetterRequest struct {
	// Content 是家书正文，长度与敏感词校验在控制器边界完成。
	Content string `json:"content"`

	// ParentRole 是分享者署名身份。
	ParentRole string `json:"parentRole"`

	// ChildName 是孩子的称呼。
	ChildName string `json:"childName"`

	// IsAnonymous 为 true 时，署名与称呼会在落库时被替换为占位身份，不可恢复。
	IsAnonymous bool `json:"isAnonymous"`
}

// LikeLetterRequest 定义了点赞接口的请求体。
// SessionID 是客户端自发的不透明令牌，只用于点赞去重，不是身份凭证。
type LikeLetterRequest struct {
	LetterID  string `json:"letterId"`
	SessionID string `json:"sessionId"`
}

// FlagLetterRequest 定义了举报接口的请求体。
type FlagLetterRequest struct {
	LetterID string `json:"letterId"`
}

// WallQueryDTO 定义了展示墙列表接口的查询参数。
// - sort 只接受 recent / popular，默认 recent。
// - limit 限定在 [1,50]，默认 20；offset 非负，默认 0。
type WallQueryDTO struct {
	Sort   string `form:"sort,default=recent" binding:"oneof=recent popular"`
	Limit  int    `form:"limit,default=20" binding:"gte=1,lte=50"`
	Offset int    `form:"offset,default=0" binding:"gte=0"`
}
