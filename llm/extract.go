package llm

// 上游供应商的响应结构存在兼容性漂移，这里把每种已知结构的取值路径
// 建模为一个纯函数，按固定优先级依次尝试，取第一个非空结果。
// 新增兼容结构时只需要往列表里追加一个函数。

// extractor 尝试从一个响应负载里取出文本，取不到时返回空串。
type extractor func(payload map[string]interface{}) string

// messageExtractors 覆盖阻塞式（整段返回）的已知响应结构，按优先级排列:
//  1. OpenAI 兼容: choices[0].message.content
//  2. data 包裹: data.choices[0].message.content
//  3. result 包裹: result.choices[0].message.content
//  4. 旧式补全: choices[0].text
//  5. 顶层 output_text
var messageExtractors = []extractor{
	choiceMessageContent,
	wrapped("data", choiceMessageContent),
	wrapped("result", choiceMessageContent),
	choiceText,
	topLevelOutputText,
}

// deltaExtractors 覆盖流式帧（增量返回）的已知结构，
// 前三个是 delta 的各种包裹变体，后两个兜底整段结构的漂移。
var deltaExtractors = []extractor{
	choiceDeltaContent,
	wrapped("data", choiceDeltaContent),
	wrapped("result", choiceDeltaContent),
	choiceMessageContent,
	choiceText,
}

// extractFirst 按顺序尝试各取值路径，返回第一个非空文本。
func extractFirst(extractors []extractor, payload map[string]interface{}) string {
	for _, extract := range extractors {
		if text := extract(payload); text != "" {
			return text
		}
	}
	return ""
}

// firstChoice 取 choices[0]，结构不符时返回 nil。
func firstChoice(payload map[string]interface{}) map[string]interface{} {
	choices, ok := payload["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return nil
	}
	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return nil
	}
	return choice
}

func choiceMessageContent(payload map[string]interface{}) string {
	choice := firstChoice(payload)
	if choice == nil {
		return ""
	}
	message, ok := choice["message"].(map[string]interface{})
	if !ok {
		return ""
	}
	content, _ := message["content"].(string)
	return content
}

func choiceDeltaContent(payload map[string]interface{}) string {
	choice := firstChoice(payload)
	if choice == nil {
		return ""
	}
	delta, ok := choice["delta"].(map[string]interface{})
	if !ok {
		return ""
	}
	content, _ := delta["content"].(string)
	return content
}

func choiceText(payload map[string]interface{}) string {
	choice := firstChoice(payload)
	if choice == nil {
		return ""
	}
	text, _ := choice["text"].(string)
	return text
}

func topLevelOutputText(payload map[string]interface{}) string {
	text, _ := payload["output_text"].(string)
	return text
}

// wrapped 把取值路径套进一层指定 Key 的包裹对象里。
func wrapped(key string, inner extractor) extractor {
	return func(payload map[string]interface{}) string {
		wrapper, ok := payload[key].(map[string]interface{})
		if !ok {
			return ""
		}
		return inner(wrapper)
	}
}
