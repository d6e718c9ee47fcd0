package prompt

import "github.com/sashabaranov/go-openai/jsonschema"

// GetSystemPrompt frames the assistant's role and tone.
func GetSystemPrompt() string {
	return `你是一位温柔又负责的学习监督助理，通过摄像头画面判断学生当前的学习状态。语气要亲切、简短，多一点鼓励，少一点说教。`
}

// GetUserPrompt describes the three mutually exclusive outcomes with
// example phrasings. It is sent together with the frame on every call.
func GetUserPrompt() string {
	return `请观察这张学习监控画面，判断画面中学生的状态，只能是以下三种之一：
- FOCUSED：正在专注学习（看书、写字、盯着屏幕学习等），message 例如“很棒，继续保持！”
- DISTRACTED：人在画面里但没有专注学习（玩手机、发呆、吃东西等），message 例如“别走神啦，快回到学习上来~”
- ABSENT：画面中没有人，message 例如“人去哪儿了？快回来继续学习！”
message 必须是中文，confidence 是 0 到 1 之间你对这次判断的把握。`
}

// ResponseSchema is sent as a generation constraint so the model
// returns exactly {status, message, confidence} and nothing else.
func ResponseSchema() jsonschema.Definition {
	return jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"status": {
				Type:        jsonschema.String,
				Enum:        []string{"FOCUSED", "DISTRACTED", "ABSENT"},
				Description: "学生状态分类",
			},
			"message": {
				Type:        jsonschema.String,
				Description: "给学生的中文提示语",
			},
			"confidence": {
				Type:        jsonschema.Number,
				Description: "判断把握，0 到 1",
			},
		},
		Required:             []string{"status", "message", "confidence"},
		AdditionalProperties: false,
	}
}
