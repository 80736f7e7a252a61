package types

// TaskType is the coarse category assigned to a user goal. The set is
// closed: anything unrecognized coerces to TaskGeneral.
type TaskType string

const (
	TaskEmail       TaskType = "email"
	TaskEssay       TaskType = "essay"
	TaskAd          TaskType = "ad"
	TaskSocial      TaskType = "social"
	TaskScript      TaskType = "script"
	TaskImage       TaskType = "image"
	TaskCode        TaskType = "code"
	TaskResearch    TaskType = "research"
	TaskProductCopy TaskType = "product_copy"
	TaskGeneral     TaskType = "general"
)

// ParseTaskType coerces an arbitrary string into a known TaskType.
func ParseTaskType(s string) TaskType {
	switch TaskType(s) {
	case TaskEmail, TaskEssay, TaskAd, TaskSocial, TaskScript,
		TaskImage, TaskCode, TaskResearch, TaskProductCopy, TaskGeneral:
		return TaskType(s)
	case "other": // legacy clients send "other" for the catch-all bucket
		return TaskGeneral
	default:
		return TaskGeneral
	}
}

// --- Stage request/response bodies ---

// GenerateRequest is the one-shot entry point: a raw goal in, a finished
// prompt plus follow-up questions out, without the staged wizard flow.
type GenerateRequest struct {
	Goal string `json:"goal" binding:"required"`
}

type GenerateResponse struct {
	Prompt    string   `json:"prompt"`
	TaskType  TaskType `json:"taskType"`
	Language  string   `json:"language"`
	Questions []string `json:"questions"`
}

type QuestionsRequest struct {
	Goal string `json:"goal" binding:"required"`
}

type QuestionsResponse struct {
	TaskType  TaskType `json:"taskType"`
	Language  string   `json:"language"`
	Questions []string `json:"questions"`
}

type EnhanceRequest struct {
	Goal      string   `json:"goal" binding:"required"`
	Questions []string `json:"questions"`
	Answers   []string `json:"answers"`
	TaskType  string   `json:"taskType"`
	Language  string   `json:"language"`
}

type EnhanceResponse struct {
	Prompt   string   `json:"prompt"`
	TaskType TaskType `json:"taskType"`
	Language string   `json:"language"`
}

type VariationsRequest struct {
	Prompt   string `json:"prompt"`
	Goal     string `json:"goal"`
	TaskType string `json:"taskType"`
	Language string `json:"language"`
	Count    int    `json:"count"`
}

type VariationsResponse struct {
	Variants []string `json:"variants"`
	Language string   `json:"language"`
}

type TestDriveRequest struct {
	Prompt   string `json:"prompt" binding:"required"`
	TaskType string `json:"taskType"`
}

type TestDriveResponse struct {
	Sample string `json:"sample"`
	Note   string `json:"note,omitempty"`
}
