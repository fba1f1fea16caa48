package ai

import (
	"github.com/zhouzirui/expert-chat/backend/internal/model/persona"
)

const defaultSystemPrompt = "あなたは役に立つアシスタントです。"

// PromptManager maps persona labels to their fixed system prompts.
type PromptManager struct {
	prompts map[persona.Label]string
}

// NewPromptManager creates a prompt manager with the built-in persona prompts.
func NewPromptManager() *PromptManager {
	return &PromptManager{
		prompts: map[persona.Label]string{
			persona.VeteranEngineer:  "あなたは経験豊富なベテランエンジニアです。技術的な用語を適切に使い、簡潔かつ論理的に回答してください。語尾は「だ・である」調で話してください。",
			persona.FriendlyTeacher:  "あなたは幼稚園の先生をしている優しいうさぎです。難しい言葉は使わず、絵文字を使いながらとても優しく教えてください。語尾は「〜だぴょん」や「〜だよ」としてください。",
			persona.GenericAssistant: defaultSystemPrompt,
		},
	}
}

// SystemPrompt returns the system prompt for label. Unknown or empty labels
// get the generic assistant prompt.
func (pm *PromptManager) SystemPrompt(label string) string {
	if prompt, ok := pm.prompts[persona.Label(label)]; ok {
		return prompt
	}
	return defaultSystemPrompt
}
