// ABOUTME: Maps generation failures to the fixed user-facing messages shown in chat.
// ABOUTME: Configuration errors are shown verbatim since they name the missing credential.
package textgen

import (
	"errors"

	"github.com/2389-research/vabot/llm"
)

// User-facing failure messages.
const (
	MsgRateLimited    = "混雑中です。少し待ってから再実行してください。"
	MsgTimeout        = "タイムアウトしました。もう一度試してください。"
	MsgInvalidRequest = "入力が長すぎるか不正です。短くして試してください。"
	MsgService        = "APIエラーが発生しました。時間をおいて再試行してください。"
)

// Describe returns the message to show a user for err.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	switch llm.Classify(err) {
	case llm.KindConfiguration:
		var cfg *llm.ConfigurationError
		if errors.As(err, &cfg) {
			return cfg.Message
		}
		return err.Error()
	case llm.KindRateLimited:
		return MsgRateLimited
	case llm.KindTimeout:
		return MsgTimeout
	case llm.KindInvalidRequest:
		return MsgInvalidRequest
	default:
		return MsgService
	}
}
