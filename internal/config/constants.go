// internal/config/constants.go
package config

import "time"

const (
	AppName    = "ai-linguo"
	AppVersion = "0.4.0"
)

const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultAppReviewLimit = 10
	DefaultMaxReviewLimit = 100
	DefaultHistoryLimit   = 20
	DefaultLevel          = "A1"
	DefaultAuthEnabled    = true
	DefaultTokenTTL       = 7 * 24 * time.Hour
)

const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "gpt-4o-mini"
)
