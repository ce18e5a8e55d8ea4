package llmprovider

// Provider names accepted in llm.providers[].name.
const (
	ProviderQwen     = "qwen"
	ProviderAlibaba  = "alibaba"
	ProviderDeepSeek = "deepseek"
	ProviderGemini   = "gemini"
	ProviderOpenAI   = "openai"
)

const (
	roleUser = "user"
)
