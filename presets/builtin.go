package presets

// Builtin returns the presets compiled into the package. The returned map
// is freshly allocated; callers may modify it.
func Builtin() map[string]*Preset {
	list := []*Preset{
		{
			ID:         "anthropic",
			Name:       "Anthropic",
			WebsiteURL: "https://www.anthropic.com",
			APIKeyURL:  "https://console.anthropic.com/settings/keys",
			Category:   CategoryOfficial,
			Official:   true,
			// No env overrides: the CLI talks to Anthropic by default.
		},
		{
			ID:          "deepseek",
			Name:        "DeepSeek",
			WebsiteURL:  "https://www.deepseek.com",
			APIKeyURL:   "https://platform.deepseek.com/api_keys",
			Category:    CategoryCNOfficial,
			APIKeyField: "ANTHROPIC_AUTH_TOKEN",
			Env: map[string]string{
				"ANTHROPIC_BASE_URL": "https://api.deepseek.com/anthropic",
			},
			Models: map[string]string{
				"default": "deepseek-chat",
				"sonnet":  "deepseek-chat",
				"opus":    "deepseek-reasoner",
				"haiku":   "deepseek-chat",
			},
		},
		{
			ID:          "kimi",
			Name:        "Kimi (Moonshot AI)",
			WebsiteURL:  "https://www.moonshot.ai",
			APIKeyURL:   "https://platform.moonshot.ai/console/api-keys",
			Category:    CategoryCNOfficial,
			APIKeyField: "ANTHROPIC_AUTH_TOKEN",
			Env: map[string]string{
				"ANTHROPIC_BASE_URL": "https://api.moonshot.ai/anthropic",
			},
			Models: map[string]string{
				"default": "kimi-k2-turbo-preview",
				"sonnet":  "kimi-k2-turbo-preview",
				"opus":    "kimi-k2-thinking",
				"haiku":   "kimi-k2-turbo-preview",
			},
			EndpointCandidates: []string{
				"https://api.moonshot.ai/anthropic",
				"https://api.moonshot.cn/anthropic",
			},
		},
		{
			ID:          "glm",
			Name:        "GLM (Z.AI)",
			WebsiteURL:  "https://z.ai",
			APIKeyURL:   "https://z.ai/manage-apikey/apikey-list",
			Category:    CategoryCNOfficial,
			APIKeyField: "ANTHROPIC_AUTH_TOKEN",
			Env: map[string]string{
				"ANTHROPIC_BASE_URL": "https://api.z.ai/api/anthropic",
			},
			Models: map[string]string{
				"default": "glm-4.6",
				"sonnet":  "glm-4.6",
				"haiku":   "glm-4.5-air",
			},
		},
		{
			ID:          "openrouter",
			Name:        "OpenRouter",
			WebsiteURL:  "https://openrouter.ai",
			APIKeyURL:   "https://openrouter.ai/settings/keys",
			Category:    CategoryAggregator,
			APIKeyField: "OPENROUTER_API_KEY",
			Env: map[string]string{
				"ANTHROPIC_BASE_URL":   "https://openrouter.ai/api",
				"ANTHROPIC_AUTH_TOKEN": "${OPENROUTER_API_KEY}",
			},
		},
	}

	out := make(map[string]*Preset, len(list))
	for _, p := range list {
		out[p.ID] = p
	}
	return out
}
