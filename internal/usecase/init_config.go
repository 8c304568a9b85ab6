package usecase

import (
	"context"

	"github.com/runoshun/aicli/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
type InitConfigInput struct {
	Global bool // If true, initialize global config; otherwise project config
	Force  bool // Overwrite an existing file
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig generates a configuration file from the default template.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute creates a configuration file with default template.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	content := domain.RenderConfigTemplate(domain.NewDefaultConfig())

	var info domain.ConfigInfo
	var err error
	if in.Global {
		info = uc.configManager.GetGlobalConfigInfo()
		err = uc.configManager.InitGlobalConfig(content, in.Force)
	} else {
		info = uc.configManager.GetProjectConfigInfo()
		err = uc.configManager.InitProjectConfig(content, in.Force)
	}
	if err != nil {
		return nil, err
	}

	return &InitConfigOutput{Path: info.Path}, nil
}
