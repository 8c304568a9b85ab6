package usecase

import (
	"context"

	"github.com/runoshun/aicli/internal/domain"
)

// ShowConfigTemplateInput contains the input for the ShowConfigTemplate use case.
type ShowConfigTemplateInput struct{}

// ShowConfigTemplateOutput contains the output of the ShowConfigTemplate use case.
type ShowConfigTemplateOutput struct {
	Template string // Configuration template content
}

// ShowConfigTemplate renders the default configuration template.
type ShowConfigTemplate struct{}

// NewShowConfigTemplate creates a new ShowConfigTemplate use case.
func NewShowConfigTemplate() *ShowConfigTemplate {
	return &ShowConfigTemplate{}
}

// Execute generates and returns a configuration template.
func (uc *ShowConfigTemplate) Execute(_ context.Context, _ ShowConfigTemplateInput) (*ShowConfigTemplateOutput, error) {
	return &ShowConfigTemplateOutput{
		Template: domain.RenderConfigTemplate(domain.NewDefaultConfig()),
	}, nil
}
