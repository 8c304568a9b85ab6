package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/aicli/internal/domain"
)

// ShowLogsInput contains the parameters for showing the aicli log.
type ShowLogsInput struct {
	Lines int // Number of lines to display from the end (0 = all)
}

// ShowLogsOutput contains the result of showing the aicli log.
type ShowLogsOutput struct {
	LogPath string // Path to the log file
	Content string // Log file content
}

// ShowLogs is the use case for viewing the execution log.
type ShowLogs struct {
	logPath string
}

// NewShowLogs creates a new ShowLogs use case.
func NewShowLogs(logPath string) *ShowLogs {
	return &ShowLogs{logPath: logPath}
}

// Execute reads and returns the log content.
func (uc *ShowLogs) Execute(_ context.Context, in ShowLogsInput) (*ShowLogsOutput, error) {
	if uc.logPath == "" {
		return nil, domain.ErrNoLogFile
	}

	content, err := os.ReadFile(uc.logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", uc.logPath, domain.ErrNoLogFile)
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}

	// If lines is specified, get only the last N lines
	result := string(content)
	if in.Lines > 0 {
		lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
		if len(lines) > in.Lines {
			lines = lines[len(lines)-in.Lines:]
		}
		result = strings.Join(lines, "\n") + "\n"
	}

	return &ShowLogsOutput{
		LogPath: uc.logPath,
		Content: result,
	}, nil
}
