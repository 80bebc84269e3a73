package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"docsign/internal/completion"
)

// ErrJobTitleRequired indicates the generation request carried no job title.
var ErrJobTitleRequired = errors.New("job title is required")

const jobDescriptionSystem = "You are a helpful assistant."

// GenerationService proxies prompt-based text generation to the external
// completion collaborator.
type GenerationService interface {
	// GenerateJobDescription produces a job description for the given role
	// title. Collaborator failures propagate as completion.ErrDependency or
	// completion.ErrTimeout; they are never retried here.
	GenerateJobDescription(ctx context.Context, jobTitle string) (string, error)
}

type generationService struct {
	completer completion.Completer
}

// NewGenerationService constructs the generation service.
func NewGenerationService(completer completion.Completer) GenerationService {
	return &generationService{completer: completer}
}

func (s *generationService) GenerateJobDescription(ctx context.Context, jobTitle string) (string, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		return "", ErrJobTitleRequired
	}

	prompt := fmt.Sprintf(
		"Generate a detailed job description for a role titled %q. It should include key responsibilities, required skills, and other relevant details for the role.",
		jobTitle,
	)

	text, err := s.completer.Complete(ctx, jobDescriptionSystem, prompt)
	if err != nil {
		return "", err
	}
	return text, nil
}
