package question

import (
	"fmt"
	"strings"

	"netquiz/internal/answer"
)

// Option count limits; letters A-D address the options.
const (
	MinOptions = 2
	MaxOptions = 4
)

// Issue captures a data-integrity problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeSpec trims whitespace, parses hex locations and validates a spec.
func NormalizeSpec(spec Spec) (Spec, error) {
	collector := &issueCollector{}
	if spec.Version == 0 {
		collector.add("version", "is required")
	} else if spec.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", spec.Version))
	}
	if len(spec.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[int]struct{}{}
	for i, question := range spec.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if question.ID <= 0 {
			collector.add(prefix+".id", "must be a positive integer")
		} else if _, exists := seenIDs[question.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %d", question.ID))
		} else {
			seenIDs[question.ID] = struct{}{}
		}

		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}
		question.Explanation = strings.TrimSpace(question.Explanation)

		question.Options = normalizeStringSlice(question.Options)
		validateOptions(collector, prefix, question.Options)

		question.Answer = strings.TrimSpace(question.Answer)
		if question.Answer == "" {
			collector.add(prefix+".answer", "is required")
		} else if !containsFold(question.Options, question.Answer) {
			collector.add(prefix+".answer", fmt.Sprintf("%q is not one of the options", question.Answer))
		}

		question.HexLocation = strings.TrimSpace(question.HexLocation)
		question.location = nil
		if question.HexLocation != "" {
			location, err := ParseLocation(question.HexLocation)
			if err != nil {
				collector.add(prefix+".hex_location", err.Error())
			} else {
				question.location = &location
			}
			if question.Packet == nil {
				collector.add(prefix+".packet", "is required with hex_location")
			}
		}
		if question.Packet != nil && *question.Packet < 0 {
			collector.add(prefix+".packet", "must not be negative")
		}
		spec.Questions[i] = question
	}

	if err := collector.result(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

func validateOptions(collector *issueCollector, prefix string, options []string) {
	if len(options) < MinOptions || len(options) > MaxOptions {
		collector.add(prefix+".options", fmt.Sprintf("must include %d to %d entries, got %d", MinOptions, MaxOptions, len(options)))
	}
	seen := map[string]struct{}{}
	for optionIndex, option := range options {
		field := fmt.Sprintf("%s.options[%d]", prefix, optionIndex)
		if option == "" {
			collector.add(field, "is required")
			continue
		}
		key := answer.Normalize(option)
		if _, exists := seen[key]; exists {
			collector.add(field, fmt.Sprintf("duplicate option %q", option))
			continue
		}
		seen[key] = struct{}{}
	}
}

func containsFold(values []string, target string) bool {
	want := answer.Normalize(target)
	for _, value := range values {
		if answer.Normalize(value) == want {
			return true
		}
	}
	return false
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
