package conversation

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Script is the fixed onboarding sequence shared by every session.
type Script struct {
	Questions []string `yaml:"questions"`
	Options   []string `yaml:"options"`
}

func DefaultScript() Script {
	return Script{
		Questions: []string{
			"Please introduce yourself with basic background information such as where you are based, language, education.",
			"To gain further understanding, can you please describe your educational experience?",
			"What are your aspirations and higher education goals (e.g., want to study abroad or at elite universities)?",
			"Please describe if there are any financial constraints?",
		},
		Options: []string{
			"Would you like a detailed roadmap to achieve your career goals considering your academics, financial status, and study locations?",
			"Do you want personalized career guidance based on your academic performance, financial status, and desired study locations?",
			"Do you need other specific guidance like scholarship opportunities, study programs, or financial planning?",
			"Other",
		},
	}
}

// LoadScript reads a YAML script file. An empty path yields DefaultScript.
func LoadScript(path string) (Script, error) {
	if path == "" {
		return DefaultScript(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script file: %w", err)
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parse script file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

func (s Script) Validate() error {
	if len(s.Questions) == 0 {
		return fmt.Errorf("script has no questions")
	}
	if len(s.Options) == 0 {
		return fmt.Errorf("script has no options")
	}
	for i, q := range s.Questions {
		if strings.TrimSpace(q) == "" {
			return fmt.Errorf("question %d is empty", i+1)
		}
	}
	for i, o := range s.Options {
		if strings.TrimSpace(o) == "" {
			return fmt.Errorf("option %d is empty", i+1)
		}
	}
	return nil
}

// First returns the opening question.
func (s Script) First() string {
	return s.Questions[0]
}
