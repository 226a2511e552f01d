// Package codegen turns natural-language descriptions into code.
//
// No generation backend is wired yet: every description that passes
// validation is answered with a BackendUnavailableError.
package codegen

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MinDescriptionLength is the minimum number of characters (runes) a description must have.
const MinDescriptionLength = 5

const (
	// DefaultModelsDirectory is the directory the setup instructions point at.
	DefaultModelsDirectory = "models"
	// DefaultGuide is the document the setup instructions refer to.
	DefaultGuide = "README.md"

	emptyDescriptionMessage       = "Description cannot be empty"
	shortDescriptionMessageFormat = "Description is too short. Please provide a more detailed description (at least %d characters)."
	backendUnavailableHeader      = "Model not configured. To enable code generation:"
	backendUnavailableStepFormat  = "%d. %s"
	requestEchoFormat             = "Your request: '%s'"
)

// Generator validates descriptions and produces code for them.
// The zero value uses DefaultModelsDirectory and DefaultGuide.
type Generator struct {
	ModelsDirectory string
	Guide           string
}

// NewGenerator builds a generator whose setup instructions name the given directory and guide.
func NewGenerator(modelsDirectory string, guide string) Generator {
	return Generator{ModelsDirectory: modelsDirectory, Guide: guide}
}

// GenerateCode runs the default generator.
func GenerateCode(description string) (string, error) {
	return Generator{}.Generate(description)
}

// Validate checks that a description is non-empty and long enough.
func Validate(description string) error {
	if description == "" {
		return &ValidationError{Message: emptyDescriptionMessage}
	}
	if utf8.RuneCountInString(description) < MinDescriptionLength {
		return &ValidationError{Message: fmt.Sprintf(shortDescriptionMessageFormat, MinDescriptionLength)}
	}
	return nil
}

// Generate validates the description and returns generated code.
// It performs no I/O.
func (generator Generator) Generate(description string) (string, error) {
	if validationErr := Validate(description); validationErr != nil {
		return "", validationErr
	}
	return "", generator.backendUnavailable(description)
}

func (generator Generator) backendUnavailable(description string) *BackendUnavailableError {
	modelsDirectory := strings.TrimSpace(generator.ModelsDirectory)
	if modelsDirectory == "" {
		modelsDirectory = DefaultModelsDirectory
	}
	guide := strings.TrimSpace(generator.Guide)
	if guide == "" {
		guide = DefaultGuide
	}

	setupSteps := []string{
		"Download a GGUF model file (e.g., from Hugging Face)",
		fmt.Sprintf("Place it in a '%s' directory in the project root", modelsDirectory),
		"Update the code generator to load and use the model",
		fmt.Sprintf("See %s for detailed instructions", guide),
	}

	var builder strings.Builder
	builder.WriteString(backendUnavailableHeader)
	builder.WriteString("\n")
	for stepIndex, step := range setupSteps {
		builder.WriteString(fmt.Sprintf(backendUnavailableStepFormat, stepIndex+1, step))
		builder.WriteString("\n")
	}
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf(requestEchoFormat, description))

	return &BackendUnavailableError{Message: builder.String(), Request: description}
}
