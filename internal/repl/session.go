// Package repl runs the interactive read-evaluate-print loop over a line-oriented input stream.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/ia-coding/internal/codegen"
)

const (
	bannerTitle            = "=== IA Coding - Code Generator ==="
	bannerSubtitle         = "Generate Rust code from natural language descriptions"
	bannerExitHint         = "Type 'quit' or 'exit' to leave"
	promptText             = "Enter your description (e.g., 'Create a for loop in Rust iterating from 0 to 10'): "
	farewellText           = "Goodbye!"
	generatedCodeHeader    = "--- Generated Code ---"
	generatedCodeFooter    = "--- End of Generated Code ---"
	errorOutputFormat      = "Error: %s\n\n"
	quitKeyword            = "quit"
	exitKeyword            = "exit"
	writeOutputErrorFormat = "write output: %w"
)

// GenerateFunc produces code for a trimmed, non-empty description.
type GenerateFunc func(description string) (string, error)

// InputError reports a failure of the underlying input stream.
// It terminates the session and is never raised for empty input or end of input.
type InputError struct {
	Err error
}

func (inputError *InputError) Error() string {
	return fmt.Sprintf("Failed to read input: %v", inputError.Err)
}

func (inputError *InputError) Unwrap() error {
	return inputError.Err
}

// Session drives the loop. Output receives the banner, prompts and generated code;
// ErrorOutput receives generation errors.
type Session struct {
	Input       io.Reader
	Output      io.Writer
	ErrorOutput io.Writer
	Generate    GenerateFunc
	Logger      *zap.Logger
}

// NewSession builds a session that answers descriptions with codegen.GenerateCode.
func NewSession(input io.Reader, output io.Writer, errorOutput io.Writer, logger *zap.Logger) Session {
	return Session{
		Input:       input,
		Output:      output,
		ErrorOutput: errorOutput,
		Generate:    codegen.GenerateCode,
		Logger:      logger,
	}
}

// Run prints the banner and processes lines until an exit keyword is read or the input ends.
// A read failure is returned as *InputError.
func (session Session) Run() error {
	logger := session.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	generate := session.Generate
	if generate == nil {
		generate = codegen.GenerateCode
	}

	if _, writeErr := fmt.Fprintf(session.Output, "%s\n%s\n%s\n\n", bannerTitle, bannerSubtitle, bannerExitHint); writeErr != nil {
		return fmt.Errorf(writeOutputErrorFormat, writeErr)
	}

	reader := bufio.NewReader(session.Input)
	for {
		if _, writeErr := io.WriteString(session.Output, promptText); writeErr != nil {
			return fmt.Errorf(writeOutputErrorFormat, writeErr)
		}

		line, readErr := reader.ReadString('\n')
		endOfInput := errors.Is(readErr, io.EOF)
		if readErr != nil && !endOfInput {
			return &InputError{Err: readErr}
		}

		description := strings.TrimSpace(line)
		switch {
		case description == "":
			if endOfInput {
				logger.Debug("input ended")
				return nil
			}
			continue
		case isExitKeyword(description):
			_, writeErr := fmt.Fprintln(session.Output, farewellText)
			if writeErr != nil {
				return fmt.Errorf(writeOutputErrorFormat, writeErr)
			}
			logger.Debug("exit keyword received", zap.String("keyword", description))
			return nil
		}

		if dispatchErr := session.dispatch(generate, logger, description); dispatchErr != nil {
			return dispatchErr
		}

		if endOfInput {
			logger.Debug("input ended")
			return nil
		}
	}
}

func (session Session) dispatch(generate GenerateFunc, logger *zap.Logger, description string) error {
	code, generateErr := generate(description)
	if generateErr != nil {
		logger.Debug("description rejected",
			zap.String("outcome", outcomeKind(generateErr)),
			zap.Int("description_length", len(description)),
		)
		_, writeErr := fmt.Fprintf(session.ErrorOutput, errorOutputFormat, generateErr)
		if writeErr != nil {
			return fmt.Errorf(writeOutputErrorFormat, writeErr)
		}
		return nil
	}

	logger.Debug("code generated", zap.Int("code_length", len(code)))
	_, writeErr := fmt.Fprintf(session.Output, "\n%s\n%s\n%s\n\n", generatedCodeHeader, code, generatedCodeFooter)
	if writeErr != nil {
		return fmt.Errorf(writeOutputErrorFormat, writeErr)
	}
	return nil
}

func isExitKeyword(description string) bool {
	return strings.EqualFold(description, quitKeyword) || strings.EqualFold(description, exitKeyword)
}

func outcomeKind(err error) string {
	switch {
	case errors.Is(err, codegen.ErrValidation):
		return "validation"
	case errors.Is(err, codegen.ErrBackendUnavailable):
		return "backend_unavailable"
	default:
		return "error"
	}
}
