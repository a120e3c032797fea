package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/minitrello/internal/cli/styles"
)

// Humanizer is implemented by results with a human-readable rendering
type Humanizer interface {
	Human() (string, error)
}

// Raw is written verbatim in every output mode
type Raw []byte

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to os.Stdout and os.Stderr
	Out    io.Writer
	ErrOut io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if raw, ok := data.(Raw); ok {
		_, err := f.out().Write(raw)
		return err
	}

	if f.Quiet {
		switch v := data.(type) {
		case interface{ GetIDs() []string }:
			for _, id := range v.GetIDs() {
				fmt.Fprintln(f.out(), id)
			}
			return nil
		case interface{ GetID() string }:
			fmt.Fprintln(f.out(), v.GetID())
			return nil
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "%s %s\n", styles.ErrorStyle.Render("❌ Error:"), message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "%s %s\n", styles.WarningStyle.Render("💡 Suggestion:"), suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if data == nil {
		return nil
	}
	if h, ok := data.(Humanizer); ok {
		text, err := h.Human()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(f.out(), text)
		return err
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
