package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/devsession/internal/config"
	"github.com/aretw0/devsession/internal/logging"
	"github.com/aretw0/devsession/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by RunGet.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// CreateLogger configures the application logger.
// It writes to Stderr (to separate diagnostics from command output on Stdout).
func CreateLogger(level, format string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if format == config.LogFormatJSON {
		return logging.NewJSON(os.Stderr, lvl), nil
	}
	return logging.New(lvl), nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func writeEntry(w io.Writer, entry domain.Entry, format string) error {
	switch format {
	case "", FormatJSON:
		data, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		// Decode JSON descriptors so yaml renders documents, not byte lists.
		sessions := make([]any, 0, entry.Len())
		for _, s := range entry.Sessions {
			var v any
			if err := json.Unmarshal(s, &v); err != nil {
				v = string(s)
			}
			sessions = append(sessions, v)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any{"sessions": sessions}); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}
