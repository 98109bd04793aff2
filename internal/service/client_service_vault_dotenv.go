package service

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
)

// ImportDotenv parses a .env stream and upserts every variable into the
// environment. Later duplicates win. It returns the number of variables
// written; on error the variables written so far are kept.
func (v *clientVaultService) ImportDotenv(ctx context.Context, environmentID string, r io.Reader, secret bool) (int, error) {
	log := logger.FromContext(ctx)

	if _, err := v.environments.GetEnvironment(ctx, environmentID); err != nil {
		return 0, err
	}

	vars, err := godotenv.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("%w: parse dotenv: %w", ErrInvalidDataProvided, err)
	}

	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	imported := 0
	for _, key := range keys {
		if _, err = v.SetVariable(ctx, environmentID, key, vars[key], secret); err != nil {
			log.Err(err).Str("func", "*clientVaultService.ImportDotenv").Str("key", key).Msg("error importing variable")
			return imported, fmt.Errorf("import %s: %w", key, err)
		}
		imported++
	}

	return imported, nil
}

// ExportDotenv writes the decrypted environment as sorted KEY="value" lines.
func (v *clientVaultService) ExportDotenv(ctx context.Context, environmentID string, w io.Writer) error {
	records, err := v.ListRecords(ctx, environmentID)
	if err != nil {
		return err
	}

	vars := make(map[string]string, len(records))
	for _, r := range records {
		vars[r.Key] = r.Value
	}

	content, err := godotenv.Marshal(vars)
	if err != nil {
		return fmt.Errorf("marshal dotenv: %w", err)
	}
	if content != "" {
		content += "\n"
	}

	_, err = io.WriteString(w, content)
	return err
}
