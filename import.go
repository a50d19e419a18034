package ramfat

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rusted-os/ramfat/checkpoint"
	"github.com/spf13/afero"
)

// Import copies the *.TXT files of dir on src into the store. Files whose base
// name does not fit into 8 bytes and sub directories are skipped.
// It returns the number of imported files. Errors of single files are joined,
// the import continues with the next file.
func Import(store *Store, src afero.Fs, dir string) (int, error) {
	var (
		imported int
		errs     []error
	)

	err := afero.Walk(src, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != dir {
				return filepath.SkipDir
			}
			return nil
		}

		base := info.Name()
		ext := filepath.Ext(base)
		if !strings.EqualFold(ext, ".txt") {
			return nil
		}
		base = strings.TrimSuffix(base, ext)
		if base == "" || len(base) > len(Name{}) {
			store.log.Debug("import skipped", slog.String("path", path))
			return nil
		}

		data, err := afero.ReadFile(src, path)
		if err != nil {
			errs = append(errs, checkpoint.From(err))
			return nil
		}

		if err := store.Save(ParseName(base), data); err != nil {
			errs = append(errs, checkpoint.Errorf("import %s: %w", path, err))
			if !errors.Is(err, ErrOverrun) || store.strict {
				return nil
			}
		}

		imported++
		store.log.Info("imported", slog.String("path", path), slog.Int("size", len(data)))
		return nil
	})
	if err != nil {
		errs = append(errs, checkpoint.From(err))
	}

	return imported, errors.Join(errs...)
}
