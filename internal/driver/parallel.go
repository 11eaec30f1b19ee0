package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SourceExt is the portfolio source file extension.
const SourceExt = ".port"

// CompileDirResult содержит результат компиляции одного файла
type CompileDirResult struct {
	Path   string // относительный путь к файлу
	Result *CompileResult
	Cached bool // диагностики восстановлены из кеша, без перекомпиляции
}

// ListSourceFiles возвращает отсортированный список всех *.port файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %q: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}

// CompileDir компилирует все *.port файлы в директории параллельно.
// Каждому файлу — собственная четвёрка Bag+Lexer+Parser+Validator, между
// компиляциями нет разделяемого состояния, поэтому никакой синхронизации
// внутри pipeline не нужно. cache может быть nil.
func CompileDir(ctx context.Context, dir string, maxDiagnostics int, cache *DiskCache) ([]CompileDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}

	results := make([]CompileDirResult, len(files))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range files {
		g.Go(func() error {
			if cache != nil {
				if res, ok := cache.Lookup(path, maxDiagnostics); ok {
					results[i] = CompileDirResult{Path: path, Result: res, Cached: true}
					return nil
				}
			}
			res, err := CompileFile(path, maxDiagnostics)
			if err != nil {
				return fmt.Errorf("failed to compile %q: %w", path, err)
			}
			if cache != nil {
				// Ошибка записи кеша не портит результат компиляции.
				_ = cache.Store(path, res)
			}
			results[i] = CompileDirResult{Path: path, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
