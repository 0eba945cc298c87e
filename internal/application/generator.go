package application

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"localstrings/internal/config"
	"localstrings/internal/domain"
	"localstrings/internal/domain/entities"
	"localstrings/internal/ports/input"
	"localstrings/internal/ports/output"
)

// Ensure Generator implements the input.GenerateUseCase port.
var _ input.GenerateUseCase = (*Generator)(nil)

type Generator struct {
	enumName  string
	targetDir string
	fileName  string
	renderer  output.SourceRenderer
	writer    output.FileWriter
	logger    *zap.Logger
}

func NewGenerator(
	cfg *config.Config,
	renderer output.SourceRenderer,
	writer output.FileWriter,
	logger *zap.Logger,
) *Generator {
	return &Generator{
		enumName:  cfg.EnumName,
		targetDir: cfg.TargetDir,
		fileName:  cfg.GeneratedFileName(),
		renderer:  renderer,
		writer:    writer,
		logger:    logger,
	}
}

// Generate renders every entry as an accessor and replaces the enum file in
// the target directory.
func (g *Generator) Generate(ctx context.Context, entries output.EntryReader) (string, error) {
	decls, err := Declarations(entries)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(g.targetDir, g.fileName)
	if err := g.writer.Write(path, g.renderer.Render(g.enumName, decls)); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrOutputUnwritable, err)
	}
	g.logger.Info("✅ accessors generated", zap.String("path", path), zap.Int("declarations", len(decls)))
	return path, nil
}

// Declarations turns entries into accessors sorted by (key, hasArguments), one
// per distinct pair. Two pairs that derive the same identifier are rejected
// with a *domain.CollisionError.
func Declarations(entries output.EntryReader) ([]entities.Declaration, error) {
	seen := make(map[entities.Declaration]struct{})
	var decls []entities.Declaration
	for e, err := range entries.Entries() {
		if err != nil {
			return nil, err
		}
		d := entities.Declaration{
			Name:         domain.Identifier(e.Key),
			Key:          e.Key,
			HasArguments: e.HasArguments,
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		decls = append(decls, d)
	}
	slices.SortFunc(decls, entities.CompareDeclarations)

	byName := make(map[string]entities.Declaration, len(decls))
	for _, d := range decls {
		if prev, ok := byName[d.Name]; ok {
			return nil, &domain.CollisionError{Identifier: d.Name, First: prev, Second: d}
		}
		byName[d.Name] = d
	}
	return decls, nil
}
