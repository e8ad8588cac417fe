package codefile

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/SummerStorm/jurigged/internal/core/domain"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// index parses source and returns its top-level definitions in source order,
// plus a digest of each definition's text span keyed by name. The digests let
// a refresh tell moved-but-identical definitions apart from edited ones.
func index(path, source string) ([]domain.Definition, map[string]uint64, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, source, parser.SkipObjectResolution)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to parse source"), "path", path)
	}

	lines := strings.Split(source, "\n")
	var defs []domain.Definition
	spans := make(map[string]uint64)

	record := func(kind domain.DefinitionKind, name string, start, end token.Pos) {
		d := domain.Definition{
			Kind:      kind,
			Name:      name,
			Path:      path,
			StartLine: fset.Position(start).Line,
			EndLine:   fset.Position(end).Line,
		}
		defs = append(defs, d)
		spans[name] = spanDigest(lines, d.StartLine, d.EndLine)
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			kind := domain.KindFunction
			if d.Recv != nil {
				kind = domain.KindMethod
			}
			record(kind, declName(d), d.Pos(), d.End())
		case *ast.GenDecl:
			switch d.Tok {
			case token.TYPE:
				for _, s := range d.Specs {
					ts, ok := s.(*ast.TypeSpec)
					if !ok {
						continue
					}
					record(domain.KindType, ts.Name.Name, ts.Pos(), ts.End())
				}
			case token.VAR, token.CONST:
				for _, s := range d.Specs {
					vs, ok := s.(*ast.ValueSpec)
					if !ok || len(vs.Names) == 0 {
						continue
					}
					record(domain.KindValue, vs.Names[0].Name, vs.Pos(), vs.End())
				}
			}
		}
	}

	return defs, spans, nil
}

// spanDigest hashes the text of lines [start, end], 1-based inclusive.
func spanDigest(lines []string, start, end int) uint64 {
	h := xxhash.New()
	for i := start - 1; i < end && i < len(lines); i++ {
		if i < 0 {
			continue
		}
		_, _ = h.WriteString(lines[i])
		_, _ = h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

func declName(fd *ast.FuncDecl) string {
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return fd.Name.Name
	}
	return "(" + receiverName(fd.Recv.List[0].Type) + ")." + fd.Name.Name
}

func receiverName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + receiverName(t.X)
	case *ast.IndexExpr:
		return receiverName(t.X)
	case *ast.IndexListExpr:
		return receiverName(t.X)
	default:
		return ""
	}
}
