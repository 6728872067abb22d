// Package goreflect exposes named Go types as reflected classes,
// which lets Go packages be documented with the same elements as any other source.
package goreflect

import (
	"go/ast"
	"go/doc/comment"
	"go/token"
	"go/types"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/nieomylnieja/rstdoc/internal/pathutils"
)

// NewLoader loads the packages matching patterns, relative to dir.
// An empty dir means the root of the module containing the working directory,
// no patterns mean every package of the module.
func NewLoader(dir string, patterns ...string) (*Loader, error) {
	root, err := pathutils.FindModuleRoot(dir)
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = root
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", dir)
	}
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	// Load complete type information for the specified packages,
	// along with type-annotated syntax.
	conf := &packages.Config{
		Dir: dir,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedDeps |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(conf, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}
	if len(pkgs) == 0 {
		return nil, errors.Errorf("no packages match %s", strings.Join(patterns, " "))
	}
	if err = checkForPackageErrors(pkgs); err != nil {
		return nil, err
	}

	loader := &Loader{
		pkgs:  make(map[string]*goPackage, len(pkgs)),
		roots: slices.Clone(pkgs),
	}
	slices.SortFunc(loader.roots, func(a, b *packages.Package) int {
		return strings.Compare(a.PkgPath, b.PkgPath)
	})
	loader.collectAllPackages(pkgs)
	return loader, nil
}

// Loader is a reflection facility over loaded Go packages.
type Loader struct {
	pkgs  map[string]*goPackage
	roots []*packages.Package
}

type goPackage struct {
	pkg           *packages.Package
	commentParser *comment.Parser
	// docs maps identifier positions to their doc comments.
	docs map[token.Pos]*ast.CommentGroup
}

// findTypeDeclaration finds the ast.GenDecl and ast.TypeSpec for the given type declaration, specified by name.
func (l *Loader) findTypeDeclaration(pkg *goPackage, name string) (*ast.GenDecl, *ast.TypeSpec, error) {
	obj := pkg.pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return nil, nil, errors.Errorf("%s.%s not found", pkg.pkg.Types.Path(), name)
	}
	for _, file := range pkg.pkg.Syntax {
		pos := obj.Pos()
		if file.FileStart > pos || pos >= file.FileEnd {
			continue // not in this file
		}
		path, _ := astutil.PathEnclosingInterval(file, pos, pos)
		var spec *ast.TypeSpec
		for _, n := range path {
			switch n := n.(type) {
			case *ast.TypeSpec:
				spec = n
			case *ast.GenDecl:
				if spec != nil {
					return n, spec, nil
				}
			}
		}
	}
	return nil, nil, errors.Errorf("could not find %s.%s declaration", pkg.pkg.Name, name)
}

// typeDoc returns the doc comment of a package-level type.
// Types declared alone inherit the comment of their declaration.
func (l *Loader) typeDoc(obj *types.TypeName) (string, error) {
	pkg := l.getPackageByPath(obj.Pkg().Path())
	if pkg == nil {
		return "", errors.Errorf("could not find %s package for type %s", obj.Pkg().Path(), obj.Name())
	}
	decl, spec, err := l.findTypeDeclaration(pkg, obj.Name())
	if err != nil {
		return "", errors.Wrapf(err, "failed to find %s declaration in %s pkg", obj.Name(), obj.Pkg().Path())
	}
	doc := spec.Doc
	if doc == nil && len(decl.Specs) == 1 {
		doc = decl.Doc
	}
	return l.docCommentToText(pkg, doc), nil
}

// objectDoc returns the doc comment of a field, method or constant.
// Objects from packages which were not loaded have no documentation.
func (l *Loader) objectDoc(obj types.Object) string {
	if obj.Pkg() == nil {
		return ""
	}
	pkg := l.getPackageByPath(obj.Pkg().Path())
	if pkg == nil {
		return ""
	}
	return l.docCommentToText(pkg, pkg.docIndex()[obj.Pos()])
}

func (l *Loader) docCommentToText(pkg *goPackage, group *ast.CommentGroup) string {
	text := group.Text()
	if text == "" {
		return ""
	}
	if pkg.commentParser == nil {
		pkg.commentParser = l.newCommentParserForPackage(pkg.pkg)
	}
	// Wrapping is left to the renderer.
	printer := comment.Printer{TextWidth: -1}
	return string(printer.Text(pkg.commentParser.Parse(text)))
}

// docIndex lazily indexes the doc comments of every named field, method and value.
func (p *goPackage) docIndex() map[token.Pos]*ast.CommentGroup {
	if p.docs != nil {
		return p.docs
	}
	p.docs = make(map[token.Pos]*ast.CommentGroup)
	for _, file := range p.pkg.Syntax {
		ast.Inspect(file, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.GenDecl:
				for _, spec := range n.Specs {
					valueSpec, ok := spec.(*ast.ValueSpec)
					if !ok {
						continue
					}
					doc := firstCommentGroup(valueSpec.Doc, valueSpec.Comment)
					if doc == nil && len(n.Specs) == 1 {
						doc = n.Doc
					}
					for _, name := range valueSpec.Names {
						p.docs[name.Pos()] = doc
					}
				}
			case *ast.FuncDecl:
				p.docs[n.Name.Pos()] = n.Doc
			case *ast.Field:
				doc := firstCommentGroup(n.Doc, n.Comment)
				for _, name := range n.Names {
					p.docs[name.Pos()] = doc
				}
			}
			return true
		})
	}
	return p.docs
}

func firstCommentGroup(groups ...*ast.CommentGroup) *ast.CommentGroup {
	for _, group := range groups {
		if group != nil {
			return group
		}
	}
	return nil
}

func (l *Loader) newCommentParserForPackage(currentPackage *packages.Package) *comment.Parser {
	return &comment.Parser{
		LookupPackage: func(name string) (importPath string, ok bool) {
			for _, pkg := range l.pkgs {
				if pkg.pkg.Name == name {
					return pkg.pkg.PkgPath, true
				}
			}
			return "", false
		},
		LookupSym: func(recv, name string) (ok bool) {
			if recv == "" {
				return currentPackage.Types.Scope().Lookup(name) != nil
			}
			obj := currentPackage.Types.Scope().Lookup(recv)
			if obj == nil {
				return false
			}
			switch u := obj.Type().Underlying().(type) {
			case *types.Struct:
				for field := range u.Fields() {
					if field.Name() == name {
						return true
					}
				}
				return false
			default:
				return false
			}
		},
	}
}

func (l *Loader) getPackageByPath(pkgPath string) *goPackage {
	return l.pkgs[pkgPath]
}

// collectAllPackages recursively adds all packages and their imports to the loader's map.
func (l *Loader) collectAllPackages(pkgs []*packages.Package) {
	for _, pkg := range pkgs {
		if _, exists := l.pkgs[pkg.PkgPath]; exists {
			continue
		}
		l.pkgs[pkg.PkgPath] = &goPackage{pkg: pkg}
		if len(pkg.Imports) > 0 {
			l.collectAllPackages(slices.Collect(maps.Values(pkg.Imports)))
		}
	}
}

func checkForPackageErrors(pkgs []*packages.Package) (err error) {
	packages.Visit(pkgs, func(pkg *packages.Package) bool {
		for _, err = range pkg.Errors {
			err = errors.Wrapf(err, "package %s has reported an error", pkg.PkgPath)
			return false
		}
		mod := pkg.Module
		if mod != nil && mod.Error != nil {
			err = errors.New(mod.Error.Err)
			return false
		}
		return true
	}, nil)
	return err
}
