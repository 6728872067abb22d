package goreflect

import (
	"cmp"
	"fmt"
	"go/types"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/nieomylnieja/rstdoc/internal/typeinfo"
	"github.com/nieomylnieja/rstdoc/pkg/reflection"
)

var errNoClasses = errors.New("no exported types found")

// Classes returns a class for every exported named type declared in the loaded packages,
// ordered by package path and type name.
func (l *Loader) Classes() ([]reflection.Class, error) {
	var classes []reflection.Class
	for _, pkg := range l.roots {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !obj.Exported() || obj.IsAlias() {
				continue
			}
			named, ok := obj.Type().(*types.Named)
			if !ok {
				continue
			}
			class, err := l.newClass(named)
			if err != nil {
				return nil, err
			}
			classes = append(classes, class)
		}
	}
	if len(classes) == 0 {
		return nil, errNoClasses
	}
	return classes, nil
}

func (l *Loader) newClass(named *types.Named) (reflection.ClassSnapshot, error) {
	obj := named.Obj()
	doc, err := l.typeDoc(obj)
	if err != nil {
		return reflection.ClassSnapshot{}, err
	}
	kind := reflection.KindClass
	if types.IsInterface(named) {
		kind = reflection.KindInterface
	}
	return reflection.ClassSnapshot{
		ShortName:     obj.Name(),
		NamespaceName: typeinfo.Namespace(obj.Pkg().Path()),
		ClassKind:     kind,
		Doc:           doc,
		Parents:       ancestors(named),
		ConstantList:  l.constants(named),
		PropertyList:  l.properties(named),
		MethodList:    l.methods(named),
	}, nil
}

// ancestors lists embedded types, nearest first.
func ancestors(named *types.Named) []string {
	var names []string
	visited := map[*types.Named]bool{named: true}
	var visit func(n *types.Named)
	visit = func(n *types.Named) {
		for _, embedded := range embeddedTypes(n) {
			if visited[embedded] {
				continue
			}
			visited[embedded] = true
			names = append(names, qualifiedName(embedded))
			visit(embedded)
		}
	}
	visit(named)
	return names
}

func embeddedTypes(named *types.Named) []*types.Named {
	var embedded []*types.Named
	switch u := named.Underlying().(type) {
	case *types.Struct:
		for field := range u.Fields() {
			if !field.Embedded() {
				continue
			}
			if n := namedOf(field.Type()); n != nil {
				embedded = append(embedded, n)
			}
		}
	case *types.Interface:
		for typ := range u.EmbeddedTypes() {
			if n := namedOf(typ); n != nil {
				embedded = append(embedded, n)
			}
		}
	}
	return embedded
}

// constants returns exported package constants of exactly the named type, in source order.
func (l *Loader) constants(named *types.Named) []reflection.ConstantSnapshot {
	obj := named.Obj()
	scope := obj.Pkg().Scope()
	var consts []*types.Const
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !c.Exported() || !types.Identical(c.Type(), named) {
			continue
		}
		consts = append(consts, c)
	}
	slices.SortFunc(consts, func(a, b *types.Const) int { return cmp.Compare(a.Pos(), b.Pos()) })

	declaring := qualifiedName(named)
	constants := make([]reflection.ConstantSnapshot, 0, len(consts))
	for _, c := range consts {
		constants = append(constants, reflection.ConstantSnapshot{
			MemberSnapshot: reflection.MemberSnapshot{
				MemberName: c.Name(),
				Doc:        l.objectDoc(c),
				Declaring:  declaring,
			},
		})
	}
	return constants
}

// properties returns exported struct fields, own fields first.
// Promoted fields are attributed to the embedded type declaring them,
// a shallower field shadows deeper ones with the same name.
func (l *Loader) properties(named *types.Named) []reflection.PropertySnapshot {
	var properties []reflection.PropertySnapshot
	seen := make(map[string]bool)
	visited := make(map[*types.Named]bool)
	var visit func(n *types.Named)
	visit = func(n *types.Named) {
		if visited[n] {
			return
		}
		visited[n] = true
		st, ok := n.Underlying().(*types.Struct)
		if !ok {
			return
		}
		declaring := qualifiedName(n)
		var embedded []*types.Named
		for field := range st.Fields() {
			if field.Embedded() {
				if e := namedOf(field.Type()); e != nil {
					embedded = append(embedded, e)
				}
				continue
			}
			if !field.Exported() || seen[field.Name()] {
				continue
			}
			seen[field.Name()] = true
			properties = append(properties, reflection.PropertySnapshot{
				MemberSnapshot: reflection.MemberSnapshot{
					MemberName: field.Name(),
					Doc:        l.objectDoc(field),
					Declaring:  declaring,
				},
				Type: typeinfo.Name(field.Type()),
			})
		}
		for _, e := range embedded {
			visit(e)
		}
	}
	visit(named)
	return properties
}

// methods returns the exported methods of the pointer method set, ordered by name.
func (l *Loader) methods(named *types.Named) []reflection.MethodSnapshot {
	var typ types.Type = named
	if !types.IsInterface(named) {
		typ = types.NewPointer(named)
	}
	methodSet := types.NewMethodSet(typ)
	methods := make([]reflection.MethodSnapshot, 0, methodSet.Len())
	for i := range methodSet.Len() {
		fn, ok := methodSet.At(i).Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}
		sig, ok := fn.Type().(*types.Signature)
		if !ok {
			continue
		}
		declaring := named
		if recv := sig.Recv(); recv != nil {
			if n := namedOf(recv.Type()); n != nil {
				declaring = n
			}
		}
		methods = append(methods, reflection.MethodSnapshot{
			MemberSnapshot: reflection.MemberSnapshot{
				MemberName: fn.Name(),
				Doc:        l.objectDoc(fn),
				Declaring:  qualifiedName(declaring),
			},
			Params: parameters(sig),
			Return: results(sig),
		})
	}
	return methods
}

func parameters(sig *types.Signature) []reflection.Parameter {
	params := sig.Params()
	result := make([]reflection.Parameter, 0, params.Len())
	for i := range params.Len() {
		v := params.At(i)
		name := v.Name()
		if name == "" || name == "_" {
			name = fmt.Sprintf("arg%d", i)
		}
		param := reflection.Parameter{
			Name:     name,
			TypeName: typeinfo.Name(v.Type()),
		}
		if sig.Variadic() && i == params.Len()-1 {
			param.Variadic = true
			if slice, ok := v.Type().(*types.Slice); ok {
				param.TypeName = typeinfo.Name(slice.Elem())
			}
		}
		result = append(result, param)
	}
	return result
}

func results(sig *types.Signature) string {
	res := sig.Results()
	names := make([]string, 0, res.Len())
	for i := range res.Len() {
		names = append(names, typeinfo.Name(res.At(i).Type()))
	}
	return strings.Join(names, ", ")
}

func qualifiedName(named *types.Named) string {
	obj := named.Obj()
	return typeinfo.QualifiedName(obj.Pkg(), obj.Name())
}

func namedOf(typ types.Type) *types.Named {
	typ = types.Unalias(typ)
	if ptr, ok := typ.(*types.Pointer); ok {
		typ = types.Unalias(ptr.Elem())
	}
	named, ok := typ.(*types.Named)
	if !ok {
		return nil
	}
	return named
}
