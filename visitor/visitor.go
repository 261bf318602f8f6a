// Package visitor implements the generic AST traversal (spec component
// C5): rewrite-on-change visiting with privileged pre/post hooks for
// the five node families called out by the spec (Query, ObjectName,
// TableFactor, Expr, Statement), plus a fallback registry for any other
// concrete node type, and a pre-order Descendants walk.
//
// Traversal discovers a node's children via the `sql:"child"` struct
// tags on the ast package's node (and substructure) types, rather than
// a hand-written Children() method per type, so that new ast node
// shapes only need a tag, not a visitor-package edit. The field
// descriptor list for a given reflect.Type is computed once and cached
// in a sync.Map, keyed by reflect.Type and populated with LoadOrStore
// so concurrent first-use from multiple goroutines converges on one
// cached slice rather than racing (spec §8 "Cache safety").
package visitor

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/polysql/sqlparser/ast"
)

// Visitor bundles the privileged family hooks plus a registry of
// per-concrete-type hooks for everything else. A nil hook is skipped.
// Hooks return the (possibly replaced) node; returning the same value
// they were given is a no-op.
type Visitor struct {
	PreVisitQuery   func(*ast.Query) *ast.Query
	PostVisitQuery  func(*ast.Query) *ast.Query

	PreVisitObjectName  func(*ast.ObjectName) *ast.ObjectName
	PostVisitObjectName func(*ast.ObjectName) *ast.ObjectName

	PreVisitTableFactor  func(ast.TableFactor) ast.TableFactor
	PostVisitTableFactor func(ast.TableFactor) ast.TableFactor

	PreVisitExpr  func(ast.Expr) ast.Expr
	PostVisitExpr func(ast.Expr) ast.Expr

	PreVisitStatement  func(ast.Statement) ast.Statement
	PostVisitStatement func(ast.Statement) ast.Statement

	customPre  map[reflect.Type]func(ast.Node) ast.Node
	customPost map[reflect.Type]func(ast.Node) ast.Node
}

// New returns a Visitor with no hooks registered; a plain Visit with it
// is an identity traversal.
func New() *Visitor {
	return &Visitor{}
}

// RegisterCustomPreVisit installs a pre-visit hook for the concrete
// type of sample (e.g. &ast.FunctionCall{}), used for node kinds that
// have no privileged hook of their own.
func (v *Visitor) RegisterCustomPreVisit(sample ast.Node, fn func(ast.Node) ast.Node) {
	if v.customPre == nil {
		v.customPre = make(map[reflect.Type]func(ast.Node) ast.Node)
	}
	v.customPre[reflect.TypeOf(sample)] = fn
}

// RegisterCustomPostVisit installs a post-visit hook for the concrete
// type of sample.
func (v *Visitor) RegisterCustomPostVisit(sample ast.Node, fn func(ast.Node) ast.Node) {
	if v.customPost == nil {
		v.customPost = make(map[reflect.Type]func(ast.Node) ast.Node)
	}
	v.customPost[reflect.TypeOf(sample)] = fn
}

// fieldDescriptor is one visitable child field of a struct type.
type fieldDescriptor struct {
	index int
	order int
}

var descriptorCache sync.Map // reflect.Type -> []fieldDescriptor

func getDescriptor(t reflect.Type) []fieldDescriptor {
	if cached, ok := descriptorCache.Load(t); ok {
		return cached.([]fieldDescriptor)
	}
	built := buildDescriptor(t)
	actual, _ := descriptorCache.LoadOrStore(t, built)
	return actual.([]fieldDescriptor)
}

func buildDescriptor(t reflect.Type) []fieldDescriptor {
	var fields []fieldDescriptor
	for i := 0; i < t.NumField(); i++ {
		tag, ok := t.Field(i).Tag.Lookup("sql")
		if !ok {
			continue
		}
		parts := strings.Split(tag, ",")
		if len(parts) == 0 || parts[0] != "child" {
			continue
		}
		order := i
		for _, p := range parts[1:] {
			if rest, found := strings.CutPrefix(p, "order="); found {
				if n, err := strconv.Atoi(rest); err == nil {
					order = n
				}
			}
		}
		fields = append(fields, fieldDescriptor{index: i, order: order})
	}
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].order < fields[j].order })
	return fields
}

// Visit walks node pre-order, applying v's hooks, and returns the
// (possibly rewritten) node. Per the rewrite-on-change law, Visit
// returns the exact node it was given (same pointer) when nothing on
// or under it changed; any changed descendant forces its ancestors on
// the path back to node to be freshly cloned.
func Visit(node ast.Node, v *Visitor) ast.Node {
	if node == nil || reflect.ValueOf(node).IsNil() {
		return node
	}
	result, _ := visitNode(reflect.ValueOf(node), v)
	if result.IsValid() {
		if n, ok := result.Interface().(ast.Node); ok {
			return n
		}
	}
	return node
}

// visitNode visits a pointer-to-struct value implementing ast.Node:
// pre-hook, then children, then post-hook. Returns the resulting value
// (same pointer if nothing changed) and whether it differs from rv.
func visitNode(rv reflect.Value, v *Visitor) (reflect.Value, bool) {
	original := rv
	asNode := rv.Interface().(ast.Node)

	pre := applyPreHooks(asNode, v)
	current := rv
	if pre != asNode {
		current = reflect.ValueOf(pre)
	}

	newStruct, childrenChanged := visitStructFields(current.Elem(), v)
	if childrenChanged {
		ptr := reflect.New(current.Elem().Type())
		ptr.Elem().Set(newStruct)
		current = ptr
	}

	postIn := current.Interface().(ast.Node)
	post := applyPostHooks(postIn, v)
	if post != postIn {
		current = reflect.ValueOf(post)
	}

	changed := current.Pointer() != original.Pointer()
	return current, changed
}

// visitStructFields visits every `sql:"child"` field of structVal,
// returning a modified copy and true only if at least one field
// changed; otherwise structVal itself (unmodified) and false.
func visitStructFields(structVal reflect.Value, v *Visitor) (reflect.Value, bool) {
	desc := getDescriptor(structVal.Type())
	changedAny := false
	result := structVal
	for _, fd := range desc {
		fv := structVal.Field(fd.index)
		newFv, changed := visitField(fv, v)
		if !changed {
			continue
		}
		if !changedAny {
			result = reflect.New(structVal.Type()).Elem()
			result.Set(structVal)
			changedAny = true
		}
		result.Field(fd.index).Set(newFv)
	}
	return result, changedAny
}

// visitField dispatches on the runtime shape of a single child field:
// a slice of children, an interface-typed child (Expr/TableFactor/
// Statement/DataType/SetExpr), or a direct pointer child.
func visitField(fv reflect.Value, v *Visitor) (reflect.Value, bool) {
	switch fv.Kind() {
	case reflect.Slice:
		return visitSlice(fv, v)
	case reflect.Interface:
		if fv.IsNil() {
			return fv, false
		}
		inner := fv.Elem()
		newInner, changed := visitField(inner, v)
		if !changed {
			return fv, false
		}
		boxed := reflect.New(fv.Type()).Elem()
		boxed.Set(newInner)
		return boxed, true
	case reflect.Ptr:
		if fv.IsNil() {
			return fv, false
		}
		return visitPointer(fv, v)
	default:
		return fv, false
	}
}

func visitPointer(fv reflect.Value, v *Visitor) (reflect.Value, bool) {
	if _, ok := fv.Interface().(ast.Node); ok {
		return visitNode(fv, v)
	}
	// A substructure pointer (e.g. *ast.SelectItem) that isn't itself an
	// ast.Node but still carries `sql:"child"` fields of its own.
	newStruct, changed := visitStructFields(fv.Elem(), v)
	if !changed {
		return fv, false
	}
	ptr := reflect.New(fv.Elem().Type())
	ptr.Elem().Set(newStruct)
	return ptr, true
}

func visitSlice(fv reflect.Value, v *Visitor) (reflect.Value, bool) {
	changedAny := false
	n := fv.Len()
	var result reflect.Value
	for i := 0; i < n; i++ {
		elem := fv.Index(i)
		newElem, changed := visitField(elem, v)
		if !changed {
			continue
		}
		if !changedAny {
			result = reflect.MakeSlice(fv.Type(), n, n)
			reflect.Copy(result, fv)
			changedAny = true
		}
		result.Index(i).Set(newElem)
	}
	if !changedAny {
		return fv, false
	}
	return result, true
}

func applyPreHooks(n ast.Node, v *Visitor) ast.Node {
	switch t := n.(type) {
	case *ast.Query:
		if v.PreVisitQuery != nil {
			return v.PreVisitQuery(t)
		}
	case *ast.ObjectName:
		if v.PreVisitObjectName != nil {
			return v.PreVisitObjectName(t)
		}
	}
	if tf, ok := n.(ast.TableFactor); ok && v.PreVisitTableFactor != nil {
		return v.PreVisitTableFactor(tf)
	}
	if st, ok := n.(ast.Statement); ok && v.PreVisitStatement != nil {
		return v.PreVisitStatement(st)
	}
	if ex, ok := n.(ast.Expr); ok && v.PreVisitExpr != nil {
		return v.PreVisitExpr(ex)
	}
	if fn, ok := v.customPre[reflect.TypeOf(n)]; ok {
		return fn(n)
	}
	return n
}

func applyPostHooks(n ast.Node, v *Visitor) ast.Node {
	switch t := n.(type) {
	case *ast.Query:
		if v.PostVisitQuery != nil {
			return v.PostVisitQuery(t)
		}
	case *ast.ObjectName:
		if v.PostVisitObjectName != nil {
			return v.PostVisitObjectName(t)
		}
	}
	if tf, ok := n.(ast.TableFactor); ok && v.PostVisitTableFactor != nil {
		return v.PostVisitTableFactor(tf)
	}
	if st, ok := n.(ast.Statement); ok && v.PostVisitStatement != nil {
		return v.PostVisitStatement(st)
	}
	if ex, ok := n.(ast.Expr); ok && v.PostVisitExpr != nil {
		return v.PostVisitExpr(ex)
	}
	if fn, ok := v.customPost[reflect.TypeOf(n)]; ok {
		return fn(n)
	}
	return n
}

// Walk performs a pre-order traversal of node and its descendants,
// calling fn for each one (node itself first). fn returning false stops
// the traversal early without visiting the remaining nodes — this is
// the "lazy" half of the spec's Descendants requirement: nothing beyond
// the point where fn says stop is ever reflected over.
func Walk(node ast.Node, fn func(ast.Node) bool) {
	if node == nil || reflect.ValueOf(node).IsNil() {
		return
	}
	if !fn(node) {
		return
	}
	walkFields(reflect.ValueOf(node).Elem(), fn)
}

func walkFields(structVal reflect.Value, fn func(ast.Node) bool) bool {
	desc := getDescriptor(structVal.Type())
	for _, fd := range desc {
		if !walkField(structVal.Field(fd.index), fn) {
			return false
		}
	}
	return true
}

func walkField(fv reflect.Value, fn func(ast.Node) bool) bool {
	switch fv.Kind() {
	case reflect.Slice:
		for i := 0; i < fv.Len(); i++ {
			if !walkField(fv.Index(i), fn) {
				return false
			}
		}
	case reflect.Interface:
		if !fv.IsNil() {
			return walkField(fv.Elem(), fn)
		}
	case reflect.Ptr:
		if fv.IsNil() {
			return true
		}
		if n, ok := fv.Interface().(ast.Node); ok {
			if !fn(n) {
				return false
			}
			return walkFields(fv.Elem(), fn)
		}
		return walkFields(fv.Elem(), fn)
	}
	return true
}

// Descendants eagerly collects node and every descendant in pre-order.
// Prefer Walk directly when the caller may want to stop early.
func Descendants(node ast.Node) []ast.Node {
	var out []ast.Node
	Walk(node, func(n ast.Node) bool {
		out = append(out, n)
		return true
	})
	return out
}
