// Package cxx extracts identifiers and include directives from C++ source
// text using tree-sitter. Extraction is a pure function of the input text:
// declarations are classified by local syntactic context only, with no
// whole-program type resolution.
package cxx

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
)

// Extractor parses C++ source text and produces SourceFile records.
// An Extractor is not safe for concurrent use; create one per worker.
type Extractor struct {
	parser *sitter.Parser
}

func NewExtractor() *Extractor {
	p := sitter.NewParser()
	p.SetLanguage(cpp.GetLanguage())
	return &Extractor{parser: p}
}

// Extract parses content and returns the identifiers and includes declared
// in it. It returns a *ParseError when the text contains syntax errors.
func (e *Extractor) Extract(ctx context.Context, path string, content []byte) (*SourceFile, error) {
	tree, err := e.parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, &ParseError{Path: path, Line: firstErrorLine(root)}
	}

	w := &walker{src: content, out: &SourceFile{Path: path}}
	w.walk(root, scopeFile)
	return w.out, nil
}

func firstErrorLine(root *sitter.Node) int {
	var find func(n *sitter.Node) int
	find = func(n *sitter.Node) int {
		if n.Type() == "ERROR" || n.IsMissing() {
			return int(n.StartPoint().Row) + 1
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			if line := find(n.Child(i)); line > 0 {
				return line
			}
		}
		return 0
	}
	return find(root)
}

type scope int

const (
	scopeFile scope = iota
	scopeLocal
)

type walker struct {
	src        []byte
	out        *SourceFile
	includeIdx int
}

func (w *walker) walk(n *sitter.Node, sc scope) {
	switch n.Type() {
	case "preproc_include":
		w.addInclude(n)
	case "preproc_def", "preproc_function_def":
		if name := n.ChildByFieldName("name"); name != nil {
			w.add(name, CatConstant)
		}
	case "namespace_definition", "linkage_specification":
		if body := n.ChildByFieldName("body"); body != nil {
			w.walk(body, sc)
		}
	case "template_declaration":
		// Template parameters carry no casing expectation; only the
		// templated declaration itself is walked.
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			if child.Type() == "template_parameter_list" {
				continue
			}
			w.walk(child, sc)
		}
	case "class_specifier":
		w.walkClass(n, "private")
	case "struct_specifier":
		w.walkClass(n, "public")
	case "enum_specifier":
		w.walkEnum(n)
	case "alias_declaration":
		if name := n.ChildByFieldName("name"); name != nil {
			w.add(name, CatTypeAlias)
		}
	case "type_definition":
		for _, d := range declaratorFields(n) {
			if name := declIdentifier(d); name != nil {
				w.add(name, CatTypeAlias)
			}
		}
	case "function_definition":
		w.addFunction(n, "")
		if body := n.ChildByFieldName("body"); body != nil {
			w.walk(body, scopeLocal)
		}
	case "declaration":
		w.walkDeclaration(n, sc, "")
	default:
		for i := 0; i < int(n.NamedChildCount()); i++ {
			w.walk(n.NamedChild(i), sc)
		}
	}
}

// walkDeclaration handles a declaration at file, local, or class scope.
// className is non-empty inside a class body and is used to recognize
// constructor declarations, which carry no casing expectation.
func (w *walker) walkDeclaration(n *sitter.Node, sc scope, className string) {
	isConst := hasConstQualifier(n, w.src)

	// A declaration may carry a nested type definition as its type
	// (e.g. "class Inner {} x;").
	if t := n.ChildByFieldName("type"); t != nil {
		switch t.Type() {
		case "class_specifier":
			w.walkClass(t, "private")
		case "struct_specifier":
			w.walkClass(t, "public")
		case "enum_specifier":
			w.walkEnum(t)
		}
	}

	for _, d := range declaratorFields(n) {
		if fd := findFunctionDeclarator(d); fd != nil {
			w.addFunctionDeclarator(fd, className)
			continue
		}
		name := declIdentifier(d)
		if name == nil {
			continue
		}
		switch {
		case isConst:
			w.add(name, CatConstant)
		case sc == scopeLocal:
			w.add(name, CatLocalVariable)
		default:
			// Non-const globals have no applicable rule; skipped.
		}
	}
}

func (w *walker) walkClass(n *sitter.Node, defaultAccess string) {
	if name := n.ChildByFieldName("name"); name != nil && name.Type() == "type_identifier" {
		w.add(name, CatClass)
	}
	body := n.ChildByFieldName("body")
	if body == nil {
		return // forward declaration
	}

	className := ""
	if name := n.ChildByFieldName("name"); name != nil {
		className = name.Content(w.src)
	}

	access := defaultAccess
	for i := 0; i < int(body.NamedChildCount()); i++ {
		item := body.NamedChild(i)
		if item.Type() == "access_specifier" {
			access = strings.TrimSuffix(strings.TrimSpace(item.Content(w.src)), ":")
			continue
		}
		w.walkClassItem(item, access, className)
	}
}

func (w *walker) walkClassItem(item *sitter.Node, access, className string) {
	switch item.Type() {
	case "field_declaration":
		w.walkFieldDeclaration(item, access, className)
	case "declaration":
		// In-class constructor and friend-style declarations parse as
		// plain declarations.
		w.walkDeclaration(item, scopeFile, className)
	case "function_definition":
		w.addFunction(item, className)
		if b := item.ChildByFieldName("body"); b != nil {
			w.walk(b, scopeLocal)
		}
	case "class_specifier":
		w.walkClass(item, "private")
	case "struct_specifier":
		w.walkClass(item, "public")
	case "enum_specifier":
		w.walkEnum(item)
	case "alias_declaration":
		if name := item.ChildByFieldName("name"); name != nil {
			w.add(name, CatTypeAlias)
		}
	case "type_definition":
		for _, d := range declaratorFields(item) {
			if name := declIdentifier(d); name != nil {
				w.add(name, CatTypeAlias)
			}
		}
	case "template_declaration":
		for i := 0; i < int(item.NamedChildCount()); i++ {
			child := item.NamedChild(i)
			if child.Type() == "template_parameter_list" {
				continue
			}
			w.walkClassItem(child, access, className)
		}
	}
}

func (w *walker) walkFieldDeclaration(n *sitter.Node, access, className string) {
	isConst := hasConstQualifier(n, w.src)

	// Nested type as the field's type ("struct Point {} origin;").
	if t := n.ChildByFieldName("type"); t != nil {
		switch t.Type() {
		case "class_specifier":
			w.walkClass(t, "private")
		case "struct_specifier":
			w.walkClass(t, "public")
		case "enum_specifier":
			w.walkEnum(t)
		}
	}

	for _, d := range declaratorFields(n) {
		if fd := findFunctionDeclarator(d); fd != nil {
			w.addFunctionDeclarator(fd, className)
			continue
		}
		name := declIdentifier(d)
		if name == nil {
			continue
		}
		switch {
		case isConst:
			w.add(name, CatConstant)
		case access == "public":
			w.add(name, CatPublicMember)
		default:
			// Protected members follow the private-member convention.
			w.add(name, CatPrivateMember)
		}
	}
}

func (w *walker) walkEnum(n *sitter.Node) {
	if name := n.ChildByFieldName("name"); name != nil && name.Type() == "type_identifier" {
		w.add(name, CatEnum)
	}
	body := n.ChildByFieldName("body")
	if body == nil {
		return
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		item := body.NamedChild(i)
		if item.Type() != "enumerator" {
			continue
		}
		if name := item.ChildByFieldName("name"); name != nil {
			w.add(name, CatEnumerator)
		}
	}
}

// addFunction records the name declared by a function_definition or
// declaration node, skipping constructors, destructors and operators.
func (w *walker) addFunction(n *sitter.Node, className string) {
	d := n.ChildByFieldName("declarator")
	if d == nil {
		return
	}
	fd := findFunctionDeclarator(d)
	if fd == nil {
		return
	}
	w.addFunctionDeclarator(fd, className)
}

func (w *walker) addFunctionDeclarator(fd *sitter.Node, className string) {
	name := fd.ChildByFieldName("declarator")
	if name == nil {
		return
	}

	// Out-of-line members: Foo::bar. Track the innermost scope so that
	// out-of-line constructors (Foo::Foo) can be recognized.
	enclosing := className
	for name.Type() == "qualified_identifier" {
		if s := name.ChildByFieldName("scope"); s != nil {
			enclosing = stripTemplateArgs(s.Content(w.src))
		}
		inner := name.ChildByFieldName("name")
		if inner == nil {
			return
		}
		name = inner
	}

	cat := CatStaticFunction
	if enclosing != "" {
		cat = CatMemberFunction
	}

	switch name.Type() {
	case "identifier", "field_identifier":
		if txt := name.Content(w.src); txt == enclosing {
			return // constructor
		}
		w.add(name, cat)
	case "template_function":
		if inner := name.ChildByFieldName("name"); inner != nil {
			if inner.Content(w.src) == enclosing {
				return
			}
			w.add(inner, cat)
		}
	default:
		// destructor_name, operator_name, operator_cast: no casing rule.
	}
}

func (w *walker) addInclude(n *sitter.Node) {
	pathNode := n.ChildByFieldName("path")
	if pathNode == nil {
		return
	}
	inc := Include{
		Line:  int(pathNode.StartPoint().Row) + 1,
		Index: w.includeIdx,
	}
	switch pathNode.Type() {
	case "system_lib_string":
		inc.Angle = true
		inc.Path = strings.Trim(pathNode.Content(w.src), "<>")
	case "string_literal":
		inc.Path = strings.Trim(pathNode.Content(w.src), `"`)
	default:
		return // computed include (macro); not checkable
	}
	w.out.Includes = append(w.out.Includes, inc)
	w.includeIdx++
}

func (w *walker) add(name *sitter.Node, cat Category) {
	w.out.Identifiers = append(w.out.Identifiers, Identifier{
		Name:     name.Content(w.src),
		Category: cat,
		Line:     int(name.StartPoint().Row) + 1,
		Column:   int(name.StartPoint().Column) + 1,
	})
}

// declaratorFields returns the children bound to the "declarator" field.
// A declaration may carry several ("int a, b;").
func declaratorFields(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.FieldNameForChild(i) == "declarator" {
			out = append(out, n.Child(i))
		}
	}
	return out
}

// declIdentifier descends a declarator chain to the declared name.
// Returns nil for declarators with no checkable name (abstract
// declarators, structured bindings).
func declIdentifier(n *sitter.Node) *sitter.Node {
	for n != nil {
		switch n.Type() {
		case "identifier", "field_identifier", "type_identifier":
			return n
		case "init_declarator", "pointer_declarator", "reference_declarator",
			"array_declarator", "parenthesized_declarator":
			if d := n.ChildByFieldName("declarator"); d != nil {
				n = d
				continue
			}
			if n.NamedChildCount() > 0 {
				n = n.NamedChild(0)
				continue
			}
			return nil
		case "qualified_identifier":
			n = n.ChildByFieldName("name")
		default:
			return nil
		}
	}
	return nil
}

func findFunctionDeclarator(n *sitter.Node) *sitter.Node {
	for n != nil {
		switch n.Type() {
		case "function_declarator":
			return n
		case "init_declarator", "pointer_declarator", "reference_declarator",
			"parenthesized_declarator":
			if d := n.ChildByFieldName("declarator"); d != nil {
				n = d
				continue
			}
			return nil
		default:
			return nil
		}
	}
	return nil
}

func hasConstQualifier(n *sitter.Node, src []byte) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c.Type() != "type_qualifier" && c.Type() != "storage_class_specifier" {
			continue
		}
		switch c.Content(src) {
		case "const", "constexpr", "constinit", "consteval":
			return true
		}
	}
	return false
}

func stripTemplateArgs(s string) string {
	if i := strings.Index(s, "<"); i >= 0 {
		return s[:i]
	}
	return s
}
