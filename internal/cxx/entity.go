package cxx

// Category classifies an extracted identifier by its syntactic role.
// Every identifier carries exactly one category.
type Category string

const (
	CatClass      Category = "ClassName"
	CatEnum       Category = "EnumName"
	CatEnumerator Category = "EnumeratorName"
	CatTypeAlias  Category = "TypeAlias"
	// CatStaticFunction covers free and file-scope functions,
	// CatMemberFunction those declared or defined on a class. The guides
	// apply the same casing expectation to both; the split is kept so the
	// distinction stays configurable.
	CatStaticFunction Category = "StaticFunction"
	CatMemberFunction Category = "MemberFunction"
	CatLocalVariable  Category = "LocalVariable"
	CatPublicMember   Category = "PublicMemberVariable"
	CatPrivateMember  Category = "PrivateMemberVariable"
	CatConstant       Category = "Constant"
)

// Identifier is a declared name extracted from a source file.
type Identifier struct {
	Name     string
	Category Category
	// Line and Column are 1-based.
	Line   int
	Column int
}

// Include is a preprocessor include directive.
type Include struct {
	// Path is the include target with delimiters stripped.
	Path string
	// Angle is true for <...> includes, false for "..." includes.
	Angle bool
	Line  int
	// Index is the 0-based position among the file's includes, in
	// declaration order.
	Index int
}

// SourceFile holds everything extracted from one file. It is created by
// the Extractor and read-only afterward.
type SourceFile struct {
	Path        string
	Identifiers []Identifier
	Includes    []Include
}
