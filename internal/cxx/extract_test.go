package cxx

import (
	"context"
	"testing"
)

func extract(t *testing.T, src string) *SourceFile {
	t.Helper()
	sf, err := NewExtractor().Extract(context.Background(), "test.hpp", []byte(src))
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	return sf
}

func findIdent(sf *SourceFile, name string) (Identifier, bool) {
	for _, id := range sf.Identifiers {
		if id.Name == name {
			return id, true
		}
	}
	return Identifier{}, false
}

func TestExtract_Categories(t *testing.T) {
	src := `
#include <vector>
#include "UVMap.hpp"
#define MAX_RETRIES 3

class UVMap {
public:
    void setOrigin(int o);
    int originCount;
private:
    int origin_;
    static const int DEFAULT_SIZE = 16;
};

struct Point {
    double x;
};

enum class FilterMode { Nearest, Linear };

using PixelMap = int;

void flattenMesh() {
    int localCount = 0;
    const int maxIter = 10;
}
`
	sf := extract(t, src)

	want := map[string]Category{
		"MAX_RETRIES":  CatConstant,
		"UVMap":        CatClass,
		"setOrigin":    CatMemberFunction,
		"originCount":  CatPublicMember,
		"origin_":      CatPrivateMember,
		"DEFAULT_SIZE": CatConstant,
		"Point":        CatClass,
		"x":            CatPublicMember,
		"FilterMode":   CatEnum,
		"Nearest":      CatEnumerator,
		"Linear":       CatEnumerator,
		"PixelMap":     CatTypeAlias,
		"flattenMesh":  CatStaticFunction,
		"localCount":   CatLocalVariable,
		"maxIter":      CatConstant,
	}
	for name, cat := range want {
		id, ok := findIdent(sf, name)
		if !ok {
			t.Errorf("identifier %q not extracted", name)
			continue
		}
		if id.Category != cat {
			t.Errorf("identifier %q: category = %s, want %s", name, id.Category, cat)
		}
	}
}

func TestExtract_Includes(t *testing.T) {
	src := `
#include <vector>
#include <opencv2/core.hpp>
#include "UVMap.hpp"
`
	sf := extract(t, src)

	if len(sf.Includes) != 3 {
		t.Fatalf("got %d includes, want 3", len(sf.Includes))
	}
	tests := []struct {
		path  string
		angle bool
	}{
		{"vector", true},
		{"opencv2/core.hpp", true},
		{"UVMap.hpp", false},
	}
	for i, tt := range tests {
		inc := sf.Includes[i]
		if inc.Path != tt.path {
			t.Errorf("include %d: path = %q, want %q", i, inc.Path, tt.path)
		}
		if inc.Angle != tt.angle {
			t.Errorf("include %d: angle = %v, want %v", i, inc.Angle, tt.angle)
		}
		if inc.Index != i {
			t.Errorf("include %d: index = %d", i, inc.Index)
		}
	}
}

func TestExtract_ConstructorsAndDestructorsSkipped(t *testing.T) {
	src := `
class Mesh {
public:
    Mesh();
    ~Mesh();
    void clear();
};

Mesh::Mesh() {}
void Mesh::clear() {}
`
	sf := extract(t, src)

	if _, ok := findIdent(sf, "Mesh"); !ok {
		t.Fatal("class name Mesh not extracted")
	}
	for _, id := range sf.Identifiers {
		if id.Name == "Mesh" && id.Category == CatMemberFunction {
			t.Errorf("constructor extracted as function at line %d", id.Line)
		}
	}
	count := 0
	for _, id := range sf.Identifiers {
		if id.Name == "clear" && id.Category == CatMemberFunction {
			count++
		}
	}
	if count != 2 {
		t.Errorf("clear extracted %d times as function, want 2 (declaration + out-of-line definition)", count)
	}
}

func TestExtract_TemplateParametersSkipped(t *testing.T) {
	src := `
template <typename T, int N>
class Grid {
private:
    T cells_[N];
};
`
	sf := extract(t, src)

	if _, ok := findIdent(sf, "T"); ok {
		t.Error("template parameter T should not be extracted")
	}
	if id, ok := findIdent(sf, "cells_"); !ok || id.Category != CatPrivateMember {
		t.Errorf("cells_ = %+v, want private member", id)
	}
}

func TestExtract_EmptyFile(t *testing.T) {
	sf := extract(t, "")
	if len(sf.Identifiers) != 0 || len(sf.Includes) != 0 {
		t.Fatalf("empty file extracted %d identifiers, %d includes", len(sf.Identifiers), len(sf.Includes))
	}
}

func TestExtract_ParseError(t *testing.T) {
	_, err := NewExtractor().Extract(context.Background(), "broken.cpp", []byte("class Foo { void bar( {"))
	if err == nil {
		t.Fatal("expected error for unbalanced source")
	}
	if !IsParseError(err) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	src := `
class UVMap {};
void doThing() { int x = 1; }
`
	a := extract(t, src)
	b := extract(t, src)
	if len(a.Identifiers) != len(b.Identifiers) {
		t.Fatalf("runs disagree: %d vs %d identifiers", len(a.Identifiers), len(b.Identifiers))
	}
	for i := range a.Identifiers {
		if a.Identifiers[i] != b.Identifiers[i] {
			t.Errorf("identifier %d differs: %+v vs %+v", i, a.Identifiers[i], b.Identifiers[i])
		}
	}
}
