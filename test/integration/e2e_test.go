//go:build integration

package integration_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/cppgen-labs/cppgen/internal/copyright"
	"github.com/cppgen-labs/cppgen/internal/editor"
	"github.com/cppgen-labs/cppgen/internal/generator"
	"github.com/cppgen-labs/cppgen/internal/naming"
	"github.com/cppgen-labs/cppgen/internal/profile"
)

// TestFullFlowCreateEditCredit covers the complete flow:
// create class files -> add a second class to the header -> credit a new author.
func TestFullFlowCreateEditCredit(t *testing.T) {
	env := setupTestEnv(t)

	// Step 1: Create the class pair from the include folder.
	gen := newGenerator(t, userSettings("Jane Doe", "Acme Corp"), env.IncludeDir)
	result, err := gen.CreateClassFiles(env.IncludeDir, naming.MustParse("Widget"))
	if err != nil {
		t.Fatalf("CreateClassFiles: %v", err)
	}
	header := filepath.Join(env.IncludeDir, "Widget.h")
	source := filepath.Join(env.SourceDir, "Widget.cpp")
	if result.HeaderPath != header || result.SourcePath != source {
		t.Fatalf("paths = %s, %s; want %s, %s", result.HeaderPath, result.SourcePath, header, source)
	}
	assertFileContains(t, header, "#ifndef WIDGET_H")
	assertFileContains(t, source, "#include \"Widget.h\"")

	// Step 2: Declare a helper class just before the #endif.
	buf, err := editor.Open(afero.NewOsFs(), header)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	endif := -1
	for i, line := range buf.Lines() {
		if strings.HasPrefix(line, "#endif") {
			endif = i
		}
	}
	if endif < 0 {
		t.Fatal("header has no #endif")
	}
	view := &editor.View{Buffer: buf, Cursor: editor.Cursor{Line: endif}}
	if err := gen.InsertDeclaration(view, naming.MustParse("WidgetPart"), ""); err != nil {
		t.Fatalf("InsertDeclaration: %v", err)
	}
	if err := buf.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	assertFileContains(t, header, "class WidgetPart\n")
	if !strings.HasSuffix(readFile(t, header), "#endif // WIDGET_H\n") {
		t.Error("declaration must land before the include guard's #endif")
	}

	// Step 3: Another author touches the header.
	other := newGenerator(t, userSettings("John Roe", "Acme Corp"), env.IncludeDir)
	buf, err = editor.Open(afero.NewOsFs(), header)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	status, err := other.ApplyCopyright(buf)
	if err != nil {
		t.Fatalf("ApplyCopyright: %v", err)
	}
	if status != copyright.Updated {
		t.Fatalf("status = %s, want updated", status)
	}
	if err := buf.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	assertFileContains(t, header, "** Written by Jane Doe, October 2025\n** Updated by John Roe, October 2025\n*/\n")
}

func TestFullFlowRerunConflicts(t *testing.T) {
	env := setupTestEnv(t)
	gen := newGenerator(t, userSettings("Jane Doe", "Acme Corp"), env.IncludeDir)
	name := naming.MustParse("Widget")

	if _, err := gen.CreateClassFiles(env.IncludeDir, name); err != nil {
		t.Fatalf("first CreateClassFiles: %v", err)
	}
	before := readFile(t, filepath.Join(env.SourceDir, "Widget.cpp"))

	_, err := gen.CreateClassFiles(env.IncludeDir, name)
	if !errors.Is(err, generator.ErrTargetConflict) {
		t.Fatalf("second CreateClassFiles error = %v, want ErrTargetConflict", err)
	}
	if got := readFile(t, filepath.Join(env.SourceDir, "Widget.cpp")); got != before {
		t.Error("conflicting run must not touch existing files")
	}
}

func TestFullFlowSourceOnlyWhenHeaderTaken(t *testing.T) {
	env := setupTestEnv(t)
	writeFile(t, filepath.Join(env.IncludeDir, "Widget.h"), "// hand written\n")
	gen := newGenerator(t, userSettings("Jane Doe", "Acme Corp"), env.SourceDir)

	_, err := gen.CreateClassFiles(env.SourceDir, naming.MustParse("Widget"))
	if !errors.Is(err, generator.ErrTargetConflict) {
		t.Fatalf("error = %v, want ErrTargetConflict", err)
	}
	assertFileNotExists(t, filepath.Join(env.SourceDir, "Widget.cpp"))
}

func TestFullFlowProfileOverridesUser(t *testing.T) {
	env := setupTestEnv(t)
	writeFile(t, filepath.Join(env.ProjectDir, profile.FileName),
		"company_name: Profile Inc\nbanner_width: 50\nfill_order: left-first\n")

	gen := newGenerator(t, userSettings("Jane Doe", "Acme Corp"), env.IncludeDir)
	result, err := gen.CreateClassFiles(env.IncludeDir, naming.MustParse("net::Socket"))
	if err != nil {
		t.Fatalf("CreateClassFiles: %v", err)
	}
	assertFileExists(t, filepath.Join(env.IncludeDir, "Socket.h"))
	assertFileContains(t, result.HeaderPath, "/* Copyright (C) 2025, Profile Inc\n")
	assertFileContains(t, result.HeaderPath, "** Written by Jane Doe, October 2025\n")
	assertFileContains(t, result.HeaderPath, "#ifndef NET_SOCKET_H\n")
	assertFileContains(t, result.HeaderPath, "class net::Socket\n")
	assertFileContains(t, result.SourcePath, "net::Socket::~Socket()\n")

	for _, line := range strings.Split(readFile(t, result.HeaderPath), "\n") {
		if strings.HasPrefix(line, "//#") && len(line) > 50 {
			t.Errorf("banner line wider than profile width: %q", line)
		}
	}
}

func TestFullFlowProfileVersionGate(t *testing.T) {
	env := setupTestEnv(t)
	writeFile(t, filepath.Join(env.ProjectDir, profile.FileName), "min_version: \">=2.0.0\"\n")

	prof, err := profile.Find(afero.NewOsFs(), env.SourceDir)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if err := prof.CheckVersion("1.4.0"); !errors.Is(err, profile.ErrVersionMismatch) {
		t.Errorf("CheckVersion(1.4.0) = %v, want ErrVersionMismatch", err)
	}
	if err := prof.CheckVersion("v2.1.0"); err != nil {
		t.Errorf("CheckVersion(v2.1.0) = %v", err)
	}
}

func TestFullFlowCopyrightIdempotent(t *testing.T) {
	env := setupTestEnv(t)
	path := filepath.Join(env.SourceDir, "main.cpp")
	writeFile(t, path, "/* build notes */\nint main() { return 0; }\n")
	gen := newGenerator(t, userSettings("Jane Doe", "Acme Corp"), env.SourceDir)

	want := []copyright.Status{copyright.Inserted, copyright.Unchanged}
	for i, w := range want {
		buf, err := editor.Open(afero.NewOsFs(), path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		got, err := gen.ApplyCopyright(buf)
		if err != nil {
			t.Fatalf("run %d: ApplyCopyright: %v", i, err)
		}
		if got != w {
			t.Errorf("run %d: status = %s, want %s", i, got, w)
		}
		if err := buf.Save(); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	assertFileContains(t, path, "*/\n\n/* build notes */\n")
}
