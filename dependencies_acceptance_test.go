package cardbase_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestModuleDependencies_GraphQLPresent(t *testing.T) {
	testModulePresence(t, "github.com/graph-gophers/graphql-go")
}

func TestModuleDependencies_GORMPresent(t *testing.T) {
	testModulePresence(t, "gorm.io/gorm")
}

func TestModuleDependencies_KoanfPresent(t *testing.T) {
	testModulePresence(t, "github.com/knadh/koanf/v2")
}

func TestModuleDependencies_LoggerPresent(t *testing.T) {
	testModulePresence(t, "github.com/simp-lee/logger")
}

// Card listing is keyset-based. An Offset call in query-building code would
// reintroduce offset pagination, which degrades as the table grows.
func TestQueryAPI_NoOffsetPagination(t *testing.T) {
	t.Run("happy_repo_has_no_offset_calls", func(t *testing.T) {
		matches, err := findOffsetUsages(".")
		if err != nil {
			t.Fatalf("scan repository: %v", err)
		}
		if len(matches) != 0 {
			t.Fatalf("expected no Offset usages, found in: %v", matches)
		}
	})

	t.Run("error_fixture_with_offset_is_detected", func(t *testing.T) {
		fixture := `package pagination
func page(db *gorm.DB) *gorm.DB { return db.Offset(20).Limit(10) }`
		if hasOffsetCall(fixture) == false {
			t.Fatal("expected Offset call to be detected in fixture")
		}
	})
}

func testModulePresence(t *testing.T, module string) {
	t.Helper()

	t.Run("happy_present_in_real_go_mod", func(t *testing.T) {
		goMod, err := os.ReadFile("go.mod")
		if err != nil {
			t.Fatalf("read go.mod: %v", err)
		}
		if !moduleRequired(string(goMod), module) {
			t.Fatalf("expected module %q to be present in go.mod", module)
		}
	})

	t.Run("error_missing_module_in_fixture", func(t *testing.T) {
		fixture := `module example.com/demo

go 1.25.0

require (
	github.com/gin-gonic/gin v1.11.0
)`
		if moduleRequired(fixture, module) {
			t.Fatalf("expected fixture to not contain module %q", module)
		}
	})
}

func moduleRequired(goModContent, module string) bool {
	re := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(module) + `\s+v\S+`)
	return re.MatchString(goModContent)
}

func findOffsetUsages(root string) ([]string, error) {
	matches := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if name == ".git" || name == "vendor" || strings.HasPrefix(name, "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		b, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		if hasOffsetCall(string(b)) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func hasOffsetCall(content string) bool {
	re := regexp.MustCompile(`\.Offset\s*\(`)
	return re.MatchString(content)
}
