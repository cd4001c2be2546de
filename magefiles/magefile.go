//go:build mage

// Package main contains Mage build targets for news-research developer tooling.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binName    = "news-research"
	cmdPkg     = "./cmd/news-research"
	secretsDir = ".secrets"
	configFile = "news-research.yaml"
)

// secretFiles are created empty by Init for the user to fill in.
var secretFiles = []string{"newsapi-key", "groq-api-key", "anthropic-api-key"}

const sampleConfig = `# news-research configuration. Every key can be overridden with an
# environment variable prefixed NEWS_RESEARCH_, e.g. NEWS_RESEARCH_SERVER_ADDR.
news:
  timeout: 0s
  user_agent: news-research/1.0
ai:
  provider: groq
  timeout: 0s
server:
  addr: ":8080"
  allowed_origins: []
`

// Init creates the .secrets directory with empty key files and a sample
// config file. Existing files are left untouched.
func Init() error {
	if err := os.MkdirAll(secretsDir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", secretsDir, err)
	}
	for _, name := range secretFiles {
		if err := createIfMissing(filepath.Join(secretsDir, name), "", 0o600); err != nil {
			return err
		}
	}
	if err := createIfMissing(configFile, sampleConfig, 0o644); err != nil {
		return err
	}
	fmt.Println("Project initialized. Put API keys in", secretsDir+"/")
	return nil
}

func createIfMissing(path, content string, perm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Println("  exists ", path)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Println("  created", path)
	return nil
}

// Build compiles the CLI binary into bin/, stamping the git version when
// available.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Check runs Vet then Test.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Serve builds the binary and starts the web surface.
func Serve() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "serve")
}

// Stats prints project metrics: Go production/test LOC and template lines.
func Stats() error {
	prodLines, testLines, err := countGoLines(".")
	if err != nil {
		return err
	}
	tmplLines, err := countLines("internal/web/templates", ".html")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Lines of markup (templates):    %d\n", tmplLines)
	return nil
}

// countGoLines counts non-blank lines in Go files under root, split into
// production and test files. Directories starting with "_" or "." are skipped.
func countGoLines(root string) (prod, test int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		n, err := nonBlankLines(path)
		if err != nil {
			return err
		}
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}

// countLines counts non-blank lines in files with extension ext under root.
// A missing root counts as zero.
func countLines(root, ext string) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ext {
			return nil
		}
		n, err := nonBlankLines(path)
		total += n
		return err
	})
	return total, err
}

func nonBlankLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	n := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	return n, sc.Err()
}
