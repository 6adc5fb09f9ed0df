// Package program reads client-side program packages: a directory holding a
// program.json manifest next to the program source. deploy ships the source
// to the node, and `node start --path` sources its account key from the
// manifest's development section.
package program

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"

	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/signing"
)

const (
	// ManifestFilename sits at the root of every program directory.
	ManifestFilename = "program.json"
	// SourceFilename holds the program text that deploy ships to the node.
	SourceFilename = "main.sling"

	schemaFile = "manifest.schema.json"
)

var (
	// ErrNotDirectory is returned when the given path is not a directory.
	ErrNotDirectory = errors.New("not a program directory")
	// ErrNoDevelopmentKey is returned when a manifest operation needs the
	// development account but the manifest does not carry one.
	ErrNoDevelopmentKey = errors.New("manifest carries no development key")

	functionNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// Manifest mirrors program.json.
type Manifest struct {
	Program     string      `json:"program"`
	Version     string      `json:"version"`
	Description string      `json:"description,omitempty"`
	Development Development `json:"development"`
	License     string      `json:"license,omitempty"`
}

// Development is the throwaway account baked into a development package.
type Development struct {
	PrivateKey string `json:"private_key"`
	Address    string `json:"address,omitempty"`
}

// ValidateManifest checks raw manifest data against the manifest schema.
func ValidateManifest(data []byte) error {
	sch, err := jsonschema.CompileString(schemaFile, Schema)
	if err != nil {
		return fmt.Errorf("compile manifest json schema: %w", err)
	}
	var v any
	if err = json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal manifest data: %w", err)
	}
	if err = sch.Validate(v); err != nil {
		return fmt.Errorf("validate manifest data: %w", err)
	}
	return nil
}

// Package is a loaded program directory.
type Package struct {
	dir      string
	manifest Manifest
	source   []byte
}

// Open reads the program package at dir and validates its manifest.
func Open(fs afero.Fs, dir string) (*Package, error) {
	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("stat %v: %w", dir, err)
	}
	if !exists {
		return nil, fmt.Errorf("%v: %w", dir, ErrNotDirectory)
	}
	data, err := afero.ReadFile(fs, filepath.Join(dir, ManifestFilename))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ManifestFilename, err)
	}
	if err = ValidateManifest(data); err != nil {
		return nil, err
	}
	var m Manifest
	if err = json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", ManifestFilename, err)
	}
	if err = types.ProgramID(m.Program).Validate(); err != nil {
		return nil, err
	}
	source, err := afero.ReadFile(fs, filepath.Join(dir, SourceFilename))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", SourceFilename, err)
	}
	if len(bytes.TrimSpace(source)) == 0 {
		return nil, fmt.Errorf("%s is empty", SourceFilename)
	}
	return &Package{dir: dir, manifest: m, source: source}, nil
}

// Dir returns the directory the package was opened from.
func (p *Package) Dir() string {
	return p.dir
}

// Manifest returns the decoded program.json.
func (p *Package) Manifest() Manifest {
	return p.manifest
}

// ID returns the manifest-declared program id.
func (p *Package) ID() types.ProgramID {
	return types.ProgramID(p.manifest.Program)
}

// Source returns the program text.
func (p *Package) Source() []byte {
	return p.source
}

// Functions returns the function names declared in the package source.
func (p *Package) Functions() []string {
	return Functions(p.source)
}

// PrivateKey parses the development private key out of the manifest.
func (p *Package) PrivateKey() (signing.PrivateKey, error) {
	if p.manifest.Development.PrivateKey == "" {
		return nil, ErrNoDevelopmentKey
	}
	key, err := signing.HexToPrivateKey(p.manifest.Development.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("development key: %w", err)
	}
	return key, nil
}

// ValidFunctionName reports whether name is a well formed function name:
// lowercase letters, digits and underscores, starting with a letter.
func ValidFunctionName(name string) bool {
	return functionNameRe.MatchString(name)
}

// Functions lexically scans program text for `function <name>:` declarations.
// The node indexes these names to validate execute requests; nothing here
// evaluates a function body.
func Functions(source []byte) []string {
	var (
		names []string
		seen  = make(map[string]struct{})
	)
	scanner := bufio.NewScanner(bytes.NewReader(source))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		rest, found := strings.CutPrefix(line, "function ")
		if !found {
			continue
		}
		name, found := strings.CutSuffix(strings.TrimSpace(rest), ":")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		if !functionNameRe.MatchString(name) {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
