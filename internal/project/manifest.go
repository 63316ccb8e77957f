package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"cidl/internal/cpp"
	"cidl/internal/types"
)

// Manifest is a decoded cidl.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the cidl.toml layout.
type Config struct {
	Library LibraryConfig `toml:"library"`
	Output  OutputConfig  `toml:"output"`
	ABI     ABIConfig     `toml:"abi"`
	Policy  PolicyConfig  `toml:"policy"`
}

type LibraryConfig struct {
	Name  string `toml:"name"`
	Input string `toml:"input"`
}

type OutputConfig struct {
	Dir       string `toml:"dir"`
	Indent    string `toml:"indent"`
	HeaderExt string `toml:"header_ext"`
}

type ABIConfig struct {
	Namespace         string `toml:"namespace"`
	DispatchRoot      string `toml:"dispatch_root"`
	CallingConvention string `toml:"calling_convention"`
	BoolType          string `toml:"bool_type"`
	Guard             string `toml:"guard"`
}

type PolicyConfig struct {
	UnknownScalar string `toml:"unknown_scalar"`
	Duplicates    string `toml:"duplicates"`
}

// Load finds cidl.toml upward from startDir and decodes it.
// ok is false when no manifest exists.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := LoadFile(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// LoadFile decodes and validates the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	cfg, err := loadConfig(abs)
	if err != nil {
		return nil, err
	}
	return &Manifest{
		Path:   abs,
		Root:   filepath.Dir(abs),
		Config: cfg,
	}, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if !meta.IsDefined("library") {
		return Config{}, fmt.Errorf("%s: missing [library]", path)
	}
	if !meta.IsDefined("library", "input") || strings.TrimSpace(cfg.Library.Input) == "" {
		return Config{}, fmt.Errorf("%s: missing [library].input", path)
	}
	if strings.TrimSpace(cfg.Output.Indent) != "" {
		return Config{}, fmt.Errorf("%s: [output].indent must contain only spaces or tabs", path)
	}
	if ext := cfg.Output.HeaderExt; ext != "" && !strings.HasPrefix(ext, ".") {
		return Config{}, fmt.Errorf("%s: [output].header_ext must start with '.'", path)
	}
	if _, err := types.ParseScalarPolicy(cfg.Policy.UnknownScalar); err != nil {
		return Config{}, fmt.Errorf("%s: [policy].unknown_scalar: %w", path, err)
	}
	if _, err := types.ParseDuplicatePolicy(cfg.Policy.Duplicates); err != nil {
		return Config{}, fmt.Errorf("%s: [policy].duplicates: %w", path, err)
	}
	return cfg, nil
}

// InputPath resolves [library].input against the manifest directory.
func (m *Manifest) InputPath() string {
	return m.resolve(m.Config.Library.Input)
}

// OutputDir resolves [output].dir against the manifest directory.
// An empty dir means the manifest directory itself.
func (m *Manifest) OutputDir() string {
	return m.resolve(m.Config.Output.Dir)
}

func (m *Manifest) resolve(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return m.Root
	}
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, p)
}

// HeaderOptions converts [abi] to emitter options. Empty values keep the
// emitter defaults.
func (c Config) HeaderOptions() cpp.Options {
	return cpp.Options{
		Guard:             c.ABI.Guard,
		Namespace:         c.ABI.Namespace,
		DispatchRoot:      c.ABI.DispatchRoot,
		CallingConvention: c.ABI.CallingConvention,
		BoolType:          c.ABI.BoolType,
	}
}

// Policies returns the decoded [policy] values. Load has already validated them.
func (c Config) Policies() (types.ScalarPolicy, types.DuplicatePolicy) {
	scalars, _ := types.ParseScalarPolicy(c.Policy.UnknownScalar)
	dups, _ := types.ParseDuplicatePolicy(c.Policy.Duplicates)
	return scalars, dups
}
