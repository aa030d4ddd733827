package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/nanocorp/wiring/internal/compiler"
	"github.com/nanocorp/wiring/internal/dsl"
	"github.com/nanocorp/wiring/internal/wire"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeReadError   = "E002" // File read error
	ErrCodeUnsupported = "E003" // Unsupported circuit file type
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed
	ErrCodeWriteFailed = "E007" // File write error

	// Circuit definition errors
	ErrCodeParseError   = "E101" // Definition line parse error
	ErrCodeCompileError = "E102" // CUE circuit compile error
	ErrCodeStoreError   = "E103" // Duplicate or unknown wire id
	ErrCodeLoopError    = "E104" // Dependency cycle
)

// LoadError represents an error that occurred during circuit loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadCircuitFile loads wire definitions from a circuit file.
//
// Two formats are supported, selected by extension:
//   - .txt: one definition line per wire ("123 -> x", "x AND y -> d")
//   - .cue: a structured circuit value under the top-level "circuit" field
//
// A directory is loaded as a CUE package (all .cue files combined).
func LoadCircuitFile(path string) ([]wire.Wire, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("circuit file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing circuit file: %v", err)}
	}

	if info.IsDir() {
		return loadCUEDir(path)
	}

	switch filepath.Ext(path) {
	case ".txt":
		return loadDefinitionLines(path)
	case ".cue":
		return loadCUEFile(path)
	default:
		return nil, &LoadError{
			Code:    ErrCodeUnsupported,
			Message: fmt.Sprintf("unsupported circuit file %s: expected .txt or .cue", path),
		}
	}
}

// loadDefinitionLines parses a text circuit file in definition-line form.
func loadDefinitionLines(path string) ([]wire.Wire, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadError, Message: fmt.Sprintf("error reading %s: %v", path, err)}
	}
	defer f.Close()

	wires, err := dsl.ParseReader(f)
	if err != nil {
		var pe *dsl.ParseError
		if errors.As(err, &pe) {
			return nil, &LoadError{
				Code:    ErrCodeParseError,
				Message: fmt.Sprintf("%s:%d: %s", path, pe.Line, pe.Message),
			}
		}
		return nil, &LoadError{Code: ErrCodeParseError, Message: fmt.Sprintf("%s: %v", path, err)}
	}
	return wires, nil
}

// loadCUEFile compiles a single CUE file into wires.
func loadCUEFile(path string) ([]wire.Wire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadError, Message: fmt.Sprintf("error reading %s: %v", path, err)}
	}

	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}
	}

	return compileCircuitValue(value)
}

// loadCUEDir loads every .cue file in a directory as one CUE instance.
func loadCUEDir(dir string) ([]wire.Wire, error) {
	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}
	}

	return compileCircuitValue(value)
}

func compileCircuitValue(value cue.Value) ([]wire.Wire, error) {
	circuitVal := value.LookupPath(cue.ParsePath("circuit"))
	if !circuitVal.Exists() {
		return nil, &LoadError{Code: ErrCodeCompileError, Message: "no top-level circuit field found"}
	}

	wires, err := compiler.CompileCircuit(circuitVal)
	if err != nil {
		var ce *compiler.CompileError
		if errors.As(err, &ce) {
			return nil, &LoadError{Code: ErrCodeCompileError, Message: fmt.Sprintf("%s: %s", ce.Field, ce.Message), Pos: ce.Pos}
		}
		return nil, &LoadError{Code: ErrCodeCompileError, Message: err.Error()}
	}
	return wires, nil
}
