// Package catalog loads puzzle packs written in CUE.
//
// A pack is a directory of .cue files declaring puzzles under a top-level
// "puzzle" struct:
//
//	puzzle: easy1: {
//		size:   4
//		givens: "1230341221434321"
//		note:   "one cell left"
//	}
//
// An optional "solution" field is validated as a complete, consistent
// board of the same size. Every loaded puzzle is validated through the
// board package before it is returned.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/roach88/sudologue/internal/board"
)

// LoadMode controls how errors are handled during pack loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// Puzzle is one validated entry of a pack.
type Puzzle struct {
	Name     string
	Size     int
	Givens   string
	Solution string // empty when the pack does not provide one
	Note     string
	Board    *board.Board
}

// LoadResult contains the puzzles loaded from a pack directory.
type LoadResult struct {
	Puzzles   []Puzzle
	FileCount int // number of CUE files found
}

// LoadError represents an error that occurred during pack loading.
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

// Error code constants.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No CUE files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed

	// Puzzle validation errors
	ErrCodePuzzleField     = "E101" // Missing or mistyped puzzle field
	ErrCodePuzzleInvalid   = "E102" // Givens fail board validation
	ErrCodeSolutionInvalid = "E103" // Solution fails board validation
)

// Load loads and validates puzzles from a pack directory.
// If mode is LoadModeFailFast, returns on first error.
// If mode is LoadModeCollectAll, collects all errors.
// Puzzles are returned sorted by name.
func Load(dir string, mode LoadMode) (*LoadResult, []error) {
	var errs []error

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("pack directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing pack directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	result := &LoadResult{FileCount: len(cueFiles)}

	puzzlesVal := value.LookupPath(cue.ParsePath("puzzle"))
	if !puzzlesVal.Exists() {
		return result, []error{&LoadError{Code: ErrCodeGeneric, Message: "no puzzle declarations found in pack"}}
	}

	iter, iterErr := puzzlesVal.Fields()
	if iterErr != nil {
		return result, []error{&LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating puzzles: %v", iterErr)}}
	}

	for iter.Next() {
		puzzle, loadErr := decodePuzzle(iter.Label(), iter.Value())
		if loadErr != nil {
			errs = append(errs, loadErr)
			if mode == LoadModeFailFast {
				return result, errs
			}
			continue
		}
		result.Puzzles = append(result.Puzzles, *puzzle)
	}

	sort.Slice(result.Puzzles, func(i, j int) bool {
		return result.Puzzles[i].Name < result.Puzzles[j].Name
	})

	if len(result.Puzzles) == 0 && len(errs) == 0 {
		errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: "no puzzles found in pack"})
	}

	return result, errs
}

// decodePuzzle extracts and validates one puzzle entry.
func decodePuzzle(name string, v cue.Value) (*Puzzle, *LoadError) {
	sizeVal := v.LookupPath(cue.ParsePath("size"))
	if !sizeVal.Exists() {
		return nil, &LoadError{Code: ErrCodePuzzleField, Message: fmt.Sprintf("puzzle %q: missing size", name), Pos: v.Pos()}
	}
	size, err := sizeVal.Int64()
	if err != nil {
		return nil, &LoadError{Code: ErrCodePuzzleField, Message: fmt.Sprintf("puzzle %q: size: %v", name, err), Pos: sizeVal.Pos()}
	}

	givensVal := v.LookupPath(cue.ParsePath("givens"))
	if !givensVal.Exists() {
		return nil, &LoadError{Code: ErrCodePuzzleField, Message: fmt.Sprintf("puzzle %q: missing givens", name), Pos: v.Pos()}
	}
	givens, err := givensVal.String()
	if err != nil {
		return nil, &LoadError{Code: ErrCodePuzzleField, Message: fmt.Sprintf("puzzle %q: givens: %v", name, err), Pos: givensVal.Pos()}
	}

	b, err := board.Parse(givens, int(size))
	if err != nil {
		return nil, &LoadError{Code: ErrCodePuzzleInvalid, Message: fmt.Sprintf("puzzle %q: %v", name, err), Pos: givensVal.Pos()}
	}

	puzzle := &Puzzle{Name: name, Size: int(size), Givens: givens, Board: b}

	if noteVal := v.LookupPath(cue.ParsePath("note")); noteVal.Exists() {
		note, err := noteVal.String()
		if err != nil {
			return nil, &LoadError{Code: ErrCodePuzzleField, Message: fmt.Sprintf("puzzle %q: note: %v", name, err), Pos: noteVal.Pos()}
		}
		puzzle.Note = note
	}

	if solVal := v.LookupPath(cue.ParsePath("solution")); solVal.Exists() {
		solution, err := solVal.String()
		if err != nil {
			return nil, &LoadError{Code: ErrCodePuzzleField, Message: fmt.Sprintf("puzzle %q: solution: %v", name, err), Pos: solVal.Pos()}
		}
		solved, err := board.Parse(solution, int(size))
		if err != nil {
			return nil, &LoadError{Code: ErrCodeSolutionInvalid, Message: fmt.Sprintf("puzzle %q: solution: %v", name, err), Pos: solVal.Pos()}
		}
		if !solved.IsComplete() {
			return nil, &LoadError{Code: ErrCodeSolutionInvalid, Message: fmt.Sprintf("puzzle %q: solution has empty cells", name), Pos: solVal.Pos()}
		}
		puzzle.Solution = solution
	}

	return puzzle, nil
}

// findCUEFiles walks the directory and returns all .cue file paths.
func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
