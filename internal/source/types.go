package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, HTTP body).
	FileVirtual FileFlags = 1 << iota
)

// File captures metadata and content for a single source input.
// Content is read raw: no BOM stripping and no newline normalization, so
// the lexer sees exactly the bytes the author wrote.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags
}

// Virtual reports whether the file was added from memory rather than disk.
func (f *File) Virtual() bool { return f.Flags&FileVirtual != 0 }
