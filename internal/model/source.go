package model

// Path represents a file system path.
type Path string

// ReportFile represents a mutation report discovered on disk.
type ReportFile struct {
	ShortPath Path
	FullPath  Path
}
