package selectable

import "vistui/internal/domain"

// FileList is the list of score files offered for analysis
type FileList = Collection[domain.Row]

// PieceList is the list of pieces imported from files
type PieceList = Collection[domain.Row]

// DefaultCatalog is the file list shown when no catalog is configured
var DefaultCatalog = []string{
	"bwv77.mxl",
	"Jos2308.krn",
	"Kyrie.krn",
	"madrigal51.mxl",
	"prolationum-sanctus.midi",
	"Sanctus.krn",
}

// NewFileList creates a file list seeded with one row per filename.
// A nil catalog uses DefaultCatalog.
func NewFileList(catalog []string) *FileList {
	if catalog == nil {
		catalog = DefaultCatalog
	}
	rows := make([]domain.Row, 0, len(catalog))
	for _, name := range catalog {
		rows = append(rows, domain.NewFileRow(name))
	}
	return New(domain.RowsEqual, rows...)
}

// NewPieceList creates an empty piece list
func NewPieceList() *PieceList {
	return New(domain.RowsEqual)
}
