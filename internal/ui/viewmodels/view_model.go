package viewmodels

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"vistui/internal/binding"
	"vistui/internal/catalog"
	"vistui/internal/domain"
	"vistui/internal/eventbus"
	"vistui/internal/observable"
	"vistui/internal/selectable"
	"vistui/internal/widget/grid"
	"vistui/internal/widget/wizard"
)

// List names used in events and the UI
const (
	ListFiles  = "files"
	ListPieces = "pieces"
)

// Errors returned by the view model
var (
	ErrEmptyName   = errors.New("file name is empty")
	ErrNoFiles     = errors.New("add at least one file")
	ErrNoPieces    = errors.New("import at least one piece")
	ErrUnknownList = errors.New("unknown list")
)

// ViewModel owns the observable application state and the widgets bound
// to it
type ViewModel struct {
	Files  *selectable.FileList
	Pieces *selectable.PieceList
	Step   *observable.Value[int]

	FileGrid  *grid.Grid[domain.Row]
	PieceGrid *grid.Grid[domain.Row]
	Wizard    *wizard.Wizard

	bus       eventbus.EventBus
	newID     func() string
	lastStep  int
	disposers []func()
}

// Options configures a ViewModel
type Options struct {
	Catalog   []string // nil uses the built-in catalog
	Steps     []string
	StartStep int
	NewID     func() string // piece id generator, nil means random UUIDs
}

// NewViewModel creates the state, the widgets and the bindings between them
func NewViewModel(opts Options, bus eventbus.EventBus) *ViewModel {
	vm := &ViewModel{
		Files:  selectable.NewFileList(opts.Catalog),
		Pieces: selectable.NewPieceList(),
		Step:   observable.NewValue(opts.StartStep),
		bus:    bus,
		newID:  opts.NewID,
	}

	vm.FileGrid = grid.New("Files", []table.Column{
		{Title: "Filename", Width: 28},
	}, func(r domain.Row) []string {
		return []string{r.String(domain.KeyFilename)}
	})
	vm.PieceGrid = grid.New("Pieces", []table.Column{
		{Title: "Title", Width: 22},
		{Title: "Source", Width: 26},
	}, func(r domain.Row) []string {
		return []string{r.String(domain.KeyTitle), r.String(domain.KeySource)}
	})
	vm.Wizard = wizard.New(vm.buildSteps(opts.Steps)...)

	// Import runs on the widget's own transitions so a multi-step jump
	// has pieces before it reaches the pieces gate
	vm.disposers = append(vm.disposers, vm.Wizard.OnChanged(vm.onWizardMoved))

	vm.bind(binding.NewTableData[domain.Row](vm.FileGrid, vm.Files.Items), vm.Files.Items)
	vm.bind(binding.NewSelectedRows[domain.Row](vm.FileGrid, vm.Files.SelectedItems, domain.RowsEqual), vm.Files.SelectedItems)
	vm.bind(binding.NewTableData[domain.Row](vm.PieceGrid, vm.Pieces.Items), vm.Pieces.Items)
	vm.bind(binding.NewSelectedRows[domain.Row](vm.PieceGrid, vm.Pieces.SelectedItems, domain.RowsEqual), vm.Pieces.SelectedItems)
	vm.bind(binding.NewWizardStep(vm.Wizard, vm.Step).OnStall(vm.onStall), vm.Step)
	vm.lastStep = vm.Wizard.CurrentStep()

	vm.disposers = append(vm.disposers,
		// Reloading a grid drops its selection; write it back
		vm.Files.Items.Changed(vm.Files.Reselect),
		vm.Pieces.Items.Changed(vm.Pieces.Reselect),
		vm.Step.Subscribe(func(step int) {
			vm.bus.Publish(eventbus.StepChangedEvent{Step: step, Title: vm.Wizard.Title(step)})
		}),
		vm.Files.SelectedItems.Subscribe(func(rows []domain.Row) {
			vm.bus.Publish(eventbus.SelectionChangedEvent{List: ListFiles, Count: len(rows)})
		}),
		vm.Pieces.SelectedItems.Subscribe(func(rows []domain.Row) {
			vm.bus.Publish(eventbus.SelectionChangedEvent{List: ListPieces, Count: len(rows)})
		}),
	)
	return vm
}

func (vm *ViewModel) bind(h binding.Handler, target observable.Observer) {
	vm.disposers = append(vm.disposers, binding.Apply(h, target))
}

// buildSteps attaches the gates: the first step needs files, the second
// needs pieces
func (vm *ViewModel) buildSteps(titles []string) []wizard.Step {
	steps := make([]wizard.Step, len(titles))
	for i, title := range titles {
		steps[i] = wizard.Step{Title: title}
	}
	if len(steps) > 0 {
		steps[0].Validate = func() error {
			if vm.Files.Items.Len() == 0 {
				return ErrNoFiles
			}
			return nil
		}
	}
	if len(steps) > 1 {
		steps[1].Validate = func() error {
			if vm.Pieces.Items.Len() == 0 {
				return ErrNoPieces
			}
			return nil
		}
	}
	return steps
}

func (vm *ViewModel) onWizardMoved() {
	cur := vm.Wizard.CurrentStep()
	if vm.lastStep == 0 && cur == 1 {
		vm.ImportPieces()
	}
	vm.lastStep = cur
}

func (vm *ViewModel) onStall(want, got int) {
	reason := "out of range"
	if err := vm.Wizard.Err(); err != nil {
		reason = err.Error()
	}
	vm.bus.Publish(eventbus.StepRefusedEvent{Requested: want, Reached: got, Reason: reason})
}

// List returns the collection for a list name
func (vm *ViewModel) List(name string) (*selectable.Collection[domain.Row], error) {
	switch name {
	case ListFiles:
		return vm.Files, nil
	case ListPieces:
		return vm.Pieces, nil
	}
	return nil, ErrUnknownList
}

// Grid returns the widget for a list name
func (vm *ViewModel) Grid(name string) (*grid.Grid[domain.Row], error) {
	switch name {
	case ListFiles:
		return vm.FileGrid, nil
	case ListPieces:
		return vm.PieceGrid, nil
	}
	return nil, ErrUnknownList
}

// RemoveSelected deletes the selected rows of a list
func (vm *ViewModel) RemoveSelected(name string) ([]domain.Row, error) {
	list, err := vm.List(name)
	if err != nil {
		return nil, err
	}
	removed := list.RemoveSelected()
	if len(removed) > 0 {
		vm.bus.Publish(eventbus.RowsRemovedEvent{List: name, Rows: removed})
	}
	return removed, nil
}

// AddFile appends a file to the file list
func (vm *ViewModel) AddFile(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	row := domain.NewFileRow(name)
	vm.Files.Items.Append(row)
	vm.bus.Publish(eventbus.RowsAddedEvent{List: ListFiles, Rows: []domain.Row{row}})
	return nil
}

// ImportPieces adds a piece for every selected file, or for every file
// when nothing is selected. Files already imported are skipped.
func (vm *ViewModel) ImportPieces() int {
	files := vm.Files.SelectedItems.Get()
	if len(files) == 0 {
		files = vm.Files.Items.Get()
	}
	pieces := catalog.PiecesFromFiles(files, vm.Pieces.Items.Get(), vm.newID)
	if len(pieces) == 0 {
		return 0
	}
	vm.Pieces.Items.Append(pieces...)
	vm.bus.Publish(eventbus.PiecesImportedEvent{Count: len(pieces)})
	return len(pieces)
}

// RequestStep asks the wizard to move to step
func (vm *ViewModel) RequestStep(step int) {
	vm.Step.Set(step)
}

// Dispose detaches every binding and subscription
func (vm *ViewModel) Dispose() {
	for i := len(vm.disposers) - 1; i >= 0; i-- {
		vm.disposers[i]()
	}
	vm.disposers = nil
}
