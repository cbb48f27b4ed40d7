package combo

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/tagmoji/internal/emoji"
	"github.com/jask/tagmoji/internal/selection"
	"github.com/jask/tagmoji/internal/textbuf"
)

const DefaultPlaceholder = "Add item..."

type Options struct {
	InitialItems []string
	// Placeholder is shown while nothing is selected. Blank means
	// DefaultPlaceholder.
	Placeholder string
	// SimilarDistance bounds the near-duplicate hint; 0 disables it.
	SimilarDistance int
	Catalog         *emoji.Catalog
	Keys            *KeyRegistry
	// Scheduler and Cursor restore the host control's cursor after an emoji
	// insertion. Without Cursor no restore is scheduled.
	Scheduler Scheduler
	Cursor    func(pos int)
	Logger    *log.Logger
}

// Session is one tag input. Events arrive one at a time from the view layer;
// it is not safe for concurrent use.
type Session struct {
	id          string
	live        bool
	store       *selection.Store
	picker      *emoji.Picker
	buf         *textbuf.Buffer
	listOpen    bool
	placeholder string
	similar     int
	keys        *KeyRegistry
	sched       Scheduler
	cursor      func(int)
	log         *log.Logger
}

// Snapshot is everything the view renders from. Slices are copies.
type Snapshot struct {
	Items      []string
	Selected   []string
	Value      string
	Cursor     textbuf.Range
	ListOpen   bool
	PickerOpen bool
	FilterText string
	Emojis     []string
	// Placeholder is empty once something is selected.
	Placeholder string
	// Similar lists catalog items close to the current text.
	Similar []string
	// Scope is the key scope currently routing keyboard input.
	Scope string
}

func New(opts Options) (*Session, error) {
	if opts.SimilarDistance < 0 {
		return nil, fmt.Errorf("similar distance %d is negative", opts.SimilarDistance)
	}
	s := &Session{
		id:          uuid.NewString(),
		live:        true,
		store:       selection.New(opts.InitialItems),
		picker:      emoji.NewPicker(opts.Catalog),
		buf:         textbuf.New(""),
		placeholder: opts.Placeholder,
		similar:     opts.SimilarDistance,
		keys:        opts.Keys,
		sched:       opts.Scheduler,
		cursor:      opts.Cursor,
		log:         opts.Logger,
	}
	if strings.TrimSpace(s.placeholder) == "" {
		s.placeholder = DefaultPlaceholder
	}
	if s.keys == nil {
		s.keys = DefaultKeyRegistry()
	}
	if s.sched == nil {
		s.sched = &Queue{}
	}
	if s.log == nil {
		s.log = log.New(io.Discard, "", 0)
	}
	s.logf("started with %d items", len(s.store.Items()))
	return s, nil
}

func (s *Session) Snapshot() (Snapshot, error) {
	if err := s.check("snapshot"); err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{
		Items:      s.store.Items(),
		Selected:   s.store.Selected(),
		Value:      s.buf.Value(),
		Cursor:     s.buf.Range(),
		ListOpen:   s.listOpen,
		PickerOpen: s.picker.IsOpen(),
		FilterText: s.picker.FilterText(),
		Emojis:     s.picker.Filtered(),
		Similar:    s.store.Similar(s.buf.Value(), s.similar),
		Scope:      s.scope(),
	}
	if len(snap.Selected) == 0 {
		snap.Placeholder = s.placeholder
	}
	return snap, nil
}

func (s *Session) scope() string {
	if s.picker.IsOpen() {
		return ScopeEmojiPicker
	}
	return ScopeInput
}

func (s *Session) check(op string) error {
	if s == nil || !s.live {
		return &LifecycleError{Op: op}
	}
	return nil
}

func (s *Session) logf(format string, args ...any) {
	s.log.Printf("session %s: "+format, append([]any{s.id}, args...)...)
}
