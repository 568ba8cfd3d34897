package machine

import "strings"

// FrameModel owns the Global Frame (lifetime = process), the Temporary
// Frame (defined/undefined across CREATEFRAME/PUSHFRAME/POPFRAME), and the
// stack of Local Frames. It is the sole authority variable operands
// resolve through; nothing caches a *Variable across instructions, because
// CREATEFRAME/PUSHFRAME/POPFRAME may swap what LF/TF refer to between
// reads.
type FrameModel struct {
	global    *Frame
	temporary *Frame // nil when undefined
	locals    []*Frame

	maxInitialized int
}

// NewFrameModel returns a model with a fresh, empty Global Frame.
func NewFrameModel() *FrameModel {
	return &FrameModel{global: NewFrame()}
}

// splitName splits a "PREFIX@ident" variable name into its frame prefix and
// identifier.
func splitName(qname string) (prefix, ident string, err error) {
	pre, id, ok := strings.Cut(qname, "@")
	if !ok {
		return "", "", errSemantic("malformed variable name %q", qname)
	}
	return pre, id, nil
}

// frame resolves a frame prefix (GF, LF, TF) to the concrete Frame it
// currently names.
func (fm *FrameModel) frame(prefix string) (*Frame, error) {
	switch prefix {
	case "GF":
		return fm.global, nil
	case "LF":
		if len(fm.locals) == 0 {
			return nil, errInvalidFrame("no local frame is active")
		}
		return fm.locals[len(fm.locals)-1], nil
	case "TF":
		if fm.temporary == nil {
			return nil, errInvalidFrame("temporary frame is undefined")
		}
		return fm.temporary, nil
	default:
		return nil, errInvalidFrame("unknown frame prefix %q", prefix)
	}
}

// Defvar declares a new variable named "PREFIX@ident".
func (fm *FrameModel) Defvar(qname string) error {
	prefix, ident, err := splitName(qname)
	if err != nil {
		return err
	}
	fr, err := fm.frame(prefix)
	if err != nil {
		return err
	}
	return fr.Declare(ident)
}

// Lookup resolves "PREFIX@ident" to its live *Variable, freshly, every call.
func (fm *FrameModel) Lookup(qname string) (*Variable, error) {
	prefix, ident, err := splitName(qname)
	if err != nil {
		return nil, err
	}
	fr, err := fm.frame(prefix)
	if err != nil {
		return nil, err
	}
	return fr.Lookup(ident)
}

// CreateFrame resets TF to a new, empty frame (CREATEFRAME).
func (fm *FrameModel) CreateFrame() {
	fm.temporary = NewFrame()
}

// PushFrame moves TF onto the local frame stack and marks TF undefined
// (PUSHFRAME). TF must be defined.
func (fm *FrameModel) PushFrame() error {
	if fm.temporary == nil {
		return errInvalidFrame("temporary frame is undefined")
	}
	fm.locals = append(fm.locals, fm.temporary)
	fm.temporary = nil
	return nil
}

// PopFrame pops the top local frame into TF (POPFRAME). The local frame
// stack must be non-empty.
func (fm *FrameModel) PopFrame() error {
	if len(fm.locals) == 0 {
		return errInvalidFrame("local frame stack is empty")
	}
	n := len(fm.locals) - 1
	fm.temporary = fm.locals[n]
	fm.locals = fm.locals[:n]
	return nil
}

// UpdateMaxInitialized recomputes the count of initialized variables across
// every live frame (GF, TF if defined, and every LF) and folds it into the
// running maximum.
func (fm *FrameModel) UpdateMaxInitialized() {
	n := fm.global.CountInitialized()
	if fm.temporary != nil {
		n += fm.temporary.CountInitialized()
	}
	for _, lf := range fm.locals {
		n += lf.CountInitialized()
	}
	if n > fm.maxInitialized {
		fm.maxInitialized = n
	}
}

// MaxInitialized returns the running maximum tracked by UpdateMaxInitialized.
func (fm *FrameModel) MaxInitialized() int { return fm.maxInitialized }
