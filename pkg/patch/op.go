package patch

// Op is the kind of node-level operation a patch pass performed.
type Op uint8

const (
	OpSetText     Op = iota + 1 // text content replaced
	OpSyncAttrs                 // element attributes synchronized
	OpInsertChild               // new child adopted into the old tree
	OpRemoveChild               // stale child dropped
	OpReplaceChild              // child swapped for a different shape
	OpMorph                     // element rewritten for a tag change
	OpSkipOwned                 // component-owned subtree left alone
)

// String returns the string representation of the Op.
func (op Op) String() string {
	switch op {
	case OpSetText:
		return "SetText"
	case OpSyncAttrs:
		return "SyncAttrs"
	case OpInsertChild:
		return "InsertChild"
	case OpRemoveChild:
		return "RemoveChild"
	case OpReplaceChild:
		return "ReplaceChild"
	case OpMorph:
		return "Morph"
	case OpSkipOwned:
		return "SkipOwned"
	default:
		return "Unknown"
	}
}

// Observer receives one callback per node-level operation applied.
// tag is the element tag involved, or "" for text nodes.
type Observer func(op Op, tag string)
