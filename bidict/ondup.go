package bidict

// OnDupAction says what to do when an insertion collides with existing items.
// The zero value means "use the default for this slot".
type OnDupAction uint8

const (
	// Raise rejects the insertion with a *DuplicationError.
	Raise OnDupAction = iota + 1
	// Overwrite evicts the colliding items, then inserts.
	Overwrite
	// DropNew keeps the existing items and silently ignores the new one.
	DropNew
)

func (a OnDupAction) String() string {
	switch a {
	case Raise:
		return "raise"
	case Overwrite:
		return "overwrite"
	case DropNew:
		return "drop_new"
	default:
		return "default"
	}
}

// OnDup is a duplication policy, one action per collision case.
//   - Key: the key is mapped to a different value, the value is free.
//   - Val: the value is mapped from a different key, the key is free.
//   - KV:  key and value each belong to a different existing item.
//     A zero KV follows Val.
//
// Re-putting an item that is already present is always a no-op.
type OnDup struct {
	Key OnDupAction
	Val OnDupAction
	KV  OnDupAction
}

var (
	// OnDupDefault overwrites on key collisions and rejects anything
	// that would silently drop another key. Used by Put.
	OnDupDefault = OnDup{Key: Overwrite, Val: Raise, KV: Raise}
	// OnDupRaise rejects every collision. Used by Add.
	OnDupRaise = OnDup{Key: Raise, Val: Raise, KV: Raise}
	// OnDupDropOld evicts whatever collides. Used by ForcePut.
	OnDupDropOld = OnDup{Key: Overwrite, Val: Overwrite, KV: Overwrite}
)

// normalize fills zero slots from OnDupDefault; a zero KV follows Val.
func (o OnDup) normalize() OnDup {
	if o.Key == 0 {
		o.Key = OnDupDefault.Key
	}
	if o.Val == 0 {
		o.Val = OnDupDefault.Val
	}
	if o.KV == 0 {
		o.KV = o.Val
	}
	return o
}

// swap exchanges the key and value actions for use through an inverse view.
func (o OnDup) swap() OnDup {
	o.Key, o.Val = o.Val, o.Key
	return o
}
