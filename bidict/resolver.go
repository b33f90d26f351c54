package bidict

// dedup is the outcome of classifying a candidate item against the map.
// keySlot/valSlot name the records to evict (0 = none); skip means the
// insertion must not change anything.
type dedup struct {
	keySlot int
	valSlot int
	skip    bool
}

// resolve classifies k→v. Key collisions are detected before value
// collisions. It never mutates the map.
func resolve[K, V comparable](c *core[K, V], k K, v V, od OnDup) (dedup, error) {
	ki, dupKey := c.fwd[k]
	vi, dupVal := c.inv[v]

	switch {
	case dupKey && dupVal:
		if ki == vi {
			// k→v is already present: nothing to do, position unchanged.
			return dedup{skip: true}, nil
		}
		return decide(od.KV, dedup{keySlot: ki, valSlot: vi}, DupKeyAndValue, k, v)
	case dupKey:
		return decide(od.Key, dedup{keySlot: ki}, DupKey, k, v)
	case dupVal:
		return decide(od.Val, dedup{valSlot: vi}, DupValue, k, v)
	}
	return dedup{}, nil
}

func decide(act OnDupAction, d dedup, kind DupKind, k, v any) (dedup, error) {
	switch act {
	case Overwrite:
		return d, nil
	case DropNew:
		return dedup{skip: true}, nil
	default:
		return dedup{}, &DuplicationError{Kind: kind, Key: k, Value: v}
	}
}
