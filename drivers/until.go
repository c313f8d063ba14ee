package drivers

import "github.com/reusee/rulegen/rules"

// Until reports whether the driver should stop after emitting n.
type Until func(n uint64) bool

// UntilAllMatched stops at the first n satisfied by every rule.
func UntilAllMatched(rs rules.Rules) Until {
	return func(n uint64) bool {
		return rs.AllMatch(n)
	}
}

func UntilLimit(limit uint64) Until {
	return func(n uint64) bool {
		return n >= limit
	}
}

func Either(untils ...Until) Until {
	return func(n uint64) bool {
		for _, until := range untils {
			if until(n) {
				return true
			}
		}
		return false
	}
}
