package node

// MergeBonuses pairs every on-chain record with at most one bonus sharing its
// public key. Records keep their input order. For each key, bonuses are handed
// out in input order and each one is used once, so a second record with the
// same key gets the next bonus for that key or none. Bonuses whose key matches
// no record are dropped. Neither input slice is modified.
func MergeBonuses(infos []OnChainDetail, bonuses []Bonus) []OnChainWithBonus {
	pending := make(map[string][]int, len(bonuses))
	for i := range bonuses {
		pk := bonuses[i].PublicKey
		pending[pk] = append(pending[pk], i)
	}

	merged := make([]OnChainWithBonus, 0, len(infos))
	for _, info := range infos {
		item := OnChainWithBonus{OnChainDetail: info}
		if queue := pending[info.PublicKey]; len(queue) > 0 {
			b := bonuses[queue[0]]
			item.Bonus = &b
			pending[info.PublicKey] = queue[1:]
		}
		merged = append(merged, item)
	}
	return merged
}
