// internal/routing/addressset.go
package routing

// DedupeAddresses returns the addresses with exact-string duplicates
// removed, preserving first-seen order. The input is never mutated.
//
// Equality is exact: no case folding, no trimming. Upstream sources that
// supply the same mailbox with different casing will produce two entries;
// that behavior is pending product-owner confirmation and must not be
// normalized here.
func DedupeAddresses(addresses []string) []string {
	seen := make(map[string]struct{}, len(addresses))
	out := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}
	return out
}
