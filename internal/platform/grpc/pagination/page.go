// Package pagination normalizes page sizes for the list RPCs, such as the
// vault ledger and the token account listing.
package pagination

// PageSizeConfig sets the default and ceiling for a list RPC page size.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize resolves a requested page size against the config.
// Non-positive requests fall back to the default; oversized requests are
// capped at the max.
func ClampPageSize(value int32, cfg PageSizeConfig) int {
	pageSize := int(value)
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}
