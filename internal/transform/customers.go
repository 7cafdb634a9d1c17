package transform

import (
	"sort"
	"time"

	"matchday/internal/model"
)

// DedupCustomers groups staging rows by their raw natural key, discards
// rows with no key, and keeps the earliest-loaded row per key (load
// timestamp ascending, then sequence number). Output is ordered by key.
func DedupCustomers(rows []model.RawCustomer) []model.RawCustomer {
	best := make(map[string]model.RawCustomer)
	for _, r := range rows {
		if !r.CustomerID.Valid {
			continue
		}
		key := r.CustomerID.String
		cur, ok := best[key]
		if !ok || loadedEarlier(r.LoadedAt, r.RowID, cur.LoadedAt, cur.RowID) {
			best[key] = r
		}
	}

	keys := make([]string, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]model.RawCustomer, 0, len(best))
	for _, k := range keys {
		out = append(out, best[k])
	}
	return out
}

// loadedEarlier orders two staging rows by (load timestamp, sequence number).
func loadedEarlier(aLoaded time.Time, aRow int64, bLoaded time.Time, bRow int64) bool {
	if !aLoaded.Equal(bLoaded) {
		return aLoaded.Before(bLoaded)
	}
	return aRow < bRow
}

// NormalizeCustomer applies the per-field cleaning rules to one
// representative staging row. The natural key is carried verbatim; the
// display name is trimmed and lowercased like every other text attribute,
// a quirk of the source pipeline that downstream consumers rely on.
// No field failure ever rejects the row: age and signup date fall back to
// absent when they fail to parse.
func NormalizeCustomer(r model.RawCustomer) model.Customer {
	return model.Customer{
		ID:             r.CustomerID.String,
		Name:           lowerTrim(r.Name.Or(model.UnknownName)),
		Email:          lowerTrimPtr(r.Email),
		Age:            parseIntPtr(r.Age),
		City:           lowerTrimPtr(r.City),
		Country:        verbatimPtr(r.Country),
		FavoriteTeam:   lowerTrimPtr(r.FavoriteTeam),
		MembershipTier: lowerTrimPtr(r.MembershipTier),
		SignupDate:     parseDatePtr(r.SignupDate),
	}
}

// BuildCustomers produces the customer dimension from staging rows.
func BuildCustomers(rows []model.RawCustomer) []model.Customer {
	deduped := DedupCustomers(rows)
	out := make([]model.Customer, 0, len(deduped))
	for _, r := range deduped {
		out = append(out, NormalizeCustomer(r))
	}
	return out
}
