package relay

import (
	"context"
	"time"

	"github.com/tarancss/selene/lib/helius/types"
	"github.com/tarancss/selene/lib/store"
	"github.com/tarancss/selene/lib/util"
)

// SystemProgram is never looked up.
const SystemProgram = "11111111111111111111111111111111"

// AccountName is an account and its display name. Name equals Address for accounts without a domain name.
type AccountName struct {
	Address string
	Name    string
}

// Named reports whether the account has a name other than its address.
func (a AccountName) Named() bool {
	return a.Address != a.Name
}

// String returns "address=name", or "" when the account has no name.
func (a AccountName) String() string {
	if !a.Named() {
		return ""
	}

	return a.Address + "=" + a.Name
}

// accounts returns the accounts involved in txs, system program excluded, in order of first appearance.
func accounts(txs []types.EnhancedTransaction) []string {
	var addrs []string

	for _, tx := range txs {
		for _, a := range tx.AccountData {
			if a.Account != SystemProgram && a.Account != "" {
				addrs = append(addrs, a.Account)
			}
		}
	}

	return util.Unique(addrs)
}

// resolve names the accounts of txs, from the cache or else from the provider.
func (r *Relay) resolve(ctx context.Context, txs []types.EnhancedTransaction) []AccountName {
	addrs := accounts(txs)
	names := make([]AccountName, 0, len(addrs))

	for _, addr := range addrs {
		name, ok := r.cache.Get(addr)
		if !ok {
			name, ok = r.cache.Resolve(addr, func() string { return r.lookup(ctx, addr) })
		}

		if ok {
			r.m.hits.Inc()
		} else {
			r.m.misses.Inc()
		}

		names = append(names, AccountName{Address: addr, Name: name})
	}

	return names
}

// lookup asks the provider for the first domain name of addr. On failure the address is its own name, and it is
// not persisted.
func (r *Relay) lookup(ctx context.Context, addr string) string {
	r.log.Debug().Str("account", addr).Msg("looking name for account")

	res, err := r.names.GetNames(ctx, addr)
	if err != nil {
		r.log.Error().Err(err).Str("account", addr).Msg("failed getting name for account")

		return addr
	}

	name := addr
	if len(res.DomainNames) > 0 && res.DomainNames[0] != "" {
		name = res.DomainNames[0]
	}

	if r.db != nil {
		n := store.Name{Address: addr, Name: name, Updated: time.Now().UTC()}
		if err = r.db.SaveName(ctx, n); err != nil {
			r.log.Error().Err(err).Str("account", addr).Msg("failed saving name")
		}
	}

	return name
}
