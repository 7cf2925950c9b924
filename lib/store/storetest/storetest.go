// Package storetest holds the behaviour every store implementation must show, run by each implementation's tests.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarancss/selene/lib/helius/types"
	"github.com/tarancss/selene/lib/msg"
	"github.com/tarancss/selene/lib/store"
)

// Run exercises db, which must be empty.
func Run(t *testing.T, db store.DB) {
	t.Helper()

	ctx := context.Background()

	t.Run("names", func(t *testing.T) {
		ns, err := db.LoadNames(ctx)
		require.NoError(t, err)
		assert.Empty(t, ns)

		now := time.Now().UTC().Truncate(time.Millisecond)
		require.NoError(t, db.SaveName(ctx, store.Name{Address: "A", Name: "A", Updated: now}))
		require.NoError(t, db.SaveName(ctx, store.Name{Address: "B", Name: "bob.sol", Updated: now}))
		// upsert
		require.NoError(t, db.SaveName(ctx, store.Name{Address: "A", Name: "alice.sol", Updated: now.Add(time.Second)}))

		ns, err = db.LoadNames(ctx)
		require.NoError(t, err)
		require.Len(t, ns, 2)

		got := map[string]store.Name{}
		for _, n := range ns {
			got[n.Address] = n
		}

		assert.Equal(t, "alice.sol", got["A"].Name)
		assert.True(t, now.Add(time.Second).Equal(got["A"].Updated), got["A"].Updated)
		assert.Equal(t, "bob.sol", got["B"].Name)
	})

	t.Run("hooks", func(t *testing.T) {
		hs, err := db.GetHooks(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, hs)

		start := time.Now().UTC().Truncate(time.Millisecond)

		for i, sig := range []string{"s1", "s2", "s3"} {
			at := start.Add(time.Duration(i) * time.Millisecond)
			tx := types.EnhancedTransaction{
				Signature:   sig,
				Type:        types.TxTypeTransfer,
				Source:      types.SourceSystemProgram,
				Description: "transfer " + sig,
				Slot:        uint64(100 + i),
				Timestamp:   at.Unix(),
			}
			require.NoError(t, db.SaveHook(ctx, store.NewHook(msg.NewID(at), "batch", "mainnet", at, tx)))
		}

		hs, err = db.GetHooks(ctx, 2)
		require.NoError(t, err)
		require.Len(t, hs, 2)
		assert.Equal(t, "s3", hs[0].Signature)
		assert.Equal(t, "s2", hs[1].Signature)
		assert.Equal(t, types.TxTypeTransfer, hs[0].Type)
		assert.Equal(t, types.SourceSystemProgram, hs[0].Source)
		assert.Equal(t, uint64(102), hs[0].Slot)
		assert.Equal(t, "mainnet", hs[0].Net)
		assert.True(t, start.Add(2*time.Millisecond).Equal(hs[0].Received), hs[0].Received)

		hs, err = db.GetHooks(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, hs, 3)
	})
}
