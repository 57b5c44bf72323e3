package mongodb

import (
	"context"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// MaxBatchSize - лимит мутаций в одной пакетной записи
const MaxBatchSize = 500

type batchCommitFunc func(ctx context.Context, ids []string) (int64, error)

// deleteInBatches - делит ids на пачки не больше batchSize и коммитит их параллельно.
// Атомарности между пачками нет: при ошибке уже закоммиченные пачки остаются удалёнными,
// возвращается число фактически удалённых документов и первая ошибка.
func deleteInBatches(ctx context.Context, ids []string, batchSize int, commit batchCommitFunc) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var (
		g       errgroup.Group
		deleted atomic.Int64
	)

	for chunk := range slices.Chunk(ids, batchSize) {
		g.Go(func() error {
			n, err := commit(ctx, chunk)
			deleted.Add(n)
			return err
		})
	}

	err := g.Wait()

	return deleted.Load(), err
}
