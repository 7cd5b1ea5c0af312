package dailypost

import (
	"context"
	"time"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/snapshot"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/social"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Collector interface {
		Collect(ctx context.Context) (snapshot.Snapshot, error)
	}
	Cache interface {
		Get(ctx context.Context) (snapshot.Entry, error)
		Set(ctx context.Context, snap snapshot.Snapshot) (snapshot.Entry, error)
		Invalidate(ctx context.Context) error
		Info(ctx context.Context) (snapshot.CacheInfo, error)
	}
	History interface {
		InsertSnapshot(ctx context.Context, snap snapshot.Snapshot) error
		SnapshotsSince(ctx context.Context, network string, since time.Time) ([]snapshot.Snapshot, error)
	}
	Poster interface {
		Post(ctx context.Context, text string) (social.PostResult, error)
	}
	Metrics interface {
		ObserveCollect(err error, started time.Time)
		ObservePublish(err error)
		ObserveCache(hit bool)
	}
	Publisher interface {
		PostNow(ctx context.Context) (Published, error)
	}
)
