package transport

import (
	"context"

	"github.com/goodnatureofminers/cardanopulse-backend/internal/service/dailypost"
	"github.com/goodnatureofminers/cardanopulse-backend/internal/snapshot"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PulseService interface {
		Refresh(ctx context.Context) (dailypost.Report, error)
		Preview(ctx context.Context) (dailypost.Report, error)
		PostNow(ctx context.Context) (dailypost.Published, error)
		History(ctx context.Context, days int) ([]snapshot.Snapshot, error)
		CacheInfo(ctx context.Context) (snapshot.CacheInfo, error)
	}
	Scheduler interface {
		Start(ctx context.Context) bool
		Stop() bool
		Running() bool
	}
)
