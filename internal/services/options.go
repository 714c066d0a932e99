package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/camal/business-management/internal/app/catalog"
	"github.com/camal/business-management/internal/app/catalog/contracts"
	"github.com/camal/business-management/internal/app/catalog/domain"
	"github.com/camal/business-management/internal/app/catalog/repo"
	"github.com/camal/business-management/internal/config"
	"github.com/camal/business-management/internal/models/m_allop"
	"github.com/camal/business-management/internal/models/m_guard"
	"github.com/camal/business-management/internal/models/m_masson"
	"github.com/camal/business-management/internal/models/m_product"
	"github.com/camal/business-management/internal/models/m_testrecord"
	"github.com/camal/business-management/internal/pkg/clock"
	transport "github.com/camal/business-management/internal/transport/http"
)

// ServiceOptions holds all dependencies of the application.
type ServiceOptions struct {
	Router        *mux.Router
	SpannerClient *spanner.Client
}

// NewServiceOptions wires the full dependency graph: store, clock, one
// service per resource, and the HTTP router.
func NewServiceOptions(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*ServiceOptions, error) {
	opts := &ServiceOptions{}
	clk := clock.NewRealClock()

	var (
		productRepo contracts.Repository[domain.Product]
		testRepo    contracts.Repository[domain.TestRecord]
		allopRepo   contracts.Repository[domain.Allop]
		guardRepo   contracts.Repository[domain.Guard]
		massonRepo  contracts.Repository[domain.Masson]
	)

	switch cfg.Store {
	case config.StoreSpanner:
		client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
		if err != nil {
			return nil, fmt.Errorf("create spanner client: %w", err)
		}
		opts.SpannerClient = client
		productRepo = repo.NewSpannerRepo[domain.Product](client, m_product.Codec{}, clk)
		testRepo = repo.NewSpannerRepo[domain.TestRecord](client, m_testrecord.Codec{}, clk)
		allopRepo = repo.NewSpannerRepo[domain.Allop](client, m_allop.Codec{}, clk)
		guardRepo = repo.NewSpannerRepo[domain.Guard](client, m_guard.Codec{}, clk)
		massonRepo = repo.NewSpannerRepo[domain.Masson](client, m_masson.Codec{}, clk)
	case config.StoreMemory:
		productRepo = repo.NewMemoryRepo[domain.Product](m_product.Codec{}, clk)
		testRepo = repo.NewMemoryRepo[domain.TestRecord](m_testrecord.Codec{}, clk)
		allopRepo = repo.NewMemoryRepo[domain.Allop](m_allop.Codec{}, clk)
		guardRepo = repo.NewMemoryRepo[domain.Guard](m_guard.Codec{}, clk)
		massonRepo = repo.NewMemoryRepo[domain.Masson](m_masson.Codec{}, clk)
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}

	handlers := transport.Handlers{
		Products: transport.NewResourceHandler(
			catalog.NewService(productRepo, m_product.Codec{}, clk), transport.ProductMapper{}, log),
		Tests: transport.NewResourceHandler(
			catalog.NewService(testRepo, m_testrecord.Codec{}, clk), transport.TestRecordMapper{}, log),
		Allops: transport.NewResourceHandler(
			catalog.NewService(allopRepo, m_allop.Codec{}, clk), transport.AllopMapper{}, log),
		Guards: transport.NewResourceHandler(
			catalog.NewService(guardRepo, m_guard.Codec{}, clk), transport.GuardMapper{}, log),
		Massons: transport.NewResourceHandler(
			catalog.NewService(massonRepo, m_masson.Codec{}, clk), transport.MassonMapper{}, log),
	}

	opts.Router = transport.NewRouter(log, transport.NewMetrics(), handlers)
	return opts, nil
}

// Close releases resources held by the options.
func (o *ServiceOptions) Close() {
	if o.SpannerClient != nil {
		o.SpannerClient.Close()
	}
}
