package ingest

import (
	"fmt"
	"sync"
	"time"

	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/apperrors"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/config"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/models"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/repository"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/ingest/ongoing"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/ingest/rackbeat"
	"github.com/hansarneh/OrderFlow-Hageglede-sub001/internal/services/ingest/shopify"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Client interfaces let tests substitute canned vendor payloads for the HTTP
// clients.
type ShopifyClient interface {
	FetchOrders() ([]shopify.Order, error)
}

type OngoingClient interface {
	FetchOrders() ([]ongoing.Order, error)
	FetchArticles() ([]ongoing.Article, error)
}

type RackbeatClient interface {
	FetchPurchaseOrders() ([]rackbeat.PurchaseOrder, error)
}

// Progress mirrors the persisted run state for cheap polling while a sync is
// still going.
type Progress struct {
	ProcessedCount int    `json:"processed_count"`
	FailedCount    int    `json:"failed_count"`
	Total          int    `json:"total"`
	Status         string `json:"status"`
}

// Service runs ingestion against the three vendor systems. Each run fetches
// a full page-walked snapshot, normalizes record by record, and upserts into
// the store. A malformed record is logged and skipped, never aborting the
// run.
type Service struct {
	runRepo       *repository.SyncRunRepository
	commerceRepo  *repository.CommerceOrderRepository
	warehouseRepo *repository.WarehouseOrderRepository
	purchaseRepo  *repository.PurchaseOrderRepository
	productRepo   *repository.ProductRepository

	shopifyClient  ShopifyClient
	ongoingClient  OngoingClient
	rackbeatClient RackbeatClient

	logger        *logrus.Logger
	progressCache sync.Map // run id -> *Progress
}

func NewService(
	runRepo *repository.SyncRunRepository,
	commerceRepo *repository.CommerceOrderRepository,
	warehouseRepo *repository.WarehouseOrderRepository,
	purchaseRepo *repository.PurchaseOrderRepository,
	productRepo *repository.ProductRepository,
	shopifyClient ShopifyClient,
	ongoingClient OngoingClient,
	rackbeatClient RackbeatClient,
	logger *logrus.Logger,
) *Service {
	return &Service{
		runRepo:        runRepo,
		commerceRepo:   commerceRepo,
		warehouseRepo:  warehouseRepo,
		purchaseRepo:   purchaseRepo,
		productRepo:    productRepo,
		shopifyClient:  shopifyClient,
		ongoingClient:  ongoingClient,
		rackbeatClient: rackbeatClient,
		logger:         logger,
	}
}

// StartSync creates the run record and processes it in the background.
func (s *Service) StartSync(source string) (*models.SyncRun, error) {
	switch source {
	case models.SourceShopify, models.SourceOngoing, models.SourceRackbeat:
	default:
		return nil, apperrors.Validation("unknown sync source: " + source)
	}

	run := &models.SyncRun{
		ID:        uuid.New(),
		Source:    source,
		Status:    "processing",
		StartedAt: time.Now(),
		CreatedAt: time.Now(),
	}
	if err := s.runRepo.Create(run); err != nil {
		return nil, apperrors.Unavailable("failed to create sync run", err)
	}

	s.progressCache.Store(run.ID, &Progress{Status: "processing"})
	go s.runSync(run)

	return run, nil
}

// GetProgress prefers the in-memory cache for a live run and falls back to
// the persisted row.
func (s *Service) GetProgress(runID uuid.UUID) (*Progress, error) {
	if val, ok := s.progressCache.Load(runID); ok {
		return val.(*Progress), nil
	}

	run, err := s.runRepo.GetByID(runID)
	if err != nil {
		return nil, apperrors.NotFound("sync run not found")
	}
	return &Progress{
		ProcessedCount: run.ProcessedCount,
		FailedCount:    run.FailedCount,
		Total:          run.TotalRecords,
		Status:         run.Status,
	}, nil
}

func (s *Service) runSync(run *models.SyncRun) {
	var err error
	switch run.Source {
	case models.SourceShopify:
		err = s.syncShopify(run)
	case models.SourceOngoing:
		err = s.syncOngoing(run)
	case models.SourceRackbeat:
		err = s.syncRackbeat(run)
	}

	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"source": run.Source,
			"run_id": run.ID.String(),
		}).Error("sync run failed: " + err.Error())
		if markErr := s.runRepo.MarkFailed(run.ID, err.Error()); markErr != nil {
			s.progressCache.Store(run.ID, &Progress{Status: "failed"})
			return
		}
		s.progressCache.Delete(run.ID)
	}
}

func (s *Service) syncShopify(run *models.SyncRun) error {
	orders, err := s.shopifyClient.FetchOrders()
	if err != nil {
		return fmt.Errorf("fetching shopify orders: %w", err)
	}

	processed, failed := 0, 0
	for _, vendorOrder := range orders {
		order, mapErr := shopify.MapOrder(vendorOrder)
		if mapErr != nil {
			config.LogSkippedRecord(s.logger, run.Source, fmt.Sprintf("%d", vendorOrder.ID), mapErr)
			failed++
			continue
		}
		if upsertErr := s.commerceRepo.Upsert(&order); upsertErr != nil {
			config.LogSkippedRecord(s.logger, run.Source, order.ExternalID, upsertErr)
			failed++
			continue
		}
		processed++
		s.trackProgress(run.ID, processed, failed, len(orders))
	}

	return s.complete(run.ID, len(orders), processed, failed)
}

func (s *Service) syncOngoing(run *models.SyncRun) error {
	orders, err := s.ongoingClient.FetchOrders()
	if err != nil {
		return fmt.Errorf("fetching ongoing orders: %w", err)
	}
	articles, err := s.ongoingClient.FetchArticles()
	if err != nil {
		return fmt.Errorf("fetching ongoing articles: %w", err)
	}

	total := len(orders) + len(articles)
	processed, failed := 0, 0

	for _, vendorOrder := range orders {
		order, mapErr := ongoing.MapOrder(vendorOrder)
		if mapErr != nil {
			config.LogSkippedRecord(s.logger, run.Source, fmt.Sprintf("%d", vendorOrder.OrderID), mapErr)
			failed++
			continue
		}
		if upsertErr := s.warehouseRepo.Upsert(&order); upsertErr != nil {
			config.LogSkippedRecord(s.logger, run.Source, order.ExternalID, upsertErr)
			failed++
			continue
		}
		processed++
		s.trackProgress(run.ID, processed, failed, total)
	}

	for _, article := range articles {
		product, mapErr := ongoing.MapArticle(article)
		if mapErr != nil {
			config.LogSkippedRecord(s.logger, run.Source, article.ArticleNumber, mapErr)
			failed++
			continue
		}
		if upsertErr := s.productRepo.Upsert(&product); upsertErr != nil {
			config.LogSkippedRecord(s.logger, run.Source, product.SKU, upsertErr)
			failed++
			continue
		}
		processed++
		s.trackProgress(run.ID, processed, failed, total)
	}

	return s.complete(run.ID, total, processed, failed)
}

func (s *Service) syncRackbeat(run *models.SyncRun) error {
	purchaseOrders, err := s.rackbeatClient.FetchPurchaseOrders()
	if err != nil {
		return fmt.Errorf("fetching rackbeat purchase orders: %w", err)
	}

	processed, failed := 0, 0
	for _, vendorPO := range purchaseOrders {
		po, mapErr := rackbeat.MapPurchaseOrder(vendorPO)
		if mapErr != nil {
			config.LogSkippedRecord(s.logger, run.Source, vendorPO.Number.String(), mapErr)
			failed++
			continue
		}
		if upsertErr := s.purchaseRepo.Upsert(&po); upsertErr != nil {
			config.LogSkippedRecord(s.logger, run.Source, po.ExternalID, upsertErr)
			failed++
			continue
		}
		processed++
		s.trackProgress(run.ID, processed, failed, len(purchaseOrders))
	}

	return s.complete(run.ID, len(purchaseOrders), processed, failed)
}

func (s *Service) trackProgress(runID uuid.UUID, processed, failed, total int) {
	s.progressCache.Store(runID, &Progress{
		ProcessedCount: processed,
		FailedCount:    failed,
		Total:          total,
		Status:         "processing",
	})

	// Persist every 100 records so a restart loses little.
	if (processed+failed)%100 == 0 {
		_ = s.runRepo.UpdateProgress(runID, processed, failed)
	}
}

// complete persists the terminal state and drops the cache entry so finished
// runs do not accumulate in memory; GetProgress falls back to the stored row.
func (s *Service) complete(runID uuid.UUID, total, processed, failed int) error {
	if err := s.runRepo.MarkCompleted(runID, total, processed, failed); err != nil {
		return err
	}
	s.progressCache.Delete(runID)
	return nil
}
