package service

import (
	"context"
	"time"

	"webforge_backend/internal/catalog/repository"
	"webforge_backend/internal/catalog/transport"
	"webforge_backend/internal/pricing"
	"webforge_backend/internal/storage"
	"webforge_backend/platform/apperr"
	"webforge_backend/platform/sanitize"

	"github.com/google/uuid"
)

const assetFolder = "catalog"

// Service provides business logic for the pricing catalog and its assets
type Service struct {
	repo        *repository.Repository
	store       storage.Service
	assetBucket string
}

// New creates a new catalog service. The storage service may be nil when
// object storage is not configured; asset operations then return an error.
func New(repo *repository.Repository, store storage.Service, assetBucket string) *Service {
	return &Service{repo: repo, store: store, assetBucket: assetBucket}
}

// SeedIfEmpty populates the catalog tables from the reference pricing on
// first boot. Later boots leave staff edits untouched.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	count, err := s.repo.CountServices(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := pricing.DefaultCatalog()
	now := time.Now()

	order := 0
	for _, id := range []string{"websites", "ecommerce", "webapp", "maintenance"} {
		svc := defaults.Services[id]
		if err := s.repo.UpsertService(ctx, repository.Service{
			ID:             svc.ID,
			Label:          svc.Label,
			BasePriceMinor: svc.BasePriceMinor,
			PerPagePriced:  svc.PerPagePriced,
			SortOrder:      order,
			Active:         true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}); err != nil {
			return err
		}
		order++
	}

	order = 0
	for _, id := range []string{"cms", "seo", "analytics", "booking", "payments", "multilingual"} {
		feat := defaults.Features[id]
		if err := s.repo.UpsertFeature(ctx, repository.Feature{
			ID:         feat.ID,
			Label:      feat.Label,
			PriceMinor: feat.PriceMinor,
			SortOrder:  order,
			Active:     true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}); err != nil {
			return err
		}
		order++
	}

	order = 0
	for _, id := range []string{"standard", "priority", "rush"} {
		tl := defaults.Timelines[id]
		if err := s.repo.UpsertTimeline(ctx, repository.Timeline{
			ID:         tl.ID,
			Label:      tl.Label,
			Multiplier: tl.Multiplier,
			SortOrder:  order,
			Active:     true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}); err != nil {
			return err
		}
		order++
	}

	return s.repo.UpsertSettings(ctx, repository.Settings{
		PerPageRateMinor: defaults.PerPageRateMinor,
		IncludedPages:    defaults.IncludedPages,
	})
}

// PricingCatalog builds the engine's catalog from the active database rows.
func (s *Service) PricingCatalog(ctx context.Context) (pricing.Catalog, error) {
	services, err := s.repo.ListServices(ctx, true)
	if err != nil {
		return pricing.Catalog{}, err
	}
	features, err := s.repo.ListFeatures(ctx, true)
	if err != nil {
		return pricing.Catalog{}, err
	}
	timelines, err := s.repo.ListTimelines(ctx, true)
	if err != nil {
		return pricing.Catalog{}, err
	}
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return pricing.Catalog{}, err
	}

	catalog := pricing.Catalog{
		Services:         make(map[string]pricing.ServiceOption, len(services)),
		Features:         make(map[string]pricing.FeatureOption, len(features)),
		Timelines:        make(map[string]pricing.TimelineOption, len(timelines)),
		PerPageRateMinor: settings.PerPageRateMinor,
		IncludedPages:    settings.IncludedPages,
	}
	for _, svc := range services {
		catalog.Services[svc.ID] = pricing.ServiceOption{
			ID:             svc.ID,
			Label:          svc.Label,
			BasePriceMinor: svc.BasePriceMinor,
			PerPagePriced:  svc.PerPagePriced,
		}
	}
	for _, feat := range features {
		catalog.Features[feat.ID] = pricing.FeatureOption{
			ID:         feat.ID,
			Label:      feat.Label,
			PriceMinor: feat.PriceMinor,
		}
	}
	for _, tl := range timelines {
		catalog.Timelines[tl.ID] = pricing.TimelineOption{
			ID:         tl.ID,
			Label:      tl.Label,
			Multiplier: tl.Multiplier,
		}
	}

	return catalog, nil
}

// GetPublicCatalog returns the active options for the public calculator.
func (s *Service) GetPublicCatalog(ctx context.Context) (*transport.CatalogResponse, error) {
	services, err := s.repo.ListServices(ctx, true)
	if err != nil {
		return nil, err
	}
	features, err := s.repo.ListFeatures(ctx, true)
	if err != nil {
		return nil, err
	}
	timelines, err := s.repo.ListTimelines(ctx, true)
	if err != nil {
		return nil, err
	}
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	resp := &transport.CatalogResponse{
		Services:         make([]transport.ServiceOptionResponse, len(services)),
		Features:         make([]transport.FeatureOptionResponse, len(features)),
		Timelines:        make([]transport.TimelineOptionResponse, len(timelines)),
		PerPageRateMinor: settings.PerPageRateMinor,
		IncludedPages:    settings.IncludedPages,
	}
	for i, svc := range services {
		resp.Services[i] = transport.ServiceOptionResponse{
			ID:             svc.ID,
			Label:          svc.Label,
			BasePriceMinor: svc.BasePriceMinor,
			PerPagePriced:  svc.PerPagePriced,
		}
	}
	for i, feat := range features {
		resp.Features[i] = transport.FeatureOptionResponse{
			ID:         feat.ID,
			Label:      feat.Label,
			PriceMinor: feat.PriceMinor,
		}
	}
	for i, tl := range timelines {
		resp.Timelines[i] = transport.TimelineOptionResponse{
			ID:         tl.ID,
			Label:      tl.Label,
			Multiplier: tl.Multiplier,
		}
	}

	return resp, nil
}

// GetAdminCatalog returns every option for the back office, inactive included.
func (s *Service) GetAdminCatalog(ctx context.Context) (*transport.AdminCatalogResponse, error) {
	services, err := s.repo.ListServices(ctx, false)
	if err != nil {
		return nil, err
	}
	features, err := s.repo.ListFeatures(ctx, false)
	if err != nil {
		return nil, err
	}
	timelines, err := s.repo.ListTimelines(ctx, false)
	if err != nil {
		return nil, err
	}
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	resp := &transport.AdminCatalogResponse{
		Services:         make([]transport.AdminServiceResponse, len(services)),
		Features:         make([]transport.AdminFeatureResponse, len(features)),
		Timelines:        make([]transport.AdminTimelineResponse, len(timelines)),
		PerPageRateMinor: settings.PerPageRateMinor,
		IncludedPages:    settings.IncludedPages,
	}
	for i, svc := range services {
		resp.Services[i] = transport.AdminServiceResponse{
			ID:             svc.ID,
			Label:          svc.Label,
			BasePriceMinor: svc.BasePriceMinor,
			PerPagePriced:  svc.PerPagePriced,
			SortOrder:      svc.SortOrder,
			Active:         svc.Active,
		}
	}
	for i, feat := range features {
		resp.Features[i] = transport.AdminFeatureResponse{
			ID:         feat.ID,
			Label:      feat.Label,
			PriceMinor: feat.PriceMinor,
			SortOrder:  feat.SortOrder,
			Active:     feat.Active,
		}
	}
	for i, tl := range timelines {
		resp.Timelines[i] = transport.AdminTimelineResponse{
			ID:         tl.ID,
			Label:      tl.Label,
			Multiplier: tl.Multiplier,
			SortOrder:  tl.SortOrder,
			Active:     tl.Active,
		}
	}

	return resp, nil
}

// UpsertService creates or replaces a service option
func (s *Service) UpsertService(ctx context.Context, id string, req transport.UpsertServiceRequest) error {
	now := time.Now()
	return s.repo.UpsertService(ctx, repository.Service{
		ID:             id,
		Label:          sanitize.Text(req.Label),
		BasePriceMinor: req.BasePriceMinor,
		PerPagePriced:  req.PerPagePriced,
		SortOrder:      req.SortOrder,
		Active:         activeOrDefault(req.Active),
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

// UpsertFeature creates or replaces a feature option
func (s *Service) UpsertFeature(ctx context.Context, id string, req transport.UpsertFeatureRequest) error {
	now := time.Now()
	return s.repo.UpsertFeature(ctx, repository.Feature{
		ID:         id,
		Label:      sanitize.Text(req.Label),
		PriceMinor: req.PriceMinor,
		SortOrder:  req.SortOrder,
		Active:     activeOrDefault(req.Active),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

// UpsertTimeline creates or replaces a timeline option. The standard
// multiplier floor of 1.0 is enforced by request validation.
func (s *Service) UpsertTimeline(ctx context.Context, id string, req transport.UpsertTimelineRequest) error {
	now := time.Now()
	return s.repo.UpsertTimeline(ctx, repository.Timeline{
		ID:         id,
		Label:      sanitize.Text(req.Label),
		Multiplier: req.Multiplier,
		SortOrder:  req.SortOrder,
		Active:     activeOrDefault(req.Active),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

// UpdateSettings changes the per-page rate and included page count
func (s *Service) UpdateSettings(ctx context.Context, req transport.UpdateSettingsRequest) error {
	return s.repo.UpsertSettings(ctx, repository.Settings{
		PerPageRateMinor: req.PerPageRateMinor,
		IncludedPages:    req.IncludedPages,
	})
}

// CreateAssetUploadURL issues a presigned PUT URL for a new asset upload
func (s *Service) CreateAssetUploadURL(ctx context.Context, req transport.CreateAssetUploadRequest) (*transport.AssetUploadResponse, error) {
	if s.store == nil {
		return nil, apperr.BadRequest("asset storage is not configured")
	}

	presigned, err := s.store.GenerateUploadURL(ctx, s.assetBucket, assetFolder, req.FileName, req.ContentType, req.SizeBytes)
	if err != nil {
		return nil, apperr.BadRequest(err.Error())
	}

	return &transport.AssetUploadResponse{
		URL:       presigned.URL,
		FileKey:   presigned.FileKey,
		ExpiresAt: presigned.ExpiresAt,
	}, nil
}

// RecordAsset saves the metadata of a completed upload
func (s *Service) RecordAsset(ctx context.Context, req transport.CreateAssetRequest) (*transport.AssetResponse, error) {
	asset := repository.Asset{
		ID:          uuid.New(),
		Title:       sanitize.Text(req.Title),
		FileKey:     req.FileKey,
		FileName:    sanitize.Text(req.FileName),
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateAsset(ctx, asset); err != nil {
		return nil, err
	}

	resp := toAssetResponse(asset)
	return &resp, nil
}

// ListAssets returns all recorded assets
func (s *Service) ListAssets(ctx context.Context) ([]transport.AssetResponse, error) {
	items, err := s.repo.ListAssets(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]transport.AssetResponse, len(items))
	for i, a := range items {
		resp[i] = toAssetResponse(a)
	}
	return resp, nil
}

// AssetDownloadURL issues a presigned GET URL for an asset
func (s *Service) AssetDownloadURL(ctx context.Context, id uuid.UUID) (*transport.AssetDownloadResponse, error) {
	if s.store == nil {
		return nil, apperr.BadRequest("asset storage is not configured")
	}

	asset, err := s.repo.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	presigned, err := s.store.GenerateDownloadURL(ctx, s.assetBucket, asset.FileKey)
	if err != nil {
		return nil, err
	}

	return &transport.AssetDownloadResponse{
		URL:       presigned.URL,
		ExpiresAt: presigned.ExpiresAt,
	}, nil
}

// DeleteAsset removes an asset record and its stored object
func (s *Service) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	asset, err := s.repo.GetAsset(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteAsset(ctx, id); err != nil {
		return err
	}

	if s.store != nil {
		// Orphaned object on failure is acceptable; the record is gone.
		_ = s.store.DeleteObject(ctx, s.assetBucket, asset.FileKey)
	}
	return nil
}

func activeOrDefault(active *bool) bool {
	if active == nil {
		return true
	}
	return *active
}

func toAssetResponse(a repository.Asset) transport.AssetResponse {
	return transport.AssetResponse{
		ID:          a.ID,
		Title:       a.Title,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		CreatedAt:   a.CreatedAt,
	}
}
