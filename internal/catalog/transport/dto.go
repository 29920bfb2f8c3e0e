package transport

import (
	"time"

	"github.com/google/uuid"
)

// ServiceOptionResponse is a purchasable service as shown in the calculator.
type ServiceOptionResponse struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	BasePriceMinor int64  `json:"basePriceMinor"`
	PerPagePriced  bool   `json:"perPagePriced"`
}

// FeatureOptionResponse is an add-on feature as shown in the calculator.
type FeatureOptionResponse struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	PriceMinor int64  `json:"priceMinor"`
}

// TimelineOptionResponse is a delivery timeline as shown in the calculator.
type TimelineOptionResponse struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// CatalogResponse is the full option set the public calculator prices with.
type CatalogResponse struct {
	Services         []ServiceOptionResponse  `json:"services"`
	Features         []FeatureOptionResponse  `json:"features"`
	Timelines        []TimelineOptionResponse `json:"timelines"`
	PerPageRateMinor int64                    `json:"perPageRateMinor"`
	IncludedPages    int                      `json:"includedPages"`
}

// AdminServiceResponse is a service option with its back-office fields.
type AdminServiceResponse struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	BasePriceMinor int64  `json:"basePriceMinor"`
	PerPagePriced  bool   `json:"perPagePriced"`
	SortOrder      int    `json:"sortOrder"`
	Active         bool   `json:"active"`
}

// AdminFeatureResponse is a feature option with its back-office fields.
type AdminFeatureResponse struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	PriceMinor int64  `json:"priceMinor"`
	SortOrder  int    `json:"sortOrder"`
	Active     bool   `json:"active"`
}

// AdminTimelineResponse is a timeline option with its back-office fields.
type AdminTimelineResponse struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
	SortOrder  int     `json:"sortOrder"`
	Active     bool    `json:"active"`
}

// AdminCatalogResponse lists every option, inactive ones included.
type AdminCatalogResponse struct {
	Services         []AdminServiceResponse  `json:"services"`
	Features         []AdminFeatureResponse  `json:"features"`
	Timelines        []AdminTimelineResponse `json:"timelines"`
	PerPageRateMinor int64                   `json:"perPageRateMinor"`
	IncludedPages    int                     `json:"includedPages"`
}

// UpsertServiceRequest creates or replaces a service option.
type UpsertServiceRequest struct {
	Label          string `json:"label" validate:"required,max=200"`
	BasePriceMinor int64  `json:"basePriceMinor" validate:"required,gt=0"`
	PerPagePriced  bool   `json:"perPagePriced"`
	SortOrder      int    `json:"sortOrder"`
	Active         *bool  `json:"active"`
}

// UpsertFeatureRequest creates or replaces a feature option.
type UpsertFeatureRequest struct {
	Label      string `json:"label" validate:"required,max=200"`
	PriceMinor int64  `json:"priceMinor" validate:"required,gt=0"`
	SortOrder  int    `json:"sortOrder"`
	Active     *bool  `json:"active"`
}

// UpsertTimelineRequest creates or replaces a timeline option.
type UpsertTimelineRequest struct {
	Label      string  `json:"label" validate:"required,max=200"`
	Multiplier float64 `json:"multiplier" validate:"required,gte=1"`
	SortOrder  int     `json:"sortOrder"`
	Active     *bool   `json:"active"`
}

// UpdateSettingsRequest changes the catalog-wide pricing knobs.
type UpdateSettingsRequest struct {
	PerPageRateMinor int64 `json:"perPageRateMinor" validate:"required,gt=0"`
	IncludedPages    int   `json:"includedPages" validate:"required,gte=0"`
}

// CreateAssetUploadRequest asks for a presigned upload URL.
type CreateAssetUploadRequest struct {
	FileName    string `json:"fileName" validate:"required,max=255"`
	ContentType string `json:"contentType" validate:"required,max=100"`
	SizeBytes   int64  `json:"sizeBytes" validate:"required,gt=0"`
}

// AssetUploadResponse carries the presigned PUT URL and the file key the
// client must echo back when recording the asset.
type AssetUploadResponse struct {
	URL       string    `json:"url"`
	FileKey   string    `json:"fileKey"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CreateAssetRequest records an uploaded asset.
type CreateAssetRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	FileKey     string `json:"fileKey" validate:"required,max=512"`
	FileName    string `json:"fileName" validate:"required,max=255"`
	ContentType string `json:"contentType" validate:"required,max=100"`
	SizeBytes   int64  `json:"sizeBytes" validate:"required,gt=0"`
}

// AssetResponse describes a stored marketing asset.
type AssetResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AssetDownloadResponse carries a presigned GET URL.
type AssetDownloadResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
